//go:build !windows

package appenv

import (
	"fmt"
	"os"
)

func Alert(title, text string) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", title, text)
}
