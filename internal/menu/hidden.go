package menu

import (
	"io/fs"
	"strings"
)

// IsHidden reports whether a directory entry is hidden: a dot prefix, a
// desktop.ini marker, or the platform's hidden attribute.
func IsHidden(e fs.DirEntry) bool {
	name := e.Name()
	if strings.HasPrefix(name, ".") || strings.EqualFold(name, "desktop.ini") {
		return true
	}
	return hasHiddenAttribute(e)
}
