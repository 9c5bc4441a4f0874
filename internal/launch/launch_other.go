//go:build !windows

package launch

import (
	"os/exec"
	"runtime"
)

func (s *System) open(path string) error {
	opener := "xdg-open"
	if runtime.GOOS == "darwin" {
		opener = "open"
	}
	return s.Start(opener, path)
}

func shellCommand(command string) *exec.Cmd {
	return exec.Command("/bin/sh", "-c", command)
}
