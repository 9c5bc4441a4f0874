// Package launch opens files and runs commands for the shell.
package launch

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

const (
	// ShellDirToken in a configured path stands for the shell root.
	ShellDirToken = "%wishelldir%"
	// EnvShellDir carries the shell root to spawned children.
	EnvShellDir = "wishelldir"

	explorerExe = "explorer.exe"
)

// Launcher is everything the shell needs from the operating system to start
// programs.
type Launcher interface {
	// Open hands path to the platform's default handler.
	Open(path string) error
	// Start runs name with args and does not wait for it.
	Start(name string, args ...string) error
	// Shell runs command through the platform shell and waits for it. The
	// command's exit status is not an error.
	Shell(command string) error
}

// Launch starts path. A path beginning with explorer.exe is split on
// whitespace and run as a command line; anything else is opened with its
// default handler.
func Launch(l Launcher, path string) error {
	if strings.HasPrefix(strings.ToLower(path), explorerExe) {
		parts := strings.Fields(path)
		return l.Start(parts[0], parts[1:]...)
	}
	return l.Open(path)
}

// ResolveShellDir replaces every %wishelldir% in path with dir.
func ResolveShellDir(path, dir string) string {
	return strings.ReplaceAll(path, ShellDirToken, dir)
}

// System is the Launcher backed by the running OS.
type System struct {
	// Env is appended to the environment of every child started with
	// Start or Shell.
	Env []string
}

// NewSystem returns a System whose children see wishelldir=shellDir.
func NewSystem(shellDir string) *System {
	return &System{Env: []string{EnvShellDir + "=" + shellDir}}
}

func (s *System) environ() []string {
	return append(os.Environ(), s.Env...)
}

func (s *System) Open(path string) error {
	if err := s.open(path); err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	return nil
}

func (s *System) Start(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Env = s.environ()
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", name, err)
	}
	go cmd.Wait()
	return nil
}

func (s *System) Shell(command string) error {
	cmd := shellCommand(command)
	cmd.Env = s.environ()
	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		slog.Info("shell command exited", "cmd", command, "code", exitErr.ExitCode())
		return nil
	}
	if err != nil {
		return fmt.Errorf("run %q: %w", command, err)
	}
	return nil
}
