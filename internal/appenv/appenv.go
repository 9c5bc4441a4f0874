// Package appenv locates a tool's install directory, its config file and
// its log file.
package appenv

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

const ConfigFileName = "config.ini"

// Dir is the directory holding the running executable. It falls back to
// the working directory.
func Dir() string {
	exe, err := os.Executable()
	if err != nil {
		cwd, _ := os.Getwd()
		return cwd
	}
	return filepath.Dir(exe)
}

// ConfigPath is config.ini next to the executable.
func ConfigPath() string {
	return filepath.Join(Dir(), ConfigFileName)
}

// ShellDir is the wiShell root, the parent of the tool's install directory.
func ShellDir(dir string) string {
	return filepath.Dir(filepath.Clean(dir))
}

// OpenLog makes a text slog logger writing to name inside dir the default
// logger. The returned closer closes the log file.
func OpenLog(dir, name string, debug bool) (io.Closer, error) {
	f, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{
		Level: level,
	})))
	return f, nil
}
