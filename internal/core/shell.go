// Package core is wiCore: the desktop surface behind all windows and the
// context menu it offers.
package core

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"

	"github.com/taodev/wishell/internal/config"
	"github.com/taodev/wishell/internal/launch"
	"github.com/taodev/wishell/internal/menu"
)

const AboutText = "wiCore for wiShell\nVersion 1.0\n\nCore functionality for wiShell"

// Prompter shows dialogs. Confirm reports the user's answer through
// onAnswer.
type Prompter interface {
	Info(title, message string)
	Warn(title, message string)
	Confirm(title, message string, onAnswer func(ok bool))
}

// Shell runs what the context menu asks for.
type Shell struct {
	Settings config.Settings
	ShellDir string
	Launcher launch.Launcher
	Prompter Prompter

	// Quit ends wiCore gracefully.
	Quit func()
	// Respawn starts a fresh copy of wiCore with the same arguments.
	Respawn func() error

	builder *menu.Builder
}

func NewShell(s config.Settings, shellDir string, l launch.Launcher) *Shell {
	return &Shell{
		Settings: s,
		ShellDir: shellDir,
		Launcher: l,
		Quit:     func() {},
		Respawn:  respawn,
		builder:  menu.NewBuilder(s),
	}
}

// Menu scans the applications directory and returns a fresh menu tree.
func (s *Shell) Menu() []menu.Node {
	return s.builder.Build()
}

func (s *Shell) Dispatch(a menu.Action) {
	slog.Debug("menu action", "type", a.Type, "target", a.Target)
	switch a.Type {
	case menu.ActionLaunch, menu.ActionExplorer:
		s.LaunchApp(a.Target)
	case menu.ActionSettings:
		s.OpenSettings(a.Target)
	case menu.ActionAbout:
		s.About()
	case menu.ActionExit:
		s.Exit()
	case menu.ActionRestart:
		s.Restart()
	case menu.ActionQuitCommand:
		s.RunQuitCommand(a.Name, a.Target)
	}
}

// ConfirmAndRun runs effect, asking first when confirm_quit is set.
func (s *Shell) ConfirmAndRun(title, message string, effect func()) {
	if !s.Settings.ConfirmQuit {
		effect()
		return
	}
	s.Prompter.Confirm(title, message, func(ok bool) {
		if !ok {
			slog.Info("cancelled", "prompt", message)
			return
		}
		effect()
	})
}

func (s *Shell) Exit() {
	s.ConfirmAndRun("Confirm Exit", "Do you want to exit wiCore?", func() {
		slog.Info("exit")
		s.Quit()
	})
}

// Restart never asks.
func (s *Shell) Restart() {
	if err := s.Respawn(); err != nil {
		slog.Error("restart failed", "err", err)
		s.Prompter.Warn("Error", fmt.Sprintf("Cannot restart wiCore\n\n%v", err))
		return
	}
	slog.Info("restart")
	s.Quit()
}

func (s *Shell) RunQuitCommand(name, command string) {
	s.ConfirmAndRun("Confirm Quit", fmt.Sprintf("Do you want to %s?", name), func() {
		slog.Info("run quit command", "name", name, "cmd", command)
		if err := s.Launcher.Shell(command); err != nil {
			slog.Error("quit command failed", "cmd", command, "err", err)
			s.Prompter.Warn("Error", fmt.Sprintf("Cannot run:\n%s\n\n%v", command, err))
		}
	})
}

func (s *Shell) LaunchApp(path string) {
	if err := launch.Launch(s.Launcher, path); err != nil {
		slog.Error("launch failed", "path", path, "err", err)
		s.Prompter.Warn("Error", fmt.Sprintf("Cannot launch:\n%s\n\n%v", path, err))
	}
}

func (s *Shell) OpenSettings(raw string) {
	path := launch.ResolveShellDir(raw, s.ShellDir)
	if err := s.Launcher.Open(path); err != nil {
		slog.Error("open settings failed", "path", path, "err", err)
		s.Prompter.Warn("Error", fmt.Sprintf("Cannot open settings:\n%s\n\n%v", path, err))
	}
}

func (s *Shell) About() {
	s.Prompter.Info("About", AboutText)
}

func respawn() error {
	exe, err := os.Executable()
	if err != nil {
		return err
	}
	cmd := exec.Command(exe, os.Args[1:]...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", exe, err)
	}
	return nil
}
