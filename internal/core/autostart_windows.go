//go:build windows

package core

import (
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/sys/windows/registry"

	"github.com/taodev/wishell/internal/appenv"
)

const (
	autostartKey  = `Software\Microsoft\Windows\CurrentVersion\Run`
	autostartName = "wiCore"
)

func enableAutostart(configPath string) {
	exe, err := os.Executable()
	if err != nil {
		slog.Error("executable path", "err", err)
		appenv.Alert("Autostart failed", err.Error())
		return
	}

	k, _, err := registry.CreateKey(registry.CURRENT_USER, autostartKey, registry.SET_VALUE)
	if err != nil {
		slog.Error("reg error", "err", err)
		appenv.Alert("Autostart failed", err.Error())
		return
	}
	defer k.Close()

	if err := k.SetStringValue(autostartName, fmt.Sprintf(`"%s" -config "%s"`, exe, configPath)); err != nil {
		slog.Error("set value error", "err", err)
		appenv.Alert("Autostart failed", err.Error())
	}
}

func disableAutostart() {
	k, err := registry.OpenKey(registry.CURRENT_USER, autostartKey, registry.SET_VALUE)
	if err != nil {
		slog.Error("reg error", "err", err)
		appenv.Alert("Autostart failed", err.Error())
		return
	}
	defer k.Close()
	_ = k.DeleteValue(autostartName)
}

func autostartEnabled() bool {
	k, err := registry.OpenKey(registry.CURRENT_USER, autostartKey, registry.QUERY_VALUE)
	if err != nil {
		slog.Error("reg error", "err", err)
		return false
	}
	defer k.Close()

	_, _, err = k.GetStringValue(autostartName)
	return err == nil
}
