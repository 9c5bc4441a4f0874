// Command wicore is the wiShell core: a desktop surface that stays below
// every window and offers the shell's context menu.
package main

import (
	"flag"
	"log/slog"
	"os"

	"fyne.io/fyne/v2/app"

	"github.com/taodev/wishell/internal/appenv"
	"github.com/taodev/wishell/internal/config"
	"github.com/taodev/wishell/internal/core"
	"github.com/taodev/wishell/internal/launch"
)

const appID = "io.github.taodev.wishell.wicore"

func main() {
	dir := appenv.Dir()
	configPath := appenv.ConfigPath()
	var debug bool

	flag.StringVar(&configPath, "config", configPath, "config path")
	flag.BoolVar(&debug, "debug", false, "debug logging")
	flag.Parse()

	logFile, err := appenv.OpenLog(dir, "app.log", debug)
	if err != nil {
		appenv.Alert("wiCore", err.Error())
		os.Exit(1)
	}
	defer logFile.Close()

	shellDir := appenv.ShellDir(dir)
	settings := config.ReadSettings(config.Load(configPath))
	slog.Info("wiCore starting", "config", configPath, "shelldir", shellDir,
		"confirm_quit", settings.ConfirmQuit, "applications", settings.ApplicationsPath)

	sh := core.NewShell(settings, shellDir, launch.NewSystem(shellDir))
	core.NewDesktop(app.NewWithID(appID), sh, configPath).Run()
}
