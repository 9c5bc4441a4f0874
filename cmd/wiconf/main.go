// Command wiconf edits a wiShell INI file section by section.
package main

import (
	"flag"
	"log/slog"
	"os"

	"fyne.io/fyne/v2/app"

	"github.com/taodev/wishell/internal/appenv"
	"github.com/taodev/wishell/internal/config"
	"github.com/taodev/wishell/internal/editor"
)

const appID = "io.github.taodev.wishell.wiconf"

func main() {
	dir := appenv.Dir()
	configPath := appenv.ConfigPath()
	var debug bool

	flag.StringVar(&configPath, "config", configPath, "config path")
	flag.BoolVar(&debug, "debug", false, "debug logging")
	flag.Parse()

	logFile, err := appenv.OpenLog(dir, "wiconf.log", debug)
	if err != nil {
		appenv.Alert("wiConf", err.Error())
		os.Exit(1)
	}
	defer logFile.Close()

	slog.Info("wiConf starting", "config", configPath)
	ed := editor.New(config.Load(configPath))
	editor.NewView(app.NewWithID(appID), ed).ShowAndRun()
}
