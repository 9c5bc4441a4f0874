package core

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const windowTitle = "wiCore"

// Desktop is the frameless full-screen window that sits below every other
// window and opens the context menu on right-click.
type Desktop struct {
	app   fyne.App
	win   fyne.Window
	shell *Shell

	// configPath is registered for autostart.
	configPath string
}

func NewDesktop(a fyne.App, sh *Shell, configPath string) *Desktop {
	d := &Desktop{
		app:        a,
		shell:      sh,
		configPath: configPath,
	}

	if drv, ok := a.Driver().(desktop.Driver); ok {
		d.win = drv.CreateSplashWindow()
	} else {
		d.win = a.NewWindow(windowTitle)
	}
	d.win.SetTitle(windowTitle)
	d.win.SetPadded(false)
	d.win.SetContent(newSurface(d.ShowContextMenu))
	d.win.SetCloseIntercept(func() {
		sh.Exit()
	})

	sh.Prompter = &dialogPrompter{win: d.win}
	sh.Quit = d.quit

	a.Lifecycle().SetOnStarted(func() {
		placeWindow(d.win, sh.Settings.OverrideWorkArea)
	})
	a.Lifecycle().SetOnEnteredForeground(func() {
		sendToBottom(d.win)
	})
	return d
}

// ShowContextMenu builds the menu from scratch and shows it at pos.
func (d *Desktop) ShowContextMenu(pos fyne.Position) {
	m := fyneMenu(d.shell.Menu(), d.shell.Dispatch)
	widget.ShowPopUpMenuAtPosition(m, d.win.Canvas(), pos)
}

// Run shows the window and blocks until wiCore quits.
func (d *Desktop) Run() {
	d.startTray()
	d.win.Show()
	d.app.Run()
	slog.Info("wiCore stopped")
}

func (d *Desktop) quit() {
	d.stopTray()
	d.app.Quit()
}

type dialogPrompter struct {
	win fyne.Window
}

func (p *dialogPrompter) Info(title, message string) {
	dialog.ShowInformation(title, message, p.win)
}

func (p *dialogPrompter) Warn(title, message string) {
	content := container.NewHBox(widget.NewIcon(theme.WarningIcon()), widget.NewLabel(message))
	dialog.NewCustom(title, "OK", content, p.win).Show()
}

func (p *dialogPrompter) Confirm(title, message string, onAnswer func(bool)) {
	dialog.ShowConfirm(title, message, onAnswer, p.win)
}
