//go:build !windows

package core

import (
	"log/slog"

	"fyne.io/fyne/v2"
)

// Stacking below other windows and the work area are Windows concepts;
// elsewhere the desktop simply goes full screen.
func placeWindow(w fyne.Window, overrideWorkArea bool) {
	if overrideWorkArea {
		slog.Debug("override_workarea ignored on this platform")
	}
	w.SetFullScreen(true)
}

func sendToBottom(fyne.Window) {}
