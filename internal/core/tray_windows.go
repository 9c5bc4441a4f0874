//go:build windows

package core

import (
	_ "embed"
	"log/slog"
	"runtime"
	"sync/atomic"

	"fyne.io/fyne/v2"
	"github.com/energye/systray"

	"github.com/taodev/wishell/internal/menu"
)

//go:embed icon/wicore.ico
var trayIcon []byte

var trayRunning atomic.Bool

// startTray runs the notification-area icon on its own locked thread. Its
// menu is built once; Restart refreshes it.
func (d *Desktop) startTray() {
	go func() {
		runtime.LockOSThread()
		systray.Run(d.onTrayReady, func() {
			slog.Info("tray stopped")
		})
	}()
}

func (d *Desktop) stopTray() {
	if trayRunning.CompareAndSwap(true, false) {
		systray.Quit()
	}
}

func (d *Desktop) onTrayReady() {
	trayRunning.Store(true)
	systray.SetIcon(trayIcon)
	systray.SetTitle(windowTitle)
	systray.SetTooltip(windowTitle)
	systray.SetOnRClick(func(m systray.IMenu) {
		m.ShowMenu()
	})

	for _, n := range d.shell.Menu() {
		d.addTrayNode(nil, n)
	}
	systray.AddSeparator()
	d.addAutostartItem()
}

func (d *Desktop) addTrayNode(parent *systray.MenuItem, n menu.Node) {
	if n.Kind == menu.KindSeparator {
		// Submenus have no separators in the tray.
		if parent == nil {
			systray.AddSeparator()
		}
		return
	}

	var item *systray.MenuItem
	if parent == nil {
		item = systray.AddMenuItem(n.Label, n.Label)
	} else {
		item = parent.AddSubMenuItem(n.Label, n.Label)
	}

	switch n.Kind {
	case menu.KindPlaceholder:
		item.Disable()
	case menu.KindSubmenu:
		for _, child := range n.Children {
			d.addTrayNode(item, child)
		}
	case menu.KindAction:
		a := n.Action
		item.Click(func() {
			fyne.Do(func() {
				d.shell.Dispatch(a)
			})
		})
	}
}

func (d *Desktop) addAutostartItem() {
	item := systray.AddMenuItemCheckbox("Start with Windows", "", autostartEnabled())
	item.Click(func() {
		if item.Checked() {
			disableAutostart()
		} else {
			enableAutostart(d.configPath)
		}

		if autostartEnabled() {
			item.Check()
		} else {
			item.Uncheck()
		}
	})
}
