//go:build windows

package core

import (
	"log/slog"
	"unsafe"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver"
	"golang.org/x/sys/windows"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	procGetSystemMetrics      = user32.NewProc("GetSystemMetrics")
	procGetWindowLongW        = user32.NewProc("GetWindowLongW")
	procSetWindowLongW        = user32.NewProc("SetWindowLongW")
	procSetWindowPos          = user32.NewProc("SetWindowPos")
	procSystemParametersInfoW = user32.NewProc("SystemParametersInfoW")
)

const (
	smCxScreen = 0
	smCyScreen = 1

	gwlExStyle     = -20
	wsExToolWindow = 0x00000080
	wsExAppWindow  = 0x00040000

	hwndBottom = 1

	swpNoSize       = 0x0001
	swpNoMove       = 0x0002
	swpNoActivate   = 0x0010
	swpFrameChanged = 0x0020

	spiSetWorkArea = 0x002F
	spifSendChange = 0x0002
)

func nativeHandle(w fyne.Window) uintptr {
	nw, ok := w.(driver.NativeWindow)
	if !ok {
		return 0
	}
	var hwnd uintptr
	nw.RunNative(func(ctx any) {
		if wc, ok := ctx.(driver.WindowsWindowContext); ok {
			hwnd = wc.HWND
		}
	})
	return hwnd
}

func screenSize() (int32, int32) {
	cx, _, _ := procGetSystemMetrics.Call(smCxScreen)
	cy, _, _ := procGetSystemMetrics.Call(smCyScreen)
	return int32(cx), int32(cy)
}

// longIndex passes a negative GWL_* index through uintptr.
func longIndex(i int) uintptr {
	return uintptr(i)
}

// placeWindow turns the window into a tool window that covers the primary
// display at the bottom of the z-order.
func placeWindow(w fyne.Window, overrideWorkArea bool) {
	hwnd := nativeHandle(w)
	if hwnd == 0 {
		slog.Warn("no native window handle, desktop placement skipped")
		return
	}
	cx, cy := screenSize()

	style, _, _ := procGetWindowLongW.Call(hwnd, longIndex(gwlExStyle))
	style = (style | wsExToolWindow) &^ wsExAppWindow
	procSetWindowLongW.Call(hwnd, longIndex(gwlExStyle), style)

	r, _, err := procSetWindowPos.Call(hwnd, hwndBottom, 0, 0, uintptr(cx), uintptr(cy), swpNoActivate|swpFrameChanged)
	if r == 0 {
		slog.Error("SetWindowPos failed", "err", err)
	}
	slog.Info("desktop placed", "width", cx, "height", cy)

	if overrideWorkArea {
		setWorkArea(cx, cy)
	}
}

func sendToBottom(w fyne.Window) {
	hwnd := nativeHandle(w)
	if hwnd == 0 {
		return
	}
	procSetWindowPos.Call(hwnd, hwndBottom, 0, 0, 0, 0, swpNoMove|swpNoSize|swpNoActivate)
}

// setWorkArea claims the whole primary display as work area.
func setWorkArea(cx, cy int32) {
	rect := windows.Rect{Left: 0, Top: 0, Right: cx, Bottom: cy}
	r, _, err := procSystemParametersInfoW.Call(spiSetWorkArea, 0, uintptr(unsafe.Pointer(&rect)), spifSendChange)
	if r == 0 {
		slog.Error("SPI_SETWORKAREA failed", "err", err)
		return
	}
	slog.Info("work area overridden", "width", cx, "height", cy)
}
