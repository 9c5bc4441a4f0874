//go:build windows

package appenv

import (
	"log/slog"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32         = windows.NewLazySystemDLL("user32.dll")
	procMessageBox = user32.NewProc("MessageBoxW")
)

const mbIconError = 0x00000010

// Alert shows a blocking native message box. It is meant for failures
// that happen before any window exists.
func Alert(title, text string) {
	titlePtr, err := windows.UTF16PtrFromString(title)
	if err != nil {
		slog.Error("alert utf16 error", "err", err)
		return
	}
	textPtr, err := windows.UTF16PtrFromString(text)
	if err != nil {
		slog.Error("alert utf16 error", "err", err)
		return
	}
	procMessageBox.Call(
		0,
		uintptr(unsafe.Pointer(textPtr)),
		uintptr(unsafe.Pointer(titlePtr)),
		mbIconError,
	)
}
