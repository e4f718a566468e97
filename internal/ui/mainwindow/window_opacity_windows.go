//go:build windows

package mainwindow

import (
	"syscall"

	"fyne.io/fyne/v2/driver"
)

const nativeOpacity = true

const (
	gwlExStyle  int32 = -20
	wsExLayered       = 0x00080000
	lwaAlpha          = 0x2
)

var (
	user32DLL                      = syscall.NewLazyDLL("user32.dll")
	procGetWindowLongPtrW          = user32DLL.NewProc("GetWindowLongPtrW")
	procSetWindowLongPtrW          = user32DLL.NewProc("SetWindowLongPtrW")
	procSetLayeredWindowAttributes = user32DLL.NewProc("SetLayeredWindowAttributes")
)

// applyNativeOpacity sets layered-window alpha on the Win32 handle.
func (view *Window) applyNativeOpacity(alpha uint8) bool {
	nativeWindow, ok := view.window.(driver.NativeWindow)
	if !ok {
		return false
	}

	applied := false
	nativeWindow.RunNative(func(context any) {
		var hwnd uintptr
		switch value := context.(type) {
		case driver.WindowsWindowContext:
			hwnd = value.HWND
		case *driver.WindowsWindowContext:
			hwnd = value.HWND
		}
		if hwnd == 0 {
			return
		}

		style, _, _ := procGetWindowLongPtrW.Call(hwnd, int32ToUintptr(gwlExStyle))
		if style&wsExLayered == 0 {
			procSetWindowLongPtrW.Call(hwnd, int32ToUintptr(gwlExStyle), style|wsExLayered)
		}
		procSetLayeredWindowAttributes.Call(hwnd, 0, uintptr(alpha), uintptr(lwaAlpha))
		applied = true
	})
	return applied
}

func int32ToUintptr(value int32) uintptr {
	return uintptr(uint32(value))
}
