//go:build !windows

package mainwindow

// nativeOpacity is false: the veil only changes when the main loop repaints.
const nativeOpacity = false

// applyNativeOpacity reports false; the veil rectangle is used instead.
func (view *Window) applyNativeOpacity(uint8) bool {
	return false
}
