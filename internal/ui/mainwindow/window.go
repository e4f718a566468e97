package mainwindow

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Config defines window visuals.
type Config struct {
	Title      string
	Fullscreen bool
	Width      float32
	Height     float32
}

var (
	backgroundColor = color.NRGBA{R: 0x2E, G: 0x34, B: 0x40, A: 255}
	labelColor      = color.NRGBA{R: 0xD8, G: 0xDE, B: 0xE9, A: 255}
	subtitleColor   = color.NRGBA{R: 0x88, G: 0xC0, B: 0xD0, A: 255}
)

const timerTextSize = 72

// Window is the countdown display: time label, progress bar and controls.
type Window struct {
	window        fyne.Window
	config        Config
	timerLabel    *canvas.Text
	intervalLabel *canvas.Text
	progress      *widget.ProgressBar
	startButton   *widget.Button
	resetButton   *widget.Button
	veil          *canvas.Rectangle
	opacity       float64
	onStart       func()
	onReset       func()
}

// New creates the main window. It is not shown until Show is called.
func New(app fyne.App, config Config) *Window {
	window := app.NewWindow(config.Title)
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}
	window.SetPadded(false)

	background := canvas.NewRectangle(backgroundColor)

	timerLabel := canvas.NewText("--:--", labelColor)
	timerLabel.Alignment = fyne.TextAlignCenter
	timerLabel.TextStyle = fyne.TextStyle{Bold: true}
	timerLabel.TextSize = timerTextSize

	intervalLabel := canvas.NewText("", subtitleColor)
	intervalLabel.Alignment = fyne.TextAlignCenter
	intervalLabel.TextSize = 18

	progress := widget.NewProgressBar()
	progress.Min = 0
	progress.Max = 100
	progress.TextFormatter = func() string { return "" }

	view := &Window{
		window:        window,
		config:        config,
		timerLabel:    timerLabel,
		intervalLabel: intervalLabel,
		progress:      progress,
		opacity:       1,
	}

	view.startButton = widget.NewButton("Start", func() {
		if view.onStart != nil {
			view.onStart()
		}
	})
	view.resetButton = widget.NewButton("Reset", func() {
		if view.onReset != nil {
			view.onReset()
		}
	})

	// The veil emulates window opacity where the platform has no native alpha.
	view.veil = canvas.NewRectangle(color.NRGBA{R: backgroundColor.R, G: backgroundColor.G, B: backgroundColor.B, A: 0})

	controls := container.NewHBox(view.startButton, layout.NewSpacer(), view.resetButton)
	content := container.NewBorder(
		nil,
		container.NewPadded(controls),
		nil,
		nil,
		container.NewVBox(
			layout.NewSpacer(),
			timerLabel,
			intervalLabel,
			container.NewPadded(progress),
			layout.NewSpacer(),
		),
	)
	window.SetContent(container.NewStack(background, content, view.veil))
	window.Resize(fyne.NewSize(config.Width, config.Height))
	window.Canvas().SetOnTypedKey(func(event *fyne.KeyEvent) {
		if event.Name == fyne.KeyEscape {
			view.ToggleFullscreen()
		}
	})

	return view
}

// SetOnStart sets the start handler.
func (view *Window) SetOnStart(handler func()) {
	view.onStart = handler
}

// SetOnReset sets the reset handler.
func (view *Window) SetOnReset(handler func()) {
	view.onReset = handler
}

// Show displays the window, fullscreen if configured.
func (view *Window) Show() {
	view.window.SetFullScreen(view.config.Fullscreen)
	if !view.config.Fullscreen {
		view.window.CenterOnScreen()
	}
	view.window.Show()
}

// ToggleFullscreen switches between fullscreen and windowed display.
func (view *Window) ToggleFullscreen() {
	view.window.SetFullScreen(!view.window.FullScreen())
}

// FyneWindow exposes the underlying window.
func (view *Window) FyneWindow() fyne.Window {
	return view.window
}

// SetText updates the time-remaining label.
func (view *Window) SetText(text string) {
	view.timerLabel.Text = text
	view.timerLabel.Refresh()
}

// SetProgress updates the progress bar, 0..100.
func (view *Window) SetProgress(value float64) {
	view.progress.SetValue(clamp(value, 0, 100))
}

// SetStartEnabled enables or disables the start button.
func (view *Window) SetStartEnabled(enabled bool) {
	if enabled {
		view.startButton.Enable()
		return
	}
	view.startButton.Disable()
}

// SetIntervalLabel updates the caption below the timer.
func (view *Window) SetIntervalLabel(text string) {
	view.intervalLabel.Text = text
	view.intervalLabel.Refresh()
}

// SetCountdownTitle puts the countdown and interval name in the window title.
// An empty countdown restores the plain title.
func (view *Window) SetCountdownTitle(countdown, label string) {
	if countdown == "" {
		view.window.SetTitle(view.config.Title)
		return
	}
	view.window.SetTitle(countdown + " - " + label + " | " + view.config.Title)
}

// SetWindowOpacity sets window opacity, 0 transparent to 1 opaque.
func (view *Window) SetWindowOpacity(opacity float64) {
	opacity = clamp(opacity, 0, 1)
	view.opacity = opacity
	if view.applyNativeOpacity(uint8(opacity * 255)) {
		return
	}
	view.veil.FillColor = color.NRGBA{
		R: backgroundColor.R,
		G: backgroundColor.G,
		B: backgroundColor.B,
		A: uint8((1 - opacity) * 255),
	}
	canvas.Refresh(view.veil)
}

// NativeOpacity reports whether the platform fades the window itself. Without it
// a pulse that blocks the main loop is never painted.
func (view *Window) NativeOpacity() bool {
	return nativeOpacity
}

// Opacity returns the last applied opacity.
func (view *Window) Opacity() float64 {
	return view.opacity
}

func clamp(value, low, high float64) float64 {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
