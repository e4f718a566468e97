package tray

import (
	"fmt"

	"fyne.io/fyne/v2"

	"tomato/internal/core/timekeeper"
)

// MenuHost is the part of desktop.App the tray needs.
type MenuHost interface {
	SetSystemTrayMenu(menu *fyne.Menu)
}

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnStart            func()
	OnReset            func()
	OnToggleFullscreen func()
	OnQuit             func()
}

// Manager handles system tray state.
type Manager struct {
	host       MenuHost
	title      string
	callbacks  Callbacks
	statusItem *fyne.MenuItem
	startItem  *fyne.MenuItem
	running    bool
}

// New creates a tray manager and installs its menu.
func New(host MenuHost, title string, callbacks Callbacks) *Manager {
	manager := &Manager{
		host:      host,
		title:     title,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("Status: idle", nil)
	manager.statusItem.Disabled = true
	manager.startItem = fyne.NewMenuItem("Start", func() {
		invoke(manager.callbacks.OnStart)
	})

	manager.refreshMenu()
	return manager
}

// Handle applies a controller event to the menu.
func (manager *Manager) Handle(event timekeeper.Event) {
	switch event.Type {
	case timekeeper.EventStateChange, timekeeper.EventIntervalComplete:
		manager.SetRunning(event.State == timekeeper.StateRunning)
	}
	if event.Type == timekeeper.EventNotifyError {
		return
	}
	manager.SetStatus(StatusText(event))
}

// SetStatus updates the status label.
func (manager *Manager) SetStatus(status string) {
	manager.statusItem.Label = fmt.Sprintf("Status: %s", status)
	manager.refreshMenu()
}

// SetRunning toggles the start item.
func (manager *Manager) SetRunning(running bool) {
	if manager.running == running {
		return
	}
	manager.running = running
	manager.startItem.Disabled = running
	manager.refreshMenu()
}

// Status returns the current status label.
func (manager *Manager) Status() string {
	return manager.statusItem.Label
}

// StatusText renders an event as a one-line status.
func StatusText(event timekeeper.Event) string {
	status := fmt.Sprintf("%s %s", event.Interval.Label(), timekeeper.FormatRemaining(event.Remaining))
	switch event.State {
	case timekeeper.StateIdle:
		status += " (stopped)"
	case timekeeper.StateTransitioning:
		status += " (next)"
	}
	if event.Cycles > 0 {
		status = fmt.Sprintf("%s, %d done", status, event.Cycles)
	}
	return status
}

func (manager *Manager) refreshMenu() {
	if manager.host == nil {
		return
	}
	manager.host.SetSystemTrayMenu(fyne.NewMenu(manager.title,
		manager.statusItem,
		manager.startItem,
		fyne.NewMenuItem("Reset", func() {
			invoke(manager.callbacks.OnReset)
		}),
		fyne.NewMenuItem("Toggle fullscreen", func() {
			invoke(manager.callbacks.OnToggleFullscreen)
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			invoke(manager.callbacks.OnQuit)
		}),
	))
}

func invoke(handler func()) {
	if handler != nil {
		handler()
	}
}
