package tray

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"workouttimer/internal/i18n"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnNewWorkout func()
	OnQuit       func()
}

// Manager handles system tray state.
type Manager struct {
	app        desktop.App
	translator *i18n.Translator
	statusItem *fyne.MenuItem
	callbacks  Callbacks
	status     string
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, translator *i18n.Translator, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:        app,
		translator: translator,
		callbacks:  callbacks,
		status:     translator.T("idle"),
	}
	manager.statusItem = fyne.NewMenuItem("", nil)
	manager.statusItem.Disabled = true
	manager.refreshMenu()
	return manager
}

// SetStatus updates the status line.
func (manager *Manager) SetStatus(status string) {
	if status == manager.status {
		return
	}
	manager.status = status
	manager.refreshMenu()
}

// Status returns the current status line.
func (manager *Manager) Status() string {
	return manager.statusItem.Label
}

func (manager *Manager) refreshMenu() {
	manager.statusItem.Label = manager.translator.Tf("Status: %s", manager.status)
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu("Workout Timer",
		manager.statusItem,
		fyne.NewMenuItem(manager.translator.T("New workout"), func() {
			if manager.callbacks.OnNewWorkout != nil {
				manager.callbacks.OnNewWorkout()
			}
		}),
		fyne.NewMenuItem(manager.translator.T("Quit"), func() {
			if manager.callbacks.OnQuit != nil {
				manager.callbacks.OnQuit()
			}
		}),
	))
}
