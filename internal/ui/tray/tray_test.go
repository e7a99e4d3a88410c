package tray

import (
	"testing"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workouttimer/internal/i18n"
)

type fakeDesktop struct {
	menu *fyne.Menu
}

func (app *fakeDesktop) SetSystemTrayMenu(menu *fyne.Menu) { app.menu = menu }
func (app *fakeDesktop) SetSystemTrayIcon(fyne.Resource)   {}
func (app *fakeDesktop) SetSystemTrayWindow(fyne.Window)   {}

func TestMenu(t *testing.T) {
	app := &fakeDesktop{}
	newWorkouts, quits := 0, 0
	manager := New(app, i18n.New("en"), Callbacks{
		OnNewWorkout: func() { newWorkouts++ },
		OnQuit:       func() { quits++ },
	})

	require.NotNil(t, app.menu)
	require.Len(t, app.menu.Items, 3)
	assert.Equal(t, "Status: idle", app.menu.Items[0].Label)
	assert.True(t, app.menu.Items[0].Disabled)

	app.menu.Items[1].Action()
	app.menu.Items[2].Action()
	assert.Equal(t, 1, newWorkouts)
	assert.Equal(t, 1, quits)

	manager.SetStatus("Set 1/3 Timer 00:00:12/00:10:03")
	assert.Equal(t, "Status: Set 1/3 Timer 00:00:12/00:10:03", manager.Status())
	assert.Equal(t, manager.Status(), app.menu.Items[0].Label)
}
