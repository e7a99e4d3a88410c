package setup

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"workouttimer/internal/core/model"
	"workouttimer/internal/core/phase"
	"workouttimer/internal/i18n"
)

// Window collects the five workout parameters.
type Window struct {
	window     fyne.Window
	translator *i18n.Translator
	settings   Settings
	onStart    func(Settings) error
	onQuit     func()
	visible    bool
	entries    []*widget.Entry
	sound      *widget.Check
	total      *widget.Label
	errorLabel *widget.Label
}

// New creates the setup window. The window closes once onStart accepts the
// settings; an error from onStart is shown inline instead.
func New(app fyne.App, translator *i18n.Translator, settings Settings, onStart func(Settings) error) *Window {
	window := app.NewWindow("Workout Timer")

	setup := &Window{
		window:     window,
		translator: translator,
		settings:   settings,
		onStart:    onStart,
		sound:      widget.NewCheck(translator.T("Sound cues"), nil),
		total:      widget.NewLabel(""),
		errorLabel: widget.NewLabel(""),
		entries:    make([]*widget.Entry, len(settings.Options)),
	}
	setup.errorLabel.Importance = widget.DangerImportance
	setup.errorLabel.Hide()

	rows := container.NewVBox()
	for i, option := range settings.Options {
		entry := widget.NewEntry()
		entry.OnChanged = func(string) { setup.refreshTotal() }
		setup.entries[i] = entry

		unit := ""
		if option.Seconds {
			unit = translator.T("sec")
		}
		label := widget.NewLabel(fmt.Sprintf("%s (1-%d)", translator.T(option.Name), option.Max))
		rows.Add(container.NewBorder(nil, nil, label, widget.NewLabel(unit), entry))
	}

	startButton := widget.NewButton(translator.T("Start"), setup.handleStart)
	startButton.Importance = widget.HighImportance
	quitButton := widget.NewButton(translator.T("Quit"), func() {
		if setup.onQuit != nil {
			setup.onQuit()
		}
	})
	buttons := container.NewHBox(startButton, layout.NewSpacer(), quitButton)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Workout Timer", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		rows,
		setup.sound,
		setup.total,
		setup.errorLabel,
	)
	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(460, 380))

	setup.UpdateSettings(settings)
	return setup
}

// SetOnQuit sets the quit handler.
func (setup *Window) SetOnQuit(handler func()) {
	setup.onQuit = handler
}

// Show displays the setup window.
func (setup *Window) Show() {
	setup.visible = true
	setup.window.Show()
	setup.window.RequestFocus()
}

// Hide hides the setup window.
func (setup *Window) Hide() {
	setup.visible = false
	setup.window.Hide()
}

// Visible reports whether the window was last shown rather than hidden.
func (setup *Window) Visible() bool {
	return setup.visible
}

// UpdateSettings replaces window values.
func (setup *Window) UpdateSettings(settings Settings) {
	setup.settings = settings
	for i, option := range settings.Options {
		setup.entries[i].SetText(strconv.Itoa(option.Value))
	}
	setup.sound.SetChecked(settings.Sound)
	setup.refreshTotal()
}

// Settings parses the form. Values out of range are clamped to the option
// bounds; unparsable values are reported as an error.
func (setup *Window) Settings() (Settings, error) {
	settings := setup.settings
	for i, option := range settings.Options {
		value, err := strconv.Atoi(setup.entries[i].Text)
		if err != nil {
			return settings, fmt.Errorf("%s: %w", setup.translator.T(option.Name), model.ErrInvalidConfig)
		}
		settings.Options = settings.Options.With(option.Key, value)
	}
	settings.Sound = setup.sound.Checked
	if err := settings.WorkoutConfig().Validate(); err != nil {
		return settings, err
	}
	return settings, nil
}

func (setup *Window) refreshTotal() {
	settings, err := setup.Settings()
	if err != nil {
		setup.total.SetText("")
		return
	}
	total := settings.WorkoutConfig().TotalTime()
	setup.total.SetText(setup.translator.Tf("Total workout time: %s", phase.FormatClock(total)))
}

func (setup *Window) handleStart() {
	settings, err := setup.Settings()
	if err != nil {
		setup.errorLabel.SetText(err.Error())
		setup.errorLabel.Show()
		return
	}
	setup.errorLabel.Hide()

	for i, option := range settings.Options {
		setup.entries[i].SetText(strconv.Itoa(option.Value))
	}
	setup.settings = settings
	if setup.onStart != nil {
		if err := setup.onStart(settings); err != nil {
			setup.errorLabel.SetText(err.Error())
			setup.errorLabel.Show()
			return
		}
	}
	setup.Hide()
}
