package board

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"workouttimer/internal/core/engine"
	"workouttimer/internal/i18n"
)

var (
	workoutColor  = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	setColor      = color.NRGBA{R: 255, G: 140, B: 0, A: 255}
	exerciseColor = color.NRGBA{R: 220, G: 40, B: 40, A: 255}
	restColor     = color.NRGBA{R: 60, G: 190, B: 90, A: 255}
	backdrop      = color.NRGBA{R: 0x1e, G: 0x1e, B: 0x1e, A: 0xff}
)

// gauge is one titled progress bar.
type gauge struct {
	title  *canvas.Text
	bar    *widget.ProgressBar
	label  string
	box    *fyne.Container
	accent *canvas.Rectangle
}

func newGauge() *gauge {
	view := &gauge{
		title:  canvas.NewText("", workoutColor),
		bar:    widget.NewProgressBar(),
		accent: canvas.NewRectangle(workoutColor),
	}
	view.title.TextStyle = fyne.TextStyle{Bold: true}
	view.title.TextSize = 16
	view.bar.Min = 0
	view.bar.Max = 100
	view.bar.TextFormatter = func() string { return view.label }
	view.accent.SetMinSize(fyne.NewSize(6, 0))
	view.box = container.NewBorder(view.title, nil, view.accent, nil, view.bar)
	return view
}

// setUnsafe must run on the fyne thread.
func (view *gauge) setUnsafe(title string, tint color.Color, state engine.Gauge) {
	view.title.Text = title
	view.title.Color = tint
	view.title.Refresh()
	view.accent.FillColor = tint
	view.accent.Refresh()
	view.label = state.Label
	view.bar.SetValue(float64(state.Progress))
}

// Window renders the workout gauges: the full workout, then the set or set
// rest, then the exercise or exercise rest.
type Window struct {
	window     fyne.Window
	translator *i18n.Translator
	workout    *gauge
	primary    *gauge
	secondary  *gauge
	banner     *widget.Label
	hint       *widget.Label
	onQuit     func()
	visible    bool
}

// New creates the workout window.
func New(app fyne.App, translator *i18n.Translator) *Window {
	window := app.NewWindow("Workout Timer")
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	board := &Window{
		window:     window,
		translator: translator,
		workout:    newGauge(),
		primary:    newGauge(),
		secondary:  newGauge(),
		banner:     widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		hint:       widget.NewLabelWithStyle(translator.T("Press q or Esc to quit"), fyne.TextAlignCenter, fyne.TextStyle{Italic: true}),
	}
	board.banner.Hide()

	gauges := container.NewVBox(board.workout.box, board.primary.box, board.secondary.box, board.banner)
	content := container.NewBorder(nil, board.hint, nil, nil, gauges)
	window.SetContent(container.NewStack(canvas.NewRectangle(backdrop), container.NewPadded(content)))
	window.Resize(fyne.NewSize(520, 300))

	window.Canvas().SetOnTypedRune(func(r rune) {
		if r == 'q' || r == 'Q' {
			board.quit()
		}
	})
	window.Canvas().SetOnTypedKey(func(event *fyne.KeyEvent) {
		if event.Name == fyne.KeyEscape {
			board.quit()
		}
	})
	window.SetCloseIntercept(board.quit)

	return board
}

// SetOnQuit sets the quit handler.
func (board *Window) SetOnQuit(handler func()) {
	board.onQuit = handler
}

// Show displays the window.
func (board *Window) Show() {
	board.visible = true
	board.window.Show()
	board.window.RequestFocus()
}

// Hide hides the window.
func (board *Window) Hide() {
	board.visible = false
	board.window.Hide()
}

// Visible reports whether the window was last shown rather than hidden.
func (board *Window) Visible() bool {
	return board.visible
}

// Update schedules a redraw from any goroutine.
func (board *Window) Update(snapshot engine.Snapshot) {
	fyne.Do(func() {
		board.Render(snapshot)
	})
}

// Render redraws the gauges. It must run on the fyne thread.
func (board *Window) Render(snapshot engine.Snapshot) {
	board.workout.setUnsafe(Title(board.translator, snapshot.Workout), workoutColor, snapshot.Workout)

	first, second := snapshot.Slots()
	board.primary.setUnsafe(Title(board.translator, first), tint(first.Kind), first)
	if second.Visible() {
		board.secondary.setUnsafe(Title(board.translator, second), tint(second.Kind), second)
		board.secondary.box.Show()
	} else {
		board.secondary.box.Hide()
	}

	if snapshot.Finished {
		board.banner.SetText(board.translator.T("Workout finished!"))
		board.banner.Show()
	} else {
		board.banner.Hide()
	}
}

func (board *Window) quit() {
	if board.onQuit != nil {
		board.onQuit()
	}
}

// Title returns the localized title of a gauge.
func Title(translator *i18n.Translator, state engine.Gauge) string {
	switch state.Kind {
	case engine.KindWorkout:
		return translator.T("Full Workout Timer")
	case engine.KindSet:
		return translator.Tf("Set %d/%d Timer", state.Ordinal, state.Quantity)
	case engine.KindExercise:
		return translator.Tf("Exercise %d/%d Timer", state.Ordinal, state.Quantity)
	case engine.KindSetRest:
		return translator.T("Set Rest Timer")
	case engine.KindExerciseRest:
		return translator.T("Exercise Rest Timer")
	default:
		return ""
	}
}

func tint(kind engine.Kind) color.Color {
	switch kind {
	case engine.KindSet:
		return setColor
	case engine.KindExercise:
		return exerciseColor
	case engine.KindSetRest, engine.KindExerciseRest:
		return restColor
	default:
		return workoutColor
	}
}
