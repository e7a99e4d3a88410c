package main

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"

	"workouttimer/internal/audio"
	"workouttimer/internal/core/engine"
	"workouttimer/internal/core/session"
	"workouttimer/internal/i18n"
	"workouttimer/internal/platform"
	"workouttimer/internal/storage"
	"workouttimer/internal/ui/board"
	"workouttimer/internal/ui/setup"
	"workouttimer/internal/ui/tray"
	"workouttimer/resources"
)

// controller owns the running session and switches between the setup and
// workout windows. Every session gets a new id; snapshots from a session that
// is no longer current are dropped.
type controller struct {
	mu           sync.Mutex
	app          fyne.App
	logger       *slog.Logger
	translator   *i18n.Translator
	setup        *setup.Window
	board        *board.Window
	tray         *tray.Manager
	player       *audio.Player
	tickInterval time.Duration
	cancel       context.CancelFunc
	session      int
	running      sync.WaitGroup
}

func runDesktop(settings setup.Settings, translator *i18n.Translator, logger *slog.Logger) {
	lock, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		logger.Error("single instance", "error", err)
		return
	}
	defer func() {
		_ = lock.Release()
	}()

	fyneApp := app.NewWithID("com.workouttimer.app")
	icon := appIcon(logger)
	fyneApp.SetIcon(icon)

	ctrl := newController(fyneApp, translator, logger, settings)
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		ctrl.tray = tray.New(desktopApp, translator, tray.Callbacks{
			OnNewWorkout: ctrl.newWorkout,
			OnQuit:       ctrl.quit,
		})
		desktopApp.SetSystemTrayIcon(icon)
	} else {
		logger.Info("system tray unsupported on this platform")
	}
	lock.OnActivate(func() {
		fyne.Do(ctrl.activate)
	})

	ctrl.setup.Show()
	fyneApp.Run()
	ctrl.shutdown()
}

func newController(fyneApp fyne.App, translator *i18n.Translator, logger *slog.Logger, settings setup.Settings) *controller {
	ctrl := &controller{
		app:          fyneApp,
		logger:       logger,
		translator:   translator,
		board:        board.New(fyneApp, translator),
		tickInterval: time.Second,
	}
	ctrl.setup = setup.New(fyneApp, translator, settings, ctrl.start)
	ctrl.setup.SetOnQuit(ctrl.quit)
	ctrl.board.SetOnQuit(ctrl.quit)
	return ctrl
}

func appIcon(logger *slog.Logger) fyne.Resource {
	icon, err := resources.AppIcon()
	if err != nil {
		logger.Warn("app icon unavailable", "error", err)
		return theme.MediaPlayIcon()
	}
	return icon
}

// start runs on the fyne thread when the setup window is confirmed.
func (ctrl *controller) start(settings setup.Settings) error {
	workout, err := engine.New(settings.WorkoutConfig())
	if err != nil {
		ctrl.logger.Error("invalid workout", "error", err)
		return err
	}
	if err := storage.SaveSettings(appName, settings); err != nil {
		ctrl.logger.Warn("failed to save settings", "error", err)
	}

	runner := session.New(workout, session.Config{TickInterval: ctrl.tickInterval}, ctrl.logger)
	if settings.Sound {
		if ctrl.player == nil {
			ctrl.player = audio.NewPlayer(true, ctrl.logger)
		}
		runner.SetCue(ctrl.player)
	}
	events := runner.Subscribe(8)
	ctx, cancel := context.WithCancel(context.Background())

	ctrl.mu.Lock()
	ctrl.stopLocked()
	ctrl.cancel = cancel
	id := ctrl.session
	ctrl.board.Render(workout.Snapshot())
	ctrl.board.Show()
	ctrl.mu.Unlock()

	ctrl.running.Add(2)
	go ctrl.forward(id, events)
	go func() {
		defer ctrl.running.Done()
		if err := runner.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			ctrl.logger.Error("workout stopped", "error", err)
		}
	}()
	return nil
}

func (ctrl *controller) forward(id int, events <-chan session.Event) {
	defer ctrl.running.Done()
	for event := range events {
		if !ctrl.current(id) {
			continue
		}
		snapshot := event.Snapshot
		fyne.Do(func() {
			ctrl.apply(id, snapshot)
		})
	}
}

func (ctrl *controller) current(id int) bool {
	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()
	return id == ctrl.session
}

// apply shows snapshot if session id is still the current one.
func (ctrl *controller) apply(id int, snapshot engine.Snapshot) {
	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()
	if id != ctrl.session {
		return
	}
	ctrl.board.Render(snapshot)
	if ctrl.tray != nil {
		ctrl.tray.SetStatus(ctrl.status(snapshot))
	}
}

func (ctrl *controller) status(snapshot engine.Snapshot) string {
	if snapshot.Finished {
		return ctrl.translator.T("Workout finished!")
	}
	first, _ := snapshot.Slots()
	return board.Title(ctrl.translator, first) + " " + first.Label
}

func (ctrl *controller) stop() {
	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()
	ctrl.stopLocked()
}

// shutdown stops the session and waits for its goroutines to exit.
func (ctrl *controller) shutdown() {
	ctrl.stop()
	ctrl.running.Wait()
}

// stopLocked cancels the current session and retires its id.
func (ctrl *controller) stopLocked() {
	if ctrl.cancel != nil {
		ctrl.cancel()
		ctrl.cancel = nil
	}
	ctrl.session++
}

func (ctrl *controller) newWorkout() {
	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()
	ctrl.stopLocked()
	ctrl.board.Hide()
	if ctrl.tray != nil {
		ctrl.tray.SetStatus(ctrl.translator.T("idle"))
	}
	ctrl.setup.Show()
}

// activate brings the app forward when a second launch is rejected.
func (ctrl *controller) activate() {
	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()
	if ctrl.cancel != nil {
		ctrl.board.Show()
		return
	}
	ctrl.setup.Show()
}

func (ctrl *controller) quit() {
	ctrl.stop()
	ctrl.app.Quit()
}
