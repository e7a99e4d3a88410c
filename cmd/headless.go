package main

import (
	"context"
	"log/slog"
	"time"

	"workouttimer/internal/audio"
	"workouttimer/internal/core/engine"
	"workouttimer/internal/core/session"
	"workouttimer/internal/i18n"
	"workouttimer/internal/storage"
	"workouttimer/internal/ui/board"
	"workouttimer/internal/ui/setup"
)

// progressEvery is how often, in ticks, headless mode logs a progress line.
const progressEvery = 10

func runHeadless(ctx context.Context, settings setup.Settings, translator *i18n.Translator, logger *slog.Logger) error {
	workout, err := engine.New(settings.WorkoutConfig())
	if err != nil {
		return err
	}
	if err := storage.SaveSettings(appName, settings); err != nil {
		logger.Warn("failed to save settings", "error", err)
	}

	runner := session.New(workout, session.Config{TickInterval: time.Second}, logger)
	if settings.Sound {
		runner.SetCue(audio.NewPlayer(true, logger))
	}
	events := runner.Subscribe(16)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for event := range events {
			logEvent(logger, translator, event)
		}
	}()

	err = runner.Run(ctx)
	<-done
	return err
}

func logEvent(logger *slog.Logger, translator *i18n.Translator, event session.Event) {
	snapshot := event.Snapshot
	switch event.Type {
	case session.EventPhaseChange:
		first, second := snapshot.Slots()
		attrs := []any{"phase", board.Title(translator, first)}
		if second.Visible() {
			attrs = append(attrs, "detail", board.Title(translator, second))
		}
		logger.Info("phase", attrs...)
	case session.EventTick:
		if snapshot.Elapsed%progressEvery != 0 {
			return
		}
		first, second := snapshot.Slots()
		attrs := []any{
			"workout", snapshot.Workout.Label,
			"percent", snapshot.Workout.Progress,
			board.Title(translator, first), first.Label,
		}
		if second.Visible() {
			attrs = append(attrs, board.Title(translator, second), second.Label)
		}
		logger.Info("progress", attrs...)
	case session.EventFinished:
		logger.Info(translator.T("Workout finished!"), "total", snapshot.Workout.Label)
	}
}
