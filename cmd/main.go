package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"workouttimer/internal/i18n"
	"workouttimer/internal/storage"
)

const appName = "WorkoutTimer"

func main() {
	flags, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: flags.logLevel()}))

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		logger.Warn("failed to load settings, using defaults", "error", err)
	}
	storage.ApplyEnvOverrides(&settings)
	flags.apply(&settings)

	translator := i18n.New(i18n.Detect(settings.Language))
	logger.Debug("language selected", "lang", translator.Lang())

	if flags.headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		err := runHeadless(ctx, settings, translator, logger)
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("workout failed", "error", err)
			stop()
			os.Exit(1)
		}
		return
	}

	runDesktop(settings, translator, logger)
}
