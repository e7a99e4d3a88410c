package main

import (
	"flag"
	"log/slog"

	"workouttimer/internal/core/model"
	"workouttimer/internal/ui/setup"
)

type cliFlags struct {
	set *flag.FlagSet

	exerciseTime     int
	exerciseQuantity int
	exerciseRest     int
	setQuantity      int
	setRest          int
	noSound          bool
	lang             string
	headless         bool
	verbose          bool
}

func parseFlags(args []string) (*cliFlags, error) {
	flags := &cliFlags{set: flag.NewFlagSet("workouttimer", flag.ContinueOnError)}
	set := flags.set
	set.IntVar(&flags.exerciseTime, "exercise-time", 0, "exercise time in seconds")
	set.IntVar(&flags.exerciseQuantity, "exercises", 0, "number of exercises per set")
	set.IntVar(&flags.exerciseRest, "exercise-rest", 0, "rest between exercises in seconds")
	set.IntVar(&flags.setQuantity, "sets", 0, "number of sets")
	set.IntVar(&flags.setRest, "set-rest", 0, "rest between sets in seconds")
	set.BoolVar(&flags.noSound, "no-sound", false, "disable sound cues")
	set.StringVar(&flags.lang, "lang", "", "interface language (en, pl, pt, es, ru)")
	set.BoolVar(&flags.headless, "headless", false, "run in the terminal without windows")
	set.BoolVar(&flags.verbose, "v", false, "log every phase change")
	if err := set.Parse(args); err != nil {
		return nil, err
	}
	return flags, nil
}

// apply overrides settings with the flags given on the command line.
func (flags *cliFlags) apply(settings *setup.Settings) {
	flags.set.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "exercise-time":
			settings.Options = settings.Options.With(model.OptionExerciseTime, flags.exerciseTime)
		case "exercises":
			settings.Options = settings.Options.With(model.OptionExerciseQuantity, flags.exerciseQuantity)
		case "exercise-rest":
			settings.Options = settings.Options.With(model.OptionExerciseRestTime, flags.exerciseRest)
		case "sets":
			settings.Options = settings.Options.With(model.OptionSetQuantity, flags.setQuantity)
		case "set-rest":
			settings.Options = settings.Options.With(model.OptionSetRestTime, flags.setRest)
		case "no-sound":
			settings.Sound = !flags.noSound
		case "lang":
			settings.Language = flags.lang
		}
	})
}

func (flags *cliFlags) logLevel() slog.Level {
	if flags.verbose {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
