package storage

import (
	"os"
	"strconv"
	"strings"

	"workouttimer/internal/core/model"
	"workouttimer/internal/ui/setup"
)

var envOptions = map[string]model.OptionKey{
	"WORKOUTTIMER_EXERCISE_TIME":     model.OptionExerciseTime,
	"WORKOUTTIMER_EXERCISE_QUANTITY": model.OptionExerciseQuantity,
	"WORKOUTTIMER_EXERCISE_REST":     model.OptionExerciseRestTime,
	"WORKOUTTIMER_SET_QUANTITY":      model.OptionSetQuantity,
	"WORKOUTTIMER_SET_REST":          model.OptionSetRestTime,
}

// ApplyEnvOverrides lets WORKOUTTIMER_* environment variables take precedence
// over the settings file:
//
//	WORKOUTTIMER_EXERCISE_TIME, WORKOUTTIMER_EXERCISE_QUANTITY,
//	WORKOUTTIMER_EXERCISE_REST, WORKOUTTIMER_SET_QUANTITY,
//	WORKOUTTIMER_SET_REST, WORKOUTTIMER_SOUND, WORKOUTTIMER_LANG
//
// Unparsable values are ignored.
func ApplyEnvOverrides(settings *setup.Settings) {
	for name, key := range envOptions {
		value := os.Getenv(name)
		if value == "" {
			continue
		}
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			settings.Options = settings.Options.With(key, parsed)
		}
	}
	if value := os.Getenv("WORKOUTTIMER_SOUND"); value != "" {
		if enabled, err := strconv.ParseBool(value); err == nil {
			settings.Sound = enabled
		}
	}
	if value := strings.TrimSpace(os.Getenv("WORKOUTTIMER_LANG")); value != "" {
		settings.Language = value
	}
}
