package setup

import (
	"workouttimer/internal/core/model"
)

// Settings defines the values collected before a workout starts.
type Settings struct {
	Options  model.Options
	Sound    bool
	Language string
}

// DefaultSettings returns the settings used on first start.
func DefaultSettings() Settings {
	return Settings{
		Options: model.DefaultOptions(),
		Sound:   true,
	}
}

// WorkoutConfig converts settings to the engine configuration.
func (settings Settings) WorkoutConfig() model.WorkoutConfig {
	return settings.Options.Config()
}
