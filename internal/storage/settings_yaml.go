package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"workouttimer/internal/core/model"
	"workouttimer/internal/ui/setup"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	ExerciseTimeSeconds int    `yaml:"exercise_time_seconds"`
	ExerciseQuantity    int    `yaml:"exercise_quantity"`
	ExerciseRestSeconds int    `yaml:"exercise_rest_seconds"`
	SetQuantity         int    `yaml:"set_quantity"`
	SetRestSeconds      int    `yaml:"set_rest_seconds"`
	Sound               *bool  `yaml:"sound,omitempty"`
	Language            string `yaml:"language,omitempty"`
}

// LoadSettings reads the last used workout from YAML.
// If the file does not exist, default settings are returned.
func LoadSettings(appName string) (setup.Settings, error) {
	settings := setup.DefaultSettings()
	configPath, err := ResolveConfigPath(appName)
	if err != nil {
		return settings, err
	}

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes the workout settings to YAML.
func SaveSettings(appName string, settings setup.Settings) error {
	configPath, err := ResolveConfigPath(appName)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	sound := settings.Sound
	fileData := yamlSettings{
		ExerciseTimeSeconds: settings.Options.Get(model.OptionExerciseTime),
		ExerciseQuantity:    settings.Options.Get(model.OptionExerciseQuantity),
		ExerciseRestSeconds: settings.Options.Get(model.OptionExerciseRestTime),
		SetQuantity:         settings.Options.Get(model.OptionSetQuantity),
		SetRestSeconds:      settings.Options.Get(model.OptionSetRestTime),
		Sound:               &sound,
		Language:            settings.Language,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

// ResolveConfigPath returns where the settings file for appName lives.
func ResolveConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func applyYamlSettings(settings *setup.Settings, fileData yamlSettings) {
	values := map[model.OptionKey]int{
		model.OptionExerciseTime:     fileData.ExerciseTimeSeconds,
		model.OptionExerciseQuantity: fileData.ExerciseQuantity,
		model.OptionExerciseRestTime: fileData.ExerciseRestSeconds,
		model.OptionSetQuantity:      fileData.SetQuantity,
		model.OptionSetRestTime:      fileData.SetRestSeconds,
	}
	for key, value := range values {
		if value > 0 {
			settings.Options = settings.Options.With(key, value)
		}
	}

	if fileData.Sound != nil {
		settings.Sound = *fileData.Sound
	}
	settings.Language = fileData.Language
}
