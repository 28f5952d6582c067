// Package settings holds the global reminder preferences, persisted as a
// small YAML file. The scheduler receives these as an explicit parameter
// rather than reading ambient state.
package settings

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

const (
	DefaultReminderHour = 9
	MinReminderHour     = 6
	MaxReminderHour     = 21
)

type Settings struct {
	RemindersEnabled bool `mapstructure:"reminders_enabled" yaml:"reminders_enabled"`
	ReminderHour     int  `mapstructure:"reminder_hour" yaml:"reminder_hour"`
}

func Default() Settings {
	return Settings{
		RemindersEnabled: true,
		ReminderHour:     DefaultReminderHour,
	}
}

// Hour returns the reminder hour, falling back to the default when the stored
// value is outside the 6–21 window.
func (s Settings) Hour() int {
	if s.ReminderHour < MinReminderHour || s.ReminderHour > MaxReminderHour {
		return DefaultReminderHour
	}
	return s.ReminderHour
}

// Load reads settings from the given YAML file. A missing file yields the
// defaults rather than an error.
func Load(path string) (Settings, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetDefault("reminders_enabled", true)
	v.SetDefault("reminder_hour", DefaultReminderHour)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); ok {
			return Default(), nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return Default(), nil
		}
		return Settings{}, fmt.Errorf("reading settings %s: %w", path, err)
	}

	var out Settings
	if err := v.Unmarshal(&out); err != nil {
		return Settings{}, fmt.Errorf("parsing settings %s: %w", path, err)
	}
	return out, nil
}

// Save writes settings to the given YAML file, creating it if needed.
func Save(path string, s Settings) error {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.Set("reminders_enabled", s.RemindersEnabled)
	v.Set("reminder_hour", s.ReminderHour)
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing settings %s: %w", path, err)
	}
	return nil
}
