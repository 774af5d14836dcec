package preferences

import (
	"focustrack/internal/core/model"
)

// Settings defines editable user preferences. DailyGoal and DarkMode live in
// the analytics store; the rest are written to the YAML config.
type Settings struct {
	DailyGoal     int
	DarkMode      bool
	AutoSwitch    bool
	Notifications bool
	LaunchAtLogin bool
}

// FromState builds Settings from the stored preferences and the app config.
func FromState(prefs model.Preferences, config model.AppConfig) Settings {
	return Settings{
		DailyGoal:     prefs.DailyGoal,
		DarkMode:      prefs.DarkMode,
		AutoSwitch:    config.AutoSwitch,
		Notifications: config.Notifications,
		LaunchAtLogin: config.LaunchAtLogin,
	}
}

// Preferences returns the store-backed part of settings.
func (settings Settings) Preferences() model.Preferences {
	return model.Preferences{DailyGoal: settings.DailyGoal, DarkMode: settings.DarkMode}
}

// ApplyTo copies the config-backed part of settings into config.
func (settings Settings) ApplyTo(config model.AppConfig) model.AppConfig {
	config.AutoSwitch = settings.AutoSwitch
	config.Notifications = settings.Notifications
	config.LaunchAtLogin = settings.LaunchAtLogin
	return config
}
