package model

import "time"

// SessionType identifies the interval the timer is counting down.
type SessionType string

const (
	SessionFocus SessionType = "focus"
	SessionBreak SessionType = "break"
)

const (
	FocusDuration = 25 * time.Minute
	BreakDuration = 5 * time.Minute
)

// Duration returns the full length of the interval.
func (sessionType SessionType) Duration() time.Duration {
	if sessionType == SessionBreak {
		return BreakDuration
	}
	return FocusDuration
}

// Minutes returns the recorded length of a completed interval.
func (sessionType SessionType) Minutes() int {
	return int(sessionType.Duration() / time.Minute)
}

// Label returns the display name stored with completed sessions.
func (sessionType SessionType) Label() string {
	if sessionType == SessionBreak {
		return "Break"
	}
	return "Deep Focus"
}

// Other returns the type that follows this one.
func (sessionType SessionType) Other() SessionType {
	if sessionType == SessionBreak {
		return SessionFocus
	}
	return SessionBreak
}

// Valid reports whether the value is a known session type.
func (sessionType SessionType) Valid() bool {
	return sessionType == SessionFocus || sessionType == SessionBreak
}

// AppConfig contains application level settings read from config.yaml.
type AppConfig struct {
	StorageBackend string
	DataPath       string
	LogLevel       string
	AutoSwitch     bool
	Notifications  bool
	LaunchAtLogin  bool
}

// Preferences are the user choices persisted with the session log.
type Preferences struct {
	DailyGoal int
	DarkMode  bool
}

const DefaultDailyGoal = 4

// DefaultPreferences returns a fresh install's preferences.
func DefaultPreferences() Preferences {
	return Preferences{DailyGoal: DefaultDailyGoal, DarkMode: true}
}
