package models

// Config holds application configuration
type Config struct {
	AutoStart     bool `json:"auto_start"`      // launch at login
	StartOnLaunch bool `json:"start_on_launch"` // start reminders when the app starts
	ChimeEnabled  bool `json:"chime_enabled"`   // play a sound when a reminder fires
	HotkeyEnabled bool `json:"hotkey_enabled"`  // Ctrl+Shift+W logs a drink
}

// DefaultConfig returns the settings used on first launch
func DefaultConfig() *Config {
	return &Config{
		ChimeEnabled:  true,
		HotkeyEnabled: true,
	}
}

// Equal reports whether two configs hold the same settings
func (c *Config) Equal(other *Config) bool {
	if c == nil || other == nil {
		return c == other
	}
	return *c == *other
}
