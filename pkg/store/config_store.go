package store

import (
	"fyne.io/fyne/v2"
	"github.com/borgmon/water-reminder/pkg/models"
)

// ConfigStore handles configuration persistence using Fyne preferences
type ConfigStore struct {
	app fyne.App
}

// NewConfigStore creates a new ConfigStore instance
func NewConfigStore(app fyne.App) *ConfigStore {
	return &ConfigStore{app: app}
}

// Load loads configuration from preferences
func (cs *ConfigStore) Load() *models.Config {
	prefs := cs.app.Preferences()
	defaults := models.DefaultConfig()

	return &models.Config{
		AutoStart:     prefs.BoolWithFallback("auto_start", defaults.AutoStart),
		StartOnLaunch: prefs.BoolWithFallback("start_on_launch", defaults.StartOnLaunch),
		ChimeEnabled:  prefs.BoolWithFallback("chime_enabled", defaults.ChimeEnabled),
		HotkeyEnabled: prefs.BoolWithFallback("hotkey_enabled", defaults.HotkeyEnabled),
	}
}

// Save saves configuration to preferences
func (cs *ConfigStore) Save(config *models.Config) {
	prefs := cs.app.Preferences()

	prefs.SetBool("auto_start", config.AutoStart)
	prefs.SetBool("start_on_launch", config.StartOnLaunch)
	prefs.SetBool("chime_enabled", config.ChimeEnabled)
	prefs.SetBool("hotkey_enabled", config.HotkeyEnabled)
}
