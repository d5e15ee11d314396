package store

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/borgmon/water-reminder/pkg/models"
)

func TestConfigStoreDefaults(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	cs := NewConfigStore(app)
	got := cs.Load()

	if !got.Equal(models.DefaultConfig()) {
		t.Errorf("config = %+v, want defaults %+v", got, models.DefaultConfig())
	}
}

func TestConfigStoreSaveLoad(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	cs := NewConfigStore(app)
	want := &models.Config{
		AutoStart:     true,
		StartOnLaunch: true,
		ChimeEnabled:  false,
		HotkeyEnabled: false,
	}
	cs.Save(want)

	if got := cs.Load(); !got.Equal(want) {
		t.Errorf("config = %+v, want %+v", got, want)
	}
}
