package store

import (
	"errors"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/borgmon/water-reminder/pkg/models"
)

func setupReminderStore(t *testing.T) (*ReminderStore, Preferences) {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)
	prefs := app.Preferences()
	return NewReminderStore(prefs), prefs
}

func TestLastReminderAbsent(t *testing.T) {
	rs, _ := setupReminderStore(t)

	last, err := rs.LastReminder()
	if err != nil {
		t.Fatalf("last reminder: %v", err)
	}
	if !last.IsZero() {
		t.Errorf("last reminder = %v, want zero time", last)
	}
}

func TestLastReminderRoundTrip(t *testing.T) {
	rs, prefs := setupReminderStore(t)

	at := time.UnixMilli(1760000000123)
	rs.SetLastReminder(at)

	if raw := prefs.String(LastReminderKey); raw != "1760000000123" {
		t.Errorf("stored value = %q, want %q", raw, "1760000000123")
	}

	got, err := rs.LastReminder()
	if err != nil {
		t.Fatalf("last reminder: %v", err)
	}
	if !got.Equal(at) {
		t.Errorf("last reminder = %v, want %v", got, at)
	}
}

func TestLastReminderMalformed(t *testing.T) {
	rs, prefs := setupReminderStore(t)
	prefs.SetString(LastReminderKey, "yesterday")

	_, err := rs.LastReminder()
	if !errors.Is(err, ErrMalformedValue) {
		t.Errorf("err = %v, want ErrMalformedValue", err)
	}
}

func TestDailyLogAbsent(t *testing.T) {
	rs, _ := setupReminderStore(t)

	_, ok, err := rs.DailyLog()
	if err != nil {
		t.Fatalf("daily log: %v", err)
	}
	if ok {
		t.Error("expected no stored daily log")
	}
}

func TestDailyLogRoundTrip(t *testing.T) {
	rs, prefs := setupReminderStore(t)

	rs.SetDailyLog(models.DailyLog{Date: "Sun Oct 18 2026", Count: 4})

	want := `{"date":"Sun Oct 18 2026","count":4}`
	if raw := prefs.String(DailyLogKey); raw != want {
		t.Errorf("stored value = %q, want %q", raw, want)
	}

	log, ok, err := rs.DailyLog()
	if err != nil {
		t.Fatalf("daily log: %v", err)
	}
	if !ok {
		t.Fatal("expected stored daily log")
	}
	if log.Date != "Sun Oct 18 2026" || log.Count != 4 {
		t.Errorf("daily log = %+v", log)
	}
}

func TestDailyLogMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "{date:"},
		{"wrong type", `{"date":"Sun Oct 18 2026","count":"three"}`},
		{"negative count", `{"date":"Sun Oct 18 2026","count":-1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs, prefs := setupReminderStore(t)
			prefs.SetString(DailyLogKey, tt.raw)

			_, ok, err := rs.DailyLog()
			if !errors.Is(err, ErrMalformedValue) {
				t.Errorf("err = %v, want ErrMalformedValue", err)
			}
			if ok {
				t.Error("expected ok=false for malformed value")
			}
		})
	}
}
