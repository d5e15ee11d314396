package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/borgmon/water-reminder/pkg/models"
)

// Keys kept compatible with the values written by the browser version
const (
	LastReminderKey = "lastReminder"
	DailyLogKey     = "waterReminder_data"
)

// ErrMalformedValue is returned when a stored value cannot be parsed
var ErrMalformedValue = errors.New("malformed stored value")

// Preferences is the string key-value surface the store needs.
// fyne.Preferences satisfies it.
type Preferences interface {
	String(key string) string
	SetString(key string, value string)
}

// ReminderStore persists the last reminder time and the daily drink log
type ReminderStore struct {
	prefs Preferences
}

// NewReminderStore creates a ReminderStore over the given preferences
func NewReminderStore(prefs Preferences) *ReminderStore {
	return &ReminderStore{prefs: prefs}
}

// LastReminder returns when the last reminder fired, or the zero time if never
func (rs *ReminderStore) LastReminder() (time.Time, error) {
	raw := strings.TrimSpace(rs.prefs.String(LastReminderKey))
	if raw == "" {
		return time.Time{}, nil
	}

	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s %q: %w", LastReminderKey, raw, ErrMalformedValue)
	}
	return time.UnixMilli(ms), nil
}

// SetLastReminder stores t as epoch milliseconds
func (rs *ReminderStore) SetLastReminder(t time.Time) {
	rs.prefs.SetString(LastReminderKey, strconv.FormatInt(t.UnixMilli(), 10))
}

// DailyLog returns the stored daily log. ok is false when nothing has been stored yet.
func (rs *ReminderStore) DailyLog() (log models.DailyLog, ok bool, err error) {
	raw := rs.prefs.String(DailyLogKey)
	if raw == "" {
		return models.DailyLog{}, false, nil
	}

	if err := json.Unmarshal([]byte(raw), &log); err != nil {
		return models.DailyLog{}, false, fmt.Errorf("%s: %v: %w", DailyLogKey, err, ErrMalformedValue)
	}
	if log.Count < 0 {
		return models.DailyLog{}, false, fmt.Errorf("%s: negative count %d: %w", DailyLogKey, log.Count, ErrMalformedValue)
	}
	return log, true, nil
}

// SetDailyLog stores the daily log as JSON
func (rs *ReminderStore) SetDailyLog(log models.DailyLog) {
	// Marshal cannot fail for a struct of a string and an int
	data, _ := json.Marshal(log)
	rs.prefs.SetString(DailyLogKey, string(data))
}
