package models

import (
	"fmt"
	"time"
)

// Reminder window and gap. These are fixed and not user configurable.
const (
	WindowStartHour = 8  // first hour (inclusive) reminders may fire
	WindowEndHour   = 20 // hour (exclusive) after which reminders pause
	ReminderGap     = 2 * time.Hour
)

// IsWithinReminderWindow reports whether a local hour falls inside the reminder window
func IsWithinReminderWindow(hour int) bool {
	return hour >= WindowStartHour && hour < WindowEndHour
}

// WindowLabel renders the reminder window for status text, e.g. "8 AM - 8 PM"
func WindowLabel() string {
	start := time.Date(2000, 1, 1, WindowStartHour, 0, 0, 0, time.Local)
	end := time.Date(2000, 1, 1, WindowEndHour, 0, 0, 0, time.Local)
	return start.Format("3 PM") + " - " + end.Format("3 PM")
}

// FormatCountdown renders a remaining duration as HH:MM:SS, flooring to whole seconds
func FormatCountdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	ms := d.Milliseconds()
	hrs := ms / 3600000
	mins := (ms % 3600000) / 60000
	secs := (ms % 60000) / 1000
	return fmt.Sprintf("%02d:%02d:%02d", hrs, mins, secs)
}
