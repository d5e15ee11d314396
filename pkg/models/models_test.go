package models

import (
	"testing"
	"time"
)

func TestIsWithinReminderWindow(t *testing.T) {
	for h := 0; h < 24; h++ {
		want := h >= 8 && h < 20
		if got := IsWithinReminderWindow(h); got != want {
			t.Errorf("IsWithinReminderWindow(%d) = %v, want %v", h, got, want)
		}
	}
}

func TestFormatCountdown(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{7325000 * time.Millisecond, "02:02:05"},
		{30 * time.Minute, "00:30:00"},
		{2 * time.Hour, "02:00:00"},
		{999 * time.Millisecond, "00:00:00"},
		{-5 * time.Second, "00:00:00"},
		{61*time.Second + 500*time.Millisecond, "00:01:01"},
	}

	for _, tt := range tests {
		if got := FormatCountdown(tt.in); got != tt.want {
			t.Errorf("FormatCountdown(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWindowLabel(t *testing.T) {
	if got := WindowLabel(); got != "8 AM - 8 PM" {
		t.Errorf("WindowLabel() = %q, want %q", got, "8 AM - 8 PM")
	}
}

func TestDailyLogIsFor(t *testing.T) {
	day := time.Date(2026, time.October, 18, 10, 0, 0, 0, time.Local)
	log := DailyLog{Date: DayString(day), Count: 3}

	if log.Date != "Sun Oct 18 2026" {
		t.Errorf("date = %q, want %q", log.Date, "Sun Oct 18 2026")
	}
	if !log.IsFor(day.Add(13 * time.Hour)) {
		t.Error("expected log to match a later time on the same day")
	}
	if log.IsFor(day.Add(14 * time.Hour)) {
		t.Error("expected log not to match the next day")
	}
}

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	if c.AutoStart || c.StartOnLaunch {
		t.Error("expected auto start and start on launch to default off")
	}
	if !c.ChimeEnabled || !c.HotkeyEnabled {
		t.Error("expected chime and hotkey to default on")
	}

	other := *c
	if !c.Equal(&other) {
		t.Error("expected copies to be equal")
	}
	other.ChimeEnabled = false
	if c.Equal(&other) {
		t.Error("expected configs to differ")
	}
}
