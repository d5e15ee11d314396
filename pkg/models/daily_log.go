package models

import "time"

// dayLayout matches the "Sun Oct 18 2026" form stored by earlier versions
const dayLayout = "Mon Jan 02 2006"

// DailyLog is the persisted count of drinks for a single calendar day
type DailyLog struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// DayString returns the calendar-day key for t in its own location
func DayString(t time.Time) string {
	return t.Format(dayLayout)
}

// IsFor reports whether the log belongs to the calendar day containing t
func (l DailyLog) IsFor(t time.Time) bool {
	return l.Date == DayString(t)
}
