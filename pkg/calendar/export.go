// Package calendar exports the day's planned water reminders as iCalendar
// data so they can be imported into a calendar app.
package calendar

import (
	"fmt"
	"io"
	"log"
	"strconv"
	"time"

	"github.com/borgmon/water-reminder/pkg/models"
	"github.com/emersion/go-ical"
	"github.com/google/uuid"
	"github.com/teambition/rrule-go"
)

const (
	productID    = "-//borgmon//Water Reminder//EN"
	slotDuration = 5 * time.Minute
	slotSummary  = "💧 Time to Drink Water!"
)

// PlannedReminders returns the reminder times still ahead today, given the
// last firing time (zero if never). The first slot is one gap after the last
// reminder, or now if that has already passed, and never before the window
// opens. Later slots follow every gap until the window closes.
func PlannedReminders(now, last time.Time) []time.Time {
	loc := now.Location()
	y, m, d := now.Date()
	windowStart := time.Date(y, m, d, models.WindowStartHour, 0, 0, 0, loc)
	windowEnd := time.Date(y, m, d, models.WindowEndHour, 0, 0, 0, loc)

	next := now
	if !last.IsZero() {
		if due := last.Add(models.ReminderGap); due.After(now) {
			next = due
		}
	}
	if next.Before(windowStart) {
		next = windowStart
	}

	if !next.Before(windowEnd) {
		return []time.Time{}
	}

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:     rrule.HOURLY,
		Interval: int(models.ReminderGap / time.Hour),
		Dtstart:  next.Truncate(time.Second),
		Until:    windowEnd.Add(-time.Second),
	})
	if err != nil {
		log.Printf("Error building reminder rule: %v", err)
		return []time.Time{}
	}

	slots := rule.All()
	for i := range slots {
		slots[i] = slots[i].In(loc)
	}
	return slots
}

// slotUID is stable for a given slot so re-exporting updates instead of duplicating
func slotUID(slot time.Time) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("water-reminder:"+strconv.FormatInt(slot.Unix(), 10))).String()
}

// WriteSchedule encodes slots as a VCALENDAR with one short VEVENT per slot
func WriteSchedule(w io.Writer, slots []time.Time, stamp time.Time) error {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, productID)

	for _, slot := range slots {
		event := ical.NewEvent()
		event.Props.SetText(ical.PropUID, slotUID(slot))
		event.Props.SetDateTime(ical.PropDateTimeStamp, stamp.UTC())
		event.Props.SetDateTime(ical.PropDateTimeStart, slot.UTC())
		event.Props.SetDateTime(ical.PropDateTimeEnd, slot.Add(slotDuration).UTC())
		event.Props.SetText(ical.PropSummary, slotSummary)
		event.Props.SetText(ical.PropDescription, "Don't forget to stay hydrated!")
		cal.Children = append(cal.Children, event.Component)
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("encode schedule: %w", err)
	}
	return nil
}
