// Package reminder decides when to remind the user to drink water.
//
// A Scheduler polls the wall clock once a second while active and fires a
// reminder whenever the local time is inside the reminder window and at least
// models.ReminderGap has passed since the last one. The last firing time is
// persisted, so the decision survives restarts. Polling wall-clock deltas
// instead of arming a single long timer keeps the schedule correct across
// system sleep and clock changes.
//
// A second 1 Hz ticker drives the countdown shown to the user. It is purely
// informational and never fires reminders itself.
package reminder

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/borgmon/water-reminder/pkg/models"
)

// Store persists reminder state
type Store interface {
	LastReminder() (time.Time, error)
	SetLastReminder(t time.Time)
	DailyLog() (models.DailyLog, bool, error)
	SetDailyLog(log models.DailyLog)
}

// Notifier delivers a message to the user, fire-and-forget
type Notifier interface {
	Notify(title, body string)
}

// Display is where the scheduler writes status text and the drink count
type Display interface {
	SetStatus(message string)
	SetCount(count int)
	SetActive(active bool)
}

// Options tune timing and hooks. The zero value is production behaviour.
type Options struct {
	Now          func() time.Time // defaults to time.Now
	TickInterval time.Duration    // poll and countdown period, defaults to 1s
	StatusHold   time.Duration    // how long "reminder sent" stays up, defaults to 5s
	OnReminder   func(at time.Time)
}

// Snapshot is a point-in-time view of the scheduler
type Snapshot struct {
	Active             bool
	WaterCount         int
	CurrentTime        time.Time
	WithinWindow       bool
	LastReminder       time.Time
	CountdownRunning   bool
	CountdownRemaining time.Duration
}

// Scheduler owns all reminder state. Its methods are safe for concurrent
// use; every operation and timer callback runs under one mutex so they never
// interleave.
type Scheduler struct {
	mu sync.Mutex

	store    Store
	notifier Notifier
	display  Display

	now          func() time.Time
	tickInterval time.Duration
	statusHold   time.Duration
	onReminder   func(at time.Time)

	active     bool
	waterCount int
	countDay   string // calendar day waterCount belongs to

	pollCancel context.CancelFunc

	countdownCancel    context.CancelFunc
	countdownRunning   bool
	countdownRemaining time.Duration

	statusTimer *time.Timer
	statusGen   uint64 // bumped whenever a pending status revert goes stale

	malformedLogged bool
}

// New creates a stopped Scheduler
func New(store Store, notifier Notifier, display Display, opts Options) *Scheduler {
	s := &Scheduler{
		store:        store,
		notifier:     notifier,
		display:      display,
		now:          opts.Now,
		tickInterval: opts.TickInterval,
		statusHold:   opts.StatusHold,
		onReminder:   opts.OnReminder,
	}

	if s.now == nil {
		s.now = time.Now
	}
	if s.tickInterval <= 0 {
		s.tickInterval = time.Second
	}
	if s.statusHold <= 0 {
		s.statusHold = 5 * time.Second
	}

	return s
}

func activeStatus() string {
	return fmt.Sprintf("Water reminders are active! (%s)", models.WindowLabel())
}

func pausedStatus() string {
	return fmt.Sprintf("Outside reminder hours (%s). Reminders paused.", models.WindowLabel())
}

const stoppedStatus = `Water reminders are stopped. Click "Start Reminders" to begin.`

// Start begins reminding. It does nothing if already active.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active {
		return
	}

	s.active = true
	s.display.SetActive(true)
	s.display.SetStatus(activeStatus())
	log.Println("Water reminders started")

	now := s.now()
	if models.IsWithinReminderWindow(now.Hour()) {
		elapsed := now.Sub(s.lastReminder())
		if elapsed >= models.ReminderGap {
			s.fireReminder(now)
		} else {
			s.startCountdown(models.ReminderGap - elapsed)
		}
	}

	var ctx context.Context
	ctx, s.pollCancel = context.WithCancel(context.Background())
	s.every(ctx, s.checkAndSendReminder)
}

// Stop cancels the poll and the countdown. It does nothing if not active.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return
	}

	s.active = false
	s.display.SetActive(false)

	if s.pollCancel != nil {
		s.pollCancel()
		s.pollCancel = nil
	}
	s.stopCountdown()
	if s.statusTimer != nil {
		s.statusTimer.Stop()
		s.statusTimer = nil
	}
	s.statusGen++

	s.display.SetStatus(stoppedStatus)
	s.notifier.Notify("Water Reminders Stopped", "Reminders have been disabled.")
	log.Println("Water reminders stopped")
}

// every runs fn under the lock each tick until ctx is cancelled. A tick that
// races with cancellation is dropped.
func (s *Scheduler) every(ctx context.Context, fn func()) {
	go func() {
		ticker := time.NewTicker(s.tickInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.mu.Lock()
				if ctx.Err() == nil {
					fn()
				}
				s.mu.Unlock()
			}
		}
	}()
}

// lastReminder reads the persisted firing time. A malformed value is treated
// as "never" so the next check fires and overwrites it. It is logged once
// until a good value is read again.
func (s *Scheduler) lastReminder() time.Time {
	last, err := s.store.LastReminder()
	if err != nil {
		if !s.malformedLogged {
			log.Printf("Ignoring stored reminder time: %v", err)
			s.malformedLogged = true
		}
		return time.Time{}
	}
	s.malformedLogged = false
	return last
}

func (s *Scheduler) checkAndSendReminder() {
	if !s.active {
		return
	}

	now := s.now()
	if models.IsWithinReminderWindow(now.Hour()) && now.Sub(s.lastReminder()) >= models.ReminderGap {
		s.fireReminder(now)
	}
}

func (s *Scheduler) fireReminder(now time.Time) {
	timeString := now.Format("15:04")

	s.notifier.Notify("💧 Time to Drink Water!", fmt.Sprintf("It's %s - Don't forget to stay hydrated!", timeString))
	s.display.SetStatus(fmt.Sprintf("💧 Reminder sent at %s! Time to drink water!", timeString))
	log.Printf("Reminder fired at %s", timeString)

	if s.statusTimer != nil {
		s.statusTimer.Stop()
	}
	// Stop does not catch a callback already waiting on the lock
	s.statusGen++
	gen := s.statusGen
	s.statusTimer = time.AfterFunc(s.statusHold, func() { s.restoreActiveStatus(gen) })

	s.store.SetLastReminder(now)
	s.startCountdown(models.ReminderGap)

	if s.onReminder != nil {
		s.onReminder(now)
	}
}

func (s *Scheduler) restoreActiveStatus(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active && gen == s.statusGen {
		s.display.SetStatus(activeStatus())
	}
}

// startCountdown replaces any running countdown with one of length d
func (s *Scheduler) startCountdown(d time.Duration) {
	s.stopCountdown()

	s.countdownRemaining = d
	s.countdownRunning = true

	var ctx context.Context
	ctx, s.countdownCancel = context.WithCancel(context.Background())
	s.every(ctx, s.countdownTick)
}

func (s *Scheduler) stopCountdown() {
	if s.countdownCancel != nil {
		s.countdownCancel()
		s.countdownCancel = nil
	}
	s.countdownRunning = false
}

func (s *Scheduler) countdownTick() {
	if !s.active || !s.countdownRunning {
		return
	}

	if !models.IsWithinReminderWindow(s.now().Hour()) {
		s.display.SetStatus(pausedStatus())
		s.stopCountdown()
		return
	}

	if s.countdownRemaining <= 0 {
		s.stopCountdown()
		return
	}

	s.display.SetStatus("Next water reminder in " + models.FormatCountdown(s.countdownRemaining))
	s.countdownRemaining -= time.Second
}

var encouragements = []string{
	"Great job! Keep it up! 💧",
	"Excellent! You're staying hydrated! 🌟",
	"Way to go! Your body thanks you! 💪",
	"Perfect! Keep drinking water! ⭐",
	"Amazing! You're doing great! 🎉",
}

// IncrementWaterCount logs one drink for today
func (s *Scheduler) IncrementWaterCount() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if today := models.DayString(s.now()); s.countDay != today {
		// first drink after midnight starts a new day
		s.waterCount = 0
	}
	s.waterCount++
	s.saveWaterCount()
	s.display.SetCount(s.waterCount)

	s.notifier.Notify("Water Logged!", encouragements[rand.IntN(len(encouragements))])
}

func (s *Scheduler) saveWaterCount() {
	s.countDay = models.DayString(s.now())
	s.store.SetDailyLog(models.DailyLog{
		Date:  s.countDay,
		Count: s.waterCount,
	})
}

// LoadWaterCount restores today's count, resetting it when the stored log is
// from another day. A malformed log is reset as well.
func (s *Scheduler) LoadWaterCount() {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok, err := s.store.DailyLog()
	switch {
	case err != nil:
		log.Printf("Resetting daily log: %v", err)
		s.waterCount = 0
		s.saveWaterCount()
	case !ok:
		s.waterCount = 0
		s.countDay = models.DayString(s.now())
	case stored.IsFor(s.now()):
		s.waterCount = stored.Count
		s.countDay = stored.Date
	default:
		s.waterCount = 0
		s.saveWaterCount()
	}

	s.display.SetCount(s.waterCount)
}

// Snapshot returns the current state
func (s *Scheduler) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	count := s.waterCount
	if s.countDay != models.DayString(now) {
		count = 0
	}

	return Snapshot{
		Active:             s.active,
		WaterCount:         count,
		CurrentTime:        now,
		WithinWindow:       models.IsWithinReminderWindow(now.Hour()),
		LastReminder:       s.lastReminder(),
		CountdownRunning:   s.countdownRunning,
		CountdownRemaining: s.countdownRemaining,
	}
}
