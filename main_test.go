package main

import (
	"errors"
	"testing"
	"time"

	"github.com/borgmon/water-reminder/pkg/models"
	"golang.design/x/hotkey"
)

// blockingChime stands in for an audio device that is slow to open
type blockingChime struct {
	started chan struct{}
	release chan struct{}
	stops   int
}

func (c *blockingChime) Play() {
	close(c.started)
	<-c.release
}

func (c *blockingChime) Stop() { c.stops++ }

func TestOnReminderDoesNotWaitForChime(t *testing.T) {
	chime := &blockingChime{started: make(chan struct{}), release: make(chan struct{})}
	defer close(chime.release)

	wr := &WaterReminder{chime: chime}
	wr.chimeEnabled.Store(true)

	done := make(chan struct{})
	go func() {
		wr.onReminder(time.Now())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("onReminder blocked on chime playback")
	}

	select {
	case <-chime.started:
	case <-time.After(time.Second):
		t.Error("chime never played")
	}
}

func TestOnReminderRespectsChimeSetting(t *testing.T) {
	chime := &blockingChime{started: make(chan struct{}), release: make(chan struct{})}
	defer close(chime.release)

	wr := &WaterReminder{chime: chime}
	wr.onReminder(time.Now())

	select {
	case <-chime.started:
		t.Error("chime played while disabled")
	case <-time.After(50 * time.Millisecond):
	}
}

type fakeHotkey struct {
	registerErr  error
	registered   chan struct{}
	unregistered int
	keydown      chan hotkey.Event
}

func newFakeHotkey(registerErr error) *fakeHotkey {
	return &fakeHotkey{
		registerErr: registerErr,
		registered:  make(chan struct{}),
		keydown:     make(chan hotkey.Event),
	}
}

func (h *fakeHotkey) Register() error {
	defer close(h.registered)
	return h.registerErr
}

func (h *fakeHotkey) Unregister() error {
	h.unregistered++
	return nil
}

func (h *fakeHotkey) Keydown() <-chan hotkey.Event { return h.keydown }

// waitRegistered waits for the registration goroutine to record its result
func waitRegistered(t *testing.T, wr *WaterReminder, hk *fakeHotkey) {
	t.Helper()
	<-hk.registered
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		wr.hotkeyMu.Lock()
		pending := wr.hotkeyPending
		wr.hotkeyMu.Unlock()
		if !pending {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("hotkey registration never finished")
}

func TestFailedHotkeyRegistrationIsNotTracked(t *testing.T) {
	hk := newFakeHotkey(errors.New("hotkey already taken"))
	wr := &WaterReminder{
		config:    &models.Config{HotkeyEnabled: true},
		newHotkey: func() globalHotkey { return hk },
	}

	wr.applyHotkey()
	waitRegistered(t, wr, hk)

	wr.hotkeyMu.Lock()
	tracked := wr.drinkHotkey
	wr.hotkeyMu.Unlock()
	if tracked != nil {
		t.Error("failed hotkey kept as registered")
	}

	wr.config.HotkeyEnabled = false
	wr.applyHotkey()
	if hk.unregistered != 0 {
		t.Errorf("Unregister called %d times on a hotkey that never registered", hk.unregistered)
	}
}

func TestHotkeyRegistersOnceAndReleases(t *testing.T) {
	created := 0
	hk := newFakeHotkey(nil)
	wr := &WaterReminder{
		config: &models.Config{HotkeyEnabled: true},
		newHotkey: func() globalHotkey {
			created++
			return hk
		},
	}

	wr.applyHotkey()
	waitRegistered(t, wr, hk)
	wr.applyHotkey()
	if created != 1 {
		t.Errorf("created %d hotkeys, want 1", created)
	}

	wr.config.HotkeyEnabled = false
	wr.applyHotkey()
	if hk.unregistered != 1 {
		t.Errorf("Unregister called %d times, want 1", hk.unregistered)
	}
	close(hk.keydown)
}
