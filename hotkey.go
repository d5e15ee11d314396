package main

import (
	"log"

	"golang.design/x/hotkey"
)

type globalHotkey interface {
	Register() error
	Unregister() error
	Keydown() <-chan hotkey.Event
}

func newDrinkHotkey() globalHotkey {
	return hotkey.New([]hotkey.Modifier{hotkey.ModCtrl, hotkey.ModShift}, hotkey.KeyW)
}

// applyHotkey registers or releases the global log-a-drink shortcut to match config
func (wr *WaterReminder) applyHotkey() {
	if wr.config.HotkeyEnabled {
		wr.registerHotkey()
		return
	}
	wr.unregisterHotkey()
}

func (wr *WaterReminder) registerHotkey() {
	wr.hotkeyMu.Lock()
	defer wr.hotkeyMu.Unlock()

	wr.hotkeyWanted = true
	if wr.drinkHotkey != nil || wr.hotkeyPending {
		return
	}
	wr.hotkeyPending = true

	newHotkey := wr.newHotkey
	if newHotkey == nil {
		newHotkey = newDrinkHotkey
	}
	hk := newHotkey()

	go func() {
		err := hk.Register()

		wr.hotkeyMu.Lock()
		wr.hotkeyPending = false
		if err != nil {
			wr.hotkeyMu.Unlock()
			log.Printf("Failed to register Ctrl+Shift+W hotkey: %v", err)
			return
		}
		if !wr.hotkeyWanted {
			// disabled while registration was in flight
			wr.hotkeyMu.Unlock()
			if err := hk.Unregister(); err != nil {
				log.Printf("Failed to unregister hotkey: %v", err)
			}
			return
		}
		wr.drinkHotkey = hk
		wr.hotkeyMu.Unlock()
		log.Println("Registered Ctrl+Shift+W to log a drink")

		for range hk.Keydown() {
			wr.logDrink()
		}
	}()
}

func (wr *WaterReminder) unregisterHotkey() {
	wr.hotkeyMu.Lock()
	defer wr.hotkeyMu.Unlock()

	wr.hotkeyWanted = false
	if wr.drinkHotkey == nil {
		return
	}
	if err := wr.drinkHotkey.Unregister(); err != nil {
		log.Printf("Failed to unregister hotkey: %v", err)
	}
	wr.drinkHotkey = nil
}
