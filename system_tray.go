package main

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/borgmon/water-reminder/pkg/models"
	"github.com/borgmon/water-reminder/pkg/reminder"
)

func (wr *WaterReminder) setupSystemTray() {
	wr.updateSystemTrayMenu()
}

// startTrayRefresh keeps the tray header lines roughly current
func (wr *WaterReminder) startTrayRefresh() {
	wr.trayTicker = time.NewTicker(30 * time.Second)
	go func() {
		for range wr.trayTicker.C {
			wr.updateSystemTrayMenu()
		}
	}()
}

func (wr *WaterReminder) updateSystemTrayMenu() {
	desk, ok := wr.app.(desktop.App)
	if !ok {
		return
	}

	snap := wr.scheduler.Snapshot()

	menuItems := []*fyne.MenuItem{}
	for _, line := range trayStatusLines(snap) {
		item := fyne.NewMenuItem(line, nil)
		item.Disabled = true
		menuItems = append(menuItems, item)
	}
	menuItems = append(menuItems, fyne.NewMenuItemSeparator())

	menuItems = append(menuItems, fyne.NewMenuItem("Open Water Reminder", func() {
		wr.mainWindow.Show()
	}))
	if snap.Active {
		menuItems = append(menuItems, fyne.NewMenuItem("Stop Reminders", func() {
			wr.stopReminders()
		}))
	} else {
		menuItems = append(menuItems, fyne.NewMenuItem("Start Reminders", func() {
			wr.startReminders()
		}))
	}
	menuItems = append(menuItems,
		fyne.NewMenuItem("I Drank Water", func() {
			wr.logDrink()
		}),
		fyne.NewMenuItem("Send Test Notification", func() {
			wr.testNotification()
		}),
		fyne.NewMenuItem("Export Today's Schedule...", func() {
			wr.exportSchedule()
		}),
	)

	menuItems = append(menuItems, fyne.NewMenuItemSeparator())
	menuItems = append(menuItems,
		fyne.NewMenuItem("Settings", func() {
			wr.showConfigWindow()
		}),
		fyne.NewMenuItem("Quit", func() {
			wr.quit()
		}),
	)

	menu := fyne.NewMenu("Water Reminder", menuItems...)
	fyne.Do(func() {
		desk.SetSystemTrayMenu(menu)
		desk.SetSystemTrayIcon(resourceIconPng)
	})
}

// trayStatusLines renders the disabled header lines at the top of the tray menu
func trayStatusLines(snap reminder.Snapshot) []string {
	lines := []string{}

	switch {
	case !snap.Active:
		lines = append(lines, "Reminders stopped")
	case !snap.WithinWindow:
		lines = append(lines, fmt.Sprintf("Paused outside %s", models.WindowLabel()))
	case !snap.LastReminder.IsZero():
		next := snap.LastReminder.Add(models.ReminderGap)
		if next.After(snap.CurrentTime) {
			lines = append(lines, "Next reminder at "+next.Format("3:04 PM"))
		} else {
			lines = append(lines, "Reminder due now")
		}
	default:
		lines = append(lines, "Reminder due now")
	}

	glasses := "glasses"
	if snap.WaterCount == 1 {
		glasses = "glass"
	}
	lines = append(lines, fmt.Sprintf("Today: %d %s", snap.WaterCount, glasses))

	return lines
}
