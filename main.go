package main

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/borgmon/water-reminder/pkg/audio"
	"github.com/borgmon/water-reminder/pkg/models"
	"github.com/borgmon/water-reminder/pkg/notify"
	"github.com/borgmon/water-reminder/pkg/platform"
	"github.com/borgmon/water-reminder/pkg/reminder"
	"github.com/borgmon/water-reminder/pkg/store"
)

const appID = "com.borgmon.water-reminder"

type chimePlayer interface {
	Play()
	Stop()
}

type WaterReminder struct {
	app          fyne.App
	config       *models.Config
	configStore  *store.ConfigStore
	scheduler    *reminder.Scheduler
	notifier     *notify.Notifier
	sink         *notify.FyneSink
	mainWindow   *MainWindow
	configWindow *ConfigWindow
	trayTicker   *time.Ticker
	chime        chimePlayer

	hotkeyMu      sync.Mutex
	drinkHotkey   globalHotkey // set once registration succeeds
	hotkeyPending bool
	hotkeyWanted  bool
	newHotkey     func() globalHotkey

	// read from the scheduler goroutine
	chimeEnabled atomic.Bool
}

func main() {
	a := app.NewWithID(appID)
	wr := &WaterReminder{
		app:         a,
		configStore: store.NewConfigStore(a),
		chime:       audio.NewChime(),
	}

	if err := wr.initialize(); err != nil {
		log.Fatal(err)
	}

	wr.run()
}

func (wr *WaterReminder) initialize() error {
	wr.config = wr.configStore.Load()
	wr.chimeEnabled.Store(wr.config.ChimeEnabled)

	// Sync autostart state with config on startup
	if err := setupAutostart(wr.config.AutoStart); err != nil {
		log.Printf("Warning: failed to setup autostart: %v", err)
	}

	wr.configStore.Save(wr.config)

	wr.app.SetIcon(resourceIconPng)
	wr.mainWindow = NewMainWindow(wr.app, wr)

	parent := func() fyne.Window { return wr.mainWindow.window }
	wr.sink = notify.NewFyneSink(wr.app, parent)
	wr.notifier = notify.NewNotifier(wr.sink, notify.NewDialogAlerter("Water Reminder", parent))

	wr.scheduler = reminder.New(
		store.NewReminderStore(wr.app.Preferences()),
		wr.notifier,
		wr.mainWindow,
		reminder.Options{OnReminder: wr.onReminder},
	)
	// Count must be loaded before anything displays it
	wr.scheduler.LoadWaterCount()

	wr.setupSystemTray()
	wr.startTrayRefresh()
	wr.applyHotkey()

	return nil
}

func (wr *WaterReminder) run() {
	wr.app.Lifecycle().SetOnStarted(func() {
		platform.SetActivationPolicy()
		wr.mainWindow.Show()
		wr.notifier.CheckPermission()

		if wr.config.StartOnLaunch {
			wr.startReminders()
		}
	})
	wr.app.Run()
}

func (wr *WaterReminder) startReminders() {
	wr.scheduler.Start()
	wr.updateSystemTrayMenu()
}

func (wr *WaterReminder) stopReminders() {
	wr.scheduler.Stop()
	wr.chime.Stop()
	wr.updateSystemTrayMenu()
}

func (wr *WaterReminder) logDrink() {
	wr.scheduler.IncrementWaterCount()
	wr.updateSystemTrayMenu()
}

func (wr *WaterReminder) testNotification() {
	wr.notifier.Test()
}

// onReminder runs on the scheduler goroutine with the scheduler locked,
// so it must not call back into the scheduler synchronously.
func (wr *WaterReminder) onReminder(time.Time) {
	if wr.chimeEnabled.Load() {
		go wr.chime.Play()
	}
	go wr.updateSystemTrayMenu()
}

func (wr *WaterReminder) showConfigWindow() {
	// If config window already exists and is showing, just bring it to front
	if wr.configWindow != nil && wr.configWindow.window != nil {
		wr.configWindow.window.RequestFocus()
		wr.configWindow.window.Show()
		return
	}

	wr.configWindow = NewConfigWindow(wr.app, wr.config, wr.scheduler, wr.sink, wr.chime, func(newConfig *models.Config) {
		wr.config = newConfig
		wr.chimeEnabled.Store(newConfig.ChimeEnabled)
		wr.configStore.Save(wr.config)
		wr.applyHotkey()
	})

	wr.configWindow.window.SetOnClosed(func() {
		wr.configWindow = nil
	})

	wr.configWindow.Show()
}

func (wr *WaterReminder) quit() {
	if wr.trayTicker != nil {
		wr.trayTicker.Stop()
	}
	wr.unregisterHotkey()
	wr.chime.Stop()
	wr.app.Quit()
}
