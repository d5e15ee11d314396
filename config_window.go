package main

import (
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/borgmon/water-reminder/pkg/models"
	"github.com/borgmon/water-reminder/pkg/notify"
	"github.com/borgmon/water-reminder/pkg/reminder"
)

type ConfigWindow struct {
	window    fyne.Window
	app       fyne.App
	config    *models.Config
	scheduler *reminder.Scheduler
	sink      *notify.FyneSink
	chime     chimePlayer
	onSave    func(*models.Config)

	// General tab
	autoStartCheck     *widget.Check
	startOnLaunchCheck *widget.Check
	chimeCheck         *widget.Check
	hotkeyCheck        *widget.Check
	notificationsCheck *widget.Check

	// Schedule tab
	scheduleTable *widget.Table
	scheduleData  []time.Time
	lastLabel     *widget.Label

	// UI state
	hasUnsavedChanges bool
	saveStatusLabel   *widget.Label
	saveButton        *widget.Button
}

func NewConfigWindow(app fyne.App, config *models.Config, scheduler *reminder.Scheduler, sink *notify.FyneSink, chime chimePlayer, onSave func(*models.Config)) *ConfigWindow {
	cw := &ConfigWindow{
		app:       app,
		config:    config,
		scheduler: scheduler,
		sink:      sink,
		chime:     chime,
		onSave:    onSave,
	}

	cw.window = app.NewWindow("Water Reminder - Settings")
	cw.buildUI()

	return cw
}

func (cw *ConfigWindow) buildUI() {
	tabs := container.NewAppTabs(
		container.NewTabItem("General", cw.buildGeneralTab()),
		container.NewTabItem("Schedule", cw.buildScheduleTab()),
	)
	// SetChecked while building fires OnChanged
	cw.hasUnsavedChanges = false

	tabs.OnSelected = func(tab *container.TabItem) {
		if tab.Text == "Schedule" {
			cw.refreshScheduleData()
		}
	}

	cw.saveStatusLabel = widget.NewLabel("")
	cw.saveStatusLabel.Importance = widget.SuccessImportance

	cw.saveButton = widget.NewButton("Save", func() {
		cw.save()
	})
	cw.saveButton.Importance = widget.HighImportance
	cw.saveButton.Disable() // Initially disabled until changes are made

	// clicking again restarts the chime
	previewButton := widget.NewButton("Play Chime", func() {
		go cw.chime.Play()
	})

	closeButton := widget.NewButton("Close", func() {
		cw.handleClose()
	})

	leftButtons := container.NewHBox(
		cw.saveButton,
		cw.saveStatusLabel,
	)
	rightButtons := container.NewHBox(
		previewButton,
		closeButton,
	)

	buttonRow := container.NewBorder(nil, nil, leftButtons, rightButtons, container.NewHBox())

	content := container.NewBorder(
		nil,
		container.NewPadded(buttonRow),
		nil,
		nil,
		tabs,
	)

	cw.window.SetContent(content)
	cw.window.Resize(fyne.NewSize(640, 480))
	cw.window.CenterOnScreen()

	cw.window.Canvas().SetOnTypedKey(func(key *fyne.KeyEvent) {
		if key.Name == fyne.KeyEscape {
			cw.handleClose()
		}
	})

	// Add close interceptor for unsaved changes
	cw.window.SetCloseIntercept(func() {
		cw.handleClose()
	})
}

func (cw *ConfigWindow) save() {
	cw.saveButton.Disable()
	cw.saveStatusLabel.SetText("Saving...")
	cw.saveStatusLabel.Importance = widget.MediumImportance
	cw.saveStatusLabel.Refresh()

	newConfig := cw.getConfigFromUI()
	allowNotifications := cw.notificationsCheck.Checked

	go func() {
		if err := setupAutostart(newConfig.AutoStart); err != nil {
			log.Printf("Error setting autostart: %v", err)
			fyne.Do(func() {
				cw.saveStatusLabel.SetText("Error: Failed to set autostart")
				cw.saveStatusLabel.Importance = widget.DangerImportance
				cw.saveStatusLabel.Refresh()
				cw.updateSaveButtonState()
			})
			return
		}

		if allowNotifications != cw.notificationsAllowed() {
			if allowNotifications {
				cw.sink.SetPermission(notify.PermissionGranted)
			} else {
				cw.sink.SetPermission(notify.PermissionDenied)
			}
		}

		fyne.Do(func() {
			if cw.onSave != nil {
				cw.onSave(newConfig)
			}
			cw.config = newConfig
			cw.hasUnsavedChanges = false
			cw.saveStatusLabel.SetText("Settings saved successfully")
			cw.saveStatusLabel.Importance = widget.SuccessImportance
			cw.saveStatusLabel.Refresh()
			cw.updateSaveButtonState()

			// Clear success message after 3 seconds
			go func() {
				time.Sleep(3 * time.Second)
				fyne.Do(func() {
					if cw.saveStatusLabel.Text == "Settings saved successfully" {
						cw.saveStatusLabel.SetText("")
						cw.saveStatusLabel.Refresh()
					}
				})
			}()
		})
	}()
}

func (cw *ConfigWindow) getConfigFromUI() *models.Config {
	return &models.Config{
		AutoStart:     cw.autoStartCheck.Checked,
		StartOnLaunch: cw.startOnLaunchCheck.Checked,
		ChimeEnabled:  cw.chimeCheck.Checked,
		HotkeyEnabled: cw.hotkeyCheck.Checked,
	}
}

func (cw *ConfigWindow) notificationsAllowed() bool {
	return cw.sink.Permission() == notify.PermissionGranted
}

func (cw *ConfigWindow) Show() {
	cw.window.Show()
}

// markChanged marks the config as having unsaved changes
func (cw *ConfigWindow) markChanged() {
	cw.hasUnsavedChanges = true
	cw.updateSaveButtonState()
}

// updateSaveButtonState enables or disables the save button based on changes
func (cw *ConfigWindow) updateSaveButtonState() {
	if cw.saveButton != nil {
		if cw.hasUnsavedChanges {
			cw.saveButton.Enable()
		} else {
			cw.saveButton.Disable()
		}
	}
}

// handleClose handles window close with unsaved changes check
func (cw *ConfigWindow) handleClose() {
	if cw.hasActualChanges() {
		dialog.ShowConfirm("Unsaved Changes",
			"You have unsaved changes. Are you sure you want to close?",
			func(confirmed bool) {
				if confirmed {
					cw.window.Close()
				}
			}, cw.window)
	} else {
		cw.window.Close()
	}
}

// hasActualChanges checks if the current UI state differs from the saved config
func (cw *ConfigWindow) hasActualChanges() bool {
	if !cw.getConfigFromUI().Equal(cw.config) {
		return true
	}
	return cw.notificationsCheck.Checked != cw.notificationsAllowed()
}
