package main

import (
	"log"
	"os/exec"
	"runtime"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/borgmon/water-reminder/pkg/notify"
)

func (cw *ConfigWindow) buildGeneralTab() fyne.CanvasObject {
	changed := func(bool) { cw.markChanged() }

	cw.autoStartCheck = widget.NewCheck("Auto Start on System Boot", changed)
	cw.autoStartCheck.SetChecked(cw.config.AutoStart)

	cw.startOnLaunchCheck = widget.NewCheck("Start reminders when the app opens", changed)
	cw.startOnLaunchCheck.SetChecked(cw.config.StartOnLaunch)

	cw.chimeCheck = widget.NewCheck("Play a chime with each reminder", changed)
	cw.chimeCheck.SetChecked(cw.config.ChimeEnabled)

	cw.hotkeyCheck = widget.NewCheck("Ctrl+Shift+W logs a glass", changed)
	cw.hotkeyCheck.SetChecked(cw.config.HotkeyEnabled)

	cw.notificationsCheck = widget.NewCheck("Allow desktop notifications", changed)
	cw.notificationsCheck.SetChecked(cw.notificationsAllowed())
	if cw.sink.Permission() == notify.PermissionDefault {
		cw.notificationsCheck.Text = "Allow desktop notifications (not yet decided)"
	}

	storageURIEntry := widget.NewEntry()
	storageURIEntry.SetText(cw.app.Storage().RootURI().String())
	storageURIEntry.Disable()

	openStorageButton := widget.NewButton("Open in File Manager", func() {
		path := cw.app.Storage().RootURI().Path()
		var cmd *exec.Cmd

		switch runtime.GOOS {
		case "darwin":
			cmd = exec.Command("open", path)
		case "windows":
			cmd = exec.Command("explorer", path)
		case "linux":
			cmd = exec.Command("xdg-open", path)
		default:
			log.Printf("Unsupported OS: %s", runtime.GOOS)
			return
		}

		if err := cmd.Start(); err != nil {
			log.Printf("Error opening file manager: %v", err)
		}
	})

	autoStartHelp := widget.NewLabel("Launch Water Reminder automatically when your system starts")
	autoStartHelp.Importance = widget.MediumImportance

	remindersHelp := widget.NewLabel("Reminders only fire between 8 AM and 8 PM")
	remindersHelp.Importance = widget.MediumImportance

	notificationsHelp := widget.NewLabel("When off, reminders show up as a dialog instead")
	notificationsHelp.Wrapping = fyne.TextWrapWord
	notificationsHelp.Importance = widget.MediumImportance

	storageHelp := widget.NewLabel("Your glass count and last reminder time are stored here")
	storageHelp.Wrapping = fyne.TextWrapWord
	storageHelp.Importance = widget.MediumImportance

	storageContainer := container.NewBorder(
		nil,
		container.NewPadded(openStorageButton),
		nil,
		nil,
		storageURIEntry,
	)

	form := container.New(layout.NewFormLayout(),
		container.NewVBox(widget.NewLabel("Auto Start:"), autoStartHelp),
		cw.autoStartCheck,

		container.NewVBox(widget.NewLabel("Reminders:"), remindersHelp),
		container.NewVBox(cw.startOnLaunchCheck, cw.chimeCheck, cw.hotkeyCheck),

		container.NewVBox(widget.NewLabel("Notifications:"), notificationsHelp),
		cw.notificationsCheck,

		container.NewVBox(widget.NewLabel("Storage Location:"), storageHelp),
		storageContainer,
	)

	content := container.NewVBox(
		widget.NewLabel("General Settings"),
		widget.NewSeparator(),
		form,
	)

	return container.NewPadded(container.NewVScroll(content))
}
