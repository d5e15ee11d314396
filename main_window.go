package main

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/borgmon/water-reminder/pkg/models"
	"github.com/borgmon/water-reminder/pkg/platform"
)

// MainWindow is the reminder control surface: a status line, today's count,
// and the start / stop / log / test buttons. It implements reminder.Display.
type MainWindow struct {
	window fyne.Window

	statusLabel *widget.Label
	countText   *canvas.Text
	startButton *widget.Button
	stopButton  *widget.Button
	drankButton *widget.Button
	testButton  *widget.Button
}

func NewMainWindow(app fyne.App, wr *WaterReminder) *MainWindow {
	mw := &MainWindow{}

	mw.window = app.NewWindow("Water Reminder")
	mw.buildUI(wr)

	// Closing hides the window, reminders keep running from the tray
	mw.window.SetCloseIntercept(func() {
		mw.window.Hide()
	})

	return mw
}

func (mw *MainWindow) buildUI(wr *WaterReminder) {
	title := canvas.NewText("💧 Water Reminder", theme.Color(theme.ColorNameForeground))
	title.TextSize = 24
	title.Alignment = fyne.TextAlignCenter

	hours := widget.NewLabel(fmt.Sprintf("Reminders every %d hours, %s", int(models.ReminderGap.Hours()), models.WindowLabel()))
	hours.Alignment = fyne.TextAlignCenter

	mw.statusLabel = widget.NewLabel(`Water reminders are stopped. Click "Start Reminders" to begin.`)
	mw.statusLabel.Alignment = fyne.TextAlignCenter
	mw.statusLabel.Wrapping = fyne.TextWrapWord

	mw.countText = canvas.NewText("0", theme.Color(theme.ColorNamePrimary))
	mw.countText.TextSize = 48
	mw.countText.TextStyle = fyne.TextStyle{Bold: true}
	mw.countText.Alignment = fyne.TextAlignCenter

	countCaption := widget.NewLabel("glasses today")
	countCaption.Alignment = fyne.TextAlignCenter

	mw.startButton = widget.NewButton("Start Reminders", func() {
		wr.startReminders()
	})
	mw.startButton.Importance = widget.HighImportance

	mw.stopButton = widget.NewButton("Stop Reminders", func() {
		wr.stopReminders()
	})
	mw.stopButton.Disable()

	mw.drankButton = widget.NewButton("I Drank Water", func() {
		wr.logDrink()
	})
	mw.drankButton.Icon = theme.ConfirmIcon()

	mw.testButton = widget.NewButton("Send Test Notification", func() {
		wr.testNotification()
	})

	content := container.NewVBox(
		container.NewPadded(title),
		hours,
		widget.NewSeparator(),
		mw.statusLabel,
		widget.NewSeparator(),
		mw.countText,
		countCaption,
		container.NewGridWithColumns(2, mw.startButton, mw.stopButton),
		mw.drankButton,
		mw.testButton,
	)

	mw.window.SetContent(container.NewPadded(content))
	mw.window.Resize(fyne.NewSize(420, 420))
	mw.window.CenterOnScreen()
}

func (mw *MainWindow) Show() {
	fyne.Do(func() {
		if !platform.IsAppActive() {
			platform.ActivateApp()
		}
		mw.window.Show()
		mw.window.RequestFocus()
	})
}

func (mw *MainWindow) SetStatus(message string) {
	fyne.Do(func() {
		mw.statusLabel.SetText(message)
	})
}

func (mw *MainWindow) SetCount(count int) {
	fyne.Do(func() {
		mw.countText.Text = strconv.Itoa(count)
		mw.countText.Refresh()
	})
}

func (mw *MainWindow) SetActive(active bool) {
	fyne.Do(func() {
		if active {
			mw.startButton.Disable()
			mw.stopButton.Enable()
		} else {
			mw.startButton.Enable()
			mw.stopButton.Disable()
		}
	})
}
