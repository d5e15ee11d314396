package main

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/borgmon/water-reminder/pkg/calendar"
	"github.com/borgmon/water-reminder/pkg/models"
)

func (cw *ConfigWindow) buildScheduleTab() fyne.CanvasObject {
	table := widget.NewTable(
		func() (rows int, cols int) {
			return len(cw.scheduleData), 2
		},
		func() fyne.CanvasObject {
			label := widget.NewLabel("Template")
			label.Truncation = fyne.TextTruncateEllipsis
			return label
		},
		func(id widget.TableCellID, obj fyne.CanvasObject) {
			label := obj.(*widget.Label)
			if id.Row >= len(cw.scheduleData) {
				label.SetText("")
				return
			}

			slot := cw.scheduleData[id.Row]
			switch id.Col {
			case 0:
				label.SetText(fmt.Sprintf("#%d", id.Row+1))
			case 1:
				label.SetText(slot.Format("Mon Jan 2, 3:04 PM"))
			}
		},
	)

	table.ShowHeaderRow = true
	table.CreateHeader = func() fyne.CanvasObject {
		label := widget.NewLabel("Header")
		label.TextStyle.Bold = true
		return label
	}
	table.UpdateHeader = func(id widget.TableCellID, obj fyne.CanvasObject) {
		label := obj.(*widget.Label)
		switch id.Col {
		case 0:
			label.SetText("Slot")
		case 1:
			label.SetText("Reminder Time")
		}
	}
	table.SetColumnWidth(0, 80)
	table.SetColumnWidth(1, 240)
	cw.scheduleTable = table

	cw.lastLabel = widget.NewLabel("")

	refreshButton := widget.NewButton("Refresh", func() {
		cw.refreshScheduleData()
	})
	refreshButton.Icon = theme.ViewRefreshIcon()

	helpText := widget.NewLabel(fmt.Sprintf(
		"Reminders fire every %s between %s. The times below are today's remaining slots if reminders stay on.",
		formatGap(models.ReminderGap), models.WindowLabel()))
	helpText.Wrapping = fyne.TextWrapWord
	helpText.Importance = widget.MediumImportance

	headerContent := container.NewVBox(
		widget.NewLabel("Today's Schedule"),
		widget.NewSeparator(),
		helpText,
		cw.lastLabel,
		container.NewHBox(refreshButton),
	)

	cw.refreshScheduleData()

	return container.NewPadded(container.NewBorder(headerContent, nil, nil, nil, table))
}

func (cw *ConfigWindow) refreshScheduleData() {
	snap := cw.scheduler.Snapshot()
	cw.scheduleData = calendar.PlannedReminders(snap.CurrentTime, snap.LastReminder)

	switch {
	case snap.LastReminder.IsZero():
		cw.lastLabel.SetText("Last reminder: never")
	default:
		cw.lastLabel.SetText("Last reminder: " + snap.LastReminder.Format("Mon Jan 2, 3:04 PM"))
	}

	if cw.scheduleTable != nil {
		cw.scheduleTable.Refresh()
	}
}

func formatGap(d time.Duration) string {
	if d%time.Hour == 0 {
		h := int(d / time.Hour)
		if h == 1 {
			return "hour"
		}
		return fmt.Sprintf("%d hours", h)
	}
	return d.String()
}
