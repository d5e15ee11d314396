package main

import (
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"github.com/borgmon/water-reminder/pkg/calendar"
)

// exportSchedule saves the remaining reminder slots for today as an .ics file
func (wr *WaterReminder) exportSchedule() {
	snap := wr.scheduler.Snapshot()
	slots := calendar.PlannedReminders(snap.CurrentTime, snap.LastReminder)

	fyne.Do(func() {
		parent := wr.mainWindow.window
		if len(slots) == 0 {
			dialog.ShowInformation("Nothing to Export", "There are no reminders left today.", parent)
			return
		}

		wr.mainWindow.Show()
		save := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
			if err != nil {
				dialog.ShowError(err, parent)
				return
			}
			if writer == nil {
				return // cancelled
			}
			defer writer.Close()

			if err := calendar.WriteSchedule(writer, slots, time.Now()); err != nil {
				log.Printf("Error exporting schedule: %v", err)
				dialog.ShowError(err, parent)
				return
			}
			log.Printf("Exported %d reminder slots to %s", len(slots), writer.URI())
		}, parent)

		save.SetFileName("water-reminders-" + snap.CurrentTime.Format("2006-01-02") + ".ics")
		save.SetFilter(storage.NewExtensionFileFilter([]string{".ics"}))
		save.Show()
	})
}
