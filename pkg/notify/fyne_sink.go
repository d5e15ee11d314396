package notify

import (
	"errors"
	"fmt"
	"log"
	"runtime"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"github.com/godbus/dbus/v5"
)

const (
	permissionKey = "notification_permission"

	notificationsService = "org.freedesktop.Notifications"
)

var ErrUnsupported = errors.New("desktop notifications are not available")

// notificationsAvailable reports whether SendNotification can reach the user.
// Fyne only logs delivery failures, so this is checked up front.
func notificationsAvailable() error {
	switch runtime.GOOS {
	case "darwin", "windows":
		return nil
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly":
		return freedesktopAvailable()
	default:
		return fmt.Errorf("%w on %s", ErrUnsupported, runtime.GOOS)
	}
}

// freedesktopAvailable checks that a notification daemon owns its name on the
// session bus. The shared connection is left open for Fyne to reuse.
func freedesktopAvailable() error {
	conn, err := dbus.SessionBus()
	if err != nil {
		return fmt.Errorf("%w: session bus: %v", ErrUnsupported, err)
	}

	var owned bool
	err = conn.BusObject().Call("org.freedesktop.DBus.NameHasOwner", 0, notificationsService).Store(&owned)
	if err != nil {
		return fmt.Errorf("%w: query %s: %v", ErrUnsupported, notificationsService, err)
	}
	if !owned {
		return fmt.Errorf("%w: no %s service running", ErrUnsupported, notificationsService)
	}
	return nil
}

// FyneSink sends desktop notifications through a Fyne app. The permission is
// the user's answer to a confirm dialog, remembered in preferences.
type FyneSink struct {
	app       fyne.App
	parent    func() fyne.Window
	available func() error
}

// NewFyneSink creates a sink. parent returns the window dialogs attach to.
func NewFyneSink(app fyne.App, parent func() fyne.Window) *FyneSink {
	return newFyneSink(app, parent, notificationsAvailable)
}

func newFyneSink(app fyne.App, parent func() fyne.Window, available func() error) *FyneSink {
	return &FyneSink{app: app, parent: parent, available: available}
}

func (s *FyneSink) Supported() bool {
	if err := s.available(); err != nil {
		log.Printf("Notifications unavailable: %v", err)
		return false
	}
	return true
}

func (s *FyneSink) Permission() Permission {
	switch p := Permission(s.app.Preferences().String(permissionKey)); p {
	case PermissionGranted, PermissionDenied:
		return p
	default:
		return PermissionDefault
	}
}

// SetPermission records a decision, e.g. from the settings window
func (s *FyneSink) SetPermission(p Permission) {
	s.app.Preferences().SetString(permissionKey, string(p))
}

func (s *FyneSink) RequestPermission(callback func(Permission)) {
	fyne.Do(func() {
		var parent fyne.Window
		if s.parent != nil {
			parent = s.parent()
		}
		if parent == nil {
			log.Println("No window to ask for notification permission")
			callback(PermissionDefault)
			return
		}

		dialog.ShowConfirm("Enable Notifications",
			"Allow Water Reminder to show desktop notifications?",
			func(allowed bool) {
				p := PermissionDenied
				if allowed {
					p = PermissionGranted
				}
				s.SetPermission(p)
				callback(p)
			}, parent)
	})
}

// Send fails when the platform cannot deliver notifications. Fyne itself
// drops such notifications with only a log line.
func (s *FyneSink) Send(title, body string) error {
	if err := s.available(); err != nil {
		return fmt.Errorf("send notification: %w", err)
	}

	s.app.SendNotification(fyne.NewNotification(title, body))
	return nil
}

// DialogAlerter shows alerts as information dialogs
type DialogAlerter struct {
	title  string
	parent func() fyne.Window
}

// NewDialogAlerter creates an alerter whose dialogs are titled title
func NewDialogAlerter(title string, parent func() fyne.Window) *DialogAlerter {
	return &DialogAlerter{title: title, parent: parent}
}

func (a *DialogAlerter) Alert(message string) {
	fyne.Do(func() {
		var parent fyne.Window
		if a.parent != nil {
			parent = a.parent()
		}
		if parent == nil {
			log.Printf("Alert (no window): %s", message)
			return
		}

		parent.Show()
		dialog.ShowInformation(a.title, message, parent)
	})
}
