// Package notify delivers user-facing messages through desktop notifications,
// falling back to a modal alert when notifications are unavailable, not
// permitted, or fail to send.
package notify

import (
	"fmt"
	"log"
)

// Permission is the user's decision about desktop notifications
type Permission string

const (
	PermissionGranted Permission = "granted"
	PermissionDenied  Permission = "denied"
	PermissionDefault Permission = "default" // not decided yet
)

// Sink is a platform notification facility gated by a permission
type Sink interface {
	Supported() bool
	Permission() Permission
	// RequestPermission asks the user and reports the outcome to callback.
	// The callback may run on another goroutine.
	RequestPermission(callback func(Permission))
	Send(title, body string) error
}

// Alerter shows a message the user has to acknowledge
type Alerter interface {
	Alert(message string)
}

// Notifier sends through a Sink and falls back to an Alerter
type Notifier struct {
	sink    Sink
	alerter Alerter
}

// NewNotifier creates a Notifier. sink may be nil, in which case every message is an alert.
func NewNotifier(sink Sink, alerter Alerter) *Notifier {
	return &Notifier{sink: sink, alerter: alerter}
}

func (n *Notifier) supported() bool {
	return n.sink != nil && n.sink.Supported()
}

// Notify is fire-and-forget: it never returns an error
func (n *Notifier) Notify(title, body string) {
	if n.supported() && n.sink.Permission() == PermissionGranted {
		err := n.sink.Send(title, body)
		if err == nil {
			return
		}
		log.Printf("Notification failed, falling back to alert: %v", err)
	}

	n.alerter.Alert(fmt.Sprintf("%s: %s", title, body))
}

// CheckPermission runs once at startup and greets the user according to the
// current notification permission, requesting it if undecided.
func (n *Notifier) CheckPermission() {
	if !n.supported() {
		n.alerter.Alert("Your system doesn't support notifications. You can still use the app manually!")
		return
	}

	switch n.sink.Permission() {
	case PermissionGranted:
		n.Notify("Welcome back!", "Water reminders are ready! 💧")
	case PermissionDenied:
		n.alerter.Alert("Notifications are disabled. You can enable them in Settings if you want notification alerts.")
	default:
		n.sink.RequestPermission(func(p Permission) {
			if p == PermissionGranted {
				n.Notify("Great!", "Water reminders are now enabled! 💧")
				return
			}
			n.alerter.Alert("Notifications were not enabled. You can still use the app, but you won't get desktop notifications.")
		})
	}
}

// Test sends a test notification, asking for permission first if undecided
func (n *Notifier) Test() {
	if !n.supported() {
		n.alerter.Alert("Your system doesn't support notifications. You can still use the app manually!")
		return
	}

	switch n.sink.Permission() {
	case PermissionGranted:
		n.Notify("Test Notification", "This is a test! Your notifications are working! 🎉")
	case PermissionDenied:
		n.alerter.Alert("Notifications are blocked. Please enable them in Settings.")
	default:
		n.sink.RequestPermission(func(p Permission) {
			if p == PermissionGranted {
				n.Notify("Test Notification", "Permission granted! Notifications are now working! 🎉")
			}
		})
	}
}
