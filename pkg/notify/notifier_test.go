package notify

import (
	"errors"
	"strings"
	"testing"
)

type fakeSink struct {
	supported  bool
	permission Permission
	answer     Permission
	sendErr    error
	requested  int
	sent       []string
}

func (f *fakeSink) Supported() bool        { return f.supported }
func (f *fakeSink) Permission() Permission { return f.permission }

func (f *fakeSink) RequestPermission(callback func(Permission)) {
	f.requested++
	f.permission = f.answer
	callback(f.answer)
}

func (f *fakeSink) Send(title, body string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, title+"|"+body)
	return nil
}

type fakeAlerter struct {
	alerts []string
}

func (f *fakeAlerter) Alert(message string) {
	f.alerts = append(f.alerts, message)
}

func TestNotifySendsWhenGranted(t *testing.T) {
	sink := &fakeSink{supported: true, permission: PermissionGranted}
	alerter := &fakeAlerter{}
	n := NewNotifier(sink, alerter)

	n.Notify("Title", "Body")

	if len(sink.sent) != 1 || sink.sent[0] != "Title|Body" {
		t.Errorf("sent = %v, want [Title|Body]", sink.sent)
	}
	if len(alerter.alerts) != 0 {
		t.Errorf("unexpected alerts: %v", alerter.alerts)
	}
}

func TestNotifyFallsBackToAlert(t *testing.T) {
	tests := []struct {
		name string
		sink Sink
	}{
		{"no sink", nil},
		{"unsupported", &fakeSink{supported: false, permission: PermissionGranted}},
		{"denied", &fakeSink{supported: true, permission: PermissionDenied}},
		{"undecided", &fakeSink{supported: true, permission: PermissionDefault}},
		{"send fails", &fakeSink{supported: true, permission: PermissionGranted, sendErr: errors.New("dbus gone")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alerter := &fakeAlerter{}
			n := NewNotifier(tt.sink, alerter)

			n.Notify("Title", "Body")

			if len(alerter.alerts) != 1 || alerter.alerts[0] != "Title: Body" {
				t.Errorf("alerts = %v, want [Title: Body]", alerter.alerts)
			}
		})
	}
}

func TestCheckPermission(t *testing.T) {
	tests := []struct {
		name          string
		sink          *fakeSink
		wantRequested int
		wantSent      string
		wantAlert     string
	}{
		{
			name:     "granted greets",
			sink:     &fakeSink{supported: true, permission: PermissionGranted},
			wantSent: "Welcome back!",
		},
		{
			name:      "denied alerts",
			sink:      &fakeSink{supported: true, permission: PermissionDenied},
			wantAlert: "Notifications are disabled",
		},
		{
			name:          "undecided then granted",
			sink:          &fakeSink{supported: true, permission: PermissionDefault, answer: PermissionGranted},
			wantRequested: 1,
			wantSent:      "Great!",
		},
		{
			name:          "undecided then declined",
			sink:          &fakeSink{supported: true, permission: PermissionDefault, answer: PermissionDenied},
			wantRequested: 1,
			wantAlert:     "Notifications were not enabled",
		},
		{
			name:      "unsupported",
			sink:      &fakeSink{supported: false},
			wantAlert: "doesn't support notifications",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alerter := &fakeAlerter{}
			n := NewNotifier(tt.sink, alerter)

			n.CheckPermission()

			if tt.sink.requested != tt.wantRequested {
				t.Errorf("requested = %d, want %d", tt.sink.requested, tt.wantRequested)
			}
			if tt.wantSent != "" {
				if len(tt.sink.sent) != 1 || !strings.HasPrefix(tt.sink.sent[0], tt.wantSent) {
					t.Errorf("sent = %v, want one starting with %q", tt.sink.sent, tt.wantSent)
				}
			}
			if tt.wantAlert != "" {
				if len(alerter.alerts) != 1 || !strings.Contains(alerter.alerts[0], tt.wantAlert) {
					t.Errorf("alerts = %v, want one containing %q", alerter.alerts, tt.wantAlert)
				}
			} else if len(alerter.alerts) != 0 {
				t.Errorf("unexpected alerts: %v", alerter.alerts)
			}
		})
	}
}

func TestTestNotification(t *testing.T) {
	t.Run("granted", func(t *testing.T) {
		sink := &fakeSink{supported: true, permission: PermissionGranted}
		n := NewNotifier(sink, &fakeAlerter{})
		n.Test()
		if len(sink.sent) != 1 || !strings.HasPrefix(sink.sent[0], "Test Notification|This is a test!") {
			t.Errorf("sent = %v", sink.sent)
		}
	})

	t.Run("undecided then granted", func(t *testing.T) {
		sink := &fakeSink{supported: true, permission: PermissionDefault, answer: PermissionGranted}
		n := NewNotifier(sink, &fakeAlerter{})
		n.Test()
		if len(sink.sent) != 1 || !strings.HasPrefix(sink.sent[0], "Test Notification|Permission granted!") {
			t.Errorf("sent = %v", sink.sent)
		}
	})

	t.Run("undecided then declined stays quiet", func(t *testing.T) {
		sink := &fakeSink{supported: true, permission: PermissionDefault, answer: PermissionDenied}
		alerter := &fakeAlerter{}
		n := NewNotifier(sink, alerter)
		n.Test()
		if len(sink.sent) != 0 || len(alerter.alerts) != 0 {
			t.Errorf("sent = %v, alerts = %v, want nothing", sink.sent, alerter.alerts)
		}
	})

	t.Run("denied", func(t *testing.T) {
		sink := &fakeSink{supported: true, permission: PermissionDenied}
		alerter := &fakeAlerter{}
		n := NewNotifier(sink, alerter)
		n.Test()
		if len(alerter.alerts) != 1 || !strings.Contains(alerter.alerts[0], "blocked") {
			t.Errorf("alerts = %v", alerter.alerts)
		}
	})
}
