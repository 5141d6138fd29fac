// Package notify raises desktop alerts when a timer phase ends.
package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"
)

// AppName is shown by notification daemons that display a sender.
const AppName = "focusflow"

// Notifier delivers a short alert to the user.
type Notifier interface {
	Notify(title, message string) error
}

// Desktop sends alerts through the platform notification service.
type Desktop struct {
	// Sound plays the alert sound along with the notification.
	Sound bool
}

// NewDesktop returns a Desktop notifier and registers the app name.
func NewDesktop(sound bool) *Desktop {
	beeep.AppName = AppName
	return &Desktop{Sound: sound}
}

func (d *Desktop) Notify(title, message string) error {
	var err error
	if d.Sound {
		err = beeep.Alert(title, message, "")
	} else {
		err = beeep.Notify(title, message, "")
	}
	if err != nil {
		return fmt.Errorf("sending desktop notification: %w", err)
	}
	return nil
}

// Noop drops every alert.
type Noop struct{}

func (Noop) Notify(string, string) error { return nil }

// New returns a Desktop notifier when enabled and Noop otherwise. sound
// selects an audible alert over a silent notification.
func New(enabled, sound bool) Notifier {
	if !enabled {
		return Noop{}
	}
	return NewDesktop(sound)
}
