// Package notify shows transient desktop notifications.
package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"
)

// Notifier shows a short transient message to the user.
type Notifier interface {
	Notify(title, message string) error
}

// Desktop sends native desktop notifications.
type Desktop struct {
	AppName string
}

func (d Desktop) Notify(title, message string) error {
	if err := beeep.Notify(title, message, ""); err != nil {
		return fmt.Errorf("failed to show notification: %w", err)
	}
	return nil
}

// Noop discards notifications.
type Noop struct{}

func (Noop) Notify(string, string) error { return nil }
