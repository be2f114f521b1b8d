// Package clipboard abstracts the system clipboard as a text sink.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// Sink receives captured color strings.
type Sink interface {
	WriteText(text string) error
}

// System writes to the OS clipboard.
type System struct{}

func (System) WriteText(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}
	return nil
}

// Noop discards writes. Used when no clipboard is available (headless
// test environments).
type Noop struct{}

func (Noop) WriteText(string) error { return nil }
