// Package capture reads the color of a screen pixel and drives the
// armed/idle capture flow.
package capture

import (
	"errors"
	"fmt"
)

// RGBA is a captured pixel color.
type RGBA struct {
	R, G, B, A uint8
}

// ErrCaptureUnavailable is returned when a pixel could not be read.
var ErrCaptureUnavailable = errors.New("pixel capture unavailable")

// Provider reads the color of the pixel at screen coordinates (x, y).
type Provider interface {
	PixelAt(x, y int) (RGBA, error)
}

// Chain tries providers in fixed order, returning the first successful
// read. All providers failing yields ErrCaptureUnavailable.
type Chain struct {
	providers []Provider
}

func NewChain(providers ...Provider) *Chain {
	return &Chain{providers: providers}
}

func (c *Chain) PixelAt(x, y int) (RGBA, error) {
	var lastErr error
	for _, p := range c.providers {
		color, err := p.PixelAt(x, y)
		if err == nil {
			return color, nil
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = errors.New("no providers configured")
	}
	return RGBA{}, fmt.Errorf("%w: %v", ErrCaptureUnavailable, lastErr)
}
