package capture

import (
	"fmt"

	"github.com/kbinani/screenshot"

	"github.com/nlfmt/huepick/internal/windowstate"
)

// ScreenshotProvider reads pixels through the screenshot library's
// native display APIs. This is the primary provider.
type ScreenshotProvider struct{}

func (ScreenshotProvider) PixelAt(x, y int) (RGBA, error) {
	img, err := screenshot.Capture(x, y, 1, 1)
	if err != nil {
		return RGBA{}, fmt.Errorf("screenshot capture at (%d,%d): %w", x, y, err)
	}
	c := img.RGBAAt(0, 0)
	return RGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
}

// Displays returns the bounds of all active displays, primary first.
// Used to clamp restored window geometry.
func Displays() []windowstate.Display {
	n := screenshot.NumActiveDisplays()
	displays := make([]windowstate.Display, 0, n)
	for i := 0; i < n; i++ {
		bounds := screenshot.GetDisplayBounds(i)
		displays = append(displays, windowstate.Display{
			X:      bounds.Min.X,
			Y:      bounds.Min.Y,
			Width:  bounds.Dx(),
			Height: bounds.Dy(),
		})
	}
	return displays
}
