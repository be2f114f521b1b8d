package capture

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// CommandProvider shells out to the platform's native screenshot tool
// and decodes the captured region. Slower than the primary provider but
// survives environments where the display API is unavailable.
type CommandProvider struct {
	tempDir string
}

func NewCommandProvider() *CommandProvider {
	tmpDir, err := os.MkdirTemp("", "huepick-capture-*")
	if err != nil {
		tmpDir = os.TempDir()
	}
	return &CommandProvider{tempDir: tmpDir}
}

func (p *CommandProvider) PixelAt(x, y int) (RGBA, error) {
	tmpFile := filepath.Join(p.tempDir, "pixel.png")
	defer os.Remove(tmpFile)

	cmd, err := captureCommand(x, y, tmpFile)
	if err != nil {
		return RGBA{}, err
	}
	if err := cmd.Run(); err != nil {
		return RGBA{}, fmt.Errorf("screenshot command failed: %w", err)
	}

	f, err := os.Open(tmpFile)
	if err != nil {
		return RGBA{}, fmt.Errorf("failed to read captured pixel: %w", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return RGBA{}, fmt.Errorf("failed to decode captured pixel: %w", err)
	}
	return pixelOf(img), nil
}

// Close removes the temp directory.
func (p *CommandProvider) Close() {
	if p.tempDir != "" {
		os.RemoveAll(p.tempDir)
	}
}

func captureCommand(x, y int, outFile string) (*exec.Cmd, error) {
	switch runtime.GOOS {
	case "darwin":
		// -x: no sound, -R: capture region
		region := fmt.Sprintf("%d,%d,1,1", x, y)
		return exec.Command("screencapture", "-x", "-t", "png", "-R", region, outFile), nil
	case "linux":
		if _, err := exec.LookPath("grim"); err == nil {
			region := fmt.Sprintf("%d,%d 1x1", x, y)
			return exec.Command("grim", "-g", region, outFile), nil
		}
		if _, err := exec.LookPath("import"); err == nil {
			crop := fmt.Sprintf("1x1+%d+%d", x, y)
			return exec.Command("import", "-window", "root", "-crop", crop, "png:"+outFile), nil
		}
		return nil, fmt.Errorf("no screenshot tool found (tried grim, import)")
	default:
		return nil, fmt.Errorf("no fallback screenshot command for %s", runtime.GOOS)
	}
}

func pixelOf(img image.Image) RGBA {
	c := color.RGBAModel.Convert(img.At(img.Bounds().Min.X, img.Bounds().Min.Y)).(color.RGBA)
	return RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
