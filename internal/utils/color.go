package utils

import (
	"fmt"
	"strings"
)

// ParseHexColor parses a hex color string into RGBA components.
// Accepts "#RGB", "#RRGGBB" and "#RRGGBBAA" with an optional leading "#".
// Alpha defaults to 255 when not present.
// Example: "#FF8800" -> (255, 136, 0, 255)
func ParseHexColor(s string) (r, g, b, a uint8, err error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	a = 255

	switch len(hex) {
	case 3:
		// Short form: each digit doubled
		expanded := make([]byte, 6)
		for i := 0; i < 3; i++ {
			expanded[2*i] = hex[i]
			expanded[2*i+1] = hex[i]
		}
		hex = string(expanded)
		fallthrough
	case 6:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	case 8:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x%02x", &r, &g, &b, &a)
	default:
		return 0, 0, 0, 0, fmt.Errorf("hex color must have 3, 6 or 8 digits, got %q", s)
	}
	if err != nil {
		return 0, 0, 0, 0, fmt.Errorf("failed to parse hex color %q: %w", s, err)
	}
	return r, g, b, a, nil
}

// FormatHexColor renders RGB components as canonical "#RRGGBB".
func FormatHexColor(r, g, b uint8) string {
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

// FormatHexColorA renders RGBA components as canonical "#RRGGBBAA".
func FormatHexColorA(r, g, b, a uint8) string {
	return fmt.Sprintf("#%02X%02X%02X%02X", r, g, b, a)
}

// CanonicalHex normalizes any accepted hex form to the canonical stored
// form: "#RRGGBB", or "#RRGGBBAA" when withAlpha is true.
func CanonicalHex(s string, withAlpha bool) (string, error) {
	r, g, b, a, err := ParseHexColor(s)
	if err != nil {
		return "", err
	}
	if withAlpha {
		return FormatHexColorA(r, g, b, a), nil
	}
	return FormatHexColor(r, g, b), nil
}

// RGBToHSV converts 0-255 RGB components to HSV on a 0-100 scale.
// Example: (255, 128, 0) -> (8, 100, 100)
func RGBToHSV(r, g, b uint8) (h, s, v int) {
	rf, gf, bf := float64(r)/255, float64(g)/255, float64(b)/255

	max := rf
	if gf > max {
		max = gf
	}
	if bf > max {
		max = bf
	}
	min := rf
	if gf < min {
		min = gf
	}
	if bf < min {
		min = bf
	}
	delta := max - min

	var hue float64
	switch {
	case delta == 0:
		hue = 0
	case max == rf:
		hue = (gf - bf) / delta
		for hue < 0 {
			hue += 6
		}
	case max == gf:
		hue = (bf-rf)/delta + 2
	default:
		hue = (rf-gf)/delta + 4
	}
	hue /= 6

	var sat float64
	if max > 0 {
		sat = delta / max
	}

	return int(hue*100 + 0.5), int(sat*100 + 0.5), int(max*100 + 0.5)
}

// HSVToRGB converts HSV components on a 0-100 scale to 0-255 RGB.
func HSVToRGB(h, s, v int) (r, g, b uint8) {
	hf := float64(h) / 100 * 6
	sf := float64(s) / 100
	vf := float64(v) / 100

	i := int(hf) % 6
	f := hf - float64(int(hf))
	p := vf * (1 - sf)
	q := vf * (1 - f*sf)
	t := vf * (1 - (1-f)*sf)

	var rf, gf, bf float64
	switch i {
	case 0:
		rf, gf, bf = vf, t, p
	case 1:
		rf, gf, bf = q, vf, p
	case 2:
		rf, gf, bf = p, vf, t
	case 3:
		rf, gf, bf = p, q, vf
	case 4:
		rf, gf, bf = t, p, vf
	default:
		rf, gf, bf = vf, p, q
	}

	return uint8(rf*255 + 0.5), uint8(gf*255 + 0.5), uint8(bf*255 + 0.5)
}
