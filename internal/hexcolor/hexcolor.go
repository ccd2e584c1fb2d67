// Package hexcolor provides hex color string helpers for theme
// generation: alpha encoding, darkening and syntax validation.
package hexcolor

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidColor reports a malformed hex color string.
var ErrInvalidColor = errors.New("invalid hex color")

// ToRGBA converts a hex color to an 8-digit RGBA hex string. The input
// may be 6 digits (RGB) or 8 digits (RGBA), with or without a leading
// "#". For 8-digit input the existing alpha channel wins and the alpha
// argument is ignored. RGB digits pass through unchanged; a computed
// alpha channel is encoded as round(alpha*255).
func ToRGBA(hex string, alpha float64) (string, error) {
	digits := strings.TrimPrefix(hex, "#")

	switch len(digits) {
	case 6:
		if _, err := strconv.ParseUint(digits, 16, 32); err != nil {
			return "", fmt.Errorf("%w: %q", ErrInvalidColor, hex)
		}
		alphaHex := fmt.Sprintf("%02x", uint8(math.Round(alpha*255)))
		return "#" + digits + alphaHex, nil
	case 8:
		if _, err := strconv.ParseUint(digits, 16, 64); err != nil {
			return "", fmt.Errorf("%w: %q", ErrInvalidColor, hex)
		}
		// The trailing digits already encode the alpha; keep them.
		return "#" + digits, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}
}

// Darken multiplies each RGB channel by factor, truncating to an
// integer and clamping to [0,255]. Accepts 6- or 8-digit hex input; an
// alpha channel is dropped. Returns a 6-digit lowercase hex string.
func Darken(hex string, factor float64) (string, error) {
	digits := strings.TrimPrefix(hex, "#")

	if len(digits) != 6 && len(digits) != 8 {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}
	if _, err := strconv.ParseUint(digits, 16, 64); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}

	channels := make([]int, 3)
	for i := range channels {
		value, err := strconv.ParseUint(digits[i*2:i*2+2], 16, 8)
		if err != nil {
			return "", fmt.Errorf("%w: %q", ErrInvalidColor, hex)
		}
		scaled := int(float64(value) * factor)
		if scaled < 0 {
			scaled = 0
		}
		if scaled > 255 {
			scaled = 255
		}
		channels[i] = scaled
	}

	return fmt.Sprintf("#%02x%02x%02x", channels[0], channels[1], channels[2]), nil
}

// Valid reports whether s is a syntactically valid hex color: a "#"
// followed by exactly 3, 4, 6 or 8 hex digits.
func Valid(s string) bool {
	if !strings.HasPrefix(s, "#") {
		return false
	}
	digits := s[1:]
	switch len(digits) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for _, c := range digits {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
