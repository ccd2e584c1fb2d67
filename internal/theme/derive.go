package theme

import (
	"fmt"

	"github.com/coop-app/themekit/internal/catppuccin"
	"github.com/coop-app/themekit/internal/hexcolor"
)

// Colors is a derived semantic role table: role name to hex value.
type Colors map[string]string

// DeriveColors maps a base palette to the full semantic role table.
// isLight flips the on-accent foregrounds so button text stays legible
// on both scheme brightnesses. Pure and deterministic: the same inputs
// always produce the same table. A malformed palette entry is a
// programming error in static data and aborts with hexcolor.ErrInvalidColor.
func DeriveColors(palette catppuccin.Palette, isLight bool) (Colors, error) {
	onAccent := palette[catppuccin.Text]
	if isLight {
		onAccent = palette[catppuccin.Base]
	}

	colors := make(Colors, len(roleRules))
	for role, r := range roleRules {
		value, err := applyRule(r, palette, onAccent)
		if err != nil {
			return nil, fmt.Errorf("derive %s: %w", role, err)
		}
		colors[role] = value
	}
	return colors, nil
}

func applyRule(r rule, palette catppuccin.Palette, onAccent string) (string, error) {
	switch r.kind {
	case kindTransparent:
		return transparent, nil
	case kindOnAccent:
		return onAccent, nil
	case kindPassthrough:
		return palette[r.source], nil
	case kindAlpha:
		return hexcolor.ToRGBA(palette[r.source], r.param)
	case kindDarken:
		return hexcolor.Darken(palette[r.source], r.param)
	default:
		return "", fmt.Errorf("unknown rule kind %d", r.kind)
	}
}
