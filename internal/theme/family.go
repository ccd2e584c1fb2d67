package theme

import (
	"fmt"
	"strings"

	"github.com/coop-app/themekit/internal/catppuccin"
)

// Family bundles the light and dark role tables for one flavor under a
// stable id and a display name.
type Family struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Light Colors `json:"light"`
	Dark  Colors `json:"dark"`
}

// BuildFamily derives the complete theme family for a flavor.
//
// Dark flavors use a single derivation for both modes. Latte, the only
// light flavor, gets a synthetic dark counterpart: the grayscale ramp
// is swapped via catppuccin.LatteDarkOverrides while every accent hue
// stays put, then the same derivation runs over the overridden palette.
func BuildFamily(prefix, flavor string, palette catppuccin.Palette) (Family, error) {
	family := Family{
		ID:   prefix + "-" + flavor,
		Name: displayName(prefix, flavor),
	}

	if catppuccin.IsLight(flavor) {
		light, err := DeriveColors(palette, true)
		if err != nil {
			return Family{}, fmt.Errorf("build %s light: %w", flavor, err)
		}

		darkPalette := palette.Clone()
		for name, value := range catppuccin.LatteDarkOverrides {
			darkPalette[name] = value
		}
		dark, err := DeriveColors(darkPalette, false)
		if err != nil {
			return Family{}, fmt.Errorf("build %s dark: %w", flavor, err)
		}

		family.Light = light
		family.Dark = dark
		return family, nil
	}

	colors, err := DeriveColors(palette, false)
	if err != nil {
		return Family{}, fmt.Errorf("build %s: %w", flavor, err)
	}
	family.Light = colors
	family.Dark = colors
	return family, nil
}

func displayName(prefix, flavor string) string {
	return capitalize(prefix) + " " + capitalize(flavor)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
