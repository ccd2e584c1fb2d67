package theme

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/coop-app/themekit/internal/catppuccin"
	"github.com/coop-app/themekit/internal/hexcolor"
)

func mustPalette(t *testing.T, flavor string) catppuccin.Palette {
	t.Helper()
	palette, ok := catppuccin.Lookup(flavor)
	require.True(t, ok)
	return palette
}

func TestEveryRoleHasATotalRule(t *testing.T) {
	roles := Roles()
	require.Len(t, roles, 63)

	palette := mustPalette(t, "mocha")
	colors, err := DeriveColors(palette, false)
	require.NoError(t, err)
	require.Len(t, colors, len(roles))

	for _, role := range roles {
		value, ok := colors[role]
		require.True(t, ok, "role %s not derived", role)
		require.True(t, hexcolor.Valid(value), "role %s: %q", role, value)
	}
}

func TestDeriveColorsIsDeterministic(t *testing.T) {
	palette := mustPalette(t, "frappe")

	first, err := DeriveColors(palette, false)
	require.NoError(t, err)
	second, err := DeriveColors(palette, false)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestMochaAccentDerivation(t *testing.T) {
	// Mocha blue is #89b4fa; the accent roles exercise every transform.
	colors, err := DeriveColors(mustPalette(t, "mocha"), false)
	require.NoError(t, err)

	require.Equal(t, "#89b4fa", colors["element_background"], "accent passes through unmodified")

	hover, err := hexcolor.ToRGBA("#89b4fa", 0.9)
	require.NoError(t, err)
	require.Equal(t, hover, colors["element_hover"])

	active, err := hexcolor.Darken("#89b4fa", 0.9)
	require.NoError(t, err)
	require.Equal(t, active, colors["element_active"])

	selected, err := hexcolor.Darken("#89b4fa", 0.8)
	require.NoError(t, err)
	require.Equal(t, selected, colors["element_selected"])

	disabled, err := hexcolor.ToRGBA("#89b4fa", 0.3)
	require.NoError(t, err)
	require.Equal(t, disabled, colors["element_disabled"])
}

func TestTransparentRoles(t *testing.T) {
	colors, err := DeriveColors(mustPalette(t, "macchiato"), false)
	require.NoError(t, err)

	for _, role := range []string{
		"title_bar",
		"border_transparent",
		"ghost_element_background",
		"scrollbar_thumb_border",
		"scrollbar_track_background",
	} {
		require.Equal(t, "#00000000", colors[role], "role %s", role)
	}
}

func TestOnAccentForegroundFlips(t *testing.T) {
	palette := mustPalette(t, "latte")

	light, err := DeriveColors(palette, true)
	require.NoError(t, err)
	dark, err := DeriveColors(palette, false)
	require.NoError(t, err)

	for _, role := range []string{"element_foreground", "danger_foreground", "warning_foreground"} {
		require.Equal(t, palette[catppuccin.Base], light[role], "light %s", role)
		require.Equal(t, palette[catppuccin.Text], dark[role], "dark %s", role)
	}
}

func TestDeriveColorsRejectsMalformedPalette(t *testing.T) {
	palette := mustPalette(t, "mocha").Clone()
	palette[catppuccin.Blue] = "notacolor"

	_, err := DeriveColors(palette, false)
	require.ErrorIs(t, err, hexcolor.ErrInvalidColor)
}

func TestBuildFamilyDarkFlavorSharesBothSides(t *testing.T) {
	family, err := BuildFamily("catppuccin", "mocha", mustPalette(t, "mocha"))
	require.NoError(t, err)

	require.Equal(t, "catppuccin-mocha", family.ID)
	require.Equal(t, "Catppuccin Mocha", family.Name)
	require.Equal(t, family.Light, family.Dark)
}

func TestBuildFamilyLatteSynthesizesDarkVariant(t *testing.T) {
	palette := mustPalette(t, "latte")
	family, err := BuildFamily("catppuccin", "latte", palette)
	require.NoError(t, err)

	require.Equal(t, "catppuccin-latte", family.ID)
	require.Equal(t, "Catppuccin Latte", family.Name)
	require.NotEqual(t, family.Light, family.Dark)

	// The dark side swaps the neutral ramp but keeps the accents.
	require.Equal(t, palette[catppuccin.Base], family.Light["background"])
	require.Equal(t, catppuccin.LatteDarkOverrides[catppuccin.Base], family.Dark["background"])
	require.Equal(t, palette[catppuccin.Blue], family.Light["element_background"])
	require.Equal(t, palette[catppuccin.Blue], family.Dark["element_background"])

	// The registry palette must survive the override untouched.
	require.Equal(t, "#eff1f5", palette[catppuccin.Base])
}

func TestFamilyIDsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, flavor := range catppuccin.Flavors() {
		family, err := BuildFamily("catppuccin", flavor, mustPalette(t, flavor))
		require.NoError(t, err)
		require.False(t, seen[family.ID], "duplicate id %s", family.ID)
		seen[family.ID] = true
	}
}

func TestWriteFamilyRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "themes")
	family, err := BuildFamily("catppuccin", "mocha", mustPalette(t, "mocha"))
	require.NoError(t, err)

	path, err := WriteFamily(dir, family)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "catppuccin-mocha.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var loaded Family
	require.NoError(t, json.Unmarshal(data, &loaded))
	require.Equal(t, family, loaded)
}
