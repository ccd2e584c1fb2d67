package validate

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/coop-app/themekit/internal/catppuccin"
	"github.com/coop-app/themekit/internal/theme"
)

func completeColors(t *testing.T) map[string]string {
	t.Helper()
	palette, ok := catppuccin.Lookup("mocha")
	require.True(t, ok)
	colors, err := theme.DeriveColors(palette, false)
	require.NoError(t, err)
	return colors
}

func TestColorsAcceptsCompleteTable(t *testing.T) {
	require.Empty(t, Colors(completeColors(t)))
}

func TestColorsReportsMissingField(t *testing.T) {
	colors := completeColors(t)
	delete(colors, "cursor")

	violations := Colors(colors)
	require.Len(t, violations, 1)
	require.Equal(t, KindMissingField, violations[0].Kind)
	require.Equal(t, "cursor", violations[0].Field)
	require.Equal(t, "Missing required field: cursor", violations[0].String())
}

func TestColorsReportsInvalidColor(t *testing.T) {
	colors := completeColors(t)
	colors["border"] = "notacolor"

	violations := Colors(colors)
	require.Len(t, violations, 1)
	require.Equal(t, KindInvalidColor, violations[0].Kind)
	require.Equal(t, "border", violations[0].Field)
	require.Equal(t, "Invalid hex color in border: notacolor", violations[0].String())
}

func TestColorsChecksUnexpectedExtras(t *testing.T) {
	colors := completeColors(t)
	colors["sparkle"] = "nope"

	violations := Colors(colors)
	require.Len(t, violations, 1)
	require.Equal(t, KindInvalidColor, violations[0].Kind)
	require.Equal(t, "sparkle", violations[0].Field)
}

func familyJSON(t *testing.T, flavor string) []byte {
	t.Helper()
	palette, ok := catppuccin.Lookup(flavor)
	require.True(t, ok)
	family, err := theme.BuildFamily("catppuccin", flavor, palette)
	require.NoError(t, err)
	data, err := json.Marshal(family)
	require.NoError(t, err)
	return data
}

func TestFamilyValid(t *testing.T) {
	result := Family(familyJSON(t, "latte"))
	require.True(t, result.Valid)
	require.Equal(t, "catppuccin-latte", result.ID)
	require.Equal(t, "Catppuccin Latte", result.Name)
	require.Empty(t, result.Errors)
}

func TestFamilyFailsFastOnMissingTopLevelFields(t *testing.T) {
	result := Family([]byte(`{"id": "catppuccin-mocha", "light": {"border": "bogus"}}`))
	require.False(t, result.Valid)
	require.Equal(t, []string{
		"Missing required top-level field: name",
		"Missing required top-level field: dark",
	}, result.Errors)
}

func TestFamilyPrefixesSideErrors(t *testing.T) {
	var family theme.Family
	require.NoError(t, json.Unmarshal(familyJSON(t, "mocha"), &family))
	delete(family.Light, "cursor")
	family.Dark["border"] = "notacolor"
	data, err := json.Marshal(family)
	require.NoError(t, err)

	result := Family(data)
	require.False(t, result.Valid)
	require.Equal(t, []string{
		"Light theme: Missing required field: cursor",
		"Dark theme: Invalid hex color in border: notacolor",
	}, result.Errors)
}

func TestFamilyMalformedJSON(t *testing.T) {
	result := Family([]byte("{not json"))
	require.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	require.Contains(t, result.Errors[0], "Invalid JSON")
}

func TestFileUnreadable(t *testing.T) {
	result := File(filepath.Join(t.TempDir(), "missing.json"))
	require.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	require.Contains(t, result.Errors[0], "Error reading file")
}

func TestDirValidatesEveryMatchingFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "catppuccin-mocha.json"), familyJSON(t, "mocha"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "catppuccin-broken.json"), []byte("{not json"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "unrelated.json"), []byte("{}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "catppuccin-notes.txt"), []byte("x"), 0o644))

	results, err := Dir(dir, "catppuccin")
	require.NoError(t, err)
	require.Len(t, results, 2)

	require.Equal(t, filepath.Join(dir, "catppuccin-broken.json"), results[0].Path)
	require.False(t, results[0].Result.Valid)
	require.Equal(t, filepath.Join(dir, "catppuccin-mocha.json"), results[1].Path)
	require.True(t, results[1].Result.Valid)
}

func TestDirMissingDirectory(t *testing.T) {
	_, err := Dir(filepath.Join(t.TempDir(), "nope"), "catppuccin")
	require.Error(t, err)
	require.Contains(t, err.Error(), "themes directory not found")
}

func TestDirNoMatchingFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "unrelated.json"), []byte("{}"), 0o644))

	_, err := Dir(dir, "catppuccin")
	require.Error(t, err)
	require.Contains(t, err.Error(), "no catppuccin-*.json theme files found")
}
