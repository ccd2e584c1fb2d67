// Package theme derives semantic theme color tables from Catppuccin
// base palettes and assembles them into serializable theme families.
package theme

import "sort"

// transparent is the value used by roles that render nothing.
const transparent = "#00000000"

// Accent policy: which palette hues back the accent roles.
const (
	accentSource  = "blue"
	dangerSource  = "red"
	warningSource = "peach"
)

type ruleKind int

const (
	// kindPassthrough copies the source palette entry unchanged.
	kindPassthrough ruleKind = iota
	// kindAlpha renders the source entry at a fixed alpha.
	kindAlpha
	// kindDarken darkens the source entry by a fixed factor.
	kindDarken
	// kindTransparent emits the fully transparent value.
	kindTransparent
	// kindOnAccent picks a foreground legible against accent
	// backgrounds: palette "base" on light variants, "text" on dark.
	kindOnAccent
)

type rule struct {
	source string
	kind   ruleKind
	param  float64
}

func passthrough(source string) rule { return rule{source: source, kind: kindPassthrough} }

func alpha(source string, a float64) rule {
	return rule{source: source, kind: kindAlpha, param: a}
}

func darken(source string, factor float64) rule {
	return rule{source: source, kind: kindDarken, param: factor}
}

// roleRules maps every semantic role to its derivation rule. This table
// is the single source of truth for the role set; the validator's
// required-field list comes from it via Roles.
var roleRules = map[string]rule{
	// Surfaces
	"background":                  passthrough("base"),
	"surface_background":          passthrough("mantle"),
	"elevated_surface_background": passthrough("crust"),
	"panel_background":            passthrough("base"),
	"overlay":                     alpha("overlay0", 0.1),
	"title_bar":                   {kind: kindTransparent},
	"title_bar_inactive":          passthrough("base"),
	"window_border":               passthrough("surface2"),

	// Borders
	"border":             passthrough("surface2"),
	"border_variant":     passthrough("surface1"),
	"border_focused":     passthrough(accentSource),
	"border_selected":    passthrough(accentSource),
	"border_transparent": {kind: kindTransparent},
	"border_disabled":    passthrough("surface0"),
	"ring":               passthrough(accentSource),

	// Text
	"text":             passthrough("text"),
	"text_muted":       passthrough("subtext1"),
	"text_placeholder": passthrough("subtext0"),
	"text_accent":      passthrough(accentSource),

	// Icons
	"icon":        passthrough("text"),
	"icon_muted":  passthrough("subtext1"),
	"icon_accent": passthrough(accentSource),

	// Primary elements
	"element_foreground": {kind: kindOnAccent},
	"element_background": passthrough(accentSource),
	"element_hover":      alpha(accentSource, 0.9),
	"element_active":     darken(accentSource, 0.9),
	"element_selected":   darken(accentSource, 0.8),
	"element_disabled":   alpha(accentSource, 0.3),

	// Secondary elements
	"secondary_foreground": passthrough(accentSource),
	"secondary_background": passthrough("surface0"),
	"secondary_hover":      alpha("surface1", 0.1),
	"secondary_active":     passthrough("surface1"),
	"secondary_selected":   passthrough("surface1"),
	"secondary_disabled":   alpha("surface0", 0.3),

	// Danger elements
	"danger_foreground": {kind: kindOnAccent},
	"danger_background": passthrough(dangerSource),
	"danger_hover":      alpha(dangerSource, 0.9),
	"danger_active":     darken(dangerSource, 0.9),
	"danger_selected":   darken(dangerSource, 0.8),
	"danger_disabled":   alpha(dangerSource, 0.3),

	// Warning elements
	"warning_foreground": {kind: kindOnAccent},
	"warning_background": passthrough(warningSource),
	"warning_hover":      alpha(warningSource, 0.9),
	"warning_active":     darken(warningSource, 0.9),
	"warning_selected":   darken(warningSource, 0.8),
	"warning_disabled":   alpha(warningSource, 0.3),

	// Ghost elements
	"ghost_element_background":     {kind: kindTransparent},
	"ghost_element_background_alt": passthrough("surface0"),
	"ghost_element_hover":          alpha("overlay0", 0.1),
	"ghost_element_active":         passthrough("surface1"),
	"ghost_element_selected":       passthrough("surface1"),
	"ghost_element_disabled":       alpha("overlay0", 0.05),

	// Tabs
	"tab_inactive_background": passthrough("surface0"),
	"tab_hover_background":    passthrough("surface1"),
	"tab_active_background":   passthrough("surface2"),

	// Scrollbars
	"scrollbar_thumb_background":       alpha("overlay0", 0.2),
	"scrollbar_thumb_hover_background": alpha("overlay0", 0.3),
	"scrollbar_thumb_border":           {kind: kindTransparent},
	"scrollbar_track_background":       {kind: kindTransparent},
	"scrollbar_track_border":           passthrough("surface1"),

	// Interactive
	"drop_target_background": alpha(accentSource, 0.1),
	"cursor":                 passthrough("sky"),
	"selection":              alpha("sky", 0.25),
}

// Roles returns every semantic role name, sorted.
func Roles() []string {
	names := make([]string, 0, len(roleRules))
	for name := range roleRules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
