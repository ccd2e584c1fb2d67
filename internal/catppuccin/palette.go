// Package catppuccin provides the builtin Catppuccin base palettes.
package catppuccin

import "sort"

// Palette key names. Every flavor defines exactly this set.
const (
	Rosewater = "rosewater"
	Flamingo  = "flamingo"
	Pink      = "pink"
	Mauve     = "mauve"
	Red       = "red"
	Maroon    = "maroon"
	Peach     = "peach"
	Yellow    = "yellow"
	Green     = "green"
	Teal      = "teal"
	Sky       = "sky"
	Sapphire  = "sapphire"
	Blue      = "blue"
	Lavender  = "lavender"
	Text      = "text"
	Subtext1  = "subtext1"
	Subtext0  = "subtext0"
	Overlay2  = "overlay2"
	Overlay1  = "overlay1"
	Overlay0  = "overlay0"
	Surface2  = "surface2"
	Surface1  = "surface1"
	Surface0  = "surface0"
	Base      = "base"
	Mantle    = "mantle"
	Crust     = "crust"
)

// Keys lists the required palette entries in canonical order.
var Keys = []string{
	Rosewater, Flamingo, Pink, Mauve, Red, Maroon, Peach, Yellow,
	Green, Teal, Sky, Sapphire, Blue, Lavender,
	Text, Subtext1, Subtext0,
	Overlay2, Overlay1, Overlay0,
	Surface2, Surface1, Surface0, Base, Mantle, Crust,
}

// Palette maps color names to hex values for one flavor.
type Palette map[string]string

// Clone returns an independent copy so callers can override entries
// without mutating the registry.
func (p Palette) Clone() Palette {
	out := make(Palette, len(p))
	for name, value := range p {
		out[name] = value
	}
	return out
}

// Flavors returns the registered flavor names, sorted.
func Flavors() []string {
	names := make([]string, 0, len(Palettes))
	for name := range Palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the palette for a flavor.
func Lookup(flavor string) (Palette, bool) {
	p, ok := Palettes[flavor]
	return p, ok
}

// IsLight reports whether a flavor is inherently light.
// Latte is the only light flavor; its theme family gets a synthetic
// dark counterpart from LatteDarkOverrides.
func IsLight(flavor string) bool {
	return flavor == "latte"
}
