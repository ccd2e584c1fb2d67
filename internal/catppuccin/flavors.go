package catppuccin

// Palettes holds the base palette for every flavor, keyed by flavor
// name. Values come from the published Catppuccin palettes. Treated as
// immutable after init; use Clone before overriding entries.
var Palettes = map[string]Palette{
	"latte": {
		Rosewater: "#dc8a78",
		Flamingo:  "#dd7878",
		Pink:      "#ea76cb",
		Mauve:     "#8839ef",
		Red:       "#d20f39",
		Maroon:    "#e64553",
		Peach:     "#fe640b",
		Yellow:    "#df8e1d",
		Green:     "#40a02b",
		Teal:      "#179299",
		Sky:       "#04a5e5",
		Sapphire:  "#209fb5",
		Blue:      "#1e66f5",
		Lavender:  "#7287fd",
		Text:      "#4c4f69",
		Subtext1:  "#5c5f77",
		Subtext0:  "#6c6f85",
		Overlay2:  "#7c7f93",
		Overlay1:  "#8c8fa1",
		Overlay0:  "#9ca0b0",
		Surface2:  "#acb0be",
		Surface1:  "#bcc0cc",
		Surface0:  "#ccd0da",
		Base:      "#eff1f5",
		Mantle:    "#e6e9ef",
		Crust:     "#dce0e8",
	},
	"frappe": {
		Rosewater: "#f2d5cf",
		Flamingo:  "#eebebe",
		Pink:      "#f4b8e4",
		Mauve:     "#ca9ee6",
		Red:       "#e78284",
		Maroon:    "#ea999c",
		Peach:     "#ef9f76",
		Yellow:    "#e5c890",
		Green:     "#a6d189",
		Teal:      "#81c8be",
		Sky:       "#99d1db",
		Sapphire:  "#85c1dc",
		Blue:      "#8caaee",
		Lavender:  "#babbf1",
		Text:      "#c6d0f5",
		Subtext1:  "#b5bfe2",
		Subtext0:  "#a5adce",
		Overlay2:  "#949cbb",
		Overlay1:  "#838ba7",
		Overlay0:  "#737994",
		Surface2:  "#626880",
		Surface1:  "#51576d",
		Surface0:  "#414559",
		Base:      "#303446",
		Mantle:    "#292c3c",
		Crust:     "#232634",
	},
	"macchiato": {
		Rosewater: "#f4dbd6",
		Flamingo:  "#f0c6c6",
		Pink:      "#f5bde6",
		Mauve:     "#c6a0f6",
		Red:       "#ed8796",
		Maroon:    "#ee99a0",
		Peach:     "#f5a97f",
		Yellow:    "#eed49f",
		Green:     "#a6da95",
		Teal:      "#8bd5ca",
		Sky:       "#91d7e3",
		Sapphire:  "#7dc4e4",
		Blue:      "#8aadf4",
		Lavender:  "#b7bdf8",
		Text:      "#cad3f5",
		Subtext1:  "#b8c0e0",
		Subtext0:  "#a5adcb",
		Overlay2:  "#939ab7",
		Overlay1:  "#8087a2",
		Overlay0:  "#6e738d",
		Surface2:  "#5b6078",
		Surface1:  "#494d64",
		Surface0:  "#363a4f",
		Base:      "#24273a",
		Mantle:    "#1e2030",
		Crust:     "#181926",
	},
	"mocha": {
		Rosewater: "#f5e0dc",
		Flamingo:  "#f2cdcd",
		Pink:      "#f5c2e7",
		Mauve:     "#cba6f7",
		Red:       "#f38ba8",
		Maroon:    "#eba0ac",
		Peach:     "#fab387",
		Yellow:    "#f9e2af",
		Green:     "#a6e3a1",
		Teal:      "#94e2d5",
		Sky:       "#89dceb",
		Sapphire:  "#74c7ec",
		Blue:      "#89b4fa",
		Lavender:  "#b4befe",
		Text:      "#cdd6f4",
		Subtext1:  "#bac2de",
		Subtext0:  "#a6adc8",
		Overlay2:  "#9399b2",
		Overlay1:  "#7f849c",
		Overlay0:  "#6c7086",
		Surface2:  "#585b70",
		Surface1:  "#45475a",
		Surface0:  "#313244",
		Base:      "#1e1e2e",
		Mantle:    "#181825",
		Crust:     "#11111b",
	},
}

// LatteDarkOverrides is the grayscale ramp substituted into the latte
// palette to synthesize its dark counterpart. Latte is the only flavor
// without a published dark variant, so the dark mode swaps the neutral
// ramp and keeps every accent hue. The overlay entries carry their own
// alpha. Kept verbatim from the accepted theme set.
var LatteDarkOverrides = Palette{
	Base:     "#1a1a1a",
	Mantle:   "#1f1f1f",
	Crust:    "#242424",
	Surface0: "#262626",
	Surface1: "#383838",
	Surface2: "#404040",
	Overlay0: "#ffffff1a",
	Overlay1: "#ffffff33",
	Overlay2: "#ffffff4d",
	Text:     "#f2f2f2",
	Subtext1: "#b3b3b3",
	Subtext0: "#808080",
}
