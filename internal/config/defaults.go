package config

// DefaultSpacingUnit is the grid unit, in pixels, used when a theme does not
// override spacing.
const DefaultSpacingUnit = 4

// Default returns the built-in theme. The primary and secondary families are
// derived from single base colours; the status families carry hand-tuned
// shades because naive lightness shifts wash out saturated greens and reds.
func Default() *Theme {
	return &Theme{
		Version:     "1.0",
		Name:        "veneer-default",
		Description: "Built-in default theme",
		Palette: Palette{
			Families: map[string]Family{
				"PRIMARY":   {Base: "#00A3FE"},
				"SECONDARY": {Base: "#F3F8FE"},
				"NEUTRAL":   {Base: "#999999"},
				"SUCCESS": {Shades: &ShadeSet{
					Light: "#3EFF9D",
					Mid:   "#34E683",
					Dark:  "#2CC36F",
					XDark: "#1F8A4E",
				}},
				"WARNING": {Shades: &ShadeSet{
					Light: "#FFF158",
					Mid:   "#FFC94A",
					Dark:  "#D8AA3E",
					XDark: "#99782C",
				}},
				"ERROR": {Shades: &ShadeSet{
					Light: "#FF6756",
					Mid:   "#FF5648",
					Dark:  "#D8493D",
					XDark: "#99332B",
				}},
			},
		},
		Typography: Typography{
			Family: []string{"Poppins", "Segoe UI", "Inter", "Arial", "sans-serif"},
			Sizes: map[string]int{
				"DISPLAY": 20,
				"HEADING": 16,
				"TITLE":   14,
				"BODY":    11,
				"SMALL":   10,
			},
		},
		Spacing: Spacing{Unit: DefaultSpacingUnit},
	}
}
