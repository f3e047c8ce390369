package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tygara/practicetracker/internal/domain"
)

// Palette is the set of colors a theme is built from
type Palette struct {
	Base     lipgloss.Color
	Mantle   lipgloss.Color
	Surface0 lipgloss.Color
	Surface1 lipgloss.Color
	Surface2 lipgloss.Color
	Overlay0 lipgloss.Color
	Overlay1 lipgloss.Color
	Subtext0 lipgloss.Color
	Subtext1 lipgloss.Color
	Text     lipgloss.Color

	Red      lipgloss.Color
	Peach    lipgloss.Color
	Yellow   lipgloss.Color
	Green    lipgloss.Color
	Teal     lipgloss.Color
	Blue     lipgloss.Color
	Mauve    lipgloss.Color
	Lavender lipgloss.Color
}

// Macchiato is the Catppuccin Macchiato palette, used by the dark theme
var Macchiato = Palette{
	Base:     lipgloss.Color("#24273a"),
	Mantle:   lipgloss.Color("#1e2030"),
	Surface0: lipgloss.Color("#363a4f"),
	Surface1: lipgloss.Color("#494d64"),
	Surface2: lipgloss.Color("#5b6078"),
	Overlay0: lipgloss.Color("#6e738d"),
	Overlay1: lipgloss.Color("#8087a2"),
	Subtext0: lipgloss.Color("#a5adcb"),
	Subtext1: lipgloss.Color("#b8c0e0"),
	Text:     lipgloss.Color("#cad3f5"),

	Red:      lipgloss.Color("#ed8796"),
	Peach:    lipgloss.Color("#f5a97f"),
	Yellow:   lipgloss.Color("#eed49f"),
	Green:    lipgloss.Color("#a6da95"),
	Teal:     lipgloss.Color("#8bd5ca"),
	Blue:     lipgloss.Color("#8aadf4"),
	Mauve:    lipgloss.Color("#c6a0f6"),
	Lavender: lipgloss.Color("#b7bdf8"),
}

// Latte is the Catppuccin Latte palette, used by the light theme
var Latte = Palette{
	Base:     lipgloss.Color("#eff1f5"),
	Mantle:   lipgloss.Color("#e6e9ef"),
	Surface0: lipgloss.Color("#ccd0da"),
	Surface1: lipgloss.Color("#bcc0cc"),
	Surface2: lipgloss.Color("#acb0be"),
	Overlay0: lipgloss.Color("#9ca0b0"),
	Overlay1: lipgloss.Color("#8c8fa1"),
	Subtext0: lipgloss.Color("#6c6f85"),
	Subtext1: lipgloss.Color("#5c5f77"),
	Text:     lipgloss.Color("#4c4f69"),

	Red:      lipgloss.Color("#d20f39"),
	Peach:    lipgloss.Color("#fe640b"),
	Yellow:   lipgloss.Color("#df8e1d"),
	Green:    lipgloss.Color("#40a02b"),
	Teal:     lipgloss.Color("#179299"),
	Blue:     lipgloss.Color("#1e66f5"),
	Mauve:    lipgloss.Color("#8839ef"),
	Lavender: lipgloss.Color("#7287fd"),
}

// PaletteFor returns the palette for a theme name, "dark" or "light".
// Unknown names fall back to dark.
func PaletteFor(theme string) Palette {
	if theme == "light" {
		return Latte
	}
	return Macchiato
}

// CategoryColor maps an exercise kind to its accent color
func (p Palette) CategoryColor(kind domain.Kind) lipgloss.Color {
	switch kind {
	case domain.KindScale:
		return p.Blue
	case domain.KindArpeggio:
		return p.Mauve
	case domain.KindSong:
		return p.Green
	default:
		return p.Overlay1
	}
}
