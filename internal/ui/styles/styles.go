package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tygara/practicetracker/internal/domain"
)

// Styles holds all the UI styles
type Styles struct {
	Palette Palette

	// Header
	Header   lipgloss.Style
	Subtitle lipgloss.Style

	// Session list
	Panel          lipgloss.Style
	PanelTitle     lipgloss.Style
	ListItem       lipgloss.Style
	ListItemActive lipgloss.Style
	Muted          lipgloss.Style

	// Session detail
	Label lipgloss.Style
	Value lipgloss.Style

	// Plan table
	TableHeader lipgloss.Style
	TableCell   lipgloss.Style
	TableTotal  lipgloss.Style
	TableBorder lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusMode lipgloss.Style
	StatusHint lipgloss.Style
	StatusInfo lipgloss.Style

	// Overlays
	Overlay        lipgloss.Style
	OverlayTitle   lipgloss.Style
	MenuItem       lipgloss.Style
	MenuItemActive lipgloss.Style
	MenuKey        lipgloss.Style
	Separator      lipgloss.Style
	Footer         lipgloss.Style
	InputLabel     lipgloss.Style
	InputFocused   lipgloss.Style
	ErrorText      lipgloss.Style

	// Toasts
	ToastInfo    lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastWarning lipgloss.Style
	ToastError   lipgloss.Style
}

// New creates a new Styles instance with the dark theme
func New() *Styles {
	return NewWithPalette(Macchiato)
}

// NewForTheme creates styles for a theme name, "dark" or "light"
func NewForTheme(theme string) *Styles {
	return NewWithPalette(PaletteFor(theme))
}

// NewWithPalette builds every style from the given palette
func NewWithPalette(p Palette) *Styles {
	toast := func(c lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(c).
			Foreground(c).
			Padding(0, 1)
	}

	return &Styles{
		Palette: p,

		Header: lipgloss.NewStyle().
			Foreground(p.Lavender).
			Bold(true).
			Padding(0, 1),

		Subtitle: lipgloss.NewStyle().
			Foreground(p.Subtext0),

		Panel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Surface1).
			Padding(0, 1),

		PanelTitle: lipgloss.NewStyle().
			Foreground(p.Blue).
			Bold(true).
			MarginBottom(1),

		ListItem: lipgloss.NewStyle().
			Foreground(p.Text),

		ListItemActive: lipgloss.NewStyle().
			Foreground(p.Base).
			Background(p.Lavender).
			Bold(true),

		Muted: lipgloss.NewStyle().
			Foreground(p.Overlay0),

		Label: lipgloss.NewStyle().
			Foreground(p.Subtext1).
			Bold(true),

		Value: lipgloss.NewStyle().
			Foreground(p.Text),

		TableHeader: lipgloss.NewStyle().
			Foreground(p.Blue).
			Bold(true).
			Padding(0, 1),

		TableCell: lipgloss.NewStyle().
			Foreground(p.Text).
			Padding(0, 1),

		TableTotal: lipgloss.NewStyle().
			Foreground(p.Green).
			Bold(true).
			Padding(0, 1),

		TableBorder: lipgloss.NewStyle().
			Foreground(p.Surface2),

		StatusBar: lipgloss.NewStyle().
			Background(p.Surface0).
			Foreground(p.Subtext0).
			Padding(0, 1),

		StatusMode: lipgloss.NewStyle().
			Background(p.Blue).
			Foreground(p.Base).
			Bold(true).
			Padding(0, 1),

		StatusHint: lipgloss.NewStyle().
			Foreground(p.Overlay1),

		StatusInfo: lipgloss.NewStyle().
			Foreground(p.Subtext0),

		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Surface2).
			Background(p.Base).
			Padding(1, 2),

		OverlayTitle: lipgloss.NewStyle().
			Foreground(p.Text).
			Bold(true).
			MarginBottom(1),

		MenuItem: lipgloss.NewStyle().
			Foreground(p.Text),

		MenuItemActive: lipgloss.NewStyle().
			Foreground(p.Blue).
			Bold(true),

		MenuKey: lipgloss.NewStyle().
			Foreground(p.Yellow).
			Bold(true),

		Separator: lipgloss.NewStyle().
			Foreground(p.Surface1),

		Footer: lipgloss.NewStyle().
			Foreground(p.Subtext0).
			MarginTop(1),

		InputLabel: lipgloss.NewStyle().
			Foreground(p.Subtext1),

		InputFocused: lipgloss.NewStyle().
			Foreground(p.Blue).
			Bold(true),

		ErrorText: lipgloss.NewStyle().
			Foreground(p.Red),

		ToastInfo:    toast(p.Blue),
		ToastSuccess: toast(p.Green),
		ToastWarning: toast(p.Yellow),
		ToastError:   toast(p.Red),
	}
}

// CategoryBadge returns the badge style for an exercise kind
func (s *Styles) CategoryBadge(kind domain.Kind) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(s.Palette.Base).
		Background(s.Palette.CategoryColor(kind)).
		Padding(0, 1).
		Bold(true)
}
