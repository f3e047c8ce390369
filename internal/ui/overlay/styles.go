package overlay

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tygara/practicetracker/internal/ui/styles"
)

// Styles holds all overlay-specific styles
type Styles struct {
	// Overlay is the base overlay container style
	Overlay lipgloss.Style
	// Title is the overlay title style
	Title lipgloss.Style
	// MenuItem is the default menu item style
	MenuItem lipgloss.Style
	// MenuItemActive is the highlighted/selected menu item style
	MenuItemActive lipgloss.Style
	// MenuItemDisabled is the disabled menu item style
	MenuItemDisabled lipgloss.Style
	// MenuKey is the style for keybinding hints
	MenuKey lipgloss.Style
	// Separator is the style for divider lines
	Separator lipgloss.Style
	// Footer is the style for overlay footer text
	Footer lipgloss.Style
	// MenuHeader is the style for section headers
	MenuHeader lipgloss.Style
	// Label is the style for an unfocused form label
	Label lipgloss.Style
	// LabelFocused is the style for the focused form label
	LabelFocused lipgloss.Style
	// Error is the style for inline validation errors
	Error lipgloss.Style
	// TableHeader, TableCell and TableTotal style the plan grid
	TableHeader lipgloss.Style
	TableCell   lipgloss.Style
	TableTotal  lipgloss.Style
	// TableBorder colors the plan grid border
	TableBorder lipgloss.Style
}

// New creates overlay styles for the dark theme
func New() *Styles {
	return NewFromPalette(styles.Macchiato)
}

// NewFromPalette creates overlay styles from a theme palette
func NewFromPalette(p styles.Palette) *Styles {
	const labelWidth = 10

	return &Styles{
		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Surface2).
			Background(p.Base).
			Padding(1, 2),

		Title: lipgloss.NewStyle().
			Foreground(p.Text).
			Bold(true).
			MarginBottom(1),

		MenuItem: lipgloss.NewStyle().
			Foreground(p.Text),

		MenuItemActive: lipgloss.NewStyle().
			Foreground(p.Blue).
			Bold(true),

		MenuItemDisabled: lipgloss.NewStyle().
			Foreground(p.Overlay0),

		MenuKey: lipgloss.NewStyle().
			Foreground(p.Yellow).
			Bold(true),

		Separator: lipgloss.NewStyle().
			Foreground(p.Surface1),

		Footer: lipgloss.NewStyle().
			Foreground(p.Subtext0).
			MarginTop(1),

		MenuHeader: lipgloss.NewStyle().
			Foreground(p.Blue).
			Bold(true),

		Label: lipgloss.NewStyle().
			Foreground(p.Teal).
			Width(labelWidth).
			Align(lipgloss.Right),

		LabelFocused: lipgloss.NewStyle().
			Foreground(p.Blue).
			Bold(true).
			Width(labelWidth).
			Align(lipgloss.Right),

		Error: lipgloss.NewStyle().
			Foreground(p.Red),

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
	}
}

func orDefault(s *Styles) *Styles {
	if s == nil {
		return New()
	}
	return s
}
