package overlay

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/tygara/practicetracker/internal/ui/styles"
)

func TestNewStyles(t *testing.T) {
	s := New()

	tests := []struct {
		name  string
		style lipgloss.Style
	}{
		{"Overlay", s.Overlay},
		{"Title", s.Title},
		{"MenuItem", s.MenuItem},
		{"MenuItemActive", s.MenuItemActive},
		{"MenuKey", s.MenuKey},
		{"Footer", s.Footer},
		{"Label", s.Label},
		{"LabelFocused", s.LabelFocused},
		{"Error", s.Error},
		{"TableHeader", s.TableHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, tt.style.Render("test"), "test")
		})
	}
}

func TestNewFromPalette_FollowsTheme(t *testing.T) {
	dark := NewFromPalette(styles.Macchiato)
	light := NewFromPalette(styles.Latte)

	assert.Equal(t, lipgloss.TerminalColor(styles.Macchiato.Blue), dark.MenuItemActive.GetForeground())
	assert.Equal(t, lipgloss.TerminalColor(styles.Latte.Blue), light.MenuItemActive.GetForeground())
}

func TestOrDefault(t *testing.T) {
	assert.NotNil(t, orDefault(nil))

	s := New()
	assert.Same(t, s, orDefault(s))
}
