package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tygara/practicetracker/internal/domain"
)

func TestNew(t *testing.T) {
	s := New()
	require.NotNil(t, s)
	assert.Equal(t, Macchiato, s.Palette)
}

func TestNewForTheme(t *testing.T) {
	tests := []struct {
		theme string
		want  Palette
	}{
		{"dark", Macchiato},
		{"light", Latte},
		{"", Macchiato},
		{"unknown", Macchiato},
	}

	for _, tt := range tests {
		t.Run(tt.theme, func(t *testing.T) {
			assert.Equal(t, tt.want, NewForTheme(tt.theme).Palette)
		})
	}
}

func TestCategoryBadge(t *testing.T) {
	s := New()

	for _, kind := range []domain.Kind{domain.KindScale, domain.KindArpeggio, domain.KindSong} {
		t.Run(kind.String(), func(t *testing.T) {
			rendered := s.CategoryBadge(kind).Render(kind.String())
			assert.Contains(t, rendered, kind.String())
		})
	}
}

func TestCategoryColorsDistinct(t *testing.T) {
	for _, p := range []Palette{Macchiato, Latte} {
		scale := p.CategoryColor(domain.KindScale)
		arpeggio := p.CategoryColor(domain.KindArpeggio)
		song := p.CategoryColor(domain.KindSong)

		assert.NotEqual(t, scale, arpeggio)
		assert.NotEqual(t, arpeggio, song)
		assert.NotEqual(t, scale, song)
	}
}

func TestPaletteColorsAreHex(t *testing.T) {
	for name, p := range map[string]Palette{"macchiato": Macchiato, "latte": Latte} {
		colors := []lipgloss.Color{p.Base, p.Text, p.Blue, p.Red, p.Green, p.Yellow, p.Mauve}
		for _, c := range colors {
			assert.True(t, strings.HasPrefix(string(c), "#"), "%s color %q", name, c)
			assert.Len(t, string(c), 7, "%s color %q", name, c)
		}
	}
}
