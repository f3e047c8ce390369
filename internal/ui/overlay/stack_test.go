package overlay

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockOverlay is a simple overlay implementation for testing
type mockOverlay struct {
	title  string
	width  int
	height int
	value  string
}

func (m mockOverlay) Init() tea.Cmd {
	return nil
}

func (m mockOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			return m, func() tea.Msg { return SelectionMsg{Key: "test", Value: m.value} }
		case "esc":
			return m, func() tea.Msg { return CloseOverlayMsg{} }
		default:
			m.value += keyMsg.String()
			return m, nil
		}
	}
	return m, nil
}

func (m mockOverlay) View() string {
	return m.title + " body"
}

func (m mockOverlay) Title() string {
	return m.title
}

func (m mockOverlay) Size() (width, height int) {
	return m.width, m.height
}

func TestStack_PushPopCurrent(t *testing.T) {
	stack := NewStack()
	assert.True(t, stack.IsEmpty())
	assert.Nil(t, stack.Current())
	assert.Nil(t, stack.Pop())

	assert.Nil(t, stack.Push(mockOverlay{title: "One", width: 40}))
	stack.Push(mockOverlay{title: "Two", width: 50})
	assert.Equal(t, 2, stack.Len())
	assert.Equal(t, "Two", stack.Current().Title())

	popped := stack.Pop()
	require.NotNil(t, popped)
	assert.Equal(t, "Two", popped.Title())
	assert.Equal(t, "One", stack.Current().Title())

	stack.Clear()
	assert.True(t, stack.IsEmpty())
	assert.Equal(t, 0, stack.Len())
}

func TestStack_UpdateEmpty(t *testing.T) {
	assert.Nil(t, NewStack().Update(tea.KeyMsg{Type: tea.KeyEnter}))
}

func TestStack_UpdateStoresNewModel(t *testing.T) {
	stack := NewStack()
	stack.Push(mockOverlay{title: "Typing"})

	stack.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	stack.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}})

	cmd := stack.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	sel, ok := cmd().(SelectionMsg)
	require.True(t, ok)
	assert.Equal(t, "test", sel.Key)
	assert.Equal(t, "ab", sel.Value)
}

func TestStack_UpdateWithCloseMsg(t *testing.T) {
	stack := NewStack()
	stack.Push(mockOverlay{title: "One"})
	stack.Push(mockOverlay{title: "Two"})

	assert.Nil(t, stack.Update(CloseOverlayMsg{}))
	assert.Equal(t, "One", stack.Current().Title())

	stack.Update(CloseOverlayMsg{})
	assert.True(t, stack.IsEmpty())
}

func TestStack_Render(t *testing.T) {
	stack := NewStack()
	assert.Equal(t, "", stack.Render(80, 24, nil))

	stack.Push(mockOverlay{title: "Dialog", width: 30, height: 5})
	view := stack.Render(80, 24, nil)

	assert.Contains(t, view, "Dialog")
	assert.Contains(t, view, "Dialog body")
	lines := strings.Split(view, "\n")
	assert.Len(t, lines, 24, "overlay is placed in the full area")
}

func TestStack_RenderNarrowTerminal(t *testing.T) {
	stack := NewStack()
	stack.Push(mockOverlay{title: "Wide", width: 200, height: 5})

	view := stack.Render(40, 12, nil)
	for _, line := range strings.Split(view, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 40)
	}
}
