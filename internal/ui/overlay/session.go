package overlay

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tygara/practicetracker/internal/domain"
)

// SessionRequestedMsg is emitted when the user asks for a new session
type SessionRequestedMsg struct {
	Date time.Time
}

// NewSessionOverlay asks for the date of a new practice session
type NewSessionOverlay struct {
	date   textinput.Model
	err    string
	styles *Styles
}

// NewNewSessionOverlay creates the form, prefilled with the given date
func NewNewSessionOverlay(defaultDate time.Time, s *Styles) *NewSessionOverlay {
	ti := textinput.New()
	ti.Placeholder = domain.DateLayout
	ti.SetValue(defaultDate.Format(domain.DateLayout))
	ti.CharLimit = len(domain.DateLayout)
	ti.Width = 20
	ti.Focus()

	return &NewSessionOverlay{
		date:   ti,
		styles: orDefault(s),
	}
}

// Init initializes the overlay
func (o *NewSessionOverlay) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (o *NewSessionOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return o, func() tea.Msg { return CloseOverlayMsg{} }
		case "enter", "ctrl+s":
			return o, o.submit()
		}
	}

	var cmd tea.Cmd
	o.date, cmd = o.date.Update(msg)
	return o, cmd
}

func (o *NewSessionOverlay) submit() tea.Cmd {
	date, err := domain.ParseDate(strings.TrimSpace(o.date.Value()))
	if err != nil {
		o.err = "Date must look like " + domain.DateLayout
		return nil
	}
	o.err = ""

	return tea.Batch(
		func() tea.Msg { return SessionRequestedMsg{Date: date} },
		func() tea.Msg { return CloseOverlayMsg{} },
	)
}

// View renders the form
func (o *NewSessionOverlay) View() string {
	var b strings.Builder

	b.WriteString(o.styles.LabelFocused.Render("Date:"))
	b.WriteString("  ")
	b.WriteString(o.date.View())
	b.WriteString("\n")

	if o.err != "" {
		b.WriteString("\n")
		b.WriteString(o.styles.Error.Render(o.err))
		b.WriteString("\n")
	}

	hints := []string{
		o.styles.MenuKey.Render("Enter") + " " + o.styles.Footer.Render("Create"),
		o.styles.MenuKey.Render("Esc") + " " + o.styles.Footer.Render("Cancel"),
	}
	b.WriteString(o.styles.Footer.Render(strings.Join(hints, " • ")))

	return b.String()
}

// Title returns the overlay title
func (o *NewSessionOverlay) Title() string {
	return "New Session"
}

// Size returns the overlay dimensions
func (o *NewSessionOverlay) Size() (width, height int) {
	return 44, 9
}
