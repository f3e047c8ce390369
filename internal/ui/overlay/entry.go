package overlay

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tygara/practicetracker/internal/domain"
)

// EntrySubmittedMsg carries a validated entry for the session at Path
type EntrySubmittedMsg struct {
	Path  string
	Entry domain.SessionEntry
}

const (
	focusExercise = iota
	focusMinutes
	focusTempo
	focusNotes
	focusSubmit
	focusCount
)

// EntryOverlay is the form for logging practice against a session
type EntryOverlay struct {
	path     string
	session  string
	catalog  []domain.Exercise
	selected int
	minutes  textinput.Model
	tempo    textinput.Model
	notes    textinput.Model
	focus    int
	err      string
	styles   *Styles
}

// NewEntryOverlay creates the entry form for the session stored at path.
// sessionLabel is shown in the header.
func NewEntryOverlay(path, sessionLabel string, catalog []domain.Exercise, s *Styles) *EntryOverlay {
	newInput := func(placeholder string, limit int) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = limit
		ti.Width = 40
		return ti
	}

	o := &EntryOverlay{
		path:    path,
		session: sessionLabel,
		catalog: catalog,
		minutes: newInput("minutes practiced", 4),
		tempo:   newInput("average bpm (optional)", 4),
		notes:   newInput("notes (optional)", 200),
		styles:  orDefault(s),
	}
	if len(catalog) > 0 {
		o.minutes.SetValue(strconv.Itoa(catalog[0].TargetMinutesPerDay()))
	}
	o.setFocus(focusExercise)
	return o
}

// Init initializes the overlay
func (o *EntryOverlay) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (o *EntryOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, o.updateInput(msg)
	}

	switch keyMsg.String() {
	case "esc":
		return o, func() tea.Msg { return CloseOverlayMsg{} }
	case "ctrl+s":
		return o, o.submit()
	case "tab", "down":
		if keyMsg.String() == "down" && o.focus == focusExercise {
			o.moveSelection(1)
			return o, nil
		}
		o.setFocus((o.focus + 1) % focusCount)
		return o, nil
	case "shift+tab", "up":
		if keyMsg.String() == "up" && o.focus == focusExercise {
			o.moveSelection(-1)
			return o, nil
		}
		o.setFocus((o.focus - 1 + focusCount) % focusCount)
		return o, nil
	case "enter":
		if o.focus == focusSubmit || o.focus == focusNotes {
			return o, o.submit()
		}
		o.setFocus(o.focus + 1)
		return o, nil
	}

	if o.focus == focusExercise {
		switch keyMsg.String() {
		case "j":
			o.moveSelection(1)
		case "k":
			o.moveSelection(-1)
		}
		return o, nil
	}

	return o, o.updateInput(msg)
}

func (o *EntryOverlay) updateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch o.focus {
	case focusMinutes:
		o.minutes, cmd = o.minutes.Update(msg)
	case focusTempo:
		o.tempo, cmd = o.tempo.Update(msg)
	case focusNotes:
		o.notes, cmd = o.notes.Update(msg)
	}
	return cmd
}

func (o *EntryOverlay) moveSelection(delta int) {
	if len(o.catalog) == 0 {
		return
	}
	o.selected = (o.selected + delta + len(o.catalog)) % len(o.catalog)
	o.minutes.SetValue(strconv.Itoa(o.catalog[o.selected].TargetMinutesPerDay()))
}

func (o *EntryOverlay) setFocus(focus int) {
	o.focus = focus
	o.minutes.Blur()
	o.tempo.Blur()
	o.notes.Blur()
	switch focus {
	case focusMinutes:
		o.minutes.Focus()
	case focusTempo:
		o.tempo.Focus()
	case focusNotes:
		o.notes.Focus()
	}
}

// Selected returns the chosen exercise, if the catalog is not empty
func (o *EntryOverlay) Selected() (domain.Exercise, bool) {
	if len(o.catalog) == 0 {
		return domain.Exercise{}, false
	}
	return o.catalog[o.selected], true
}

// submit validates the form. On failure the error is shown inline and the
// overlay stays open.
func (o *EntryOverlay) submit() tea.Cmd {
	entry, err := o.build()
	if err != nil {
		o.err = err.Error()
		return nil
	}
	o.err = ""

	path := o.path
	return tea.Batch(
		func() tea.Msg { return EntrySubmittedMsg{Path: path, Entry: entry} },
		func() tea.Msg { return CloseOverlayMsg{} },
	)
}

func (o *EntryOverlay) build() (domain.SessionEntry, error) {
	exercise, ok := o.Selected()
	if !ok {
		return domain.SessionEntry{}, errors.New("no exercises configured")
	}

	minutes, err := strconv.Atoi(strings.TrimSpace(o.minutes.Value()))
	if err != nil {
		return domain.SessionEntry{}, errors.New("minutes must be a whole number")
	}

	var tempo *int
	if raw := strings.TrimSpace(o.tempo.Value()); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return domain.SessionEntry{}, errors.New("tempo must be a whole number")
		}
		tempo = &v
	}

	var notes *string
	if raw := strings.TrimSpace(o.notes.Value()); raw != "" {
		notes = &raw
	}

	return domain.NewSessionEntry(&exercise, minutes, tempo, notes)
}

// View renders the form
func (o *EntryOverlay) View() string {
	var b strings.Builder

	b.WriteString(o.styles.MenuHeader.Render(o.session))
	b.WriteString("\n\n")

	b.WriteString(o.label("Exercise:", focusExercise))
	b.WriteString("\n")
	if len(o.catalog) == 0 {
		b.WriteString(o.styles.MenuItemDisabled.Render("  No exercises configured"))
		b.WriteString("\n")
	}
	for i, ex := range o.catalog {
		style := o.styles.MenuItem
		indicator := "  "
		if i == o.selected {
			style = o.styles.MenuItemActive
			indicator = "● "
		}
		b.WriteString("  ")
		b.WriteString(style.Render(indicator + ex.Name()))
		b.WriteString(o.styles.MenuItemDisabled.Render("  " + ex.Summary()))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for _, field := range []struct {
		label string
		focus int
		input textinput.Model
	}{
		{"Minutes:", focusMinutes, o.minutes},
		{"Tempo:", focusTempo, o.tempo},
		{"Notes:", focusNotes, o.notes},
	} {
		b.WriteString(o.label(field.label, field.focus))
		b.WriteString("  ")
		b.WriteString(field.input.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	submitStyle := o.styles.MenuItem
	if o.focus == focusSubmit {
		submitStyle = o.styles.MenuItemActive
	}
	b.WriteString(submitStyle.Render("[ Log Entry ]"))
	b.WriteString("\n")

	if o.err != "" {
		b.WriteString("\n")
		b.WriteString(o.styles.Error.Render(o.err))
		b.WriteString("\n")
	}

	hints := []string{
		o.styles.MenuKey.Render("Tab") + " " + o.styles.Footer.Render("Switch fields"),
		o.styles.MenuKey.Render("j/k") + " " + o.styles.Footer.Render("Exercise"),
		o.styles.MenuKey.Render("Ctrl+S") + " " + o.styles.Footer.Render("Submit"),
		o.styles.MenuKey.Render("Esc") + " " + o.styles.Footer.Render("Cancel"),
	}
	b.WriteString(o.styles.Footer.Render(strings.Join(hints, " • ")))

	return b.String()
}

func (o *EntryOverlay) label(text string, focus int) string {
	if o.focus == focus {
		return o.styles.LabelFocused.Render(text)
	}
	return o.styles.Label.Render(text)
}

// Title returns the overlay title
func (o *EntryOverlay) Title() string {
	return "Log Practice"
}

// Size returns the overlay dimensions
func (o *EntryOverlay) Size() (width, height int) {
	return 72, 18 + len(o.catalog)
}
