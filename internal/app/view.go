package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tygara/practicetracker/internal/domain"
	"github.com/tygara/practicetracker/internal/services/planning"
	"github.com/tygara/practicetracker/internal/services/store"
	"github.com/tygara/practicetracker/internal/ui/statusbar"
	"github.com/tygara/practicetracker/internal/ui/toast"
)

// View renders the current state as a string
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading sessions...")
	}

	sb := statusbar.New(m.Mode(), m.width, m.styles).WithInfo(sessionCount(len(m.records)))
	statusView := sb.Render()
	areaHeight := m.height - lipgloss.Height(statusView)

	if !m.overlayStack.IsEmpty() {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.overlayStack.Render(m.width, areaHeight, m.overlayStyles),
			statusView,
		)
	}

	toastView := toast.New(m.styles).Render(m.toasts, m.width)
	if toastView != "" {
		toastView = lipgloss.PlaceHorizontal(m.width, lipgloss.Right, toastView)
		areaHeight -= lipgloss.Height(toastView)
	}

	header := m.renderHeader()
	bodyHeight := max(areaHeight-lipgloss.Height(header), 3)
	main := lipgloss.JoinVertical(lipgloss.Left, header, m.renderBody(bodyHeight))
	main = lipgloss.Place(m.width, max(areaHeight, 0), lipgloss.Left, lipgloss.Top, clipLines(main, areaHeight))

	parts := []string{main}
	if toastView != "" {
		parts = append(parts, toastView)
	}
	parts = append(parts, statusView)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderHeader() string {
	title := m.styles.Header.Render("Practice Tracker")
	subtitle := m.styles.Subtitle.Render(m.library.Dir())
	return lipgloss.JoinHorizontal(lipgloss.Left, title, " ", subtitle)
}

func (m Model) renderBody(height int) string {
	if !m.showDetail {
		return m.renderList(m.width, height)
	}

	listWidth := m.width / 2
	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderList(listWidth, height),
		m.renderDetail(m.width-listWidth, height),
	)
}

// renderList draws the session list, scrolled so the cursor stays visible
func (m Model) renderList(width, height int) string {
	// Border takes two rows and columns, the panel title two rows
	innerWidth := max(width-4, 10)
	visible := max(height-4, 1)

	var b strings.Builder
	b.WriteString(m.styles.PanelTitle.Render("Sessions"))
	b.WriteString("\n")

	if len(m.records) == 0 {
		b.WriteString(m.styles.Muted.Render("No sessions yet. Press n to start one."))
	} else {
		start := 0
		if m.cursor >= visible {
			start = m.cursor - visible + 1
		}
		end := min(start+visible, len(m.records))

		lines := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			label := truncate(m.records[i].Label(), innerWidth-2)
			if i == m.cursor {
				lines = append(lines, m.styles.ListItemActive.Render("▸ "+label))
			} else {
				lines = append(lines, m.styles.ListItem.Render("  "+label))
			}
		}
		b.WriteString(strings.Join(lines, "\n"))
	}

	return m.styles.Panel.
		Width(width - 2).
		Height(height - 2).
		Render(b.String())
}

// renderDetail draws the entries of the selected session
func (m Model) renderDetail(width, height int) string {
	rec, ok := m.selected()
	if !ok {
		return ""
	}
	innerWidth := max(width-4, 10)
	session := rec.Session

	var b strings.Builder
	b.WriteString(m.styles.PanelTitle.Render("Session " + session.DateString()))
	b.WriteString("\n")

	field := func(label, value string) {
		b.WriteString(m.styles.Label.Render(fmt.Sprintf("%-9s", label)))
		b.WriteString(m.styles.Value.Render(value))
		b.WriteString("\n")
	}
	field("Total:", fmt.Sprintf("%d min", session.TotalMinutes()))
	if planned := m.plannedMinutes(session); planned > 0 {
		field("Planned:", fmt.Sprintf("%d min (%d%%)", planned, session.TotalMinutes()*100/planned))
	}
	field("Entries:", fmt.Sprintf("%d", session.Entries().Len()))
	field("File:", truncate(rec.Name(), innerWidth-9))
	b.WriteString("\n")

	if session.IsEmpty() {
		b.WriteString(m.styles.Muted.Render("Nothing logged yet. Press a to add an entry."))
	}
	for i, entry := range session.Entries().All() {
		b.WriteString(m.renderEntry(i+1, entry, innerWidth))
		b.WriteString("\n")
	}

	return m.styles.Panel.
		Width(width - 2).
		Height(height - 2).
		Render(clipLines(strings.TrimRight(b.String(), "\n"), height-2))
}

func (m Model) renderEntry(n int, entry domain.SessionEntry, width int) string {
	ex := entry.Exercise()
	badge := m.styles.CategoryBadge(ex.Kind()).Render(ex.Category())
	name := m.styles.Value.Render(ex.Name())
	if store.IsPlaceholder(ex) {
		badge = m.styles.Muted.Render("?")
		name = m.styles.Muted.Render("exercise not recorded")
	}

	facts := []string{fmt.Sprintf("%d min", entry.MinutesPracticed())}
	if tempo, ok := entry.AverageTempoBpm(); ok {
		facts = append(facts, fmt.Sprintf("%d bpm", tempo))
	}

	line := fmt.Sprintf("%d. %s %s  %s", n, badge, name, m.styles.Subtitle.Render(strings.Join(facts, " · ")))
	if notes, ok := entry.Notes(); ok && notes != "" {
		line += "\n   " + m.styles.Muted.Render(truncate(notes, width-3))
	}
	return line
}

// plannedMinutes is the weekly plan's total for the session's weekday
func (m Model) plannedMinutes(session *domain.Session) int {
	plan, err := planning.Generate(m.catalog)
	if err != nil {
		return 0
	}
	return plan.TotalForDay(weekdayIndex(session))
}

// weekdayIndex maps a session date to a plan row, Monday first
func weekdayIndex(session *domain.Session) int {
	return (int(session.Date().Weekday()) + 6) % domain.DaysPerWeek
}

func sessionCount(n int) string {
	if n == 1 {
		return "1 session"
	}
	return fmt.Sprintf("%d sessions", n)
}

// clipLines keeps at most n lines of s
func clipLines(s string, n int) string {
	if n <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[:n], "\n")
}

func truncate(s string, width int) string {
	if width <= 1 || lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	if len(runes) > width-1 {
		runes = runes[:width-1]
	}
	return string(runes) + "…"
}
