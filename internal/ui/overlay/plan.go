package overlay

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/tygara/practicetracker/internal/domain"
)

// PlanOverlay shows a weekly plan as a day by exercise grid of minutes
type PlanOverlay struct {
	plan   *domain.WeeklyPlan
	days   [domain.DaysPerWeek]string
	styles *Styles
}

// NewPlanOverlay creates the overlay. days labels the rows, Monday first.
func NewPlanOverlay(plan *domain.WeeklyPlan, days [domain.DaysPerWeek]string, s *Styles) *PlanOverlay {
	return &PlanOverlay{
		plan:   plan,
		days:   days,
		styles: orDefault(s),
	}
}

// Init initializes the overlay
func (p *PlanOverlay) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (p *PlanOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "q", "p", "enter":
			return p, func() tea.Msg { return CloseOverlayMsg{} }
		}
	}
	return p, nil
}

// Headers returns the grid column headers: Day, one per exercise, Total
func (p *PlanOverlay) Headers() []string {
	headers := []string{"Day"}
	for _, ex := range p.plan.Exercises() {
		headers = append(headers, ex.Name())
	}
	return append(headers, "Total")
}

// Rows returns one row per day followed by a weekly totals row
func (p *PlanOverlay) Rows() [][]string {
	n := p.plan.ExerciseCount()
	rows := make([][]string, 0, domain.DaysPerWeek+1)

	weekly := make([]int, n)
	for day := 0; day < domain.DaysPerWeek; day++ {
		row := []string{p.days[day]}
		for i, minutes := range p.plan.Row(day) {
			row = append(row, strconv.Itoa(minutes))
			weekly[i] += minutes
		}
		row = append(row, strconv.Itoa(p.plan.TotalForDay(day)))
		rows = append(rows, row)
	}

	totals := []string{"Week"}
	for _, minutes := range weekly {
		totals = append(totals, strconv.Itoa(minutes))
	}
	totals = append(totals, strconv.Itoa(p.plan.TotalForWeek()))
	return append(rows, totals)
}

// View renders the plan grid
func (p *PlanOverlay) View() string {
	var b strings.Builder

	if p.plan.ExerciseCount() == 0 {
		b.WriteString(p.styles.MenuItemDisabled.Render("No exercises configured. Add some to the config file."))
		b.WriteString("\n\n")
	}

	lastRow := domain.DaysPerWeek
	lastCol := p.plan.ExerciseCount() + 1

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(p.styles.TableBorder).
		Headers(p.Headers()...).
		Rows(p.Rows()...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return p.styles.TableHeader
			case row == lastRow || col == lastCol:
				return p.styles.TableTotal
			default:
				return p.styles.TableCell
			}
		})

	b.WriteString(t.Render())
	b.WriteString("\n")
	b.WriteString(p.styles.Footer.Render("Minutes per day • Esc: Close"))

	return b.String()
}

// Title returns the overlay title
func (p *PlanOverlay) Title() string {
	return "Weekly Plan"
}

// Size returns the overlay dimensions
func (p *PlanOverlay) Size() (width, height int) {
	width = lipgloss.Width(p.View()) + 6
	return max(width, 40), domain.DaysPerWeek + 12
}
