// Package app contains the main application model and TEA implementation.
package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tygara/practicetracker/internal/config"
	"github.com/tygara/practicetracker/internal/domain"
	"github.com/tygara/practicetracker/internal/services/planning"
	"github.com/tygara/practicetracker/internal/services/store"
	"github.com/tygara/practicetracker/internal/types"
	"github.com/tygara/practicetracker/internal/ui/overlay"
	"github.com/tygara/practicetracker/internal/ui/styles"
	"github.com/tygara/practicetracker/internal/ui/toast"
)

// Re-export Mode type and constants for convenience
type Mode = types.Mode

const (
	ModeList    = types.ModeList
	ModeDetail  = types.ModeDetail
	ModeOverlay = types.ModeOverlay
)

// Re-export Toast type and constants for convenience
type Toast = types.Toast
type ToastLevel = types.ToastLevel

const (
	ToastInfo    = types.ToastInfo
	ToastSuccess = types.ToastSuccess
	ToastWarning = types.ToastWarning
	ToastError   = types.ToastError
)

// Model is the main application state. The session list shown on screen is
// always derived from records, which mirrors the library on disk.
type Model struct {
	// Core data
	records []store.Record
	catalog []domain.Exercise

	// Navigation
	cursor     int
	showDetail bool

	// UI state
	overlayStack  *overlay.Stack
	toasts        []Toast
	width         int
	height        int
	styles        *styles.Styles
	overlayStyles *overlay.Styles

	// Loading state
	loading bool
	spinner spinner.Model

	// Services
	config  *config.Config
	library *store.Library
	planner *planning.Service
	logger  *slog.Logger

	// now is swapped in tests
	now func() time.Time
}

// New creates the application model. The exercise catalog comes from cfg.
func New(cfg *config.Config, library *store.Library, planner *planning.Service, logger *slog.Logger) (Model, error) {
	if logger == nil {
		logger = slog.Default()
	}

	catalog, err := cfg.BuildExercises()
	if err != nil {
		return Model{}, fmt.Errorf("exercise catalog: %w", err)
	}

	st := styles.NewForTheme(cfg.UI.Theme)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(st.Palette.Blue)

	return Model{
		records:       []store.Record{},
		catalog:       catalog,
		overlayStack:  overlay.NewStack(),
		toasts:        []Toast{},
		styles:        st,
		overlayStyles: overlay.NewFromPalette(st.Palette),
		loading:       true,
		spinner:       s,
		config:        cfg,
		library:       library,
		planner:       planner,
		logger:        logger,
		now:           time.Now,
	}, nil
}

// Init returns the initial command for the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.loadRecordsCmd(),
	)
}

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if !m.overlayStack.IsEmpty() {
			return m, m.overlayStack.Update(msg)
		}
		return m.handleKey(msg)

	case overlay.CloseOverlayMsg:
		m.overlayStack.Pop()
		return m, nil

	case overlay.SelectionMsg:
		return m.handleSelection(msg)

	case overlay.SessionRequestedMsg:
		return m, m.createSessionCmd(msg.Date)

	case overlay.EntrySubmittedMsg:
		entry := msg.Entry
		return m, m.addEntryCmd(msg.Path, &entry)

	case recordsLoadedMsg:
		wasLoading := m.loading
		m.loading = false
		if msg.err != nil {
			m.logger.Error("failed to list sessions", "dir", m.library.Dir(), "error", msg.err)
			cmd := m.addToast(ToastError, "Could not read sessions: "+msg.err.Error())
			return m, cmd
		}
		m.records = msg.records
		m.clampCursor()
		if !wasLoading {
			cmd := m.addToast(ToastInfo, "Reloaded "+sessionCount(len(m.records)))
			return m, cmd
		}
		return m, nil

	case sessionCreatedMsg:
		if msg.err != nil {
			m.logger.Error("failed to create session", "error", msg.err)
			cmd := m.addToast(ToastError, "Could not save session: "+msg.err.Error())
			return m, cmd
		}
		m.insertRecord(msg.record)
		cmd := m.addToast(ToastSuccess, "Session created for "+msg.record.Session.DateString())
		return m, cmd

	case entryAddedMsg:
		if msg.err != nil {
			m.logger.Error("failed to add entry", "path", msg.path, "error", msg.err)
			cmd := m.addToast(ToastError, "Could not log entry: "+msg.err.Error())
			return m, cmd
		}
		m.replaceRecord(msg.record)
		cmd := m.addToast(ToastSuccess, fmt.Sprintf("Logged entry, %d min total", msg.record.Session.TotalMinutes()))
		return m, cmd

	case sessionDeletedMsg:
		if msg.err != nil {
			m.logger.Error("failed to delete session", "path", msg.path, "error", msg.err)
			cmd := m.addToast(ToastError, "Could not delete session: "+msg.err.Error())
			return m, cmd
		}
		m.removeRecord(msg.path)
		cmd := m.addToast(ToastSuccess, "Session deleted")
		return m, cmd

	case toastTickMsg:
		m.toasts = toast.Prune(m.toasts, m.now())
		if len(m.toasts) > 0 {
			return m, toastTick()
		}
		return m, nil
	}

	// Forward anything else (cursor blink etc.) to the active overlay
	if !m.overlayStack.IsEmpty() {
		return m, m.overlayStack.Update(msg)
	}
	return m, nil
}

// handleKey processes keyboard input when no overlay is open
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.loading {
		if msg.String() == "q" {
			return m, tea.Quit
		}
		return m, nil
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "j", "down":
		m.moveCursor(1)
	case "k", "up":
		m.moveCursor(-1)
	case "g", "home":
		m.cursor = 0
	case "G", "end":
		m.cursor = max(0, len(m.records)-1)
	case "enter":
		if len(m.records) > 0 {
			m.showDetail = !m.showDetail
		}
	case "esc":
		m.showDetail = false
	case "n":
		return m, m.overlayStack.Push(overlay.NewNewSessionOverlay(m.now(), m.overlayStyles))
	case "a":
		rec, ok := m.selected()
		if !ok {
			cmd := m.addToast(ToastWarning, "Create a session first (n)")
			return m, cmd
		}
		return m, m.overlayStack.Push(overlay.NewEntryOverlay(rec.Path, rec.Label(), m.catalog, m.overlayStyles))
	case "d":
		return m.requestDelete()
	case "p":
		return m.showPlan()
	case "r":
		return m, m.loadRecordsCmd()
	case "?":
		return m, m.overlayStack.Push(overlay.NewHelpOverlay(m.overlayStyles))
	}

	return m, nil
}

func (m Model) requestDelete() (tea.Model, tea.Cmd) {
	rec, ok := m.selected()
	if !ok {
		return m, nil
	}
	if !m.config.UI.DeleteNeedsConfirm() {
		return m, m.deleteSessionCmd(rec.Path)
	}
	dialog := overlay.NewConfirmDialog(
		"Delete Session",
		fmt.Sprintf("Delete %s?\n%s", rec.Label(), rec.Name()),
		actionDelete,
		rec.Path,
		m.overlayStyles,
	)
	return m, m.overlayStack.Push(dialog)
}

func (m Model) showPlan() (tea.Model, tea.Cmd) {
	plan, err := m.planner.Generate(m.catalog)
	if err != nil {
		m.logger.Error("failed to generate plan", "error", err)
		cmd := m.addToast(ToastError, "Could not generate plan: "+err.Error())
		return m, cmd
	}
	return m, m.overlayStack.Push(overlay.NewPlanOverlay(plan, planning.Days, m.overlayStyles))
}

// handleSelection processes choices made in dialogs
func (m Model) handleSelection(msg overlay.SelectionMsg) (tea.Model, tea.Cmd) {
	m.overlayStack.Pop()

	result, ok := msg.Value.(overlay.ConfirmResult)
	if !ok || !result.Confirmed {
		return m, nil
	}

	switch result.Action {
	case actionDelete:
		path, _ := result.Payload.(string)
		if path == "" {
			return m, nil
		}
		return m, m.deleteSessionCmd(path)
	}

	return m, nil
}

// Mode reports what the keyboard is driving
func (m Model) Mode() Mode {
	switch {
	case !m.overlayStack.IsEmpty():
		return ModeOverlay
	case m.showDetail:
		return ModeDetail
	default:
		return ModeList
	}
}

func (m Model) selected() (store.Record, bool) {
	if m.cursor < 0 || m.cursor >= len(m.records) {
		return store.Record{}, false
	}
	return m.records[m.cursor], true
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.records) {
		m.cursor = len(m.records) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if len(m.records) == 0 {
		m.showDetail = false
	}
}

// insertRecord adds a record keeping date order and selects it
func (m *Model) insertRecord(rec store.Record) {
	idx := len(m.records)
	for i, r := range m.records {
		if rec.Session.Date().Before(r.Session.Date()) {
			idx = i
			break
		}
	}
	m.records = append(m.records, store.Record{})
	copy(m.records[idx+1:], m.records[idx:])
	m.records[idx] = rec
	m.cursor = idx
}

func (m *Model) replaceRecord(rec store.Record) {
	for i := range m.records {
		if m.records[i].Path == rec.Path {
			m.records[i] = rec
			return
		}
	}
	m.insertRecord(rec)
}

func (m *Model) removeRecord(path string) {
	for i := range m.records {
		if m.records[i].Path == path {
			m.records = append(m.records[:i], m.records[i+1:]...)
			break
		}
	}
	m.clampCursor()
}

// addToast queues a toast and starts the expiry ticker if it was idle
func (m *Model) addToast(level ToastLevel, message string) tea.Cmd {
	m.toasts = append(m.toasts, types.NewToast(level, message, m.now()))
	if len(m.toasts) == 1 {
		return toastTick()
	}
	return nil
}

const actionDelete = "delete"
