package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tygara/practicetracker/internal/domain"
	"github.com/tygara/practicetracker/internal/services/store"
)

// Message types for async operations

type recordsLoadedMsg struct {
	records []store.Record
	err     error
}

type sessionCreatedMsg struct {
	record store.Record
	err    error
}

type entryAddedMsg struct {
	path   string
	record store.Record
	err    error
}

type sessionDeletedMsg struct {
	path string
	err  error
}

type toastTickMsg time.Time

// toastTickInterval is how often expired toasts are pruned
const toastTickInterval = time.Second

func toastTick() tea.Cmd {
	return tea.Tick(toastTickInterval, func(t time.Time) tea.Msg {
		return toastTickMsg(t)
	})
}

func (m Model) loadRecordsCmd() tea.Cmd {
	library := m.library
	return func() tea.Msg {
		records, err := library.List()
		return recordsLoadedMsg{records: records, err: err}
	}
}

func (m Model) createSessionCmd(date time.Time) tea.Cmd {
	library := m.library
	return func() tea.Msg {
		session, err := domain.NewSession(date)
		if err != nil {
			return sessionCreatedMsg{err: err}
		}
		record, err := library.Create(session)
		return sessionCreatedMsg{record: record, err: err}
	}
}

func (m Model) addEntryCmd(path string, entry *domain.SessionEntry) tea.Cmd {
	library := m.library
	return func() tea.Msg {
		record, err := library.AddEntry(path, entry)
		return entryAddedMsg{path: path, record: record, err: err}
	}
}

func (m Model) deleteSessionCmd(path string) tea.Cmd {
	library := m.library
	return func() tea.Msg {
		return sessionDeletedMsg{path: path, err: library.Delete(path)}
	}
}
