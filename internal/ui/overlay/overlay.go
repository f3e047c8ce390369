// Package overlay contains the modal dialogs of the practice tracker:
// forms, confirmations, the weekly plan grid and help.
package overlay

import tea "github.com/charmbracelet/bubbletea"

// Overlay represents a modal overlay component
type Overlay interface {
	tea.Model
	Title() string
	Size() (width, height int)
}

// CloseOverlayMsg signals that the overlay should be closed
type CloseOverlayMsg struct{}

// SelectionMsg is sent when a choice is made in a dialog
type SelectionMsg struct {
	Key   string
	Value any
}
