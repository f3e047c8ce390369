// Package types contains shared types used across the application.
package types

// Mode represents what the main view is focused on
type Mode int

const (
	// ModeList browses the session list
	ModeList Mode = iota
	// ModeDetail shows the entries of the selected session
	ModeDetail
	// ModeOverlay means a modal overlay owns the keyboard
	ModeOverlay
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeList:
		return "SESSIONS"
	case ModeDetail:
		return "DETAIL"
	case ModeOverlay:
		return "DIALOG"
	default:
		return "UNKNOWN"
	}
}
