package statusbar

import "github.com/tygara/practicetracker/internal/types"

// GetHints returns the keybinding hints for the given mode
func GetHints(mode types.Mode) string {
	switch mode {
	case types.ModeList:
		return "j/k: move  enter: detail  n: new  a: log  d: delete  p: plan  r: reload  ?: help  q: quit"
	case types.ModeDetail:
		return "j/k: move  esc: back  a: log  d: delete  p: plan  q: quit"
	case types.ModeOverlay:
		// The overlay renders its own footer
		return ""
	default:
		return ""
	}
}
