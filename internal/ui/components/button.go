package components

import (
	"github.com/abhisek/pylearn/internal/ui/theme"
)

// Button is a call-to-action label. It is dimmed while Enabled is false,
// which signals that pressing it will be rejected.
type Button struct {
	Label   string
	Enabled bool
}

func (b Button) View() string {
	if b.Enabled {
		return theme.ButtonActive.Render("  ▸ " + b.Label + "  ")
	}
	return theme.ButtonInactive.Render("    " + b.Label + "  ")
}
