package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pylearn/internal/ui/layout"
)

// Screen is one page of the TUI. The router owns a stack of them and only
// the top one receives input.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the body between the app header and footer.
	View(width, height int) string

	// Title is shown in the header next to the app name.
	Title() string
}

// KeyHintProvider lets a screen replace the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Resumer is implemented by screens that show session state which a
// screen pushed above them may have changed. The router calls Resume when
// the screen becomes active again after a pop.
type Resumer interface {
	Resume() tea.Cmd
}
