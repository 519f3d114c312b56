package components

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pylearn/internal/ui/theme"
)

// Editor wraps bubbles/textarea as a plain code editor.
type Editor struct {
	Model textarea.Model
}

// NewEditor creates a focused editor holding initial.
func NewEditor(initial string) Editor {
	ta := textarea.New()
	ta.ShowLineNumbers = true
	ta.CharLimit = 0
	ta.Placeholder = "# Write your solution here"
	ta.SetValue(initial)
	ta.Focus()

	return Editor{Model: ta}
}

// Init returns the initial command.
func (e Editor) Init() tea.Cmd {
	return e.Model.Focus()
}

// Update handles messages.
func (e Editor) Update(msg tea.Msg) (Editor, tea.Cmd) {
	var cmd tea.Cmd
	e.Model, cmd = e.Model.Update(msg)
	return e, cmd
}

// SetSize resizes the text area.
func (e *Editor) SetSize(width, height int) {
	if width < 10 {
		width = 10
	}
	if height < 3 {
		height = 3
	}
	e.Model.SetWidth(width)
	e.Model.SetHeight(height)
}

// Value returns the editor content.
func (e Editor) Value() string {
	return e.Model.Value()
}

// SetValue replaces the editor content.
func (e *Editor) SetValue(s string) {
	e.Model.SetValue(s)
}

// View renders the editor inside a border.
func (e Editor) View() string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Render(e.Model.View())
}
