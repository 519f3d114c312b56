package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pylearn/internal/ui/theme"
)

// TextInput is a single-line bubbles input with a label and an inline
// validation error. Typing clears the error.
type TextInput struct {
	Model textinput.Model
	Label string
	err   string
}

func NewTextInput(label, placeholder string, charLimit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "› "
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	ti.Focus()

	return TextInput{Model: ti, Label: label}
}

func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	before := t.Model.Value()

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	if t.Model.Value() != before {
		t.err = ""
	}
	return t, cmd
}

// SetError shows msg under the input until the value changes.
func (t *TextInput) SetError(msg string) {
	t.err = msg
}

func (t TextInput) Err() string {
	return t.err
}

func (t TextInput) Value() string {
	return t.Model.Value()
}

func (t TextInput) View() string {
	view := t.Model.View()
	if t.Label != "" {
		view = theme.Body.Render(t.Label) + "\n" + view
	}
	if t.err != "" {
		view += "\n" + theme.Incorrect.Render("✗ "+t.err)
	}
	return view
}
