package editor

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pylearn/internal/catalog"
	"github.com/abhisek/pylearn/internal/screen"
	"github.com/abhisek/pylearn/internal/session"
	"github.com/abhisek/pylearn/internal/ui/components"
	"github.com/abhisek/pylearn/internal/ui/layout"
	"github.com/abhisek/pylearn/internal/ui/theme"
)

type runResultMsg struct {
	Result session.RunResult
	Err    error
}

type submitResultMsg struct {
	Outcome session.Outcome
	Err     error
}

// EditorScreen is the code editor for one practice problem.
type EditorScreen struct {
	store     *session.Store
	problemID int
	editor    components.Editor
	output    string
	flash     string
	flashErr  bool
}

var _ screen.Screen = (*EditorScreen)(nil)
var _ screen.KeyHintProvider = (*EditorScreen)(nil)

// New creates an EditorScreen prefilled with the problem's starter code.
func New(st *session.Store, id int) *EditorScreen {
	var starter string
	if p, err := st.Problem(id); err == nil {
		starter = p.Starter
	}
	return &EditorScreen{
		store:     st,
		problemID: id,
		editor:    components.NewEditor(starter),
	}
}

func (s *EditorScreen) Init() tea.Cmd {
	return s.editor.Init()
}

func (s *EditorScreen) Title() string {
	return "Code Editor"
}

func (s *EditorScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Ctrl+R", Description: "Run"},
		{Key: "Ctrl+S", Description: "Submit"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *EditorScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case runResultMsg:
		if msg.Err != nil {
			s.flash, s.flashErr = msg.Err.Error(), true
			return s, nil
		}
		s.output = msg.Result.Output
		s.flash, s.flashErr = msg.Result.Message, !msg.Result.Passed
		return s, nil

	case submitResultMsg:
		if msg.Err != nil {
			s.flash, s.flashErr = msg.Err.Error(), true
			return s, nil
		}
		s.flash, s.flashErr = msg.Outcome.Message, false
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+r":
			return s, s.run()
		case "ctrl+s":
			return s, s.submit()
		}
	}

	var cmd tea.Cmd
	s.editor, cmd = s.editor.Update(msg)
	return s, cmd
}

func (s *EditorScreen) run() tea.Cmd {
	st, id, code := s.store, s.problemID, s.editor.Value()
	return func() tea.Msg {
		res, err := st.RunCode(context.Background(), id, code)
		return runResultMsg{Result: res, Err: err}
	}
}

func (s *EditorScreen) submit() tea.Cmd {
	st, id, code := s.store, s.problemID, s.editor.Value()
	return func() tea.Msg {
		out, err := st.SubmitSolution(context.Background(), id, code)
		return submitResultMsg{Outcome: out, Err: err}
	}
}

func (s *EditorScreen) View(width, height int) string {
	p, err := s.store.Problem(s.problemID)
	if err != nil {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", err))
	}

	inner := width - 4
	header := renderProblemHeader(p, inner)
	footer := s.renderOutput()

	// Border (2) plus the blank separator lines.
	editorHeight := height - lipgloss.Height(header) - lipgloss.Height(footer) - 4
	s.editor.SetSize(inner-2, editorHeight)

	out := header + "\n" + s.editor.View() + "\n" + footer
	return lipgloss.NewStyle().Padding(0, 2).Render(out)
}

func (s *EditorScreen) renderOutput() string {
	var lines []string
	if s.output != "" {
		lines = append(lines, theme.Heading.Render("Output"))
		lines = append(lines, theme.Code.Render(s.output))
	}
	if s.flash != "" {
		style := theme.Correct
		if s.flashErr {
			style = theme.Incorrect
		}
		lines = append(lines, style.Render(s.flash))
	}
	if len(lines) == 0 {
		return theme.Hint.Render("Run your code to see the output here.")
	}
	return strings.Join(lines, "\n")
}

func renderProblemHeader(p catalog.Problem, w int) string {
	status := "○ Unsolved"
	if p.IsCompleted {
		status = "✓ Solved"
	}

	meta := lipgloss.NewStyle().Foreground(difficultyColor(p.Difficulty)).Bold(true).Render(string(p.Difficulty)) +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(
			fmt.Sprintf(" · %s · %s", strings.Join(p.Tags, ", "), status))

	lines := []string{theme.Heading.Render(p.Title), meta}
	if p.Description != "" {
		lines = append(lines, theme.Body.Width(w).Render(p.Description))
	}
	if p.SourceURL != "" {
		lines = append(lines, theme.Hint.Render(fmt.Sprintf("%s: %s", p.Source, p.SourceURL)))
	}
	return strings.Join(lines, "\n")
}

func difficultyColor(d catalog.ProblemDifficulty) color.Color {
	switch d {
	case catalog.Easy:
		return theme.Success
	case catalog.Medium:
		return theme.Accent
	default:
		return theme.Error
	}
}
