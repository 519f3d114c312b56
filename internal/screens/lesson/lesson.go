package lesson

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pylearn/internal/catalog"
	"github.com/abhisek/pylearn/internal/screen"
	"github.com/abhisek/pylearn/internal/session"
	"github.com/abhisek/pylearn/internal/ui/layout"
	"github.com/abhisek/pylearn/internal/ui/theme"
)

const lockedHint = "Complete the earlier lessons to unlock this one."

// LessonScreen shows one lesson and lets the learner complete it.
type LessonScreen struct {
	store    *session.Store
	lessonID int
	scroll   int
	flash    string
	flashErr bool
}

var _ screen.Screen = (*LessonScreen)(nil)
var _ screen.KeyHintProvider = (*LessonScreen)(nil)

// New creates a LessonScreen for lesson id.
func New(st *session.Store, id int) *LessonScreen {
	return &LessonScreen{store: st, lessonID: id}
}

func (s *LessonScreen) Init() tea.Cmd {
	return nil
}

func (s *LessonScreen) Title() string {
	return "Lesson"
}

func (s *LessonScreen) KeyHints() []layout.KeyHint {
	var hints []layout.KeyHint
	if l, err := s.store.Lesson(s.lessonID); err == nil && l.State == catalog.LessonAvailable {
		hints = append(hints, layout.KeyHint{Key: "c", Description: "Mark Complete"})
	}
	return append(hints,
		layout.KeyHint{Key: "↑↓", Description: "Scroll"},
		layout.KeyHint{Key: "Esc", Description: "Back"},
	)
}

func (s *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "c":
		s.complete()
	case "up", "k":
		if s.scroll > 0 {
			s.scroll--
		}
	case "down", "j":
		s.scroll++
	}
	return s, nil
}

func (s *LessonScreen) complete() {
	l, err := s.store.Lesson(s.lessonID)
	if err != nil {
		s.flash, s.flashErr = err.Error(), true
		return
	}
	switch l.State {
	case catalog.LessonCompleted:
		s.flash, s.flashErr = session.MsgLessonAlreadyDone, false
		return
	case catalog.LessonUpcoming:
		s.flash, s.flashErr = lockedHint, true
		return
	}

	out, err := s.store.CompleteLesson(context.Background(), s.lessonID)
	if err != nil {
		s.flash, s.flashErr = err.Error(), true
		return
	}
	s.flash, s.flashErr = out.Message, false
}

func (s *LessonScreen) View(width, height int) string {
	l, err := s.store.Lesson(s.lessonID)
	if err != nil {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", err))
	}

	inner := width - 4
	if inner < 20 {
		inner = 20
	}

	var head []string
	head = append(head, theme.Heading.Render(l.Title))
	head = append(head, lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("%d min · %s %s", l.Duration, l.State.Icon(), l.State.Label())))
	head = append(head, theme.Body.Width(inner).Render(l.Description))
	if s.flash != "" {
		style := theme.Correct
		if s.flashErr {
			style = theme.Incorrect
		}
		head = append(head, style.Render(s.flash))
	}
	head = append(head, "")

	var body []string
	if l.State == catalog.LessonUpcoming {
		body = []string{theme.Hint.Render(lockedHint)}
	} else {
		body = renderContent(l.Content, inner)
	}

	// Keep the header fixed and scroll the content beneath it.
	visible := height - len(head) - 1
	if visible < 1 {
		visible = 1
	}
	maxScroll := len(body) - visible
	if maxScroll < 0 {
		maxScroll = 0
	}
	if s.scroll > maxScroll {
		s.scroll = maxScroll
	}
	end := s.scroll + visible
	if end > len(body) {
		end = len(body)
	}

	out := strings.Join(head, "\n") + "\n" + strings.Join(body[s.scroll:end], "\n")
	return lipgloss.NewStyle().Padding(0, 2).Render(out)
}

// renderContent styles lesson markdown line by line: headings, fenced
// code and body text. Lines are not re-wrapped inside code blocks.
func renderContent(content string, width int) []string {
	var out []string
	inCode := false
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "~~~") || strings.HasPrefix(trimmed, "```"):
			inCode = !inCode
			continue
		case inCode:
			out = append(out, theme.Code.Render("  "+line))
		case strings.HasPrefix(trimmed, "#"):
			out = append(out, theme.Heading.Render(strings.TrimSpace(strings.TrimLeft(trimmed, "#"))))
		case trimmed == "":
			out = append(out, "")
		default:
			wrapped := theme.Body.Width(width).Render(line)
			out = append(out, strings.Split(wrapped, "\n")...)
		}
	}
	return out
}
