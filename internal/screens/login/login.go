package login

import (
	"context"
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pylearn/internal/router"
	"github.com/abhisek/pylearn/internal/screen"
	"github.com/abhisek/pylearn/internal/session"
	"github.com/abhisek/pylearn/internal/ui/components"
	"github.com/abhisek/pylearn/internal/ui/layout"
	"github.com/abhisek/pylearn/internal/ui/theme"
)

const (
	tagline = "Start your Python learning journey"
	newHint = "New to PyLearn? Just enter any username to get started!"
)

var features = []struct{ icon, label string }{
	{"≡", "Interactive Lessons"},
	{"</>", "Coding Practice"},
	{"◆", "Real Projects"},
}

// LoginScreen asks for a username and opens the dashboard once the
// session has a user.
type LoginScreen struct {
	store            *session.Store
	dashboardFactory func() screen.Screen
	input            components.TextInput
	button           components.Button
	transitioned     bool
}

var _ screen.Screen = (*LoginScreen)(nil)
var _ screen.KeyHintProvider = (*LoginScreen)(nil)

// New creates a LoginScreen that replaces itself with the screen produced
// by dashboardFactory after a successful login.
func New(st *session.Store, dashboardFactory func() screen.Screen) *LoginScreen {
	return &LoginScreen{
		store:            st,
		dashboardFactory: dashboardFactory,
		input:            components.NewTextInput("Username", "Enter your username", 32),
		button:           components.Button{Label: "Start Learning"},
	}
}

func (s *LoginScreen) Title() string {
	return "Login"
}

func (s *LoginScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Start Learning"},
	}
}

func (s *LoginScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		return s, s.submit()
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	s.button.Enabled = strings.TrimSpace(s.input.Value()) != ""
	return s, cmd
}

func (s *LoginScreen) submit() tea.Cmd {
	if s.transitioned {
		return nil
	}

	if _, err := s.store.Login(context.Background(), s.input.Value()); err != nil {
		var verr *session.ValidationError
		if errors.As(err, &verr) {
			s.input.SetError(verr.Message)
		} else {
			s.input.SetError(err.Error())
		}
		return nil
	}

	s.input.SetError("")
	s.transitioned = true
	dashboard := s.dashboardFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: dashboard}
	}
}

func (s *LoginScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, RenderBanner(width))
	sections = append(sections, theme.Subtitle.Width(cw).Render(tagline))
	sections = append(sections, "")

	sections = append(sections, components.Card("", s.input.View(), cw))
	sections = append(sections, s.button.View())
	sections = append(sections, "")
	sections = append(sections, theme.Hint.Render(newHint))
	sections = append(sections, "")

	badges := make([]string, 0, len(features))
	for _, f := range features {
		badges = append(badges, components.Badge(f.icon, f.label))
	}
	sections = append(sections, strings.Join(badges, "  "))

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
