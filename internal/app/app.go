package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pylearn/internal/router"
	"github.com/abhisek/pylearn/internal/screen"
	"github.com/abhisek/pylearn/internal/screens/dashboard"
	"github.com/abhisek/pylearn/internal/screens/login"
	"github.com/abhisek/pylearn/internal/session"
	"github.com/abhisek/pylearn/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	Store *session.Store
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	store  *session.Store
	width  int
	height int
}

// newAppModel creates a new AppModel starting at the login screen, or at
// the dashboard when the store already has a user.
func newAppModel(opts Options) AppModel {
	st := opts.Store
	if st == nil {
		st = session.NewStore(session.Options{})
	}

	var newLogin, newDashboard func() screen.Screen
	newLogin = func() screen.Screen { return login.New(st, newDashboard) }
	newDashboard = func() screen.Screen { return dashboard.New(st, newLogin) }

	initial := newLogin
	if _, ok := st.User(); ok {
		initial = newDashboard
	}

	return AppModel{
		router: router.New(initial()),
		store:  st,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.store.Logout(context.Background())
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render composes header, active screen and footer for the current size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	var name string
	var xp int
	if user, ok := m.store.User(); ok {
		name, xp = user.Name, user.Points
	}
	header := layout.RenderHeader(title, name, xp, m.width)

	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// footerHints prefers the active screen's own hints and always offers
// a way out.
func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	var hints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		hints = p.KeyHints()
	} else if m.router.Depth() > 1 {
		hints = []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
