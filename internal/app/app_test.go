package app

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pylearn/internal/router"
	"github.com/abhisek/pylearn/internal/screens/lesson"
	"github.com/abhisek/pylearn/internal/session"
)

func sized(m AppModel) AppModel {
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(AppModel)
}

func TestStartsAtLogin(t *testing.T) {
	m := newAppModel(Options{})
	if got := m.router.Active().Title(); got != "Login" {
		t.Errorf("expected login screen, got %q", got)
	}
}

func TestStartsAtDashboardWhenLoggedIn(t *testing.T) {
	st := session.NewStore(session.Options{})
	if _, err := st.Login(context.Background(), "ada"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	m := newAppModel(Options{Store: st})
	if got := m.router.Active().Title(); got != "Dashboard" {
		t.Errorf("expected dashboard, got %q", got)
	}
}

func TestHeaderShowsUserAndXP(t *testing.T) {
	st := session.NewStore(session.Options{})
	if _, err := st.Login(context.Background(), "johndoe"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	m := sized(newAppModel(Options{Store: st}))

	view := m.render()
	if !strings.Contains(view, "Johndoe") {
		t.Error("header should show the display name")
	}
	if !strings.Contains(view, "1250 XP") {
		t.Error("header should show the XP")
	}
}

func TestEscAtRootIsNoop(t *testing.T) {
	m := newAppModel(Options{})
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil {
		t.Error("esc on the root screen should do nothing")
	}
}

func TestEscPopsChildScreen(t *testing.T) {
	st := session.NewStore(session.Options{})
	st.Login(context.Background(), "ada")
	m := newAppModel(Options{Store: st})

	m.router.Update(router.PushScreenMsg{Screen: lesson.New(st, 1)})
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("esc should pop the screen")
	}
}

func TestCtrlCLogsOut(t *testing.T) {
	st := session.NewStore(session.Options{})
	st.Login(context.Background(), "ada")
	m := newAppModel(Options{Store: st})

	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := st.User(); ok {
		t.Error("quitting should log the user out")
	}
}

func TestTooSmall(t *testing.T) {
	m := newAppModel(Options{})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	view := next.(AppModel).render()
	if !strings.Contains(view, "needs a bigger window") {
		t.Error("expected the minimum size message")
	}
}

func TestFooterHintsIncludeQuit(t *testing.T) {
	m := sized(newAppModel(Options{}))
	hints := m.footerHints(m.router.Active())
	if len(hints) < 2 {
		t.Fatalf("expected screen hints plus quit, got %v", hints)
	}
	if hints[len(hints)-1].Key != "Ctrl+C" {
		t.Errorf("last hint should be quit, got %q", hints[len(hints)-1].Key)
	}
}

func TestDashboardRefreshesAfterChildPops(t *testing.T) {
	st := session.NewStore(session.Options{})
	ctx := context.Background()
	if _, err := st.Login(ctx, "ada"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	m := sized(newAppModel(Options{Store: st}))

	m.Update(router.PushScreenMsg{Screen: lesson.New(st, 2)})
	if _, err := st.CompleteLesson(ctx, 2); err != nil {
		t.Fatalf("CompleteLesson: %v", err)
	}
	m.Update(router.PopScreenMsg{})

	if got := m.router.Active().Title(); got != "Dashboard" {
		t.Fatalf("expected dashboard after pop, got %q", got)
	}
	if !strings.Contains(m.render(), "In Progress (9/12)") {
		t.Error("dashboard should show the lesson completed on the child screen")
	}
}
