package dashboard

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pylearn/internal/router"
	"github.com/abhisek/pylearn/internal/screen"
	"github.com/abhisek/pylearn/internal/screens/activity"
	"github.com/abhisek/pylearn/internal/screens/editor"
	"github.com/abhisek/pylearn/internal/screens/lesson"
	"github.com/abhisek/pylearn/internal/session"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "login" }
func (s *stubScreen) Title() string                           { return "Login" }

func newTestDashboard(t *testing.T) (*DashboardScreen, *session.Store) {
	t.Helper()
	st := session.NewStore(session.Options{})
	if _, err := st.Login(context.Background(), "johndoe"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	return New(st, func() screen.Screen { return &stubScreen{} }), st
}

func key(d *DashboardScreen, k string) tea.Cmd {
	var msg tea.KeyPressMsg
	switch k {
	case "enter":
		msg = tea.KeyPressMsg{Code: tea.KeyEnter}
	case "down":
		msg = tea.KeyPressMsg{Code: tea.KeyDown}
	case "tab":
		msg = tea.KeyPressMsg{Code: tea.KeyTab}
	case "shift+tab":
		msg = tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	default:
		r := []rune(k)[0]
		msg = tea.KeyPressMsg{Code: r, Text: k}
	}
	_, cmd := d.Update(msg)
	return cmd
}

func TestStartsOnCurrentStage(t *testing.T) {
	d, _ := newTestDashboard(t)

	if d.stageID != 2 {
		t.Errorf("expected current stage 2, got %d", d.stageID)
	}
	if len(d.menu.Items) != 3 {
		t.Errorf("expected 3 lessons, got %d", len(d.menu.Items))
	}
	if d.menu.Items[1].Detail != "30 min · In Progress" {
		t.Errorf("unexpected lesson detail %q", d.menu.Items[1].Detail)
	}
}

func TestTabSwitching(t *testing.T) {
	d, _ := newTestDashboard(t)

	tests := []struct {
		key   string
		tab   int
		items int
	}{
		{"tab", tabProblems, 3},
		{"tab", tabProjects, 2},
		{"tab", tabResources, 5},
		{"tab", tabLessons, 3},
		{"shift+tab", tabResources, 5},
		{"3", tabProjects, 2},
		{"2", tabProblems, 3},
		{"1", tabLessons, 3},
	}

	for _, tt := range tests {
		key(d, tt.key)
		if d.tabs.Active != tt.tab {
			t.Errorf("after %q: expected tab %d, got %d", tt.key, tt.tab, d.tabs.Active)
		}
		if len(d.menu.Items) != tt.items {
			t.Errorf("after %q: expected %d items, got %d", tt.key, tt.items, len(d.menu.Items))
		}
	}
}

func TestEnterOpensLesson(t *testing.T) {
	d, _ := newTestDashboard(t)

	key(d, "down")
	cmd := key(d, "enter")
	if cmd == nil {
		t.Fatal("expected a command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if _, ok := push.Screen.(*lesson.LessonScreen); !ok {
		t.Errorf("expected lesson screen, got %T", push.Screen)
	}
}

func TestEnterOpensEditor(t *testing.T) {
	d, _ := newTestDashboard(t)

	key(d, "2")
	cmd := key(d, "enter")
	if cmd == nil {
		t.Fatal("expected a command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if _, ok := push.Screen.(*editor.EditorScreen); !ok {
		t.Errorf("expected editor screen, got %T", push.Screen)
	}
}

func TestStartProjectFlashesWithoutChange(t *testing.T) {
	d, st := newTestDashboard(t)

	key(d, "3")
	cmd := key(d, "enter")
	if cmd == nil {
		t.Fatal("expected a command")
	}
	d.Update(cmd())

	if d.flash.Text != session.MsgProjectStarted {
		t.Errorf("expected %q, got %q", session.MsgProjectStarted, d.flash.Text)
	}
	p, _ := st.Project(1)
	if p.IsCompleted {
		t.Error("starting a project must not complete it")
	}
}

func TestCompleteProject(t *testing.T) {
	d, st := newTestDashboard(t)

	key(d, "3")
	key(d, "down")
	cmd := key(d, "c")
	if cmd == nil {
		t.Fatal("expected a command")
	}
	d.Update(cmd())

	if d.flash.Text != session.MsgProjectCompleted {
		t.Errorf("expected %q, got %q", session.MsgProjectCompleted, d.flash.Text)
	}
	p, _ := st.Project(2)
	if !p.IsCompleted {
		t.Error("project 2 should be completed")
	}
	if !strings.HasPrefix(d.menu.Items[1].Label, "✓") {
		t.Errorf("completed project should be checked, got %q", d.menu.Items[1].Label)
	}
}

func TestCompleteKeyIgnoredOutsideProjects(t *testing.T) {
	d, st := newTestDashboard(t)

	if cmd := key(d, "c"); cmd != nil {
		t.Error("c should do nothing on the lessons tab")
	}
	l, _ := st.Lesson(2)
	if l.IsCompleted {
		t.Error("lesson should be untouched")
	}
}

func TestActivityKey(t *testing.T) {
	d, _ := newTestDashboard(t)

	cmd := key(d, "a")
	if cmd == nil {
		t.Fatal("expected a command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if _, ok := push.Screen.(*activity.ActivityScreen); !ok {
		t.Errorf("expected activity screen, got %T", push.Screen)
	}
}

func TestLogoutResetsToLogin(t *testing.T) {
	d, st := newTestDashboard(t)

	cmd := key(d, "x")
	if cmd == nil {
		t.Fatal("expected a command")
	}
	reset, ok := cmd().(router.ResetScreenMsg)
	if !ok {
		t.Fatal("expected ResetScreenMsg")
	}
	if reset.Screen.Title() != "Login" {
		t.Errorf("expected login screen, got %q", reset.Screen.Title())
	}
	if _, ok := st.User(); ok {
		t.Error("user should be logged out")
	}
}

func TestViewReflectsStoreChanges(t *testing.T) {
	d, st := newTestDashboard(t)

	view := d.View(120, 40)
	for _, want := range []string{"Object-Oriented Programming", "In Progress (8/12)", "Your Progress", "45%"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q", want)
		}
	}

	// A child screen completes a lesson; the dashboard picks it up on resume.
	if _, err := st.CompleteLesson(context.Background(), 2); err != nil {
		t.Fatalf("CompleteLesson: %v", err)
	}
	d.Resume()
	view = d.View(120, 40)
	if !strings.Contains(view, "In Progress (9/12)") {
		t.Error("view should show the updated stage counter")
	}
	if d.menu.Items[2].Detail != "35 min · In Progress" {
		t.Errorf("lesson 3 should now be available, got %q", d.menu.Items[2].Detail)
	}
}

func TestKeyHintsFollowTab(t *testing.T) {
	d, _ := newTestDashboard(t)

	if hasHint(d, "c") {
		t.Error("complete hint should only show on projects")
	}
	key(d, "3")
	if !hasHint(d, "c") {
		t.Error("complete hint should show on projects")
	}
}

func hasHint(d *DashboardScreen, k string) bool {
	for _, h := range d.KeyHints() {
		if h.Key == k {
			return true
		}
	}
	return false
}
