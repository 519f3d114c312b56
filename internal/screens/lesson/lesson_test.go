package lesson

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pylearn/internal/catalog"
	"github.com/abhisek/pylearn/internal/session"
)

func press(s *LessonScreen, key rune) {
	s.Update(tea.KeyPressMsg{Code: key, Text: string(key)})
}

func TestCompleteAvailableLesson(t *testing.T) {
	st := session.NewStore(session.Options{})
	s := New(st, 2)

	press(s, 'c')

	if s.flash != session.MsgLessonCompleted {
		t.Errorf("expected %q, got %q", session.MsgLessonCompleted, s.flash)
	}
	l, err := st.Lesson(2)
	if err != nil {
		t.Fatalf("Lesson: %v", err)
	}
	if !l.IsCompleted {
		t.Error("lesson 2 should be completed")
	}
	stage, _ := st.Stage(2)
	if stage.CompletedLessons != 9 {
		t.Errorf("expected stage counter 9, got %d", stage.CompletedLessons)
	}
}

func TestUpcomingLessonCannotBeCompleted(t *testing.T) {
	st := session.NewStore(session.Options{})
	s := New(st, 3)

	press(s, 'c')

	if !s.flashErr {
		t.Error("expected an error flash for an upcoming lesson")
	}
	l, _ := st.Lesson(3)
	if l.IsCompleted {
		t.Error("upcoming lesson should stay incomplete")
	}
	if !strings.Contains(s.View(100, 30), lockedHint) {
		t.Error("upcoming lesson should hide content behind the locked hint")
	}
}

func TestCompletedLessonIsNoop(t *testing.T) {
	st := session.NewStore(session.Options{})
	s := New(st, 1)

	press(s, 'c')

	if s.flash != session.MsgLessonAlreadyDone {
		t.Errorf("expected %q, got %q", session.MsgLessonAlreadyDone, s.flash)
	}
	stage, _ := st.Stage(2)
	if stage.CompletedLessons != 8 {
		t.Errorf("stage counter should be unchanged, got %d", stage.CompletedLessons)
	}
}

func TestViewShowsContentForAvailableLesson(t *testing.T) {
	st := session.NewStore(session.Options{})
	s := New(st, 2)

	view := s.View(100, 60)
	for _, want := range []string{"Methods and Attributes", "30 min", "Instance Methods"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q", want)
		}
	}
}

func TestUnknownLesson(t *testing.T) {
	st := session.NewStore(session.Options{})
	s := New(st, 99)

	if !strings.Contains(s.View(80, 24), "Error") {
		t.Error("unknown lesson should render an error")
	}
	press(s, 'c')
	if !s.flashErr {
		t.Error("completing an unknown lesson should flash an error")
	}
}

func TestScrollClamped(t *testing.T) {
	st := session.NewStore(session.Options{})
	s := New(st, 1)

	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if s.scroll != 0 {
		t.Errorf("scroll should not go negative, got %d", s.scroll)
	}

	for i := 0; i < 500; i++ {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	s.View(100, 20)
	if s.scroll >= 500 {
		t.Errorf("scroll should be clamped to the content, got %d", s.scroll)
	}
}

func TestRenderContentStripsFences(t *testing.T) {
	lines := renderContent("# Title\n~~~python\nx = 1\n~~~\nplain", 40)
	joined := strings.Join(lines, "\n")

	if strings.Contains(joined, "~~~") {
		t.Error("fences should be stripped")
	}
	if strings.Contains(joined, "# Title") {
		t.Error("heading markers should be stripped")
	}
	if !strings.Contains(joined, "x = 1") {
		t.Error("code lines should be kept")
	}
}

func TestLockedStageLesson(t *testing.T) {
	data := catalog.Sample()
	data.Lessons = append(data.Lessons, catalog.Lesson{
		ID: 10, StageID: 3, Title: "Decorators", Duration: 20, Order: 1,
	})
	st := session.NewStore(session.Options{Data: &data})
	s := New(st, 10)

	press(s, 'c')
	if !s.flashErr {
		t.Error("lesson in a locked stage should not complete")
	}
}
