package layout

import (
	"strings"
	"testing"
)

func TestRenderHeaderWithUser(t *testing.T) {
	h := RenderHeader("Dashboard", "Johndoe", 1250, 100)

	for _, want := range []string{"Py", "Learn", "Dashboard", "Johndoe", "1250 XP"} {
		if !strings.Contains(h, want) {
			t.Errorf("header should contain %q", want)
		}
	}
}

func TestRenderHeaderLoggedOut(t *testing.T) {
	h := RenderHeader("Login", "", 0, 100)
	if strings.Contains(h, "XP") {
		t.Error("header should not show XP before login")
	}
}

func TestFooterDropsHintsThatDoNotFit(t *testing.T) {
	hints := []KeyHint{
		{Key: "Tab", Description: "Switch"},
		{Key: "Enter", Description: "Open"},
		{Key: "a", Description: "Activity"},
		{Key: "x", Description: "Logout"},
		{Key: "Ctrl+C", Description: "Quit"},
	}

	wide := RenderFooter(hints, 120)
	if !strings.Contains(wide, "Logout") {
		t.Error("wide footer should show every hint")
	}

	narrow := RenderFooter(hints, 40)
	if !strings.Contains(narrow, "Quit") {
		t.Error("the last hint must always be shown")
	}
	if strings.Contains(narrow, "Logout") {
		t.Error("narrow footer should drop hints that do not fit")
	}
}

func TestRenderFrameHeight(t *testing.T) {
	frame := RenderFrame("h", "body", "f", 20, 10)
	if got := strings.Count(frame, "\n") + 1; got != 10 {
		t.Errorf("frame should fill the height, got %d lines", got)
	}
}

func TestIsTooSmall(t *testing.T) {
	if !IsTooSmall(79, 40) || !IsTooSmall(100, 23) {
		t.Error("below minimum should be too small")
	}
	if IsTooSmall(80, 24) {
		t.Error("minimum size should fit")
	}
}
