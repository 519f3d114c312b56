package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/pylearn/internal/ui/theme"
)

// Tabs is a horizontal tab bar. Keys 1-9 jump directly to a tab.
type Tabs struct {
	Labels []string
	Active int
}

// NewTabs creates a tab bar with the first tab active.
func NewTabs(labels ...string) Tabs {
	return Tabs{Labels: labels}
}

// Next activates the following tab, wrapping around.
func (t *Tabs) Next() {
	if len(t.Labels) == 0 {
		return
	}
	t.Active = (t.Active + 1) % len(t.Labels)
}

// Prev activates the preceding tab, wrapping around.
func (t *Tabs) Prev() {
	if len(t.Labels) == 0 {
		return
	}
	t.Active = (t.Active - 1 + len(t.Labels)) % len(t.Labels)
}

// HandleKey applies tab navigation keys. It reports whether key was used.
func (t *Tabs) HandleKey(key string) bool {
	switch key {
	case "tab":
		t.Next()
		return true
	case "shift+tab":
		t.Prev()
		return true
	}
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		i := int(key[0] - '1')
		if i < len(t.Labels) {
			t.Active = i
			return true
		}
	}
	return false
}

// View renders the tab bar. counts, when non-nil, is appended to each label.
func (t Tabs) View(counts []int) string {
	parts := make([]string, 0, len(t.Labels))
	for i, label := range t.Labels {
		if i < len(counts) {
			label = fmt.Sprintf("%s (%d)", label, counts[i])
		}
		if i == t.Active {
			parts = append(parts, theme.TabActive.Render(label))
		} else {
			parts = append(parts, theme.TabInactive.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(parts, " "))
}
