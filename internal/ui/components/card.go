package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pylearn/internal/ui/theme"
)

// ContentWidth returns the inner width for centered forms such as login.
// All boxes are rendered at this width so they visually align.
func ContentWidth(frameWidth int) int {
	// Leave room for the frame border (2) + inner padding (4)
	w := frameWidth - 6
	if w > 60 {
		w = 60
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Frame wraps content in a double-border frame, centered vertically and
// horizontally within the given dimensions.
func Frame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// Card renders a titled rounded box w cells wide.
func Card(title, body string, w int) string {
	content := body
	if title != "" {
		content = theme.Heading.Render(title) + "\n" + body
	}
	return theme.Card.
		Width(w).
		Render(content)
}

// Badge renders a short label with a leading icon.
func Badge(icon, label string) string {
	return theme.Badge.Render(
		lipgloss.NewStyle().Foreground(theme.Accent).Render(icon) + " " + label)
}
