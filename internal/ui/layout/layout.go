package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/pylearn/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24

	CompactWidthThreshold = 100
)

// KeyHint is one "key description" pair in the footer.
type KeyHint struct {
	Key         string
	Description string
}

func IsCompactWidth(width int) bool {
	return width < CompactWidthThreshold
}

func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"PyLearn needs a bigger window.\n\nMinimum %d x %d, current %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// RenderHeader draws the logo, the screen title centred, and the user's
// name and XP on the right. user is empty before login.
func RenderHeader(title, user string, xp int, width int) string {
	logo := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  Py") +
		lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("Learn")

	center := lipgloss.NewStyle().Foreground(theme.Text).Render(title)

	var right string
	if user != "" {
		right = lipgloss.NewStyle().Foreground(theme.Text).Render(user) + "   " +
			lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("★ %d XP", xp)) + " "
	}

	return bar(spread(logo, center, right, width-4), width)
}

// spread lays out three segments in inner columns with center as close to
// the middle as the left segment allows.
func spread(left, center, right string, inner int) string {
	lw, cw, rw := lipgloss.Width(left), lipgloss.Width(center), lipgloss.Width(right)

	leftGap := max((inner-cw)/2-lw, 1)
	rightGap := max(inner-lw-leftGap-cw-rw, 1)

	return left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right
}

// RenderFooter shows as many hints as fit on one line. The last hint is
// always kept so the quit binding stays visible.
func RenderFooter(hints []KeyHint, width int) string {
	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(h.Key) + " " +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(h.Description)
	}

	const sep = "   "
	inner := width - 4
	for len(parts) > 1 && lipgloss.Width("  "+strings.Join(parts, sep)) > inner {
		parts = append(parts[:len(parts)-2], parts[len(parts)-1])
	}

	return bar("  "+strings.Join(parts, sep), width)
}

func bar(content string, width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// RenderFrame stacks header, content and footer, padding the content to
// fill the height left between them.
func RenderFrame(header, content, footer string, width, height int) string {
	contentHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	body := lipgloss.NewStyle().
		Width(width).
		Height(contentHeight).
		Render(content)

	return header + "\n" + body + "\n" + footer
}
