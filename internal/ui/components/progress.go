package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/pylearn/internal/ui/theme"
)

// ProgressBar draws a percentage as a row of blocks followed by the
// number, e.g. "█████░░░░░ 45%".
type ProgressBar struct {
	Percent int
	Width   int
}

// NewProgressBar clamps percent to 0..100.
func NewProgressBar(percent, width int) ProgressBar {
	return ProgressBar{Percent: clampPercent(percent), Width: width}
}

// Ratio returns done/total as a whole percentage; zero total is 0%.
func Ratio(done, total int) int {
	if total <= 0 {
		return 0
	}
	return clampPercent(done * 100 / total)
}

func clampPercent(p int) int {
	return max(0, min(p, 100))
}

func (p ProgressBar) View() string {
	label := fmt.Sprintf(" %d%%", p.Percent)

	cells := p.Width - len(label)
	if cells < 4 {
		cells = 4
	}
	filled := cells * p.Percent / 100

	bar := lipgloss.NewStyle().Foreground(theme.Secondary).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("░", cells-filled))

	return bar + lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(label)
}
