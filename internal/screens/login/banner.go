package login

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/pylearn/internal/ui/theme"
)

// Two halves so "Py" and "Learn" can take the two Python colors.
var (
	bannerPy = []string{
		"██████╗ ██╗   ██╗",
		"██╔══██╗╚██╗ ██╔╝",
		"██████╔╝ ╚████╔╝ ",
		"██╔═══╝   ╚██╔╝  ",
		"██║        ██║   ",
		"╚═╝        ╚═╝   ",
	}
	bannerLearn = []string{
		"██╗     ███████╗ █████╗ ██████╗ ███╗   ██╗",
		"██║     ██╔════╝██╔══██╗██╔══██╗████╗  ██║",
		"██║     █████╗  ███████║██████╔╝██╔██╗ ██║",
		"██║     ██╔══╝  ██╔══██║██╔══██╗██║╚██╗██║",
		"███████╗███████╗██║  ██║██║  ██║██║ ╚████║",
		"╚══════╝╚══════╝╚═╝  ╚═╝╚═╝  ╚═╝╚═╝  ╚═══╝",
	}
)

const (
	bannerWidth   = 60
	bannerCompact = "P Y L E A R N"
)

// RenderBanner returns the PYLEARN banner. Uses a compact fallback for
// terminals narrower than the art.
func RenderBanner(width int) string {
	py := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	learn := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)

	if width < bannerWidth+2 {
		return py.Render(bannerCompact[:4]) + learn.Render(bannerCompact[4:])
	}

	lines := make([]string, len(bannerPy))
	for i := range bannerPy {
		lines[i] = py.Render(bannerPy[i]) + learn.Render(bannerLearn[i])
	}
	return strings.Join(lines, "\n")
}
