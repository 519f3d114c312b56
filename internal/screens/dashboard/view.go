package dashboard

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/pylearn/internal/catalog"
	"github.com/abhisek/pylearn/internal/session"
	"github.com/abhisek/pylearn/internal/ui/components"
	"github.com/abhisek/pylearn/internal/ui/theme"
)

// renderSidebar renders overall progress, per-stage status and quick stats.
func renderSidebar(p session.Progress, w int) string {
	inner := w - 4 // border (2) + padding (2)
	if inner < 10 {
		inner = 10
	}

	var b strings.Builder
	b.WriteString(theme.Heading.Render("Your Progress"))
	b.WriteString("\n")
	b.WriteString(components.NewProgressBar(p.OverallPercent, inner).View())
	b.WriteString("\n\n")

	b.WriteString(theme.Heading.Render("Learning Stages"))
	b.WriteString("\n")
	for _, st := range p.Stages {
		icon := lipgloss.NewStyle().Foreground(statusColor(st.Status)).Render(st.Status.Icon())
		b.WriteString(icon + " " + theme.Body.Render(st.Name))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("  " + stageLabel(st)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(theme.Heading.Render("Quick Stats"))
	b.WriteString("\n")
	b.WriteString(statLine("Lessons", p.LessonsCompleted, p.LessonsTotal))
	b.WriteString(statLine("Problems", p.ProblemsSolved, p.ProblemsTotal))
	b.WriteString(statLine("Projects", p.ProjectsDone, p.ProjectsTotal))

	return theme.Sidebar.
		Width(w).
		Render(strings.TrimRight(b.String(), "\n"))
}

func statLine(label string, done, total int) string {
	return theme.Body.Render(fmt.Sprintf("%-9s", label)) +
		lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("%d/%d", done, total)) +
		"\n"
}

func statusColor(s catalog.StageStatus) color.Color {
	switch s {
	case catalog.StageCompleted:
		return theme.Success
	case catalog.StageInProgress:
		return theme.Accent
	default:
		return theme.TextDim
	}
}

// renderModuleCard renders the headline card for the current stage.
func renderModuleCard(mod catalog.Module, stage session.StageEntry, w int) string {
	meta := lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("%s · ~%d hours · %d/%d lessons",
			stage.Name, mod.EstimatedHours, stage.CompletedLessons, stage.TotalLessons))

	bar := components.NewProgressBar(components.Ratio(stage.CompletedLessons, stage.TotalLessons), w-4).View()

	body := theme.Body.Render(mod.Summary) + "\n" + meta + "\n" + bar
	return components.Card(mod.Title, body, w)
}

func renderFlash(f flashMsg) string {
	if f.Err {
		return theme.Incorrect.Render("  ✗ " + f.Text)
	}
	return theme.Correct.Render("  ✓ " + f.Text)
}
