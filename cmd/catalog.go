package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/pylearn/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the course catalog (optionally filtered by stage)",
	RunE: func(cmd *cobra.Command, args []string) error {
		stage, _ := cmd.Flags().GetInt("stage")

		data := catalog.Sample()
		if stage != 0 && !hasStage(data, stage) {
			return fmt.Errorf("no stage with id %d", stage)
		}
		printCatalog(cmd.OutOrStdout(), data, stage)
		return nil
	},
}

func init() {
	catalogCmd.Flags().Int("stage", 0, "Only show content for this stage id")
}

func hasStage(data catalog.Data, id int) bool {
	for _, s := range data.Stages {
		if s.ID == id {
			return true
		}
	}
	return false
}

// printCatalog writes one table per entity kind. stage 0 means all stages.
func printCatalog(w io.Writer, data catalog.Data, stage int) {
	match := func(id int) bool { return stage == 0 || id == stage }
	rule := strings.Repeat("─", 90)

	fmt.Fprintf(w, "%-4s  %-14s  %5s  %-9s  %s\n", "ID", "Stage", "Level", "Lessons", "Status")
	fmt.Fprintln(w, rule)
	for _, s := range data.Stages {
		if !match(s.ID) {
			continue
		}
		fmt.Fprintf(w, "%-4d  %-14s  %5d  %-9s  %s\n",
			s.ID, s.Name, s.Level,
			fmt.Sprintf("%d/%d", s.CompletedLessons, s.TotalLessons), s.Status().Label())
	}

	fmt.Fprintf(w, "\n%-4s  %-5s  %-48s  %8s  %s\n", "ID", "Stage", "Lesson", "Minutes", "Done")
	fmt.Fprintln(w, rule)
	for _, l := range data.Lessons {
		if match(l.StageID) {
			fmt.Fprintf(w, "%-4d  %-5d  %-48s  %8d  %s\n", l.ID, l.StageID, truncate(l.Title, 48), l.Duration, yesNo(l.IsCompleted))
		}
	}

	fmt.Fprintf(w, "\n%-4s  %-5s  %-48s  %-12s  %s\n", "ID", "Stage", "Problem", "Difficulty", "Done")
	fmt.Fprintln(w, rule)
	for _, p := range data.Problems {
		if match(p.StageID) {
			fmt.Fprintf(w, "%-4d  %-5d  %-48s  %-12s  %s\n", p.ID, p.StageID, truncate(p.Title, 48), p.Difficulty, yesNo(p.IsCompleted))
		}
	}

	fmt.Fprintf(w, "\n%-4s  %-5s  %-48s  %-12s  %s\n", "ID", "Stage", "Project", "Difficulty", "Hours")
	fmt.Fprintln(w, rule)
	for _, p := range data.Projects {
		if match(p.StageID) {
			fmt.Fprintf(w, "%-4d  %-5d  %-48s  %-12s  %d\n", p.ID, p.StageID, truncate(p.Title, 48), p.Difficulty, p.EstimatedHours)
		}
	}

	fmt.Fprintf(w, "\n%-4s  %-5s  %-48s  %-13s  %s\n", "ID", "Stage", "Resource", "Type", "URL")
	fmt.Fprintln(w, rule)
	for _, r := range data.Resources {
		if match(r.StageID) {
			fmt.Fprintf(w, "%-4d  %-5d  %-48s  %-13s  %s\n", r.ID, r.StageID, truncate(r.Title, 48), r.Kind, r.URL)
		}
	}
}

// truncate shortens s to n runes, ending in "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		return string(r[:n-3]) + "..."
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
