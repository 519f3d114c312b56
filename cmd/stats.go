package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/pylearn/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show activity totals from the journal",
	Long:  `Print per-action counts from the activity journal, for one session
or for all of them.

The journal is read from --db or PYLEARN_DB, which must name a SQLite
file for results to carry over between runs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		st, err := openJournal(cmd, cfg)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		session, _ := cmd.Flags().GetString("session")
		counts, err := st.ActivityRepo().Counts(cmd.Context(), session)
		if err != nil {
			return err
		}

		actions := make([]store.Action, 0, len(counts))
		total := 0
		for a, n := range counts {
			actions = append(actions, a)
			total += n
		}
		sort.Slice(actions, func(i, j int) bool { return actions[i] < actions[j] })

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%-22s  %s\n", "Activity", "Count")
		fmt.Fprintln(w, strings.Repeat("─", 32))
		for _, a := range actions {
			fmt.Fprintf(w, "%-22s  %d\n", a.DisplayName(), counts[a])
		}
		fmt.Fprintf(w, "\n%d events\n", total)
		return nil
	},
}

func init() {
	statsCmd.Flags().String("session", "", "Only count events of this session id")
}
