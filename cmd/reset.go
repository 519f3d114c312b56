package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete activity journal entries",
	Long:  `Delete activity journal entries, all of them or only those older
than --older-than.

The journal is read from --db or PYLEARN_DB, which must name a SQLite
file for results to carry over between runs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		olderThan, _ := cmd.Flags().GetDuration("older-than")
		if olderThan < 0 {
			return fmt.Errorf("--older-than must not be negative")
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		st, err := openJournal(cmd, cfg)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		var before time.Time
		if olderThan > 0 {
			before = time.Now().Add(-olderThan)
		}
		n, err := st.ActivityRepo().Purge(cmd.Context(), before)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d events\n", n)
		return nil
	},
}

func init() {
	resetCmd.Flags().Duration("older-than", 0, "Only delete events older than this (e.g. 720h); 0 deletes all")
}
