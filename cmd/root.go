package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/pylearn/internal/config"
	"github.com/abhisek/pylearn/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "pylearn",
	Short: "Learn Python in the terminal",
	Long:  "PyLearn: a terminal learning platform with lessons, coding problems and projects for Python learners.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Activity journal SQLite DSN (overrides PYLEARN_DB env var)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the configuration and applies the persistent flags.
// --db has the highest priority, then PYLEARN_DB, then an in-memory journal.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if dsn, _ := cmd.Flags().GetString("db"); dsn != "" {
		cfg.JournalDSN = dsn
	}
	return cfg, nil
}

// openJournal opens the configured journal. An in-memory journal starts
// empty in every process, so commands that inspect it warn first.
func openJournal(cmd *cobra.Command, cfg *config.Config) (*store.Store, error) {
	if cfg.JournalDSN == store.MemoryDSN {
		fmt.Fprintln(cmd.ErrOrStderr(), "note: the journal is in memory and starts empty; pass --db or set PYLEARN_DB to a database file")
	}
	return store.Open(cfg.JournalDSN)
}
