package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/pylearn/internal/app"
	"github.com/abhisek/pylearn/internal/session"
	"github.com/abhisek/pylearn/internal/store"
)

// runApp opens the journal, builds a single session and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	st, err := store.Open(cfg.JournalDSN)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	return app.Run(app.Options{
		Store: session.NewStore(session.Options{Journal: st.ActivityRepo()}),
	})
}
