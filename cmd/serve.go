package cmd

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abhisek/pylearn/internal/api"
	"github.com/abhisek/pylearn/internal/session"
	"github.com/abhisek/pylearn/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the PyLearn HTTP API",
	Long: `Serve the learning platform over HTTP.

Every login opens an isolated session addressed by a bearer token. Idle
sessions expire after PYLEARN_SESSION_TTL.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides PYLEARN_ADDR)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Addr = addr
	}

	st, err := store.Open(cfg.JournalDSN)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	logger := log.New(os.Stdout, "", 0)

	sessions := session.NewManager(session.ManagerOptions{
		Store:         session.Options{Journal: st.ActivityRepo()},
		TTL:           cfg.SessionTTL,
		SweepInterval: cfg.SweepInterval,
		OnSweep: func(removed int) {
			logger.Printf("expired %d idle sessions", removed)
		},
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go sessions.Run(ctx)

	app := api.New(api.Deps{Config: cfg, Sessions: sessions, Logger: logger})

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(cfg.Addr)
	}()
	logger.Printf("pylearn API listening on %s", cfg.Addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Println("shutting down")
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}
