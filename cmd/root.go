// Package cmd implements the flipledger command-line interface.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"flipledger/internal/audit"
	"flipledger/internal/cli"
	"flipledger/internal/config"
	"flipledger/internal/model"
	"flipledger/internal/store"
	"flipledger/internal/tracker"

	"github.com/spf13/cobra"
)

var (
	flagDBPath  string
	flagQuiet   bool
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "flipledger",
	Short: "House-flip renovation budget tracker",
	Long:  "Track renovation projects, rooms, and itemized expenses, and keep budgets honest.",
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		setupLogging()
	},
	SilenceUsage: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.Errorf("%v", err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Tracker database path (defaults to config)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress diagnostic output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Show operation logs")
}

func setupLogging() {
	var handler slog.Handler
	switch {
	case flagQuiet:
		handler = slog.NewTextHandler(io.Discard, nil)
	case flagVerbose:
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	default:
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})
	}
	slog.SetDefault(slog.New(handler))
}

// env bundles the opened store, managers, and audit log shared by all
// commands. Callers must Close it.
type env struct {
	cfg      config.Config
	store    *store.Store
	audit    *audit.Logger
	projects *tracker.ProjectManager
	expenses *tracker.ExpenseManager
}

func openEnv() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	dbPath := flagDBPath
	if dbPath == "" {
		dbPath = config.DBPath(cfg)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening tracker store: %w", err)
	}

	auditLog, err := audit.Open(config.DataDir())
	if err != nil {
		_ = st.Close()
		return nil, err
	}

	return &env{
		cfg:      cfg,
		store:    st,
		audit:    auditLog,
		projects: tracker.NewProjectManager(st),
		expenses: tracker.NewExpenseManager(st),
	}, nil
}

func (e *env) Close() {
	_ = e.audit.Close()
	_ = e.store.Close()
}

// defaultOwner resolves the configured owner, directing the user to run
// init when the store has not been provisioned yet.
func (e *env) defaultOwner() (*model.Owner, error) {
	owner, err := e.store.GetOwnerByName(e.cfg.General.DefaultOwner)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("no owner %q found; run `flipledger init` first", e.cfg.General.DefaultOwner)
	}
	return owner, err
}
