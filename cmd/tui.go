package cmd

import (
	"flipledger/internal/tui"

	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive project dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	// The dashboard draws to the terminal; keep slog quiet underneath it.
	flagQuiet = true
	setupLogging()

	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	owner, err := env.defaultOwner()
	if err != nil {
		return err
	}

	return tui.Run(env.projects, env.expenses, owner.ID, env.cfg)
}
