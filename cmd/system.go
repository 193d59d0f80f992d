package cmd

import (
	"fmt"
	"os"

	"flipledger/internal/auth"
	"flipledger/internal/cli"
	"flipledger/internal/config"
	"flipledger/internal/model"
	"flipledger/internal/store"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

var (
	flagInitPassword string
	flagResetConfirm bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the tracker store and default owner",
	RunE:  runInit,
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all data and re-initialize the store",
	RunE:  runReset,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("flipledger %s\n", version)
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show store location and entity counts",
	RunE:  runStatus,
}

func init() {
	initCmd.Flags().StringVar(&flagInitPassword, "password", "Admin123!", "Password for the default owner")
	resetCmd.Flags().BoolVar(&flagResetConfirm, "confirm", false, "Skip confirmation prompt")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(statusCmd)
}

func runInit(_ *cobra.Command, _ []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	count, err := env.store.CountOwners()
	if err != nil {
		return err
	}
	if count > 0 {
		fmt.Println(cli.Muted("Store already initialized."))
		fmt.Println(cli.Muted("Database: " + env.store.Path()))
		return nil
	}

	if err := auth.ValidatePassword(flagInitPassword); err != nil {
		return fmt.Errorf("default owner password rejected: %w", err)
	}
	hash, err := auth.HashPassword(flagInitPassword)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	owner, err := env.store.CreateOwner(env.cfg.General.DefaultOwner, hash, model.RoleEditor)
	if err != nil {
		return fmt.Errorf("creating default owner: %w", err)
	}
	env.audit.Event("owner_created", "name", owner.Name, "role", string(owner.Role))
	env.audit.Event("store_initialized", "path", env.store.Path())

	if !config.Exists() {
		if err := config.Save(env.cfg); err != nil {
			return err
		}
	}

	fmt.Println(cli.Success(fmt.Sprintf("Created default owner: %s", owner.Name)))
	fmt.Println(cli.Muted("Database: " + env.store.Path()))
	return nil
}

func runReset(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	dbPath := flagDBPath
	if dbPath == "" {
		dbPath = config.DBPath(cfg)
	}

	if !flagResetConfirm {
		if !cli.Confirm("This deletes ALL projects, rooms, and expenses. Continue?") {
			fmt.Println(cli.Muted("Reset cancelled."))
			return nil
		}
	}

	if err := store.Reset(dbPath); err != nil {
		return fmt.Errorf("resetting store: %w", err)
	}

	// Re-provision through the normal init path.
	if err := runInit(nil, nil); err != nil {
		return err
	}

	env, err := openEnv()
	if err == nil {
		env.audit.Event("store_reset", "path", dbPath)
		env.Close()
	}

	fmt.Println(cli.Success("Store reset."))
	return nil
}

func runStatus(_ *cobra.Command, _ []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	projects, rooms, expenses, err := env.store.Counts()
	if err != nil {
		return err
	}

	var sizeStr string
	if fi, err := os.Stat(env.store.Path()); err == nil {
		sizeStr = formatFileSize(fi.Size())
	}

	rows := [][]string{
		{"Database", env.store.Path()},
		{"Config", config.ConfigPath()},
		{"---"},
		{"Projects", cli.FormatNumber(int64(projects))},
		{"Rooms", cli.FormatNumber(int64(rooms))},
		{"Expenses", cli.FormatNumber(int64(expenses))},
	}
	if sizeStr != "" {
		rows = append(rows, []string{"DB Size", sizeStr})
	}

	if _, ownerErr := env.defaultOwner(); ownerErr != nil {
		rows = append(rows, []string{"Owner", "not provisioned (run init)"})
	} else {
		rows = append(rows, []string{"Owner", env.cfg.General.DefaultOwner})
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("FLIPLEDGER STATUS"))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{Rows: rows}))
	return nil
}

func formatFileSize(size int64) string {
	switch {
	case size < 1024:
		return fmt.Sprintf("%d bytes", size)
	case size < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(size)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(size)/(1024*1024))
	}
}
