package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"flipledger/internal/cli"
	"flipledger/internal/export"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Data export commands",
}

var (
	flagExportOutput     string
	flagExportNoRooms    bool
	flagExportNoExpenses bool
)

var exportCSVCmd = &cobra.Command{
	Use:   "csv PROJECT_ID",
	Short: "Export one project's data to CSV",
	Args:  cobra.ExactArgs(1),
	RunE:  runExportCSV,
}

var exportSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Export a CSV summary of all projects",
	Args:  cobra.NoArgs,
	RunE:  runExportSummary,
}

func init() {
	exportCSVCmd.Flags().StringVarP(&flagExportOutput, "output", "o", "", "Output CSV filename")
	exportCSVCmd.Flags().BoolVar(&flagExportNoRooms, "no-rooms", false, "Exclude room details")
	exportCSVCmd.Flags().BoolVar(&flagExportNoExpenses, "no-expenses", false, "Exclude expense details")
	exportSummaryCmd.Flags().StringVarP(&flagExportOutput, "output", "o", "", "Output CSV filename")

	exportCmd.AddCommand(exportCSVCmd)
	exportCmd.AddCommand(exportSummaryCmd)
	rootCmd.AddCommand(exportCmd)
}

func runExportCSV(_ *cobra.Command, args []string) error {
	projectID, err := parseID(args[0], "project")
	if err != nil {
		return err
	}

	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	project, err := env.projects.GetProject(projectID)
	if err != nil {
		return err
	}
	summary, err := env.expenses.GetProjectSummary(projectID)
	if err != nil {
		return err
	}
	rooms, err := env.projects.ListRooms(projectID)
	if err != nil {
		return err
	}
	expenses, err := env.expenses.ListExpenses(projectID)
	if err != nil {
		return err
	}

	outputFile := export.DefaultProjectFilename(project.Name)
	if flagExportOutput != "" {
		outputFile = export.SanitizeFilename(flagExportOutput)
	}

	f, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer func() { _ = f.Close() }()

	err = export.WriteProject(f, export.ProjectData{
		Project:  project,
		Summary:  summary,
		Rooms:    rooms,
		Expenses: expenses,
	}, !flagExportNoRooms, !flagExportNoExpenses)
	if err != nil {
		return err
	}

	env.audit.Event("project_exported", "project_id", projectID, "file", outputFile)
	printExportResult(outputFile)
	return nil
}

func runExportSummary(_ *cobra.Command, _ []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	owner, err := env.defaultOwner()
	if err != nil {
		return err
	}
	projects, err := env.projects.ListProjects(owner.ID)
	if err != nil {
		return err
	}
	if len(projects) == 0 {
		return fmt.Errorf("no projects found to export")
	}

	items := make([]export.SummaryRow, 0, len(projects))
	for _, p := range projects {
		s, err := env.expenses.GetProjectSummary(p.ID)
		if err != nil {
			return err
		}
		rooms, err := env.projects.ListRooms(p.ID)
		if err != nil {
			return err
		}
		items = append(items, export.SummaryRow{Project: p, Summary: *s, RoomCount: len(rooms)})
	}

	outputFile := fmt.Sprintf("project_summary_%s.csv", time.Now().Format("20060102_150405"))
	if flagExportOutput != "" {
		outputFile = export.SanitizeFilename(flagExportOutput)
	}

	f, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := export.WriteSummary(f, items, time.Now()); err != nil {
		return err
	}

	env.audit.Event("summary_exported", "projects", len(projects), "file", outputFile)
	fmt.Println(cli.Muted(fmt.Sprintf("Projects exported: %d", len(projects))))
	printExportResult(outputFile)
	return nil
}

func printExportResult(outputFile string) {
	fmt.Println(cli.Success("Exported to: " + outputFile))
	if fi, err := os.Stat(outputFile); err == nil {
		fmt.Println(cli.Muted("File size: " + formatFileSize(fi.Size())))
	}
	if abs, err := filepath.Abs(outputFile); err == nil {
		fmt.Println(cli.Muted("Location: " + abs))
	}
}
