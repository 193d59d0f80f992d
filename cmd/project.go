package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"flipledger/internal/cli"
	"flipledger/internal/tracker"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Project management commands",
}

var (
	flagProjectDescription string
	flagProjectFloors      int
	flagProjectSqft        float64
	flagProjectAddress     string
	flagProjectPriority    string
	flagProjectForce       bool
)

var projectCreateCmd = &cobra.Command{
	Use:   "create NAME BUDGET PROPERTY_TYPE PROPERTY_CLASS",
	Short: "Create a new renovation project",
	Args:  cobra.ExactArgs(4),
	RunE:  runProjectCreate,
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all projects",
	Args:  cobra.NoArgs,
	RunE:  runProjectList,
}

var projectShowCmd = &cobra.Command{
	Use:   "show PROJECT_ID",
	Short: "Show one project with its rooms",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectShow,
}

var projectStatusCmd = &cobra.Command{
	Use:   "status PROJECT_ID STATUS",
	Short: "Update a project's status",
	Args:  cobra.ExactArgs(2),
	RunE:  runProjectStatus,
}

var projectDeleteCmd = &cobra.Command{
	Use:   "delete PROJECT_ID",
	Short: "Delete a project and all its rooms and expenses",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectDelete,
}

func init() {
	projectCreateCmd.Flags().StringVarP(&flagProjectDescription, "description", "d", "", "Project description")
	projectCreateCmd.Flags().IntVarP(&flagProjectFloors, "floors", "f", 2, "Number of floors")
	projectCreateCmd.Flags().Float64VarP(&flagProjectSqft, "sqft", "s", 0, "Total square footage")
	projectCreateCmd.Flags().StringVarP(&flagProjectAddress, "address", "a", "", "Property address")
	projectCreateCmd.Flags().StringVar(&flagProjectPriority, "priority", "", "Priority (low, medium, high, urgent)")
	projectDeleteCmd.Flags().BoolVar(&flagProjectForce, "force", false, "Skip confirmation prompts")

	projectCmd.AddCommand(projectCreateCmd)
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectShowCmd)
	projectCmd.AddCommand(projectStatusCmd)
	projectCmd.AddCommand(projectDeleteCmd)
	rootCmd.AddCommand(projectCmd)
}

func parseID(arg, what string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s id %q", what, arg)
	}
	return id, nil
}

func runProjectCreate(_ *cobra.Command, args []string) error {
	budget, err := decimal.NewFromString(args[1])
	if err != nil {
		return fmt.Errorf("invalid budget %q", args[1])
	}

	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	owner, err := env.defaultOwner()
	if err != nil {
		return err
	}

	project, err := env.projects.CreateProject(tracker.CreateProjectParams{
		Name:          args[0],
		Budget:        budget,
		PropertyType:  args[2],
		PropertyClass: args[3],
		OwnerID:       owner.ID,
		Description:   flagProjectDescription,
		NumFloors:     flagProjectFloors,
		TotalSqft:     flagProjectSqft,
		Address:       flagProjectAddress,
		Priority:      flagProjectPriority,
	})
	if err != nil {
		return err
	}
	env.audit.Event("project_created", "id", project.ID, "name", project.Name)

	fmt.Println(cli.Success(fmt.Sprintf("Created project: %s (ID: %d)", project.Name, project.ID)))
	fmt.Printf("  Budget: %s\n", cli.FormatCurrency(project.TotalBudget))
	fmt.Printf("  Type: %s - %s\n",
		cli.TitleCase(string(project.PropertyType)),
		strings.ToUpper(string(project.PropertyClass)))
	if project.TotalSqft > 0 {
		fmt.Printf("  Size: %s\n", cli.FormatSqft(project.TotalSqft))
	}
	fmt.Println()
	fmt.Println(cli.Muted("Next steps:"))
	fmt.Println(cli.Muted(fmt.Sprintf("  flipledger room add %d 'Living Room' 1 --length 20 --width 15", project.ID)))
	return nil
}

func runProjectList(_ *cobra.Command, _ []string) error {
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
		fmt.Println(cli.Muted("No projects found. Create your first project:"))
		fmt.Println(cli.Muted("  flipledger project create 'My First Flip' 150000 single_family sf_class_c"))
		return nil
	}

	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, []string{
			strconv.FormatInt(p.ID, 10),
			p.Name,
			cli.TitleCase(string(p.Status)),
			cli.TitleCase(string(p.Priority)),
			cli.FormatCurrency(p.TotalBudget),
			p.CreatedAt.Format("2006-01-02"),
		})
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("PROJECTS"))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Name", "Status", "Priority", "Budget", "Created"},
		Rows:    rows,
	}))
	return nil
}

func runProjectShow(_ *cobra.Command, args []string) error {
	id, err := parseID(args[0], "project")
	if err != nil {
		return err
	}

	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	project, err := env.projects.GetProject(id)
	if err != nil {
		return err
	}
	rooms, err := env.projects.ListRooms(id)
	if err != nil {
		return err
	}

	rows := [][]string{
		{"Name", project.Name},
		{"Status", cli.TitleCase(string(project.Status))},
		{"Priority", cli.TitleCase(string(project.Priority))},
		{"Type", cli.TitleCase(string(project.PropertyType))},
		{"Class", strings.ToUpper(string(project.PropertyClass))},
		{"Budget", cli.FormatCurrency(project.TotalBudget)},
		{"Floors", strconv.Itoa(project.NumFloors)},
	}
	if project.TotalSqft > 0 {
		rows = append(rows, []string{"Size", cli.FormatSqft(project.TotalSqft)})
	}
	if project.Address != "" {
		rows = append(rows, []string{"Address", project.Address})
	}
	if project.Description != "" {
		rows = append(rows, []string{"Description", project.Description})
	}
	rows = append(rows, []string{"Created", project.CreatedAt.Format("2006-01-02")})

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("PROJECT %d", project.ID)))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{Rows: rows}))

	if len(rooms) > 0 {
		roomRows := make([][]string, 0, len(rooms))
		for _, r := range rooms {
			sqft := "-"
			if v, ok := r.SquareFootage(); ok {
				sqft = cli.FormatSqft(v)
			}
			roomRows = append(roomRows, []string{
				r.Name,
				strconv.Itoa(r.FloorNumber),
				sqft,
				cli.FormatCondition(r.InitialCondition),
			})
		}
		fmt.Println()
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Rooms",
			Headers: []string{"Name", "Floor", "Area", "Condition"},
			Rows:    roomRows,
		}))
	}
	return nil
}

func runProjectStatus(_ *cobra.Command, args []string) error {
	id, err := parseID(args[0], "project")
	if err != nil {
		return err
	}

	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	ok, err := env.projects.UpdateProjectStatus(id, args[1])
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("project %d not found", id)
	}

	fmt.Println(cli.Success(fmt.Sprintf("Project %d status set to %s", id, cli.TitleCase(args[1]))))
	return nil
}

func runProjectDelete(_ *cobra.Command, args []string) error {
	id, err := parseID(args[0], "project")
	if err != nil {
		return err
	}

	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	project, err := env.projects.GetProject(id)
	if err != nil {
		return err
	}

	if !flagProjectForce {
		if !cli.ConfirmProjectDeletion(project.Name) {
			fmt.Println(cli.Muted("Deletion cancelled."))
			return nil
		}
	}

	ok, err := env.projects.DeleteProject(id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("project %d not found", id)
	}
	env.audit.Event("project_deleted", "id", id, "name", project.Name)

	fmt.Println(cli.Success(fmt.Sprintf("Deleted project: %s (including all rooms and expenses)", project.Name)))
	return nil
}
