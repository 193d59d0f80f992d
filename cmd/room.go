package cmd

import (
	"fmt"
	"strconv"

	"flipledger/internal/cli"
	"flipledger/internal/model"
	"flipledger/internal/tracker"

	"github.com/spf13/cobra"
)

var roomCmd = &cobra.Command{
	Use:   "room",
	Short: "Room management commands",
}

var (
	flagRoomLength    float64
	flagRoomWidth     float64
	flagRoomHeight    float64
	flagRoomCondition int
	flagRoomNotes     string
	flagRoomForce     bool
)

var roomAddCmd = &cobra.Command{
	Use:   "add PROJECT_ID NAME FLOOR",
	Short: "Add a room to a project",
	Args:  cobra.ExactArgs(3),
	RunE:  runRoomAdd,
}

var roomListCmd = &cobra.Command{
	Use:   "list PROJECT_ID",
	Short: "List a project's rooms",
	Args:  cobra.ExactArgs(1),
	RunE:  runRoomList,
}

var roomDeleteCmd = &cobra.Command{
	Use:   "delete PROJECT_ID NAME",
	Short: "Delete a room and its expenses",
	Args:  cobra.ExactArgs(2),
	RunE:  runRoomDelete,
}

var roomStandardCmd = &cobra.Command{
	Use:   "standard",
	Short: "List common room names",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(cli.Muted("Common room names:"))
		for _, name := range model.StandardRooms {
			fmt.Printf("  %s\n", name)
		}
	},
}

func init() {
	roomAddCmd.Flags().Float64VarP(&flagRoomLength, "length", "l", 0, "Room length in feet")
	roomAddCmd.Flags().Float64VarP(&flagRoomWidth, "width", "w", 0, "Room width in feet")
	roomAddCmd.Flags().Float64Var(&flagRoomHeight, "height", 8.0, "Room height in feet")
	roomAddCmd.Flags().IntVarP(&flagRoomCondition, "condition", "c", 3, "Initial condition rating (1-5)")
	roomAddCmd.Flags().StringVarP(&flagRoomNotes, "notes", "n", "", "Room notes")
	roomDeleteCmd.Flags().BoolVarP(&flagRoomForce, "force", "f", false, "Skip confirmation prompt")

	roomCmd.AddCommand(roomAddCmd)
	roomCmd.AddCommand(roomListCmd)
	roomCmd.AddCommand(roomDeleteCmd)
	roomCmd.AddCommand(roomStandardCmd)
	rootCmd.AddCommand(roomCmd)
}

func runRoomAdd(_ *cobra.Command, args []string) error {
	projectID, err := parseID(args[0], "project")
	if err != nil {
		return err
	}
	floor, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("invalid floor number %q", args[2])
	}

	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	room, err := env.projects.AddRoom(tracker.AddRoomParams{
		ProjectID:   projectID,
		Name:        args[1],
		FloorNumber: floor,
		LengthFt:    flagRoomLength,
		WidthFt:     flagRoomWidth,
		HeightFt:    flagRoomHeight,
		Condition:   flagRoomCondition,
		Notes:       flagRoomNotes,
	})
	if err != nil {
		return err
	}
	env.audit.Event("room_added", "project_id", projectID, "id", room.ID, "name", room.Name)

	fmt.Println(cli.Success(fmt.Sprintf("Added room: %s (floor %d)", room.Name, room.FloorNumber)))
	if sqft, ok := room.SquareFootage(); ok {
		fmt.Printf("  Area: %s\n", cli.FormatSqft(sqft))
	}
	fmt.Printf("  Condition: %s\n", cli.FormatCondition(room.InitialCondition))
	return nil
}

func runRoomList(_ *cobra.Command, args []string) error {
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
	rooms, err := env.projects.ListRooms(projectID)
	if err != nil {
		return err
	}
	if len(rooms) == 0 {
		fmt.Println(cli.Muted(fmt.Sprintf("No rooms in project %q yet. Add one:", project.Name)))
		fmt.Println(cli.Muted(fmt.Sprintf("  flipledger room add %d Kitchen 1 --length 12 --width 10", projectID)))
		return nil
	}

	rows := make([][]string, 0, len(rooms))
	for _, r := range rooms {
		sqft := "-"
		if v, ok := r.SquareFootage(); ok {
			sqft = cli.FormatSqft(v)
		}
		rows = append(rows, []string{
			r.Name,
			strconv.Itoa(r.FloorNumber),
			cli.FormatDimensions(r.LengthFt, r.WidthFt, r.HeightFt),
			sqft,
			cli.FormatCondition(r.InitialCondition),
		})
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("ROOMS  %s", project.Name)))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Name", "Floor", "Dimensions", "Area", "Condition"},
		Rows:    rows,
	}))
	return nil
}

func runRoomDelete(_ *cobra.Command, args []string) error {
	projectID, err := parseID(args[0], "project")
	if err != nil {
		return err
	}

	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	room, err := env.projects.GetRoomByName(projectID, args[1])
	if err != nil {
		return err
	}

	if !flagRoomForce {
		if !cli.ConfirmDeletion(room.Name, "room") {
			fmt.Println(cli.Muted("Deletion cancelled."))
			return nil
		}
	}

	ok, err := env.projects.DeleteRoom(room.ID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("room %q not found", args[1])
	}
	env.audit.Event("room_deleted", "project_id", projectID, "id", room.ID, "name", room.Name)

	fmt.Println(cli.Success(fmt.Sprintf("Deleted room: %s (including its expenses)", room.Name)))
	return nil
}
