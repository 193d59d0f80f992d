package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"flipledger/internal/cli"
	"flipledger/internal/model"
	"flipledger/internal/tracker"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var expenseCmd = &cobra.Command{
	Use:   "expense",
	Short: "Expense management commands",
}

var (
	flagExpenseHours     float64
	flagExpenseCondition int
	flagExpenseNotes     string
	flagExpenseDate      string
	flagExpenseRoom      string
	flagExpenseForce     bool
)

var expenseAddCmd = &cobra.Command{
	Use:   "add PROJECT_ID ROOM_NAME CATEGORY COST",
	Short: "Record an expense against a project room",
	Args:  cobra.ExactArgs(4),
	RunE:  runExpenseAdd,
}

var expenseListCmd = &cobra.Command{
	Use:   "list PROJECT_ID",
	Short: "List a project's expenses, newest first",
	Args:  cobra.ExactArgs(1),
	RunE:  runExpenseList,
}

var expenseDeleteCmd = &cobra.Command{
	Use:   "delete EXPENSE_ID",
	Short: "Delete a single expense",
	Args:  cobra.ExactArgs(1),
	RunE:  runExpenseDelete,
}

func init() {
	expenseAddCmd.Flags().Float64Var(&flagExpenseHours, "hours", 0, "Labor hours (labor category)")
	expenseAddCmd.Flags().IntVarP(&flagExpenseCondition, "condition", "c", 3, "Condition rating after work (1-5)")
	expenseAddCmd.Flags().StringVarP(&flagExpenseNotes, "notes", "n", "", "Expense notes")
	expenseAddCmd.Flags().StringVar(&flagExpenseDate, "date", "", "Expense date (YYYY-MM-DD, default today)")
	expenseListCmd.Flags().StringVarP(&flagExpenseRoom, "room", "r", "", "Only expenses of this room")
	expenseDeleteCmd.Flags().BoolVarP(&flagExpenseForce, "force", "f", false, "Skip confirmation prompt")

	expenseCmd.AddCommand(expenseAddCmd)
	expenseCmd.AddCommand(expenseListCmd)
	expenseCmd.AddCommand(expenseDeleteCmd)
	rootCmd.AddCommand(expenseCmd)
}

func runExpenseAdd(_ *cobra.Command, args []string) error {
	projectID, err := parseID(args[0], "project")
	if err != nil {
		return err
	}
	cost, err := decimal.NewFromString(args[3])
	if err != nil {
		return fmt.Errorf("invalid cost %q", args[3])
	}

	var date time.Time
	if flagExpenseDate != "" {
		date, err = time.ParseInLocation("2006-01-02", flagExpenseDate, time.Local)
		if err != nil {
			return fmt.Errorf("invalid date %q (want YYYY-MM-DD)", flagExpenseDate)
		}
	}

	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	expense, err := env.expenses.AddExpense(tracker.AddExpenseParams{
		ProjectID:       projectID,
		RoomName:        args[1],
		Category:        args[2],
		Cost:            cost,
		LaborHours:      flagExpenseHours,
		ConditionRating: flagExpenseCondition,
		Notes:           flagExpenseNotes,
		Date:            date,
	})
	if err != nil {
		return err
	}
	env.audit.Event("expense_added", "project_id", projectID, "id", expense.ID,
		"category", string(expense.Category), "cost", expense.Cost.String())

	fmt.Println(cli.Success(fmt.Sprintf("Recorded %s expense: %s (%s)",
		string(expense.Category), cli.FormatCurrency(expense.Cost), args[1])))
	if expense.LaborHours > 0 {
		fmt.Printf("  Labor: %s\n", cli.FormatHours(expense.LaborHours))
	}
	return nil
}

func runExpenseList(_ *cobra.Command, args []string) error {
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

	var expenses []model.Expense
	if flagExpenseRoom != "" {
		expenses, err = env.expenses.GetRoomExpenses(projectID, flagExpenseRoom)
	} else {
		expenses, err = env.expenses.ListExpenses(projectID)
	}
	if err != nil {
		return err
	}
	if len(expenses) == 0 {
		fmt.Println(cli.Muted("No expenses recorded yet."))
		return nil
	}

	// Newest first for display; the API itself leaves order unspecified.
	sort.Slice(expenses, func(i, j int) bool {
		return expenses[i].Date.After(expenses[j].Date)
	})

	rooms, err := env.projects.ListRooms(projectID)
	if err != nil {
		return err
	}
	roomNames := make(map[int64]string, len(rooms))
	for _, r := range rooms {
		roomNames[r.ID] = r.Name
	}

	total := decimal.Zero
	rows := make([][]string, 0, len(expenses))
	for _, e := range expenses {
		total = total.Add(e.Cost)
		hours := ""
		if e.LaborHours > 0 {
			hours = cli.FormatHours(e.LaborHours)
		}
		rows = append(rows, []string{
			strconv.FormatInt(e.ID, 10),
			e.Date.Format("2006-01-02"),
			roomNames[e.RoomID],
			cli.TitleCase(string(e.Category)),
			cli.FormatCurrency(e.Cost),
			hours,
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"", "", "", "Total", cli.FormatCurrency(total), ""})

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("EXPENSES  %s", project.Name)))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Date", "Room", "Category", "Cost", "Hours"},
		Rows:    rows,
	}))
	return nil
}

func runExpenseDelete(_ *cobra.Command, args []string) error {
	id, err := parseID(args[0], "expense")
	if err != nil {
		return err
	}

	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	expense, err := env.expenses.GetExpense(id)
	if err != nil {
		return err
	}

	if !flagExpenseForce {
		if !cli.ConfirmDeletion(cli.FormatCurrency(expense.Cost), "expense") {
			fmt.Println(cli.Muted("Deletion cancelled."))
			return nil
		}
	}

	ok, err := env.expenses.DeleteExpense(id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("expense %d not found", id)
	}
	env.audit.Event("expense_deleted", "id", id, "cost", expense.Cost.String())

	fmt.Println(cli.Success(fmt.Sprintf("Deleted expense: %s", cli.FormatCurrency(expense.Cost))))
	return nil
}
