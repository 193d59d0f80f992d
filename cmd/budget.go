package cmd

import (
	"fmt"
	"sort"
	"strconv"

	"flipledger/internal/cli"
	"flipledger/internal/model"

	"github.com/spf13/cobra"
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Budget analysis commands",
}

var budgetStatusCmd = &cobra.Command{
	Use:   "status PROJECT_ID",
	Short: "Budget status and alerts for one project",
	Args:  cobra.ExactArgs(1),
	RunE:  runBudgetStatus,
}

var budgetSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Budget overview of every project",
	Args:  cobra.NoArgs,
	RunE:  runBudgetSummary,
}

func init() {
	budgetCmd.AddCommand(budgetStatusCmd)
	budgetCmd.AddCommand(budgetSummaryCmd)
	rootCmd.AddCommand(budgetCmd)
}

func runBudgetStatus(_ *cobra.Command, args []string) error {
	projectID, err := parseID(args[0], "project")
	if err != nil {
		return err
	}

	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	summary, err := env.expenses.GetProjectSummary(projectID)
	if err != nil {
		return err
	}

	warn := env.cfg.Budget.WarnPct
	critical := env.cfg.Budget.CriticalPct

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("BUDGET  %s", summary.ProjectName)))
	fmt.Println()

	rows := [][]string{
		{"Total Budget", cli.FormatCurrency(summary.TotalBudget)},
		{"Total Spent", cli.FormatCurrency(summary.TotalSpent)},
		{"Remaining", cli.FormatCurrency(summary.RemainingBudget)},
		{"Budget Used", cli.FormatPercent(summary.BudgetUsedPct)},
		{"---"},
		{"Material Costs", cli.FormatCurrency(summary.MaterialCosts)},
		{"Labor Costs", fmt.Sprintf("%s (%s)", cli.FormatCurrency(summary.LaborCosts), cli.FormatHours(summary.TotalLaborHours))},
		{"Expenses", cli.FormatNumber(int64(summary.ExpenseCount))},
	}
	if summary.HasCostPerSqft {
		rows = append(rows, []string{"Cost per Sq Ft", cli.FormatCurrency(summary.CostPerSqft)})
	}
	fmt.Print(cli.RenderTable(cli.Table{Rows: rows}))

	fmt.Println()
	fmt.Println("  " + cli.RenderBudgetBar(summary.BudgetUsedPct, warn, critical, 50))

	switch {
	case summary.OverBudget:
		over := summary.RemainingBudget.Neg()
		fmt.Println()
		fmt.Println(cli.Errorf("BUDGET EXCEEDED by %s", cli.FormatCurrency(over)))
		fmt.Println(cli.Muted("  - Review remaining work scope"))
		fmt.Println(cli.Muted("  - Identify cost-cutting opportunities"))
		fmt.Println(cli.Muted("  - Update project budget if justified"))
	case summary.BudgetUsedPct >= critical:
		fmt.Println()
		fmt.Println(cli.Warning(fmt.Sprintf("BUDGET WARNING: %s used, monitor closely", cli.FormatPercent(summary.BudgetUsedPct))))
	case summary.BudgetUsedPct >= warn:
		fmt.Println()
		fmt.Println(cli.Warning(fmt.Sprintf("BUDGET ALERT: approaching limit, %s remaining", cli.FormatPercent(100-summary.BudgetUsedPct))))
	}

	if summary.ExpenseCount == 0 {
		fmt.Println()
		fmt.Println(cli.Muted("No expenses recorded yet."))
		return nil
	}

	// Per-room breakdown, biggest spenders first.
	rooms, err := env.projects.ListRooms(projectID)
	if err != nil {
		return err
	}
	if len(rooms) > 1 {
		roomSummaries := make([]model.RoomSummary, 0, len(rooms))
		for _, r := range rooms {
			rs, err := env.expenses.GetRoomSummary(projectID, r.Name)
			if err != nil {
				return err
			}
			if rs.ExpenseCount > 0 {
				roomSummaries = append(roomSummaries, *rs)
			}
		}
		sort.Slice(roomSummaries, func(i, j int) bool {
			return roomSummaries[i].TotalSpent.GreaterThan(roomSummaries[j].TotalSpent)
		})

		breakdown := make([][]string, 0, len(roomSummaries))
		for _, rs := range roomSummaries {
			pctOfBudget := 0.0
			if summary.TotalBudget.IsPositive() {
				pctOfBudget = rs.TotalSpent.Div(summary.TotalBudget).InexactFloat64() * 100
			}
			breakdown = append(breakdown, []string{
				rs.RoomName,
				cli.FormatCurrency(rs.TotalSpent),
				cli.FormatCurrency(rs.MaterialCosts),
				fmt.Sprintf("%s (%s)", cli.FormatCurrency(rs.LaborCosts), cli.FormatHours(rs.TotalLaborHours)),
				cli.FormatPercent(pctOfBudget),
			})
		}

		fmt.Println()
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Cost Breakdown by Room",
			Headers: []string{"Room", "Spent", "Materials", "Labor", "% of Budget"},
			Rows:    breakdown,
		}))
	}

	return nil
}

func runBudgetSummary(_ *cobra.Command, _ []string) error {
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
		fmt.Println(cli.Muted("No projects found."))
		return nil
	}

	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		s, err := env.expenses.GetProjectSummary(p.ID)
		if err != nil {
			return err
		}
		flag := ""
		if s.OverBudget {
			flag = "OVER"
		}
		rows = append(rows, []string{
			strconv.FormatInt(p.ID, 10),
			p.Name,
			cli.FormatCurrency(s.TotalBudget),
			cli.FormatCurrency(s.TotalSpent),
			cli.FormatCurrency(s.RemainingBudget),
			cli.FormatPercent(s.BudgetUsedPct),
			flag,
		})
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("BUDGET SUMMARY"))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Project", "Budget", "Spent", "Remaining", "Used", ""},
		Rows:    rows,
	}))
	return nil
}
