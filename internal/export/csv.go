// Package export serializes project data to CSV files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"flipledger/internal/cli"
	"flipledger/internal/model"
)

const safeFilenameChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789.-_"

// SanitizeFilename strips directory components and replaces unsafe
// characters so user-provided names cannot traverse paths.
func SanitizeFilename(name string) string {
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	if !strings.HasSuffix(name, ".csv") {
		name += ".csv"
	}

	var b strings.Builder
	for _, r := range name {
		if strings.ContainsRune(safeFilenameChars, r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

// DefaultProjectFilename derives an export filename from a project name.
func DefaultProjectFilename(projectName string) string {
	var b strings.Builder
	for _, r := range projectName {
		switch {
		case strings.ContainsRune(safeFilenameChars, r):
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('_')
		}
	}
	return b.String() + "_export.csv"
}

// ProjectData bundles everything a per-project export needs.
type ProjectData struct {
	Project  *model.Project
	Summary  *model.ProjectSummary
	Rooms    []model.Room
	Expenses []model.Expense
}

// WriteProject writes a full project export: header block, financial
// summary, room table and date-sorted expense table.
func WriteProject(w io.Writer, data ProjectData, includeRooms, includeExpenses bool) error {
	cw := csv.NewWriter(w)
	p := data.Project

	rows := [][]string{
		{"flipledger - Project Export"},
		{},
		{"Project Details"},
		{"Name", p.Name},
		{"Status", cli.TitleCase(string(p.Status))},
		{"Property Type", cli.TitleCase(string(p.PropertyType))},
		{"Property Class", strings.ToUpper(string(p.PropertyClass))},
		{"Created", p.CreatedAt.Format("2006-01-02")},
	}
	if p.Address != "" {
		rows = append(rows, []string{"Address", p.Address})
	}
	if p.Description != "" {
		rows = append(rows, []string{"Description", p.Description})
	}
	rows = append(rows, []string{})

	rows = append(rows, []string{"Financial Summary"})
	s := data.Summary
	rows = append(rows,
		[]string{"Total Budget", s.TotalBudget.StringFixed(2)},
		[]string{"Total Spent", s.TotalSpent.StringFixed(2)},
		[]string{"Remaining Budget", s.RemainingBudget.StringFixed(2)},
		[]string{"Budget Used %", fmt.Sprintf("%.1f%%", s.BudgetUsedPct)},
		[]string{"Material Costs", s.MaterialCosts.StringFixed(2)},
		[]string{"Labor Costs", s.LaborCosts.StringFixed(2)},
		[]string{"Total Labor Hours", fmt.Sprintf("%.1f", s.TotalLaborHours)},
	)
	if s.HasCostPerSqft {
		rows = append(rows, []string{"Cost per Sq Ft", s.CostPerSqft.StringFixed(2)})
	}
	rows = append(rows, []string{})

	if includeRooms && len(data.Rooms) > 0 {
		rows = append(rows, []string{"Room Details"})
		rows = append(rows, []string{
			"Room Name", "Floor", "Square Footage", "Initial Condition",
			"Length (ft)", "Width (ft)", "Height (ft)", "Notes",
		})
		for _, r := range data.Rooms {
			sqft := ""
			if v, ok := r.SquareFootage(); ok {
				sqft = fmt.Sprintf("%g", v)
			}
			rows = append(rows, []string{
				r.Name,
				fmt.Sprintf("%d", r.FloorNumber),
				sqft,
				cli.FormatCondition(r.InitialCondition),
				optFloat(r.LengthFt),
				optFloat(r.WidthFt),
				optFloat(r.HeightFt),
				r.Notes,
			})
		}
		rows = append(rows, []string{})
	}

	if includeExpenses && len(data.Expenses) > 0 {
		roomNames := make(map[int64]string, len(data.Rooms))
		for _, r := range data.Rooms {
			roomNames[r.ID] = r.Name
		}

		expenses := make([]model.Expense, len(data.Expenses))
		copy(expenses, data.Expenses)
		sort.Slice(expenses, func(i, j int) bool {
			return expenses[i].CreatedAt.Before(expenses[j].CreatedAt)
		})

		rows = append(rows, []string{"Expense Details"})
		rows = append(rows, []string{
			"Date", "Room", "Category", "Cost", "Labor Hours", "Condition Rating", "Notes",
		})
		for _, e := range expenses {
			hours := ""
			if e.LaborHours > 0 {
				hours = fmt.Sprintf("%g", e.LaborHours)
			}
			rows = append(rows, []string{
				e.Date.Format("2006-01-02"),
				roomNames[e.RoomID],
				cli.TitleCase(string(e.Category)),
				e.Cost.StringFixed(2),
				hours,
				cli.FormatCondition(e.ConditionRating),
				e.Notes,
			})
		}
	}

	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("writing project export: %w", err)
	}
	return nil
}

// SummaryRow pairs a project with its computed summary and room count for
// the all-projects export.
type SummaryRow struct {
	Project   model.Project
	Summary   model.ProjectSummary
	RoomCount int
}

// WriteSummary writes the all-projects summary table.
func WriteSummary(w io.Writer, items []SummaryRow, generatedAt time.Time) error {
	cw := csv.NewWriter(w)

	rows := [][]string{
		{"flipledger - Project Summary"},
		{},
		{"Generated", generatedAt.Format("2006-01-02 15:04:05")},
		{},
		{
			"Project ID", "Project Name", "Status", "Property Type", "Property Class",
			"Total Budget", "Total Spent", "Remaining Budget", "Budget Used %",
			"Material Costs", "Labor Costs", "Labor Hours",
			"Room Count", "Expense Count", "Created Date",
		},
	}

	for _, item := range items {
		p, s := item.Project, item.Summary
		rows = append(rows, []string{
			fmt.Sprintf("%d", p.ID),
			p.Name,
			cli.TitleCase(string(p.Status)),
			cli.TitleCase(string(p.PropertyType)),
			strings.ToUpper(string(p.PropertyClass)),
			s.TotalBudget.StringFixed(2),
			s.TotalSpent.StringFixed(2),
			s.RemainingBudget.StringFixed(2),
			fmt.Sprintf("%.1f%%", s.BudgetUsedPct),
			s.MaterialCosts.StringFixed(2),
			s.LaborCosts.StringFixed(2),
			fmt.Sprintf("%.1f", s.TotalLaborHours),
			fmt.Sprintf("%d", item.RoomCount),
			fmt.Sprintf("%d", s.ExpenseCount),
			p.CreatedAt.Format("2006-01-02"),
		})
	}

	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("writing summary export: %w", err)
	}
	return nil
}

func optFloat(f float64) string {
	if f == 0 {
		return ""
	}
	return fmt.Sprintf("%g", f)
}
