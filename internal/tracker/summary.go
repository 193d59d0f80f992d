package tracker

import (
	"flipledger/internal/model"

	"github.com/shopspring/decimal"
)

// SummarizeProject aggregates a project's expenses into its budget summary.
// Pure: it reads nothing beyond its arguments. Zero expenses yield an
// all-zero summary; a zero budget yields a 0 used-percentage by convention
// (OverBudget still compares absolute amounts, so it stays meaningful).
func SummarizeProject(p *model.Project, expenses []model.Expense) model.ProjectSummary {
	totals := sumExpenses(expenses)

	s := model.ProjectSummary{
		ProjectID:       p.ID,
		ProjectName:     p.Name,
		TotalBudget:     p.TotalBudget,
		TotalSpent:      totals.spent,
		RemainingBudget: p.TotalBudget.Sub(totals.spent),
		MaterialCosts:   totals.material,
		LaborCosts:      totals.labor,
		TotalLaborHours: totals.hours,
		ExpenseCount:    len(expenses),
		OverBudget:      totals.spent.GreaterThan(p.TotalBudget),
	}

	if p.TotalBudget.IsPositive() {
		s.BudgetUsedPct = totals.spent.Div(p.TotalBudget).InexactFloat64() * 100
	}

	if p.TotalSqft > 0 {
		s.CostPerSqft = totals.spent.Div(decimal.NewFromFloat(p.TotalSqft))
		s.HasCostPerSqft = true
	}

	return s
}

// SummarizeRoom aggregates one room's expenses. Cost per square foot is
// only defined when the room has both length and width recorded.
func SummarizeRoom(r *model.Room, expenses []model.Expense) model.RoomSummary {
	totals := sumExpenses(expenses)

	s := model.RoomSummary{
		RoomID:          r.ID,
		RoomName:        r.Name,
		TotalSpent:      totals.spent,
		MaterialCosts:   totals.material,
		LaborCosts:      totals.labor,
		TotalLaborHours: totals.hours,
		ExpenseCount:    len(expenses),
	}

	if sqft, ok := r.SquareFootage(); ok {
		s.SquareFootage = sqft
		s.HasSquareFootage = true
		if sqft > 0 {
			s.CostPerSqft = totals.spent.Div(decimal.NewFromFloat(sqft))
			s.HasCostPerSqft = true
		}
	}

	return s
}

type expenseTotals struct {
	spent    decimal.Decimal
	material decimal.Decimal
	labor    decimal.Decimal
	hours    float64
}

func sumExpenses(expenses []model.Expense) expenseTotals {
	var t expenseTotals
	for _, e := range expenses {
		t.spent = t.spent.Add(e.Cost)
		t.hours += e.LaborHours
		switch e.Category {
		case model.CategoryMaterial:
			t.material = t.material.Add(e.Cost)
		case model.CategoryLabor:
			t.labor = t.labor.Add(e.Cost)
		}
	}
	return t
}
