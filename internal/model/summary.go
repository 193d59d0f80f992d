package model

import "github.com/shopspring/decimal"

// ProjectSummary is the aggregate financial view of a project.
type ProjectSummary struct {
	ProjectID   int64
	ProjectName string

	TotalBudget     decimal.Decimal
	TotalSpent      decimal.Decimal
	RemainingBudget decimal.Decimal // negative when over budget
	BudgetUsedPct   float64         // 0 by convention when budget is 0

	MaterialCosts   decimal.Decimal
	LaborCosts      decimal.Decimal
	TotalLaborHours float64

	CostPerSqft    decimal.Decimal
	HasCostPerSqft bool // false when the project has no recorded area

	ExpenseCount int
	OverBudget   bool
}

// RoomSummary is the aggregate financial view of a single room.
type RoomSummary struct {
	RoomID   int64
	RoomName string

	TotalSpent      decimal.Decimal
	MaterialCosts   decimal.Decimal
	LaborCosts      decimal.Decimal
	TotalLaborHours float64

	SquareFootage    float64
	HasSquareFootage bool
	CostPerSqft      decimal.Decimal
	HasCostPerSqft   bool

	ExpenseCount int
}
