package tracker

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"flipledger/internal/model"
	"flipledger/internal/store"

	"github.com/shopspring/decimal"
)

// ExpenseManager handles expense operations and budget summaries.
type ExpenseManager struct {
	store *store.Store
	log   *slog.Logger
}

// NewExpenseManager returns a manager backed by the given store.
func NewExpenseManager(s *store.Store) *ExpenseManager {
	return &ExpenseManager{
		store: s,
		log:   slog.Default().With("component", "expenses"),
	}
}

// AddExpenseParams carries the raw inputs for a new expense. The room is
// resolved by name within the project, case-insensitively.
type AddExpenseParams struct {
	ProjectID int64
	RoomName  string
	Category  string
	Cost      decimal.Decimal

	LaborHours      float64
	ConditionRating int
	Notes           string
	Date            time.Time // zero means now
}

// AddExpense validates and persists an expense against a project room.
// Returns ErrRoomNotFound when the room does not resolve, leaving exit
// behavior to the caller.
func (m *ExpenseManager) AddExpense(params AddExpenseParams) (*model.Expense, error) {
	category, err := model.ParseExpenseCategory(params.Category)
	if err != nil {
		return nil, err
	}
	if params.Cost.IsNegative() {
		return nil, ErrNegativeCost
	}

	if !validCondition(params.ConditionRating) {
		return nil, ErrConditionRange
	}

	room, err := m.store.GetRoomByName(params.ProjectID, params.RoomName)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, err
	}

	date := params.Date
	if date.IsZero() {
		date = time.Now()
	}

	expense := &model.Expense{
		ProjectID:       params.ProjectID,
		RoomID:          room.ID,
		Date:            date,
		Category:        category,
		Cost:            params.Cost,
		LaborHours:      params.LaborHours,
		ConditionRating: params.ConditionRating,
		Notes:           params.Notes,
		CreatedAt:       time.Now().UTC(),
	}

	if err := m.store.InsertExpense(expense); err != nil {
		return nil, fmt.Errorf("adding expense: %w", err)
	}

	m.log.Info("expense added", "project_id", expense.ProjectID, "room", room.Name,
		"category", string(category), "cost", expense.Cost.String())
	return expense, nil
}

// ListExpenses returns all expenses of a project, unordered.
func (m *ExpenseManager) ListExpenses(projectID int64) ([]model.Expense, error) {
	return m.store.ListExpenses(projectID)
}

// GetRoomExpenses returns the expenses of one room, resolved by name.
// An absent room yields an empty slice, not an error.
func (m *ExpenseManager) GetRoomExpenses(projectID int64, roomName string) ([]model.Expense, error) {
	room, err := m.store.GetRoomByName(projectID, roomName)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return m.store.ListRoomExpenses(projectID, room.ID)
}

// DeleteExpense removes a single expense. Returns false without error when
// it does not exist.
func (m *ExpenseManager) DeleteExpense(id int64) (bool, error) {
	ok, err := m.store.DeleteExpense(id)
	if err != nil {
		return false, fmt.Errorf("deleting expense: %w", err)
	}
	if ok {
		m.log.Info("expense deleted", "id", id)
	}
	return ok, nil
}

// GetExpense returns an expense by id, or ErrExpenseNotFound.
func (m *ExpenseManager) GetExpense(id int64) (*model.Expense, error) {
	e, err := m.store.GetExpense(id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrExpenseNotFound
	}
	return e, err
}

// GetProjectSummary computes the budget summary for a project. Returns
// ErrProjectNotFound when the project is absent.
func (m *ExpenseManager) GetProjectSummary(projectID int64) (*model.ProjectSummary, error) {
	project, err := m.store.GetProject(projectID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrProjectNotFound
	}
	if err != nil {
		return nil, err
	}

	expenses, err := m.store.ListExpenses(projectID)
	if err != nil {
		return nil, err
	}

	summary := SummarizeProject(project, expenses)
	return &summary, nil
}

// GetRoomSummary computes the summary for one room, resolved by name.
// Returns ErrRoomNotFound when the room is absent.
func (m *ExpenseManager) GetRoomSummary(projectID int64, roomName string) (*model.RoomSummary, error) {
	room, err := m.store.GetRoomByName(projectID, roomName)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, err
	}

	expenses, err := m.store.ListRoomExpenses(projectID, room.ID)
	if err != nil {
		return nil, err
	}

	summary := SummarizeRoom(room, expenses)
	return &summary, nil
}
