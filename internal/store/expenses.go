package store

import (
	"database/sql"
	"errors"
	"time"

	"flipledger/internal/model"

	"github.com/shopspring/decimal"
)

const expenseColumns = `id, project_id, room_id, date, category, cost, labor_hours,
	condition_rating, notes, is_over_template, template_variance_pct, created_at`

// InsertExpense persists a new expense inside a transaction, verifying that
// the referenced room belongs to the expense's project. Fills in the
// expense id on success; nothing is committed on failure.
func (s *Store) InsertExpense(e *model.Expense) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var roomProject int64
	err = tx.QueryRow(`SELECT project_id FROM rooms WHERE id = ?`, e.RoomID).Scan(&roomProject)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if roomProject != e.ProjectID {
		return ErrRoomProjectMismatch
	}

	overTemplate := 0
	if e.OverTemplate {
		overTemplate = 1
	}

	res, err := tx.Exec(`INSERT INTO expenses
		(project_id, room_id, date, category, cost, labor_hours,
		 condition_rating, notes, is_over_template, template_variance_pct, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ProjectID, e.RoomID, e.Date.Format(time.RFC3339), string(e.Category),
		e.Cost.String(), e.LaborHours, e.ConditionRating, nullString(e.Notes),
		overTemplate, nullFloat(e.TemplateVariancePct), e.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return err
	}
	e.ID, err = res.LastInsertId()
	if err != nil {
		return err
	}

	return tx.Commit()
}

// GetExpense returns the expense with the given id, or ErrNotFound.
func (s *Store) GetExpense(id int64) (*model.Expense, error) {
	row := s.db.QueryRow(`SELECT `+expenseColumns+` FROM expenses WHERE id = ?`, id)
	e, err := scanExpense(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return e, err
}

// ListExpenses returns all expenses of a project. Order is unspecified at
// this boundary; callers sort by date as needed.
func (s *Store) ListExpenses(projectID int64) ([]model.Expense, error) {
	return s.queryExpenses(`SELECT `+expenseColumns+` FROM expenses WHERE project_id = ?`, projectID)
}

// ListRoomExpenses returns all expenses of one room within a project.
func (s *Store) ListRoomExpenses(projectID, roomID int64) ([]model.Expense, error) {
	return s.queryExpenses(`SELECT `+expenseColumns+` FROM expenses
		WHERE project_id = ? AND room_id = ?`, projectID, roomID)
}

// DeleteExpense removes a single expense. Returns false when it does not
// exist.
func (s *Store) DeleteExpense(id int64) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM expenses WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (s *Store) queryExpenses(query string, args ...any) ([]model.Expense, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var expenses []model.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, *e)
	}
	return expenses, rows.Err()
}

func scanExpense(row rowScanner) (*model.Expense, error) {
	var e model.Expense
	var notes sql.NullString
	var variance sql.NullFloat64
	var overTemplate int
	var date, category, cost, created string

	err := row.Scan(&e.ID, &e.ProjectID, &e.RoomID, &date, &category, &cost,
		&e.LaborHours, &e.ConditionRating, &notes, &overTemplate, &variance, &created)
	if err != nil {
		return nil, err
	}

	e.Category = model.ExpenseCategory(category)
	e.Notes = notes.String
	e.OverTemplate = overTemplate != 0
	e.TemplateVariancePct = variance.Float64
	e.Date, _ = time.Parse(time.RFC3339, date)
	e.CreatedAt, _ = time.Parse(time.RFC3339, created)

	e.Cost, err = decimal.NewFromString(cost)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
