package store

import (
	"database/sql"
	"errors"
	"time"

	"flipledger/internal/model"

	"github.com/shopspring/decimal"
)

const projectColumns = `id, name, description, total_budget, property_type, property_class,
	status, priority, num_floors, total_sqft, address, created_at, updated_at, owner_id`

// InsertProject persists a new project and fills in its id.
func (s *Store) InsertProject(p *model.Project) error {
	res, err := s.db.Exec(`INSERT INTO projects
		(name, description, total_budget, property_type, property_class,
		 status, priority, num_floors, total_sqft, address, created_at, updated_at, owner_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Name, nullString(p.Description), p.TotalBudget.String(),
		string(p.PropertyType), string(p.PropertyClass),
		string(p.Status), string(p.Priority),
		p.NumFloors, nullFloat(p.TotalSqft), nullString(p.Address),
		p.CreatedAt.Format(time.RFC3339), p.UpdatedAt.Format(time.RFC3339), p.OwnerID,
	)
	if err != nil {
		return err
	}
	p.ID, err = res.LastInsertId()
	return err
}

// GetProject returns the project with the given id, or ErrNotFound.
func (s *Store) GetProject(id int64) (*model.Project, error) {
	row := s.db.QueryRow(`SELECT `+projectColumns+` FROM projects WHERE id = ?`, id)
	p, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return p, err
}

// ListProjects returns all projects for an owner in creation order.
func (s *Store) ListProjects(ownerID int64) ([]model.Project, error) {
	rows, err := s.db.Query(`SELECT `+projectColumns+` FROM projects WHERE owner_id = ? ORDER BY id`, ownerID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var projects []model.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *p)
	}
	return projects, rows.Err()
}

// UpdateProjectStatus sets a project's status and updated_at timestamp.
// Returns false when the project does not exist.
func (s *Store) UpdateProjectStatus(id int64, status model.ProjectStatus) (bool, error) {
	res, err := s.db.Exec(`UPDATE projects SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), time.Now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// DeleteProject removes a project. Foreign keys cascade the delete to the
// project's rooms and expenses. Returns false when the project does not
// exist.
func (s *Store) DeleteProject(id int64) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*model.Project, error) {
	var p model.Project
	var desc, address sql.NullString
	var sqft sql.NullFloat64
	var budget, ptype, pclass, status, priority, created, updated string

	err := row.Scan(&p.ID, &p.Name, &desc, &budget, &ptype, &pclass,
		&status, &priority, &p.NumFloors, &sqft, &address, &created, &updated, &p.OwnerID)
	if err != nil {
		return nil, err
	}

	p.Description = desc.String
	p.Address = address.String
	p.TotalSqft = sqft.Float64
	p.PropertyType = model.PropertyType(ptype)
	p.PropertyClass = model.PropertyClass(pclass)
	p.Status = model.ProjectStatus(status)
	p.Priority = model.Priority(priority)
	p.CreatedAt, _ = time.Parse(time.RFC3339, created)
	p.UpdatedAt, _ = time.Parse(time.RFC3339, updated)

	p.TotalBudget, err = decimal.NewFromString(budget)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullFloat(f float64) any {
	if f == 0 {
		return nil
	}
	return f
}
