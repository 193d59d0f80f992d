package store

import (
	"database/sql"
	"errors"
	"time"

	"flipledger/internal/model"
)

const roomColumns = `id, project_id, name, floor_number, length_ft, width_ft, height_ft,
	initial_condition, notes, created_at`

// InsertRoom persists a new room and fills in its id.
func (s *Store) InsertRoom(r *model.Room) error {
	res, err := s.db.Exec(`INSERT INTO rooms
		(project_id, name, floor_number, length_ft, width_ft, height_ft,
		 initial_condition, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ProjectID, r.Name, r.FloorNumber,
		nullFloat(r.LengthFt), nullFloat(r.WidthFt), r.HeightFt,
		r.InitialCondition, nullString(r.Notes), r.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return err
	}
	r.ID, err = res.LastInsertId()
	return err
}

// GetRoom returns the room with the given id, or ErrNotFound.
func (s *Store) GetRoom(id int64) (*model.Room, error) {
	row := s.db.QueryRow(`SELECT `+roomColumns+` FROM rooms WHERE id = ?`, id)
	r, err := scanRoom(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return r, err
}

// GetRoomByName returns the room with the given name in a project. The
// match is case-insensitive and exact. Returns ErrNotFound when absent.
func (s *Store) GetRoomByName(projectID int64, name string) (*model.Room, error) {
	row := s.db.QueryRow(`SELECT `+roomColumns+` FROM rooms
		WHERE project_id = ? AND lower(name) = lower(?)`, projectID, name)
	r, err := scanRoom(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return r, err
}

// ListRooms returns all rooms of a project in creation order.
func (s *Store) ListRooms(projectID int64) ([]model.Room, error) {
	rows, err := s.db.Query(`SELECT `+roomColumns+` FROM rooms WHERE project_id = ? ORDER BY id`, projectID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var rooms []model.Room
	for rows.Next() {
		r, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, *r)
	}
	return rooms, rows.Err()
}

// DeleteRoom removes a room; foreign keys cascade the delete to its
// expenses. Returns false when the room does not exist.
func (s *Store) DeleteRoom(id int64) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM rooms WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func scanRoom(row rowScanner) (*model.Room, error) {
	var r model.Room
	var length, width sql.NullFloat64
	var notes sql.NullString
	var created string

	err := row.Scan(&r.ID, &r.ProjectID, &r.Name, &r.FloorNumber,
		&length, &width, &r.HeightFt, &r.InitialCondition, &notes, &created)
	if err != nil {
		return nil, err
	}

	r.LengthFt = length.Float64
	r.WidthFt = width.Float64
	r.Notes = notes.String
	r.CreatedAt, _ = time.Parse(time.RFC3339, created)
	return &r, nil
}
