package store

import (
	"database/sql"
	"errors"
	"time"

	"flipledger/internal/model"
)

// CreateOwner inserts a new owner and returns it with its assigned id.
func (s *Store) CreateOwner(name, credentialHash string, role model.Role) (*model.Owner, error) {
	now := time.Now().UTC()
	res, err := s.db.Exec(
		`INSERT INTO owners (name, credential_hash, role, created_at) VALUES (?, ?, ?, ?)`,
		name, credentialHash, string(role), now.Format(time.RFC3339),
	)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &model.Owner{
		ID:             id,
		Name:           name,
		CredentialHash: credentialHash,
		Role:           role,
		CreatedAt:      now,
	}, nil
}

// GetOwnerByName returns the owner with the given name, or ErrNotFound.
func (s *Store) GetOwnerByName(name string) (*model.Owner, error) {
	var o model.Owner
	var role, created string
	err := s.db.QueryRow(
		`SELECT id, name, credential_hash, role, created_at FROM owners WHERE name = ?`, name,
	).Scan(&o.ID, &o.Name, &o.CredentialHash, &role, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	o.Role = model.Role(role)
	o.CreatedAt, _ = time.Parse(time.RFC3339, created)
	return &o, nil
}

// CountOwners returns how many owners exist.
func (s *Store) CountOwners() (int, error) {
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM owners").Scan(&n)
	return n, err
}
