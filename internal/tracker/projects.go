// Package tracker holds the project and expense managers and the budget
// summary engine built on top of the entity store.
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

// ProjectManager handles project and room operations.
type ProjectManager struct {
	store *store.Store
	log   *slog.Logger
}

// NewProjectManager returns a manager backed by the given store.
func NewProjectManager(s *store.Store) *ProjectManager {
	return &ProjectManager{
		store: s,
		log:   slog.Default().With("component", "projects"),
	}
}

// CreateProjectParams carries the raw inputs for a new project. Enum fields
// are string literals parsed during creation.
type CreateProjectParams struct {
	Name          string
	Budget        decimal.Decimal
	PropertyType  string
	PropertyClass string
	OwnerID       int64

	Description string
	NumFloors   int     // 0 means default (2)
	TotalSqft   float64 // 0 means unknown
	Address     string
	Priority    string // "" means default (medium)
}

// CreateProject validates the inputs and persists a new project with status
// planning. Enum literals are rejected with a ValidationError listing valid
// choices; a negative budget is rejected with ErrNegativeBudget.
func (m *ProjectManager) CreateProject(params CreateProjectParams) (*model.Project, error) {
	propType, err := model.ParsePropertyType(params.PropertyType)
	if err != nil {
		return nil, err
	}
	propClass, err := model.ParsePropertyClass(params.PropertyClass)
	if err != nil {
		return nil, err
	}

	priority := model.PriorityMedium
	if params.Priority != "" {
		priority, err = model.ParsePriority(params.Priority)
		if err != nil {
			return nil, err
		}
	}

	if params.Budget.IsNegative() {
		return nil, ErrNegativeBudget
	}

	floors := params.NumFloors
	if floors == 0 {
		floors = 2
	}

	now := time.Now().UTC()
	project := &model.Project{
		Name:          params.Name,
		Description:   params.Description,
		TotalBudget:   params.Budget,
		PropertyType:  propType,
		PropertyClass: propClass,
		Status:        model.StatusPlanning,
		Priority:      priority,
		NumFloors:     floors,
		TotalSqft:     params.TotalSqft,
		Address:       params.Address,
		CreatedAt:     now,
		UpdatedAt:     now,
		OwnerID:       params.OwnerID,
	}

	if err := m.store.InsertProject(project); err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}

	m.log.Info("project created", "id", project.ID, "name", project.Name,
		"budget", project.TotalBudget.String())
	return project, nil
}

// ListProjects returns an owner's projects in creation order.
func (m *ProjectManager) ListProjects(ownerID int64) ([]model.Project, error) {
	return m.store.ListProjects(ownerID)
}

// GetProject returns a project by id, or ErrProjectNotFound.
func (m *ProjectManager) GetProject(id int64) (*model.Project, error) {
	p, err := m.store.GetProject(id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrProjectNotFound
	}
	return p, err
}

// UpdateProjectStatus sets a project's status, touching updated_at. Returns
// false without error when the project is absent. Any recognized status
// literal is accepted regardless of the current status.
func (m *ProjectManager) UpdateProjectStatus(id int64, status string) (bool, error) {
	parsed, err := model.ParseProjectStatus(status)
	if err != nil {
		return false, err
	}
	ok, err := m.store.UpdateProjectStatus(id, parsed)
	if err != nil {
		return false, fmt.Errorf("updating project status: %w", err)
	}
	if ok {
		m.log.Info("project status updated", "id", id, "status", status)
	}
	return ok, nil
}

// DeleteProject removes a project and, by cascade, all of its rooms and
// expenses. Returns false without error when the project is absent.
func (m *ProjectManager) DeleteProject(id int64) (bool, error) {
	ok, err := m.store.DeleteProject(id)
	if err != nil {
		return false, fmt.Errorf("deleting project: %w", err)
	}
	if ok {
		m.log.Info("project deleted", "id", id)
	}
	return ok, nil
}

// AddRoomParams carries the raw inputs for a new room.
type AddRoomParams struct {
	ProjectID   int64
	Name        string
	FloorNumber int

	LengthFt  float64 // 0 means absent
	WidthFt   float64 // 0 means absent
	HeightFt  float64 // 0 means default (8.0)
	Condition int
	Notes     string
}

// AddRoom adds a room to an existing project. The condition rating is
// validated here, not at call sites, so every path gets the same check.
// Returns ErrProjectNotFound when the project is absent.
func (m *ProjectManager) AddRoom(params AddRoomParams) (*model.Room, error) {
	if !validCondition(params.Condition) {
		return nil, ErrConditionRange
	}

	height := params.HeightFt
	if height == 0 {
		height = 8.0
	}

	if _, err := m.GetProject(params.ProjectID); err != nil {
		return nil, err
	}

	room := &model.Room{
		ProjectID:        params.ProjectID,
		Name:             params.Name,
		FloorNumber:      params.FloorNumber,
		LengthFt:         params.LengthFt,
		WidthFt:          params.WidthFt,
		HeightFt:         height,
		InitialCondition: params.Condition,
		Notes:            params.Notes,
		CreatedAt:        time.Now().UTC(),
	}

	if err := m.store.InsertRoom(room); err != nil {
		return nil, fmt.Errorf("adding room: %w", err)
	}

	m.log.Info("room added", "project_id", room.ProjectID, "id", room.ID, "name", room.Name)
	return room, nil
}

// ListRooms returns a project's rooms in creation order.
func (m *ProjectManager) ListRooms(projectID int64) ([]model.Room, error) {
	return m.store.ListRooms(projectID)
}

// GetRoomByName resolves a room by name within a project. The comparison
// is case-insensitive and exact. Returns ErrRoomNotFound when absent.
func (m *ProjectManager) GetRoomByName(projectID int64, name string) (*model.Room, error) {
	r, err := m.store.GetRoomByName(projectID, name)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrRoomNotFound
	}
	return r, err
}

// DeleteRoom removes a room and, by cascade, its expenses. Expenses of
// sibling rooms are untouched. Returns false without error when absent.
func (m *ProjectManager) DeleteRoom(id int64) (bool, error) {
	ok, err := m.store.DeleteRoom(id)
	if err != nil {
		return false, fmt.Errorf("deleting room: %w", err)
	}
	if ok {
		m.log.Info("room deleted", "id", id)
	}
	return ok, nil
}
