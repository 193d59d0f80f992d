// Package model defines the domain entities for flipledger: owners,
// renovation projects, rooms, and expenses.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Owner identifies who owns projects. A default owner is provisioned at
// init time; owners are never auto-deleted.
type Owner struct {
	ID             int64
	Name           string
	CredentialHash string
	Role           Role
	CreatedAt      time.Time
}

// Project is a single renovation effort with a budget, tracked through a
// lifecycle status. It owns its rooms and expenses: deleting a project
// cascades to both.
type Project struct {
	ID            int64
	Name          string
	Description   string
	TotalBudget   decimal.Decimal
	PropertyType  PropertyType
	PropertyClass PropertyClass
	Status        ProjectStatus
	Priority      Priority

	NumFloors int
	TotalSqft float64 // 0 means unknown
	Address   string

	CreatedAt time.Time
	UpdatedAt time.Time

	OwnerID int64
}

// Room is a physical space within a project, the unit expenses are
// attributed to. Names are unique within a project, compared
// case-insensitively.
type Room struct {
	ID          int64
	ProjectID   int64
	Name        string
	FloorNumber int

	// Dimensions in feet. Length and width may be absent (0).
	LengthFt float64
	WidthFt  float64
	HeightFt float64

	InitialCondition int // 1-5 scale
	Notes            string
	CreatedAt        time.Time
}

// SquareFootage returns length x width and true when both dimensions are
// present, else false.
func (r Room) SquareFootage() (float64, bool) {
	if r.LengthFt > 0 && r.WidthFt > 0 {
		return r.LengthFt * r.WidthFt, true
	}
	return 0, false
}

// Expense is a single material or labor cost entry attributed to a room.
// Its room always belongs to the same project the expense references.
type Expense struct {
	ID        int64
	ProjectID int64
	RoomID    int64

	Date            time.Time
	Category        ExpenseCategory
	Cost            decimal.Decimal
	LaborHours      float64
	ConditionRating int // 1-5 scale
	Notes           string

	// Reserved for budgeting-template comparisons.
	OverTemplate        bool
	TemplateVariancePct float64

	CreatedAt time.Time
}

// StandardRooms lists common room names offered by `room add --standard`.
var StandardRooms = []string{
	"Living Room",
	"Kitchen",
	"Dining Room",
	"Bathroom 1",
	"Bathroom 2",
	"Bathroom 3",
	"Bedroom 1",
	"Bedroom 2",
	"Bedroom 3",
	"Bedroom 4",
	"Master Bedroom",
	"Basement",
	"Attic",
	"Backyard",
	"Garage",
	"Laundry Room",
	"Office/Study",
	"Family Room",
}
