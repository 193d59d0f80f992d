package tracker

import (
	"errors"
	"path/filepath"
	"testing"

	"flipledger/internal/model"
	"flipledger/internal/store"

	"github.com/shopspring/decimal"
)

func newTestManagers(t *testing.T) (*ProjectManager, *ExpenseManager, int64) {
	t.Helper()

	st, err := store.Open(filepath.Join(t.TempDir(), "tracker.db"))
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	owner, err := st.CreateOwner("admin", "hash", model.RoleEditor)
	if err != nil {
		t.Fatalf("creating owner: %v", err)
	}

	return NewProjectManager(st), NewExpenseManager(st), owner.ID
}

func createTestProject(t *testing.T, pm *ProjectManager, ownerID int64, budget string) *model.Project {
	t.Helper()
	p, err := pm.CreateProject(CreateProjectParams{
		Name:          "123 Main St",
		Budget:        dec(budget),
		PropertyType:  "single_family",
		PropertyClass: "sf_class_c",
		OwnerID:       ownerID,
	})
	if err != nil {
		t.Fatalf("creating project: %v", err)
	}
	return p
}

func addTestRoom(t *testing.T, pm *ProjectManager, projectID int64, name string, length, width float64) *model.Room {
	t.Helper()
	r, err := pm.AddRoom(AddRoomParams{
		ProjectID: projectID,
		Name:      name,
		LengthFt:  length,
		WidthFt:   width,
		Condition: 3,
	})
	if err != nil {
		t.Fatalf("adding room %q: %v", name, err)
	}
	return r
}

func addTestExpense(t *testing.T, em *ExpenseManager, projectID int64, room, category, cost string, hours float64) *model.Expense {
	t.Helper()
	e, err := em.AddExpense(AddExpenseParams{
		ProjectID:       projectID,
		RoomName:        room,
		Category:        category,
		Cost:            dec(cost),
		LaborHours:      hours,
		ConditionRating: 3,
	})
	if err != nil {
		t.Fatalf("adding expense: %v", err)
	}
	return e
}

func TestCreateProjectDefaults(t *testing.T) {
	pm, _, ownerID := newTestManagers(t)

	p := createTestProject(t, pm, ownerID, "150000")

	if p.Status != model.StatusPlanning {
		t.Fatalf("Status = %s, want planning", p.Status)
	}
	if p.Priority != model.PriorityMedium {
		t.Fatalf("Priority = %s, want medium", p.Priority)
	}
	if p.NumFloors != 2 {
		t.Fatalf("NumFloors = %d, want 2", p.NumFloors)
	}
	if p.ID == 0 {
		t.Fatal("expected an assigned id")
	}

	got, err := pm.GetProject(p.ID)
	if err != nil {
		t.Fatalf("GetProject: %v", err)
	}
	if !got.TotalBudget.Equal(dec("150000")) {
		t.Fatalf("TotalBudget = %s, want 150000", got.TotalBudget)
	}
}

func TestCreateProjectValidation(t *testing.T) {
	pm, _, ownerID := newTestManagers(t)

	cases := []struct {
		name   string
		params CreateProjectParams
	}{
		{"bad property type", CreateProjectParams{
			Name: "x", Budget: dec("1"), PropertyType: "condo", PropertyClass: "sf_class_a", OwnerID: ownerID,
		}},
		{"bad property class", CreateProjectParams{
			Name: "x", Budget: dec("1"), PropertyType: "single_family", PropertyClass: "sf_class_z", OwnerID: ownerID,
		}},
		{"bad priority", CreateProjectParams{
			Name: "x", Budget: dec("1"), PropertyType: "single_family", PropertyClass: "sf_class_a",
			Priority: "asap", OwnerID: ownerID,
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pm.CreateProject(tc.params)
			var verr *model.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("err = %v, want ValidationError", err)
			}
		})
	}
}

func TestCreateProjectNegativeBudget(t *testing.T) {
	pm, _, ownerID := newTestManagers(t)

	_, err := pm.CreateProject(CreateProjectParams{
		Name: "x", Budget: dec("-1"),
		PropertyType: "single_family", PropertyClass: "sf_class_a", OwnerID: ownerID,
	})
	if !errors.Is(err, ErrNegativeBudget) {
		t.Fatalf("err = %v, want ErrNegativeBudget", err)
	}

	// Zero is a valid budget.
	if _, err := pm.CreateProject(CreateProjectParams{
		Name: "x", Budget: decimal.Zero,
		PropertyType: "single_family", PropertyClass: "sf_class_a", OwnerID: ownerID,
	}); err != nil {
		t.Fatalf("zero budget rejected: %v", err)
	}
}

func TestUpdateProjectStatus(t *testing.T) {
	pm, _, ownerID := newTestManagers(t)
	p := createTestProject(t, pm, ownerID, "1000")

	ok, err := pm.UpdateProjectStatus(p.ID, "in_progress")
	if err != nil || !ok {
		t.Fatalf("UpdateProjectStatus = %v, %v; want true, nil", ok, err)
	}
	got, err := pm.GetProject(p.ID)
	if err != nil {
		t.Fatalf("GetProject: %v", err)
	}
	if got.Status != model.StatusInProgress {
		t.Fatalf("Status = %s, want in_progress", got.Status)
	}

	// Completed back to planning is allowed; there is no transition table.
	if ok, err := pm.UpdateProjectStatus(p.ID, "completed"); err != nil || !ok {
		t.Fatalf("to completed: %v, %v", ok, err)
	}
	if ok, err := pm.UpdateProjectStatus(p.ID, "planning"); err != nil || !ok {
		t.Fatalf("back to planning: %v, %v", ok, err)
	}

	if _, err := pm.UpdateProjectStatus(p.ID, "done"); err == nil {
		t.Fatal("unknown status accepted")
	}

	ok, err = pm.UpdateProjectStatus(9999, "planning")
	if err != nil {
		t.Fatalf("absent project: %v", err)
	}
	if ok {
		t.Fatal("updating an absent project reported success")
	}
}

func TestGetProjectNotFound(t *testing.T) {
	pm, _, _ := newTestManagers(t)

	_, err := pm.GetProject(42)
	if !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("err = %v, want ErrProjectNotFound", err)
	}
}

func TestAddRoomConditionBounds(t *testing.T) {
	pm, _, ownerID := newTestManagers(t)
	p := createTestProject(t, pm, ownerID, "1000")

	for _, cond := range []int{0, 6, -1} {
		_, err := pm.AddRoom(AddRoomParams{ProjectID: p.ID, Name: "Kitchen", Condition: cond})
		if !errors.Is(err, ErrConditionRange) {
			t.Fatalf("condition %d: err = %v, want ErrConditionRange", cond, err)
		}
	}
	for i, cond := range []int{1, 5} {
		name := []string{"Bedroom 1", "Bedroom 2"}[i]
		if _, err := pm.AddRoom(AddRoomParams{ProjectID: p.ID, Name: name, Condition: cond}); err != nil {
			t.Fatalf("condition %d rejected: %v", cond, err)
		}
	}
}

func TestAddRoomDefaults(t *testing.T) {
	pm, _, ownerID := newTestManagers(t)
	p := createTestProject(t, pm, ownerID, "1000")

	r, err := pm.AddRoom(AddRoomParams{ProjectID: p.ID, Name: "Kitchen", Condition: 3})
	if err != nil {
		t.Fatalf("AddRoom: %v", err)
	}
	if r.HeightFt != 8.0 {
		t.Fatalf("HeightFt = %f, want 8.0 default", r.HeightFt)
	}
	if _, ok := r.SquareFootage(); ok {
		t.Fatal("square footage defined without dimensions")
	}
}

func TestAddRoomProjectMissing(t *testing.T) {
	pm, _, _ := newTestManagers(t)

	_, err := pm.AddRoom(AddRoomParams{ProjectID: 42, Name: "Kitchen", Condition: 3})
	if !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("err = %v, want ErrProjectNotFound", err)
	}
}

func TestRoomNameCaseInsensitive(t *testing.T) {
	pm, _, ownerID := newTestManagers(t)
	p := createTestProject(t, pm, ownerID, "1000")
	r := addTestRoom(t, pm, p.ID, "Kitchen", 12, 10)

	for _, name := range []string{"Kitchen", "kitchen", "KITCHEN", "kItChEn"} {
		got, err := pm.GetRoomByName(p.ID, name)
		if err != nil {
			t.Fatalf("GetRoomByName(%q): %v", name, err)
		}
		if got.ID != r.ID {
			t.Fatalf("GetRoomByName(%q) = room %d, want %d", name, got.ID, r.ID)
		}
	}

	// A second room differing only by case collides with the first.
	_, err := pm.AddRoom(AddRoomParams{ProjectID: p.ID, Name: "KITCHEN", Condition: 3})
	if err == nil {
		t.Fatal("duplicate room name accepted")
	}

	// The same name in a different project is fine.
	p2 := createTestProject(t, pm, ownerID, "2000")
	if _, err := pm.AddRoom(AddRoomParams{ProjectID: p2.ID, Name: "kitchen", Condition: 3}); err != nil {
		t.Fatalf("same name in another project rejected: %v", err)
	}
}

func TestAddExpenseValidation(t *testing.T) {
	pm, em, ownerID := newTestManagers(t)
	p := createTestProject(t, pm, ownerID, "1000")
	addTestRoom(t, pm, p.ID, "Kitchen", 0, 0)

	_, err := em.AddExpense(AddExpenseParams{
		ProjectID: p.ID, RoomName: "Kitchen", Category: "misc", Cost: dec("1"), ConditionRating: 3,
	})
	var verr *model.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("bad category: err = %v, want ValidationError", err)
	}

	_, err = em.AddExpense(AddExpenseParams{
		ProjectID: p.ID, RoomName: "Kitchen", Category: "material", Cost: dec("-1"), ConditionRating: 3,
	})
	if !errors.Is(err, ErrNegativeCost) {
		t.Fatalf("negative cost: err = %v, want ErrNegativeCost", err)
	}

	// Zero cost is allowed.
	if _, err := em.AddExpense(AddExpenseParams{
		ProjectID: p.ID, RoomName: "Kitchen", Category: "material", Cost: decimal.Zero, ConditionRating: 3,
	}); err != nil {
		t.Fatalf("zero cost rejected: %v", err)
	}

	_, err = em.AddExpense(AddExpenseParams{
		ProjectID: p.ID, RoomName: "Kitchen", Category: "material", Cost: dec("1"), ConditionRating: 6,
	})
	if !errors.Is(err, ErrConditionRange) {
		t.Fatalf("condition 6: err = %v, want ErrConditionRange", err)
	}
}

func TestAddExpenseRoomMissing(t *testing.T) {
	pm, em, ownerID := newTestManagers(t)
	p := createTestProject(t, pm, ownerID, "1000")

	_, err := em.AddExpense(AddExpenseParams{
		ProjectID: p.ID, RoomName: "Sauna", Category: "material", Cost: dec("1"), ConditionRating: 3,
	})
	if !errors.Is(err, ErrRoomNotFound) {
		t.Fatalf("err = %v, want ErrRoomNotFound", err)
	}
}

func TestDeleteProjectCascades(t *testing.T) {
	pm, em, ownerID := newTestManagers(t)
	p := createTestProject(t, pm, ownerID, "150000")
	room := addTestRoom(t, pm, p.ID, "Kitchen", 12, 10)
	e := addTestExpense(t, em, p.ID, "Kitchen", "material", "2800", 0)

	ok, err := pm.DeleteProject(p.ID)
	if err != nil || !ok {
		t.Fatalf("DeleteProject = %v, %v; want true, nil", ok, err)
	}

	if _, err := pm.GetProject(p.ID); !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("project survived delete: %v", err)
	}
	if _, err := pm.GetRoomByName(p.ID, room.Name); !errors.Is(err, ErrRoomNotFound) {
		t.Fatalf("room survived cascade: %v", err)
	}
	if _, err := em.GetExpense(e.ID); !errors.Is(err, ErrExpenseNotFound) {
		t.Fatalf("expense survived cascade: %v", err)
	}

	ok, err = pm.DeleteProject(p.ID)
	if err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if ok {
		t.Fatal("second delete reported success")
	}
}

func TestDeleteRoomCascadesOnlyItsExpenses(t *testing.T) {
	pm, em, ownerID := newTestManagers(t)
	p := createTestProject(t, pm, ownerID, "150000")
	kitchen := addTestRoom(t, pm, p.ID, "Kitchen", 12, 10)
	addTestRoom(t, pm, p.ID, "Bathroom 1", 8, 6)

	addTestExpense(t, em, p.ID, "Kitchen", "material", "2800", 0)
	kept := addTestExpense(t, em, p.ID, "Bathroom 1", "labor", "600", 12)

	ok, err := pm.DeleteRoom(kitchen.ID)
	if err != nil || !ok {
		t.Fatalf("DeleteRoom = %v, %v; want true, nil", ok, err)
	}

	expenses, err := em.ListExpenses(p.ID)
	if err != nil {
		t.Fatalf("ListExpenses: %v", err)
	}
	if len(expenses) != 1 {
		t.Fatalf("got %d expenses after room delete, want 1", len(expenses))
	}
	if expenses[0].ID != kept.ID {
		t.Fatalf("surviving expense = %d, want %d", expenses[0].ID, kept.ID)
	}
}

func TestGetRoomExpensesAbsentRoom(t *testing.T) {
	pm, em, ownerID := newTestManagers(t)
	p := createTestProject(t, pm, ownerID, "1000")

	expenses, err := em.GetRoomExpenses(p.ID, "Sauna")
	if err != nil {
		t.Fatalf("GetRoomExpenses: %v", err)
	}
	if len(expenses) != 0 {
		t.Fatalf("got %d expenses for absent room, want 0", len(expenses))
	}
}

func TestGetProjectSummaryEndToEnd(t *testing.T) {
	pm, em, ownerID := newTestManagers(t)
	p := createTestProject(t, pm, ownerID, "150000")
	addTestRoom(t, pm, p.ID, "Kitchen", 12, 10)
	addTestExpense(t, em, p.ID, "Kitchen", "material", "2800", 0)
	addTestExpense(t, em, p.ID, "kitchen", "labor", "1200", 24)

	s, err := em.GetProjectSummary(p.ID)
	if err != nil {
		t.Fatalf("GetProjectSummary: %v", err)
	}
	if !s.TotalSpent.Equal(dec("4000")) {
		t.Fatalf("TotalSpent = %s, want 4000", s.TotalSpent)
	}
	if !s.RemainingBudget.Equal(dec("146000")) {
		t.Fatalf("RemainingBudget = %s, want 146000", s.RemainingBudget)
	}
	if s.ExpenseCount != 2 {
		t.Fatalf("ExpenseCount = %d, want 2", s.ExpenseCount)
	}

	rs, err := em.GetRoomSummary(p.ID, "KITCHEN")
	if err != nil {
		t.Fatalf("GetRoomSummary: %v", err)
	}
	if !rs.HasCostPerSqft || !approx(rs.CostPerSqft.InexactFloat64(), 33.33, 0.01) {
		t.Fatalf("room CostPerSqft = %s (has=%v), want ~33.33", rs.CostPerSqft, rs.HasCostPerSqft)
	}

	if _, err := em.GetProjectSummary(9999); !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("absent project summary: %v", err)
	}
}
