package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"flipledger/internal/model"

	"github.com/shopspring/decimal"
)

func testProjectData() ProjectData {
	created := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	project := &model.Project{
		ID:            1,
		Name:          "123 Main St",
		TotalBudget:   decimal.NewFromInt(150000),
		PropertyType:  model.SingleFamily,
		PropertyClass: model.SFClassC,
		Status:        model.StatusInProgress,
		Priority:      model.PriorityMedium,
		Address:       "123 Main St, Springfield",
		CreatedAt:     created,
	}
	summary := &model.ProjectSummary{
		ProjectID:       1,
		ProjectName:     project.Name,
		TotalBudget:     project.TotalBudget,
		TotalSpent:      decimal.NewFromInt(4000),
		RemainingBudget: decimal.NewFromInt(146000),
		BudgetUsedPct:   2.6667,
		MaterialCosts:   decimal.NewFromInt(2800),
		LaborCosts:      decimal.NewFromInt(1200),
		TotalLaborHours: 24,
		ExpenseCount:    2,
	}
	rooms := []model.Room{
		{ID: 10, ProjectID: 1, Name: "Kitchen", LengthFt: 12, WidthFt: 10, HeightFt: 8, InitialCondition: 3},
	}
	expenses := []model.Expense{
		{
			ID: 100, ProjectID: 1, RoomID: 10,
			Date:     time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
			Category: model.CategoryMaterial, Cost: decimal.NewFromInt(2800),
			ConditionRating: 3, CreatedAt: created.Add(time.Hour),
		},
		{
			ID: 101, ProjectID: 1, RoomID: 10,
			Date:     time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC),
			Category: model.CategoryLabor, Cost: decimal.NewFromInt(1200), LaborHours: 24,
			ConditionRating: 3, CreatedAt: created.Add(2 * time.Hour),
		},
	}
	return ProjectData{Project: project, Summary: summary, Rooms: rooms, Expenses: expenses}
}

func TestWriteProject(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteProject(&buf, testProjectData(), true, true); err != nil {
		t.Fatalf("WriteProject: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"flipledger - Project Export",
		"Name,123 Main St",
		"Status,In Progress",
		"Property Class,SF_CLASS_C",
		"Total Budget,150000.00",
		"Total Spent,4000.00",
		"Remaining Budget,146000.00",
		"Budget Used %,2.7%",
		"Total Labor Hours,24.0",
		"Kitchen,0,120,3/5,12,10,8,",
		"2026-02-01,Kitchen,Material,2800.00,,3/5,",
		"2026-02-05,Kitchen,Labor,1200.00,24,3/5,",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("export missing %q\n---\n%s", want, out)
		}
	}

	// Expense rows are ordered by entry time.
	if strings.Index(out, "2026-02-01") > strings.Index(out, "2026-02-05") {
		t.Error("expenses not sorted by entry time")
	}
}

func TestWriteProjectExcludesSections(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteProject(&buf, testProjectData(), false, false); err != nil {
		t.Fatalf("WriteProject: %v", err)
	}
	out := buf.String()

	if strings.Contains(out, "Room Details") {
		t.Error("room section present despite exclusion")
	}
	if strings.Contains(out, "Expense Details") {
		t.Error("expense section present despite exclusion")
	}
	if !strings.Contains(out, "Financial Summary") {
		t.Error("summary section missing")
	}
}

func TestWriteSummary(t *testing.T) {
	data := testProjectData()
	items := []SummaryRow{
		{Project: *data.Project, Summary: *data.Summary, RoomCount: 1},
	}

	var buf bytes.Buffer
	generated := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)
	if err := WriteSummary(&buf, items, generated); err != nil {
		t.Fatalf("WriteSummary: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"flipledger - Project Summary",
		"Generated,2026-03-01 12:30:00",
		"Project ID,Project Name,Status",
		"1,123 Main St,In Progress,Single Family,SF_CLASS_C,150000.00,4000.00,146000.00,2.7%,2800.00,1200.00,24.0,1,2,2026-01-10",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q\n---\n%s", want, out)
		}
	}
}

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"report", "report.csv"},
		{"report.csv", "report.csv"},
		{"../../etc/passwd", "passwd.csv"},
		{`C:\temp\out.csv`, "out.csv"},
		{"my report!.csv", "my_report_.csv"},
	}
	for _, tc := range cases {
		if got := SanitizeFilename(tc.in); got != tc.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDefaultProjectFilename(t *testing.T) {
	if got := DefaultProjectFilename("123 Main St"); got != "123_Main_St_export.csv" {
		t.Errorf("got %q, want 123_Main_St_export.csv", got)
	}
}
