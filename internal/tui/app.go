// Package tui provides the interactive Bubble Tea dashboard for flipledger.
package tui

import (
	"fmt"
	"strings"

	"flipledger/internal/cli"
	"flipledger/internal/config"
	"flipledger/internal/model"
	"flipledger/internal/tracker"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// projectRow bundles a project with its computed summary and per-room
// breakdown for display.
type projectRow struct {
	Project model.Project
	Summary model.ProjectSummary
	Rooms   []model.RoomSummary
}

// dataLoadedMsg is sent when the initial load finishes.
type dataLoadedMsg struct {
	rows []projectRow
}

type errMsg struct {
	err error
}

// App is the root Bubble Tea model.
type App struct {
	projects *tracker.ProjectManager
	expenses *tracker.ExpenseManager
	ownerID  int64
	cfg      config.Config

	rows   []projectRow
	cursor int
	loaded bool
	err    error

	width  int
	height int

	spinner spinner.Model
}

var (
	tuiTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(cli.ColorText).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(cli.ColorAccent)

	normalStyle = lipgloss.NewStyle().
			Foreground(cli.ColorText)

	tuiDimStyle = lipgloss.NewStyle().
			Foreground(cli.ColorTextMuted)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(cli.ColorBorder).
			Padding(0, 1)
)

// New builds the dashboard app.
func New(pm *tracker.ProjectManager, em *tracker.ExpenseManager, ownerID int64, cfg config.Config) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return App{
		projects: pm,
		expenses: em,
		ownerID:  ownerID,
		cfg:      cfg,
		spinner:  sp,
	}
}

// Run starts the dashboard in the alternate screen.
func Run(pm *tracker.ProjectManager, em *tracker.ExpenseManager, ownerID int64, cfg config.Config) error {
	p := tea.NewProgram(New(pm, em, ownerID, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(a.spinner.Tick, a.loadData)
}

func (a App) loadData() tea.Msg {
	projects, err := a.projects.ListProjects(a.ownerID)
	if err != nil {
		return errMsg{err}
	}

	rows := make([]projectRow, 0, len(projects))
	for _, p := range projects {
		summary, err := a.expenses.GetProjectSummary(p.ID)
		if err != nil {
			return errMsg{err}
		}

		rooms, err := a.projects.ListRooms(p.ID)
		if err != nil {
			return errMsg{err}
		}
		roomSummaries := make([]model.RoomSummary, 0, len(rooms))
		for _, r := range rooms {
			rs, err := a.expenses.GetRoomSummary(p.ID, r.Name)
			if err != nil {
				return errMsg{err}
			}
			roomSummaries = append(roomSummaries, *rs)
		}

		rows = append(rows, projectRow{Project: p, Summary: *summary, Rooms: roomSummaries})
	}

	return dataLoadedMsg{rows: rows}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case dataLoadedMsg:
		a.rows = msg.rows
		a.loaded = true
		if a.cursor >= len(a.rows) {
			a.cursor = 0
		}
		return a, nil

	case errMsg:
		a.err = msg.err
		a.loaded = true
		return a, nil

	case spinner.TickMsg:
		if a.loaded {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return a, tea.Quit
		case "up", "k":
			if a.cursor > 0 {
				a.cursor--
			}
		case "down", "j":
			if a.cursor < len(a.rows)-1 {
				a.cursor++
			}
		case "r":
			a.loaded = false
			return a, tea.Batch(a.spinner.Tick, a.loadData)
		}
	}

	return a, nil
}

// View implements tea.Model.
func (a App) View() string {
	if a.err != nil {
		return fmt.Sprintf("\n  error: %v\n\n  press q to quit\n", a.err)
	}
	if !a.loaded {
		return fmt.Sprintf("\n  %s loading projects...\n", a.spinner.View())
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(tuiTitleStyle.Render("FLIPLEDGER DASHBOARD"))
	b.WriteString("\n\n")

	if len(a.rows) == 0 {
		b.WriteString(tuiDimStyle.Render("  No projects yet. Create one with `flipledger project create`.\n"))
		b.WriteString("\n")
		b.WriteString(tuiDimStyle.Render("  q quit"))
		return b.String()
	}

	for i, row := range a.rows {
		p, s := row.Project, row.Summary

		marker := "  "
		style := normalStyle
		if i == a.cursor {
			marker = "> "
			style = selectedStyle
		}

		line := fmt.Sprintf("%s%-24s %-12s %12s / %-12s",
			marker,
			truncate(p.Name, 24),
			cli.TitleCase(string(p.Status)),
			cli.FormatCurrency(s.TotalSpent),
			cli.FormatCurrency(s.TotalBudget),
		)
		b.WriteString(style.Render(line))
		b.WriteString("  ")
		b.WriteString(cli.RenderBudgetBar(s.BudgetUsedPct, a.cfg.Budget.WarnPct, a.cfg.Budget.CriticalPct, 20))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(a.renderDetail(a.rows[a.cursor]))
	b.WriteString("\n")
	b.WriteString(tuiDimStyle.Render("  ↑/↓ select   r refresh   q quit"))
	return b.String()
}

func (a App) renderDetail(row projectRow) string {
	s := row.Summary

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s\n", selectedStyle.Render(row.Project.Name)))
	b.WriteString(fmt.Sprintf("Remaining: %s   Materials: %s   Labor: %s (%s)   Expenses: %d\n",
		cli.FormatCurrency(s.RemainingBudget),
		cli.FormatCurrency(s.MaterialCosts),
		cli.FormatCurrency(s.LaborCosts),
		cli.FormatHours(s.TotalLaborHours),
		s.ExpenseCount,
	))

	spent := 0
	for _, rs := range row.Rooms {
		if rs.ExpenseCount > 0 {
			spent++
		}
	}
	if spent > 0 {
		b.WriteString("\n")
		for _, rs := range row.Rooms {
			if rs.ExpenseCount == 0 {
				continue
			}
			b.WriteString(fmt.Sprintf("%-20s %12s  (%d expenses)\n",
				truncate(rs.RoomName, 20),
				cli.FormatCurrency(rs.TotalSpent),
				rs.ExpenseCount,
			))
		}
	}

	return panelStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 1 {
		return s[:maxLen]
	}
	return s[:maxLen-1] + "…"
}
