package overview

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	statsdto "sprinttrack/internal/modules/stats/dto"
	"sprinttrack/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type StatsPort interface {
	Overview(ctx context.Context) (statsdto.OverviewOutput, error)
	WeeklyJobsApplied(ctx context.Context, day int) (statsdto.WeeklyJobsOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type OverviewLoadedMsg struct {
	Overview statsdto.OverviewOutput
	Weekly   statsdto.WeeklyJobsOutput
	Err      error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port     StatsPort
	today    int
	overview statsdto.OverviewOutput
	weekly   statsdto.WeeklyJobsOutput
	bar      progress.Model
	loaded   bool
	errText  string
	width    int
	height   int
}

func New(port StatsPort, today int) Model {
	bar := progress.New(
		progress.WithGradient(string(theme.Sapphire), string(theme.Green)),
		progress.WithoutPercentage(),
	)
	return Model{port: port, today: today, bar: bar}
}

func (m Model) Init() tea.Cmd {
	return m.Reload()
}

// Reload refetches all aggregates. The app model calls this whenever the
// Overview tab gains focus or a palette command mutated the store.
func (m Model) Reload() tea.Cmd {
	return func() tea.Msg {
		overview, err := m.port.Overview(context.Background())
		if err != nil {
			return OverviewLoadedMsg{Err: err}
		}
		weekly, err := m.port.WeeklyJobsApplied(context.Background(), m.today)
		return OverviewLoadedMsg{Overview: overview, Weekly: weekly, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.bar.Width = min(m.width-28, 60)

	case OverviewLoadedMsg:
		if msg.Err != nil {
			m.errText = msg.Err.Error()
			return m, nil
		}
		m.errText = ""
		m.loaded = true
		m.overview = msg.Overview
		m.weekly = msg.Weekly
	}
	return m, nil
}

func (m Model) View() string {
	if m.errText != "" {
		return theme.Warn.Render("overview: " + m.errText)
	}
	if !m.loaded {
		return theme.Muted.Render("Loading overview…")
	}

	o := m.overview
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Sprint Overview") + "\n\n")

	sb.WriteString(m.renderBar("Overall", o.CompletedTasks, o.TotalTasks, o.OverallPercent))
	sb.WriteString("\n")
	for _, c := range o.Categories {
		sb.WriteString(m.renderBar(c.Category, c.Completed, c.Total, c.Percent))
	}

	sb.WriteString("\n")
	sb.WriteString(theme.Muted.Render("TryHackMe rooms:  ") + fmt.Sprintf("%d", o.LabsCompleted) + "\n")
	sb.WriteString(theme.Muted.Render("TryHackMe points: ") + fmt.Sprintf("%d", o.LabPoints) + "\n")
	sb.WriteString(theme.Muted.Render(fmt.Sprintf("Jobs this week (days %d–%d): ", m.weekly.WeekStart, m.weekly.WeekEnd)) +
		fmt.Sprintf("%d", m.weekly.Total) + "\n")

	sb.WriteString("\n" + theme.Hot.Render(o.Motivation) + "\n")

	return lipgloss.NewStyle().Padding(1, 2).Render(sb.String())
}

func (m Model) renderBar(label string, done, total int, pct float64) string {
	name := label
	if len(name) > 16 {
		name = name[:16]
	}
	return fmt.Sprintf("%-16s %s %s\n",
		name,
		m.bar.ViewAs(pct/100),
		theme.Muted.Render(fmt.Sprintf("%d/%d (%.0f%%)", done, total, pct)))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
