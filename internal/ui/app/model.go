package app

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	progressdto "sprinttrack/internal/modules/progress/dto"
	statsdto "sprinttrack/internal/modules/stats/dto"
	apperrors "sprinttrack/internal/platform/errors"
	"sprinttrack/internal/ui/components"
	"sprinttrack/internal/ui/theme"
	daysview "sprinttrack/internal/ui/views/days"
	overviewview "sprinttrack/internal/ui/views/overview"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface that this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type progressPort interface {
	Snapshot(ctx context.Context) (progressdto.StoreView, error)
	SetTaskCompletion(ctx context.Context, input progressdto.SetTaskInput) (progressdto.DayView, error)
	SetNotes(ctx context.Context, day int, text string) (progressdto.DayView, error)
	StartTimer(ctx context.Context, day int) (progressdto.DayView, error)
	StopTimer(ctx context.Context, day int) (progressdto.DayView, error)
	SetJobsApplied(ctx context.Context, input progressdto.SetJobsInput) (progressdto.DayView, error)
	SetLabCounter(ctx context.Context, input progressdto.SetLabInput) (progressdto.StoreView, error)
	ResetAll(ctx context.Context) (progressdto.StoreView, error)
	LoadWarning() error
}

type statsPort interface {
	Overview(ctx context.Context) (statsdto.OverviewOutput, error)
	WeeklyJobsApplied(ctx context.Context, day int) (statsdto.WeeklyJobsOutput, error)
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabDays tabID = iota
	tabOverview
	tabCount
)

var tabLabels = [tabCount]string{"Days", "Overview"}

// ─── async messages ───────────────────────────────────────────────────────────

type labsUpdatedMsg struct {
	view progressdto.StoreView
	kind string
	err  error
}

type resetDoneMsg struct{ err error }

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
	Toggle  key.Binding
	Timer   key.Binding
	Notes   key.Binding
	Jobs    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Toggle:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle task")),
		Timer:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "start/stop timer")),
		Notes:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "edit notes")),
		Jobs:    key.NewBinding(key.WithKeys("J", "K"), key.WithHelp("J/K", "jobs +/-")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Timer, k.Notes, k.Jobs},
		{k.Tab, k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the global help
// overlay, and the command palette. All business logic is delegated to port
// interfaces; all rendering is delegated to sub-views.
type Model struct {
	progress progressPort

	daysView     daysview.Model
	overviewView overviewview.Model

	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	status    string
	width     int
	height    int
}

// ─── constructor ─────────────────────────────────────────────────────────────

func NewModel(progress progressPort, stats statsPort, today int) Model {
	status := "ready"
	if warn := progress.LoadWarning(); warn != nil {
		status = "warning: " + warn.Error() + " (starting from defaults)"
	}
	return Model{
		progress:     progress,
		daysView:     daysview.New(daysPortBridge{p: progress}, today),
		overviewView: overviewview.New(statsPortBridge{p: stats}, today),
		activeTab:    tabDays,
		keys:         defaultKeys(),
		help:         help.New(),
		palette:      components.NewPalette(),
		status:       status,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.daysView.Init(), m.overviewView.Init())
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The palette intercepts all input while open.
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"

	// DayUpdatedMsg is produced by the days view (and by palette commands)
	// but bubbles through the top level so the status bar tracks every
	// action and its warning.
	case daysview.DayUpdatedMsg:
		m.status = m.describeDayUpdate(msg)
		var cmd tea.Cmd
		m.daysView, cmd = m.daysView.Update(msg)
		cmds = append(cmds, cmd)
		if m.activeTab == tabOverview {
			cmds = append(cmds, m.overviewView.Reload())
		}
		return m, tea.Batch(cmds...)

	case labsUpdatedMsg:
		if msg.err != nil {
			m.status = "labs " + msg.kind + ": " + msg.err.Error()
		} else {
			m.status = "labs " + msg.kind + " updated"
		}
		cmds = append(cmds, m.overviewView.Reload())
		return m, tea.Batch(cmds...)

	case resetDoneMsg:
		if msg.err != nil && !errors.Is(msg.err, apperrors.ErrPersistence) {
			m.status = "reset failed: " + msg.err.Error()
			return m, nil
		}
		m.status = "all progress reset"
		if msg.err != nil {
			m.status = "all progress reset (save failed: " + msg.err.Error() + ")"
		}
		cmds = append(cmds, m.daysView.Refresh(), m.overviewView.Reload())
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		// Yield to the days view while its filter or notes editor is open.
		if m.activeTab == tabDays && (m.daysView.Filtering() || m.daysView.Editing()) {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.switchTab((m.activeTab + 1) % tabCount, &cmds)
		case "shift+tab":
			m.switchTab((m.activeTab+tabCount-1)%tabCount, &cmds)
		case "?":
			m.showHelp = !m.showHelp
		case ":":
			cmds = append(cmds, m.palette.Open())
			return m, tea.Batch(cmds...)
		}
	}

	// Propagate the message to the active tab's sub-view.
	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabDays:
		m.daysView, tabCmd = m.daysView.Update(msg)
	case tabOverview:
		m.overviewView, tabCmd = m.overviewView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	return m, tea.Batch(cmds...)
}

func (m *Model) switchTab(next tabID, cmds *[]tea.Cmd) {
	m.activeTab = next
	if next == tabOverview {
		*cmds = append(*cmds, m.overviewView.Reload())
	}
}

func (m Model) describeDayUpdate(msg daysview.DayUpdatedMsg) string {
	switch {
	case msg.Err == nil:
		return msg.Action
	case errors.Is(msg.Err, apperrors.ErrTimerNotRunning):
		return "timer is not running"
	case errors.Is(msg.Err, apperrors.ErrPersistence):
		return msg.Action + " (save failed: " + msg.Err.Error() + ")"
	default:
		return msg.Action + " failed: " + msg.Err.Error()
	}
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	tabBarH := lipgloss.Height(tabBar)
	statusBarH := lipgloss.Height(statusBar)

	contentH := m.height - tabBarH - statusBarH
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabDays:
		return m.daysView.View()
	case tabOverview:
		return m.overviewView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "sprinttrack  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	if day, ok := m.daysView.RunningTimer(); ok {
		left = theme.Hot.Render("● day "+strconv.Itoa(day)) + "  " + left
	}
	right := theme.Muted.Render("?:help  tab:switch  :::palette  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)
	selected, hasDay := m.daysView.SelectedDay()

	switch parts[0] {
	case "timer:start":
		if !hasDay {
			m.status = "no day selected"
			return m, nil
		}
		return m, m.dayCmd("timer started", func(ctx context.Context) (progressdto.DayView, error) {
			return m.progress.StartTimer(ctx, selected)
		})

	case "timer:stop":
		if !hasDay {
			m.status = "no day selected"
			return m, nil
		}
		return m, m.dayCmd("timer stopped", func(ctx context.Context) (progressdto.DayView, error) {
			return m.progress.StopTimer(ctx, selected)
		})

	case "jobs:set":
		if len(parts) < 2 {
			m.status = "usage: jobs:set <n>"
			return m, nil
		}
		if !hasDay {
			m.status = "no day selected"
			return m, nil
		}
		count, err := strconv.Atoi(parts[1])
		if err != nil {
			m.status = "invalid count"
			return m, nil
		}
		return m, m.dayCmd("jobs applied", func(ctx context.Context) (progressdto.DayView, error) {
			return m.progress.SetJobsApplied(ctx, progressdto.SetJobsInput{Day: selected, Count: count})
		})

	case "labs:rooms", "labs:points":
		if len(parts) < 2 {
			m.status = "usage: " + parts[0] + " <n>"
			return m, nil
		}
		value, err := strconv.Atoi(parts[1])
		if err != nil {
			m.status = "invalid value"
			return m, nil
		}
		kind := strings.TrimPrefix(parts[0], "labs:")
		return m, m.labsCmd(kind, value)

	case "reset:all":
		if len(parts) < 2 || parts[1] != "confirm" {
			m.status = "reset requires confirmation: reset:all confirm"
			return m, nil
		}
		return m, m.resetCmd()

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) dayCmd(action string, fn func(context.Context) (progressdto.DayView, error)) tea.Cmd {
	return func() tea.Msg {
		view, err := fn(context.Background())
		return daysview.DayUpdatedMsg{View: view, Action: action, Err: err}
	}
}

func (m Model) labsCmd(kind string, value int) tea.Cmd {
	return func() tea.Msg {
		view, err := m.progress.SetLabCounter(context.Background(), progressdto.SetLabInput{Kind: kind, Value: value})
		return labsUpdatedMsg{view: view, kind: kind, err: err}
	}
}

func (m Model) resetCmd() tea.Cmd {
	return func() tea.Msg {
		_, err := m.progress.ResetAll(context.Background())
		return resetDoneMsg{err: err}
	}
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.daysView, _ = m.daysView.Update(sz)
	m.overviewView, _ = m.overviewView.Update(sz)
}

// ─── port bridges ─────────────────────────────────────────────────────────────
// Each bridge narrows a broad port interface to the minimal interface needed by
// a specific sub-view, keeping view packages free of knowledge about the wider
// port surface.

type daysPortBridge struct{ p progressPort }

func (b daysPortBridge) Snapshot(ctx context.Context) (progressdto.StoreView, error) {
	return b.p.Snapshot(ctx)
}
func (b daysPortBridge) SetTaskCompletion(ctx context.Context, input progressdto.SetTaskInput) (progressdto.DayView, error) {
	return b.p.SetTaskCompletion(ctx, input)
}
func (b daysPortBridge) SetNotes(ctx context.Context, day int, text string) (progressdto.DayView, error) {
	return b.p.SetNotes(ctx, day, text)
}
func (b daysPortBridge) StartTimer(ctx context.Context, day int) (progressdto.DayView, error) {
	return b.p.StartTimer(ctx, day)
}
func (b daysPortBridge) StopTimer(ctx context.Context, day int) (progressdto.DayView, error) {
	return b.p.StopTimer(ctx, day)
}
func (b daysPortBridge) SetJobsApplied(ctx context.Context, input progressdto.SetJobsInput) (progressdto.DayView, error) {
	return b.p.SetJobsApplied(ctx, input)
}

type statsPortBridge struct{ p statsPort }

func (b statsPortBridge) Overview(ctx context.Context) (statsdto.OverviewOutput, error) {
	return b.p.Overview(ctx)
}
func (b statsPortBridge) WeeklyJobsApplied(ctx context.Context, day int) (statsdto.WeeklyJobsOutput, error) {
	return b.p.WeeklyJobsApplied(ctx, day)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
