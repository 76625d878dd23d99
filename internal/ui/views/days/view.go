package days

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	progressdto "sprinttrack/internal/modules/progress/dto"
	"sprinttrack/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type ProgressPort interface {
	Snapshot(ctx context.Context) (progressdto.StoreView, error)
	SetTaskCompletion(ctx context.Context, input progressdto.SetTaskInput) (progressdto.DayView, error)
	SetNotes(ctx context.Context, day int, text string) (progressdto.DayView, error)
	StartTimer(ctx context.Context, day int) (progressdto.DayView, error)
	StopTimer(ctx context.Context, day int) (progressdto.DayView, error)
	SetJobsApplied(ctx context.Context, input progressdto.SetJobsInput) (progressdto.DayView, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type SnapshotLoadedMsg struct {
	Snapshot progressdto.StoreView
	Err      error
}

// DayUpdatedMsg bubbles through the app model so the status bar can reflect
// the action (or its warning) before the view refreshes the affected day.
type DayUpdatedMsg struct {
	View   progressdto.DayView
	Action string
	Err    error
}

type tickMsg time.Time

// ─── list item ───────────────────────────────────────────────────────────────

type dayItem struct {
	view progressdto.DayView
}

func (i dayItem) Title() string {
	return fmt.Sprintf("Day %d — %s", i.view.Day, i.view.Date.Format("Mon Jan 2"))
}

func (i dayItem) Description() string {
	done := 0
	for _, t := range i.view.Tasks {
		if t.Completed {
			done++
		}
	}
	desc := fmt.Sprintf("%d/%d tasks", done, len(i.view.Tasks))
	if i.view.Timer.Running {
		desc += "  ● timer"
	}
	return desc
}

func (i dayItem) FilterValue() string { return i.Title() }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port       ProgressPort
	list       list.Model
	notes      textarea.Model
	editing    bool
	taskCursor int
	today      int
	ticking    bool
	width      int
	height     int
}

func New(port ProgressPort, today int) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Sprint Days"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	ta := textarea.New()
	ta.Placeholder = "notes for the day…"
	ta.CharLimit = 0

	return Model{port: port, list: l, notes: ta, today: today}
}

func (m Model) Init() tea.Cmd {
	return m.Refresh()
}

// Refresh reloads the whole store snapshot.
func (m Model) Refresh() tea.Cmd {
	return func() tea.Msg {
		snapshot, err := m.port.Snapshot(context.Background())
		return SnapshotLoadedMsg{Snapshot: snapshot, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case SnapshotLoadedMsg:
		if msg.Err != nil {
			m.list.Title = "Sprint Days — " + msg.Err.Error()
			return m, nil
		}
		items := make([]list.Item, len(msg.Snapshot.Days))
		selectIdx := 0
		for i, d := range msg.Snapshot.Days {
			items[i] = dayItem{view: d}
			if d.Day == m.today {
				selectIdx = i
			}
		}
		cmds = append(cmds, m.list.SetItems(items))
		if m.list.Index() == 0 && selectIdx > 0 {
			m.list.Select(selectIdx)
		}
		cmds = append(cmds, m.ensureTick())

	case DayUpdatedMsg:
		if msg.View.Day > 0 {
			m.replaceDay(msg.View)
		}
		cmds = append(cmds, m.ensureTick())

	case tickMsg:
		m.ticking = false
		cmds = append(cmds, m.ensureTick())

	case tea.KeyMsg:
		if m.editing {
			return m.updateNotes(msg)
		}
		if m.list.FilterState() != list.Filtering {
			if handled, cmd := m.handleKey(msg); handled {
				return m, cmd
			}
		}
	}

	var lCmd tea.Cmd
	prevIdx := m.list.Index()
	m.list, lCmd = m.list.Update(msg)
	cmds = append(cmds, lCmd)
	if m.list.Index() != prevIdx {
		m.taskCursor = 0
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	day, ok := m.selected()
	if !ok {
		return false, nil
	}
	switch msg.String() {
	case "j":
		if m.taskCursor < len(day.Tasks)-1 {
			m.taskCursor++
		}
		return true, nil
	case "k":
		if m.taskCursor > 0 {
			m.taskCursor--
		}
		return true, nil
	case " ":
		if m.taskCursor >= len(day.Tasks) {
			return true, nil
		}
		task := day.Tasks[m.taskCursor]
		return true, m.mutateCmd("task", func(ctx context.Context) (progressdto.DayView, error) {
			return m.port.SetTaskCompletion(ctx, progressdto.SetTaskInput{
				Day: day.Day, Index: task.Index, Completed: !task.Completed,
			})
		})
	case "t":
		if day.Timer.Running {
			return true, m.mutateCmd("timer stopped", func(ctx context.Context) (progressdto.DayView, error) {
				return m.port.StopTimer(ctx, day.Day)
			})
		}
		return true, m.mutateCmd("timer started", func(ctx context.Context) (progressdto.DayView, error) {
			return m.port.StartTimer(ctx, day.Day)
		})
	case "n":
		m.editing = true
		m.notes.SetValue(day.Notes)
		return true, m.notes.Focus()
	case "J":
		return true, m.mutateCmd("jobs applied", func(ctx context.Context) (progressdto.DayView, error) {
			return m.port.SetJobsApplied(ctx, progressdto.SetJobsInput{Day: day.Day, Count: day.JobsApplied + 1})
		})
	case "K":
		if day.JobsApplied == 0 {
			return true, nil
		}
		return true, m.mutateCmd("jobs applied", func(ctx context.Context) (progressdto.DayView, error) {
			return m.port.SetJobsApplied(ctx, progressdto.SetJobsInput{Day: day.Day, Count: day.JobsApplied - 1})
		})
	}
	return false, nil
}

func (m Model) updateNotes(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		day, ok := m.selected()
		m.editing = false
		m.notes.Blur()
		if !ok {
			return m, nil
		}
		text := m.notes.Value()
		return m, m.mutateCmd("notes saved", func(ctx context.Context) (progressdto.DayView, error) {
			return m.port.SetNotes(ctx, day.Day, text)
		})
	case "ctrl+x":
		m.editing = false
		m.notes.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.notes, cmd = m.notes.Update(msg)
	return m, cmd
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	listW := m.width * 4 / 10
	detailW := m.width - listW

	listPane := lipgloss.NewStyle().
		Width(listW).
		Height(m.height).
		Render(m.list.View())

	var body string
	if m.editing {
		body = theme.Title.Render("Notes") + "\n\n" + m.notes.View() +
			"\n\n" + theme.Muted.Render("esc: save  ctrl+x: discard")
	} else {
		body = m.renderDetail()
	}

	detailPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(detailW - 2).
		Height(m.height - 2).
		Padding(0, 1).
		Render(body)

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

func (m Model) renderDetail() string {
	day, ok := m.selected()
	if !ok {
		return theme.Muted.Render("Select a day")
	}

	var sb strings.Builder
	sb.WriteString(theme.Title.Render(fmt.Sprintf("Day %d — %s", day.Day, day.Date.Format("Monday, Jan 2"))) + "\n\n")

	for i, t := range day.Tasks {
		cursor := "  "
		if i == m.taskCursor {
			cursor = theme.Hot.Render("▸ ")
		}
		box := "[ ]"
		line := t.Description
		if t.Completed {
			box = theme.Done.Render("[x]")
			line = theme.Muted.Render(t.Description)
		}
		sb.WriteString(fmt.Sprintf("%s%s %s %s\n", cursor, box, line, theme.Muted.Render("("+t.Category+")")))
	}

	sb.WriteString("\n")
	elapsed := day.Timer.AccumulatedSeconds
	if day.Timer.Running {
		if live := time.Since(day.Timer.RunningSince).Seconds(); live > 0 {
			elapsed += live
		}
		sb.WriteString(theme.Hot.Render("● ") + fmtElapsed(elapsed) + theme.Muted.Render("  (running)") + "\n")
	} else {
		sb.WriteString(theme.Muted.Render("○ ") + fmtElapsed(elapsed) + "\n")
	}
	sb.WriteString(theme.Muted.Render("jobs applied: ") + fmt.Sprintf("%d", day.JobsApplied) + "\n")

	if strings.TrimSpace(day.Notes) != "" {
		sb.WriteString("\n" + theme.Muted.Render("notes") + "\n" + day.Notes + "\n")
	}

	sb.WriteString("\n" + theme.Muted.Render("j/k: task  space: toggle  t: timer  n: notes  J/K: jobs"))
	return sb.String()
}

// ─── accessors ───────────────────────────────────────────────────────────────

// SelectedDay returns the currently selected day number, if any.
func (m Model) SelectedDay() (int, bool) {
	if day, ok := m.selected(); ok {
		return day.Day, true
	}
	return 0, false
}

// RunningTimer returns the day with a live timer, if any.
func (m Model) RunningTimer() (int, bool) {
	for _, item := range m.list.Items() {
		if d, ok := item.(dayItem); ok && d.view.Timer.Running {
			return d.view.Day, true
		}
	}
	return 0, false
}

// Filtering reports whether the list's search filter is currently active.
// The app model checks this to avoid consuming global keys during a search.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// Editing reports whether the notes overlay has focus.
func (m Model) Editing() bool { return m.editing }

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) selected() (progressdto.DayView, bool) {
	if item, ok := m.list.SelectedItem().(dayItem); ok {
		return item.view, true
	}
	return progressdto.DayView{}, false
}

func (m *Model) replaceDay(view progressdto.DayView) {
	for i, item := range m.list.Items() {
		if d, ok := item.(dayItem); ok && d.view.Day == view.Day {
			m.list.SetItem(i, dayItem{view: view})
			break
		}
	}
	if m.taskCursor >= len(view.Tasks) && len(view.Tasks) > 0 {
		m.taskCursor = len(view.Tasks) - 1
	}
}

// ensureTick keeps a one-second tick alive while any timer runs so the
// elapsed readout stays live. At most one tick is in flight at a time.
func (m *Model) ensureTick() tea.Cmd {
	if m.ticking {
		return nil
	}
	if _, running := m.RunningTimer(); !running {
		return nil
	}
	m.ticking = true
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *Model) resize() {
	listW := m.width * 4 / 10
	m.list.SetSize(listW, m.height)
	m.notes.SetWidth(m.width - listW - 6)
	m.notes.SetHeight(m.height - 8)
}

func (m Model) mutateCmd(action string, fn func(context.Context) (progressdto.DayView, error)) tea.Cmd {
	return func() tea.Msg {
		view, err := fn(context.Background())
		return DayUpdatedMsg{View: view, Action: action, Err: err}
	}
}

func fmtElapsed(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%02dh %02dm %02ds", total/3600, (total%3600)/60, total%60)
}
