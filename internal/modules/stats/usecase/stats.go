package usecase

import (
	"context"
	"fmt"
	"time"

	progressdto "sprinttrack/internal/modules/progress/dto"
	"sprinttrack/internal/modules/stats/dto"
	statsin "sprinttrack/internal/modules/stats/port/in"
	statsout "sprinttrack/internal/modules/stats/port/out"
	"sprinttrack/internal/platform/clock"
)

// Interactor computes every aggregate on read; nothing here is ever stored.
type Interactor struct {
	progress statsout.ProgressReader
	clock    clock.Clock
}

func NewInteractor(progress statsout.ProgressReader, clk clock.Clock) statsin.Usecase {
	return &Interactor{progress: progress, clock: clk}
}

func (i *Interactor) Overview(ctx context.Context) (dto.OverviewOutput, error) {
	snapshot, err := i.progress.Snapshot(ctx)
	if err != nil {
		return dto.OverviewOutput{}, err
	}

	out := dto.OverviewOutput{
		LabsCompleted: snapshot.LabsCompleted,
		LabPoints:     snapshot.LabPoints,
	}
	perCategory := map[string]*dto.CategoryStat{}
	var order []string
	for _, day := range snapshot.Days {
		for _, t := range day.Tasks {
			out.TotalTasks++
			stat, ok := perCategory[t.Category]
			if !ok {
				stat = &dto.CategoryStat{Category: t.Category}
				perCategory[t.Category] = stat
				order = append(order, t.Category)
			}
			stat.Total++
			if t.Completed {
				out.CompletedTasks++
				stat.Completed++
			}
		}
	}
	out.OverallPercent = percent(out.CompletedTasks, out.TotalTasks)
	for _, category := range order {
		stat := perCategory[category]
		stat.Percent = percent(stat.Completed, stat.Total)
		out.Categories = append(out.Categories, *stat)
	}
	out.Motivation = Motivation(out.OverallPercent)
	return out, nil
}

func (i *Interactor) CategoryCompletion(ctx context.Context, category string) (dto.CategoryStat, error) {
	overview, err := i.Overview(ctx)
	if err != nil {
		return dto.CategoryStat{}, err
	}
	for _, stat := range overview.Categories {
		if stat.Category == category {
			return stat, nil
		}
	}
	// A category with zero tasks reads as zero percent, not an error.
	return dto.CategoryStat{Category: category}, nil
}

// WeeklyJobsApplied sums jobs applied over the sprint-relative 7-day block
// containing day. Blocks are fixed at days 1-7, 8-14, and so on; they are not
// calendar-week aligned.
func (i *Interactor) WeeklyJobsApplied(ctx context.Context, day int) (dto.WeeklyJobsOutput, error) {
	if _, err := i.progress.DayView(ctx, day); err != nil {
		return dto.WeeklyJobsOutput{}, err
	}
	snapshot, err := i.progress.Snapshot(ctx)
	if err != nil {
		return dto.WeeklyJobsOutput{}, err
	}
	start := ((day-1)/7)*7 + 1
	end := start + 6
	out := dto.WeeklyJobsOutput{Day: day, WeekStart: start, WeekEnd: end}
	for _, d := range snapshot.Days {
		if d.Day >= start && d.Day <= end {
			out.Total += d.JobsApplied
		}
	}
	return out, nil
}

func (i *Interactor) Elapsed(ctx context.Context, day int) (dto.ElapsedOutput, error) {
	view, err := i.progress.DayView(ctx, day)
	if err != nil {
		return dto.ElapsedOutput{}, err
	}
	seconds := liveSeconds(view.Timer, i.clock.Now())
	return dto.ElapsedOutput{
		Day:       day,
		Seconds:   seconds,
		Formatted: FormatElapsed(seconds),
		Running:   view.Timer.Running,
	}, nil
}

// liveSeconds mirrors the timer's own live arithmetic so this readout and the
// one on the day view cannot disagree.
func liveSeconds(timer progressdto.TimerView, now time.Time) float64 {
	total := timer.AccumulatedSeconds
	if timer.Running {
		if live := now.Sub(timer.RunningSince).Seconds(); live > 0 {
			total += live
		}
	}
	return total
}

// FormatElapsed renders seconds as "HHh MMm SSs" with integer truncation.
func FormatElapsed(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%02dh %02dm %02ds", total/3600, (total%3600)/60, total%60)
}

// Motivation returns the encouragement line for an overall percentage.
func Motivation(pct float64) string {
	switch {
	case pct < 25:
		return "Keep going! Every small step adds up."
	case pct < 50:
		return "Halfway there! You're building great momentum."
	case pct < 75:
		return "Over halfway! Push through to the finish line."
	default:
		return "Almost there! The finish line is in sight."
	}
}

func percent(completed, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(completed) / float64(total)
}
