package usecase_test

import (
	"context"
	"testing"
	"time"

	progressdto "sprinttrack/internal/modules/progress/dto"
	"sprinttrack/internal/modules/stats/usecase"
	apperrors "sprinttrack/internal/platform/errors"
)

type fakeClock struct{ now time.Time }

func (f *fakeClock) Now() time.Time { return f.now }

type fakeProgress struct {
	snapshot progressdto.StoreView
}

func (f *fakeProgress) Snapshot(context.Context) (progressdto.StoreView, error) {
	return f.snapshot, nil
}

func (f *fakeProgress) DayView(_ context.Context, day int) (progressdto.DayView, error) {
	for _, d := range f.snapshot.Days {
		if d.Day == day {
			return d, nil
		}
	}
	return progressdto.DayView{}, apperrors.ErrDayOutOfRange
}

func dayView(day int, tasks []progressdto.TaskView, jobs int) progressdto.DayView {
	return progressdto.DayView{Day: day, Tasks: tasks, JobsApplied: jobs}
}

func task(category string, completed bool) progressdto.TaskView {
	return progressdto.TaskView{Category: category, Completed: completed}
}

var noon = time.Date(2025, 5, 26, 12, 0, 0, 0, time.UTC)

func TestOverviewComputesOverallAndCategoryPercentages(t *testing.T) {
	t.Parallel()
	progress := &fakeProgress{snapshot: progressdto.StoreView{
		LabsCompleted: 9,
		LabPoints:     650,
		Days: []progressdto.DayView{
			dayView(1, []progressdto.TaskView{
				task("Google Cert", true),
				task("Security+", true),
				task("TryHackMe", false),
			}, 0),
			dayView(2, []progressdto.TaskView{
				task("Google Cert", false),
			}, 0),
		},
	}}
	uc := usecase.NewInteractor(progress, &fakeClock{now: noon})

	out, err := uc.Overview(context.Background())
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if out.CompletedTasks != 2 || out.TotalTasks != 4 {
		t.Fatalf("expected 2/4 tasks, got %d/%d", out.CompletedTasks, out.TotalTasks)
	}
	if out.OverallPercent != 50 {
		t.Fatalf("expected 50%%, got %.2f", out.OverallPercent)
	}
	if out.LabsCompleted != 9 || out.LabPoints != 650 {
		t.Fatalf("lab counters not carried: %d/%d", out.LabsCompleted, out.LabPoints)
	}

	// Categories keep first-appearance order.
	if len(out.Categories) != 3 || out.Categories[0].Category != "Google Cert" {
		t.Fatalf("category order mismatch: %+v", out.Categories)
	}
	google := out.Categories[0]
	if google.Completed != 1 || google.Total != 2 || google.Percent != 50 {
		t.Fatalf("Google Cert stat mismatch: %+v", google)
	}
	if out.Categories[1].Percent != 100 || out.Categories[2].Percent != 0 {
		t.Fatalf("category percents mismatch: %+v", out.Categories)
	}
}

func TestOverviewPercentagesStayInBounds(t *testing.T) {
	t.Parallel()
	empty := usecase.NewInteractor(&fakeProgress{}, &fakeClock{now: noon})
	out, err := empty.Overview(context.Background())
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if out.OverallPercent != 0 {
		t.Fatalf("no tasks must read as 0%%, got %.2f", out.OverallPercent)
	}

	full := usecase.NewInteractor(&fakeProgress{snapshot: progressdto.StoreView{
		Days: []progressdto.DayView{dayView(1, []progressdto.TaskView{task("Review", true)}, 0)},
	}}, &fakeClock{now: noon})
	out, err = full.Overview(context.Background())
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if out.OverallPercent != 100 {
		t.Fatalf("all done must read as 100%%, got %.2f", out.OverallPercent)
	}
}

func TestMotivationBands(t *testing.T) {
	t.Parallel()
	cases := []struct {
		pct  float64
		want string
	}{
		{0, "Keep going! Every small step adds up."},
		{24.9, "Keep going! Every small step adds up."},
		{25, "Halfway there! You're building great momentum."},
		{50, "Over halfway! Push through to the finish line."},
		{75, "Almost there! The finish line is in sight."},
		{100, "Almost there! The finish line is in sight."},
	}
	for _, c := range cases {
		if got := usecase.Motivation(c.pct); got != c.want {
			t.Fatalf("motivation at %.1f%%: expected %q, got %q", c.pct, c.want, got)
		}
	}
}

func TestWeeklyJobsAppliedUsesSprintRelativeBlocks(t *testing.T) {
	t.Parallel()
	days := make([]progressdto.DayView, 0, 14)
	for d := 1; d <= 14; d++ {
		days = append(days, dayView(d, nil, d)) // day n has n applications
	}
	uc := usecase.NewInteractor(&fakeProgress{snapshot: progressdto.StoreView{Days: days}}, &fakeClock{now: noon})

	// Days 1-7 sum to 28, days 8-14 to 77.
	out, err := uc.WeeklyJobsApplied(context.Background(), 7)
	if err != nil {
		t.Fatalf("weekly jobs day 7: %v", err)
	}
	if out.WeekStart != 1 || out.WeekEnd != 7 || out.Total != 28 {
		t.Fatalf("day 7 block mismatch: %+v", out)
	}

	out, err = uc.WeeklyJobsApplied(context.Background(), 8)
	if err != nil {
		t.Fatalf("weekly jobs day 8: %v", err)
	}
	if out.WeekStart != 8 || out.WeekEnd != 14 || out.Total != 77 {
		t.Fatalf("day 8 block mismatch: %+v", out)
	}
}

func TestFormatElapsedTruncatesToWholeSeconds(t *testing.T) {
	t.Parallel()
	cases := []struct {
		seconds float64
		want    string
	}{
		{0, "00h 00m 00s"},
		{59.9, "00h 00m 59s"},
		{90, "00h 01m 30s"},
		{3661, "01h 01m 01s"},
		{36000, "10h 00m 00s"},
	}
	for _, c := range cases {
		if got := usecase.FormatElapsed(c.seconds); got != c.want {
			t.Fatalf("format %.1f: expected %q, got %q", c.seconds, c.want, got)
		}
	}
}

func TestElapsedIncludesLiveRunningInterval(t *testing.T) {
	t.Parallel()
	runningSince := noon.Add(-90 * time.Second)
	progress := &fakeProgress{snapshot: progressdto.StoreView{Days: []progressdto.DayView{
		{Day: 1, Timer: progressdto.TimerView{Running: true, RunningSince: runningSince, AccumulatedSeconds: 600}},
		{Day: 2, Timer: progressdto.TimerView{AccumulatedSeconds: 300}},
	}}}
	uc := usecase.NewInteractor(progress, &fakeClock{now: noon})

	out, err := uc.Elapsed(context.Background(), 1)
	if err != nil {
		t.Fatalf("elapsed day 1: %v", err)
	}
	if out.Seconds != 690 || !out.Running {
		t.Fatalf("expected 690 live seconds running, got %.2f running=%t", out.Seconds, out.Running)
	}
	if out.Formatted != "00h 11m 30s" {
		t.Fatalf("formatted mismatch: %q", out.Formatted)
	}

	out, err = uc.Elapsed(context.Background(), 2)
	if err != nil {
		t.Fatalf("elapsed day 2: %v", err)
	}
	if out.Seconds != 300 || out.Running {
		t.Fatalf("stopped day must report banked seconds only, got %+v", out)
	}
}

func TestElapsedKeepsSubSecondResolution(t *testing.T) {
	t.Parallel()
	runningSince := noon.Add(-90*time.Second - 500*time.Millisecond)
	progress := &fakeProgress{snapshot: progressdto.StoreView{Days: []progressdto.DayView{
		{Day: 1, Timer: progressdto.TimerView{Running: true, RunningSince: runningSince, AccumulatedSeconds: 600}},
	}}}
	uc := usecase.NewInteractor(progress, &fakeClock{now: noon})

	out, err := uc.Elapsed(context.Background(), 1)
	if err != nil {
		t.Fatalf("elapsed: %v", err)
	}
	if out.Seconds != 690.5 {
		t.Fatalf("live interval must keep sub-second precision, got %.3f", out.Seconds)
	}
	if out.Formatted != "00h 11m 30s" {
		t.Fatalf("formatting still truncates to whole seconds, got %q", out.Formatted)
	}
}
