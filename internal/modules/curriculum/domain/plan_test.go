package domain_test

import (
	"errors"
	"testing"
	"time"

	"sprinttrack/internal/modules/curriculum/domain"
	apperrors "sprinttrack/internal/platform/errors"
)

var start = time.Date(2025, 5, 26, 0, 0, 0, 0, time.UTC)

func TestBuiltinPlanIsValid(t *testing.T) {
	t.Parallel()
	plan, err := domain.DefaultPlan(start, 30)
	if err != nil {
		t.Fatalf("default plan: %v", err)
	}
	if err := plan.Validate(); err != nil {
		t.Fatalf("built-in plan must validate: %v", err)
	}
	if plan.TotalDays() != 30 {
		t.Fatalf("expected 30 days, got %d", plan.TotalDays())
	}
	if plan.TotalTasks() == 0 {
		t.Fatalf("built-in plan has no tasks")
	}
	categories := plan.Categories()
	if len(categories) == 0 || categories[0] != domain.CategoryGoogleCert {
		t.Fatalf("expected Google Cert first in category order, got %v", categories)
	}
}

func TestDefaultPlanTruncatesToSprintLength(t *testing.T) {
	t.Parallel()
	plan, err := domain.DefaultPlan(start, 7)
	if err != nil {
		t.Fatalf("default plan: %v", err)
	}
	if plan.TotalDays() != 7 {
		t.Fatalf("expected 7 days, got %d", plan.TotalDays())
	}
	if err := plan.Validate(); err != nil {
		t.Fatalf("truncated plan must stay valid: %v", err)
	}
}

func TestDefaultPlanRejectsImpossibleLengths(t *testing.T) {
	t.Parallel()
	if _, err := domain.DefaultPlan(start, 0); err == nil {
		t.Fatalf("zero-day sprint must be rejected")
	}
	if _, err := domain.DefaultPlan(start, 31); err == nil {
		t.Fatalf("the built-in table cannot cover 31 days")
	}
}

func TestDayLookupBounds(t *testing.T) {
	t.Parallel()
	plan, err := domain.DefaultPlan(start, 30)
	if err != nil {
		t.Fatalf("default plan: %v", err)
	}
	if _, err := plan.Day(0); !errors.Is(err, apperrors.ErrDayOutOfRange) {
		t.Fatalf("day 0: expected ErrDayOutOfRange, got %v", err)
	}
	if _, err := plan.Day(31); !errors.Is(err, apperrors.ErrDayOutOfRange) {
		t.Fatalf("day 31: expected ErrDayOutOfRange, got %v", err)
	}
	d, err := plan.Day(1)
	if err != nil {
		t.Fatalf("day 1: %v", err)
	}
	if d.Number != 1 || len(d.Tasks) == 0 {
		t.Fatalf("day 1 malformed: %+v", d)
	}
}

func TestDateOfAddsCalendarDays(t *testing.T) {
	t.Parallel()
	plan, err := domain.DefaultPlan(start, 30)
	if err != nil {
		t.Fatalf("default plan: %v", err)
	}
	if got := plan.DateOf(1); !got.Equal(start) {
		t.Fatalf("day 1 date: expected %v, got %v", start, got)
	}
	want := time.Date(2025, 6, 24, 0, 0, 0, 0, time.UTC)
	if got := plan.DateOf(30); !got.Equal(want) {
		t.Fatalf("day 30 date: expected %v, got %v", want, got)
	}
}

func TestClampDayPinsToSprintWindow(t *testing.T) {
	t.Parallel()
	plan, err := domain.DefaultPlan(start, 30)
	if err != nil {
		t.Fatalf("default plan: %v", err)
	}
	cases := []struct {
		now  time.Time
		want int
	}{
		{start.AddDate(0, 0, -10), 1},
		{start, 1},
		{start.Add(36 * time.Hour), 2},
		{start.AddDate(0, 0, 29), 30},
		{start.AddDate(0, 1, 0), 30},
	}
	for _, c := range cases {
		if got := plan.ClampDay(c.now); got != c.want {
			t.Fatalf("clamp %v: expected day %d, got %d", c.now, c.want, got)
		}
	}
}

func TestValidateCatchesStructuralProblems(t *testing.T) {
	t.Parallel()
	broken := domain.Plan{StartDate: start, Days: []domain.Day{
		{Number: 1, Tasks: []domain.Task{{Description: "a", Category: "b"}}},
		{Number: 3, Tasks: []domain.Task{{Description: "a", Category: "b"}}},
	}}
	if err := broken.Validate(); err == nil {
		t.Fatalf("non-contiguous day numbering must fail validation")
	}

	empty := domain.Plan{StartDate: start, Days: []domain.Day{{Number: 1}}}
	if err := empty.Validate(); err == nil {
		t.Fatalf("day without tasks must fail validation")
	}

	blank := domain.Plan{StartDate: start, Days: []domain.Day{
		{Number: 1, Tasks: []domain.Task{{Description: " ", Category: "b"}}},
	}}
	if err := blank.Validate(); err == nil {
		t.Fatalf("blank task description must fail validation")
	}
}
