package domain

import (
	"fmt"
	"strings"
	"time"

	apperrors "sprinttrack/internal/platform/errors"
)

// Well-known category tags. A plan file may introduce new tags; these cover
// the built-in plan and keep call sites typo-free.
const (
	CategoryGoogleCert     = "Google Cert"
	CategorySecurityPlus   = "Security+"
	CategoryTryHackMe      = "TryHackMe"
	CategoryJobSearch      = "Job Search"
	CategoryReview         = "Review"
	CategoryFuturePlanning = "Future Planning"
	CategoryMotivation     = "Motivation"
)

type Task struct {
	Description string
	Category    string
}

type Day struct {
	Number int
	Tasks  []Task
}

// Plan is the immutable curriculum template: an ordered run of days starting
// at StartDate. Days are numbered 1..len(Days) and never mutate at runtime.
type Plan struct {
	StartDate time.Time
	Days      []Day
}

func (p Plan) TotalDays() int {
	return len(p.Days)
}

func (p Plan) TotalTasks() int {
	total := 0
	for _, d := range p.Days {
		total += len(d.Tasks)
	}
	return total
}

func (p Plan) Day(n int) (Day, error) {
	if n < 1 || n > len(p.Days) {
		return Day{}, fmt.Errorf("%w: day %d of %d", apperrors.ErrDayOutOfRange, n, len(p.Days))
	}
	return p.Days[n-1], nil
}

// DateOf returns the calendar date of day n without bounds checking; callers
// resolve n through Day first.
func (p Plan) DateOf(n int) time.Time {
	return p.StartDate.AddDate(0, 0, n-1)
}

// ClampDay resolves "today" to a sprint day: day 1 before the sprint starts,
// the final day after it ends.
func (p Plan) ClampDay(now time.Time) int {
	day := int(now.Sub(p.StartDate).Hours()/24) + 1
	if day < 1 {
		return 1
	}
	if day > len(p.Days) {
		return len(p.Days)
	}
	return day
}

// Categories returns the distinct category tags in first-appearance order.
func (p Plan) Categories() []string {
	seen := map[string]bool{}
	var out []string
	for _, d := range p.Days {
		for _, t := range d.Tasks {
			if !seen[t.Category] {
				seen[t.Category] = true
				out = append(out, t.Category)
			}
		}
	}
	return out
}

func (p Plan) Validate() error {
	if p.StartDate.IsZero() {
		return fmt.Errorf("start date is required")
	}
	if len(p.Days) == 0 {
		return fmt.Errorf("plan has no days")
	}
	for i, d := range p.Days {
		if d.Number != i+1 {
			return fmt.Errorf("day %d is numbered %d; days must be contiguous from 1", i+1, d.Number)
		}
		if len(d.Tasks) == 0 {
			return fmt.Errorf("day %d has no tasks", d.Number)
		}
		for j, t := range d.Tasks {
			if strings.TrimSpace(t.Description) == "" {
				return fmt.Errorf("day %d task %d has an empty description", d.Number, j)
			}
			if strings.TrimSpace(t.Category) == "" {
				return fmt.Errorf("day %d task %d has an empty category", d.Number, j)
			}
		}
	}
	return nil
}
