package domain

import (
	"time"

	apperrors "sprinttrack/internal/platform/errors"
)

const SchemaVersion = 2

// Lab counter names accepted by SetLabCounter.
const (
	LabCounterRooms  = "rooms"
	LabCounterPoints = "points"
)

// TaskState is a denormalized snapshot of a template task taken when its day
// is first reconciled. Template edits after that point do not propagate.
type TaskState struct {
	Description string
	Category    string
	Completed   bool
}

// Timer is the per-day focus timer. At most one interval runs at a time;
// starting while running overwrites the live interval without banking it.
type Timer struct {
	RunningSince       *time.Time
	AccumulatedSeconds float64
}

func (t Timer) Running() bool {
	return t.RunningSince != nil
}

func (t *Timer) Start(now time.Time) {
	started := now
	t.RunningSince = &started
}

// Stop closes the running interval and banks its elapsed seconds. The state
// is left untouched when no interval is running.
func (t *Timer) Stop(now time.Time) (float64, error) {
	if t.RunningSince == nil {
		return 0, apperrors.ErrTimerNotRunning
	}
	elapsed := now.Sub(*t.RunningSince).Seconds()
	if elapsed < 0 {
		elapsed = 0
	}
	t.AccumulatedSeconds += elapsed
	t.RunningSince = nil
	return elapsed, nil
}

// LiveSeconds is the banked total plus the currently running interval, if any.
func (t Timer) LiveSeconds(now time.Time) float64 {
	total := t.AccumulatedSeconds
	if t.RunningSince != nil {
		if live := now.Sub(*t.RunningSince).Seconds(); live > 0 {
			total += live
		}
	}
	return total
}

type DayRecord struct {
	Day         int
	Tasks       []TaskState
	Notes       string
	Timer       Timer
	JobsApplied int
}

func (r DayRecord) CompletedTasks() int {
	done := 0
	for _, t := range r.Tasks {
		if t.Completed {
			done++
		}
	}
	return done
}

// Store is the whole mutable progress state: one record per sprint day plus
// the sprint-wide lab counters.
type Store struct {
	Records       map[int]DayRecord
	LabsCompleted int
	LabPoints     int
}

func NewStore() Store {
	return Store{Records: map[int]DayRecord{}}
}

// DaySummary is the per-day row projected into the history index.
type DaySummary struct {
	Day         int
	Date        time.Time
	TasksDone   int
	TasksTotal  int
	Seconds     float64
	JobsApplied int
	UpdatedAt   time.Time
}
