package dto

import "time"

type TaskView struct {
	Index       int
	Description string
	Category    string
	Completed   bool
}

type TimerView struct {
	Running            bool
	RunningSince       time.Time
	AccumulatedSeconds float64
}

type DayView struct {
	Day         int
	Date        time.Time
	Tasks       []TaskView
	Notes       string
	Timer       TimerView
	JobsApplied int
}

type StoreView struct {
	Days          []DayView
	LabsCompleted int
	LabPoints     int
}

type SetTaskInput struct {
	Day       int
	Index     int
	Completed bool
}

type SetJobsInput struct {
	Day   int
	Count int
}

type SetLabInput struct {
	Kind  string
	Value int
}

type HistoryRow struct {
	Day         int
	Date        time.Time
	TasksDone   int
	TasksTotal  int
	Seconds     float64
	JobsApplied int
	UpdatedAt   time.Time
}
