package dto

import "time"

type TaskOutput struct {
	Description string
	Category    string
}

type DayOutput struct {
	Day   int
	Date  time.Time
	Tasks []TaskOutput
}

type PlanOutput struct {
	StartDate  time.Time
	TotalDays  int
	TotalTasks int
	Categories []string
}
