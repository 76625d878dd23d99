package dto

type CategoryStat struct {
	Category  string
	Completed int
	Total     int
	Percent   float64
}

type OverviewOutput struct {
	CompletedTasks int
	TotalTasks     int
	OverallPercent float64
	Categories     []CategoryStat
	LabsCompleted  int
	LabPoints      int
	Motivation     string
}

type WeeklyJobsOutput struct {
	Day       int
	WeekStart int
	WeekEnd   int
	Total     int
}

type ElapsedOutput struct {
	Day       int
	Seconds   float64
	Formatted string
	Running   bool
}
