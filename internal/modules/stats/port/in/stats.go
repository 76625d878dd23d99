package in

import (
	"context"

	"sprinttrack/internal/modules/stats/dto"
)

type Usecase interface {
	Overview(ctx context.Context) (dto.OverviewOutput, error)
	CategoryCompletion(ctx context.Context, category string) (dto.CategoryStat, error)
	WeeklyJobsApplied(ctx context.Context, day int) (dto.WeeklyJobsOutput, error)
	Elapsed(ctx context.Context, day int) (dto.ElapsedOutput, error)
}
