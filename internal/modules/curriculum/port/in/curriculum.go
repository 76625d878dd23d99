package in

import (
	"context"

	"sprinttrack/internal/modules/curriculum/dto"
)

type Usecase interface {
	Plan(ctx context.Context) (dto.PlanOutput, error)
	Day(ctx context.Context, n int) (dto.DayOutput, error)
	TodayDay(ctx context.Context) (dto.DayOutput, error)
}
