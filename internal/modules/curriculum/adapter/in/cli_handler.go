package in

import (
	"context"

	"sprinttrack/internal/modules/curriculum/dto"
	curriculumin "sprinttrack/internal/modules/curriculum/port/in"
)

type CLIHandler struct {
	usecase curriculumin.Usecase
}

func NewCLIHandler(usecase curriculumin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Plan(ctx context.Context) (dto.PlanOutput, error) {
	return h.usecase.Plan(ctx)
}

func (h CLIHandler) Day(ctx context.Context, n int) (dto.DayOutput, error) {
	return h.usecase.Day(ctx, n)
}

func (h CLIHandler) TodayDay(ctx context.Context) (dto.DayOutput, error) {
	return h.usecase.TodayDay(ctx)
}
