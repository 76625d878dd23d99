package in

import (
	"context"

	"sprinttrack/internal/modules/stats/dto"
	statsin "sprinttrack/internal/modules/stats/port/in"
)

type CLIHandler struct {
	usecase statsin.Usecase
}

func NewCLIHandler(usecase statsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Overview(ctx context.Context) (dto.OverviewOutput, error) {
	return h.usecase.Overview(ctx)
}

func (h CLIHandler) CategoryCompletion(ctx context.Context, category string) (dto.CategoryStat, error) {
	return h.usecase.CategoryCompletion(ctx, category)
}

func (h CLIHandler) WeeklyJobsApplied(ctx context.Context, day int) (dto.WeeklyJobsOutput, error) {
	return h.usecase.WeeklyJobsApplied(ctx, day)
}

func (h CLIHandler) Elapsed(ctx context.Context, day int) (dto.ElapsedOutput, error) {
	return h.usecase.Elapsed(ctx, day)
}
