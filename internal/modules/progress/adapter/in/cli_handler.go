package in

import (
	"context"

	"sprinttrack/internal/modules/progress/dto"
	progressin "sprinttrack/internal/modules/progress/port/in"
)

type CLIHandler struct {
	usecase progressin.Usecase
}

func NewCLIHandler(usecase progressin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Snapshot(ctx context.Context) (dto.StoreView, error) {
	return h.usecase.Snapshot(ctx)
}

func (h CLIHandler) DayView(ctx context.Context, day int) (dto.DayView, error) {
	return h.usecase.DayView(ctx, day)
}

func (h CLIHandler) SetTaskCompletion(ctx context.Context, day, index int, completed bool) (dto.DayView, error) {
	return h.usecase.SetTaskCompletion(ctx, dto.SetTaskInput{Day: day, Index: index, Completed: completed})
}

func (h CLIHandler) SetNotes(ctx context.Context, day int, text string) (dto.DayView, error) {
	return h.usecase.SetNotes(ctx, day, text)
}

func (h CLIHandler) StartTimer(ctx context.Context, day int) (dto.DayView, error) {
	return h.usecase.StartTimer(ctx, day)
}

func (h CLIHandler) StopTimer(ctx context.Context, day int) (dto.DayView, error) {
	return h.usecase.StopTimer(ctx, day)
}

func (h CLIHandler) SetJobsApplied(ctx context.Context, day, count int) (dto.DayView, error) {
	return h.usecase.SetJobsApplied(ctx, dto.SetJobsInput{Day: day, Count: count})
}

func (h CLIHandler) SetLabCounter(ctx context.Context, kind string, value int) (dto.StoreView, error) {
	return h.usecase.SetLabCounter(ctx, dto.SetLabInput{Kind: kind, Value: value})
}

func (h CLIHandler) ResetAll(ctx context.Context) (dto.StoreView, error) {
	return h.usecase.ResetAll(ctx)
}

func (h CLIHandler) History(ctx context.Context) ([]dto.HistoryRow, error) {
	return h.usecase.History(ctx)
}

func (h CLIHandler) Reindex(ctx context.Context) error {
	return h.usecase.Reindex(ctx)
}

func (h CLIHandler) LoadWarning() error {
	return h.usecase.LoadWarning()
}
