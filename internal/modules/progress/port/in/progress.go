package in

import (
	"context"

	"sprinttrack/internal/modules/progress/dto"
)

// Usecase is the mutation and read surface over the progress store. Every
// mutation persists the whole store before returning. When the returned error
// wraps apperrors.ErrPersistence the mutation has still been applied in
// memory and the returned view reflects it; callers surface the error as a
// warning, not a failure.
type Usecase interface {
	Snapshot(ctx context.Context) (dto.StoreView, error)
	DayView(ctx context.Context, day int) (dto.DayView, error)

	SetTaskCompletion(ctx context.Context, input dto.SetTaskInput) (dto.DayView, error)
	SetNotes(ctx context.Context, day int, text string) (dto.DayView, error)
	StartTimer(ctx context.Context, day int) (dto.DayView, error)
	StopTimer(ctx context.Context, day int) (dto.DayView, error)
	SetJobsApplied(ctx context.Context, input dto.SetJobsInput) (dto.DayView, error)
	SetLabCounter(ctx context.Context, input dto.SetLabInput) (dto.StoreView, error)
	ResetAll(ctx context.Context) (dto.StoreView, error)

	History(ctx context.Context) ([]dto.HistoryRow, error)
	Reindex(ctx context.Context) error

	// LoadWarning reports a decode failure swallowed at startup, if any.
	LoadWarning() error
}
