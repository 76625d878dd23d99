package out

import (
	"context"

	"sprinttrack/internal/modules/progress/domain"
)

// StoreRepository is the durable home of the progress store. Load is lenient:
// a missing or empty file yields an empty store with no error, and malformed
// bytes yield an empty store with an error wrapping apperrors.ErrDecode so
// startup can continue on defaults. Save rewrites the file in full.
type StoreRepository interface {
	Load(ctx context.Context) (domain.Store, error)
	Save(ctx context.Context, store domain.Store) error
}

// HistoryProjector maintains the per-day summary read model.
type HistoryProjector interface {
	UpsertDay(ctx context.Context, row domain.DaySummary) error
	Reset(ctx context.Context) error
	ListDays(ctx context.Context) ([]domain.DaySummary, error)
}
