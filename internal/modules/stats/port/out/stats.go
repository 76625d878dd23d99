package out

import (
	"context"

	progressdto "sprinttrack/internal/modules/progress/dto"
)

// ProgressReader is the slice of the progress surface the aggregator needs.
type ProgressReader interface {
	Snapshot(ctx context.Context) (progressdto.StoreView, error)
	DayView(ctx context.Context, day int) (progressdto.DayView, error)
}
