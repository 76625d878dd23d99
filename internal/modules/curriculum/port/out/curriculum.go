package out

import (
	"context"

	"sprinttrack/internal/modules/curriculum/domain"
)

// PlanStore loads a curriculum override. ok is false when no override exists,
// in which case the built-in plan applies.
type PlanStore interface {
	Load(ctx context.Context) (plan domain.Plan, ok bool, err error)
}
