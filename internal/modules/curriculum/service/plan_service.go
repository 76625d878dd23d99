package service

import (
	"context"

	"sprinttrack/internal/modules/curriculum/domain"
	"sprinttrack/internal/platform/clock"
)

// PlanService answers day lookups against the resolved plan. The plan is
// fixed for the lifetime of the process.
type PlanService struct {
	plan  domain.Plan
	clock clock.Clock
}

func NewPlanService(plan domain.Plan, clk clock.Clock) *PlanService {
	return &PlanService{plan: plan, clock: clk}
}

func (s *PlanService) Plan() domain.Plan {
	return s.plan
}

func (s *PlanService) Day(_ context.Context, n int) (domain.Day, error) {
	return s.plan.Day(n)
}

func (s *PlanService) TodayDay(ctx context.Context) (domain.Day, error) {
	return s.plan.Day(s.plan.ClampDay(s.clock.Now()))
}
