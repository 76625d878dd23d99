package usecase

import (
	"context"

	"sprinttrack/internal/modules/curriculum/domain"
	"sprinttrack/internal/modules/curriculum/dto"
	curriculumin "sprinttrack/internal/modules/curriculum/port/in"
	"sprinttrack/internal/modules/curriculum/service"
)

type Interactor struct {
	svc *service.PlanService
}

func NewInteractor(svc *service.PlanService) curriculumin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Plan(_ context.Context) (dto.PlanOutput, error) {
	plan := i.svc.Plan()
	return dto.PlanOutput{
		StartDate:  plan.StartDate,
		TotalDays:  plan.TotalDays(),
		TotalTasks: plan.TotalTasks(),
		Categories: plan.Categories(),
	}, nil
}

func (i *Interactor) Day(ctx context.Context, n int) (dto.DayOutput, error) {
	d, err := i.svc.Day(ctx, n)
	if err != nil {
		return dto.DayOutput{}, err
	}
	return i.toOutput(d), nil
}

func (i *Interactor) TodayDay(ctx context.Context) (dto.DayOutput, error) {
	d, err := i.svc.TodayDay(ctx)
	if err != nil {
		return dto.DayOutput{}, err
	}
	return i.toOutput(d), nil
}

func (i *Interactor) toOutput(d domain.Day) dto.DayOutput {
	out := dto.DayOutput{Day: d.Number, Date: i.svc.Plan().DateOf(d.Number)}
	for _, t := range d.Tasks {
		out.Tasks = append(out.Tasks, dto.TaskOutput{Description: t.Description, Category: t.Category})
	}
	return out
}
