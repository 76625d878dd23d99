package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	curriculumin "sprinttrack/internal/modules/curriculum/port/in"
	"sprinttrack/internal/modules/progress/domain"
	"sprinttrack/internal/modules/progress/dto"
	progressin "sprinttrack/internal/modules/progress/port/in"
	progressout "sprinttrack/internal/modules/progress/port/out"
	"sprinttrack/internal/modules/progress/service"
	"sprinttrack/internal/platform/clock"
	apperrors "sprinttrack/internal/platform/errors"
)

// Interactor owns the in-memory progress store for the session. It loads and
// reconciles once at construction, then persists the full store after every
// mutation. The in-memory store stays authoritative even when a persist
// fails; such failures surface as ErrPersistence-wrapped warnings.
type Interactor struct {
	svc       *service.ProgressService
	repo      progressout.StoreRepository
	projector progressout.HistoryProjector
	clock     clock.Clock

	template    []domain.TemplateDay
	dates       map[int]time.Time
	store       domain.Store
	loadWarning error
}

func NewInteractor(
	ctx context.Context,
	svc *service.ProgressService,
	repo progressout.StoreRepository,
	projector progressout.HistoryProjector,
	curriculum curriculumin.Usecase,
	clk clock.Clock,
) (progressin.Usecase, error) {
	plan, err := curriculum.Plan(ctx)
	if err != nil {
		return nil, err
	}
	i := &Interactor{
		svc:       svc,
		repo:      repo,
		projector: projector,
		clock:     clk,
		dates:     make(map[int]time.Time, plan.TotalDays),
	}
	for n := 1; n <= plan.TotalDays; n++ {
		d, err := curriculum.Day(ctx, n)
		if err != nil {
			return nil, err
		}
		td := domain.TemplateDay{Day: d.Day}
		for _, t := range d.Tasks {
			td.Tasks = append(td.Tasks, domain.TemplateTask{Description: t.Description, Category: t.Category})
		}
		i.template = append(i.template, td)
		i.dates[d.Day] = d.Date
	}

	base, err := repo.Load(ctx)
	if err != nil {
		if !errors.Is(err, apperrors.ErrDecode) {
			return nil, err
		}
		// Corrupt data must never block startup; remember and continue on defaults.
		i.loadWarning = err
	}
	i.store = domain.Reconcile(base, i.template)
	return i, nil
}

func (i *Interactor) LoadWarning() error {
	return i.loadWarning
}

// ─── reads ───────────────────────────────────────────────────────────────────

func (i *Interactor) Snapshot(_ context.Context) (dto.StoreView, error) {
	return i.storeView(), nil
}

func (i *Interactor) DayView(_ context.Context, day int) (dto.DayView, error) {
	rec, ok := i.store.Records[day]
	if !ok {
		return dto.DayView{}, apperrors.ErrDayOutOfRange
	}
	return i.dayView(rec), nil
}

func (i *Interactor) History(ctx context.Context) ([]dto.HistoryRow, error) {
	rows, err := i.projector.ListDays(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.HistoryRow, len(rows))
	for n, r := range rows {
		out[n] = dto.HistoryRow{
			Day:         r.Day,
			Date:        r.Date,
			TasksDone:   r.TasksDone,
			TasksTotal:  r.TasksTotal,
			Seconds:     r.Seconds,
			JobsApplied: r.JobsApplied,
			UpdatedAt:   r.UpdatedAt,
		}
	}
	return out, nil
}

// ─── mutations ────────────────────────────────────────────────────────────────

func (i *Interactor) SetTaskCompletion(ctx context.Context, input dto.SetTaskInput) (dto.DayView, error) {
	rec, err := i.svc.SetTaskCompletion(ctx, &i.store, input.Day, input.Index, input.Completed)
	if err != nil {
		return dto.DayView{}, err
	}
	return i.dayView(rec), i.persist(ctx, input.Day)
}

func (i *Interactor) SetNotes(ctx context.Context, day int, text string) (dto.DayView, error) {
	rec, err := i.svc.SetNotes(ctx, &i.store, day, text)
	if err != nil {
		return dto.DayView{}, err
	}
	return i.dayView(rec), i.persist(ctx, day)
}

func (i *Interactor) StartTimer(ctx context.Context, day int) (dto.DayView, error) {
	rec, err := i.svc.StartTimer(ctx, &i.store, day)
	if err != nil {
		return dto.DayView{}, err
	}
	return i.dayView(rec), i.persist(ctx, day)
}

func (i *Interactor) StopTimer(ctx context.Context, day int) (dto.DayView, error) {
	rec, err := i.svc.StopTimer(ctx, &i.store, day)
	if err != nil {
		if errors.Is(err, apperrors.ErrTimerNotRunning) {
			// Warning-grade: nothing changed, nothing to persist.
			return i.dayView(rec), err
		}
		return dto.DayView{}, err
	}
	return i.dayView(rec), i.persist(ctx, day)
}

func (i *Interactor) SetJobsApplied(ctx context.Context, input dto.SetJobsInput) (dto.DayView, error) {
	rec, err := i.svc.SetJobsApplied(ctx, &i.store, input.Day, input.Count)
	if err != nil {
		return dto.DayView{}, err
	}
	return i.dayView(rec), i.persist(ctx, input.Day)
}

func (i *Interactor) SetLabCounter(ctx context.Context, input dto.SetLabInput) (dto.StoreView, error) {
	if err := i.svc.SetLabCounter(ctx, &i.store, input.Kind, input.Value); err != nil {
		return dto.StoreView{}, err
	}
	return i.storeView(), i.persist(ctx)
}

// ResetAll discards every record and persists a fresh store re-reconciled
// against the template.
func (i *Interactor) ResetAll(ctx context.Context) (dto.StoreView, error) {
	i.store = domain.Reconcile(domain.NewStore(), i.template)
	var errs []error
	if err := i.repo.Save(ctx, i.store); err != nil {
		errs = append(errs, err)
	}
	if err := i.Reindex(ctx); err != nil {
		errs = append(errs, fmt.Errorf("%w: rebuild history: %v", apperrors.ErrPersistence, err))
	}
	return i.storeView(), errors.Join(errs...)
}

// Reindex rebuilds the history projection from the in-memory store.
func (i *Interactor) Reindex(ctx context.Context) error {
	if err := i.projector.Reset(ctx); err != nil {
		return err
	}
	for _, td := range i.template {
		if err := i.projector.UpsertDay(ctx, i.summary(i.store.Records[td.Day])); err != nil {
			return err
		}
	}
	return nil
}

// ─── private ─────────────────────────────────────────────────────────────────

// persist writes the whole store and refreshes the projection rows for the
// given days. Projection failures ride along with persist failures; both are
// warning-grade to the caller.
func (i *Interactor) persist(ctx context.Context, days ...int) error {
	var errs []error
	if err := i.repo.Save(ctx, i.store); err != nil {
		errs = append(errs, err)
	}
	for _, day := range days {
		if rec, ok := i.store.Records[day]; ok {
			if err := i.projector.UpsertDay(ctx, i.summary(rec)); err != nil {
				// The projection is a rebuildable index; its failures must not
				// outrank a successful store write.
				errs = append(errs, fmt.Errorf("%w: refresh history day %d: %v", apperrors.ErrPersistence, day, err))
			}
		}
	}
	return errors.Join(errs...)
}

func (i *Interactor) summary(rec domain.DayRecord) domain.DaySummary {
	return domain.DaySummary{
		Day:         rec.Day,
		Date:        i.dates[rec.Day],
		TasksDone:   rec.CompletedTasks(),
		TasksTotal:  len(rec.Tasks),
		Seconds:     rec.Timer.AccumulatedSeconds,
		JobsApplied: rec.JobsApplied,
		UpdatedAt:   i.clock.Now(),
	}
}

func (i *Interactor) dayView(rec domain.DayRecord) dto.DayView {
	view := dto.DayView{
		Day:         rec.Day,
		Date:        i.dates[rec.Day],
		Notes:       rec.Notes,
		JobsApplied: rec.JobsApplied,
		Timer: dto.TimerView{
			Running:            rec.Timer.Running(),
			AccumulatedSeconds: rec.Timer.AccumulatedSeconds,
		},
	}
	if rec.Timer.RunningSince != nil {
		view.Timer.RunningSince = *rec.Timer.RunningSince
	}
	view.Tasks = make([]dto.TaskView, len(rec.Tasks))
	for idx, t := range rec.Tasks {
		view.Tasks[idx] = dto.TaskView{
			Index:       idx,
			Description: t.Description,
			Category:    t.Category,
			Completed:   t.Completed,
		}
	}
	return view
}

func (i *Interactor) storeView() dto.StoreView {
	view := dto.StoreView{
		LabsCompleted: i.store.LabsCompleted,
		LabPoints:     i.store.LabPoints,
	}
	days := make([]int, 0, len(i.store.Records))
	for day := range i.store.Records {
		days = append(days, day)
	}
	sort.Ints(days)
	for _, day := range days {
		view.Days = append(view.Days, i.dayView(i.store.Records[day]))
	}
	return view
}
