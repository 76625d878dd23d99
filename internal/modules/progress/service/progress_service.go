package service

import (
	"context"
	"fmt"

	"sprinttrack/internal/modules/progress/domain"
	"sprinttrack/internal/platform/clock"
	apperrors "sprinttrack/internal/platform/errors"
)

// ProgressService applies single-field mutations to a store under the
// domain's validation rules. It holds no state beyond the clock; the caller
// owns the store and decides when to persist.
type ProgressService struct {
	clock clock.Clock
}

func NewProgressService(clk clock.Clock) *ProgressService {
	return &ProgressService{clock: clk}
}

func (s *ProgressService) record(store *domain.Store, day int) (domain.DayRecord, error) {
	rec, ok := store.Records[day]
	if !ok {
		return domain.DayRecord{}, fmt.Errorf("%w: day %d", apperrors.ErrDayOutOfRange, day)
	}
	return rec, nil
}

func (s *ProgressService) SetTaskCompletion(_ context.Context, store *domain.Store, day, index int, completed bool) (domain.DayRecord, error) {
	rec, err := s.record(store, day)
	if err != nil {
		return domain.DayRecord{}, err
	}
	if index < 0 || index >= len(rec.Tasks) {
		return domain.DayRecord{}, fmt.Errorf("%w: task %d of day %d (%d tasks)", apperrors.ErrTaskIndexOutOfRange, index, day, len(rec.Tasks))
	}
	rec.Tasks = append([]domain.TaskState(nil), rec.Tasks...)
	rec.Tasks[index].Completed = completed
	store.Records[day] = rec
	return rec, nil
}

func (s *ProgressService) SetNotes(_ context.Context, store *domain.Store, day int, text string) (domain.DayRecord, error) {
	rec, err := s.record(store, day)
	if err != nil {
		return domain.DayRecord{}, err
	}
	rec.Notes = text
	store.Records[day] = rec
	return rec, nil
}

func (s *ProgressService) StartTimer(_ context.Context, store *domain.Store, day int) (domain.DayRecord, error) {
	rec, err := s.record(store, day)
	if err != nil {
		return domain.DayRecord{}, err
	}
	rec.Timer.Start(s.clock.Now())
	store.Records[day] = rec
	return rec, nil
}

func (s *ProgressService) StopTimer(_ context.Context, store *domain.Store, day int) (domain.DayRecord, error) {
	rec, err := s.record(store, day)
	if err != nil {
		return domain.DayRecord{}, err
	}
	if _, err := rec.Timer.Stop(s.clock.Now()); err != nil {
		return rec, err
	}
	store.Records[day] = rec
	return rec, nil
}

func (s *ProgressService) SetJobsApplied(_ context.Context, store *domain.Store, day, count int) (domain.DayRecord, error) {
	rec, err := s.record(store, day)
	if err != nil {
		return domain.DayRecord{}, err
	}
	if count < 0 {
		return domain.DayRecord{}, fmt.Errorf("%w: jobs applied must be non-negative, got %d", apperrors.ErrInvalidValue, count)
	}
	rec.JobsApplied = count
	store.Records[day] = rec
	return rec, nil
}

func (s *ProgressService) SetLabCounter(_ context.Context, store *domain.Store, kind string, value int) error {
	if value < 0 {
		return fmt.Errorf("%w: lab counter must be non-negative, got %d", apperrors.ErrInvalidValue, value)
	}
	switch kind {
	case domain.LabCounterRooms:
		store.LabsCompleted = value
	case domain.LabCounterPoints:
		store.LabPoints = value
	default:
		return fmt.Errorf("%w: unknown lab counter %q", apperrors.ErrInvalidValue, kind)
	}
	return nil
}
