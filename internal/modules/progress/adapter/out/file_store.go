package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"sprinttrack/internal/modules/progress/domain"
	progressout "sprinttrack/internal/modules/progress/port/out"
	apperrors "sprinttrack/internal/platform/errors"
)

// FileStoreRepository persists the whole store as one JSON document, the
// durable format shared with earlier incarnations of the dashboard: day
// numbers as decimal-string keys, timer start as unix seconds or null.
type FileStoreRepository struct {
	path string
}

func NewFileStoreRepository(path string) progressout.StoreRepository {
	return &FileStoreRepository{path: path}
}

type wireTask struct {
	Desc      string `json:"desc"`
	Type      string `json:"type"`
	Completed bool   `json:"completed"`
}

type wireTimer struct {
	StartTime   *float64 `json:"start_time"`
	ElapsedTime float64  `json:"elapsed_time"`
}

type wireStore struct {
	Tasks            map[string][]wireTask `json:"tasks"`
	Notes            map[string]string     `json:"notes"`
	TimerData        map[string]wireTimer  `json:"timer_data"`
	JobsAppliedDaily map[string]int        `json:"jobs_applied_daily"`
	RoomsCompleted   *int                  `json:"tryhackme_rooms_completed,omitempty"`
	PointsGained     *int                  `json:"tryhackme_points_gained,omitempty"`

	// Early-variant flat names, accepted on load and never written back.
	LegacyRooms  *int `json:"total_tryhackme_rooms,omitempty"`
	LegacyPoints *int `json:"total_tryhackme_points,omitempty"`
}

// Load is lenient by design: a missing or empty file is a fresh store, and
// malformed bytes yield a fresh store plus an ErrDecode-wrapped error so the
// caller can warn without blocking startup.
func (r *FileStoreRepository) Load(_ context.Context) (domain.Store, error) {
	b, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.NewStore(), nil
		}
		return domain.NewStore(), fmt.Errorf("%w: read %s: %v", apperrors.ErrDecode, r.path, err)
	}
	if len(strings.TrimSpace(string(b))) == 0 {
		return domain.NewStore(), nil
	}
	var wire wireStore
	if err := json.Unmarshal(b, &wire); err != nil {
		return domain.NewStore(), fmt.Errorf("%w: %v", apperrors.ErrDecode, err)
	}
	return fromWire(wire), nil
}

// Save rewrites the durable file in full. There is no partial write and no
// locking against concurrent external writers; last writer wins.
func (r *FileStoreRepository) Save(_ context.Context, store domain.Store) error {
	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: create data dir: %v", apperrors.ErrPersistence, err)
		}
	}
	payload, err := json.MarshalIndent(toWire(store), "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshal sprint data: %v", apperrors.ErrPersistence, err)
	}
	if err := os.WriteFile(r.path, payload, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %v", apperrors.ErrPersistence, r.path, err)
	}
	return nil
}

func fromWire(wire wireStore) domain.Store {
	store := domain.NewStore()

	for key, tasks := range wire.Tasks {
		day, ok := dayKey(key)
		if !ok {
			continue
		}
		rec := store.Records[day]
		rec.Day = day
		rec.Tasks = make([]domain.TaskState, len(tasks))
		for i, t := range tasks {
			rec.Tasks[i] = domain.TaskState{Description: t.Desc, Category: t.Type, Completed: t.Completed}
		}
		store.Records[day] = rec
	}
	for key, notes := range wire.Notes {
		day, ok := dayKey(key)
		if !ok {
			continue
		}
		rec := store.Records[day]
		rec.Day = day
		rec.Notes = notes
		store.Records[day] = rec
	}
	for key, timer := range wire.TimerData {
		day, ok := dayKey(key)
		if !ok {
			continue
		}
		rec := store.Records[day]
		rec.Day = day
		rec.Timer.AccumulatedSeconds = timer.ElapsedTime
		if timer.StartTime != nil {
			started := unixSeconds(*timer.StartTime)
			rec.Timer.RunningSince = &started
		}
		store.Records[day] = rec
	}
	for key, count := range wire.JobsAppliedDaily {
		day, ok := dayKey(key)
		if !ok {
			continue
		}
		rec := store.Records[day]
		rec.Day = day
		rec.JobsApplied = count
		store.Records[day] = rec
	}

	switch {
	case wire.RoomsCompleted != nil:
		store.LabsCompleted = *wire.RoomsCompleted
	case wire.LegacyRooms != nil:
		store.LabsCompleted = *wire.LegacyRooms
	}
	switch {
	case wire.PointsGained != nil:
		store.LabPoints = *wire.PointsGained
	case wire.LegacyPoints != nil:
		store.LabPoints = *wire.LegacyPoints
	}
	return store
}

func toWire(store domain.Store) wireStore {
	wire := wireStore{
		Tasks:            map[string][]wireTask{},
		Notes:            map[string]string{},
		TimerData:        map[string]wireTimer{},
		JobsAppliedDaily: map[string]int{},
		RoomsCompleted:   &store.LabsCompleted,
		PointsGained:     &store.LabPoints,
	}
	for day, rec := range store.Records {
		key := strconv.Itoa(day)
		tasks := make([]wireTask, len(rec.Tasks))
		for i, t := range rec.Tasks {
			tasks[i] = wireTask{Desc: t.Description, Type: t.Category, Completed: t.Completed}
		}
		wire.Tasks[key] = tasks
		wire.Notes[key] = rec.Notes
		timer := wireTimer{ElapsedTime: rec.Timer.AccumulatedSeconds}
		if rec.Timer.RunningSince != nil {
			start := float64(rec.Timer.RunningSince.UnixNano()) / float64(time.Second)
			timer.StartTime = &start
		}
		wire.TimerData[key] = timer
		wire.JobsAppliedDaily[key] = rec.JobsApplied
	}
	return wire
}

func dayKey(key string) (int, bool) {
	day, err := strconv.Atoi(key)
	if err != nil || day < 1 {
		return 0, false
	}
	return day, true
}

func unixSeconds(ts float64) time.Time {
	return time.Unix(0, int64(ts*float64(time.Second))).UTC()
}
