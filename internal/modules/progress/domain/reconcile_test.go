package domain_test

import (
	"reflect"
	"testing"
	"time"

	"sprinttrack/internal/modules/progress/domain"
)

func template() []domain.TemplateDay {
	return []domain.TemplateDay{
		{Day: 1, Tasks: []domain.TemplateTask{
			{Description: "Watch module 1", Category: "Google Cert"},
			{Description: "Read chapter 1", Category: "Security+"},
		}},
		{Day: 2, Tasks: []domain.TemplateTask{
			{Description: "Complete a room", Category: "TryHackMe"},
		}},
		{Day: 3, Tasks: []domain.TemplateTask{
			{Description: "Apply to jobs", Category: "Job Search"},
		}},
	}
}

func TestReconcileCoversExactlyTemplateDays(t *testing.T) {
	t.Parallel()
	out := domain.Reconcile(domain.NewStore(), template())
	if len(out.Records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(out.Records))
	}
	for day := 1; day <= 3; day++ {
		rec, ok := out.Records[day]
		if !ok {
			t.Fatalf("day %d missing after reconcile", day)
		}
		if rec.Day != day {
			t.Fatalf("record day mismatch: %d vs %d", rec.Day, day)
		}
		if rec.CompletedTasks() != 0 || rec.Notes != "" || rec.JobsApplied != 0 || rec.Timer.Running() {
			t.Fatalf("synthesized day %d must start zeroed: %+v", day, rec)
		}
	}
	if out.Records[1].Tasks[0].Description != "Watch module 1" {
		t.Fatalf("template tasks not carried into synthesized day")
	}
}

func TestReconcilePreservesExistingProgress(t *testing.T) {
	t.Parallel()
	since := time.Date(2025, 5, 27, 9, 0, 0, 0, time.UTC)
	base := domain.NewStore()
	base.LabsCompleted = 4
	base.LabPoints = 320
	base.Records[2] = domain.DayRecord{
		Day:         2,
		Tasks:       []domain.TaskState{{Description: "Complete a room", Category: "TryHackMe", Completed: true}},
		Notes:       "finished early",
		Timer:       domain.Timer{RunningSince: &since, AccumulatedSeconds: 1800},
		JobsApplied: 2,
	}

	out := domain.Reconcile(base, template())

	rec := out.Records[2]
	if !rec.Tasks[0].Completed || rec.Notes != "finished early" || rec.JobsApplied != 2 {
		t.Fatalf("existing fields lost in reconcile: %+v", rec)
	}
	if !rec.Timer.Running() || rec.Timer.AccumulatedSeconds != 1800 {
		t.Fatalf("timer state lost in reconcile: %+v", rec.Timer)
	}
	if out.LabsCompleted != 4 || out.LabPoints != 320 {
		t.Fatalf("lab counters lost: %d/%d", out.LabsCompleted, out.LabPoints)
	}
}

func TestReconcileBackfillsTasksForNotesOnlyDay(t *testing.T) {
	t.Parallel()
	base := domain.NewStore()
	base.Records[1] = domain.DayRecord{
		Day:         1,
		Notes:       "kept note",
		Timer:       domain.Timer{AccumulatedSeconds: 120},
		JobsApplied: 1,
	}

	out := domain.Reconcile(base, template())

	rec := out.Records[1]
	if len(rec.Tasks) != 2 {
		t.Fatalf("day with no stored tasks must take the template checklist, got %d tasks", len(rec.Tasks))
	}
	if rec.Tasks[0].Description != "Watch module 1" || rec.Tasks[0].Completed {
		t.Fatalf("backfilled tasks must be fresh template snapshots: %+v", rec.Tasks[0])
	}
	if rec.Notes != "kept note" || rec.Timer.AccumulatedSeconds != 120 || rec.JobsApplied != 1 {
		t.Fatalf("stored fields must survive the backfill: %+v", rec)
	}
}

func TestReconcileDropsOrphanDays(t *testing.T) {
	t.Parallel()
	base := domain.NewStore()
	base.Records[99] = domain.DayRecord{Day: 99, Notes: "orphan"}

	out := domain.Reconcile(base, template())
	if _, ok := out.Records[99]; ok {
		t.Fatalf("day 99 is not in the template and must be dropped")
	}
	if len(out.Records) != 3 {
		t.Fatalf("expected exactly template days, got %d", len(out.Records))
	}
}

func TestReconcileClampsNegativeValues(t *testing.T) {
	t.Parallel()
	base := domain.NewStore()
	base.LabsCompleted = -1
	base.LabPoints = -10
	base.Records[1] = domain.DayRecord{
		Day:         1,
		JobsApplied: -3,
		Timer:       domain.Timer{AccumulatedSeconds: -50},
	}

	out := domain.Reconcile(base, template())
	if out.LabsCompleted != 0 || out.LabPoints != 0 {
		t.Fatalf("negative lab counters must clamp to zero: %d/%d", out.LabsCompleted, out.LabPoints)
	}
	rec := out.Records[1]
	if rec.JobsApplied != 0 || rec.Timer.AccumulatedSeconds != 0 {
		t.Fatalf("negative day values must clamp to zero: %+v", rec)
	}
}

func TestReconcileIsIdempotent(t *testing.T) {
	t.Parallel()
	base := domain.NewStore()
	base.Records[1] = domain.DayRecord{
		Day:   1,
		Tasks: []domain.TaskState{{Description: "Watch module 1", Category: "Google Cert", Completed: true}},
		Notes: "good session",
	}

	once := domain.Reconcile(base, template())
	twice := domain.Reconcile(once, template())
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("reconcile must be idempotent:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}
