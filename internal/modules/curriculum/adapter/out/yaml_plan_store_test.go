package out_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	curriculumout "sprinttrack/internal/modules/curriculum/adapter/out"
)

func TestLoadMissingPlanFileMeansNoOverride(t *testing.T) {
	t.Parallel()
	store := curriculumout.NewYAMLPlanStore(filepath.Join(t.TempDir(), "plan.yaml"))
	_, ok, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("missing plan file must not be an error: %v", err)
	}
	if ok {
		t.Fatalf("missing plan file must report no override")
	}
}

func TestLoadParsesPlanFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "plan.yaml")
	payload := `start_date: "2025-06-02"
days:
  - day: 1
    tasks:
      - desc: "Read the first chapter"
        type: "Security+"
      - desc: "Complete the intro room"
        type: "TryHackMe"
  - day: 2
    tasks:
      - desc: "Watch module 1"
        type: "Google Cert"
`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write plan file: %v", err)
	}

	plan, ok, err := curriculumout.NewYAMLPlanStore(path).Load(context.Background())
	if err != nil {
		t.Fatalf("load plan: %v", err)
	}
	if !ok {
		t.Fatalf("expected an override plan")
	}
	if !plan.StartDate.Equal(time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("start date mismatch: %v", plan.StartDate)
	}
	if plan.TotalDays() != 2 || plan.TotalTasks() != 3 {
		t.Fatalf("plan shape mismatch: %d days, %d tasks", plan.TotalDays(), plan.TotalTasks())
	}
	d, err := plan.Day(1)
	if err != nil {
		t.Fatalf("day 1: %v", err)
	}
	if d.Tasks[0].Description != "Read the first chapter" || d.Tasks[0].Category != "Security+" {
		t.Fatalf("task mapping mismatch: %+v", d.Tasks[0])
	}
}

func TestLoadRejectsMalformedPlanFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "plan.yaml")
	if err := os.WriteFile(path, []byte("days: ["), 0o644); err != nil {
		t.Fatalf("write plan file: %v", err)
	}
	if _, _, err := curriculumout.NewYAMLPlanStore(path).Load(context.Background()); err == nil {
		t.Fatalf("malformed plan file must be a hard error")
	}
}

func TestLoadRejectsInvalidPlanStructure(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "plan.yaml")
	payload := `start_date: "2025-06-02"
days:
  - day: 2
    tasks:
      - desc: "Out of order"
        type: "Review"
`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write plan file: %v", err)
	}
	if _, _, err := curriculumout.NewYAMLPlanStore(path).Load(context.Background()); err == nil {
		t.Fatalf("non-contiguous plan must be rejected")
	}
}
