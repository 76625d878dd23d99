package domain_test

import (
	"errors"
	"testing"
	"time"

	"sprinttrack/internal/modules/progress/domain"
	apperrors "sprinttrack/internal/platform/errors"
)

func TestTimerStartStopBanksElapsedSeconds(t *testing.T) {
	t.Parallel()
	var timer domain.Timer
	start := time.Date(2025, 5, 26, 9, 0, 0, 0, time.UTC)

	timer.Start(start)
	if !timer.Running() {
		t.Fatalf("timer must be running after start")
	}

	elapsed, err := timer.Stop(start.Add(90 * time.Second))
	if err != nil {
		t.Fatalf("stop timer: %v", err)
	}
	if elapsed != 90 {
		t.Fatalf("expected 90 elapsed seconds, got %.2f", elapsed)
	}
	if timer.AccumulatedSeconds != 90 {
		t.Fatalf("expected 90 banked seconds, got %.2f", timer.AccumulatedSeconds)
	}
	if timer.Running() {
		t.Fatalf("timer must be stopped after stop")
	}
}

func TestTimerStopWithoutStartIsWarning(t *testing.T) {
	t.Parallel()
	var timer domain.Timer
	if _, err := timer.Stop(time.Now()); !errors.Is(err, apperrors.ErrTimerNotRunning) {
		t.Fatalf("expected ErrTimerNotRunning, got %v", err)
	}
	if timer.AccumulatedSeconds != 0 {
		t.Fatalf("idle stop must not bank time, got %.2f", timer.AccumulatedSeconds)
	}
}

func TestTimerRestartDiscardsLiveInterval(t *testing.T) {
	t.Parallel()
	var timer domain.Timer
	t0 := time.Date(2025, 5, 26, 9, 0, 0, 0, time.UTC)

	timer.Start(t0)
	// Starting again abandons the first interval without banking it.
	timer.Start(t0.Add(10 * time.Minute))

	elapsed, err := timer.Stop(t0.Add(11 * time.Minute))
	if err != nil {
		t.Fatalf("stop timer: %v", err)
	}
	if elapsed != 60 {
		t.Fatalf("expected only the second interval (60s), got %.2f", elapsed)
	}
	if timer.AccumulatedSeconds != 60 {
		t.Fatalf("expected 60 banked seconds, got %.2f", timer.AccumulatedSeconds)
	}
}

func TestTimerAccumulatesAcrossIntervals(t *testing.T) {
	t.Parallel()
	var timer domain.Timer
	t0 := time.Date(2025, 5, 26, 9, 0, 0, 0, time.UTC)

	timer.Start(t0)
	if _, err := timer.Stop(t0.Add(30 * time.Second)); err != nil {
		t.Fatalf("first stop: %v", err)
	}
	timer.Start(t0.Add(time.Hour))
	if _, err := timer.Stop(t0.Add(time.Hour + 45*time.Second)); err != nil {
		t.Fatalf("second stop: %v", err)
	}
	if timer.AccumulatedSeconds != 75 {
		t.Fatalf("expected 75 banked seconds, got %.2f", timer.AccumulatedSeconds)
	}
}

func TestTimerClampsClockSkewToZero(t *testing.T) {
	t.Parallel()
	var timer domain.Timer
	t0 := time.Date(2025, 5, 26, 9, 0, 0, 0, time.UTC)

	timer.Start(t0)
	elapsed, err := timer.Stop(t0.Add(-time.Minute))
	if err != nil {
		t.Fatalf("stop timer: %v", err)
	}
	if elapsed != 0 || timer.AccumulatedSeconds != 0 {
		t.Fatalf("negative interval must clamp to zero, got %.2f banked %.2f", elapsed, timer.AccumulatedSeconds)
	}
}

func TestTimerLiveSecondsIncludesRunningInterval(t *testing.T) {
	t.Parallel()
	timer := domain.Timer{AccumulatedSeconds: 100}
	t0 := time.Date(2025, 5, 26, 9, 0, 0, 0, time.UTC)

	if got := timer.LiveSeconds(t0); got != 100 {
		t.Fatalf("stopped timer live seconds: expected 100, got %.2f", got)
	}
	timer.Start(t0)
	if got := timer.LiveSeconds(t0.Add(25 * time.Second)); got != 125 {
		t.Fatalf("running timer live seconds: expected 125, got %.2f", got)
	}
}

func TestDayRecordCompletedTasks(t *testing.T) {
	t.Parallel()
	rec := domain.DayRecord{Tasks: []domain.TaskState{
		{Description: "a", Completed: true},
		{Description: "b"},
		{Description: "c", Completed: true},
	}}
	if got := rec.CompletedTasks(); got != 2 {
		t.Fatalf("expected 2 completed tasks, got %d", got)
	}
}
