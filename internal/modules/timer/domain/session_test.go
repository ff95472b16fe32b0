package domain_test

import (
	"errors"
	"testing"
	"time"

	"dwt/internal/modules/timer/domain"
	apperrors "dwt/internal/platform/errors"
)

func at(offset time.Duration) time.Time {
	return time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC).Add(offset)
}

func TestPauseResumeAccounting(t *testing.T) {
	t.Parallel()
	session := domain.NewSession(at(0))

	paused, err := session.Pause(at(10 * time.Second))
	if err != nil {
		t.Fatalf("pause: %v", err)
	}
	if !paused.IsPaused() {
		t.Fatalf("session must be paused")
	}
	if paused.RemainingSnap != 59*time.Minute+50*time.Second {
		t.Fatalf("remaining snapshot = %v", paused.RemainingSnap)
	}

	running, err := paused.Resume(at(70 * time.Second))
	if err != nil {
		t.Fatalf("resume: %v", err)
	}
	if running.IsPaused() {
		t.Fatalf("session must be running after resume")
	}
	if running.PausedTotal != 60*time.Second {
		t.Fatalf("paused total = %v", running.PausedTotal)
	}

	// 100s wall clock minus 60s paused leaves 40s worked.
	if got := running.Elapsed(at(100 * time.Second)); got != 40*time.Second {
		t.Fatalf("elapsed = %v", got)
	}
	if got := running.Remaining(at(100 * time.Second)); got != 59*time.Minute+20*time.Second {
		t.Fatalf("remaining = %v", got)
	}
}

func TestPauseFreezesElapsed(t *testing.T) {
	t.Parallel()
	session := domain.NewSession(at(0))
	paused, err := session.Pause(at(5 * time.Minute))
	if err != nil {
		t.Fatalf("pause: %v", err)
	}

	// Wall clock keeps moving; elapsed does not.
	if got := paused.Elapsed(at(2 * time.Hour)); got != 5*time.Minute {
		t.Fatalf("elapsed while paused = %v", got)
	}
}

func TestDoublePauseAndStrayResume(t *testing.T) {
	t.Parallel()
	session := domain.NewSession(at(0))

	if _, err := session.Resume(at(time.Second)); !errors.Is(err, apperrors.ErrNotPaused) {
		t.Fatalf("resume on running session: %v", err)
	}

	paused, err := session.Pause(at(time.Minute))
	if err != nil {
		t.Fatalf("pause: %v", err)
	}
	if _, err := paused.Pause(at(2 * time.Minute)); !errors.Is(err, apperrors.ErrAlreadyPaused) {
		t.Fatalf("second pause: %v", err)
	}
}

func TestRemainingClampsAtZero(t *testing.T) {
	t.Parallel()
	session := domain.NewSession(at(0))
	if got := session.Remaining(at(90 * time.Minute)); got != 0 {
		t.Fatalf("remaining past the end = %v", got)
	}
	if got := session.Elapsed(at(-time.Minute)); got != 0 {
		t.Fatalf("elapsed before start = %v", got)
	}
}

func TestWorkedMinutes(t *testing.T) {
	t.Parallel()
	session := domain.NewSession(at(0))

	if got := session.WorkedMinutes(at(30 * time.Second)); got != 1 {
		t.Fatalf("sub-minute session rounds up to 1, got %d", got)
	}
	if got := session.WorkedMinutes(at(17*time.Minute + 59*time.Second)); got != 17 {
		t.Fatalf("worked minutes floor, got %d", got)
	}
	if got := session.PlannedMinutes(); got != 60 {
		t.Fatalf("planned minutes = %d", got)
	}
}
