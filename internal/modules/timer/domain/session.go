package domain

import (
	"time"

	apperrors "dwt/internal/platform/errors"
)

const SchemaVersion = 1

// PlannedDuration is the fixed length of a deep work session.
const PlannedDuration = time.Hour

// MinLoggableMinutes is the threshold below which an early-ended session is
// discarded instead of logged.
const MinLoggableMinutes = 10

// Session is the single in-progress session record. PausedAt is non-nil iff
// the session is currently paused; PausedTotal accumulates only closed pause
// spans. RemainingSnap is the remaining time captured at the moment of the
// last pause, kept so a paused session can be redisplayed without clock math.
type Session struct {
	StartedAt     time.Time
	Planned       time.Duration
	PausedTotal   time.Duration
	PausedAt      *time.Time
	RemainingSnap time.Duration
}

func NewSession(now time.Time) Session {
	return Session{StartedAt: now, Planned: PlannedDuration}
}

func (s Session) IsPaused() bool {
	return s.PausedAt != nil
}

// Elapsed is running time excluding all pause spans, including an open one.
// Never negative.
func (s Session) Elapsed(now time.Time) time.Duration {
	end := now
	if s.PausedAt != nil {
		end = *s.PausedAt
	}
	elapsed := end.Sub(s.StartedAt) - s.PausedTotal
	if elapsed < 0 {
		elapsed = 0
	}
	return elapsed
}

func (s Session) Remaining(now time.Time) time.Duration {
	remaining := s.Planned - s.Elapsed(now)
	if remaining < 0 {
		remaining = 0
	}
	return remaining
}

// Pause closes the running stretch. The remaining snapshot is what status and
// resume report while paused.
func (s Session) Pause(now time.Time) (Session, error) {
	if s.IsPaused() {
		return s, apperrors.ErrAlreadyPaused
	}
	s.RemainingSnap = s.Remaining(now)
	s.PausedAt = &now
	return s, nil
}

// Resume folds the open pause span into PausedTotal so that remaining time
// picks up exactly where Pause left it.
func (s Session) Resume(now time.Time) (Session, error) {
	if !s.IsPaused() {
		return s, apperrors.ErrNotPaused
	}
	s.PausedTotal += now.Sub(*s.PausedAt)
	s.PausedAt = nil
	return s, nil
}

// WorkedMinutes floors elapsed running time to whole minutes, minimum 1.
func (s Session) WorkedMinutes(now time.Time) int {
	minutes := int(s.Elapsed(now) / time.Minute)
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

// PlannedMinutes is what a naturally completed session logs, regardless of
// how long the wall clock ran.
func (s Session) PlannedMinutes() int {
	return int((s.Planned + time.Minute/2) / time.Minute)
}
