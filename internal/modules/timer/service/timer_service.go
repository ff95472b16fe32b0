package service

import (
	"time"

	"dwt/internal/modules/timer/domain"
	"dwt/internal/platform/clock"
)

// TimerService applies domain transitions at the current instant. All clock
// reads funnel through here so the usecase stays deterministic under a fake
// clock.
type TimerService struct {
	clock clock.Clock
}

func NewTimerService(clock clock.Clock) *TimerService {
	return &TimerService{clock: clock}
}

func (s *TimerService) Now() time.Time {
	return s.clock.Now()
}

func (s *TimerService) Begin() domain.Session {
	return domain.NewSession(s.clock.Now())
}

func (s *TimerService) Pause(session domain.Session) (domain.Session, error) {
	return session.Pause(s.clock.Now())
}

func (s *TimerService) Resume(session domain.Session) (domain.Session, error) {
	return session.Resume(s.clock.Now())
}

func (s *TimerService) Remaining(session domain.Session) time.Duration {
	if session.IsPaused() {
		return session.RemainingSnap
	}
	return session.Remaining(s.clock.Now())
}

func (s *TimerService) WorkedMinutes(session domain.Session) int {
	return session.WorkedMinutes(s.clock.Now())
}
