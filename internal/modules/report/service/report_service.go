package service

import (
	"time"

	"dwt/internal/modules/report/domain"
	worklogdto "dwt/internal/modules/worklog/dto"
	"dwt/internal/platform/clock"
)

type ReportService struct {
	clock clock.Clock
}

func NewReportService(clock clock.Clock) *ReportService {
	return &ReportService{clock: clock}
}

func (s *ReportService) Now() time.Time {
	return s.clock.Now()
}

// Bucket folds completed entries into hours per calendar date. Incomplete or
// zero-length records never contribute.
func (s *ReportService) Bucket(entries []worklogdto.EntryOutput) domain.DailyHours {
	daily := domain.DailyHours{}
	for _, entry := range entries {
		if !entry.Completed || entry.Minutes <= 0 {
			continue
		}
		day := domain.Day(entry.StartedAt)
		daily[day] += float64(entry.Minutes) / 60.0
	}
	return daily
}
