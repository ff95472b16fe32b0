package usecase

import (
	"context"
	"fmt"

	"dwt/internal/modules/report/domain"
	"dwt/internal/modules/report/dto"
	reportin "dwt/internal/modules/report/port/in"
	reportout "dwt/internal/modules/report/port/out"
	"dwt/internal/modules/report/service"
	worklogin "dwt/internal/modules/worklog/port/in"
)

type Interactor struct {
	svc     *service.ReportService
	worklog worklogin.Usecase
	goals   reportout.GoalStore
}

func NewInteractor(svc *service.ReportService, worklog worklogin.Usecase, goals reportout.GoalStore) reportin.Usecase {
	return &Interactor{svc: svc, worklog: worklog, goals: goals}
}

// Report reads the whole log and the goal, buckets by day, and precomputes
// the graph window, this week's rows, and the deficit carry. Strictly
// read-only over the log.
func (i *Interactor) Report(ctx context.Context) (dto.ReportOutput, error) {
	entries, err := i.worklog.List(ctx)
	if err != nil {
		return dto.ReportOutput{}, err
	}
	goal, err := i.goals.Load(ctx)
	if err != nil {
		return dto.ReportOutput{}, err
	}

	today := domain.Day(i.svc.Now())
	daily := i.svc.Bucket(entries)

	// Last graph column is the current week, with future days dimmed.
	graphStart := domain.WeekStart(today).AddDate(0, 0, -7*(domain.GraphWeeks-1))
	cells := make([]dto.DayCell, 0, domain.GraphWeeks*7)
	for week := 0; week < domain.GraphWeeks; week++ {
		for day := 0; day < 7; day++ {
			date := graphStart.AddDate(0, 0, 7*week+day)
			cells = append(cells, dto.DayCell{
				Date:   date,
				Hours:  daily[date],
				Level:  domain.HeatLevel(daily[date]),
				Future: date.After(today),
			})
		}
	}

	weekStart := domain.WeekStart(today)
	week := make([]dto.WeekRow, 0, 7)
	for day := 0; day < 7; day++ {
		date := weekStart.AddDate(0, 0, day)
		week = append(week, dto.WeekRow{
			Date:    date,
			Hours:   daily[date],
			Level:   domain.HeatLevel(daily[date]),
			Weekday: day < 5,
			Today:   date.Equal(today),
		})
	}

	deficit := daily.Deficit(weekStart, goal)
	extra := daily.ExtraHours(weekStart, goal)
	remaining := deficit - extra
	if remaining < 0 {
		remaining = 0
	}

	return dto.ReportOutput{
		Today:            today,
		DailyGoal:        goal,
		GraphStart:       graphStart,
		GraphWeeks:       domain.GraphWeeks,
		Cells:            cells,
		Week:             week,
		WeekdayHours:     daily.WeekdayHours(weekStart),
		Deficit:          deficit,
		ExtraThisWeek:    extra,
		RemainingDeficit: remaining,
		YearSessionDays:  daily.YearSessionDays(today.Year()),
		ThirtyDayAverage: daily.ThirtyDayAverage(today),
	}, nil
}

func (i *Interactor) GetGoal(ctx context.Context) (dto.GoalOutput, error) {
	goal, err := i.goals.Load(ctx)
	if err != nil {
		return dto.GoalOutput{}, err
	}
	return dto.GoalOutput{DailyGoalHours: goal}, nil
}

func (i *Interactor) SetGoal(ctx context.Context, hours float64) (dto.GoalOutput, error) {
	if hours < 0 {
		return dto.GoalOutput{}, fmt.Errorf("daily goal cannot be negative")
	}
	if err := i.goals.Save(ctx, hours); err != nil {
		return dto.GoalOutput{}, err
	}
	return dto.GoalOutput{DailyGoalHours: hours}, nil
}
