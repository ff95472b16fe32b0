package dto

import "time"

type DayCell struct {
	Date   time.Time
	Hours  float64
	Level  int
	Future bool
}

type WeekRow struct {
	Date    time.Time
	Hours   float64
	Level   int
	Weekday bool
	Today   bool
}

// ReportOutput carries everything the renderer needs, already bucketed.
type ReportOutput struct {
	Today     time.Time
	DailyGoal float64

	// Graph cells in column-major order: GraphWeeks columns of 7 days
	// starting at GraphStart (a Monday).
	GraphStart time.Time
	GraphWeeks int
	Cells      []DayCell

	Week             []WeekRow
	WeekdayHours     float64
	Deficit          float64
	ExtraThisWeek    float64
	RemainingDeficit float64

	YearSessionDays  int
	ThirtyDayAverage float64
}

type GoalOutput struct {
	DailyGoalHours float64
}
