package domain

import "time"

// DefaultDailyGoalHours applies when no goal has ever been configured.
const DefaultDailyGoalHours = 4.0

// DeficitWindowWeeks is how far back unmet weekly goals carry forward.
const DeficitWindowWeeks = 8

// GraphWeeks is the trailing window of the contribution graph.
const GraphWeeks = 26

// DailyHours maps a calendar date (midnight UTC) to hours worked that day.
type DailyHours map[time.Time]float64

// Day normalizes an instant to its calendar date in UTC.
func Day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// WeekStart returns the Monday of the week containing t.
func WeekStart(t time.Time) time.Time {
	day := Day(t)
	weekday := int(day.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return day.AddDate(0, 0, -(weekday - 1))
}

func IsWeekday(t time.Time) bool {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	default:
		return true
	}
}

// WeekdayHours sums Monday through Friday of the week starting at weekStart.
func (d DailyHours) WeekdayHours(weekStart time.Time) float64 {
	total := 0.0
	for i := 0; i < 5; i++ {
		total += d[weekStart.AddDate(0, 0, i)]
	}
	return total
}

// Deficit is the accumulated shortfall against the weekday goal over the
// DeficitWindowWeeks weeks before weekStart. The current week never counts
// against itself.
func (d DailyHours) Deficit(weekStart time.Time, dailyGoal float64) float64 {
	if dailyGoal <= 0 {
		return 0
	}
	weeklyGoal := dailyGoal * 5
	total := 0.0
	for offset := 1; offset <= DeficitWindowWeeks; offset++ {
		hours := d.WeekdayHours(weekStart.AddDate(0, 0, -7*offset))
		if hours < weeklyGoal {
			total += weeklyGoal - hours
		}
	}
	return total
}

// ExtraHours is weekday work beyond the daily goal within one week; it is
// what pays down a carried deficit.
func (d DailyHours) ExtraHours(weekStart time.Time, dailyGoal float64) float64 {
	if dailyGoal <= 0 {
		return 0
	}
	extra := 0.0
	for i := 0; i < 5; i++ {
		if hours := d[weekStart.AddDate(0, 0, i)]; hours > dailyGoal {
			extra += hours - dailyGoal
		}
	}
	return extra
}

// YearSessionDays counts dates with any work in the given year.
func (d DailyHours) YearSessionDays(year int) int {
	count := 0
	for day, hours := range d {
		if day.Year() == year && hours > 0 {
			count++
		}
	}
	return count
}

// ThirtyDayAverage is total hours over the trailing 30 days divided by 30;
// zero when no day in the window has work.
func (d DailyHours) ThirtyDayAverage(today time.Time) float64 {
	total := 0.0
	seen := false
	for i := 0; i < 30; i++ {
		if hours, ok := d[Day(today).AddDate(0, 0, -i)]; ok {
			total += hours
			seen = true
		}
	}
	if !seen {
		return 0
	}
	return total / 30
}

// HeatLevel maps hours worked to a 0-4 intensity bucket for the graph ramp.
func HeatLevel(hours float64) int {
	switch {
	case hours == 0:
		return 0
	case hours < 2:
		return 1
	case hours < 3:
		return 2
	case hours < 4:
		return 3
	default:
		return 4
	}
}
