package in

import (
	"context"
	"fmt"
	"strings"
	"time"

	"dwt/internal/modules/report/dto"
	reportin "dwt/internal/modules/report/port/in"
	"dwt/internal/ui/theme"
)

type CLIHandler struct {
	usecase reportin.Usecase
}

func NewCLIHandler(usecase reportin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) GetGoal(ctx context.Context) (dto.GoalOutput, error) {
	return h.usecase.GetGoal(ctx)
}

func (h CLIHandler) SetGoal(ctx context.Context, hours float64) (dto.GoalOutput, error) {
	return h.usecase.SetGoal(ctx, hours)
}

// Render produces the full report: contribution graph, this week's bars, and
// summary statistics.
func (h CLIHandler) Render(ctx context.Context) (string, error) {
	report, err := h.usecase.Report(ctx)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString(theme.Title.Render("Deep Work Tracker"))
	b.WriteString("\n")
	renderGraph(&b, report)
	renderWeek(&b, report)
	renderStats(&b, report)
	return b.String(), nil
}

func renderGraph(b *strings.Builder, report dto.ReportOutput) {
	fmt.Fprintf(b, "\n%s\n", theme.Title.Render("Contribution Graph (Last 6 months)"))
	b.WriteString(strings.Repeat("─", 80))
	b.WriteString("\n")

	b.WriteString("     ")
	b.WriteString(monthHeader(report.GraphStart, report.GraphWeeks))
	b.WriteString("\n")

	labels := map[int]string{0: "Mon", 2: "Wed", 4: "Fri"}
	for day := 0; day < 7; day++ {
		if label, ok := labels[day]; ok {
			fmt.Fprintf(b, "%3s  ", label)
		} else {
			b.WriteString("     ")
		}
		for week := 0; week < report.GraphWeeks; week++ {
			cell := report.Cells[week*7+day]
			b.WriteString(renderCell(cell))
			if week < report.GraphWeeks-1 {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("\n     Less ")
	for level := 1; level <= 4; level++ {
		b.WriteString(theme.Heat[level].Render("█"))
		b.WriteString(" ")
	}
	b.WriteString("More\n")
	if report.DailyGoal == 0 {
		b.WriteString("     Goal: vacation mode (no weekly goal)\n")
	} else {
		fmt.Fprintf(b, "     Goal: %.0f hours/week (weekdays)\n", report.DailyGoal*5)
	}
}

func renderCell(cell dto.DayCell) string {
	if cell.Future {
		return theme.Dim.Render("··")
	}
	if cell.Hours == 0 {
		return theme.Heat[0].Render("··")
	}
	return theme.Heat[cell.Level].Render("██")
}

// monthHeader stretches each month's label across the weeks it spans; every
// week column is two cells plus a one-cell gap.
func monthHeader(start time.Time, weeks int) string {
	var b strings.Builder
	current := ""
	span := 0
	flush := func() {
		if span == 0 {
			return
		}
		width := span*2 + (span - 1)
		label := current
		if len(label) > width {
			label = label[:width]
		}
		pad := width - len(label)
		left := pad / 2
		b.WriteString(strings.Repeat(" ", left))
		b.WriteString(label)
		b.WriteString(strings.Repeat(" ", pad-left))
		b.WriteString(" ")
	}
	for week := 0; week < weeks; week++ {
		month := start.AddDate(0, 0, 7*week).Format("Jan")
		if month != current {
			flush()
			current = month
			span = 1
			continue
		}
		span++
	}
	flush()
	return strings.TrimRight(b.String(), " ")
}

func renderWeek(b *strings.Builder, report dto.ReportOutput) {
	fmt.Fprintf(b, "\n%s\n", theme.Title.Render("This Week's Progress"))
	b.WriteString(strings.Repeat("─", 50))
	b.WriteString("\n")

	for _, row := range report.Week {
		goalText := "—"
		if row.Weekday {
			if report.DailyGoal == 0 {
				goalText = "off"
			} else {
				goalText = fmt.Sprintf("%.1fh", report.DailyGoal)
			}
		}
		marker := ""
		if row.Today {
			marker = " ← Today"
		}
		indicator := ""
		if row.Weekday && report.DailyGoal > 0 && row.Hours > report.DailyGoal {
			indicator = fmt.Sprintf(" (+%.1fh → deficit)", row.Hours-report.DailyGoal)
		}
		fmt.Fprintf(b, "%s %s │%s│ %4.1fh / %s%s%s\n",
			row.Date.Format("Mon"),
			row.Date.Format("01/02"),
			weekBar(row, report.DailyGoal),
			row.Hours,
			goalText,
			indicator,
			marker,
		)
	}

	b.WriteString(strings.Repeat("─", 50))
	b.WriteString("\n")
	renderWeekSummary(b, report)
}

func weekBar(row dto.WeekRow, dailyGoal float64) string {
	const cells = 20
	scale := dailyGoal
	if !row.Weekday || scale <= 0 {
		scale = 4.0
	}
	base := row.Hours / scale
	if base > 1 {
		base = 1
	}
	overflow := 0.0
	if row.Weekday && dailyGoal > 0 && row.Hours > dailyGoal {
		overflow = (row.Hours - dailyGoal) / dailyGoal
	}
	filled := int(cells * base)
	over := int(cells * overflow)
	if over > cells-filled {
		over = cells - filled
	}
	empty := cells - filled - over

	style := theme.Heat[row.Level]
	if !row.Weekday && row.Hours > 0 {
		style = theme.Heat[4]
	}
	var b strings.Builder
	b.WriteString(style.Render(strings.Repeat("█", filled)))
	b.WriteString(theme.Overflow.Render(strings.Repeat("█", over)))
	b.WriteString(strings.Repeat("░", empty))
	return b.String()
}

func renderWeekSummary(b *strings.Builder, report dto.ReportOutput) {
	if report.DailyGoal == 0 {
		b.WriteString(theme.Muted.Render("Vacation mode: no weekly goal set"))
		b.WriteString("\n")
		return
	}
	adjustedGoal := report.DailyGoal*5 + report.Deficit
	progress := 0.0
	if adjustedGoal > 0 {
		progress = report.WeekdayHours / adjustedGoal
	}
	fmt.Fprintf(b, "Week Total: %.1fh / %.1fh (%.1f%%) - Weekdays\n", report.WeekdayHours, adjustedGoal, progress*100)

	if report.Deficit > 0 {
		if report.ExtraThisWeek > 0 {
			reduced := report.Deficit - report.RemainingDeficit
			if report.RemainingDeficit > 0 {
				fmt.Fprintf(b, "%s\n", theme.Muted.Render(fmt.Sprintf("Deficit from previous weeks: %.1fh (reduced by %.1fh this week)", report.RemainingDeficit, reduced)))
			} else {
				fmt.Fprintf(b, "%s\n", theme.Good.Render(fmt.Sprintf("All previous deficits cleared this week! (cleared %.1fh)", reduced)))
			}
		} else {
			fmt.Fprintf(b, "%s\n", theme.Muted.Render(fmt.Sprintf("Deficit from previous weeks: %.1fh (work >%.1fh/day to reduce)", report.Deficit, report.DailyGoal)))
		}
	}

	switch {
	case report.WeekdayHours >= adjustedGoal:
		fmt.Fprintf(b, "%s\n", theme.Good.Render("Weekly goal achieved!"))
	case report.WeekdayHours >= adjustedGoal*0.8:
		fmt.Fprintf(b, "%s\n", theme.Warn.Render(fmt.Sprintf("Almost there! %.1fh to go", adjustedGoal-report.WeekdayHours)))
	default:
		fmt.Fprintf(b, "Keep pushing! %.1fh remaining\n", adjustedGoal-report.WeekdayHours)
	}
}

func renderStats(b *strings.Builder, report dto.ReportOutput) {
	fmt.Fprintf(b, "\n%s\n", theme.Title.Render("Statistics"))
	b.WriteString(strings.Repeat("─", 30))
	b.WriteString("\n")
	fmt.Fprintf(b, "Sessions this year: %d days\n", report.YearSessionDays)
	fmt.Fprintf(b, "30-day average: %.1f hours/day\n", report.ThirtyDayAverage)
}
