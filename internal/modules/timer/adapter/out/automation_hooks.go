package out

import (
	"context"
	"errors"

	automationin "dwt/internal/modules/automation/port/in"
	timerout "dwt/internal/modules/timer/port/out"
)

// AutomationHookAdapter feeds timer lifecycle signals into the automation
// module. Manifest problems come back as a single synthetic report so the
// caller still treats them as non-fatal.
type AutomationHookAdapter struct {
	automation automationin.Usecase
}

func NewAutomationHookAdapter(automation automationin.Usecase) timerout.HookRunner {
	return &AutomationHookAdapter{automation: automation}
}

func (a *AutomationHookAdapter) Fire(ctx context.Context, signal timerout.Signal) []timerout.HookReport {
	results, err := a.automation.Fire(ctx, string(signal))
	if err != nil {
		return []timerout.HookReport{{Name: "automation manifest", Err: err}}
	}
	reports := make([]timerout.HookReport, 0, len(results))
	for _, result := range results {
		report := timerout.HookReport{Name: result.Name}
		if result.Error != "" {
			report.Err = errors.New(result.Error)
		}
		reports = append(reports, report)
	}
	return reports
}
