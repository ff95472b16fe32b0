package bootstrap

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	automationinadapter "dwt/internal/modules/automation/adapter/in"
	automationoutadapter "dwt/internal/modules/automation/adapter/out"
	automationservice "dwt/internal/modules/automation/service"
	automationusecase "dwt/internal/modules/automation/usecase"
	reportinadapter "dwt/internal/modules/report/adapter/in"
	reportoutadapter "dwt/internal/modules/report/adapter/out"
	reportservice "dwt/internal/modules/report/service"
	reportusecase "dwt/internal/modules/report/usecase"
	timerinadapter "dwt/internal/modules/timer/adapter/in"
	timeroutadapter "dwt/internal/modules/timer/adapter/out"
	timerservice "dwt/internal/modules/timer/service"
	timerusecase "dwt/internal/modules/timer/usecase"
	workloginadapter "dwt/internal/modules/worklog/adapter/in"
	worklogoutadapter "dwt/internal/modules/worklog/adapter/out"
	worklogservice "dwt/internal/modules/worklog/service"
	worklogusecase "dwt/internal/modules/worklog/usecase"
	"dwt/internal/platform/clock"
	"dwt/internal/platform/config"
	"dwt/internal/platform/id"
	uiapp "dwt/internal/ui/app"
)

type App struct {
	TimerCLI      timerinadapter.CLIHandler
	WorklogCLI    workloginadapter.CLIHandler
	ReportCLI     reportinadapter.CLIHandler
	AutomationCLI automationinadapter.CLIHandler
}

func New(cfg config.Config) (*App, error) {
	clk := clock.SystemClock{}
	ids := id.UUID{}

	automationUC := automationusecase.NewInteractor(automationservice.NewAutomationService(
		automationoutadapter.NewFileManifestStore(cfg.DataDir, cfg.ManifestPath),
		automationoutadapter.NewOSExecRunner(),
		automationoutadapter.NewGRPCHost(),
	))

	logStore := worklogoutadapter.NewFileLogStore(cfg.LogPath, clk)
	projector, err := worklogoutadapter.NewSQLiteIndexProjector(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new worklog projector: %w", err)
	}
	worklogUC := worklogusecase.NewInteractor(
		worklogservice.NewWorklogService(ids, logStore, projector),
		logStore,
		projector,
		clk,
	)

	timerUC := timerusecase.NewInteractor(
		timerservice.NewTimerService(clk),
		timeroutadapter.NewFileStateStore(cfg.StatePath),
		timeroutadapter.NewAutomationHookAdapter(automationUC),
		worklogUC,
		timeroutadapter.NewStdinPrompt(os.Stdin, os.Stdout),
	)

	reportUC := reportusecase.NewInteractor(
		reportservice.NewReportService(clk),
		worklogUC,
		reportoutadapter.NewFileGoalStore(cfg.GoalPath),
	)

	return &App{
		TimerCLI:      timerinadapter.NewCLIHandler(timerUC),
		WorklogCLI:    workloginadapter.NewCLIHandler(worklogUC),
		ReportCLI:     reportinadapter.NewCLIHandler(reportUC),
		AutomationCLI: automationinadapter.NewCLIHandler(automationUC),
	}, nil
}

// RunCountdown drives the live countdown UI for the already-active session
// and reports how it ended.
func RunCountdown(ctx context.Context, app *App) (uiapp.Result, error) {
	status, err := app.TimerCLI.Status(ctx)
	if err != nil {
		return uiapp.Result{}, err
	}
	if !status.Active {
		return uiapp.Result{}, fmt.Errorf("no active session to display")
	}
	model := uiapp.NewModel(app.TimerCLI, status)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return uiapp.Result{}, err
	}
	m, ok := final.(uiapp.Model)
	if !ok {
		return uiapp.Result{}, fmt.Errorf("unexpected final model %T", final)
	}
	return m.Result(), nil
}
