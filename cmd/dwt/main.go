package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"dwt/internal/bootstrap"
	timerdto "dwt/internal/modules/timer/dto"
	"dwt/internal/platform/config"
	apperrors "dwt/internal/platform/errors"
	uiapp "dwt/internal/ui/app"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataDir string

	root := &cobra.Command{
		Use:           "dwt",
		Short:         "Deep work session timer and tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	root.PersistentFlags().StringVar(&dataDir, "data", home, "data directory")

	root.AddCommand(newStartCmd(&dataDir))
	root.AddCommand(newStopCmd(&dataDir))
	root.AddCommand(newContinueCmd(&dataDir))
	root.AddCommand(newStatusCmd(&dataDir))
	root.AddCommand(newSettingsCmd(&dataDir))
	root.AddCommand(newReportCmd(&dataDir))
	root.AddCommand(newLogCmd(&dataDir))
	root.AddCommand(newReindexCmd(&dataDir))
	root.AddCommand(newAutomationCmd(&dataDir))
	return root
}

func loadApp(dataDir string) (*bootstrap.App, error) {
	cfg, err := config.New(dataDir)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func printHookFailures(cmd *cobra.Command, failures []timerdto.HookFailure) {
	for _, f := range failures {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "hook %s failed: %s\n", f.Name, f.Reason)
	}
}

func formatClock(d time.Duration) string {
	secs := int(d.Round(time.Second).Seconds())
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// reportOutcome prints the countdown's final transition.
func reportOutcome(cmd *cobra.Command, result uiapp.Result) error {
	printHookFailures(cmd, result.HookFailures)
	if result.Err != nil {
		return result.Err
	}
	out := cmd.OutOrStdout()
	switch result.Outcome {
	case uiapp.OutcomeCompleted:
		_, _ = fmt.Fprintf(out, "Session completed. Logged %d minutes.\n", result.Minutes)
	case uiapp.OutcomePaused:
		_, _ = fmt.Fprintf(out, "Session paused at %s. Use 'continue' to resume.\n", formatClock(result.Remaining))
	case uiapp.OutcomeEnded:
		if result.Logged {
			_, _ = fmt.Fprintf(out, "Session ended. Logged %d minutes.\n", result.Minutes)
		} else {
			_, _ = fmt.Fprintln(out, "Session ended. Too short to log.")
		}
	case uiapp.OutcomeQuit:
		_, _ = fmt.Fprintln(out, "Session quit. No time logged.")
	}
	return nil
}

func newStartCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start a new deep work session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.TimerCLI.Start(context.Background())
			if err != nil {
				if errors.Is(err, apperrors.ErrSessionActive) {
					return fmt.Errorf("a session is already active: use 'continue' to resume or 'stop' to end it")
				}
				return err
			}
			printHookFailures(cmd, out.HookFailures)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deep work session started at %s for %s.\n",
				out.StartedAt.Local().Format("15:04:05"), out.Planned)
			result, err := bootstrap.RunCountdown(context.Background(), app)
			if err != nil {
				return err
			}
			return reportOutcome(cmd, result)
		},
	}
}

func newStopCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Pause the current session, or end it if already paused",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			status, err := app.TimerCLI.Status(context.Background())
			if err != nil {
				return err
			}
			if !status.Active {
				return fmt.Errorf("no active session to stop")
			}
			out := cmd.OutOrStdout()
			if !status.Paused {
				paused, err := app.TimerCLI.Pause(context.Background())
				if err != nil {
					return err
				}
				printHookFailures(cmd, paused.HookFailures)
				_, _ = fmt.Fprintf(out, "Session paused at %s. Use 'continue' to resume.\n", formatClock(paused.Remaining))
				return nil
			}
			_, _ = fmt.Fprint(out, "Session is already paused. End it completely? (y/N): ")
			if !readYes(cmd) {
				return nil
			}
			ended, err := app.TimerCLI.EndEarly(context.Background())
			if err != nil {
				return err
			}
			printHookFailures(cmd, ended.HookFailures)
			if ended.Logged {
				_, _ = fmt.Fprintf(out, "Session ended. Logged %d minutes.\n", ended.Minutes)
			} else {
				_, _ = fmt.Fprintln(out, "Session ended. Too short to log.")
			}
			return nil
		},
	}
}

func readYes(cmd *cobra.Command) bool {
	scanner := bufio.NewScanner(cmd.InOrStdin())
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}

func newContinueCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "continue",
		Short: "Resume a paused session or re-attach to a running one",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			status, err := app.TimerCLI.Status(context.Background())
			if err != nil {
				return err
			}
			if !status.Active {
				return fmt.Errorf("no active session to continue: use 'start' to begin a new one")
			}
			out := cmd.OutOrStdout()
			if status.Paused {
				resumed, err := app.TimerCLI.Resume(context.Background())
				if err != nil {
					return err
				}
				printHookFailures(cmd, resumed.HookFailures)
				_, _ = fmt.Fprintf(out, "Continuing session, %s remaining.\n", formatClock(resumed.Remaining))
			} else {
				_, _ = fmt.Fprintf(out, "Re-attaching to running session, %s remaining.\n", formatClock(status.Remaining))
			}
			result, err := bootstrap.RunCountdown(context.Background(), app)
			if err != nil {
				return err
			}
			return reportOutcome(cmd, result)
		},
	}
}

func newStatusCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show current session status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			status, err := app.TimerCLI.Status(context.Background())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !status.Active {
				_, _ = fmt.Fprintln(out, "No active deep work session.")
				return nil
			}
			if status.Paused {
				_, _ = fmt.Fprintln(out, "Session PAUSED")
				_, _ = fmt.Fprintf(out, "Started:   %s\n", status.StartedAt.Local().Format("15:04:05"))
				_, _ = fmt.Fprintf(out, "Paused at: %s\n", status.PausedAt.Local().Format("15:04:05"))
				_, _ = fmt.Fprintf(out, "Remaining: %s\n", formatClock(status.Remaining))
				_, _ = fmt.Fprintln(out, "Use 'continue' to resume.")
				return nil
			}
			_, _ = fmt.Fprintln(out, "Session ACTIVE")
			_, _ = fmt.Fprintf(out, "Started:   %s\n", status.StartedAt.Local().Format("15:04:05"))
			_, _ = fmt.Fprintf(out, "Remaining: %s\n", formatClock(status.Remaining))
			_, _ = fmt.Fprintln(out, "Use 'stop' to pause.")
			return nil
		},
	}
}

func newSettingsCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "settings [daily-goal-hours]",
		Short: "Show or change the daily goal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				goal, err := app.ReportCLI.GetGoal(context.Background())
				if err != nil {
					return err
				}
				if goal.DailyGoalHours == 0 {
					_, _ = fmt.Fprintln(out, "Daily goal: vacation mode (0 hours)")
				} else {
					_, _ = fmt.Fprintf(out, "Daily goal: %.1f hours/day\n", goal.DailyGoalHours)
				}
				return nil
			}
			hours, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("parse daily goal %q: %w", args[0], err)
			}
			goal, err := app.ReportCLI.SetGoal(context.Background(), hours)
			if err != nil {
				return err
			}
			if goal.DailyGoalHours == 0 {
				_, _ = fmt.Fprintln(out, "Vacation mode enabled (goal 0 hours).")
			} else {
				_, _ = fmt.Fprintf(out, "Daily goal set to %.1f hours/day.\n", goal.DailyGoalHours)
			}
			return nil
		},
	}
}

func newReportCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Show the contribution graph, weekly progress, and stats",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			rendered, err := app.ReportCLI.Render(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return nil
		},
	}
}

func newLogCmd(dataDir *string) *cobra.Command {
	var limit int
	logCmd := &cobra.Command{
		Use:   "log",
		Short: "List recent logged sessions and daily totals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			entries, err := app.WorklogCLI.Recent(context.Background(), limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				_, _ = fmt.Fprintln(out, "No sessions logged yet.")
				return nil
			}
			for _, e := range entries {
				mark := " "
				if e.Completed {
					mark = "*"
				}
				_, _ = fmt.Fprintf(out, "%s %s  %3dm  %s\n",
					mark, e.StartedAt.Local().Format("2006-01-02 15:04"), e.Minutes, e.ID)
			}
			totals, err := app.WorklogCLI.DailyTotals(context.Background(), 7)
			if err != nil {
				return err
			}
			if len(totals) > 0 {
				_, _ = fmt.Fprintln(out)
				_, _ = fmt.Fprintln(out, "Last 7 days:")
				for _, d := range totals {
					_, _ = fmt.Fprintf(out, "  %s  %3dm\n", d.Date, d.Minutes)
				}
			}
			return nil
		},
	}
	logCmd.Flags().IntVar(&limit, "limit", 20, "max entries to show")
	return logCmd
}

func newReindexCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reindex",
		Short: "Rebuild the session index from the log",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			count, err := app.WorklogCLI.Reindex(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "reindexed %d sessions\n", count)
			return nil
		},
	}
}

func newAutomationCmd(dataDir *string) *cobra.Command {
	automation := &cobra.Command{Use: "automation", Short: "Manage automation hooks"}

	doctor := &cobra.Command{
		Use:   "doctor",
		Short: "Check that configured hooks are runnable",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			results, err := app.AutomationCLI.Doctor(context.Background())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(results) == 0 {
				_, _ = fmt.Fprintln(out, "No hooks configured.")
				return nil
			}
			for _, r := range results {
				state := "ok"
				switch {
				case r.Error != "":
					state = "error: " + r.Error
				case !r.BinaryReachable:
					state = "binary not reachable"
				case r.Kind == "plugin" && !r.LifecycleOK:
					state = "plugin handshake failed"
				}
				_, _ = fmt.Fprintf(out, "%-20s %-7s %s\n", r.Name, r.Kind, state)
			}
			return nil
		},
	}
	automation.AddCommand(doctor)
	return automation
}
