package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/blaisecz/study-tracker/internal/api/validation"
	"github.com/blaisecz/study-tracker/internal/app"
	"github.com/blaisecz/study-tracker/internal/domain"
	"github.com/blaisecz/study-tracker/internal/report"
	"github.com/blaisecz/study-tracker/internal/seed"
	"github.com/blaisecz/study-tracker/internal/service"
	"github.com/spf13/cobra"
)

// opener builds the application; tests swap it for an in-memory one.
type opener func(ctx context.Context) (*app.App, error)

func newRootCmd(open opener) *cobra.Command {
	root := &cobra.Command{
		Use:           "studyctl",
		Short:         "Log study days and review execution from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newLogCmd(open),
		newAnalyzeCmd(open),
		newLogsCmd(open),
		newReportCmd(open),
		newWeeklyCmd(open),
		newHistoryCmd(open),
		newRemindCmd(open),
		newStreakCmd(open),
		newSeedCmd(open),
	)
	return root
}

// withApp opens the application for the duration of fn.
func withApp(cmd *cobra.Command, open opener, fn func(ctx context.Context, a *app.App) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	a, err := open(ctx)
	if err != nil {
		return err
	}
	defer a.Close(context.Background())
	return fn(ctx, a)
}

func newLogCmd(open opener) *cobra.Command {
	var (
		date       string
		planned    []string
		actual     []string
		energy     int
		clarity    int
		reflection string
	)

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Save a study day and print its analysis",
		Example: `  studyctl log --planned "Maths: Vector spaces" --planned "Polity: Rights" \
    --actual "Maths: Vector spaces" --energy 6 --clarity 7`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, open, func(ctx context.Context, a *app.App) error {
				if date == "" {
					date = a.Now().Format(domain.DateLayout)
				}
				req := &domain.CreateDailyLogRequest{
					Date:         date,
					PlannedTasks: strings.Join(planned, "\n"),
					ActualTasks:  strings.Join(actual, "\n"),
					Energy:       energy,
					Clarity:      clarity,
					Reflection:   reflection,
				}
				if err := checkRequest(req); err != nil {
					return err
				}

				saved, result, err := a.Logs.Save(ctx, req)
				if err != nil {
					return fmt.Errorf("save log: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", saved.LogDate.Format(domain.DateLayout))
				return report.Day(cmd.OutOrStdout(), result)
			})
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "calendar date (YYYY-MM-DD, default today)")
	cmd.Flags().StringArrayVar(&planned, "planned", nil, "planned task (repeatable)")
	cmd.Flags().StringArrayVar(&actual, "actual", nil, "completed task (repeatable)")
	cmd.Flags().IntVar(&energy, "energy", 0, "energy from 1 to 10")
	cmd.Flags().IntVar(&clarity, "clarity", 0, "clarity from 1 to 10")
	cmd.Flags().StringVar(&reflection, "reflection", "", "free-text reflection")
	_ = cmd.MarkFlagRequired("energy")
	_ = cmd.MarkFlagRequired("clarity")
	return cmd
}

func newAnalyzeCmd(open opener) *cobra.Command {
	var (
		planned []string
		actual  []string
		energy  int
		clarity int
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a day without saving it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, open, func(ctx context.Context, a *app.App) error {
				req := &domain.AnalyzeDayRequest{
					PlannedTasks: strings.Join(planned, "\n"),
					ActualTasks:  strings.Join(actual, "\n"),
					Energy:       energy,
					Clarity:      clarity,
				}
				if err := checkRequest(req); err != nil {
					return err
				}
				return report.Day(cmd.OutOrStdout(), a.Logs.AnalyzeDay(ctx, req))
			})
		},
	}

	cmd.Flags().StringArrayVar(&planned, "planned", nil, "planned task (repeatable)")
	cmd.Flags().StringArrayVar(&actual, "actual", nil, "completed task (repeatable)")
	cmd.Flags().IntVar(&energy, "energy", 0, "energy from 1 to 10")
	cmd.Flags().IntVar(&clarity, "clarity", 0, "clarity from 1 to 10")
	return cmd
}

func newLogsCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "logs",
		Short: "List every stored study day, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, open, func(ctx context.Context, a *app.App) error {
				logs, err := a.Logs.ListAll(ctx)
				if err != nil {
					return fmt.Errorf("list logs: %w", err)
				}
				if len(logs) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No logs yet.")
					return nil
				}
				return report.Logs(cmd.OutOrStdout(), logs)
			})
		},
	}
}

func newReportCmd(open opener) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print trend, balance, depth and verdicts over the most recent logs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if days < 1 || days > service.MaxWindowDays {
				return fmt.Errorf("--days must be between 1 and %d", service.MaxWindowDays)
			}
			return withApp(cmd, open, func(ctx context.Context, a *app.App) error {
				weekly, err := a.Analysis.Weekly(ctx, days)
				if err != nil {
					return fmt.Errorf("build report: %w", err)
				}
				return report.Weekly(cmd.OutOrStdout(), *weekly)
			})
		},
	}

	cmd.Flags().IntVar(&days, "days", service.DefaultWeeklyDays, "number of most recent logs")
	return cmd
}

func newWeeklyCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "weekly",
		Short: "Run the weekly verdict now: analyze, store and notify",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, open, func(ctx context.Context, a *app.App) error {
				result, err := a.Weekly.Run(ctx, a.Now())
				if errors.Is(err, domain.ErrNoLogs) {
					fmt.Fprintln(cmd.OutOrStdout(), "No logs to review.")
					return nil
				}
				if err != nil {
					return fmt.Errorf("weekly verdict: %w", err)
				}
				if err := report.Weekly(cmd.OutOrStdout(), result.Report); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Stored verdict for week of %s (notified: %v)\n",
					result.Record.WeekStart, result.Notified)
				return nil
			})
		},
	}
}

func newHistoryCmd(open opener) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List stored weekly verdicts, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, open, func(ctx context.Context, a *app.App) error {
				records, err := a.Weekly.History(ctx, limit)
				if err != nil {
					return fmt.Errorf("load history: %w", err)
				}
				if len(records) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No weekly verdicts yet.")
					return nil
				}
				return report.History(cmd.OutOrStdout(), records)
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", service.DefaultHistoryLimit, "number of verdicts")
	return cmd
}

func newRemindCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "remind",
		Short: "Run the daily check-in now",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, open, func(ctx context.Context, a *app.App) error {
				result, err := a.Reminder.Run(ctx, a.Now())
				if err != nil {
					return fmt.Errorf("daily reminder: %w", err)
				}
				out := cmd.OutOrStdout()
				if result.Skipped {
					fmt.Fprintln(out, "Today is already logged.")
					return report.Streak(out, result.Streak)
				}
				fmt.Fprintln(out, result.Message)
				if !result.Notified {
					fmt.Fprintln(out, "(not sent: notifications disabled or failed)")
				}
				return nil
			})
		},
	}
}

func newStreakCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "streak",
		Short: "Show the logging streak and discipline score",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, open, func(ctx context.Context, a *app.App) error {
				streak, err := a.Reminder.Streak(ctx, a.Now())
				if err != nil {
					return fmt.Errorf("streak: %w", err)
				}
				return report.Streak(cmd.OutOrStdout(), *streak)
			})
		},
	}
}

func newSeedCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert sample logs for the last three weeks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, open, func(ctx context.Context, a *app.App) error {
				created, err := seed.Run(ctx, a.LogRepo, a.Now())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created %d sample logs.\n", created)
				return nil
			})
		},
	}
}

// checkRequest applies the same field rules as the HTTP API.
func checkRequest(req any) error {
	fieldErrors := validation.Validate(req)
	if len(fieldErrors) == 0 {
		return nil
	}
	msgs := make([]string, len(fieldErrors))
	for i, fe := range fieldErrors {
		msgs[i] = fe.Field + " " + fe.Message
	}
	return fmt.Errorf("invalid input: %s", strings.Join(msgs, "; "))
}
