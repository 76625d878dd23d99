package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"sprinttrack/internal/bootstrap"
	progressdto "sprinttrack/internal/modules/progress/dto"
	"sprinttrack/internal/platform/config"
	apperrors "sprinttrack/internal/platform/errors"
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
		Use:           "sprinttrack",
		Short:         "30-day study sprint tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataDir, "data", ".", "sprint data directory")

	root.AddCommand(newTUICmd(&dataDir))
	root.AddCommand(newDayCmd(&dataDir))
	root.AddCommand(newTaskCmd(&dataDir))
	root.AddCommand(newNotesCmd(&dataDir))
	root.AddCommand(newTimerCmd(&dataDir))
	root.AddCommand(newJobsCmd(&dataDir))
	root.AddCommand(newLabsCmd(&dataDir))
	root.AddCommand(newProgressCmd(&dataDir))
	root.AddCommand(newHistoryCmd(&dataDir))
	root.AddCommand(newReindexCmd(&dataDir))
	root.AddCommand(newResetCmd(&dataDir))
	return root
}

func loadApp(dataDir string) (*bootstrap.App, error) {
	cfg, err := config.New(dataDir)
	if err != nil {
		return nil, err
	}
	app, err := bootstrap.New(cfg)
	if err != nil {
		return nil, err
	}
	if warn := app.ProgressCLI.LoadWarning(); warn != nil {
		_, _ = fmt.Fprintf(os.Stderr, "warning: %v (starting from defaults)\n", warn)
	}
	return app, nil
}

// resolveDay maps the --day flag to a concrete day; 0 means today, clamped to
// the sprint window.
func resolveDay(app *bootstrap.App, day int) (int, error) {
	if day != 0 {
		return day, nil
	}
	today, err := app.CurriculumCLI.TodayDay(context.Background())
	if err != nil {
		return 0, err
	}
	return today.Day, nil
}

// warnOrFail downgrades warning-grade errors to stderr notices. The mutation
// has been applied (or was a harmless no-op); the command still succeeds.
func warnOrFail(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, apperrors.ErrPersistence) || errors.Is(err, apperrors.ErrTimerNotRunning) {
		_, _ = fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		return nil
	}
	return err
}

func newTUICmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the sprint dashboard terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(app)
		},
	}
}

func newDayCmd(dataDir *string) *cobra.Command {
	var day int
	cmd := &cobra.Command{
		Use:   "day",
		Short: "Show one day's checklist, notes, timer, and jobs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			n, err := resolveDay(app, day)
			if err != nil {
				return err
			}
			view, err := app.ProgressCLI.DayView(context.Background(), n)
			if err != nil {
				return err
			}
			printDay(cmd, view)
			return nil
		},
	}
	cmd.Flags().IntVar(&day, "day", 0, "sprint day (default: today)")
	return cmd
}

func printDay(cmd *cobra.Command, view progressdto.DayView) {
	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Day %d — %s\n", view.Day, view.Date.Format("Monday, Jan 2 2006"))
	for _, t := range view.Tasks {
		box := "[ ]"
		if t.Completed {
			box = "[x]"
		}
		_, _ = fmt.Fprintf(out, "  %d. %s %s (%s)\n", t.Index, box, t.Description, t.Category)
	}
	_, _ = fmt.Fprintf(out, "timer: %s", fmtSeconds(view.Timer.AccumulatedSeconds))
	if view.Timer.Running {
		_, _ = fmt.Fprintf(out, " (running since %s)", view.Timer.RunningSince.Format("15:04:05"))
	}
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintf(out, "jobs applied: %d\n", view.JobsApplied)
	if strings.TrimSpace(view.Notes) != "" {
		_, _ = fmt.Fprintf(out, "notes:\n%s\n", view.Notes)
	}
}

func newTaskCmd(dataDir *string) *cobra.Command {
	task := &cobra.Command{Use: "task", Short: "Toggle checklist tasks"}

	var day, index int
	run := func(completed bool) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			n, err := resolveDay(app, day)
			if err != nil {
				return err
			}
			view, err := app.ProgressCLI.SetTaskCompletion(context.Background(), n, index, completed)
			if err = warnOrFail(err); err != nil {
				return err
			}
			printDay(cmd, view)
			return nil
		}
	}

	check := &cobra.Command{Use: "check", Short: "Mark a task complete", RunE: run(true)}
	uncheck := &cobra.Command{Use: "uncheck", Short: "Mark a task incomplete", RunE: run(false)}
	for _, c := range []*cobra.Command{check, uncheck} {
		c.Flags().IntVar(&day, "day", 0, "sprint day (default: today)")
		c.Flags().IntVar(&index, "index", 0, "task index within the day")
	}
	task.AddCommand(check, uncheck)
	return task
}

func newNotesCmd(dataDir *string) *cobra.Command {
	notes := &cobra.Command{Use: "notes", Short: "Daily notes"}

	var day int
	set := &cobra.Command{
		Use:   "set [text]",
		Short: "Replace the day's notes",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			n, err := resolveDay(app, day)
			if err != nil {
				return err
			}
			view, err := app.ProgressCLI.SetNotes(context.Background(), n, strings.Join(args, " "))
			if err = warnOrFail(err); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "notes saved for day %d\n", view.Day)
			return nil
		},
	}
	set.Flags().IntVar(&day, "day", 0, "sprint day (default: today)")
	notes.AddCommand(set)
	return notes
}

func newTimerCmd(dataDir *string) *cobra.Command {
	timer := &cobra.Command{Use: "timer", Short: "Study timer per day"}

	var day int
	start := &cobra.Command{
		Use:   "start",
		Short: "Start (or restart) the day's timer",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			n, err := resolveDay(app, day)
			if err != nil {
				return err
			}
			view, err := app.ProgressCLI.StartTimer(context.Background(), n)
			if err = warnOrFail(err); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "timer started for day %d at %s\n",
				view.Day, view.Timer.RunningSince.Format("15:04:05"))
			return nil
		},
	}

	stop := &cobra.Command{
		Use:   "stop",
		Short: "Stop the day's timer and bank the elapsed interval",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			n, err := resolveDay(app, day)
			if err != nil {
				return err
			}
			view, err := app.ProgressCLI.StopTimer(context.Background(), n)
			if err = warnOrFail(err); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "day %d total: %s\n", view.Day, fmtSeconds(view.Timer.AccumulatedSeconds))
			return nil
		},
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show the day's elapsed study time",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			n, err := resolveDay(app, day)
			if err != nil {
				return err
			}
			out, err := app.StatsCLI.Elapsed(context.Background(), n)
			if err != nil {
				return err
			}
			state := "stopped"
			if out.Running {
				state = "running"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "day %d: %s (%s)\n", out.Day, out.Formatted, state)
			return nil
		},
	}

	for _, c := range []*cobra.Command{start, stop, show} {
		c.Flags().IntVar(&day, "day", 0, "sprint day (default: today)")
	}
	timer.AddCommand(start, stop, show)
	return timer
}

func newJobsCmd(dataDir *string) *cobra.Command {
	jobs := &cobra.Command{Use: "jobs", Short: "Job application tracking"}

	var day, count int
	set := &cobra.Command{
		Use:   "set",
		Short: "Set the day's job application count",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			n, err := resolveDay(app, day)
			if err != nil {
				return err
			}
			view, err := app.ProgressCLI.SetJobsApplied(context.Background(), n, count)
			if err = warnOrFail(err); err != nil {
				return err
			}
			weekly, err := app.StatsCLI.WeeklyJobsApplied(context.Background(), n)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "day %d: %d applied (days %d–%d: %d)\n",
				view.Day, view.JobsApplied, weekly.WeekStart, weekly.WeekEnd, weekly.Total)
			return nil
		},
	}
	set.Flags().IntVar(&day, "day", 0, "sprint day (default: today)")
	set.Flags().IntVar(&count, "count", 0, "applications submitted")
	jobs.AddCommand(set)
	return jobs
}

func newLabsCmd(dataDir *string) *cobra.Command {
	labs := &cobra.Command{Use: "labs", Short: "TryHackMe counters"}

	var rooms, points int
	set := &cobra.Command{
		Use:   "set",
		Short: "Set TryHackMe room and point totals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("rooms") && !cmd.Flags().Changed("points") {
				return fmt.Errorf("nothing to set: pass --rooms and/or --points")
			}
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			ctx := context.Background()
			var view progressdto.StoreView
			if cmd.Flags().Changed("rooms") {
				view, err = app.ProgressCLI.SetLabCounter(ctx, "rooms", rooms)
				if err = warnOrFail(err); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("points") {
				view, err = app.ProgressCLI.SetLabCounter(ctx, "points", points)
				if err = warnOrFail(err); err != nil {
					return err
				}
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "rooms=%d points=%d\n", view.LabsCompleted, view.LabPoints)
			return nil
		},
	}
	set.Flags().IntVar(&rooms, "rooms", 0, "rooms completed")
	set.Flags().IntVar(&points, "points", 0, "points gained")
	labs.AddCommand(set)
	return labs
}

func newProgressCmd(dataDir *string) *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Show sprint completion and per-category breakdown",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			ctx := context.Background()
			out := cmd.OutOrStdout()

			if category != "" {
				stat, err := app.StatsCLI.CategoryCompletion(ctx, category)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(out, "%s: %d/%d (%.1f%%)\n", stat.Category, stat.Completed, stat.Total, stat.Percent)
				return nil
			}

			overview, err := app.StatsCLI.Overview(ctx)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(out, "overall: %d/%d (%.1f%%)\n",
				overview.CompletedTasks, overview.TotalTasks, overview.OverallPercent)
			for _, c := range overview.Categories {
				_, _ = fmt.Fprintf(out, "  %-18s %d/%d (%.1f%%)\n", c.Category, c.Completed, c.Total, c.Percent)
			}
			_, _ = fmt.Fprintf(out, "tryhackme: rooms=%d points=%d\n", overview.LabsCompleted, overview.LabPoints)
			_, _ = fmt.Fprintln(out, overview.Motivation)
			return nil
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "limit to one task category")
	return cmd
}

func newHistoryCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show the per-day history projection",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			rows, err := app.ProgressCLI.History(context.Background())
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no history yet; run reindex to build it")
				return nil
			}
			for _, r := range rows {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "day %2d  %s  tasks %d/%d  time %s  jobs %d  updated %s\n",
					r.Day, r.Date.Format("2006-01-02"), r.TasksDone, r.TasksTotal,
					fmtSeconds(r.Seconds), r.JobsApplied, r.UpdatedAt.Format(time.RFC3339))
			}
			return nil
		},
	}
}

func newReindexCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reindex",
		Short: "Rebuild the SQLite history projection from sprint data",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			if err := app.ProgressCLI.Reindex(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "reindex completed")
			return nil
		},
	}
}

func newResetCmd(dataDir *string) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Discard all progress and start the sprint over",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return fmt.Errorf("refusing to reset without --yes")
			}
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			_, err = app.ProgressCLI.ResetAll(context.Background())
			if err = warnOrFail(err); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "all progress reset")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the reset")
	return cmd
}

func fmtSeconds(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%02dh %02dm %02ds", total/3600, (total%3600)/60, total%60)
}
