package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"daily-priority-agent/internal/report"
	"daily-priority-agent/internal/task"
)

const defaultTasksFile = "tasks.csv"

var planCmd = &cobra.Command{
	Use:   "plan [tasks.csv]",
	Short: "Build today's plan and write plan.json and plan.txt",
	Long: `Build today's prioritized plan from a CSV file (default tasks.csv) or
from free text, print the summary and save the plan artifacts.

CSV columns: title, description, deadline (YYYY-MM-DD), effort (S/M/L or
minutes), impact (low/medium/high), blocked (yes/no), tags (comma-separated).

Examples:
  # Plan tasks.csv in the current directory
  planner plan

  # Plan a specific file as if it were another day
  planner plan work.csv --today 2024-05-01

  # Plan free text and also write YAML
  planner plan --text "pay rent today, call mom, finish slides by friday" --format json,txt,yaml

  # Time-block the Top tasks on Google Calendar
  planner plan --schedule`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlan,
}

var (
	planToday    string
	planText     string
	planOutDir   string
	planFormats  string
	planSchedule bool
)

func init() {
	rootCmd.AddCommand(planCmd)

	planCmd.Flags().StringVar(&planToday, "today", "", "reference date YYYY-MM-DD (default: current date)")
	planCmd.Flags().StringVarP(&planText, "text", "t", "", "plan free text instead of a CSV file")
	planCmd.Flags().StringVarP(&planOutDir, "out", "o", ".", "directory for the plan files")
	planCmd.Flags().StringVarP(&planFormats, "format", "f", strings.Join(report.DefaultFormats, ","), "comma-separated plan files to write (json, txt, yaml)")
	planCmd.Flags().BoolVar(&planSchedule, "schedule", false, "time-block the Top tasks on the configured calendar")
}

func runPlan(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	w := cmd.OutOrStdout()

	today, err := todayFromFlag(planToday)
	if err != nil {
		return err
	}

	a, err := newApp(ctx)
	if err != nil {
		return err
	}

	var out task.PlanOutput
	source := defaultTasksFile
	if planText != "" {
		source = "the input text"
		out, err = a.uc.PlanFromText(ctx, task.PlanFromTextInput{RawText: planText, Today: today})
	} else {
		if len(args) > 0 {
			source = args[0]
		}
		out, err = a.uc.PlanFromCSV(ctx, task.PlanFromCSVInput{Path: source, Today: today})
	}
	if errors.Is(err, task.ErrNoTasks) || (err == nil && out.TaskCount == 0) {
		fmt.Fprintf(w, "No tasks found in %s\n", source)
		return nil
	}
	if err != nil {
		return err
	}

	paths, err := report.WriteFiles(out.Plan, planOutDir, splitFormats(planFormats))
	if err != nil {
		return err
	}

	fmt.Fprintln(w, report.RenderText(out.Plan))
	fmt.Fprintf(w, "\nSaved: %s\n", joinNames(paths))

	if planSchedule {
		sched, err := a.uc.ScheduleTop(ctx, task.ScheduleInput{Plan: out.Plan})
		if err != nil {
			a.l.Warnf(ctx, "cli.plan: schedule: %v", err)
			fmt.Fprintf(w, "Calendar: not scheduled (%v)\n", err)
			return nil
		}
		printSchedule(cmd, sched)
	}

	return nil
}

func printSchedule(cmd *cobra.Command, sched task.ScheduleOutput) {
	w := cmd.OutOrStdout()
	if len(sched.Blocks) == 0 && len(sched.Skipped) == 0 {
		fmt.Fprintln(w, "Calendar: nothing scheduled (calendar disabled or no Top tasks)")
		return
	}
	fmt.Fprintln(w, "\nCalendar")
	for _, b := range sched.Blocks {
		fmt.Fprintf(w, "  %s-%s  %s\n", b.Start.Format("15:04"), b.End.Format("15:04"), b.Title)
	}
	for _, title := range sched.Skipped {
		fmt.Fprintf(w, "  skipped  %s\n", title)
	}
}

func splitFormats(s string) []string {
	var formats []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			formats = append(formats, f)
		}
	}
	return formats
}

// joinNames renders file names as "a", "a and b" or "a, b and c".
func joinNames(paths []string) string {
	names := make([]string, len(paths))
	for i, p := range paths {
		names[i] = filepath.Base(p)
	}
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}
}
