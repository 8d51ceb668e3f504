package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"daily-priority-agent/internal/model"
	"daily-priority-agent/internal/planner"
	"daily-priority-agent/internal/report"
	"daily-priority-agent/internal/task"
)

var parseCmd = &cobra.Command{
	Use:   "parse [text]",
	Short: "Extract structured tasks from free text",
	Long: `Extract structured tasks from free text using the configured LLM, or the
comma splitter when no LLM is configured. Reads stdin when no text is given.

Examples:
  planner parse "pay rent today, call mom"
  echo "finish slides by friday" | planner parse --format yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

var (
	parseToday  string
	parseFormat string
)

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVar(&parseToday, "today", "", "reference date for relative deadlines YYYY-MM-DD")
	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", report.FormatJSON, "output format (json, yaml)")
}

// parsedTask is the printable form of model.Task.
type parsedTask struct {
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Deadline    *string  `json:"deadline" yaml:"deadline"`
	EffortMin   int      `json:"effort_min" yaml:"effort_min"`
	Impact      int      `json:"impact" yaml:"impact"`
	Blocked     bool     `json:"blocked" yaml:"blocked"`
	Tags        []string `json:"tags" yaml:"tags"`
}

func newParsedTask(t model.Task) parsedTask {
	var deadline *string
	if t.Deadline != nil {
		s := t.Deadline.Format(planner.DateFormat)
		deadline = &s
	}
	return parsedTask{
		Title:       t.Title,
		Description: t.Description,
		Deadline:    deadline,
		EffortMin:   t.EffortMin,
		Impact:      t.Impact,
		Blocked:     t.Blocked,
		Tags:        t.Tags,
	}
}

func runParse(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	today, err := todayFromFlag(parseToday)
	if err != nil {
		return err
	}

	text, err := readText(cmd, args)
	if err != nil {
		return err
	}

	a, err := newApp(ctx)
	if err != nil {
		return err
	}

	out, err := a.uc.ExtractTasks(ctx, task.ExtractInput{RawText: text, Today: today})
	if err != nil {
		return err
	}

	tasks := make([]parsedTask, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newParsedTask(t)
	}

	w := cmd.OutOrStdout()
	switch strings.ToLower(parseFormat) {
	case report.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(tasks)
	case report.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(tasks); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", parseFormat)
	}
}

func readText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 && args[0] != "-" {
		return args[0], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}
