package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"daily-priority-agent/internal/report"
)

const tasksCSV = `title,description,deadline,effort,impact,blocked,tags
Pay invoice,Vendor X,2024-05-01,S,high,no,finance
Wait for legal,,,M,medium,yes,
`

// execute runs the root command with fresh flag values and a config without LLM or calendar.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_CALENDAR_CREDENTIALS", "")

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("calendar:\n  enabled: false\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	configFile, verbose = "", false
	planToday, planText, planOutDir, planFormats, planSchedule = "", "", ".", strings.Join(report.DefaultFormats, ","), false
	parseToday, parseFormat = "", report.FormatJSON

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append([]string{"--config", cfgPath}, args...))

	err := rootCmd.Execute()
	return out.String(), err
}

func TestPlanCommand(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "tasks.csv")
	if err := os.WriteFile(csvPath, []byte(tasksCSV), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	out, err := execute(t, "", "plan", csvPath, "--today", "2024-05-01", "--out", dir)
	if err != nil {
		t.Fatalf("plan: %v\n%s", err, out)
	}

	for _, want := range []string{
		"Daily Task Prioritization Plan (2024-05-01)",
		"1. Pay invoice  | deadline: 2024-05-01 | effort: 15m | score: 20.0",
		"1. Wait for legal  | deadline: none | effort: 45m | score: 2.0",
		"Saved: plan.json and plan.txt",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, "plan.json"))
	if err != nil {
		t.Fatalf("read plan.json: %v", err)
	}
	var plan struct {
		GeneratedOn string            `json:"generated_on"`
		Top         []json.RawMessage `json:"top"`
	}
	if err := json.Unmarshal(data, &plan); err != nil {
		t.Fatalf("unmarshal plan.json: %v", err)
	}
	if plan.GeneratedOn != "2024-05-01" || len(plan.Top) != 1 {
		t.Errorf("unexpected plan.json %s", data)
	}
	if _, err := os.Stat(filepath.Join(dir, "plan.txt")); err != nil {
		t.Errorf("plan.txt not written: %v", err)
	}
}

func TestPlanCommand_Empty(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "tasks.csv")
	if err := os.WriteFile(csvPath, []byte("title,deadline\n"), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	out, err := execute(t, "", "plan", csvPath, "--out", dir)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if !strings.Contains(out, "No tasks found in "+csvPath) {
		t.Errorf("unexpected output %q", out)
	}
	if _, err := os.Stat(filepath.Join(dir, "plan.json")); !os.IsNotExist(err) {
		t.Errorf("plan.json should not be written, stat err = %v", err)
	}
}

func TestPlanCommand_Text(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "", "plan", "--text", "call mom, pay rent", "--today", "2024-05-01",
		"--out", dir, "--format", "json,txt,yaml")
	if err != nil {
		t.Fatalf("plan: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Saved: plan.json, plan.txt and plan.yaml") {
		t.Errorf("unexpected output\n%s", out)
	}
	if !strings.Contains(out, "call mom") || !strings.Contains(out, "pay rent") {
		t.Errorf("split tasks missing from output\n%s", out)
	}
}

func TestPlanCommand_BadToday(t *testing.T) {
	if _, err := execute(t, "", "plan", "--today", "05/01/2024"); err == nil {
		t.Fatal("expected error for malformed --today")
	}
}

func TestParseCommand(t *testing.T) {
	t.Run("json_from_arg", func(t *testing.T) {
		out, err := execute(t, "", "parse", "write tests, ship release")
		if err != nil {
			t.Fatalf("parse: %v", err)
		}
		var tasks []parsedTask
		if err := json.Unmarshal([]byte(out), &tasks); err != nil {
			t.Fatalf("unmarshal: %v\n%s", err, out)
		}
		if len(tasks) != 2 || tasks[0].Title != "write tests" || tasks[1].Title != "ship release" {
			t.Errorf("unexpected tasks %+v", tasks)
		}
		if tasks[0].Deadline != nil || tasks[0].Impact != 3 || tasks[0].EffortMin != 45 {
			t.Errorf("unexpected fallback fields %+v", tasks[0])
		}
	})

	t.Run("yaml_from_stdin", func(t *testing.T) {
		out, err := execute(t, "one\ntwo\n", "parse", "--format", "yaml")
		if err != nil {
			t.Fatalf("parse: %v", err)
		}
		if !strings.Contains(out, "- title: one") || !strings.Contains(out, "- title: two") {
			t.Errorf("unexpected yaml\n%s", out)
		}
	})

	t.Run("unknown_format", func(t *testing.T) {
		if _, err := execute(t, "", "parse", "x", "--format", "xml"); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestJoinNames(t *testing.T) {
	tests := map[string]struct {
		in   []string
		want string
	}{
		"none":  {nil, ""},
		"one":   {[]string{"/tmp/plan.json"}, "plan.json"},
		"two":   {[]string{"/tmp/plan.json", "/tmp/plan.txt"}, "plan.json and plan.txt"},
		"three": {[]string{"a/plan.json", "a/plan.txt", "a/plan.yaml"}, "plan.json, plan.txt and plan.yaml"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := joinNames(tc.in); got != tc.want {
				t.Errorf("joinNames() = %q, want %q", got, tc.want)
			}
		})
	}
}
