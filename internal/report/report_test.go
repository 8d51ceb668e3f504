package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"daily-priority-agent/internal/model"
	"daily-priority-agent/internal/planner"
)

var today = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

func samplePlan() planner.Plan {
	tasks := []model.Task{
		{Title: "Pay invoice", Deadline: model.DatePtr(today), EffortMin: 15, Impact: model.ImpactHigh, Tags: []string{"finance"}},
		{Title: "Wait for legal", EffortMin: 45, Impact: model.ImpactMedium, Blocked: true, Tags: []string{}},
	}
	return planner.BuildPlan(tasks, today, planner.DefaultConfig())
}

func TestRenderText(t *testing.T) {
	want := strings.Join([]string{
		"Daily Task Prioritization Plan (2024-05-01)",
		strings.Repeat("=", 45),
		"",
		"TOP 3 (Do these first)",
		"----------------------",
		"1. Pay invoice  | deadline: 2024-05-01 | effort: 15m | score: 20.0",
		"   Why: Due today, High impact, Quick win",
		"",
		"NEXT 5",
		"------",
		"  (none)",
		"",
		"UNBLOCK (Blocked tasks)",
		"-----------------------",
		"1. Wait for legal  | deadline: none | effort: 45m | score: 2.0",
		"   Why: No deadline, Medium impact, Blocked (needs unblock step)",
		"",
		"DEFER (Low urgency/impact)",
		"--------------------------",
		"  (none)",
	}, "\n")

	if got := RenderText(samplePlan()); got != want {
		t.Errorf("RenderText() mismatch\n got:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderText_ConfiguredCounts(t *testing.T) {
	cfg := planner.DefaultConfig()
	cfg.TopCount = 2
	cfg.NextCount = 4

	got := RenderText(planner.BuildPlan(nil, today, cfg))
	if !strings.Contains(got, "\nTOP 2 (Do these first)\n") || !strings.Contains(got, "\nNEXT 4\n") {
		t.Errorf("section headers should use configured counts:\n%s", got)
	}
	if strings.Count(got, emptySection) != 4 {
		t.Errorf("empty plan should render four (none) sections:\n%s", got)
	}
}

func TestFormatScore(t *testing.T) {
	tests := map[float64]string{
		20:   "20.0",
		7.5:  "7.5",
		3.67: "3.67",
		-4.0: "-4.0",
		0:    "0.0",
	}
	for in, want := range tests {
		if got := formatScore(in); got != want {
			t.Errorf("formatScore(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	data, err := MarshalJSON(samplePlan())
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}
	if !strings.Contains(string(data), "\n  \"generated_on\": \"2024-05-01\"") {
		t.Errorf("expected 2-space indentation:\n%s", data)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	for _, key := range []string{"top", "next", "unblock", "defer", "assumptions"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("missing key %q", key)
		}
	}
	unblock := decoded["unblock"].([]any)[0].(map[string]any)
	if unblock["deadline"] != nil {
		t.Errorf("missing deadline should be null, got %v", unblock["deadline"])
	}
}

func TestMarshalYAML(t *testing.T) {
	data, err := MarshalYAML(samplePlan())
	if err != nil {
		t.Fatalf("MarshalYAML() error = %v", err)
	}

	var decoded struct {
		GeneratedOn string `yaml:"generated_on"`
		Top         []struct {
			Title string  `yaml:"title"`
			Score float64 `yaml:"score"`
		} `yaml:"top"`
	}
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if decoded.GeneratedOn != "2024-05-01" || len(decoded.Top) != 1 || decoded.Top[0].Score != 20 {
		t.Errorf("decoded = %+v", decoded)
	}
}

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	paths, err := WriteFiles(samplePlan(), dir, nil)
	if err != nil {
		t.Fatalf("WriteFiles() error = %v", err)
	}
	want := []string{filepath.Join(dir, "plan.json"), filepath.Join(dir, "plan.txt")}
	if len(paths) != len(want) || paths[0] != want[0] || paths[1] != want[1] {
		t.Fatalf("paths = %v, want %v", paths, want)
	}

	txt, err := os.ReadFile(paths[1])
	if err != nil {
		t.Fatalf("read plan.txt: %v", err)
	}
	if string(txt) != RenderText(samplePlan()) {
		t.Error("plan.txt should hold the rendered summary")
	}
}

func TestWriteFiles_UnknownFormat(t *testing.T) {
	dir := t.TempDir()

	if _, err := WriteFiles(samplePlan(), dir, []string{FormatJSON, "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
	if _, err := os.Stat(filepath.Join(dir, "plan.json")); !os.IsNotExist(err) {
		t.Error("nothing should be written when a format is unknown")
	}
}

func TestWriteFiles_YAML(t *testing.T) {
	dir := t.TempDir()

	paths, err := WriteFiles(samplePlan(), dir, []string{FormatYAML})
	if err != nil {
		t.Fatalf("WriteFiles() error = %v", err)
	}
	if len(paths) != 1 || filepath.Base(paths[0]) != "plan.yaml" {
		t.Errorf("paths = %v", paths)
	}
}
