package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"daily-priority-agent/internal/planner"
)

// Output formats understood by WriteFiles.
const (
	FormatJSON = "json"
	FormatText = "txt"
	FormatYAML = "yaml"
)

const (
	titleRuleWidth = 45
	noDeadline     = "none"
	emptySection   = "  (none)"
)

// DefaultFormats are the artifacts written when none are requested.
var DefaultFormats = []string{FormatJSON, FormatText}

// RenderText renders the human-readable summary of a plan.
func RenderText(p planner.Plan) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Daily Task Prioritization Plan (%s)\n", p.GeneratedOn)
	sb.WriteString(strings.Repeat("=", titleRuleWidth))

	section(&sb, fmt.Sprintf("TOP %d (Do these first)", p.Assumptions.TopCount), p.Top)
	section(&sb, fmt.Sprintf("NEXT %d", p.Assumptions.NextCount), p.Next)
	section(&sb, "UNBLOCK (Blocked tasks)", p.Unblock)
	section(&sb, "DEFER (Low urgency/impact)", p.Defer)

	return sb.String()
}

func section(sb *strings.Builder, name string, items []planner.PlanItem) {
	fmt.Fprintf(sb, "\n\n%s\n%s", name, strings.Repeat("-", len(name)))
	if len(items) == 0 {
		sb.WriteString("\n" + emptySection)
		return
	}
	for i, it := range items {
		deadline := noDeadline
		if it.Deadline != nil {
			deadline = *it.Deadline
		}
		fmt.Fprintf(sb, "\n%d. %s  | deadline: %s | effort: %dm | score: %s", i+1, it.Title, deadline, it.EffortMin, formatScore(it.Score))
		fmt.Fprintf(sb, "\n   Why: %s", it.Reason)
	}
}

// formatScore always shows a decimal point: 20 renders as "20.0", 3.67 as "3.67".
func formatScore(s float64) string {
	out := strconv.FormatFloat(s, 'f', -1, 64)
	if !strings.Contains(out, ".") {
		out += ".0"
	}
	return out
}

// MarshalJSON encodes the plan as 2-space indented JSON.
func MarshalJSON(p planner.Plan) ([]byte, error) {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("report: marshal json: %w", err)
	}
	return data, nil
}

// MarshalYAML encodes the plan as YAML.
func MarshalYAML(p planner.Plan) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return nil, fmt.Errorf("report: marshal yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("report: marshal yaml: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFiles writes plan.<format> into dir for each requested format and returns the
// written paths in request order. Unknown formats fail before anything is written.
func WriteFiles(p planner.Plan, dir string, formats []string) ([]string, error) {
	if len(formats) == 0 {
		formats = DefaultFormats
	}

	contents := make([][]byte, len(formats))
	for i, f := range formats {
		data, err := encode(p, f)
		if err != nil {
			return nil, err
		}
		contents[i] = data
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("report: create %s: %w", dir, err)
	}

	paths := make([]string, 0, len(formats))
	for i, f := range formats {
		path := filepath.Join(dir, "plan."+strings.ToLower(f))
		if err := os.WriteFile(path, contents[i], 0o644); err != nil {
			return paths, fmt.Errorf("report: write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func encode(p planner.Plan, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case FormatJSON:
		return MarshalJSON(p)
	case FormatText:
		return []byte(RenderText(p)), nil
	case FormatYAML:
		return MarshalYAML(p)
	default:
		return nil, fmt.Errorf("report: unknown format %q", format)
	}
}
