package repository_test

import (
	"testing"

	"daily-priority-agent/internal/planner"
	"daily-priority-agent/internal/task/repository"
)

func TestParseEffort(t *testing.T) {
	cfg := planner.DefaultConfig()
	tests := []struct {
		in   string
		want int
	}{
		{"", 45},
		{"S", 15},
		{"m", 45},
		{" L ", 90},
		{"small", 15},
		{"Large", 90},
		{"25m", 25},
		{"25min", 25},
		{"30", 30},
		{"2", 5},
		{"-10", 5},
		{"lots", 45},
	}

	for _, tt := range tests {
		if got := repository.ParseEffort(tt.in, cfg); got != tt.want {
			t.Errorf("ParseEffort(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseImpact(t *testing.T) {
	cfg := planner.DefaultConfig()
	tests := map[string]int{
		"low":      1,
		"Medium":   2,
		" HIGH ":   3,
		"":         2,
		"critical": 2,
	}
	for in, want := range tests {
		if got := repository.ParseImpact(in, cfg); got != want {
			t.Errorf("ParseImpact(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestParseBool(t *testing.T) {
	for _, in := range []string{"yes", "Y", "TRUE", "1", " y "} {
		if !repository.ParseBool(in) {
			t.Errorf("ParseBool(%q) should be true", in)
		}
	}
	for _, in := range []string{"", "no", "false", "0", "blocked"} {
		if repository.ParseBool(in) {
			t.Errorf("ParseBool(%q) should be false", in)
		}
	}
}

func TestParseDate(t *testing.T) {
	d, err := repository.ParseDate("2024-05-03")
	if err != nil || d == nil || d.Format("2006-01-02") != "2024-05-03" {
		t.Errorf("unexpected result %v %v", d, err)
	}

	d, err = repository.ParseDate("  ")
	if err != nil || d != nil {
		t.Errorf("empty date should be nil without error, got %v %v", d, err)
	}

	if _, err := repository.ParseDate("05/03/2024"); err == nil {
		t.Errorf("expected error for malformed date")
	}
}

func TestSplitTags(t *testing.T) {
	got := repository.SplitTags(" work, ,home ,")
	if len(got) != 2 || got[0] != "work" || got[1] != "home" {
		t.Errorf("SplitTags = %v", got)
	}
	if got := repository.SplitTags(""); got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
}
