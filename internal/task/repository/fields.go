package repository

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"daily-priority-agent/internal/model"
	"daily-priority-agent/internal/planner"
)

// MinEffortMin is the floor applied to numeric efforts.
const MinEffortMin = 5

var effortWords = map[string]string{
	"small":  planner.EffortSmall,
	"medium": planner.EffortMedium,
	"large":  planner.EffortLarge,
}

// ParseDate reads a YYYY-MM-DD deadline. Empty input means no deadline.
func ParseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(planner.DateFormat, s)
	if err != nil {
		return nil, fmt.Errorf("invalid deadline %q: %w", s, err)
	}
	return model.DatePtr(t), nil
}

// ParseEffort reads S/M/L, small/medium/large, "25m", "25min" or "25".
// Anything unreadable is the medium default.
func ParseEffort(s string, cfg planner.Config) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return cfg.DefaultEffort()
	}

	size := strings.ToUpper(s)
	if word, ok := effortWords[strings.ToLower(s)]; ok {
		size = word
	}
	if minutes, ok := cfg.EffortDefaults[size]; ok {
		return minutes
	}

	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "min", "")
	s = strings.ReplaceAll(s, "m", "")
	val, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return cfg.DefaultEffort()
	}
	return max(MinEffortMin, val)
}

// ParseImpact maps low/medium/high to 1..3; empty or unknown text is medium.
func ParseImpact(s string, cfg planner.Config) int {
	s = strings.ToLower(strings.TrimSpace(s))
	if v, ok := cfg.ImpactMap[s]; ok {
		return v
	}
	return cfg.DefaultImpact()
}

// ParseBool accepts yes/true/1/y in any case.
func ParseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "1", "y":
		return true
	}
	return false
}

// SplitTags splits comma-separated tags, dropping blanks.
func SplitTags(s string) []string {
	tags := []string{}
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
