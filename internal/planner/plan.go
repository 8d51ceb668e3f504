package planner

import (
	"sort"
	"strings"
	"time"

	"daily-priority-agent/internal/model"
)

// DateFormat is the ISO calendar date layout used in plans.
const DateFormat = "2006-01-02"

// PlanItem is the serialized form of a bucketed task.
type PlanItem struct {
	Title          string    `json:"title" yaml:"title"`
	Description    string    `json:"description" yaml:"description"`
	Deadline       *string   `json:"deadline" yaml:"deadline"`
	EffortMin      int       `json:"effort_min" yaml:"effort_min"`
	Impact         int       `json:"impact" yaml:"impact"`
	Blocked        bool      `json:"blocked" yaml:"blocked"`
	Tags           []string  `json:"tags" yaml:"tags"`
	Score          float64   `json:"score" yaml:"score"`
	Reason         string    `json:"reason" yaml:"reason"`
	ScoreBreakdown Breakdown `json:"score_breakdown" yaml:"score_breakdown"`
}

// Plan is the prioritized snapshot of one batch of tasks.
type Plan struct {
	GeneratedOn string      `json:"generated_on" yaml:"generated_on"`
	Top         []PlanItem  `json:"top" yaml:"top"`
	Next        []PlanItem  `json:"next" yaml:"next"`
	Unblock     []PlanItem  `json:"unblock" yaml:"unblock"`
	Defer       []PlanItem  `json:"defer" yaml:"defer"`
	Assumptions Assumptions `json:"assumptions" yaml:"assumptions"`

	// Dropped counts unblocked tasks past Top+Next that did not qualify for Defer.
	Dropped int `json:"-" yaml:"-"`
}

type scored struct {
	task      model.Task
	score     float64
	breakdown Breakdown
}

// BuildPlan scores, sorts and buckets tasks. It never mutates tasks.
//
// Unblocked tasks beyond Top+Next that are not both low urgency and low impact
// land in no bucket; Plan.Dropped reports how many.
func BuildPlan(tasks []model.Task, today time.Time, cfg Config) Plan {
	items := make([]scored, 0, len(tasks))
	for _, t := range tasks {
		s, b := Score(t, today, cfg)
		items = append(items, scored{task: t, score: s, breakdown: b})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return less(items[i], items[j])
	})

	var unblocked, blocked []scored
	for _, it := range items {
		if it.task.Blocked {
			blocked = append(blocked, it)
		} else {
			unblocked = append(unblocked, it)
		}
	}

	topEnd := clamp(cfg.TopCount, len(unblocked))
	nextEnd := clamp(topEnd+max(cfg.NextCount, 0), len(unblocked))

	var deferred []scored
	rest := unblocked[nextEnd:]
	for _, it := range rest {
		if deferrable(it, today) {
			deferred = append(deferred, it)
		}
	}

	return Plan{
		GeneratedOn: model.Date(today).Format(DateFormat),
		Top:         serialize(unblocked[:topEnd], today),
		Next:        serialize(unblocked[topEnd:nextEnd], today),
		Unblock:     serialize(blocked, today),
		Defer:       serialize(deferred, today),
		Assumptions: cfg.assumptions(),
		Dropped:     len(rest) - len(deferred),
	}
}

// less orders by score desc, effort asc, then case-insensitive title.
func less(a, b scored) bool {
	if a.score != b.score {
		return a.score > b.score
	}
	if a.task.EffortMin != b.task.EffortMin {
		return a.task.EffortMin < b.task.EffortMin
	}
	return strings.ToLower(a.task.Title) < strings.ToLower(b.task.Title)
}

func deferrable(it scored, today time.Time) bool {
	return Urgency(it.task, today) <= UrgencyLater && it.task.Impact <= model.ImpactLow
}

func serialize(items []scored, today time.Time) []PlanItem {
	out := make([]PlanItem, 0, len(items))
	for _, it := range items {
		t := it.task

		var deadline *string
		if t.Deadline != nil {
			d := model.Date(*t.Deadline).Format(DateFormat)
			deadline = &d
		}

		tags := make([]string, len(t.Tags))
		copy(tags, t.Tags)

		out = append(out, PlanItem{
			Title:          t.Title,
			Description:    t.Description,
			Deadline:       deadline,
			EffortMin:      t.EffortMin,
			Impact:         t.Impact,
			Blocked:        t.Blocked,
			Tags:           tags,
			Score:          round2(it.score),
			Reason:         Reason(t, today),
			ScoreBreakdown: it.breakdown.Rounded(),
		})
	}
	return out
}

func clamp(n, limit int) int {
	if n < 0 {
		return 0
	}
	if n > limit {
		return limit
	}
	return n
}
