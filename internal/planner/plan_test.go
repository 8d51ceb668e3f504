package planner_test

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"daily-priority-agent/internal/model"
	"daily-priority-agent/internal/planner"
)

func titles(items []planner.PlanItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Title
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestBuildPlanEmpty(t *testing.T) {
	plan := planner.BuildPlan(nil, today, planner.DefaultConfig())

	if plan.GeneratedOn != "2024-05-01" {
		t.Errorf("unexpected generated_on %q", plan.GeneratedOn)
	}
	if len(plan.Top)+len(plan.Next)+len(plan.Unblock)+len(plan.Defer) != 0 {
		t.Errorf("expected all buckets empty: %+v", plan)
	}
	if plan.Assumptions.TopCount != 3 || plan.Assumptions.NextCount != 5 {
		t.Errorf("assumptions not populated: %+v", plan.Assumptions)
	}
	if plan.Assumptions.Weights.BlockedPenalty != 5.0 || plan.Assumptions.EffortDefaultsMin["L"] != 90 {
		t.Errorf("assumptions not populated: %+v", plan.Assumptions)
	}

	raw, err := json.Marshal(plan)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, bucket := range []string{"top", "next", "unblock", "defer"} {
		arr, ok := decoded[bucket].([]any)
		if !ok || len(arr) != 0 {
			t.Errorf("bucket %s should serialize as an empty array, got %v", bucket, decoded[bucket])
		}
	}
}

func TestBuildPlanPayInvoiceInTop(t *testing.T) {
	tasks := []model.Task{
		{Title: "Write report", Deadline: due(5), EffortMin: 90, Impact: 2},
		{Title: "Pay invoice", Deadline: due(0), EffortMin: 15, Impact: 3},
	}

	plan := planner.BuildPlan(tasks, today, planner.DefaultConfig())

	if len(plan.Top) != 2 || plan.Top[0].Title != "Pay invoice" {
		t.Fatalf("expected Pay invoice first in top, got %v", titles(plan.Top))
	}
	first := plan.Top[0]
	if first.Score != 20.0 {
		t.Errorf("expected score 20, got %v", first.Score)
	}
	if first.Deadline == nil || *first.Deadline != "2024-05-01" {
		t.Errorf("unexpected deadline %v", first.Deadline)
	}
	if first.Reason != "Due today, High impact, Quick win" {
		t.Errorf("unexpected reason %q", first.Reason)
	}
}

func TestBuildPlanSortTieBreaks(t *testing.T) {
	// Equal scores: effort ascending, then lowercase title ascending.
	tasks := []model.Task{
		{Title: "beta", EffortMin: 45, Impact: 2},
		{Title: "Alpha", EffortMin: 45, Impact: 2},
		{Title: "gamma", EffortMin: 30, Impact: 2},
		{Title: "alpha two", EffortMin: 45, Impact: 2},
	}

	plan := planner.BuildPlan(tasks, today, planner.DefaultConfig())

	got := append(titles(plan.Top), titles(plan.Next)...)
	want := []string{"gamma", "Alpha", "alpha two", "beta"}
	if !equalStrings(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestBuildPlanBucketSizes(t *testing.T) {
	var tasks []model.Task
	for i := 0; i < 20; i++ {
		tasks = append(tasks, model.Task{
			Title:     fmt.Sprintf("task %02d", i),
			Deadline:  due(i % 10),
			EffortMin: 10 + i,
			Impact:    1 + i%3,
			Blocked:   i%4 == 0,
		})
	}

	plan := planner.BuildPlan(tasks, today, planner.DefaultConfig())

	unblocked := 0
	for _, task := range tasks {
		if !task.Blocked {
			unblocked++
		}
	}
	if len(plan.Top) != 3 {
		t.Errorf("top has %d items", len(plan.Top))
	}
	if len(plan.Next) != 5 {
		t.Errorf("next has %d items", len(plan.Next))
	}
	if len(plan.Top)+len(plan.Next) > unblocked {
		t.Errorf("top+next exceeds unblocked count")
	}

	seen := map[string]int{}
	for _, bucket := range [][]planner.PlanItem{plan.Top, plan.Next, plan.Unblock, plan.Defer} {
		for _, it := range bucket {
			seen[it.Title]++
		}
	}
	for title, n := range seen {
		if n != 1 {
			t.Errorf("%s appears in %d buckets", title, n)
		}
	}
	if total := len(seen) + plan.Dropped; total != len(tasks) {
		t.Errorf("bucketed %d + dropped %d != %d tasks", len(seen), plan.Dropped, len(tasks))
	}
}

func TestBuildPlanBlockedOnlyInUnblock(t *testing.T) {
	tasks := []model.Task{
		{Title: "Blocked urgent", Deadline: due(-1), EffortMin: 5, Impact: 3, Blocked: true},
		{Title: "Blocked later", Deadline: due(20), EffortMin: 90, Impact: 1, Blocked: true},
		{Title: "Open", Deadline: nil, EffortMin: 90, Impact: 1},
	}

	plan := planner.BuildPlan(tasks, today, planner.DefaultConfig())

	if !equalStrings(titles(plan.Unblock), []string{"Blocked urgent", "Blocked later"}) {
		t.Errorf("unblock = %v", titles(plan.Unblock))
	}
	if !equalStrings(titles(plan.Top), []string{"Open"}) {
		t.Errorf("top = %v", titles(plan.Top))
	}
	for _, it := range append(append(plan.Top, plan.Next...), plan.Defer...) {
		if it.Blocked {
			t.Errorf("blocked task %q leaked into a work bucket", it.Title)
		}
	}
}

func TestBuildPlanAllBlocked(t *testing.T) {
	tasks := []model.Task{
		{Title: "b", EffortMin: 45, Impact: 1, Blocked: true},
		{Title: "a", Deadline: due(0), EffortMin: 45, Impact: 3, Blocked: true},
	}

	plan := planner.BuildPlan(tasks, today, planner.DefaultConfig())

	if len(plan.Top)+len(plan.Next)+len(plan.Defer) != 0 {
		t.Errorf("expected only unblock populated")
	}
	if !equalStrings(titles(plan.Unblock), []string{"a", "b"}) {
		t.Errorf("unblock = %v", titles(plan.Unblock))
	}
}

func TestBuildPlanFewerThanTop(t *testing.T) {
	tasks := []model.Task{
		{Title: "one", EffortMin: 45, Impact: 2},
		{Title: "two", EffortMin: 45, Impact: 3},
	}

	plan := planner.BuildPlan(tasks, today, planner.DefaultConfig())

	if len(plan.Top) != 2 || len(plan.Next) != 0 {
		t.Errorf("top=%v next=%v", titles(plan.Top), titles(plan.Next))
	}
}

func TestBuildPlanDeferAndDrop(t *testing.T) {
	var tasks []model.Task
	// Eight strong tasks fill Top and Next.
	for i := 0; i < 8; i++ {
		tasks = append(tasks, model.Task{Title: fmt.Sprintf("urgent %d", i), Deadline: due(0), EffortMin: 30, Impact: 3})
	}
	tasks = append(tasks,
		model.Task{Title: "Low everything", Deadline: due(10), EffortMin: 45, Impact: 1},
		model.Task{Title: "Medium remainder", Deadline: due(5), EffortMin: 45, Impact: 2},
		model.Task{Title: "No deadline low", Deadline: nil, EffortMin: 45, Impact: 1},
	)

	plan := planner.BuildPlan(tasks, today, planner.DefaultConfig())

	if !equalStrings(titles(plan.Defer), []string{"Low everything", "No deadline low"}) {
		t.Errorf("defer = %v", titles(plan.Defer))
	}
	if plan.Dropped != 1 {
		t.Errorf("expected the medium remainder task to be dropped, dropped=%d", plan.Dropped)
	}
	d := plan.Defer[0]
	if d.ScoreBreakdown.Urgency != 1.0 || d.Impact != 1 {
		t.Errorf("unexpected defer entry %+v", d)
	}
}

func TestBuildPlanCustomCounts(t *testing.T) {
	cfg := planner.DefaultConfig()
	cfg.TopCount = 1
	cfg.NextCount = 1

	tasks := []model.Task{
		{Title: "a", Deadline: due(0), EffortMin: 45, Impact: 3},
		{Title: "b", Deadline: due(1), EffortMin: 45, Impact: 3},
		{Title: "c", Deadline: due(30), EffortMin: 45, Impact: 1},
	}

	plan := planner.BuildPlan(tasks, today, cfg)

	if !equalStrings(titles(plan.Top), []string{"a"}) || !equalStrings(titles(plan.Next), []string{"b"}) {
		t.Errorf("top=%v next=%v", titles(plan.Top), titles(plan.Next))
	}
	if !equalStrings(titles(plan.Defer), []string{"c"}) {
		t.Errorf("defer=%v", titles(plan.Defer))
	}
	if plan.Assumptions.TopCount != 1 || plan.Assumptions.NextCount != 1 {
		t.Errorf("assumptions do not mirror config: %+v", plan.Assumptions)
	}
}

func TestBuildPlanIdempotent(t *testing.T) {
	tasks := []model.Task{
		{Title: "x", Deadline: due(2), EffortMin: 20, Impact: 2, Tags: []string{"work"}},
		{Title: "y", Deadline: nil, EffortMin: 10, Impact: 1, Blocked: true},
		{Title: "z", Deadline: due(-4), EffortMin: 90, Impact: 3},
	}
	cfg := planner.DefaultConfig()

	first, err := json.Marshal(planner.BuildPlan(tasks, today, cfg))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	second, err := json.Marshal(planner.BuildPlan(tasks, today, cfg))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(first) != string(second) {
		t.Errorf("plans differ:\n%s\n%s", first, second)
	}
}

func TestBuildPlanDoesNotMutateInput(t *testing.T) {
	tasks := []model.Task{
		{Title: "b", EffortMin: 45, Impact: 1, Tags: []string{"t1"}},
		{Title: "a", Deadline: due(0), EffortMin: 45, Impact: 3},
	}

	plan := planner.BuildPlan(tasks, today, planner.DefaultConfig())
	plan.Top[1].Tags[0] = "changed"

	if tasks[0].Title != "b" || tasks[1].Title != "a" {
		t.Errorf("input order changed: %v", tasks)
	}
	if tasks[0].Tags[0] != "t1" {
		t.Errorf("input tags aliased by plan")
	}
}

func TestBuildPlanReferenceDate(t *testing.T) {
	tasks := []model.Task{{Title: "x", Deadline: model.DatePtr(time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)), EffortMin: 45, Impact: 2}}

	early := planner.BuildPlan(tasks, today, planner.DefaultConfig())
	late := planner.BuildPlan(tasks, today.AddDate(0, 0, 3), planner.DefaultConfig())

	if early.Top[0].ScoreBreakdown.Urgency != 3.0 {
		t.Errorf("expected 3.0 two days out, got %v", early.Top[0].ScoreBreakdown.Urgency)
	}
	if late.Top[0].ScoreBreakdown.Urgency != 5.0 || late.Top[0].Reason != "Overdue, Medium impact" {
		t.Errorf("expected overdue a day later, got %+v", late.Top[0])
	}
}
