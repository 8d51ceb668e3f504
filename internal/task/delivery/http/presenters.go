package http

import (
	"context"
	"errors"
	"strings"
	"time"

	"daily-priority-agent/internal/model"
	"daily-priority-agent/internal/planner"
	"daily-priority-agent/internal/task"
	"daily-priority-agent/internal/task/repository"
)

var (
	errNoSource   = errors.New("one of raw_tasks or tasks is required")
	errTwoSources = errors.New("raw_tasks and tasks are mutually exclusive")
)

// --- Request DTOs ---

type prioritizeReq struct {
	UserID   string `json:"user_id"`
	RawTasks string `json:"raw_tasks"`
}

// ---

type taskReq struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Deadline    string   `json:"deadline"`
	Effort      string   `json:"effort"`
	Impact      string   `json:"impact"`
	Blocked     bool     `json:"blocked"`
	Tags        []string `json:"tags"`
}

type createPlanReq struct {
	RawTasks string    `json:"raw_tasks"`
	Tasks    []taskReq `json:"tasks"`
	Today    string    `json:"today" binding:"omitempty,datetime=2006-01-02"`
}

func (r createPlanReq) fromText() bool {
	return strings.TrimSpace(r.RawTasks) != ""
}

func (r createPlanReq) validate() error {
	hasText := r.fromText()
	switch {
	case hasText && len(r.Tasks) > 0:
		return errTwoSources
	case !hasText && r.Tasks == nil:
		return errNoSource
	}
	return nil
}

func (r createPlanReq) today() (time.Time, error) {
	if strings.TrimSpace(r.Today) == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(planner.DateFormat, strings.TrimSpace(r.Today))
	if err != nil {
		return time.Time{}, task.ErrInvalidDate
	}
	return t, nil
}

// toTasks converts the request rows. A malformed deadline means no deadline, like a CSV
// cell; untitled rows are passed on and dropped by the use case.
func (h *handler) toTasks(ctx context.Context, rows []taskReq) []model.Task {
	tasks := make([]model.Task, 0, len(rows))
	for i, t := range rows {
		deadline, err := repository.ParseDate(t.Deadline)
		if err != nil {
			h.l.Warnf(ctx, "task.delivery.CreatePlan: tasks[%d] %q: %v, treating as no deadline", i, t.Title, err)
		}
		tasks = append(tasks, model.Task{
			Title:       t.Title,
			Description: t.Description,
			Deadline:    deadline,
			EffortMin:   repository.ParseEffort(t.Effort, h.cfg),
			Impact:      repository.ParseImpact(t.Impact, h.cfg),
			Blocked:     t.Blocked,
			Tags:        repository.SplitTags(strings.Join(t.Tags, ",")),
		})
	}
	return tasks
}

// --- Response DTOs ---

type prioritizedTaskResp struct {
	Title    string  `json:"title"`
	Impact   string  `json:"impact"`
	Deadline *string `json:"deadline"`
	Effort   string  `json:"effort"`
	Score    float64 `json:"score"`
	Reason   string  `json:"reason"`
	Bucket   string  `json:"bucket"`
}

type prioritizeResp struct {
	PrioritizedTasks []prioritizedTaskResp `json:"prioritized_tasks"`
}

func emptyPrioritizeResp() prioritizeResp {
	return prioritizeResp{PrioritizedTasks: []prioritizedTaskResp{}}
}

// Bucket names in the flattened /api/prioritize listing.
const (
	bucketTop     = "top"
	bucketNext    = "next"
	bucketUnblock = "unblock"
	bucketDefer   = "defer"
)

func (h *handler) newPrioritizeResp(p planner.Plan) prioritizeResp {
	resp := emptyPrioritizeResp()
	buckets := []struct {
		name  string
		items []planner.PlanItem
	}{
		{bucketTop, p.Top},
		{bucketNext, p.Next},
		{bucketUnblock, p.Unblock},
		{bucketDefer, p.Defer},
	}
	for _, b := range buckets {
		for _, it := range b.items {
			resp.PrioritizedTasks = append(resp.PrioritizedTasks, prioritizedTaskResp{
				Title:    it.Title,
				Impact:   impactLabel(it.Impact),
				Deadline: it.Deadline,
				Effort:   h.effortLabel(it.EffortMin),
				Score:    it.Score,
				Reason:   it.Reason,
				Bucket:   b.name,
			})
		}
	}
	return resp
}

type createPlanResp struct {
	Plan      planner.Plan `json:"plan"`
	TaskCount int          `json:"task_count"`
}

func (h *handler) newCreatePlanResp(out task.PlanOutput) createPlanResp {
	return createPlanResp{
		Plan:      out.Plan,
		TaskCount: out.TaskCount,
	}
}

func impactLabel(impact int) string {
	switch impact {
	case model.ImpactHigh:
		return "high"
	case model.ImpactLow:
		return "low"
	default:
		return "medium"
	}
}

// effortLabel maps minutes to the smallest configured size that covers them.
func (h *handler) effortLabel(minutes int) string {
	switch {
	case minutes <= h.cfg.EffortDefaults[planner.EffortSmall]:
		return "small"
	case minutes <= h.cfg.EffortDefaults[planner.EffortMedium]:
		return "medium"
	default:
		return "large"
	}
}
