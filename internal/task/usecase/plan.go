package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"daily-priority-agent/internal/model"
	"daily-priority-agent/internal/planner"
	"daily-priority-agent/internal/task"
	"daily-priority-agent/internal/task/repository"
)

// PlanFromCSV reads a task file and builds the plan.
func (uc *implUseCase) PlanFromCSV(ctx context.Context, input task.PlanFromCSVInput) (task.PlanOutput, error) {
	tasks, err := uc.csvRepo.ReadTasks(ctx, repository.ReadTasksOptions{
		Path:   input.Path,
		Reader: input.Reader,
	})
	if err != nil {
		return task.PlanOutput{}, fmt.Errorf("%w: %v", task.ErrReadSource, err)
	}

	return uc.buildPlan(ctx, tasks, input.Today), nil
}

// PlanFromText extracts tasks from free text and builds the plan.
func (uc *implUseCase) PlanFromText(ctx context.Context, input task.PlanFromTextInput) (task.PlanOutput, error) {
	today := uc.today(input.Today)

	extracted, err := uc.ExtractTasks(ctx, task.ExtractInput{RawText: input.RawText, Today: today})
	if err != nil {
		return task.PlanOutput{}, err
	}
	if len(extracted.Tasks) == 0 {
		return task.PlanOutput{}, task.ErrNoTasks
	}

	return uc.buildPlan(ctx, extracted.Tasks, today), nil
}

// PlanFromTasks builds the plan from structured tasks. Tasks without a title are skipped
// and out-of-range effort or impact fall back to the configured defaults.
func (uc *implUseCase) PlanFromTasks(ctx context.Context, input task.PlanFromTasksInput) (task.PlanOutput, error) {
	tasks := make([]model.Task, 0, len(input.Tasks))
	for _, t := range input.Tasks {
		t.Title = strings.TrimSpace(t.Title)
		if t.Title == "" {
			uc.l.Debugf(ctx, "task.usecase.PlanFromTasks: task without title skipped")
			continue
		}
		if t.EffortMin <= 0 {
			t.EffortMin = uc.cfg.DefaultEffort()
		}
		if t.Impact < model.ImpactLow || t.Impact > model.ImpactHigh {
			t.Impact = uc.cfg.DefaultImpact()
		}
		if t.Deadline != nil {
			t.Deadline = model.DatePtr(*t.Deadline)
		}
		if t.Tags == nil {
			t.Tags = []string{}
		}
		tasks = append(tasks, t)
	}

	return uc.buildPlan(ctx, tasks, input.Today), nil
}

func (uc *implUseCase) buildPlan(ctx context.Context, tasks []model.Task, today time.Time) task.PlanOutput {
	p := planner.BuildPlan(tasks, uc.today(today), uc.cfg)

	uc.l.Infof(ctx, "task.usecase.buildPlan: date=%s tasks=%d top=%d next=%d unblock=%d defer=%d",
		p.GeneratedOn, len(tasks), len(p.Top), len(p.Next), len(p.Unblock), len(p.Defer))
	if p.Dropped > 0 {
		uc.l.Warnf(ctx, "task.usecase.buildPlan: %d unblocked tasks fell outside every bucket", p.Dropped)
	}

	return task.PlanOutput{Plan: p, TaskCount: len(tasks)}
}

// today resolves the reference date, defaulting to the current local date.
func (uc *implUseCase) today(t time.Time) time.Time {
	if t.IsZero() {
		t = uc.now()
	}
	return model.Date(t)
}
