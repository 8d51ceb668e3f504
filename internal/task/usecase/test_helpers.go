package usecase

import (
	"context"
	"errors"
	"time"

	"daily-priority-agent/internal/model"
	"daily-priority-agent/internal/planner"
	"daily-priority-agent/internal/task"
	"daily-priority-agent/internal/task/repository"
	"daily-priority-agent/pkg/gcalendar"
	pkgLog "daily-priority-agent/pkg/log"
)

// Mock CSV repository for testing
type mockCSVRepo struct {
	tasks []model.Task
	err   error
	opt   repository.ReadTasksOptions
}

func (m *mockCSVRepo) ReadTasks(ctx context.Context, opt repository.ReadTasksOptions) ([]model.Task, error) {
	m.opt = opt
	return m.tasks, m.err
}

// Mock extractor for testing
type mockExtractor struct {
	tasks []model.Task
	calls int
	opt   repository.ExtractTasksOptions
}

func (m *mockExtractor) ExtractTasks(ctx context.Context, opt repository.ExtractTasksOptions) []model.Task {
	m.calls++
	m.opt = opt
	if m.tasks == nil {
		return []model.Task{}
	}
	return m.tasks
}

// Mock calendar for testing
type mockCalendar struct {
	requests []gcalendar.CreateEventRequest
	failOn   string
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	if req.Summary == m.failOn {
		return nil, errors.New("calendar unavailable")
	}
	m.requests = append(m.requests, req)
	return &gcalendar.Event{ID: "evt", Summary: req.Summary, Link: "https://calendar.example/" + req.Summary}, nil
}

var fixedToday = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

func newTestUseCase(csvRepo repository.CSVRepository, extractor repository.ExtractorRepository, calendar Calendar) *implUseCase {
	uc := New(pkgLog.NewNop(), planner.DefaultConfig(), csvRepo, extractor, calendar, ScheduleConfig{}).(*implUseCase)
	uc.now = func() time.Time { return fixedToday.Add(15 * time.Hour) }
	return uc
}

func planWithTop(items ...planner.PlanItem) task.ScheduleInput {
	return task.ScheduleInput{Plan: planner.Plan{GeneratedOn: "2024-05-01", Top: items}}
}
