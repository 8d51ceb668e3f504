package usecase

import (
	"context"
	"time"

	"daily-priority-agent/internal/planner"
	"daily-priority-agent/internal/task"
	"daily-priority-agent/internal/task/repository"
	"daily-priority-agent/pkg/gcalendar"
	pkgLog "daily-priority-agent/pkg/log"
)

const (
	defaultDayStart     = "09:00"
	defaultAvailableMin = 120
	defaultCalendarID   = "primary"
	defaultTimezone     = "UTC"
)

// Calendar is the event sink used to time-block Top tasks. *gcalendar.Client satisfies it.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// ScheduleConfig controls time-blocking of the Top bucket.
type ScheduleConfig struct {
	CalendarID   string
	Timezone     string
	DayStart     string // HH:MM
	AvailableMin int
	ReminderMin  int // 0 keeps the calendar's default reminders
}

type implUseCase struct {
	l         pkgLog.Logger
	cfg       planner.Config
	csvRepo   repository.CSVRepository
	extractor repository.ExtractorRepository
	calendar  Calendar
	schedule  ScheduleConfig
	now       func() time.Time
}

// New creates a new task UseCase instance. calendar may be nil.
func New(
	l pkgLog.Logger,
	cfg planner.Config,
	csvRepo repository.CSVRepository,
	extractor repository.ExtractorRepository,
	calendar Calendar,
	schedule ScheduleConfig,
) task.UseCase {
	if schedule.CalendarID == "" {
		schedule.CalendarID = defaultCalendarID
	}
	if schedule.Timezone == "" {
		schedule.Timezone = defaultTimezone
	}
	if schedule.DayStart == "" {
		schedule.DayStart = defaultDayStart
	}
	if schedule.AvailableMin <= 0 {
		schedule.AvailableMin = defaultAvailableMin
	}

	return &implUseCase{
		l:         l,
		cfg:       cfg,
		csvRepo:   csvRepo,
		extractor: extractor,
		calendar:  calendar,
		schedule:  schedule,
		now:       time.Now,
	}
}
