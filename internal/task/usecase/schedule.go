package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"daily-priority-agent/internal/planner"
	"daily-priority-agent/internal/task"
	"daily-priority-agent/pkg/gcalendar"
)

// ScheduleTop places the Top tasks back to back from the configured day start until
// the available minutes run out. Calendar failures skip the task and are logged.
func (uc *implUseCase) ScheduleTop(ctx context.Context, input task.ScheduleInput) (task.ScheduleOutput, error) {
	out := task.ScheduleOutput{
		Blocks:  []task.ScheduledBlock{},
		Skipped: []string{},
	}
	if uc.calendar == nil {
		uc.l.Debugf(ctx, "task.usecase.ScheduleTop: calendar not configured")
		return out, nil
	}

	start, err := uc.dayStart(input.Plan.GeneratedOn)
	if err != nil {
		return out, err
	}

	used := 0
	for _, item := range input.Plan.Top {
		if used+item.EffortMin > uc.schedule.AvailableMin {
			out.Skipped = append(out.Skipped, item.Title)
			continue
		}

		end := start.Add(time.Duration(item.EffortMin) * time.Minute)
		event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
			CalendarID:  uc.schedule.CalendarID,
			Summary:     item.Title,
			Description: eventDescription(item),
			StartTime:   start,
			EndTime:     end,
			Timezone:    uc.schedule.Timezone,
			ColorID:     gcalendar.ColorTomato,
			ReminderMin: uc.schedule.ReminderMin,
		})
		if err != nil {
			uc.l.Warnf(ctx, "task.usecase.ScheduleTop: calendar event for %q failed (non-fatal): %v", item.Title, err)
			out.Skipped = append(out.Skipped, item.Title)
			continue
		}

		out.Blocks = append(out.Blocks, task.ScheduledBlock{
			Title: item.Title,
			Start: start,
			End:   end,
			Link:  event.Link,
		})
		used += item.EffortMin
		start = end
	}

	uc.l.Infof(ctx, "task.usecase.ScheduleTop: scheduled=%d skipped=%d minutes=%d",
		len(out.Blocks), len(out.Skipped), used)
	return out, nil
}

func (uc *implUseCase) dayStart(generatedOn string) (time.Time, error) {
	loc, err := time.LoadLocation(uc.schedule.Timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", uc.schedule.Timezone, err)
	}
	day, err := time.Parse(planner.DateFormat, generatedOn)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", task.ErrInvalidDate, generatedOn)
	}
	clock, err := time.Parse("15:04", uc.schedule.DayStart)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day start %q: %w", uc.schedule.DayStart, err)
	}

	return time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, loc), nil
}

func eventDescription(item planner.PlanItem) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Why: %s\nScore: %.2f", item.Reason, item.Score)
	if item.Description != "" {
		sb.WriteString("\n\n")
		sb.WriteString(item.Description)
	}
	return sb.String()
}
