// Package bootstrap builds the shared dependency graph for the api and planner binaries.
package bootstrap

import (
	"context"
	"errors"
	"time"

	"daily-priority-agent/config"
	"daily-priority-agent/internal/task"
	csvRepo "daily-priority-agent/internal/task/repository/csvfile"
	llmRepo "daily-priority-agent/internal/task/repository/llm"
	"daily-priority-agent/internal/task/usecase"
	"daily-priority-agent/pkg/gcalendar"
	"daily-priority-agent/pkg/llmprovider"
	"daily-priority-agent/pkg/log"
)

// NewLogger builds the zap logger from the logger section.
func NewLogger(cfg config.LoggerConfig) log.Logger {
	return log.Init(log.ZapConfig{
		Level:        cfg.Level,
		Mode:         cfg.Mode,
		Encoding:     cfg.Encoding,
		ColorEnabled: cfg.ColorEnabled,
	})
}

// NewTaskUseCase wires repositories, the optional LLM and the optional calendar into the use case.
// Missing optional collaborators are logged and skipped.
func NewTaskUseCase(ctx context.Context, cfg *config.Config, logger log.Logger) (task.UseCase, error) {
	plannerCfg := cfg.Planner.ToPlanner()

	// LLM (optional): without it free text goes through the comma splitter
	var gen llmRepo.Generator
	if cfg.LLM.Enabled() {
		manager, err := llmprovider.NewManagerFromConfig(&cfg.LLM, logger)
		if err != nil {
			logger.Warnf(ctx, "LLM not available, using comma splitter: %v", err)
		} else {
			gen = manager
			logger.Info(ctx, "LLM provider manager initialized")
		}
	} else {
		logger.Info(ctx, "No LLM provider configured, using comma splitter for free text")
	}

	extractor, err := llmRepo.New(gen, plannerCfg, llmRepo.Options{
		CacheTTL:  parseDuration(cfg.LLM.CacheTTL),
		CacheSize: cfg.LLM.CacheSize,
		Timezone:  cfg.Calendar.Timezone,
	}, logger)
	if err != nil {
		return nil, err
	}

	// Google Calendar (optional)
	var calendar usecase.Calendar
	if cfg.Calendar.Enabled && cfg.Calendar.CredentialsPath != "" {
		client, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.Calendar.CredentialsPath)
		if errors.Is(calErr, gcalendar.ErrTokenMissing) {
			logger.Warnf(ctx, "Google Calendar needs authorization: %v", calErr)
		} else if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			calendar = client
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	return usecase.New(
		logger,
		plannerCfg,
		csvRepo.New(plannerCfg, logger),
		extractor,
		calendar,
		usecase.ScheduleConfig{
			CalendarID:   cfg.Calendar.CalendarID,
			Timezone:     cfg.Calendar.Timezone,
			DayStart:     cfg.Calendar.DayStart,
			AvailableMin: cfg.Calendar.AvailableMin,
			ReminderMin:  cfg.Calendar.ReminderMin,
		},
	), nil
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0
	}
	return d
}
