package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"daily-priority-agent/config"
	_ "daily-priority-agent/docs" // Swagger docs
	"daily-priority-agent/internal/bootstrap"
	"daily-priority-agent/internal/httpserver"
	taskHTTP "daily-priority-agent/internal/task/delivery/http"
	tgDelivery "daily-priority-agent/internal/task/delivery/telegram"
	"daily-priority-agent/pkg/telegram"
)

// @title       Daily Priority Agent API
// @description Scores and buckets daily tasks from CSV, structured JSON or free text.
// @version     1
// @host        localhost:8000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := bootstrap.NewLogger(cfg.Logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Daily Priority Agent...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Task domain
	taskUC, err := bootstrap.NewTaskUseCase(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize task use case: ", err)
		os.Exit(1)
	}
	taskHandler := taskHTTP.New(logger, taskUC, cfg.Planner.ToPlanner())

	// 4. Telegram (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, taskUC, bot, cfg.Telegram.WebhookSecret)

		if cfg.Telegram.WebhookURL != "" {
			if err := bot.SetWebhook(ctx, cfg.Telegram.WebhookURL, cfg.Telegram.WebhookSecret); err != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
			} else {
				logger.Infof(ctx, "Telegram webhook registered at %s", cfg.Telegram.WebhookURL)
			}
		}
	} else {
		logger.Info(ctx, "TELEGRAM_BOT_TOKEN not set, Telegram front-end disabled")
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		AllowedOrigins:  cfg.CORS.AllowedOrigins,
		RateLimitPerMin: cfg.RateLimit.PerMin,
		Components: map[string]bool{
			"llm":      cfg.LLM.Enabled(),
			"calendar": cfg.Calendar.Enabled && cfg.Calendar.CredentialsPath != "",
		},
		TaskHandler:     taskHandler,
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
