package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"daily-priority-agent/config"
	"daily-priority-agent/internal/bootstrap"
	"daily-priority-agent/internal/planner"
	"daily-priority-agent/internal/task"
	"daily-priority-agent/pkg/log"
)

var rootCmd = &cobra.Command{
	Use:   "planner",
	Short: "Score and bucket today's tasks",
	Long: `planner reads tasks from a CSV file or free text, scores each one by
urgency, impact and effort, and splits them into Top, Next, Unblock and
Defer buckets with a one-line reason per task.`,
	SilenceUsage: true,
}

// Global flags
var (
	configFile string
	verbose    bool
)

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default searches ./config, . and /etc/app)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at the configured level instead of warn")
}

// app is the dependency graph a command works with.
type app struct {
	cfg *config.Config
	l   log.Logger
	uc  task.UseCase
}

// newApp builds the app from configuration. Tests replace it.
var newApp = func(ctx context.Context) (*app, error) {
	cfg, err := config.LoadFile(configFile)
	if err != nil {
		return nil, err
	}

	level := cfg.Logger.Level
	if !verbose {
		level = "warn"
	}
	l := log.Init(log.ZapConfig{
		Level:        level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
		Stderr:       true,
	})

	uc, err := bootstrap.NewTaskUseCase(ctx, cfg, l)
	if err != nil {
		return nil, err
	}

	return &app{cfg: cfg, l: l, uc: uc}, nil
}

// todayFromFlag reads a YYYY-MM-DD flag; empty means the current date.
func todayFromFlag(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(planner.DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("--today: %w", task.ErrInvalidDate)
	}
	return t, nil
}
