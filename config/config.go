package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"daily-priority-agent/internal/planner"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig
	RateLimit  RateLimitConfig

	// Prioritization
	Planner PlannerConfig

	// LLM Provider Abstraction
	LLM LLMConfig

	// Optional Google Calendar sink
	Calendar CalendarConfig

	// Optional Telegram front-end
	Telegram TelegramConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	PerMin int
}

// PlannerConfig mirrors planner.Config in configuration form.
type PlannerConfig struct {
	UrgencyWeight    float64
	ImportanceWeight float64
	QuickWinBonus    float64
	BlockedPenalty   float64
	EffortSmall      int
	EffortMedium     int
	EffortLarge      int
	ImpactLow        int
	ImpactMedium     int
	ImpactHigh       int
	TopCount         int
	NextCount        int
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
	CacheTTL        string           `yaml:"cache_ttl"`
	CacheSize       int              `yaml:"cache_size"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// Enabled reports whether at least one provider is enabled.
func (c LLMConfig) Enabled() bool {
	for _, p := range c.Providers {
		if p.Enabled && p.APIKey != "" {
			return true
		}
	}
	return false
}

type CalendarConfig struct {
	Enabled         bool
	CredentialsPath string
	CalendarID      string
	Timezone        string
	DayStart        string // HH:MM
	AvailableMin    int
	ReminderMin     int
}

// TelegramConfig enables the bot front-end when BotToken is set.
// WebhookSecret is checked against X-Telegram-Bot-Api-Secret-Token.
type TelegramConfig struct {
	BotToken      string
	WebhookURL    string
	WebhookSecret string
}

// ToPlanner converts the configuration form into a planner.Config.
func (c PlannerConfig) ToPlanner() planner.Config {
	return planner.Config{
		Weights: planner.Weights{
			Urgency:        c.UrgencyWeight,
			Importance:     c.ImportanceWeight,
			QuickWinBonus:  c.QuickWinBonus,
			BlockedPenalty: c.BlockedPenalty,
		},
		EffortDefaults: map[string]int{
			planner.EffortSmall:  c.EffortSmall,
			planner.EffortMedium: c.EffortMedium,
			planner.EffortLarge:  c.EffortLarge,
		},
		ImpactMap: map[string]int{
			"low":    c.ImpactLow,
			"medium": c.ImpactMedium,
			"high":   c.ImpactHigh,
		},
		TopCount:  c.TopCount,
		NextCount: c.NextCount,
	}
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, . and /etc/app/
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile loads configuration from path, or searches the default locations when path is empty.
// A missing config file is not an error: defaults and environment variables still apply.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/app/")
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.CORS.AllowedOrigins = splitList(v.GetString("cors.allowed_origins"))
	cfg.RateLimit.PerMin = v.GetInt("rate_limit.per_min")

	// Planner
	cfg.Planner = PlannerConfig{
		UrgencyWeight:    v.GetFloat64("planner.weights.urgency"),
		ImportanceWeight: v.GetFloat64("planner.weights.importance"),
		QuickWinBonus:    v.GetFloat64("planner.weights.quickwin_bonus"),
		BlockedPenalty:   v.GetFloat64("planner.weights.blocked_penalty"),
		EffortSmall:      v.GetInt("planner.effort_defaults.s"),
		EffortMedium:     v.GetInt("planner.effort_defaults.m"),
		EffortLarge:      v.GetInt("planner.effort_defaults.l"),
		ImpactLow:        v.GetInt("planner.impact_map.low"),
		ImpactMedium:     v.GetInt("planner.impact_map.medium"),
		ImpactHigh:       v.GetInt("planner.impact_map.high"),
		TopCount:         v.GetInt("planner.top_count"),
		NextCount:        v.GetInt("planner.next_count"),
	}
	if err := cfg.Planner.validate(); err != nil {
		return nil, err
	}

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = v.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = v.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = v.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = v.GetString("llm.max_total_timeout")
	cfg.LLM.CacheTTL = v.GetString("llm.cache_ttl")
	cfg.LLM.CacheSize = v.GetInt("llm.cache_size")

	if v.IsSet("llm.providers") {
		if providersList, ok := v.Get("llm.providers").([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(v, getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					})
				}
			}
		}
	}

	// A bare GEMINI_API_KEY is enough to enable the default provider.
	if len(cfg.LLM.Providers) == 0 {
		if key := v.GetString("gemini_api_key"); key != "" {
			cfg.LLM.Providers = []ProviderConfig{{
				Name:     "gemini",
				Enabled:  true,
				Priority: 1,
				APIKey:   key,
				Model:    v.GetString("gemini_model"),
				Timeout:  "30s",
			}}
		}
	}

	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, err
	}

	// Calendar
	cfg.Calendar.Enabled = v.GetBool("calendar.enabled")
	cfg.Calendar.CredentialsPath = v.GetString("calendar.credentials_path")
	if creds := v.GetString("google_calendar_credentials"); creds != "" {
		cfg.Calendar.CredentialsPath = creds
	}
	cfg.Calendar.CalendarID = v.GetString("calendar.calendar_id")
	cfg.Calendar.Timezone = v.GetString("calendar.timezone")
	cfg.Calendar.DayStart = v.GetString("calendar.day_start")
	cfg.Calendar.AvailableMin = v.GetInt("calendar.available_min")
	cfg.Calendar.ReminderMin = v.GetInt("calendar.reminder_min")

	// Telegram
	cfg.Telegram.BotToken = v.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = v.GetString("telegram.webhook_url")
	cfg.Telegram.WebhookSecret = v.GetString("telegram.webhook_secret")
	if tgToken := v.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8000)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("cors.allowed_origins", "*")
	v.SetDefault("rate_limit.per_min", 60)

	// Planner defaults
	defaults := planner.DefaultConfig()
	v.SetDefault("planner.weights.urgency", defaults.Weights.Urgency)
	v.SetDefault("planner.weights.importance", defaults.Weights.Importance)
	v.SetDefault("planner.weights.quickwin_bonus", defaults.Weights.QuickWinBonus)
	v.SetDefault("planner.weights.blocked_penalty", defaults.Weights.BlockedPenalty)
	v.SetDefault("planner.effort_defaults.s", defaults.EffortDefaults[planner.EffortSmall])
	v.SetDefault("planner.effort_defaults.m", defaults.EffortDefaults[planner.EffortMedium])
	v.SetDefault("planner.effort_defaults.l", defaults.EffortDefaults[planner.EffortLarge])
	v.SetDefault("planner.impact_map.low", defaults.ImpactMap["low"])
	v.SetDefault("planner.impact_map.medium", defaults.ImpactMap["medium"])
	v.SetDefault("planner.impact_map.high", defaults.ImpactMap["high"])
	v.SetDefault("planner.top_count", defaults.TopCount)
	v.SetDefault("planner.next_count", defaults.NextCount)

	// LLM defaults
	v.SetDefault("llm.fallback_enabled", true)
	v.SetDefault("llm.retry_attempts", 3)
	v.SetDefault("llm.retry_delay", "1s")
	v.SetDefault("llm.max_total_timeout", "60s")
	v.SetDefault("llm.cache_ttl", "10m")
	v.SetDefault("llm.cache_size", 256)

	// Calendar defaults
	v.SetDefault("calendar.enabled", false)
	v.SetDefault("calendar.calendar_id", "primary")
	v.SetDefault("calendar.timezone", "UTC")
	v.SetDefault("calendar.day_start", "09:00")
	v.SetDefault("calendar.available_min", 120)
	v.SetDefault("calendar.reminder_min", 10)
}

func (c PlannerConfig) validate() error {
	if c.TopCount < 0 || c.NextCount < 0 {
		return fmt.Errorf("planner: top_count and next_count must not be negative")
	}
	if c.EffortSmall <= 0 || c.EffortMedium <= 0 || c.EffortLarge <= 0 {
		return fmt.Errorf("planner: effort defaults must be positive")
	}
	for name, v := range map[string]int{"low": c.ImpactLow, "medium": c.ImpactMedium, "high": c.ImpactHigh} {
		if v < 1 || v > 3 {
			return fmt.Errorf("planner: impact %s must be between 1 and 3, got %d", name, v)
		}
	}
	return nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := v.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}

// validateLLMConfig validates the LLM configuration. No providers is valid:
// free-text parsing then falls back to the comma splitter.
func validateLLMConfig(cfg *LLMConfig) error {
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}

		if provider.Enabled {
			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}
			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true
		}
	}

	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
