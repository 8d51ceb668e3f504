package llmprovider

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"daily-priority-agent/config"
	"daily-priority-agent/pkg/gemini"
	"daily-priority-agent/pkg/openaichat"
)

// InitializeProviders creates Provider instances from config.LLMConfig
// Returns providers sorted by priority (ascending) with disabled providers filtered out
// Skips providers that fail to initialize instead of failing the entire service
func InitializeProviders(cfg *config.LLMConfig) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	if len(cfg.Providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	var enabledProviders []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabledProviders = append(enabledProviders, p)
		}
	}

	if len(enabledProviders) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabledProviders, func(i, j int) bool {
		return enabledProviders[i].Priority < enabledProviders[j].Priority
	})

	var providers []Provider
	var initErrors []string

	for _, p := range enabledProviders {
		provider, err := createProvider(p)
		if err != nil {
			initErrors = append(initErrors, fmt.Sprintf("provider %s (priority %d): %v", p.Name, p.Priority, err))
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no providers successfully initialized: %s", strings.Join(initErrors, "; "))
	}

	return providers, nil
}

// NewManagerFromConfig builds the providers and a Manager with the retry settings of cfg.
func NewManagerFromConfig(cfg *config.LLMConfig, logger Logger) (*Manager, error) {
	providers, err := InitializeProviders(cfg)
	if err != nil {
		return nil, err
	}

	retryDelay, err := time.ParseDuration(cfg.RetryDelay)
	if err != nil {
		retryDelay = time.Second
	}
	maxTotal, err := time.ParseDuration(cfg.MaxTotalTimeout)
	if err != nil {
		maxTotal = 0
	}

	return NewManager(providers, &Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
		RetryDelay:      retryDelay,
		MaxTotalTimeout: maxTotal,
	}, logger), nil
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(cfg config.ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider %s: API key is required", cfg.Name)
	}

	switch cfg.Name {
	case ProviderGemini:
		client := gemini.NewClient(cfg.APIKey)
		client.SetModel(cfg.Model)
		if cfg.BaseURL != "" {
			client.SetAPIURL(cfg.BaseURL)
		}
		if timeout, err := time.ParseDuration(cfg.Timeout); err == nil {
			client.SetTimeout(timeout)
		}
		return NewGeminiAdapter(client), nil

	case ProviderDeepSeek:
		return newChatProvider(ProviderDeepSeek, cfg, openaichat.DeepSeekBaseURL, openaichat.DeepSeekModel)

	case ProviderQwen, "alibaba":
		return newChatProvider(ProviderQwen, cfg, openaichat.QwenBaseURL, openaichat.QwenModel)

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}

func newChatProvider(name string, cfg config.ProviderConfig, baseURL, model string) (Provider, error) {
	if cfg.BaseURL != "" {
		baseURL = cfg.BaseURL
	}
	if cfg.Model != "" {
		model = cfg.Model
	}
	httpClient := &http.Client{Timeout: openaichat.DefaultTimeout}
	if timeout, err := time.ParseDuration(cfg.Timeout); err == nil && timeout > 0 {
		httpClient.Timeout = timeout
	}

	client, err := openaichat.New(openaichat.Config{
		APIKey:     cfg.APIKey,
		BaseURL:    baseURL,
		Model:      model,
		HTTPClient: httpClient,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", name, err)
	}
	return NewOpenAIChatAdapter(name, client), nil
}
