package llmprovider_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"daily-priority-agent/config"
	"daily-priority-agent/pkg/gemini"
	"daily-priority-agent/pkg/llmprovider"
	"daily-priority-agent/pkg/log"
	"daily-priority-agent/pkg/openaichat"
)

// TestIntegration_ConfigToManagerFlow verifies that configuration loading,
// provider initialization, and manager work together correctly
func TestIntegration_ConfigToManagerFlow(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req gemini.GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if req.GenerationConfig == nil || req.GenerationConfig.ResponseMIMEType != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"[]"}]}}],
			"usageMetadata":{"promptTokenCount":7,"candidatesTokenCount":1,"totalTokenCount":8}}`))
	}))
	defer ts.Close()

	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{
				Name:     "gemini",
				Enabled:  true,
				Priority: 1,
				APIKey:   "test-gemini-key",
				BaseURL:  ts.URL,
				Model:    "gemini-1.5-flash",
				Timeout:  "5s",
			},
		},
		FallbackEnabled: true,
		RetryAttempts:   2,
		RetryDelay:      "10ms",
		MaxTotalTimeout: "10s",
	}

	manager, err := llmprovider.NewManagerFromConfig(cfg, log.NewNop())
	if err != nil {
		t.Fatalf("Failed to build manager: %v", err)
	}

	resp, err := manager.GenerateContent(context.Background(), &llmprovider.Request{
		Messages:   []llmprovider.Message{{Role: "user", Parts: []llmprovider.Part{{Text: "tasks"}}}},
		JSONOutput: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text() != "[]" {
		t.Errorf("unexpected text %q", resp.Text())
	}
	if resp.ProviderName != "gemini" || resp.ModelName != "gemini-1.5-flash" {
		t.Errorf("unexpected provider %s/%s", resp.ProviderName, resp.ModelName)
	}
	if resp.Usage.TotalTokens != 8 {
		t.Errorf("expected usage to be mapped, got %+v", resp.Usage)
	}
}

// TestIntegration_FallbackToOpenAICompatible verifies that a failing gemini provider
// falls back to a deepseek provider speaking the chat completions protocol
func TestIntegration_FallbackToOpenAICompatible(t *testing.T) {
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer failing.Close()

	chat := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req openaichat.ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" || req.ResponseFormat == nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"{\"tasks\":[]}"}}],
			"usage":{"prompt_tokens":5,"completion_tokens":2,"total_tokens":7}}`))
	}))
	defer chat.Close()

	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "gemini", Enabled: true, Priority: 1, APIKey: "g", BaseURL: failing.URL, Model: "gemini-1.5-flash", Timeout: "5s"},
			{Name: "deepseek", Enabled: true, Priority: 2, APIKey: "d", BaseURL: chat.URL, Timeout: "5s"},
		},
		FallbackEnabled: true,
		RetryAttempts:   1,
		RetryDelay:      "1ms",
	}

	manager, err := llmprovider.NewManagerFromConfig(cfg, log.NewNop())
	if err != nil {
		t.Fatalf("Failed to build manager: %v", err)
	}

	resp, err := manager.GenerateContent(context.Background(), &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{Parts: []llmprovider.Part{{Text: "extract"}}},
		Messages:          []llmprovider.Message{{Role: "user", Parts: []llmprovider.Part{{Text: "tasks"}}}},
		JSONOutput:        true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ProviderName != "deepseek" || resp.ModelName != openaichat.DeepSeekModel {
		t.Errorf("unexpected provider %s/%s", resp.ProviderName, resp.ModelName)
	}
	if resp.Text() != `{"tasks":[]}` || resp.Usage.TotalTokens != 7 {
		t.Errorf("unexpected response %q %+v", resp.Text(), resp.Usage)
	}
}

// TestIntegration_ConfigValidation verifies that invalid configurations
// are caught during initialization
func TestIntegration_ConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.LLMConfig
		wantErr bool
	}{
		{
			name: "valid config",
			cfg: &config.LLMConfig{
				Providers: []config.ProviderConfig{
					{Name: "gemini", Enabled: true, Priority: 1, APIKey: "test-key", Model: "gemini-1.5-flash"},
				},
			},
			wantErr: false,
		},
		{
			name:    "nil config",
			cfg:     nil,
			wantErr: true,
		},
		{
			name:    "no providers",
			cfg:     &config.LLMConfig{Providers: []config.ProviderConfig{}},
			wantErr: true,
		},
		{
			name: "all providers disabled",
			cfg: &config.LLMConfig{
				Providers: []config.ProviderConfig{
					{Name: "gemini", Enabled: false, Priority: 1, APIKey: "test-key", Model: "gemini-1.5-flash"},
				},
			},
			wantErr: true,
		},
		{
			name: "missing API key",
			cfg: &config.LLMConfig{
				Providers: []config.ProviderConfig{
					{Name: "gemini", Enabled: true, Priority: 1, APIKey: "", Model: "gemini-1.5-flash"},
				},
			},
			wantErr: true,
		},
		{
			name: "unknown provider only",
			cfg: &config.LLMConfig{
				Providers: []config.ProviderConfig{
					{Name: "mystery", Enabled: true, Priority: 1, APIKey: "k", Model: "m"},
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := llmprovider.InitializeProviders(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("InitializeProviders() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestIntegration_ProviderPriorityOrdering verifies that providers
// are ordered correctly by priority and broken entries are skipped
func TestIntegration_ProviderPriorityOrdering(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "gemini", Enabled: true, Priority: 10, APIKey: "k", Model: "gemini-1.5-pro"},
			{Name: "mystery", Enabled: true, Priority: 5, APIKey: "k", Model: "m"},
			{Name: "qwen", Enabled: true, Priority: 3, APIKey: "k"},
			{Name: "gemini", Enabled: true, Priority: 1, APIKey: "k", Model: "gemini-1.5-flash"},
		},
	}

	providers, err := llmprovider.InitializeProviders(cfg)
	if err != nil {
		t.Fatalf("Failed to initialize providers: %v", err)
	}

	if len(providers) != 3 {
		t.Fatalf("Expected the unknown provider to be skipped, got %d providers", len(providers))
	}
	if providers[0].Model() != "gemini-1.5-flash" {
		t.Errorf("Expected first provider (priority 1) to be gemini-1.5-flash, got %s", providers[0].Model())
	}
	if providers[1].Name() != "qwen" || providers[1].Model() != openaichat.QwenModel {
		t.Errorf("Expected second provider (priority 3) to be qwen/%s, got %s/%s", openaichat.QwenModel, providers[1].Name(), providers[1].Model())
	}
	if providers[2].Model() != "gemini-1.5-pro" {
		t.Errorf("Expected third provider (priority 10) to be gemini-1.5-pro, got %s", providers[2].Model())
	}
}
