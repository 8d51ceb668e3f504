package openaichat

import (
	"fmt"
	"net/http"
)

// Config holds the client configuration. BaseURL and Model are required.
type Config struct {
	APIKey     string
	BaseURL    string
	Model      string
	HTTPClient *http.Client
}

func (c *Config) validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("openaichat: APIKey is required")
	}
	if c.BaseURL == "" {
		return fmt.Errorf("openaichat: BaseURL is required")
	}
	if c.Model == "" {
		return fmt.Errorf("openaichat: Model is required")
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// Message is one chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is a chat completion request. Model defaults to the client model.
type ChatRequest struct {
	Model          string          `json:"model"`
	Messages       []Message       `json:"messages"`
	Temperature    float64         `json:"temperature,omitempty"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`
}

// ResponseFormat asks the model for a JSON object reply.
type ResponseFormat struct {
	Type string `json:"type"`
}

// JSONObject is the response format for JSON-only replies.
func JSONObject() *ResponseFormat {
	return &ResponseFormat{Type: responseFormatJSON}
}

// ChatResponse is a chat completion response.
type ChatResponse struct {
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

// Choice is one completion candidate.
type Choice struct {
	Index        int     `json:"index"`
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason"`
}

// Usage reports token counts.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}
