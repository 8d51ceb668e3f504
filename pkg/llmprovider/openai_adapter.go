package llmprovider

import (
	"context"
	"strings"

	"daily-priority-agent/pkg/openaichat"
)

// Provider names for the OpenAI-compatible backends.
const (
	ProviderDeepSeek = "deepseek"
	ProviderQwen     = "qwen"
)

// ChatClient is the subset of *openaichat.Client used by OpenAIChatAdapter.
type ChatClient interface {
	Chat(ctx context.Context, req openaichat.ChatRequest) (*openaichat.ChatResponse, error)
	Model() string
}

// OpenAIChatAdapter adapts an OpenAI-compatible chat client to the Provider interface.
type OpenAIChatAdapter struct {
	name   string
	client ChatClient
}

// NewOpenAIChatAdapter creates an adapter reporting itself as name.
func NewOpenAIChatAdapter(name string, client ChatClient) *OpenAIChatAdapter {
	return &OpenAIChatAdapter{name: name, client: client}
}

// GenerateContent implements Provider interface
func (a *OpenAIChatAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	chatReq := openaichat.ChatRequest{
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.SystemInstruction != nil {
		chatReq.Messages = append(chatReq.Messages, openaichat.Message{Role: "system", Content: joinParts(req.SystemInstruction.Parts)})
	}
	for _, m := range req.Messages {
		chatReq.Messages = append(chatReq.Messages, openaichat.Message{Role: m.Role, Content: joinParts(m.Parts)})
	}
	if req.JSONOutput {
		chatReq.ResponseFormat = openaichat.JSONObject()
	}

	resp, err := a.client.Chat(ctx, chatReq)
	if err != nil {
		return nil, err
	}

	out := &Response{
		ProviderName: a.name,
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}
	if len(resp.Choices) > 0 {
		msg := resp.Choices[0].Message
		out.Content = Message{Role: msg.Role, Parts: []Part{{Text: msg.Content}}}
	}
	return out, nil
}

// Name returns provider name
func (a *OpenAIChatAdapter) Name() string {
	return a.name
}

// Model returns model name
func (a *OpenAIChatAdapter) Model() string {
	return a.client.Model()
}

func joinParts(parts []Part) string {
	texts := make([]string, 0, len(parts))
	for _, p := range parts {
		if p.Text != "" {
			texts = append(texts, p.Text)
		}
	}
	return strings.Join(texts, "\n")
}
