package llmprovider

import (
	"context"

	"daily-priority-agent/pkg/gemini"
)

// ProviderGemini is the provider name used in configuration.
const ProviderGemini = "gemini"

// GeminiClient is the subset of *gemini.Client used by GeminiAdapter.
type GeminiClient interface {
	GenerateContent(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error)
	Model() string
}

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client GeminiClient
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client GeminiClient) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := gemini.GenerateRequest{
		SystemInstruction: convertToGeminiContent(req.SystemInstruction),
		Contents:          convertToGeminiContents(req.Messages),
	}
	if req.Temperature > 0 || req.MaxTokens > 0 || req.JSONOutput {
		geminiReq.GenerationConfig = &gemini.GenerationConfig{
			Temperature:     req.Temperature,
			MaxOutputTokens: req.MaxTokens,
		}
		if req.JSONOutput {
			geminiReq.GenerationConfig.ResponseMIMEType = gemini.JSONMIMEType
		}
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, err
	}

	out := &Response{
		ProviderName: ProviderGemini,
		ModelName:    a.client.Model(),
		Usage:        &Usage{},
	}
	if len(resp.Candidates) > 0 {
		out.Content = convertFromGeminiContent(resp.Candidates[0].Content)
	}
	if resp.UsageMetadata != nil {
		out.Usage = &Usage{
			InputTokens:  resp.UsageMetadata.PromptTokenCount,
			OutputTokens: resp.UsageMetadata.CandidatesTokenCount,
			TotalTokens:  resp.UsageMetadata.TotalTokenCount,
		}
	}
	return out, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return ProviderGemini
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

func convertToGeminiContent(msg *Message) *gemini.Content {
	if msg == nil {
		return nil
	}
	parts := make([]gemini.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = gemini.Part{Text: p.Text}
	}
	role := msg.Role
	if role == "assistant" {
		role = "model"
	}
	return &gemini.Content{Role: role, Parts: parts}
}

func convertToGeminiContents(msgs []Message) []gemini.Content {
	contents := make([]gemini.Content, len(msgs))
	for i := range msgs {
		contents[i] = *convertToGeminiContent(&msgs[i])
	}
	return contents
}

func convertFromGeminiContent(content gemini.Content) Message {
	parts := make([]Part, len(content.Parts))
	for i, p := range content.Parts {
		parts[i] = Part{Text: p.Text}
	}
	return Message{Role: content.Role, Parts: parts}
}
