package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// MaxMessageLength is the longest text sendMessage accepts.
const MaxMessageLength = 4096

const (
	defaultTimeout      = 10 * time.Second
	defaultMaxRetryWait = 5 * time.Second
)

// Bot is the Telegram Bot API client.
type Bot struct {
	apiURL       string
	httpClient   *http.Client
	maxRetryWait time.Duration
}

// NewBot creates a new Telegram Bot client with the given token.
func NewBot(token string) *Bot {
	return &Bot{
		apiURL:       fmt.Sprintf("https://api.telegram.org/bot%s", token),
		httpClient:   &http.Client{Timeout: defaultTimeout},
		maxRetryWait: defaultMaxRetryWait,
	}
}

// SetAPIURL overrides the default Telegram API URL for testing purposes.
func (b *Bot) SetAPIURL(url string) {
	b.apiURL = url
}

// SetWebhook registers the webhook URL with Telegram. A non-empty secretToken is
// echoed back by Telegram in the X-Telegram-Bot-Api-Secret-Token header.
func (b *Bot) SetWebhook(ctx context.Context, webhookURL, secretToken string) error {
	payload := SetWebhookRequest{
		URL:            webhookURL,
		SecretToken:    secretToken,
		AllowedUpdates: []string{"message"},
	}
	if err := b.call(ctx, "setWebhook", payload); err != nil {
		return fmt.Errorf("telegram setWebhook: %w", err)
	}
	return nil
}

// SendMessage sends a plain text message to a Telegram chat.
func (b *Bot) SendMessage(ctx context.Context, chatID int64, text string) error {
	return b.SendMessageWithMode(ctx, chatID, text, "")
}

// SendMessageWithMode sends a message with optional parse mode (e.g. "Markdown").
// A flood-control answer with a short retry_after is retried once.
func (b *Bot) SendMessageWithMode(ctx context.Context, chatID int64, text string, parseMode string) error {
	payload := SendMessageRequest{
		ChatID:             chatID,
		Text:               text,
		ParseMode:          parseMode,
		LinkPreviewOptions: &LinkPreviewOptions{IsDisabled: true},
	}

	err := b.call(ctx, "sendMessage", payload)
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.RetryAfter > 0 && apiErr.RetryAfter <= b.maxRetryWait {
		select {
		case <-time.After(apiErr.RetryAfter):
			err = b.call(ctx, "sendMessage", payload)
		case <-ctx.Done():
			err = ctx.Err()
		}
	}
	if err != nil {
		return fmt.Errorf("telegram sendMessage: %w", err)
	}
	return nil
}

func (b *Bot) call(ctx context.Context, method string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.apiURL+"/"+method, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	var apiResp APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return fmt.Errorf("API error %d: decode response: %w", resp.StatusCode, err)
	}
	if apiResp.OK {
		return nil
	}

	apiErr := &APIError{Code: apiResp.ErrorCode, Description: apiResp.Description}
	if apiErr.Code == 0 {
		apiErr.Code = resp.StatusCode
	}
	if apiResp.Parameters != nil {
		apiErr.RetryAfter = time.Duration(apiResp.Parameters.RetryAfter) * time.Second
	}
	return apiErr
}
