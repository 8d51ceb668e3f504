package telegram_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"daily-priority-agent/pkg/telegram"
)

func TestBot(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		if strings.HasSuffix(path, "/setWebhook") {
			var req telegram.SetWebhookRequest
			json.NewDecoder(r.Body).Decode(&req)
			if req.URL == "cause_error" {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"ok": false, "description": "invalid url"}`))
				return
			}
			if req.SecretToken != "s3cret" {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"ok": false, "description": "missing secret"}`))
				return
			}
			w.Write([]byte(`{"ok": true, "description": "webhook set"}`))
			return
		}

		if strings.HasSuffix(path, "/sendMessage") {
			var req telegram.SendMessageRequest
			json.NewDecoder(r.Body).Decode(&req)
			if req.Text == "cause_error" {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"ok": false, "description": "invalid text"}`))
				return
			}
			if req.Text == "cause_500" {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if req.ParseMode != "" && req.ParseMode != "Markdown" {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"ok": false, "description": "bad parse mode"}`))
				return
			}
			w.Write([]byte(`{"ok": true}`))
			return
		}

		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	ctx := context.Background()
	bot := telegram.NewBot("test-token")
	bot.SetAPIURL(ts.URL)

	t.Run("SetWebhook Success", func(t *testing.T) {
		if err := bot.SetWebhook(ctx, "https://example.com/webhook/telegram", "s3cret"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("SetWebhook API Failed", func(t *testing.T) {
		err := bot.SetWebhook(ctx, "cause_error", "s3cret")
		if err == nil || !strings.Contains(err.Error(), "invalid url") {
			t.Fatalf("expected api failure error, got: %v", err)
		}
	})

	t.Run("SendMessage Success", func(t *testing.T) {
		if err := bot.SendMessage(ctx, 12345, "Hello"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("SendMessageWithMode Success", func(t *testing.T) {
		if err := bot.SendMessageWithMode(ctx, 12345, "Hello", "Markdown"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("SendMessage API Failed", func(t *testing.T) {
		err := bot.SendMessage(ctx, 12345, "cause_error")
		if err == nil || !strings.Contains(err.Error(), "invalid text") {
			t.Fatalf("expected api failure error, got: %v", err)
		}
	})

	t.Run("SendMessage HTTP Failed", func(t *testing.T) {
		if err := bot.SendMessage(ctx, 12345, "cause_500"); err == nil {
			t.Fatalf("expected http decoding error")
		}
	})

	t.Run("Cancelled Context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		if err := bot.SendMessage(cctx, 12345, "Hello"); err == nil {
			t.Errorf("expected error on cancelled context")
		}
	})
}

func TestBot_FloodControl(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req telegram.SendMessageRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.LinkPreviewOptions == nil || !req.LinkPreviewOptions.IsDisabled {
			t.Errorf("link previews should be disabled: %+v", req.LinkPreviewOptions)
		}

		n := calls.Add(1)
		switch {
		case req.Text == "slow down" && n == 1:
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"ok": false, "error_code": 429, "description": "Too Many Requests", "parameters": {"retry_after": 1}}`))
		case req.Text == "banned":
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"ok": false, "error_code": 429, "description": "Too Many Requests", "parameters": {"retry_after": 600}}`))
		default:
			w.Write([]byte(`{"ok": true}`))
		}
	}))
	defer ts.Close()

	bot := telegram.NewBot("test-token")
	bot.SetAPIURL(ts.URL)

	t.Run("short wait is retried once", func(t *testing.T) {
		if err := bot.SendMessage(context.Background(), 1, "slow down"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := calls.Load(); got != 2 {
			t.Errorf("calls = %d, want 2", got)
		}
	})

	t.Run("long wait surfaces APIError", func(t *testing.T) {
		calls.Store(0)
		err := bot.SendMessage(context.Background(), 1, "banned")

		var apiErr *telegram.APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected *APIError, got %v", err)
		}
		if apiErr.Code != http.StatusTooManyRequests || apiErr.RetryAfter != 10*time.Minute {
			t.Errorf("apiErr = %+v", apiErr)
		}
		if got := calls.Load(); got != 1 {
			t.Errorf("calls = %d, want 1", got)
		}
	})
}
