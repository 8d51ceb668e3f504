package telegram

import (
	"context"

	"github.com/gin-gonic/gin"

	"daily-priority-agent/internal/task"
	pkgLog "daily-priority-agent/pkg/log"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// Sender is the subset of *telegram.Bot the handler replies through.
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendMessageWithMode(ctx context.Context, chatID int64, text string, parseMode string) error
}

// New creates a new Telegram delivery handler. A non-empty secret must match the
// secret token header of every update.
func New(l pkgLog.Logger, uc task.UseCase, bot Sender, secret string) Handler {
	return &handler{
		l:      l,
		uc:     uc,
		bot:    bot,
		secret: secret,
	}
}
