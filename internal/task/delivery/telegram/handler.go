package telegram

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"daily-priority-agent/internal/report"
	"daily-priority-agent/internal/task"
	pkgLog "daily-priority-agent/pkg/log"
	pkgResponse "daily-priority-agent/pkg/response"
	pkgTelegram "daily-priority-agent/pkg/telegram"
)

const (
	cmdStart    = "/start"
	cmdHelp     = "/help"
	cmdPlan     = "/plan"
	cmdSchedule = "/schedule"
)

const helpText = "*Daily Priority Agent*\n\n" +
	"Send me today's tasks, separated by commas or new lines, and I will reply with Top, Next, Unblock and Defer buckets.\n\n" +
	"`/plan <tasks>` builds the plan\n" +
	"`/schedule <tasks>` also time-blocks the Top tasks on the calendar\n\n" +
	"_Example: pay rent today, finish slides by friday, call mom_"

type handler struct {
	l      pkgLog.Logger
	uc     task.UseCase
	bot    Sender
	secret string
}

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It acknowledges immediately and builds the plan in a background goroutine:
// Telegram retries updates that are not answered within a few seconds.
// @Summary     Telegram webhook
// @Tags        Telegram
// @Accept      json
// @Produce     json
// @Success     200 {object} response.Resp "Update accepted or ignored"
// @Failure     400 {object} response.Resp "Malformed update"
// @Failure     401 "Bad secret token"
// @Router      /webhook/telegram [POST]
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if h.secret != "" && c.GetHeader(pkgTelegram.SecretTokenHeader) != h.secret {
		h.l.Warnf(ctx, "telegram handler: rejected update with bad secret token from %s", c.ClientIP())
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.BadRequest(c, err)
		return
	}

	// Ignore non-message updates (edits, channel posts, etc.)
	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	reqID := pkgLog.RequestID(ctx)

	go func() {
		// Detach from the request context, which is cancelled after the response
		bgCtx := pkgLog.WithRequestID(context.Background(), reqID)
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: processMessage failed: %v", err)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage answers one chat message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	cmd, text := splitCommand(msg.Text)

	switch cmd {
	case "":
		if text == "" {
			return nil
		}
	case cmdStart, cmdHelp:
		return h.bot.SendMessageWithMode(ctx, msg.Chat.ID, helpText, "Markdown")
	case cmdPlan, cmdSchedule:
		if text == "" {
			return h.bot.SendMessageWithMode(ctx, msg.Chat.ID, helpText, "Markdown")
		}
	default:
		return h.bot.SendMessage(ctx, msg.Chat.ID, fmt.Sprintf("Unknown command %s. Send /help for usage.", cmd))
	}

	out, err := h.uc.PlanFromText(ctx, task.PlanFromTextInput{RawText: text})
	if err != nil {
		h.l.Warnf(ctx, "telegram handler: PlanFromText failed: %v", err)
		return h.bot.SendMessage(ctx, msg.Chat.ID, errorMessage(err))
	}

	body := report.RenderText(out.Plan)

	if cmd == cmdSchedule {
		sched, err := h.uc.ScheduleTop(ctx, task.ScheduleInput{Plan: out.Plan})
		if err != nil {
			h.l.Warnf(ctx, "telegram handler: ScheduleTop failed: %v", err)
			body += "\n\nCalendar: not scheduled."
		} else {
			body += "\n\n" + scheduleSummary(sched)
		}
	}

	// Task titles stay inside the code block: Markdown there is literal, so "fix_login_bug"
	// cannot break entity parsing.
	return h.bot.SendMessageWithMode(ctx, msg.Chat.ID, truncate(codeBlock(body)), "Markdown")
}

// splitCommand separates a leading bot command (with any @botname suffix) from its argument.
func splitCommand(text string) (cmd, rest string) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return "", text
	}
	cmd, rest, _ = strings.Cut(text, " ")
	if i := strings.Index(cmd, "@"); i >= 0 {
		cmd = cmd[:i]
	}
	return strings.ToLower(cmd), strings.TrimSpace(rest)
}

func codeBlock(s string) string {
	return "```\n" + strings.ReplaceAll(s, "```", "'''") + "\n```"
}

func scheduleSummary(sched task.ScheduleOutput) string {
	if len(sched.Blocks) == 0 && len(sched.Skipped) == 0 {
		return "Calendar: nothing scheduled."
	}
	var sb strings.Builder
	sb.WriteString("Calendar\n")
	for _, b := range sched.Blocks {
		fmt.Fprintf(&sb, "%s-%s %s\n", b.Start.Format("15:04"), b.End.Format("15:04"), b.Title)
	}
	for _, title := range sched.Skipped {
		fmt.Fprintf(&sb, "skipped: %s\n", title)
	}
	return sb.String()
}

func truncate(s string) string {
	if len(s) <= pkgTelegram.MaxMessageLength {
		return s
	}
	const tail = "\n...\n```"
	cut := s[:pkgTelegram.MaxMessageLength-len(tail)]
	// Keep the cut on a line boundary so Markdown stays balanced.
	if i := strings.LastIndex(cut, "\n"); i > 0 {
		cut = cut[:i]
	}
	return cut + tail
}
