package llm

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"daily-priority-agent/internal/model"
	"daily-priority-agent/internal/planner"
	"daily-priority-agent/internal/task/repository"
	"daily-priority-agent/pkg/gemini"
	"daily-priority-agent/pkg/llmprovider"
)

const (
	temperature = 0.2
	maxTokens   = 2048
)

var fenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

func (r *implRepository) ExtractTasks(ctx context.Context, opt repository.ExtractTasksOptions) []model.Task {
	raw := strings.TrimSpace(opt.RawText)
	if raw == "" {
		return []model.Task{}
	}
	today := model.Date(opt.Today)

	if r.gen == nil {
		tasks := r.splitFallback(raw)
		r.l.Debugf(ctx, "llm.ExtractTasks: no LLM configured, split %d tasks", len(tasks))
		return tasks
	}

	key := cacheKey(raw, today)
	if cached, ok := r.cache.Get(key); ok {
		r.l.Debugf(ctx, "llm.ExtractTasks: cache hit, %d tasks", len(cached))
		return cloneTasks(cached)
	}

	resp, err := r.gen.GenerateContent(ctx, &llmprovider.Request{
		Messages: []llmprovider.Message{{
			Role:  "user",
			Parts: []llmprovider.Part{{Text: gemini.BuildTaskParsingPrompt(raw, today)}},
		}},
		Temperature: temperature,
		MaxTokens:   maxTokens,
		JSONOutput:  true,
	})
	if err != nil {
		r.l.Warnf(ctx, "llm.ExtractTasks: generate: %v", err)
		return []model.Task{}
	}

	tasks, err := r.decode(ctx, resp.Text(), today)
	if err != nil {
		r.l.Warnf(ctx, "llm.ExtractTasks: decode: %v", err)
		return []model.Task{}
	}

	r.cache.Add(key, tasks)
	r.l.Infof(ctx, "llm.ExtractTasks: extracted %d tasks via %s", len(tasks), resp.ProviderName)
	return cloneTasks(tasks)
}

func (r *implRepository) decode(ctx context.Context, text string, today time.Time) ([]model.Task, error) {
	body := sanitizeJSONResponse(text)
	if body == "" {
		return nil, fmt.Errorf("empty response")
	}

	var parsed []parsedTask
	if err := json.Unmarshal([]byte(body), &parsed); err != nil {
		return nil, fmt.Errorf("parse json array: %w", err)
	}

	tasks := make([]model.Task, 0, len(parsed))
	for i, p := range parsed {
		title := strings.TrimSpace(p.Title)
		if title == "" {
			r.l.Debugf(ctx, "llm.decode: item %d has no title, skipped", i)
			continue
		}

		deadline, err := r.dates.ParseDeadline(string(p.Deadline), today)
		if err != nil {
			r.l.Warnf(ctx, "llm.decode: task %q: deadline %q: %v", title, p.Deadline, err)
			deadline = nil
		}

		tasks = append(tasks, model.Task{
			Title:       title,
			Description: strings.TrimSpace(p.Description),
			Deadline:    deadline,
			EffortMin:   repository.ParseEffort(string(p.Effort), r.cfg),
			Impact:      r.parseImpact(string(p.Impact)),
			Blocked:     repository.ParseBool(string(p.Blocked)),
			Tags:        repository.SplitTags(strings.Join(p.Tags, ",")),
		})
	}

	return tasks, nil
}

// parseImpact also accepts the numeric scale the model sometimes returns.
func (r *implRepository) parseImpact(s string) int {
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil && n >= model.ImpactLow && n <= model.ImpactHigh {
		return n
	}
	return repository.ParseImpact(s, r.cfg)
}

// splitFallback treats each comma- or newline-separated phrase as a high-impact,
// medium-effort task with no deadline.
func (r *implRepository) splitFallback(raw string) []model.Task {
	tasks := []model.Task{}
	for _, part := range strings.FieldsFunc(raw, func(c rune) bool { return c == ',' || c == '\n' }) {
		title := strings.TrimSpace(part)
		if title == "" {
			continue
		}
		tasks = append(tasks, model.Task{
			Title:     title,
			EffortMin: r.cfg.DefaultEffort(),
			Impact:    repository.ParseImpact("high", r.cfg),
			Tags:      []string{},
		})
	}
	return tasks
}

// sanitizeJSONResponse strips markdown fences and surrounding prose.
func sanitizeJSONResponse(text string) string {
	if matches := fenceRe.FindStringSubmatch(text); len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	start := strings.Index(text, "[")
	if start == -1 {
		return strings.TrimSpace(text)
	}
	end := strings.LastIndex(text, "]")
	if end == -1 || end < start {
		return strings.TrimSpace(text)
	}
	return strings.TrimSpace(text[start : end+1])
}

func cacheKey(raw string, today time.Time) string {
	sum := sha256.Sum256([]byte(today.Format(planner.DateFormat) + "\x00" + raw))
	return hex.EncodeToString(sum[:])
}

func cloneTasks(in []model.Task) []model.Task {
	out := make([]model.Task, len(in))
	for i, t := range in {
		out[i] = t
		if t.Deadline != nil {
			d := *t.Deadline
			out[i].Deadline = &d
		}
		out[i].Tags = append([]string{}, t.Tags...)
	}
	return out
}
