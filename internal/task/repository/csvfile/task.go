package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"daily-priority-agent/internal/model"
	"daily-priority-agent/internal/task/repository"
)

// ReadTasks reads every row with a non-empty title. Malformed fields fall back to
// defaults; only I/O and CSV syntax errors are returned.
func (r *implRepository) ReadTasks(ctx context.Context, opt repository.ReadTasksOptions) ([]model.Task, error) {
	src := opt.Reader
	if src == nil {
		f, err := os.Open(opt.Path)
		if err != nil {
			return nil, fmt.Errorf("csvfile: open %s: %w", opt.Path, err)
		}
		defer f.Close()
		src = f
	}

	cr := csv.NewReader(src)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return []model.Task{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("csvfile: read header: %w", err)
	}
	cols := indexHeader(header)

	tasks := []model.Task{}
	skipped := 0
	for line := 2; ; line++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csvfile: read line %d: %w", line, err)
		}

		t, ok := r.rowToTask(ctx, line, func(col string) string {
			i, found := cols[col]
			if !found || i >= len(record) {
				return ""
			}
			return record[i]
		})
		if !ok {
			skipped++
			continue
		}
		tasks = append(tasks, t)
	}

	r.l.Infof(ctx, "csvfile.ReadTasks: read %d tasks, skipped %d rows without title", len(tasks), skipped)
	return tasks, nil
}

func (r *implRepository) rowToTask(ctx context.Context, line int, field func(string) string) (model.Task, bool) {
	title := strings.TrimSpace(field(ColTitle))
	if title == "" {
		return model.Task{}, false
	}

	deadline, err := repository.ParseDate(field(ColDeadline))
	if err != nil {
		r.l.Warnf(ctx, "csvfile.ReadTasks: line %d %q: %v, treating as no deadline", line, title, err)
	}

	return model.Task{
		Title:       title,
		Description: strings.TrimSpace(field(ColDescription)),
		Deadline:    deadline,
		EffortMin:   repository.ParseEffort(field(ColEffort), r.cfg),
		Impact:      repository.ParseImpact(field(ColImpact), r.cfg),
		Blocked:     repository.ParseBool(field(ColBlocked)),
		Tags:        repository.SplitTags(field(ColTags)),
	}, true
}

func indexHeader(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, dup := cols[h]; !dup {
			cols[h] = i
		}
	}
	return cols
}
