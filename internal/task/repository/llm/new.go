package llm

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"daily-priority-agent/internal/model"
	"daily-priority-agent/internal/planner"
	"daily-priority-agent/internal/task/repository"
	"daily-priority-agent/pkg/datemath"
	"daily-priority-agent/pkg/llmprovider"
	pkgLog "daily-priority-agent/pkg/log"
)

const (
	defaultCacheSize = 128
	defaultCacheTTL  = 10 * time.Minute
	defaultTimezone  = "UTC"
)

// Generator is the part of llmprovider.Manager used for extraction.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Options tunes the extraction cache and relative-date resolution.
type Options struct {
	CacheTTL  time.Duration
	CacheSize int
	Timezone  string
}

type implRepository struct {
	gen   Generator
	cfg   planner.Config
	dates *datemath.Parser
	cache *expirable.LRU[string, []model.Task]
	l     pkgLog.Logger
}

// New creates the free-text task extractor. A nil gen selects the comma splitter.
func New(gen Generator, cfg planner.Config, opt Options, l pkgLog.Logger) (repository.ExtractorRepository, error) {
	if opt.CacheSize <= 0 {
		opt.CacheSize = defaultCacheSize
	}
	if opt.CacheTTL <= 0 {
		opt.CacheTTL = defaultCacheTTL
	}
	if opt.Timezone == "" {
		opt.Timezone = defaultTimezone
	}

	dates, err := datemath.NewParser(opt.Timezone)
	if err != nil {
		return nil, err
	}

	return &implRepository{
		gen:   gen,
		cfg:   cfg,
		dates: dates,
		cache: expirable.NewLRU[string, []model.Task](opt.CacheSize, nil, opt.CacheTTL),
		l:     l,
	}, nil
}
