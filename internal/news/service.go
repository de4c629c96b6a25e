// Package news caches the college football news feed.
package news

import (
	"context"
	"log/slog"
	"time"

	"github.com/pfsn365/transfer-portal-tracker-sub001/internal/cache"
	"github.com/pfsn365/transfer-portal-tracker-sub001/pkg/models"
)

const (
	DefaultLimit = 20
	MaxLimit     = 50

	feedKey = "feed"
)

// Fetcher loads the parsed feed
type Fetcher interface {
	FetchArticles(ctx context.Context) ([]models.NewsArticle, error)
}

// Options configures a Service
type Options struct {
	TTL      time.Duration
	Observer cache.Observer
	Logger   *slog.Logger
	Clock    func() time.Time
}

// Service serves the latest articles
type Service struct {
	fetcher Fetcher
	logger  *slog.Logger
	cache   *cache.Cache[[]models.NewsArticle]
}

// NewService creates a news service
func NewService(fetcher Fetcher, opts Options) *Service {
	if opts.TTL <= 0 {
		opts.TTL = 10 * time.Minute
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	return &Service{
		fetcher: fetcher,
		logger:  opts.Logger,
		cache: cache.New(cache.Options[[]models.NewsArticle]{
			Name:     "news",
			TTL:      opts.TTL,
			Default:  func() []models.NewsArticle { return []models.NewsArticle{} },
			Clock:    opts.Clock,
			Observer: opts.Observer,
		}),
	}
}

// Latest returns up to limit articles in feed order. limit is clamped to
// 1..MaxLimit, with DefaultLimit for non-positive values.
func (s *Service) Latest(ctx context.Context, limit int) ([]models.NewsArticle, error) {
	switch {
	case limit <= 0:
		limit = DefaultLimit
	case limit > MaxLimit:
		limit = MaxLimit
	}

	articles, err := s.cache.Get(ctx, feedKey, func(ctx context.Context, _ string) ([]models.NewsArticle, error) {
		return s.fetcher.FetchArticles(ctx)
	})
	if err != nil {
		s.logger.Warn("news feed unavailable", "error", err)
	}

	if len(articles) > limit {
		articles = articles[:limit]
	}
	return articles, err
}
