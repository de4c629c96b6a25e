// Package transfer serves the transfer portal dataset and matches portal
// entries to roster players.
package transfer

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/pfsn365/transfer-portal-tracker-sub001/internal/cache"
	"github.com/pfsn365/transfer-portal-tracker-sub001/internal/slug"
	"github.com/pfsn365/transfer-portal-tracker-sub001/internal/teams"
	"github.com/pfsn365/transfer-portal-tracker-sub001/pkg/models"
)

// The dataset is a single cache slot
const datasetKey = "portal"

// Fetcher loads every portal row from upstream
type Fetcher interface {
	FetchPlayers(ctx context.Context) ([]models.TransferPlayer, error)
}

// Dataset is the cached portal snapshot. A zero FetchedAt with a non-nil
// UpstreamError means nothing was ever fetched; a set FetchedAt with no
// players means upstream really is empty.
type Dataset struct {
	Players       []models.TransferPlayer
	FetchedAt     time.Time
	UpstreamError error
}

// Options configures a Service
type Options struct {
	TTL      time.Duration
	Observer cache.Observer
	Logger   *slog.Logger
	Clock    func() time.Time
}

// Service caches the portal dataset
type Service struct {
	fetcher Fetcher
	teams   *teams.Registry
	cache   *cache.Cache[Dataset]
	logger  *slog.Logger
	now     func() time.Time
}

// NewService creates a transfer portal service
func NewService(fetcher Fetcher, registry *teams.Registry, opts Options) *Service {
	if opts.TTL <= 0 {
		opts.TTL = 10 * time.Minute
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	return &Service{
		fetcher: fetcher,
		teams:   registry,
		logger:  opts.Logger,
		now:     opts.Clock,
		cache: cache.New(cache.Options[Dataset]{
			Name:     "transfer_portal",
			TTL:      opts.TTL,
			Default:  func() Dataset { return Dataset{Players: []models.TransferPlayer{}} },
			Clock:    opts.Clock,
			Observer: opts.Observer,
		}),
	}
}

// Dataset returns the cached snapshot, populating it on demand. The error is
// non-nil only when no snapshot has ever been fetched; it is also recorded in
// the returned Dataset.
func (s *Service) Dataset(ctx context.Context) (Dataset, error) {
	ds, err := s.cache.Get(ctx, datasetKey, s.populate)
	if err != nil {
		s.logger.Warn("transfer portal unavailable", "error", err)
		ds.UpstreamError = err
		return ds, err
	}
	return ds, nil
}

// Players returns the portal entries, restricted to team when it is set.
// team may be a slug, an abbreviation or a school name and is compared
// against both the origin and destination school.
func (s *Service) Players(ctx context.Context, team string) (Dataset, error) {
	ds, err := s.Dataset(ctx)
	team = strings.TrimSpace(team)
	if team == "" {
		return ds, err
	}

	resolved, known := s.teams.Resolve(team)
	filtered := make([]models.TransferPlayer, 0)
	for _, p := range ds.Players {
		if s.schoolMatches(p.FromSchool, team, resolved, known) ||
			s.schoolMatches(p.ToSchool, team, resolved, known) {
			filtered = append(filtered, p)
		}
	}
	ds.Players = filtered
	return ds, err
}

// Match finds the portal entry for a roster player. Names are compared by
// slug. When several entries share the slug, the one whose origin or
// destination is team wins; otherwise the first entry is returned.
func (s *Service) Match(ctx context.Context, name, team string) (*models.TransferPlayer, bool) {
	want := slug.Make(name)
	if want == "" {
		return nil, false
	}

	ds, _ := s.Dataset(ctx)

	var candidates []models.TransferPlayer
	for _, p := range ds.Players {
		if p.Slug == want {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		return nil, false
	}

	if team != "" {
		resolved, known := s.teams.Resolve(team)
		for i := range candidates {
			c := candidates[i]
			if s.schoolMatches(c.FromSchool, team, resolved, known) ||
				s.schoolMatches(c.ToSchool, team, resolved, known) {
				return &c, true
			}
		}
	}
	first := candidates[0]
	return &first, true
}

func (s *Service) populate(ctx context.Context, _ string) (Dataset, error) {
	players, err := s.fetcher.FetchPlayers(ctx)
	if err != nil {
		return Dataset{}, err
	}
	s.logger.Info("transfer portal refreshed", "players", len(players))
	return Dataset{Players: players, FetchedAt: s.now().UTC()}, nil
}

func (s *Service) schoolMatches(school, team string, resolved models.Team, known bool) bool {
	if school == "" {
		return false
	}
	if strings.EqualFold(school, team) || slug.Make(school) == slug.Make(team) {
		return true
	}
	if !known {
		return false
	}
	t, ok := s.teams.Resolve(school)
	return ok && t.ID == resolved.ID
}
