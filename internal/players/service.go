// Package players builds the cross-team player index out of ESPN rosters.
package players

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/pfsn365/transfer-portal-tracker-sub001/internal/cache"
	"github.com/pfsn365/transfer-portal-tracker-sub001/internal/providers/espn"
	"github.com/pfsn365/transfer-portal-tracker-sub001/internal/slug"
	"github.com/pfsn365/transfer-portal-tracker-sub001/internal/teams"
	"github.com/pfsn365/transfer-portal-tracker-sub001/pkg/models"
)

// ErrPlayerNotFound is returned for slugs absent from the index
var ErrPlayerNotFound = errors.New("player not found")

// Both player caches are single slot
const allPlayersKey = "all"

// Roster requests in flight at once during a full refresh
const rosterConcurrency = 8

// A complete roster sweep is shared by the index and list caches for this long
const snapshotReuse = time.Minute

// RosterFetcher loads one team roster
type RosterFetcher interface {
	FetchTeamRoster(ctx context.Context, teamID string) (*espn.RosterResponse, error)
}

// TransferMatcher finds a player's transfer portal entry
type TransferMatcher interface {
	Match(ctx context.Context, name, team string) (*models.TransferPlayer, bool)
}

// Options configures a Service
type Options struct {
	IndexTTL      time.Duration
	ListTTL       time.Duration
	TeamRosterTTL time.Duration
	TeamRosterLRU int
	Observer      cache.Observer
	Logger        *slog.Logger
	Clock         func() time.Time
}

// Service serves player lists, profiles and team rosters
type Service struct {
	teams     *teams.Registry
	rosters   RosterFetcher
	transfers TransferMatcher
	logger    *slog.Logger

	index *cache.Cache[map[string]models.CachedPlayer]
	list  *cache.Cache[[]models.CachedPlayer]

	teamRosters *expirable.LRU[string, []models.CachedPlayer]
	teamFlight  singleflight.Group

	now         func() time.Time
	sweepFlight singleflight.Group
	snapMu      sync.Mutex
	snap        rosterSnapshot
	snapAt      time.Time
}

// rosterSnapshot is one sweep over every team roster. players is shared
// between callers and must not be mutated.
type rosterSnapshot struct {
	players []models.CachedPlayer
	teams   int
	failed  int
	lastErr error
}

// NewService creates a player service. transfers may be nil.
func NewService(registry *teams.Registry, rosters RosterFetcher, transfers TransferMatcher, opts Options) *Service {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.IndexTTL <= 0 {
		opts.IndexTTL = 5 * time.Minute
	}
	if opts.ListTTL <= 0 {
		opts.ListTTL = 10 * time.Minute
	}
	if opts.TeamRosterTTL <= 0 {
		opts.TeamRosterTTL = time.Hour
	}
	if opts.TeamRosterLRU <= 0 {
		opts.TeamRosterLRU = 128
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	return &Service{
		teams:     registry,
		rosters:   rosters,
		transfers: transfers,
		logger:    opts.Logger,
		now:       opts.Clock,
		index: cache.New(cache.Options[map[string]models.CachedPlayer]{
			Name:     "player_index",
			TTL:      opts.IndexTTL,
			Default:  func() map[string]models.CachedPlayer { return map[string]models.CachedPlayer{} },
			Clock:    opts.Clock,
			Observer: opts.Observer,
		}),
		list: cache.New(cache.Options[[]models.CachedPlayer]{
			Name:     "player_list",
			TTL:      opts.ListTTL,
			Default:  func() []models.CachedPlayer { return []models.CachedPlayer{} },
			Clock:    opts.Clock,
			Observer: opts.Observer,
		}),
		teamRosters: expirable.NewLRU[string, []models.CachedPlayer](opts.TeamRosterLRU, nil, opts.TeamRosterTTL),
	}
}

// Profile returns the player with the given slug. An unavailable index is
// reported as ErrPlayerNotFound so a refresh can surface the player later.
func (s *Service) Profile(ctx context.Context, playerSlug string) (*models.PlayerProfile, error) {
	index, err := s.index.Get(ctx, allPlayersKey, s.populateIndex)
	if err != nil {
		s.logger.Warn("player index unavailable", "error", err)
	}

	p, ok := index[slug.Make(playerSlug)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPlayerNotFound, playerSlug)
	}

	profile := &models.PlayerProfile{CachedPlayer: p}
	if t, err := s.teams.ByID(p.TeamID); err == nil {
		profile.TeamLogo = t.Logo
	}
	if s.transfers != nil {
		if tp, ok := s.transfers.Match(ctx, p.Name, p.TeamName); ok {
			profile.Transfer = tp
		}
	}
	return profile, nil
}

// TeamRoster returns one team's players, from the roster LRU when present.
// Concurrent misses for the same team share a single upstream request.
func (s *Service) TeamRoster(ctx context.Context, teamSlug string) (models.Team, []models.CachedPlayer, error) {
	team, err := s.teams.BySlug(teamSlug)
	if err != nil {
		return models.Team{}, nil, err
	}

	if players, ok := s.teamRosters.Get(team.Slug); ok {
		return team, players, nil
	}

	ch := s.teamFlight.DoChan(team.Slug, func() (any, error) {
		if players, ok := s.teamRosters.Get(team.Slug); ok {
			return players, nil
		}
		players, err := s.fetchTeam(context.WithoutCancel(ctx), team)
		if err != nil {
			return nil, err
		}
		s.teamRosters.Add(team.Slug, players)
		return players, nil
	})

	select {
	case <-ctx.Done():
		return team, []models.CachedPlayer{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return team, []models.CachedPlayer{}, res.Err
		}
		return team, res.Val.([]models.CachedPlayer), nil
	}
}

func (s *Service) fetchTeam(ctx context.Context, team models.Team) ([]models.CachedPlayer, error) {
	resp, err := s.rosters.FetchTeamRoster(ctx, team.ID)
	if err != nil {
		return nil, err
	}

	var out []models.CachedPlayer
	for _, group := range resp.Athletes {
		for _, a := range group.Items {
			if p, ok := toCachedPlayer(a, group.Position, team); ok {
				out = append(out, p)
			}
		}
	}
	return out, nil
}

// sweep returns a roster sweep, reusing a recent complete one. Concurrent
// callers share a single sweep.
func (s *Service) sweep(ctx context.Context) (rosterSnapshot, error) {
	s.snapMu.Lock()
	if !s.snapAt.IsZero() && s.snap.failed == 0 && s.now().Sub(s.snapAt) < snapshotReuse {
		snap := s.snap
		s.snapMu.Unlock()
		return snap, nil
	}
	s.snapMu.Unlock()

	v, err, _ := s.sweepFlight.Do(allPlayersKey, func() (any, error) {
		snap, err := s.fetchAll(ctx)
		if err != nil {
			return rosterSnapshot{}, err
		}
		s.snapMu.Lock()
		s.snap, s.snapAt = snap, s.now()
		s.snapMu.Unlock()
		return snap, nil
	})
	if err != nil {
		return rosterSnapshot{}, err
	}
	return v.(rosterSnapshot), nil
}

// fetchAll pulls every roster with bounded parallelism. Teams whose roster
// fails are skipped and counted; the sweep fails only if every team failed.
func (s *Service) fetchAll(ctx context.Context) (rosterSnapshot, error) {
	all := s.teams.All()
	results := make([][]models.CachedPlayer, len(all))
	errs := make([]error, len(all))

	g := new(errgroup.Group)
	g.SetLimit(rosterConcurrency)
	for i, team := range all {
		g.Go(func() error {
			results[i], errs[i] = s.fetchTeam(ctx, team)
			return nil
		})
	}
	_ = g.Wait()

	snap := rosterSnapshot{teams: len(all)}
	for i, team := range all {
		if errs[i] != nil {
			snap.failed++
			snap.lastErr = errs[i]
			s.logger.Warn("roster fetch failed", "team", team.Slug, "error", errs[i])
			continue
		}
		snap.players = append(snap.players, results[i]...)
	}

	if len(all) > 0 && snap.failed == len(all) {
		return rosterSnapshot{}, fmt.Errorf("all %d roster fetches failed: %w", snap.failed, snap.lastErr)
	}
	s.logger.Info("rosters refreshed", "teams", len(all)-snap.failed, "failed", snap.failed, "players", len(snap.players))
	return snap, nil
}

// checkPartial rejects a sweep that lost teams while the cache still holds a
// value, so the previous complete value keeps being served. A cold cache
// takes whatever was fetched.
func (s *Service) checkPartial(cacheName string, snap rosterSnapshot, warm bool) error {
	if snap.failed == 0 {
		return nil
	}
	if warm {
		return fmt.Errorf("partial roster refresh, %d of %d teams failed: %w", snap.failed, snap.teams, snap.lastErr)
	}
	s.logger.Warn("accepting partial rosters on cold cache", "cache", cacheName, "failed", snap.failed, "teams", snap.teams)
	return nil
}

func (s *Service) populateIndex(ctx context.Context, key string) (map[string]models.CachedPlayer, error) {
	snap, err := s.sweep(ctx)
	if err != nil {
		return nil, err
	}
	_, _, warm := s.index.Peek(key)
	if err := s.checkPartial("player_index", snap, warm); err != nil {
		return nil, err
	}

	index := make(map[string]models.CachedPlayer, len(snap.players))
	collisions := 0
	for _, p := range snap.players {
		if _, dup := index[p.Slug]; dup {
			collisions++
		}
		index[p.Slug] = p
	}
	if collisions > 0 {
		s.logger.Info("player slug collisions, later teams win", "collisions", collisions)
	}
	return index, nil
}

func (s *Service) populateList(ctx context.Context, key string) ([]models.CachedPlayer, error) {
	snap, err := s.sweep(ctx)
	if err != nil {
		return nil, err
	}
	_, _, warm := s.list.Peek(key)
	if err := s.checkPartial("player_list", snap, warm); err != nil {
		return nil, err
	}

	players := append([]models.CachedPlayer(nil), snap.players...)

	sort.SliceStable(players, func(i, j int) bool {
		a, b := players[i], players[j]
		if la, lb := strings.ToLower(a.LastName), strings.ToLower(b.LastName); la != lb {
			return la < lb
		}
		if fa, fb := strings.ToLower(a.FirstName), strings.ToLower(b.FirstName); fa != fb {
			return fa < fb
		}
		return a.Slug < b.Slug
	})
	return players, nil
}

func toCachedPlayer(a espn.Athlete, group string, team models.Team) (models.CachedPlayer, bool) {
	name := strings.TrimSpace(a.Name())
	s := slug.Make(name)
	if s == "" {
		return models.CachedPlayer{}, false
	}

	var hometown []string
	for _, part := range []string{a.BirthPlace.City, a.BirthPlace.State} {
		if part != "" {
			hometown = append(hometown, part)
		}
	}

	return models.CachedPlayer{
		ID:             a.ID,
		Slug:           s,
		Name:           name,
		FirstName:      a.FirstName,
		LastName:       a.LastName,
		Jersey:         a.Jersey,
		Position:       a.Position.Abbreviation,
		PositionName:   a.Position.DisplayName,
		PositionGroup:  group,
		Height:         a.DisplayHeight,
		Weight:         a.DisplayWeight,
		Class:          a.Experience.DisplayValue,
		Hometown:       strings.Join(hometown, ", "),
		Headshot:       a.Headshot.Href,
		TeamID:         team.ID,
		TeamSlug:       team.Slug,
		TeamName:       team.ShortName,
		TeamAbbr:       team.Abbreviation,
		Conference:     team.Conference,
		ConferenceName: team.ConferenceName,
	}, true
}
