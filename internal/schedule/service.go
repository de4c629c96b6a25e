// Package schedule aggregates ESPN scoreboards into season schedules.
package schedule

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pfsn365/transfer-portal-tracker-sub001/internal/cache"
	"github.com/pfsn365/transfer-portal-tracker-sub001/internal/providers/espn"
	"github.com/pfsn365/transfer-portal-tracker-sub001/pkg/models"
)

// ErrInvalidQuery is returned for malformed date or month parameters
var ErrInvalidQuery = errors.New("invalid schedule query")

const (
	regularSeasonWeeks = 17
	postseasonWeeks    = 5

	// Events requested per scoreboard slice
	sliceLimit = 400
)

// Scoreboard is the ESPN surface the service reads
type Scoreboard interface {
	FetchScoreboard(ctx context.Context, q espn.ScoreboardQuery) (*espn.ScoreboardResponse, error)
	FetchRankings(ctx context.Context) (*espn.RankingsResponse, error)
}

// Options configures a Service
type Options struct {
	TTL time.Duration

	// Season year to aggregate. Zero derives it from the clock: games in
	// January belong to the previous year's season.
	Season int

	// Location used to bucket kickoffs into months. Nil means US Eastern,
	// or UTC when the zone database is unavailable.
	Location *time.Location

	Observer cache.Observer
	Logger   *slog.Logger
	Clock    func() time.Time
}

// Service serves schedules, scoreboards and polls
type Service struct {
	espn   Scoreboard
	season int
	loc    *time.Location
	logger *slog.Logger
	now    func() time.Time

	cache *cache.Cache[[]models.ScheduleGame]
}

// NewService creates a schedule service
func NewService(sb Scoreboard, opts Options) *Service {
	if opts.TTL <= 0 {
		opts.TTL = 5 * time.Minute
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Location == nil {
		opts.Location = eastern()
	}

	return &Service{
		espn:   sb,
		season: opts.Season,
		loc:    opts.Location,
		logger: opts.Logger,
		now:    opts.Clock,
		cache: cache.New(cache.Options[[]models.ScheduleGame]{
			Name:     "season_schedule",
			TTL:      opts.TTL,
			Default:  func() []models.ScheduleGame { return []models.ScheduleGame{} },
			Clock:    opts.Clock,
			Observer: opts.Observer,
		}),
	}
}

func eastern() *time.Location {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		return time.UTC
	}
	return loc
}

// NormalizeGroup returns group when it is a known division, else FBS
func NormalizeGroup(group string) string {
	switch group {
	case espn.GroupFBS, espn.GroupFCS:
		return group
	default:
		return espn.GroupFBS
	}
}

// SeasonYear returns the configured season, or the one in progress at t
func (s *Service) SeasonYear(t time.Time) int {
	if s.season > 0 {
		return s.season
	}
	t = t.In(s.loc)
	if t.Month() < time.March {
		return t.Year() - 1
	}
	return t.Year()
}

// SeasonGames returns every game of the season for a division group,
// sorted by kickoff. The result is cached per group.
func (s *Service) SeasonGames(ctx context.Context, group string) ([]models.ScheduleGame, error) {
	return s.cache.Get(ctx, NormalizeGroup(group), s.populateSeason)
}

type slice struct {
	week       int
	seasonType int
}

func seasonSlices() []slice {
	out := make([]slice, 0, regularSeasonWeeks+postseasonWeeks)
	for w := 1; w <= regularSeasonWeeks; w++ {
		out = append(out, slice{week: w, seasonType: espn.SeasonTypeRegular})
	}
	for w := 1; w <= postseasonWeeks; w++ {
		out = append(out, slice{week: w, seasonType: espn.SeasonTypePostseason})
	}
	return out
}

func (s *Service) populateSeason(ctx context.Context, group string) ([]models.ScheduleGame, error) {
	season := s.SeasonYear(s.now())
	slices := seasonSlices()

	var (
		mu      sync.Mutex
		seen    = make(map[string]bool)
		games   []models.ScheduleGame
		failed  int
		lastErr error
	)

	var g errgroup.Group
	for _, sl := range slices {
		g.Go(func() error {
			resp, err := s.espn.FetchScoreboard(ctx, espn.ScoreboardQuery{
				Week:       sl.week,
				SeasonType: sl.seasonType,
				Season:     season,
				Group:      group,
				Limit:      sliceLimit,
			})

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failed++
				lastErr = err
				s.logger.Warn("schedule slice failed",
					"group", group, "week", sl.week, "season_type", sl.seasonType, "error", err)
				return nil
			}
			for _, ev := range resp.Events {
				if ev.ID == "" || seen[ev.ID] {
					continue
				}
				seen[ev.ID] = true

				game := ev.ToScheduleGame()
				if game.Week == 0 {
					game.Week = sl.week
				}
				if game.SeasonType == 0 {
					game.SeasonType = sl.seasonType
				}
				games = append(games, game)
			}
			return nil
		})
	}
	_ = g.Wait()

	if failed == len(slices) {
		return nil, fmt.Errorf("all %d schedule slices failed: %w", failed, lastErr)
	}
	// A season that lost slices never replaces a cached one.
	if failed > 0 {
		if _, _, ok := s.cache.Peek(group); ok {
			return nil, fmt.Errorf("partial schedule refresh, %d of %d slices failed: %w", failed, len(slices), lastErr)
		}
		s.logger.Warn("accepting partial season on cold cache", "group", group, "failed_slices", failed)
	}

	sortByKickoff(games)
	s.logger.Info("season schedule refreshed",
		"group", group, "season", season, "games", len(games), "failed_slices", failed)
	return games, nil
}

func sortByKickoff(games []models.ScheduleGame) {
	sort.SliceStable(games, func(i, j int) bool {
		if !games[i].Date.Equal(games[j].Date) {
			return games[i].Date.Before(games[j].Date)
		}
		return games[i].ID < games[j].ID
	})
}

// Query selects the games returned by Games. Week and Date read the live
// scoreboard; FetchAll and Month read the cached season.
type Query struct {
	Week       int
	Date       string // YYYYMMDD or YYYY-MM-DD
	Month      string // 1..12 or YYYY-MM
	FetchAll   bool
	SeasonType int
	Group      string
}

// Games resolves a schedule query
func (s *Service) Games(ctx context.Context, q Query) ([]models.ScheduleGame, error) {
	group := NormalizeGroup(q.Group)

	switch {
	case q.Month != "":
		year, month, err := parseMonth(q.Month)
		if err != nil {
			return []models.ScheduleGame{}, err
		}
		games, err := s.SeasonGames(ctx, group)
		return s.filterMonth(games, year, month), err

	case q.FetchAll:
		return s.SeasonGames(ctx, group)

	case q.Date != "":
		dates, err := parseDate(q.Date)
		if err != nil {
			return []models.ScheduleGame{}, err
		}
		return s.scoreboard(ctx, espn.ScoreboardQuery{Dates: dates, Group: group, Limit: sliceLimit})

	case q.Week > 0:
		seasonType := q.SeasonType
		if seasonType != espn.SeasonTypePostseason {
			seasonType = espn.SeasonTypeRegular
		}
		return s.scoreboard(ctx, espn.ScoreboardQuery{
			Week:       q.Week,
			SeasonType: seasonType,
			Season:     s.SeasonYear(s.now()),
			Group:      group,
			Limit:      sliceLimit,
		})

	default:
		return s.Scoreboard(ctx, group)
	}
}

// Scoreboard returns ESPN's current scoreboard for a group, uncached
func (s *Service) Scoreboard(ctx context.Context, group string) ([]models.ScheduleGame, error) {
	return s.scoreboard(ctx, espn.ScoreboardQuery{Group: NormalizeGroup(group), Limit: sliceLimit})
}

func (s *Service) scoreboard(ctx context.Context, q espn.ScoreboardQuery) ([]models.ScheduleGame, error) {
	resp, err := s.espn.FetchScoreboard(ctx, q)
	if err != nil {
		return []models.ScheduleGame{}, err
	}

	games := make([]models.ScheduleGame, 0, len(resp.Events))
	for _, ev := range resp.Events {
		games = append(games, ev.ToScheduleGame())
	}
	sortByKickoff(games)
	return games, nil
}

// Rankings returns the current polls, uncached
func (s *Service) Rankings(ctx context.Context) ([]models.Poll, error) {
	resp, err := s.espn.FetchRankings(ctx)
	if err != nil {
		return []models.Poll{}, err
	}
	return resp.ToPolls(), nil
}

// filterMonth keeps games kicking off in month. year zero matches any year.
func (s *Service) filterMonth(games []models.ScheduleGame, year int, month time.Month) []models.ScheduleGame {
	out := make([]models.ScheduleGame, 0)
	for _, g := range games {
		if g.Date.IsZero() {
			continue
		}
		local := g.Date.In(s.loc)
		if local.Month() != month || (year != 0 && local.Year() != year) {
			continue
		}
		out = append(out, g)
	}
	return out
}

func parseMonth(s string) (int, time.Month, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > 12 {
			return 0, 0, fmt.Errorf("%w: month %q", ErrInvalidQuery, s)
		}
		return 0, time.Month(n), nil
	}

	t, err := time.Parse("2006-01", s)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: month %q", ErrInvalidQuery, s)
	}
	return t.Year(), t.Month(), nil
}

func parseDate(s string) (string, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), "-", "")
	if _, err := time.Parse("20060102", s); err != nil {
		return "", fmt.Errorf("%w: date %q", ErrInvalidQuery, s)
	}
	return s, nil
}
