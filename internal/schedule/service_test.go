package schedule

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pfsn365/transfer-portal-tracker-sub001/internal/cache"
	"github.com/pfsn365/transfer-portal-tracker-sub001/internal/providers/espn"
	"github.com/pfsn365/transfer-portal-tracker-sub001/pkg/models"
)

type fakeScoreboard struct {
	mu      sync.Mutex
	slices  map[string][]espn.Event // "seasontype/week"
	failAll bool
	failing map[string]bool // "seasontype/week"
	queries []espn.ScoreboardQuery
	calls   atomic.Int32
}

func sliceKey(seasonType, week int) string {
	return fmt.Sprintf("%d/%d", seasonType, week)
}

func (f *fakeScoreboard) FetchScoreboard(ctx context.Context, q espn.ScoreboardQuery) (*espn.ScoreboardResponse, error) {
	f.calls.Add(1)
	f.mu.Lock()
	defer f.mu.Unlock()

	f.queries = append(f.queries, q)
	if f.failAll || f.failing[sliceKey(q.SeasonType, q.Week)] {
		return nil, errors.New("espn down")
	}
	return &espn.ScoreboardResponse{Events: f.slices[sliceKey(q.SeasonType, q.Week)]}, nil
}

func (f *fakeScoreboard) FetchRankings(ctx context.Context) (*espn.RankingsResponse, error) {
	return &espn.RankingsResponse{}, nil
}

func event(id, date, state string) espn.Event {
	return espn.Event{
		ID:     id,
		Date:   date,
		Name:   "Game " + id,
		Status: espn.Status{Type: espn.StatusType{State: state}},
	}
}

func newFake() *fakeScoreboard {
	return &fakeScoreboard{slices: map[string][]espn.Event{
		sliceKey(2, 1): {event("g2", "2025-08-30T19:30Z", "post"), event("g1", "2025-08-30T16:00Z", "post")},
		sliceKey(2, 2): {event("g3", "2025-09-06T16:00Z", "in")},
		// the same game listed under two weeks
		sliceKey(2, 14): {event("g4", "2025-12-06T20:00Z", "pre")},
		sliceKey(2, 15): {event("g4", "2025-12-06T20:00Z", "pre")},
		sliceKey(3, 1):  {event("g5", "2026-01-01T17:00Z", "pre")},
	}}
}

func newTestService(sb Scoreboard) *Service {
	return NewService(sb, Options{Season: 2025, Location: time.UTC})
}

func ids(games []models.ScheduleGame) []string {
	out := make([]string, 0, len(games))
	for _, g := range games {
		out = append(out, g.ID)
	}
	return out
}

func TestSeasonGames_MergesDedupesAndSorts(t *testing.T) {
	f := newFake()
	s := newTestService(f)

	games, err := s.SeasonGames(context.Background(), "80")
	require.NoError(t, err)
	assert.Equal(t, []string{"g1", "g2", "g3", "g4", "g5"}, ids(games))
	assert.Equal(t, int32(regularSeasonWeeks+postseasonWeeks), f.calls.Load())

	assert.Equal(t, 1, games[0].Week, "week is backfilled from the slice")
	assert.Equal(t, espn.SeasonTypeRegular, games[0].SeasonType)
	assert.Equal(t, espn.SeasonTypePostseason, games[4].SeasonType)

	for _, q := range f.queries {
		assert.Equal(t, "80", q.Group)
		assert.Equal(t, 2025, q.Season)
	}
}

func TestSeasonGames_PartialRefreshKeepsPrevious(t *testing.T) {
	f := newFake()
	now := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	s := NewService(f, Options{Season: 2025, Location: time.UTC, Clock: func() time.Time { return now }})
	ctx := context.Background()

	games, err := s.SeasonGames(ctx, "80")
	require.NoError(t, err)
	require.Len(t, games, 5)

	now = now.Add(6 * time.Minute)
	f.mu.Lock()
	f.failing = map[string]bool{sliceKey(2, 1): true, sliceKey(3, 1): true}
	f.mu.Unlock()

	games, err = s.SeasonGames(ctx, "80")
	require.NoError(t, err)
	assert.Equal(t, []string{"g1", "g2", "g3", "g4", "g5"}, ids(games), "previous season is served")
	assert.Equal(t, int32(2*(regularSeasonWeeks+postseasonWeeks)), f.calls.Load())
}

func TestSeasonGames_PartialAcceptedWhenCold(t *testing.T) {
	f := newFake()
	f.failing = map[string]bool{sliceKey(2, 1): true}
	s := newTestService(f)

	games, err := s.SeasonGames(context.Background(), "80")
	require.NoError(t, err)
	assert.Equal(t, []string{"g3", "g4", "g5"}, ids(games))
}

func TestSeasonGames_CachedPerGroup(t *testing.T) {
	f := newFake()
	s := newTestService(f)
	ctx := context.Background()

	_, err := s.SeasonGames(ctx, "80")
	require.NoError(t, err)
	_, err = s.SeasonGames(ctx, "80")
	require.NoError(t, err)
	assert.Equal(t, int32(22), f.calls.Load())

	_, err = s.SeasonGames(ctx, "81")
	require.NoError(t, err)
	assert.Equal(t, int32(44), f.calls.Load())

	_, err = s.SeasonGames(ctx, "not-a-group")
	require.NoError(t, err)
	assert.Equal(t, int32(44), f.calls.Load(), "unknown groups share the FBS slot")
}

func TestSeasonGames_AllSlicesFail(t *testing.T) {
	f := newFake()
	f.failAll = true
	s := newTestService(f)

	games, err := s.SeasonGames(context.Background(), "80")
	require.ErrorIs(t, err, cache.ErrNoValue)
	assert.NotNil(t, games)
	assert.Empty(t, games)
}

func TestGames_Month(t *testing.T) {
	s := newTestService(newFake())
	ctx := context.Background()

	games, err := s.Games(ctx, Query{Month: "9"})
	require.NoError(t, err)
	assert.Equal(t, []string{"g3"}, ids(games))

	games, err = s.Games(ctx, Query{Month: "2026-01"})
	require.NoError(t, err)
	assert.Equal(t, []string{"g5"}, ids(games))

	games, err = s.Games(ctx, Query{Month: "2024-01"})
	require.NoError(t, err)
	assert.Empty(t, games)

	_, err = s.Games(ctx, Query{Month: "13"})
	assert.ErrorIs(t, err, ErrInvalidQuery)
	_, err = s.Games(ctx, Query{Month: "sept"})
	assert.ErrorIs(t, err, ErrInvalidQuery)
}

func TestGames_WeekIsUncached(t *testing.T) {
	f := newFake()
	s := newTestService(f)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		games, err := s.Games(ctx, Query{Week: 2, Group: "81"})
		require.NoError(t, err)
		assert.Equal(t, []string{"g3"}, ids(games))
	}
	assert.Equal(t, int32(2), f.calls.Load())

	q := f.queries[0]
	assert.Equal(t, 2, q.Week)
	assert.Equal(t, espn.SeasonTypeRegular, q.SeasonType)
	assert.Equal(t, "81", q.Group)

	games, err := s.Games(ctx, Query{Week: 1, SeasonType: 3})
	require.NoError(t, err)
	assert.Equal(t, []string{"g5"}, ids(games))
}

func TestGames_Date(t *testing.T) {
	f := newFake()
	s := newTestService(f)

	_, err := s.Games(context.Background(), Query{Date: "2025-09-06"})
	require.NoError(t, err)
	assert.Equal(t, "20250906", f.queries[0].Dates)
	assert.Zero(t, f.queries[0].Week)

	_, err = s.Games(context.Background(), Query{Date: "yesterday"})
	assert.ErrorIs(t, err, ErrInvalidQuery)
}

func TestGames_UpstreamFailure(t *testing.T) {
	f := newFake()
	f.failAll = true
	s := newTestService(f)

	games, err := s.Games(context.Background(), Query{Week: 3})
	require.Error(t, err)
	assert.NotNil(t, games)
}

func TestSeasonYear(t *testing.T) {
	s := NewService(newFake(), Options{Location: time.UTC})

	assert.Equal(t, 2025, s.SeasonYear(time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 2025, s.SeasonYear(time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 2026, s.SeasonYear(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)))
}

func TestNormalizeGroup(t *testing.T) {
	assert.Equal(t, "80", NormalizeGroup(""))
	assert.Equal(t, "81", NormalizeGroup("81"))
	assert.Equal(t, "80", NormalizeGroup("99"))
}
