package transfer

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pfsn365/transfer-portal-tracker-sub001/internal/cache"
	"github.com/pfsn365/transfer-portal-tracker-sub001/internal/teams"
	"github.com/pfsn365/transfer-portal-tracker-sub001/pkg/models"
)

type stubFetcher struct {
	players []models.TransferPlayer
	err     error
	calls   atomic.Int32
}

func (f *stubFetcher) FetchPlayers(ctx context.Context) ([]models.TransferPlayer, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return f.players, nil
}

var portalRows = []models.TransferPlayer{
	{Name: "John Mateer", Slug: "john-mateer", Position: "QB", Status: "Committed", FromSchool: "Washington State", ToSchool: "Oklahoma"},
	{Name: "Mike Smith", Slug: "mike-smith", Position: "WR", Status: "Entered", FromSchool: "Texas A&M"},
	{Name: "Mike Smith", Slug: "mike-smith", Position: "LB", Status: "Committed", FromSchool: "Toledo", ToSchool: "Georgia"},
	{Name: "Nico Iamaleava", Slug: "nico-iamaleava", Position: "QB", Status: "Committed", FromSchool: "Tennessee", ToSchool: "UCLA"},
}

func newService(f Fetcher, now func() time.Time) *Service {
	return NewService(f, teams.New(), Options{TTL: 10 * time.Minute, Clock: now})
}

func TestDataset_CachesAndStampsFetchTime(t *testing.T) {
	at := time.Date(2025, 12, 10, 15, 0, 0, 0, time.UTC)
	f := &stubFetcher{players: portalRows}
	s := newService(f, func() time.Time { return at })

	ds, err := s.Dataset(context.Background())
	require.NoError(t, err)
	assert.Len(t, ds.Players, 4)
	assert.Equal(t, at, ds.FetchedAt)
	assert.NoError(t, ds.UpstreamError)

	_, err = s.Dataset(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(1), f.calls.Load())
}

func TestDataset_NeverFetched(t *testing.T) {
	f := &stubFetcher{err: errors.New("sheet down")}
	s := newService(f, time.Now)

	ds, err := s.Dataset(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, cache.ErrNoValue)
	assert.NotNil(t, ds.Players)
	assert.Empty(t, ds.Players)
	assert.True(t, ds.FetchedAt.IsZero())
	assert.Equal(t, err, ds.UpstreamError)
}

func TestDataset_FetchedEmpty(t *testing.T) {
	s := newService(&stubFetcher{players: []models.TransferPlayer{}}, time.Now)

	ds, err := s.Dataset(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ds.Players)
	assert.False(t, ds.FetchedAt.IsZero())
}

func TestPlayers_TeamFilter(t *testing.T) {
	s := newService(&stubFetcher{players: portalRows}, time.Now)

	tests := []struct {
		team string
		want []string
	}{
		{"", []string{"John Mateer", "Mike Smith", "Mike Smith", "Nico Iamaleava"}},
		{"oklahoma", []string{"John Mateer"}},
		{"Washington State", []string{"John Mateer"}},
		{"texas-am", []string{"Mike Smith"}},
		{"TENN", []string{"Nico Iamaleava"}},
		{"Ucla", []string{"Nico Iamaleava"}},
		{"Nowhere State", nil},
	}

	for _, tt := range tests {
		t.Run(tt.team, func(t *testing.T) {
			ds, err := s.Players(context.Background(), tt.team)
			require.NoError(t, err)

			var names []string
			for _, p := range ds.Players {
				names = append(names, p.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestMatch(t *testing.T) {
	s := newService(&stubFetcher{players: portalRows}, time.Now)
	ctx := context.Background()

	p, ok := s.Match(ctx, "John Mateer", "Oklahoma")
	require.True(t, ok)
	assert.Equal(t, "Washington State", p.FromSchool)

	p, ok = s.Match(ctx, "Mike Smith", "Georgia")
	require.True(t, ok)
	assert.Equal(t, "LB", p.Position, "team breaks the tie")

	p, ok = s.Match(ctx, "Mike Smith", "")
	require.True(t, ok)
	assert.Equal(t, "WR", p.Position, "first entry without a team")

	_, ok = s.Match(ctx, "Mike", "Georgia")
	assert.False(t, ok, "substrings do not match")

	_, ok = s.Match(ctx, "", "Georgia")
	assert.False(t, ok)
}
