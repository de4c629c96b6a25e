package players

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pfsn365/transfer-portal-tracker-sub001/pkg/models"
)

func names(players []models.CachedPlayer) []string {
	out := make([]string, 0, len(players))
	for _, p := range players {
		out = append(out, p.Name)
	}
	return out
}

func TestList_SortedByLastName(t *testing.T) {
	s := newTestService(newFakeRosters(), nil)

	page, err := s.List(context.Background(), Query{})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Julian Sayin", "Ty Simpson", "Chris Smith", "Chris Smith", "Gunner Stockton", "Ryan Williams",
	}, names(page.Players))
	assert.Equal(t, models.Pagination{Page: 1, Limit: DefaultLimit, TotalPlayers: 6, TotalPages: 1}, page.Pagination)
}

func TestList_Filters(t *testing.T) {
	s := newTestService(newFakeRosters(), nil)

	tests := []struct {
		name  string
		query Query
		want  []string
	}{
		{"search", Query{Search: "SIM"}, []string{"Ty Simpson"}},
		{"team slug", Query{Team: "georgia"}, []string{"Chris Smith", "Gunner Stockton"}},
		{"team name", Query{Team: "Ohio State"}, []string{"Julian Sayin", "Chris Smith"}},
		{"team abbreviation", Query{Team: "ALA"}, []string{"Ty Simpson", "Ryan Williams"}},
		{"position", Query{Position: "qb"}, []string{"Julian Sayin", "Ty Simpson", "Gunner Stockton"}},
		{"conference", Query{Conference: "big-ten"}, []string{"Julian Sayin", "Chris Smith"}},
		{"combined", Query{Conference: "sec", Position: "QB"}, []string{"Ty Simpson", "Gunner Stockton"}},
		{"unknown team", Query{Team: "Atlantis"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := s.List(context.Background(), tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(page.Players))
		})
	}
}

func TestList_Pagination(t *testing.T) {
	s := newTestService(newFakeRosters(), nil)

	page, err := s.List(context.Background(), Query{Page: 2, Limit: 4})
	require.NoError(t, err)
	assert.Equal(t, []string{"Gunner Stockton", "Ryan Williams"}, names(page.Players))
	assert.Equal(t, models.Pagination{
		Page: 2, Limit: 4, TotalPlayers: 6, TotalPages: 2, HasNextPage: false, HasPrevPage: true,
	}, page.Pagination)

	page, err = s.List(context.Background(), Query{Page: 9, Limit: 4})
	require.NoError(t, err)
	assert.Empty(t, page.Players)
	assert.NotNil(t, page.Players)
}

func TestQueryNormalize(t *testing.T) {
	q := Query{Page: -3, Limit: 5000}.normalize()
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, MaxLimit, q.Limit)

	q = Query{}.normalize()
	assert.Equal(t, DefaultLimit, q.Limit)
}

func TestList_NeverFetched(t *testing.T) {
	r := newFakeRosters()
	r.failing = map[string]bool{"333": true, "61": true, "194": true}
	s := newTestService(r, nil)

	page, err := s.List(context.Background(), Query{})
	require.Error(t, err)
	assert.NotNil(t, page.Players)
	assert.Empty(t, page.Players)
	assert.Equal(t, 0, page.Pagination.TotalPlayers)
}

func TestPaginate_ExactMultiple(t *testing.T) {
	players := make([]models.CachedPlayer, 10)
	for i := range players {
		players[i] = models.CachedPlayer{Name: fmt.Sprint(i)}
	}

	page := paginate(players, 1, 5)
	assert.Equal(t, 2, page.Pagination.TotalPages)
	assert.True(t, page.Pagination.HasNextPage)
	assert.False(t, page.Pagination.HasPrevPage)
}
