package espn

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pfsn365/transfer-portal-tracker-sub001/internal/retry"
	"github.com/pfsn365/transfer-portal-tracker-sub001/internal/upstream"
	"github.com/pfsn365/transfer-portal-tracker-sub001/pkg/models"
)

const scoreboardFixture = `{
  "events": [{
    "id": "401752677",
    "date": "2025-09-06T16:00Z",
    "name": "Georgia Bulldogs at Alabama Crimson Tide",
    "shortName": "UGA @ ALA",
    "week": {"number": 2},
    "season": {"year": 2025, "type": 2},
    "status": {"type": {"state": "in", "completed": false, "detail": "3rd Quarter", "shortDetail": "Q3 4:12"}},
    "competitions": [{
      "id": "401752677",
      "neutralSite": false,
      "conferenceCompetition": true,
      "venue": {"fullName": "Bryant-Denny Stadium", "address": {"city": "Tuscaloosa", "state": "AL"}},
      "broadcasts": [{"market": "national", "names": ["ABC"]}, {"market": "national", "names": ["ABC", "ESPN+"]}],
      "competitors": [
        {"id": "333", "homeAway": "home", "score": "24", "curatedRank": {"current": 4},
         "records": [{"type": "total", "summary": "1-0"}],
         "team": {"id": "333", "displayName": "Alabama Crimson Tide", "shortDisplayName": "Alabama", "abbreviation": "ALA", "logo": "https://a.espncdn.com/333.png"}},
        {"id": "61", "homeAway": "away", "score": "17", "curatedRank": {"current": 99},
         "team": {"id": "61", "displayName": "Georgia Bulldogs", "shortDisplayName": "Georgia", "abbreviation": "UGA"}}
      ]
    }]
  }]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, upstream.New(upstream.Options{Source: "espn", Retry: retry.Fixed(1, 0)}))
}

func TestFetchScoreboard_QueryAndDecode(t *testing.T) {
	var gotPath, gotQuery string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Write([]byte(scoreboardFixture))
	})

	resp, err := c.FetchScoreboard(context.Background(), ScoreboardQuery{
		Week:       2,
		SeasonType: SeasonTypeRegular,
		Season:     2025,
		Group:      GroupFBS,
		Limit:      300,
	})
	require.NoError(t, err)

	assert.Equal(t, "/football/college-football/scoreboard", gotPath)
	assert.Equal(t, "dates=2025&groups=80&limit=300&seasontype=2&week=2", gotQuery)
	require.Len(t, resp.Events, 1)

	g := resp.Events[0].ToScheduleGame()
	assert.Equal(t, "401752677", g.ID)
	assert.Equal(t, time.Date(2025, 9, 6, 16, 0, 0, 0, time.UTC), g.Date)
	assert.Equal(t, models.StateIn, g.State)
	assert.True(t, g.IsLive())
	assert.Equal(t, "Q3 4:12", g.StatusDetail)
	assert.Equal(t, 2, g.Week)
	assert.Equal(t, "Bryant-Denny Stadium", g.Venue)
	assert.Equal(t, "Tuscaloosa, AL", g.City)
	assert.Equal(t, "ABC, ESPN+", g.Broadcast)
	assert.True(t, g.ConferenceGame)

	assert.Equal(t, "ALA", g.Home.Abbreviation)
	assert.Equal(t, 4, g.Home.Rank)
	assert.Equal(t, "1-0", g.Home.Record)
	assert.Equal(t, "24", g.Home.Score)
	assert.Equal(t, "UGA", g.Away.Abbreviation)
	assert.Equal(t, 0, g.Away.Rank, "99 means unranked")
}

func TestFetchTeamRoster(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/football/college-football/teams/251/roster", r.URL.Path)
		w.Write([]byte(`{
		  "team": {"id": "251", "abbreviation": "TEX", "displayName": "Texas Longhorns"},
		  "athletes": [{"position": "offense", "items": [
		    {"id": "4870906", "firstName": "Arch", "lastName": "Manning", "displayName": "Arch Manning",
		     "jersey": "16", "displayHeight": "6' 4\"", "displayWeight": "219 lbs",
		     "position": {"abbreviation": "QB", "displayName": "Quarterback"},
		     "experience": {"years": 3, "displayValue": "Junior"},
		     "birthPlace": {"city": "New Orleans", "state": "LA"},
		     "headshot": {"href": "https://a.espncdn.com/4870906.png"}},
		    {"id": "1", "firstName": "Only", "lastName": "Names"}
		  ]}]
		}`))
	})

	roster, err := c.FetchTeamRoster(context.Background(), "251")
	require.NoError(t, err)

	assert.Equal(t, "TEX", roster.Team.Abbreviation)
	require.Len(t, roster.Athletes, 1)
	require.Len(t, roster.Athletes[0].Items, 2)

	arch := roster.Athletes[0].Items[0]
	assert.Equal(t, "Arch Manning", arch.Name())
	assert.Equal(t, "QB", arch.Position.Abbreviation)
	assert.Equal(t, "Junior", arch.Experience.DisplayValue)
	assert.Equal(t, "Only Names", roster.Athletes[0].Items[1].Name())
}

func TestFetchTeamRoster_NotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	_, err := c.FetchTeamRoster(context.Background(), "0")
	var statusErr *upstream.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
}

func TestFetchRankings_ToPolls(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"rankings": [{"name": "AP Top 25", "shortName": "AP Poll", "ranks": [
		  {"current": 1, "previous": 2, "points": 1550.0, "firstPlaceVotes": 58, "trend": "+1", "recordSummary": "5-0",
		   "team": {"id": "194", "location": "Ohio State", "name": "Buckeyes", "abbreviation": "OSU",
		            "logos": [{"href": "https://a.espncdn.com/194.png"}]}}
		]}]}`))
	})

	resp, err := c.FetchRankings(context.Background())
	require.NoError(t, err)

	polls := resp.ToPolls()
	require.Len(t, polls, 1)
	assert.Equal(t, "AP Poll", polls[0].ShortName)
	require.Len(t, polls[0].Teams, 1)

	osu := polls[0].Teams[0]
	assert.Equal(t, "Ohio State Buckeyes", osu.Name)
	assert.Equal(t, 1550, osu.Points)
	assert.Equal(t, "https://a.espncdn.com/194.png", osu.Logo)
}

func TestParseDate(t *testing.T) {
	assert.Equal(t, time.Date(2025, 11, 29, 20, 30, 0, 0, time.UTC), ParseDate("2025-11-29T20:30Z"))
	assert.Equal(t, time.Date(2025, 11, 29, 20, 30, 15, 0, time.UTC), ParseDate("2025-11-29T20:30:15Z"))
	assert.True(t, ParseDate("").IsZero())
	assert.True(t, ParseDate("next saturday").IsZero())
}

func TestToScheduleGame_MissingFields(t *testing.T) {
	g := Event{ID: "1", Status: Status{Type: StatusType{Completed: true, Detail: "Final"}}}.ToScheduleGame()

	assert.Equal(t, "1", g.ID)
	assert.Equal(t, models.StatePost, g.State)
	assert.Equal(t, "Final", g.StatusDetail)
	assert.Empty(t, g.Home.TeamID)
}
