package espn

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/pfsn365/transfer-portal-tracker-sub001/internal/upstream"
)

const (
	BaseURL   = "https://site.api.espn.com/apis/site/v2/sports"
	SportPath = "football/college-football"

	// Division groups used by the scoreboard
	GroupFBS = "80"
	GroupFCS = "81"

	// Season types
	SeasonTypeRegular    = 2
	SeasonTypePostseason = 3
)

// Client handles ESPN API requests
type Client struct {
	baseURL string
	http    *upstream.Client
}

// New creates a new ESPN API client. An empty baseURL means BaseURL.
func New(baseURL string, http *upstream.Client) *Client {
	if baseURL == "" {
		baseURL = BaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    http,
	}
}

// ScoreboardQuery selects a scoreboard slice. Zero fields are omitted.
type ScoreboardQuery struct {
	Week       int
	SeasonType int
	Season     int    // year; used as dates= when Dates is empty
	Dates      string // "20250906" or "20250901-20250930"
	Group      string
	Limit      int
}

func (q ScoreboardQuery) values() url.Values {
	v := url.Values{}
	if q.Week > 0 {
		v.Set("week", strconv.Itoa(q.Week))
	}
	if q.SeasonType > 0 {
		v.Set("seasontype", strconv.Itoa(q.SeasonType))
	}
	switch {
	case q.Dates != "":
		v.Set("dates", q.Dates)
	case q.Season > 0:
		v.Set("dates", strconv.Itoa(q.Season))
	}
	if q.Group != "" {
		v.Set("groups", q.Group)
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	return v
}

// FetchScoreboard fetches games for a scoreboard slice.
// An empty query fetches whatever ESPN considers the current week.
func (c *Client) FetchScoreboard(ctx context.Context, q ScoreboardQuery) (*ScoreboardResponse, error) {
	u := fmt.Sprintf("%s/%s/scoreboard", c.baseURL, SportPath)
	if qs := q.values().Encode(); qs != "" {
		u += "?" + qs
	}

	var out ScoreboardResponse
	if err := c.http.GetJSON(ctx, u, &out); err != nil {
		return nil, fmt.Errorf("fetching scoreboard: %w", err)
	}
	return &out, nil
}

// FetchTeamRoster fetches the roster of one team by ESPN team id
func (c *Client) FetchTeamRoster(ctx context.Context, teamID string) (*RosterResponse, error) {
	u := fmt.Sprintf("%s/%s/teams/%s/roster", c.baseURL, SportPath, url.PathEscape(teamID))

	var out RosterResponse
	if err := c.http.GetJSON(ctx, u, &out); err != nil {
		return nil, fmt.Errorf("fetching roster for team %s: %w", teamID, err)
	}
	return &out, nil
}

// FetchRankings fetches the current polls
func (c *Client) FetchRankings(ctx context.Context) (*RankingsResponse, error) {
	u := fmt.Sprintf("%s/%s/rankings", c.baseURL, SportPath)

	var out RankingsResponse
	if err := c.http.GetJSON(ctx, u, &out); err != nil {
		return nil, fmt.Errorf("fetching rankings: %w", err)
	}
	return &out, nil
}
