package models

import "time"

// GameState mirrors ESPN's status.type.state
type GameState string

const (
	StatePre  GameState = "pre"
	StateIn   GameState = "in"
	StatePost GameState = "post"
)

// Competitor is one side of a game
type Competitor struct {
	TeamID       string `json:"teamId"`
	Name         string `json:"name"`
	ShortName    string `json:"shortName"`
	Abbreviation string `json:"abbreviation"`
	Logo         string `json:"logo,omitempty"`
	Score        string `json:"score,omitempty"`
	Rank         int    `json:"rank,omitempty"` // AP/CFP rank, 0 when unranked
	Record       string `json:"record,omitempty"`
	Winner       bool   `json:"winner"`
}

// ScheduleGame is a single scheduled, live, or completed game
type ScheduleGame struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`         // "Georgia Bulldogs at Alabama Crimson Tide"
	ShortName      string     `json:"shortName"`    // "UGA @ ALA"
	Date           time.Time  `json:"date"`
	State          GameState  `json:"state"`
	StatusDetail   string     `json:"statusDetail"` // "Final", "Q3 4:12", "Sat, Sep 27th at 7:30 PM EDT"
	Completed      bool       `json:"completed"`
	Week           int        `json:"week,omitempty"`
	SeasonType     int        `json:"seasonType,omitempty"`
	Home           Competitor `json:"home"`
	Away           Competitor `json:"away"`
	Venue          string     `json:"venue,omitempty"`
	City           string     `json:"city,omitempty"`
	Broadcast      string     `json:"broadcast,omitempty"`
	NeutralSite    bool       `json:"neutralSite"`
	ConferenceGame bool       `json:"conferenceGame"`
}

// IsLive reports whether the game is in progress
func (g ScheduleGame) IsLive() bool {
	return g.State == StateIn
}

// ScheduleResponse is the /api/cfb/schedule and /api/cfb/scoreboard body
type ScheduleResponse struct {
	Games        []ScheduleGame `json:"games"`
	TotalGames   int            `json:"totalGames"`
	HasLiveGames bool           `json:"hasLiveGames"`
	LastUpdated  time.Time      `json:"lastUpdated"`
	Error        string         `json:"error,omitempty"`
}

// HasLive reports whether any game in games is in progress
func HasLive(games []ScheduleGame) bool {
	for _, g := range games {
		if g.IsLive() {
			return true
		}
	}
	return false
}

// RankedTeam is one entry of a poll
type RankedTeam struct {
	Current         int    `json:"current"`
	Previous        int    `json:"previous"`
	Points          int    `json:"points"`
	FirstPlaceVotes int    `json:"firstPlaceVotes"`
	Trend           string `json:"trend"`
	Record          string `json:"record,omitempty"`
	TeamID          string `json:"teamId"`
	Name            string `json:"name"`
	Abbreviation    string `json:"abbreviation"`
	Logo            string `json:"logo,omitempty"`
}

// Poll is a ranking such as the AP Top 25
type Poll struct {
	Name      string       `json:"name"`
	ShortName string       `json:"shortName"`
	Teams     []RankedTeam `json:"teams"`
}
