package espn

import (
	"strings"
	"time"

	"github.com/pfsn365/transfer-portal-tracker-sub001/pkg/models"
)

// ESPN sends kickoff times without seconds, e.g. "2025-09-06T16:00Z"
var dateLayouts = []string{
	"2006-01-02T15:04Z07:00",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// ParseDate parses an ESPN event date. It returns the zero time when the
// value is empty or unrecognized.
func ParseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

// ToScheduleGame flattens a scoreboard event
func (e Event) ToScheduleGame() models.ScheduleGame {
	g := models.ScheduleGame{
		ID:           e.ID,
		Name:         e.Name,
		ShortName:    e.ShortName,
		Date:         ParseDate(e.Date),
		State:        parseState(e.Status.Type),
		StatusDetail: e.Status.Type.ShortDetail,
		Completed:    e.Status.Type.Completed,
		Week:         e.Week.Number,
		SeasonType:   e.Season.Type,
	}
	if g.StatusDetail == "" {
		g.StatusDetail = e.Status.Type.Detail
	}

	if len(e.Competitions) == 0 {
		return g
	}
	comp := e.Competitions[0]

	g.NeutralSite = comp.NeutralSite
	g.ConferenceGame = comp.ConferenceCompetition
	g.Venue = comp.Venue.FullName
	if comp.Venue.Address.City != "" {
		g.City = comp.Venue.Address.City
		if comp.Venue.Address.State != "" {
			g.City += ", " + comp.Venue.Address.State
		}
	}
	g.Broadcast = broadcastNames(comp.Broadcasts)

	for _, c := range comp.Competitors {
		switch c.HomeAway {
		case "home":
			g.Home = c.toModel()
		case "away":
			g.Away = c.toModel()
		}
	}
	return g
}

func (c Competitor) toModel() models.Competitor {
	out := models.Competitor{
		TeamID:       c.Team.ID,
		Name:         c.Team.DisplayName,
		ShortName:    c.Team.ShortDisplayName,
		Abbreviation: c.Team.Abbreviation,
		Logo:         c.Team.Logo,
		Score:        c.Score,
		Winner:       c.Winner,
	}
	if out.TeamID == "" {
		out.TeamID = c.ID
	}
	// 99 means unranked
	if r := c.CuratedRank.Current; r > 0 && r <= 25 {
		out.Rank = r
	}
	for _, rec := range c.Records {
		if rec.Type == "" || rec.Type == "total" {
			out.Record = rec.Summary
			break
		}
	}
	return out
}

func parseState(t StatusType) models.GameState {
	if t.Completed {
		return models.StatePost
	}
	switch t.State {
	case "in":
		return models.StateIn
	case "post":
		return models.StatePost
	default:
		return models.StatePre
	}
}

func broadcastNames(list []Broadcast) string {
	var names []string
	seen := make(map[string]bool)
	for _, b := range list {
		for _, n := range b.Names {
			if n != "" && !seen[n] {
				seen[n] = true
				names = append(names, n)
			}
		}
	}
	return strings.Join(names, ", ")
}

// ToPolls flattens a rankings response
func (r *RankingsResponse) ToPolls() []models.Poll {
	polls := make([]models.Poll, 0, len(r.Rankings))
	for _, ranking := range r.Rankings {
		poll := models.Poll{
			Name:      ranking.Name,
			ShortName: ranking.ShortName,
			Teams:     make([]models.RankedTeam, 0, len(ranking.Ranks)),
		}
		for _, rank := range ranking.Ranks {
			poll.Teams = append(poll.Teams, models.RankedTeam{
				Current:         rank.Current,
				Previous:        rank.Previous,
				Points:          int(rank.Points),
				FirstPlaceVotes: rank.FirstPlaceVotes,
				Trend:           rank.Trend,
				Record:          rank.RecordSummary,
				TeamID:          rank.Team.ID,
				Name:            rank.Team.displayName(),
				Abbreviation:    rank.Team.Abbreviation,
				Logo:            rank.Team.logo(),
			})
		}
		polls = append(polls, poll)
	}
	return polls
}

func (t RankTeam) displayName() string {
	switch {
	case t.Location != "" && t.Name != "":
		return t.Location + " " + t.Name
	case t.Nickname != "":
		return t.Nickname
	case t.Location != "":
		return t.Location
	default:
		return t.Name
	}
}

func (t RankTeam) logo() string {
	if t.Logo != "" {
		return t.Logo
	}
	if len(t.Logos) > 0 {
		return t.Logos[0].Href
	}
	return ""
}
