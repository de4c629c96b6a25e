package players

import (
	"context"
	"strings"

	"github.com/pfsn365/transfer-portal-tracker-sub001/pkg/models"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

// Query filters and pages the flat player list. Empty filters match all.
type Query struct {
	Search     string // substring of the player name
	Team       string // team slug, abbreviation or name
	Position   string // position abbreviation
	Conference string // conference slug
	Page       int
	Limit      int
}

func (q Query) normalize() Query {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	q.Search = strings.ToLower(strings.TrimSpace(q.Search))
	q.Team = strings.TrimSpace(q.Team)
	q.Position = strings.TrimSpace(q.Position)
	q.Conference = strings.ToLower(strings.TrimSpace(q.Conference))
	return q
}

// List returns one page of the filtered player list. When the list has
// never been fetched the page is empty and the error is non-nil.
func (s *Service) List(ctx context.Context, q Query) (models.PlayersPage, error) {
	q = q.normalize()

	all, err := s.list.Get(ctx, allPlayersKey, s.populateList)
	if err != nil {
		s.logger.Warn("player list unavailable", "error", err)
	}

	matched := s.filter(all, q)
	return paginate(matched, q.Page, q.Limit), err
}

func (s *Service) filter(all []models.CachedPlayer, q Query) []models.CachedPlayer {
	var teamID, teamName string
	if q.Team != "" {
		if t, ok := s.teams.Resolve(q.Team); ok {
			teamID = t.ID
		} else {
			teamName = strings.ToLower(q.Team)
		}
	}

	out := make([]models.CachedPlayer, 0, len(all))
	for _, p := range all {
		if q.Search != "" && !strings.Contains(strings.ToLower(p.Name), q.Search) {
			continue
		}
		if teamID != "" && p.TeamID != teamID {
			continue
		}
		if teamName != "" && !strings.EqualFold(p.TeamName, teamName) {
			continue
		}
		if q.Position != "" && !strings.EqualFold(p.Position, q.Position) {
			continue
		}
		if q.Conference != "" && p.Conference != q.Conference {
			continue
		}
		out = append(out, p)
	}
	return out
}

func paginate(players []models.CachedPlayer, page, limit int) models.PlayersPage {
	total := len(players)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return models.PlayersPage{
		Players: players[start:end],
		Pagination: models.Pagination{
			Page:         page,
			Limit:        limit,
			TotalPlayers: total,
			TotalPages:   totalPages,
			HasNextPage:  page < totalPages,
			HasPrevPage:  page > 1,
		},
	}
}
