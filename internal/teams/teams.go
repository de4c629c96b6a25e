package teams

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/pfsn365/transfer-portal-tracker-sub001/internal/slug"
	"github.com/pfsn365/transfer-portal-tracker-sub001/pkg/models"
)

// ErrTeamNotFound is returned for unknown team slugs or ids
var ErrTeamNotFound = errors.New("team not found")

const logoURL = "https://a.espncdn.com/i/teamlogos/ncaa/500/%s.png"

type teamRow struct {
	id, slug, short, nickname, abbr, conference string
}

// Registry holds the static team table
type Registry struct {
	teams  []models.Team
	bySlug map[string]int
	byID   map[string]int
}

// New creates a registry loaded with the FBS team table
func New() *Registry {
	rows := make([]models.Team, 0, len(fbsTeams))
	for _, row := range fbsTeams {
		rows = append(rows, models.Team{
			ID:             row.id,
			Slug:           row.slug,
			Name:           row.short + " " + row.nickname,
			ShortName:      row.short,
			Abbreviation:   row.abbr,
			Conference:     row.conference,
			ConferenceName: conferenceNames[row.conference],
			Logo:           fmt.Sprintf(logoURL, row.id),
		})
	}
	return NewFromTeams(rows)
}

// NewFromTeams creates a registry over an explicit team list
func NewFromTeams(list []models.Team) *Registry {
	r := &Registry{
		teams:  list,
		bySlug: make(map[string]int, len(list)),
		byID:   make(map[string]int, len(list)),
	}
	for i, t := range list {
		r.bySlug[t.Slug] = i
		r.byID[t.ID] = i
	}
	return r
}

// All returns every team in table order
func (r *Registry) All() []models.Team {
	out := make([]models.Team, len(r.teams))
	copy(out, r.teams)
	return out
}

// Len returns the number of teams
func (r *Registry) Len() int {
	return len(r.teams)
}

// BySlug looks a team up by its slug
func (r *Registry) BySlug(s string) (models.Team, error) {
	i, ok := r.bySlug[strings.ToLower(s)]
	if !ok {
		return models.Team{}, fmt.Errorf("%w: %s", ErrTeamNotFound, s)
	}
	return r.teams[i], nil
}

// ByID looks a team up by its ESPN id
func (r *Registry) ByID(id string) (models.Team, error) {
	i, ok := r.byID[id]
	if !ok {
		return models.Team{}, fmt.Errorf("%w: id %s", ErrTeamNotFound, id)
	}
	return r.teams[i], nil
}

// Resolve accepts a slug, an abbreviation, a short name or a full
// display name
func (r *Registry) Resolve(name string) (models.Team, bool) {
	if t, err := r.BySlug(slug.Make(name)); err == nil {
		return t, true
	}
	for _, t := range r.teams {
		if strings.EqualFold(t.Abbreviation, name) ||
			strings.EqualFold(t.ShortName, name) ||
			strings.EqualFold(t.Name, name) {
			return t, true
		}
	}
	return models.Team{}, false
}

// ByConference returns the teams in a conference, by slug
func (r *Registry) ByConference(conference string) []models.Team {
	var out []models.Team
	for _, t := range r.teams {
		if t.Conference == conference {
			out = append(out, t)
		}
	}
	return out
}

// Conferences returns the sorted conference slugs present in the table
func (r *Registry) Conferences() []string {
	seen := make(map[string]bool)
	for _, t := range r.teams {
		seen[t.Conference] = true
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
