package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/pfsn365/transfer-portal-tracker-sub001/internal/teams"
	"github.com/pfsn365/transfer-portal-tracker-sub001/pkg/models"
)

// GetTeams lists the FBS teams
// Query params: conference
func (h *Handler) GetTeams(w http.ResponseWriter, r *http.Request) {
	conference := strings.ToLower(r.URL.Query().Get("conference"))

	var list []models.Team
	if conference == "" {
		list = h.svc.Teams.All()
	} else {
		list = h.svc.Teams.ByConference(conference)
	}
	if list == nil {
		list = []models.Team{}
	}

	setCacheControl(w, maxAgeStatic)
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"teams":       list,
		"totalTeams":  len(list),
		"conferences": h.svc.Teams.Conferences(),
	})
}

// GetTeamRoster returns one team's roster
func (h *Handler) GetTeamRoster(w http.ResponseWriter, r *http.Request) {
	teamSlug := chi.URLParam(r, "teamSlug")

	team, roster, err := h.svc.Players.TeamRoster(r.Context(), teamSlug)
	if errors.Is(err, teams.ErrTeamNotFound) {
		h.respondError(w, http.StatusNotFound, "Team not found", nil)
		return
	}
	if err != nil {
		status := statusFor(err)
		h.logger.Error("loading team roster", "team", teamSlug, "status", status, "error", err)
		setNoStore(w)
		h.respondJSON(w, status, map[string]interface{}{
			"error":   unavailable("roster data"),
			"team":    team,
			"players": []models.CachedPlayer{},
		})
		return
	}
	if roster == nil {
		roster = []models.CachedPlayer{}
	}

	setCacheControl(w, maxAgeRoster)
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"team":         team,
		"players":      roster,
		"totalPlayers": len(roster),
	})
}
