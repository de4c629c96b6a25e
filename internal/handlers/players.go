package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pfsn365/transfer-portal-tracker-sub001/internal/players"
	"github.com/pfsn365/transfer-portal-tracker-sub001/pkg/models"
)

type playersResponse struct {
	models.PlayersPage
	Error string `json:"error,omitempty"`
}

// GetPlayers lists players
// Query params: page, limit, search, team, position, conference
func (h *Handler) GetPlayers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := players.Query{
		Search:     q.Get("search"),
		Team:       q.Get("team"),
		Position:   q.Get("position"),
		Conference: q.Get("conference"),
		Page:       parseIntParam(r, "page", 1),
		Limit:      parseIntParam(r, "limit", players.DefaultLimit),
	}

	page, err := h.svc.Players.List(r.Context(), query)
	if err != nil {
		status := statusFor(err)
		h.logger.Error("listing players", "status", status, "error", err)
		setNoStore(w)
		h.respondJSON(w, status, playersResponse{PlayersPage: page, Error: unavailable("player data")})
		return
	}

	setCacheControl(w, maxAgeRoster)
	h.respondJSON(w, http.StatusOK, playersResponse{PlayersPage: page})
}

// GetPlayer returns one player profile by slug
func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	playerSlug := chi.URLParam(r, "playerSlug")

	profile, err := h.svc.Players.Profile(r.Context(), playerSlug)
	if errors.Is(err, players.ErrPlayerNotFound) {
		h.respondError(w, http.StatusNotFound, "Player not found", nil)
		return
	}
	if err != nil {
		h.respondError(w, statusFor(err), unavailable("player data"), err)
		return
	}

	setCacheControl(w, maxAgeRoster)
	h.respondJSON(w, http.StatusOK, profile)
}
