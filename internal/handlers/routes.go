package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// Register mounts every route on r
func (h *Handler) Register(r chi.Router) {
	r.Get("/health", h.HealthCheck)

	r.Route("/api", func(r chi.Router) {
		// Players
		r.Get("/players", h.GetPlayers)
		r.Get("/players/{playerSlug}", h.GetPlayer)

		// Transfer portal
		r.Get("/transfer-portal", h.GetTransferPortal)

		// Games
		r.Get("/cfb/schedule", h.GetSchedule)
		r.Get("/cfb/scoreboard", h.GetScoreboard)
		r.Get("/cfb/rankings", h.GetRankings)

		// Teams
		r.Get("/teams", h.GetTeams)
		r.Get("/teams/{teamSlug}/roster", h.GetTeamRoster)

		// News
		r.Get("/news", h.GetNews)
	})
}

// HealthCheck reports liveness. Upstreams are not probed.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	setNoStore(w)
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": h.now().UTC().Format(time.RFC3339),
		"service":   "cfb-hq",
	})
}
