package handlers

import (
	"net/http"

	"github.com/pfsn365/transfer-portal-tracker-sub001/internal/schedule"
	"github.com/pfsn365/transfer-portal-tracker-sub001/pkg/models"
)

// GetSchedule returns games
// Query params: week, date, month, fetchAll, seasonType, group
func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := schedule.Query{
		Week:       parseIntParam(r, "week", 0),
		Date:       q.Get("date"),
		Month:      q.Get("month"),
		FetchAll:   parseBoolParam(r, "fetchAll"),
		SeasonType: parseIntParam(r, "seasonType", 0),
		Group:      q.Get("group"),
	}

	games, err := h.svc.Schedule.Games(r.Context(), query)
	h.writeGames(w, games, err)
}

// GetScoreboard returns the current scoreboard
// Query params: group
func (h *Handler) GetScoreboard(w http.ResponseWriter, r *http.Request) {
	games, err := h.svc.Schedule.Scoreboard(r.Context(), r.URL.Query().Get("group"))
	h.writeGames(w, games, err)
}

func (h *Handler) writeGames(w http.ResponseWriter, games []models.ScheduleGame, err error) {
	if games == nil {
		games = []models.ScheduleGame{}
	}

	resp := models.ScheduleResponse{
		Games:        games,
		TotalGames:   len(games),
		HasLiveGames: models.HasLive(games),
		LastUpdated:  h.now().UTC(),
	}

	if err != nil {
		status := statusFor(err)
		if status == http.StatusBadRequest {
			h.respondError(w, status, "invalid schedule query", err)
			return
		}
		h.logger.Error("loading schedule", "status", status, "error", err)
		resp.Error = unavailable("schedule data")
		setNoStore(w)
		h.respondJSON(w, status, resp)
		return
	}

	if resp.HasLiveGames {
		setCacheControl(w, maxAgeLive)
	} else {
		setCacheControl(w, maxAgeSchedule)
	}
	h.respondJSON(w, http.StatusOK, resp)
}

// GetRankings returns the current polls
func (h *Handler) GetRankings(w http.ResponseWriter, r *http.Request) {
	polls, err := h.svc.Schedule.Rankings(r.Context())
	if err != nil {
		h.respondError(w, statusFor(err), unavailable("rankings"), err)
		return
	}

	setCacheControl(w, maxAgeRoster)
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"polls":       polls,
		"lastUpdated": h.now().UTC(),
	})
}
