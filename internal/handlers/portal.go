package handlers

import (
	"net/http"

	"github.com/pfsn365/transfer-portal-tracker-sub001/pkg/models"
)

// GetTransferPortal returns portal entries
// Query params: team
func (h *Handler) GetTransferPortal(w http.ResponseWriter, r *http.Request) {
	ds, err := h.svc.Transfer.Players(r.Context(), r.URL.Query().Get("team"))
	if err != nil {
		status := statusFor(err)
		h.logger.Error("loading transfer portal", "status", status, "error", err)
		setNoStore(w)
		h.respondJSON(w, status, map[string]interface{}{
			"error":   unavailable("transfer portal data"),
			"players": []models.TransferPlayer{},
		})
		return
	}

	players := ds.Players
	if players == nil {
		players = []models.TransferPlayer{}
	}

	setCacheControl(w, maxAgePortal)
	h.respondJSON(w, http.StatusOK, models.TransferPortalResponse{
		Players:      players,
		UpdatedTime:  ds.FetchedAt,
		TotalPlayers: len(players),
	})
}
