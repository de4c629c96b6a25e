package handlers

import (
	"net/http"

	"github.com/pfsn365/transfer-portal-tracker-sub001/internal/news"
	"github.com/pfsn365/transfer-portal-tracker-sub001/pkg/models"
)

// GetNews returns the latest articles
// Query params: limit
func (h *Handler) GetNews(w http.ResponseWriter, r *http.Request) {
	articles, err := h.svc.News.Latest(r.Context(), parseIntParam(r, "limit", news.DefaultLimit))
	if articles == nil {
		articles = []models.NewsArticle{}
	}

	if err != nil {
		status := statusFor(err)
		h.logger.Error("loading news", "status", status, "error", err)
		setNoStore(w)
		h.respondJSON(w, status, map[string]interface{}{
			"error":    unavailable("news"),
			"articles": articles,
		})
		return
	}

	setCacheControl(w, maxAgeNews)
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"articles":      articles,
		"totalArticles": len(articles),
	})
}
