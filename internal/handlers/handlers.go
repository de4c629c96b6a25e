// Package handlers implements the HTTP API.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"github.com/pfsn365/transfer-portal-tracker-sub001/internal/players"
	"github.com/pfsn365/transfer-portal-tracker-sub001/internal/schedule"
	"github.com/pfsn365/transfer-portal-tracker-sub001/internal/teams"
	"github.com/pfsn365/transfer-portal-tracker-sub001/internal/transfer"
	"github.com/pfsn365/transfer-portal-tracker-sub001/internal/upstream"
	"github.com/pfsn365/transfer-portal-tracker-sub001/pkg/models"
)

// Cache-Control lifetimes, in seconds
const (
	maxAgeLive     = 30
	maxAgeSchedule = 300
	maxAgePortal   = 600
	maxAgeNews     = 600
	maxAgeRoster   = 3600
	maxAgeStatic   = 86400
)

// PlayerService serves rosters, player lists and profiles
type PlayerService interface {
	List(ctx context.Context, q players.Query) (models.PlayersPage, error)
	Profile(ctx context.Context, slug string) (*models.PlayerProfile, error)
	TeamRoster(ctx context.Context, teamSlug string) (models.Team, []models.CachedPlayer, error)
}

// TransferService serves the transfer portal dataset
type TransferService interface {
	Players(ctx context.Context, team string) (transfer.Dataset, error)
}

// ScheduleService serves schedules, scoreboards and polls
type ScheduleService interface {
	Games(ctx context.Context, q schedule.Query) ([]models.ScheduleGame, error)
	Scoreboard(ctx context.Context, group string) ([]models.ScheduleGame, error)
	Rankings(ctx context.Context) ([]models.Poll, error)
}

// NewsService serves the news feed
type NewsService interface {
	Latest(ctx context.Context, limit int) ([]models.NewsArticle, error)
}

// Services groups the handler dependencies
type Services struct {
	Players  PlayerService
	Transfer TransferService
	Schedule ScheduleService
	News     NewsService
	Teams    *teams.Registry
}

// Handler contains dependencies for HTTP handlers
type Handler struct {
	svc    Services
	logger *slog.Logger
	now    func() time.Time
}

// NewHandler creates a new handler with dependencies
func NewHandler(svc Services, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		svc:    svc,
		logger: logger,
		now:    time.Now,
	}
}

// statusFor maps a service error to an HTTP status
func statusFor(err error) int {
	var statusErr *upstream.StatusError

	switch {
	case errors.Is(err, players.ErrPlayerNotFound), errors.Is(err, teams.ErrTeamNotFound):
		return http.StatusNotFound
	case errors.Is(err, schedule.ErrInvalidQuery):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.As(err, &statusErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// unavailable is the client-facing message for upstream failures
func unavailable(what string) string {
	return what + " temporarily unavailable, try again"
}

func setCacheControl(w http.ResponseWriter, seconds int) {
	w.Header().Set("Cache-Control",
		fmt.Sprintf("public, s-maxage=%d, stale-while-revalidate=%d", seconds, seconds))
}

func setNoStore(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
}

func parseIntParam(r *http.Request, param string, defaultValue int) int {
	valueStr := r.URL.Query().Get(param)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func parseBoolParam(r *http.Request, param string) bool {
	switch strings.ToLower(r.URL.Query().Get(param)) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("encoding response", "error", err)
	}
}

func (h *Handler) respondError(w http.ResponseWriter, status int, message string, err error) {
	setNoStore(w)

	errResp := models.ErrorResponse{
		Error: message,
		Code:  status,
	}
	if status == http.StatusBadRequest && err != nil {
		errResp.Message = err.Error()
	}

	if err != nil && status >= http.StatusInternalServerError {
		h.logger.Error(message, "status", status, "error", err)
	}

	h.respondJSON(w, status, errResp)
}
