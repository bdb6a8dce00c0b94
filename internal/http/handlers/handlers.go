package handlers

import (
	"log/slog"
	nethttp "net/http"
	"strings"
	"time"

	appplayers "github.com/preston-bernstein/nba-projection-service/internal/app/players"
	appprojections "github.com/preston-bernstein/nba-projection-service/internal/app/projections"
	appslate "github.com/preston-bernstein/nba-projection-service/internal/app/slate"
	appteams "github.com/preston-bernstein/nba-projection-service/internal/app/teams"
	"github.com/preston-bernstein/nba-projection-service/internal/poller"
)

type nowFunc func() time.Time

// Services groups the app services the read endpoints are served from.
type Services struct {
	Players     *appplayers.Service
	Teams       *appteams.Service
	Slate       *appslate.Service
	Projections *appprojections.Service
}

// Handler wires HTTP routes to the app services.
type Handler struct {
	players     *appplayers.Service
	teams       *appteams.Service
	slate       *appslate.Service
	projections *appprojections.Service
	logger      *slog.Logger
	now         nowFunc
	statusFn    func() poller.Status
}

// NewHandler constructs a Handler with defaults. statusFn may be nil, in which case /ready always succeeds.
func NewHandler(svc Services, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		players:     svc.Players,
		teams:       svc.Teams,
		slate:       svc.Slate,
		projections: svc.Projections,
		logger:      logger,
		now:         time.Now,
		statusFn:    statusFn,
	}
}

// ServeHTTP dispatches by path for callers that mount the handler directly.
func (h *Handler) ServeHTTP(w nethttp.ResponseWriter, r *nethttp.Request) {
	switch path := r.URL.Path; {
	case path == "/health":
		h.Health(w, r)
	case path == "/ready":
		h.Ready(w, r)
	case path == "/teams":
		h.Teams(w, r)
	case path == "/players":
		h.Players(w, r)
	case strings.HasPrefix(path, "/players/"):
		h.PlayerByName(w, r)
	case path == "/slate":
		h.Slate(w, r)
	case path == "/projections":
		h.Projection(w, r)
	case path == "/projections/board":
		h.Board(w, r)
	default:
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports whether the slate poller is healthy enough to serve matchups.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]any{"status": "ready", "poller": status}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}
