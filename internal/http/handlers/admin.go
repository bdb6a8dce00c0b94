package handlers

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/preston-bernstein/nba-projection-service/internal/domain/games"
	"github.com/preston-bernstein/nba-projection-service/internal/http/requestutil"
	"github.com/preston-bernstein/nba-projection-service/internal/logging"
	"github.com/preston-bernstein/nba-projection-service/internal/poller"
	"github.com/preston-bernstein/nba-projection-service/internal/providers"
)

// Refresher fetches the slate out of band and installs it.
type Refresher interface {
	Refresh(ctx context.Context) (games.Slate, error)
}

// AdminHandler exposes admin-only endpoints.
type AdminHandler struct {
	refresher Refresher
	token     string
	logger    *slog.Logger
}

// NewAdminHandler constructs an AdminHandler. An empty token rejects every request.
func NewAdminHandler(refresher Refresher, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		refresher: refresher,
		token:     token,
		logger:    logger,
	}
}

// RefreshSlate fetches the slate immediately and replaces the served one.
// Guarded by ADMIN_TOKEN; returns 401 if missing or invalid.
func (h *AdminHandler) RefreshSlate(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String(logging.FieldClientIP, requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	if h.refresher == nil {
		writeError(w, r, http.StatusServiceUnavailable, "slate refresh not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	slate, err := h.refresher.Refresh(r.Context())
	if err != nil {
		logging.Warn(logger, "admin slate refresh failed", slog.Any("error", err))
		if rlErr, ok := providers.AsRateLimitError(err); ok {
			if secs := retryAfterSeconds(rlErr.RetryAfter); secs > 0 {
				w.Header().Set("Retry-After", strconv.Itoa(secs))
			}
			writeError(w, r, http.StatusTooManyRequests, "slate refreshed too recently", logger)
			return
		}
		if errors.Is(err, poller.ErrRefreshInProgress) {
			writeError(w, r, http.StatusConflict, "slate refresh already in progress", logger)
			return
		}
		writeError(w, r, http.StatusBadGateway, "failed to fetch slate", logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"date":   slate.Date,
		"source": slate.Source,
		"games":  len(slate.Games),
		"status": "ok",
	}, logger)
	logging.Info(logger, "admin slate refreshed",
		slog.String(logging.FieldDate, slate.Date),
		slog.Int(logging.FieldCount, len(slate.Games)),
	)
}

// retryAfterSeconds rounds up so clients never retry early.
func retryAfterSeconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int((d + time.Second - 1) / time.Second)
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	got := requestutil.BearerToken(r)
	return subtle.ConstantTimeCompare([]byte(got), []byte(h.token)) == 1
}
