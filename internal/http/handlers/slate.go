package handlers

import (
	"errors"
	"io/fs"
	"log/slog"
	nethttp "net/http"
	"strings"

	appslate "github.com/preston-bernstein/nba-projection-service/internal/app/slate"
	"github.com/preston-bernstein/nba-projection-service/internal/logging"
	"github.com/preston-bernstein/nba-projection-service/internal/timeutil"
)

// Slate returns the current slate, or an archived one when ?date= is given.
func (h *Handler) Slate(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)
	date := strings.TrimSpace(r.URL.Query().Get("date"))

	current, loaded := h.slate.Current()
	if date == "" || (loaded && current.Date == date) {
		if !loaded {
			writeError(w, r, nethttp.StatusServiceUnavailable, "slate not loaded", logger)
			return
		}
		logging.Info(logger, "served current slate", logging.FieldDate, current.Date, logging.FieldCount, len(current.Games))
		writeJSON(w, nethttp.StatusOK, current, logger)
		return
	}

	if !timeutil.IsDate(date) {
		writeError(w, r, nethttp.StatusBadRequest, "invalid date format (expected YYYY-MM-DD)", logger)
		return
	}
	archived, err := h.slate.ForDate(date)
	switch {
	case err == nil:
	case errors.Is(err, appslate.ErrNoArchive):
		writeError(w, r, nethttp.StatusServiceUnavailable, "slate archive not configured", logger)
		return
	case errors.Is(err, fs.ErrNotExist):
		writeError(w, r, nethttp.StatusNotFound, "no slate archived for date", logger)
		return
	default:
		logging.Warn(logger, "slate snapshot load failed", slog.String(logging.FieldDate, date), slog.Any("error", err))
		writeError(w, r, nethttp.StatusBadGateway, "snapshot unavailable", logger)
		return
	}
	logging.Info(logger, "served archived slate", logging.FieldDate, date, logging.FieldCount, len(archived.Games))
	writeJSON(w, nethttp.StatusOK, archived, logger)
}
