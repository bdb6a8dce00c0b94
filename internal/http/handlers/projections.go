package handlers

import (
	nethttp "net/http"
	"strconv"
	"strings"

	"github.com/preston-bernstein/nba-projection-service/internal/logging"
	"github.com/preston-bernstein/nba-projection-service/internal/projection"
)

const (
	defaultStat       = "Points"
	defaultBoardLimit = 20
)

type boardResponse struct {
	Stat    projection.Selector `json:"stat"`
	Date    string              `json:"date,omitempty"`
	Count   int                 `json:"count"`
	Results []projection.Result `json:"results"`
}

// Projection projects one player: /projections?player=<name>&stat=<selector>.
func (h *Handler) Projection(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)
	q := r.URL.Query()
	name := strings.TrimSpace(q.Get("player"))
	if name == "" {
		writeError(w, r, nethttp.StatusBadRequest, "missing player", logger)
		return
	}
	sel, ok := h.selector(w, r, q.Get("stat"))
	if !ok {
		return
	}
	res, found := h.projections.Project(name, sel)
	if !found {
		writeError(w, r, nethttp.StatusNotFound, "player not found", logger)
		return
	}
	logging.Info(logger, "served projection",
		logging.FieldPlayer, res.Player.Name,
		logging.FieldStat, sel.String(),
	)
	writeJSON(w, nethttp.StatusOK, res, logger)
}

// Board ranks every player on the current slate: /projections/board?stat=&limit=.
// limit=0 returns every row.
func (h *Handler) Board(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)
	q := r.URL.Query()
	sel, ok := h.selector(w, r, q.Get("stat"))
	if !ok {
		return
	}
	limit := defaultBoardLimit
	if raw := strings.TrimSpace(q.Get("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, r, nethttp.StatusBadRequest, "limit must be a non-negative integer", logger)
			return
		}
		limit = n
	}

	results := h.projections.Board(sel, limit)
	if results == nil {
		results = []projection.Result{}
	}
	resp := boardResponse{Stat: sel, Count: len(results), Results: results}
	if current, loaded := h.slate.Current(); loaded {
		resp.Date = current.Date
	}
	logging.Info(logger, "served board", logging.FieldStat, sel.String(), logging.FieldCount, len(results))
	writeJSON(w, nethttp.StatusOK, resp, logger)
}

func (h *Handler) selector(w nethttp.ResponseWriter, r *nethttp.Request, raw string) (projection.Selector, bool) {
	if strings.TrimSpace(raw) == "" {
		raw = defaultStat
	}
	sel, err := projection.ParseSelector(raw)
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
		return 0, false
	}
	return sel, true
}
