package handlers

import (
	nethttp "net/http"
	"net/url"
	"strings"

	"github.com/preston-bernstein/nba-projection-service/internal/domain/players"
	"github.com/preston-bernstein/nba-projection-service/internal/domain/teams"
)

type teamsResponse struct {
	Teams []teams.Team `json:"teams"`
}

type playersResponse struct {
	Team    string             `json:"team,omitempty"`
	Count   int                `json:"count"`
	Players []players.Baseline `json:"players"`
}

// Teams lists the team directory.
func (h *Handler) Teams(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	writeJSON(w, nethttp.StatusOK, teamsResponse{Teams: h.teams.Teams()}, h.logger)
}

// Players lists rostered baselines, optionally filtered by ?team=.
func (h *Handler) Players(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	team := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("team")))
	list := h.players.Players(team)
	if list == nil {
		list = []players.Baseline{}
	}
	writeJSON(w, nethttp.StatusOK, playersResponse{Team: team, Count: len(list), Players: list}, h.logger)
}

// PlayerByName returns one baseline row. Expects path /players/{name}.
func (h *Handler) PlayerByName(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	raw := strings.TrimPrefix(r.URL.EscapedPath(), "/players/")
	name, err := url.PathUnescape(raw)
	name = strings.TrimSpace(name)
	if err != nil || name == "" || strings.Contains(name, "/") {
		writeError(w, r, nethttp.StatusBadRequest, "invalid player name", h.logger)
		return
	}
	p, ok := h.players.PlayerByName(name)
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "player not found", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, p, h.logger)
}
