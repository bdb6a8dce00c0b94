package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/nba-projection-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux. admin may be nil to leave the admin route unmounted.
func NewRouter(handler *handlers.Handler, admin *handlers.AdminHandler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/teams", handler.Teams)
	mux.HandleFunc("/players", handler.Players)
	mux.HandleFunc("/players/", handler.PlayerByName)
	mux.HandleFunc("/slate", handler.Slate)
	mux.HandleFunc("/projections", handler.Projection)
	mux.HandleFunc("/projections/board", handler.Board)
	if admin != nil {
		mux.HandleFunc("/admin/slate/refresh", admin.RefreshSlate)
	}
	return mux
}
