// Package adapthttp implements the driving HTTP adapter: the caller layer
// that validates user input, invokes the core services, and renders their
// results. The core itself never sees an HTTP type.
package adapthttp

import (
	"net/http"

	"weighttracker/internal/app"
	"weighttracker/internal/config"
)

// Server routes requests to the application services.
type Server struct {
	accounts *app.AccountService
	ledger   *app.LedgerService
	authCfg  config.AuthConfig
}

// New creates a Server wired to the given application services.
func New(accounts *app.AccountService, ledger *app.LedgerService, authCfg config.AuthConfig) *Server {
	return &Server{accounts: accounts, ledger: ledger, authCfg: authCfg}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	api.HandleFunc("/auth/register", s.handleRegister)
	api.HandleFunc("/auth/login", s.handleLogin)

	api.Handle("/goal", s.requireAuth(http.HandlerFunc(s.handleGoal)))
	api.Handle("/weights", s.requireAuth(http.HandlerFunc(s.handleWeights)))
	api.Handle("/weights/", s.requireAuth(http.HandlerFunc(s.handleWeightByID)))
	api.Handle("/account", s.requireAuth(http.HandlerFunc(s.handleAccount)))

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", api))

	return s.loggingMiddleware(root)
}
