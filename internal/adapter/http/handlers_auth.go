package adapthttp

import (
	"fmt"
	"net/http"

	"weighttracker/internal/apperror"
)

const (
	minCredentialLen = 4
	maxCredentialLen = 20
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// validateCredentials enforces the caller-side length policy before the core
// is invoked; the store itself does not police lengths.
func validateCredentials(req credentialsRequest) error {
	if l := len(req.Username); l < minCredentialLen || l > maxCredentialLen {
		return apperror.NewValidation(fmt.Sprintf("username must be between %d and %d characters", minCredentialLen, maxCredentialLen))
	}
	if l := len(req.Password); l < minCredentialLen || l > maxCredentialLen {
		return apperror.NewValidation(fmt.Sprintf("password must be between %d and %d characters", minCredentialLen, maxCredentialLen))
	}
	return nil
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req credentialsRequest
	if err := parseJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := validateCredentials(req); err != nil {
		writeError(w, err)
		return
	}

	id, err := s.accounts.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"id": id, "username": req.Username})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req credentialsRequest
	if err := parseJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := validateCredentials(req); err != nil {
		writeError(w, err)
		return
	}

	id, err := s.accounts.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	token, expiresIn, err := s.issueToken(id, req.Username)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"access_token": token,
		"token_type":   "Bearer",
		"expires_in":   expiresIn,
	})
}
