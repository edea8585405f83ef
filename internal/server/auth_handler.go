package server

import (
	"encoding/json"
	"net/http"
	"strings"
)

// LoginRequest is the body for /auth/login.
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Token string `json:"token"`
}

// handleLogin exchanges the admin password for a bearer token. When auth
// is not configured the endpoint reports that instead of issuing tokens.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if !s.auth.Enabled() {
		s.errorResponse(w, http.StatusNotFound, "Authentication is not configured")
		return
	}

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if !s.auth.VerifyPassword(req.Password) {
		s.errorResponse(w, http.StatusUnauthorized, "Invalid password")
		return
	}

	token, err := s.jwtService.GenerateToken()
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}
	s.jsonResponse(w, http.StatusOK, LoginResponse{Token: token})
}

// requireAuth guards mutating endpoints with bearer-token validation.
// When no admin credential is configured the tracker runs in local
// single-user mode and the guard is a pass-through.
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.auth.Enabled() {
			next(w, r)
			return
		}

		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			s.errorResponse(w, http.StatusUnauthorized, "Missing bearer token")
			return
		}
		if err := s.jwtService.ValidateToken(token); err != nil {
			s.errorResponse(w, http.StatusUnauthorized, "Invalid token")
			return
		}
		next(w, r)
	}
}
