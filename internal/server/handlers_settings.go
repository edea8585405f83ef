package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/andrei/vacancy-tracker/internal/config"
)

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.settings.Get())
}

// handleUpdateSettings replaces the search settings. The new value is
// validated and persisted before it takes effect; on failure the previous
// settings stay active.
func (s *Server) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var next config.Settings
	if err := json.NewDecoder(r.Body).Decode(&next); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := s.settings.Update(next); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			s.errorResponse(w, http.StatusBadRequest, "Invalid settings: "+err.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save settings: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, s.settings.Get())
}
