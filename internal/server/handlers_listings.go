package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/andrei/vacancy-tracker/internal/listing"
	"github.com/andrei/vacancy-tracker/internal/refresh"
	"github.com/andrei/vacancy-tracker/internal/view"
)

// ListingsResponse carries the display-ordered listings plus the
// full-collection counts, which ignore the status filter.
type ListingsResponse struct {
	Listings []listing.Listing `json:"listings"`
	Counts   view.Counts       `json:"counts"`
}

// handleListListings returns the collection in display order. An optional
// ?status=NEW|OLD narrows the listings; counts always cover everything.
func (s *Server) handleListListings(w http.ResponseWriter, r *http.Request) {
	filter, err := view.ParseStatusFilter(r.URL.Query().Get("status"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	collection := s.coord.Snapshot()
	s.jsonResponse(w, http.StatusOK, ListingsResponse{
		Listings: view.Filter(view.Order(collection), filter),
		Counts:   view.Count(collection),
	})
}

// RefreshResponse reports whether a refresh pass was started.
type RefreshResponse struct {
	Accepted bool `json:"accepted"`
}

// handleRefresh starts a background refresh. A pass already in flight
// makes this a no-op with accepted=false. The worker outlives the
// request, so it runs on a detached context.
func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	accepted := s.coord.TryRefresh(context.Background(), s.settings.Get(), func(res refresh.Result) {
		if res.Report.Partial() {
			log.Printf("[server] refresh %s completed with %d failed sub-queries", res.RunID, res.Report.Failed)
		}
	})

	status := http.StatusAccepted
	if !accepted {
		status = http.StatusConflict
	}
	s.jsonResponse(w, status, RefreshResponse{Accepted: accepted})
}

// MarkViewedRequest names the listings to transition to OLD.
type MarkViewedRequest struct {
	Keys []string `json:"keys"`
}

// MarkViewedResponse reports how many listings actually changed status.
type MarkViewedResponse struct {
	Changed int `json:"changed"`
}

func (s *Server) handleMarkViewed(w http.ResponseWriter, r *http.Request) {
	var req MarkViewedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if len(req.Keys) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "No keys provided")
		return
	}

	changed, err := s.coord.MarkViewed(r.Context(), req.Keys)
	if err != nil {
		log.Printf("[server] mark-viewed persisted in memory only: %v", err)
	}
	s.jsonResponse(w, http.StatusOK, MarkViewedResponse{Changed: changed})
}

func (s *Server) handleMarkAllViewed(w http.ResponseWriter, r *http.Request) {
	changed, err := s.coord.MarkAllViewed(r.Context())
	if err != nil {
		log.Printf("[server] mark-all-viewed persisted in memory only: %v", err)
	}
	s.jsonResponse(w, http.StatusOK, MarkViewedResponse{Changed: changed})
}
