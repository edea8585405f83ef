package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/andrei/vacancy-tracker/internal/listing"
	"github.com/andrei/vacancy-tracker/internal/view"
)

// HourlyStatsResponse is the hourly chart payload.
type HourlyStatsResponse struct {
	Date    string            `json:"date,omitempty"`
	Buckets []view.HourBucket `json:"buckets"`
}

// handleHourlyStats returns 24 hour buckets of loaded listings. An
// optional ?date=YYYY-MM-DD restricts counting to that calendar date.
func (s *Server) handleHourlyStats(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date != "" {
		if _, err := time.Parse(listing.DateLayout, date); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
			return
		}
	}

	s.jsonResponse(w, http.StatusOK, HourlyStatsResponse{
		Date:    date,
		Buckets: view.HourlyBuckets(s.coord.Snapshot(), date),
	})
}

// DailyStatsResponse is the daily chart payload. Buckets is empty when no
// listing carries a usable load timestamp.
type DailyStatsResponse struct {
	Days    int              `json:"days"`
	Buckets []view.DayBucket `json:"buckets"`
}

// handleDailyStats returns zero-filled day buckets for the last ?days=N
// days (default 7), ending at the most recent loaded date.
func (s *Server) handleDailyStats(w http.ResponseWriter, r *http.Request) {
	days := 7
	if raw := r.URL.Query().Get("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 365 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid days, expected 1-365")
			return
		}
		days = n
	}

	buckets := view.DailyBuckets(s.coord.Snapshot(), days)
	if buckets == nil {
		buckets = []view.DayBucket{}
	}
	s.jsonResponse(w, http.StatusOK, DailyStatsResponse{Days: days, Buckets: buckets})
}
