// Package listing defines the vacancy listing model and the merge engine
// that reconciles stored listings with freshly fetched batches.
//
// Status lifecycle:
//
//	NEW ──► OLD
//
// NEW is assigned at normalization time. The only transition is NEW → OLD,
// triggered by an explicit mark-viewed command. OLD is terminal; a merge
// pass never changes the status of a stored record.
package listing

import (
	"fmt"
	"strconv"
	"time"
)

// Status values mirror the status field persisted with every listing.
type Status string

const (
	StatusNew Status = "NEW"
	StatusOld Status = "OLD"
)

// ParseStatus converts a raw string to a Status, returning an error for
// unknown values.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	switch st {
	case StatusNew, StatusOld:
		return st, nil
	}
	return "", fmt.Errorf("unknown listing status %q", s)
}

// Timestamp layouts used across the module. LoadedAt carries second
// granularity; PublishedAt is truncated to a calendar date upstream.
const (
	TimeLayout = "2006-01-02 15:04:05"
	DateLayout = "2006-01-02"
)

// SalaryNotSpecified is the display sentinel used when the upstream item
// carries no salary information at all.
const SalaryNotSpecified = "not specified"

// Listing is one normalized job posting.
//
// ID is the upstream-assigned numeric identifier; zero means the upstream
// did not provide one, in which case Link acts as the natural key.
// Descriptive fields are immutable once fetched.
type Listing struct {
	ID          int64  `json:"id,omitempty"`
	Link        string `json:"link"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	City        string `json:"city"`
	Schedule    string `json:"schedule,omitempty"`
	Salary      string `json:"salary"`
	Snippet     string `json:"snippet,omitempty"`
	PublishedAt string `json:"published_at"` // YYYY-MM-DD
	LoadedAt    string `json:"loaded_at"`    // YYYY-MM-DD HH:MM:SS
	Status      Status `json:"status"`
}

// Key returns the natural key used for de-duplication: the upstream id
// when present, otherwise the canonical link.
func (l Listing) Key() string {
	if l.ID > 0 {
		return "id:" + strconv.FormatInt(l.ID, 10)
	}
	return l.Link
}

// IsNew reports whether the listing has not been viewed yet.
func (l Listing) IsNew() bool { return l.Status == StatusNew }

// LoadedTime parses LoadedAt. The zero time is returned for missing or
// malformed values so callers can treat them as oldest-possible.
func (l Listing) LoadedTime() (time.Time, bool) {
	t, err := time.Parse(TimeLayout, l.LoadedAt)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// PublishedTime parses PublishedAt, with the same zero-time fallback as
// LoadedTime.
func (l Listing) PublishedTime() (time.Time, bool) {
	t, err := time.Parse(DateLayout, l.PublishedAt)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// RecencyTime returns the timestamp used for display ordering: LoadedAt
// when parseable (it disambiguates listings published the same day),
// PublishedAt otherwise. Records with neither sort as oldest.
func (l Listing) RecencyTime() time.Time {
	if t, ok := l.LoadedTime(); ok {
		return t
	}
	if t, ok := l.PublishedTime(); ok {
		return t
	}
	return time.Time{}
}
