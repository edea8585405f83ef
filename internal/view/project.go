// Package view derives presentation-ready projections from the
// authoritative listing collection: display ordering, counts, status
// filtering, and time-bucketed aggregates for charts. Nothing in this
// package mutates the collection it is given.
package view

import (
	"fmt"
	"sort"

	"github.com/andrei/vacancy-tracker/internal/listing"
)

// StatusFilter narrows the displayed set without affecting counts.
type StatusFilter string

const (
	FilterAll StatusFilter = "ALL"
	FilterNew StatusFilter = "NEW"
	FilterOld StatusFilter = "OLD"
)

// ParseStatusFilter converts a raw string to a StatusFilter. An empty
// string means ALL.
func ParseStatusFilter(s string) (StatusFilter, error) {
	if s == "" {
		return FilterAll, nil
	}
	f := StatusFilter(s)
	switch f {
	case FilterAll, FilterNew, FilterOld:
		return f, nil
	}
	return "", fmt.Errorf("unknown status filter %q", s)
}

// Counts holds the aggregate numbers shown next to the table. They always
// reflect the full collection, never a filtered projection.
type Counts struct {
	Total int `json:"total"`
	New   int `json:"new"`
}

// Count returns the totals for a collection.
func Count(collection []listing.Listing) Counts {
	c := Counts{Total: len(collection)}
	for _, l := range collection {
		if l.IsNew() {
			c.New++
		}
	}
	return c
}

// Order returns a copy of the collection in display order: NEW before OLD,
// then most-recent first within each status group. Recency uses LoadedAt
// when parseable and PublishedAt as fallback; records with neither sort
// last. The input slice is left untouched.
func Order(collection []listing.Listing) []listing.Listing {
	ordered := make([]listing.Listing, len(collection))
	copy(ordered, collection)

	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.IsNew() != b.IsNew() {
			return a.IsNew()
		}
		return a.RecencyTime().After(b.RecencyTime())
	})

	return ordered
}

// Filter returns the listings matching the given status filter. FilterAll
// returns a copy of the input.
func Filter(collection []listing.Listing, f StatusFilter) []listing.Listing {
	out := make([]listing.Listing, 0, len(collection))
	for _, l := range collection {
		switch f {
		case FilterNew:
			if !l.IsNew() {
				continue
			}
		case FilterOld:
			if l.IsNew() {
				continue
			}
		}
		out = append(out, l)
	}
	return out
}
