package hh

import (
	"context"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/andrei/vacancy-tracker/internal/config"
	"github.com/andrei/vacancy-tracker/internal/listing"
)

// dateFromLayout is the timestamp format the upstream expects for the
// recency cutoff parameter.
const dateFromLayout = "2006-01-02T15:04:05"

// Report describes how a search went. A sub-query that failed mid-way
// still contributes the pages it managed to fetch.
type Report struct {
	SubQueries int      `json:"sub_queries"`
	Failed     int      `json:"failed"`
	Errors     []string `json:"errors,omitempty"`
}

// Partial reports whether at least one sub-query failed.
func (r Report) Partial() bool { return r.Failed > 0 }

// Result is the outcome of one search: the normalized, link-deduped union
// of all sub-queries plus the failure report.
type Result struct {
	Listings []listing.Listing
	Report   Report
}

// Search runs every sub-query derived from the settings, paginating each
// within the page budget, and returns the deduplicated union. now anchors
// both the recency cutoff (now - days) and the LoadedAt stamp on every
// normalized listing.
//
// Search never returns an error: transport and parse failures degrade to
// fewer results and are recorded in the report.
func (c *Client) Search(ctx context.Context, s config.Settings, now time.Time) *Result {
	dateFrom := now.AddDate(0, 0, -s.Days).Format(dateFromLayout)
	queries := SubQueries(s)

	batches := make([][]listing.Listing, len(queries))
	errs := make([]error, len(queries))

	g, gctx := errgroup.WithContext(ctx)
	for i, q := range queries {
		g.Go(func() error {
			batch, err := c.runSubQuery(gctx, q, dateFrom, now)
			batches[i] = batch
			errs[i] = err
			// Failures stay local to the sub-query.
			return nil
		})
	}
	_ = g.Wait()

	result := &Result{Report: Report{SubQueries: len(queries)}}
	seen := make(map[string]struct{})
	for i, batch := range batches {
		if errs[i] != nil {
			log.Printf("[hh] sub-query %d/%d failed: %v (keeping partial results)", i+1, len(queries), errs[i])
			result.Report.Failed++
			result.Report.Errors = append(result.Report.Errors, errs[i].Error())
		}
		for _, l := range batch {
			if _, ok := seen[l.Key()]; ok {
				continue
			}
			seen[l.Key()] = struct{}{}
			result.Listings = append(result.Listings, l)
		}
	}

	return result
}
