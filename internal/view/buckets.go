package view

import (
	"time"

	"github.com/andrei/vacancy-tracker/internal/listing"
)

// DayBucket is one point of the daily chart.
type DayBucket struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
}

// HourBucket is one point of the hourly chart.
type HourBucket struct {
	Hour  int `json:"hour"` // 0..23
	Count int `json:"count"`
}

// HourlyBuckets buckets listings by the hour of their LoadedAt timestamp.
// When date is non-empty (YYYY-MM-DD) only listings loaded on that
// calendar date are counted; otherwise all dates are pooled into the same
// 24 buckets. Listings with a missing or malformed LoadedAt are skipped.
func HourlyBuckets(collection []listing.Listing, date string) []HourBucket {
	buckets := make([]HourBucket, 24)
	for h := range buckets {
		buckets[h].Hour = h
	}

	for _, l := range collection {
		t, ok := l.LoadedTime()
		if !ok {
			continue
		}
		if date != "" && t.Format(listing.DateLayout) != date {
			continue
		}
		buckets[t.Hour()].Count++
	}

	return buckets
}

// DailyBuckets buckets listings by the calendar date of LoadedAt over the
// last days days, ending at the latest loaded date present in the
// collection. Every day in the range gets a bucket even when its count is
// zero. Returns nil when no listing carries a parseable LoadedAt.
func DailyBuckets(collection []listing.Listing, days int) []DayBucket {
	if days < 1 {
		days = 1
	}

	counts := make(map[string]int)
	var latest time.Time
	for _, l := range collection {
		t, ok := l.LoadedTime()
		if !ok {
			continue
		}
		day := t.Truncate(24 * time.Hour)
		counts[t.Format(listing.DateLayout)]++
		if day.After(latest) {
			latest = day
		}
	}
	if len(counts) == 0 {
		return nil
	}

	buckets := make([]DayBucket, 0, days)
	for i := days - 1; i >= 0; i-- {
		d := latest.AddDate(0, 0, -i)
		key := d.Format(listing.DateLayout)
		buckets = append(buckets, DayBucket{Date: key, Count: counts[key]})
	}

	return buckets
}
