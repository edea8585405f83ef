package hh

import (
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/andrei/vacancy-tracker/internal/listing"
)

// normalizeItem maps one raw search item to a Listing. Status is forced to
// NEW and LoadedAt is set to the adapter's invocation time.
func normalizeItem(item apiItem, loadedAt time.Time) listing.Listing {
	id, _ := strconv.ParseInt(item.ID, 10, 64)

	return listing.Listing{
		ID:          id,
		Link:        item.AlternateURL,
		Title:       item.Name,
		Company:     item.Employer.Name,
		City:        item.Area.Name,
		Schedule:    item.Schedule.Name,
		Salary:      formatSalary(item.Salary),
		Snippet:     stripMarkup(item.Snippet.Requirement),
		PublishedAt: truncateToDate(item.PublishedAt),
		LoadedAt:    loadedAt.Format(listing.TimeLayout),
		Status:      listing.StatusNew,
	}
}

// formatSalary renders "{from} - {to} {currency}" with empty components
// omitted, or the not-specified sentinel when there is no salary data.
func formatSalary(s *apiSalary) string {
	if s == nil {
		return listing.SalaryNotSpecified
	}

	var parts []string
	if s.From != nil {
		parts = append(parts, strconv.Itoa(*s.From))
	}
	if s.To != nil {
		parts = append(parts, strconv.Itoa(*s.To))
	}

	out := strings.Join(parts, " - ")
	if out == "" {
		return listing.SalaryNotSpecified
	}
	if s.Currency != "" {
		out += " " + s.Currency
	}
	return out
}

// truncateToDate cuts an upstream timestamp like
// "2024-03-01T12:34:56+0300" down to date granularity.
func truncateToDate(published string) string {
	if len(published) < len(listing.DateLayout) {
		return ""
	}
	return published[:len(listing.DateLayout)]
}

// stripMarkup removes the <highlighttext> wrappers (and any other markup)
// the search API embeds in snippet fields, returning plain text.
func stripMarkup(s string) string {
	if s == "" || !strings.Contains(s, "<") {
		return s
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	return strings.TrimSpace(doc.Text())
}
