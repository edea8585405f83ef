// Package observability provides formatted output utilities for the CLI
// commands.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/andrei/vacancy-tracker/internal/listing"
	"github.com/andrei/vacancy-tracker/internal/refresh"
	"github.com/andrei/vacancy-tracker/internal/view"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 72
	// maxListingsToShow is the default number of listings to display
	maxListingsToShow = 10
)

// Printer handles formatted output for CLI commands
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRefreshSummary outputs a human-readable summary of one refresh run.
func (p *Printer) PrintRefreshSummary(res refresh.Result) {
	var sb strings.Builder

	counts := view.Count(res.Merged)
	sb.WriteString(fmt.Sprintf("Run:        %s\n", res.RunID))
	sb.WriteString(fmt.Sprintf("New:        %d\n", res.NewCount))
	sb.WriteString(fmt.Sprintf("Total:      %d (%d unviewed)\n", counts.Total, counts.New))
	sb.WriteString(fmt.Sprintf("Sub-queries: %d", res.Report.SubQueries))
	if res.Report.Partial() {
		sb.WriteString(fmt.Sprintf(" (%d failed)", res.Report.Failed))
	}
	sb.WriteString("\n")

	if res.Report.Partial() {
		sb.WriteString("\nFailures:\n")
		count := min(len(res.Report.Errors), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", res.Report.Errors[i]))
		}
		if len(res.Report.Errors) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(res.Report.Errors)-3))
		}
	}
	if res.SaveErr != nil {
		sb.WriteString(fmt.Sprintf("\n⚠ Save failed: %v\n", res.SaveErr))
		sb.WriteString("  Results are held in memory only for this run.\n")
	}

	p.printBox("REFRESH SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintListings outputs the collection in display order, NEW first.
func (p *Printer) PrintListings(collection []listing.Listing) {
	counts := view.Count(collection)
	if counts.Total == 0 {
		p.printBox("LISTINGS", "No listings loaded yet. Run a refresh first.")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total: %d   New: %d\n\n", counts.Total, counts.New))

	ordered := view.Order(collection)
	count := min(len(ordered), maxListingsToShow)
	for i := 0; i < count; i++ {
		l := ordered[i]
		marker := " "
		if l.IsNew() {
			marker = "●"
		}
		title := l.Title
		if len(title) > 45 {
			title = title[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("%s %s\n", marker, title))
		sb.WriteString(fmt.Sprintf("  %s · %s · %s\n", l.Company, l.City, l.Salary))
		sb.WriteString(fmt.Sprintf("  %s\n", l.Link))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(ordered) > maxListingsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more listings", len(ordered)-maxListingsToShow))
	}

	p.printBox("LISTINGS", sb.String())
}

// PrintDailyBuckets outputs the daily load counts as a text bar chart.
func (p *Printer) PrintDailyBuckets(buckets []view.DayBucket) {
	if len(buckets) == 0 {
		p.printBox("LISTINGS PER DAY", "No dated listings to chart.")
		return
	}

	peak := 0
	for _, b := range buckets {
		if b.Count > peak {
			peak = b.Count
		}
	}

	var sb strings.Builder
	for i, b := range buckets {
		sb.WriteString(fmt.Sprintf("%s  %s %d", b.Date, bar(b.Count, peak, 40), b.Count))
		if i < len(buckets)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("LISTINGS PER DAY", sb.String())
}

// PrintHourlyBuckets outputs the hourly load counts as a text bar chart.
// Leading and trailing empty hours are trimmed.
func (p *Printer) PrintHourlyBuckets(buckets []view.HourBucket, date string) {
	first, last := -1, -1
	peak := 0
	for _, b := range buckets {
		if b.Count > 0 {
			if first == -1 {
				first = b.Hour
			}
			last = b.Hour
		}
		if b.Count > peak {
			peak = b.Count
		}
	}

	title := "LISTINGS PER HOUR"
	if date != "" {
		title += " · " + date
	}
	if first == -1 {
		p.printBox(title, "No dated listings to chart.")
		return
	}

	var sb strings.Builder
	for _, b := range buckets {
		if b.Hour < first || b.Hour > last {
			continue
		}
		sb.WriteString(fmt.Sprintf("%02d:00  %s %d", b.Hour, bar(b.Count, peak, 40), b.Count))
		if b.Hour < last {
			sb.WriteString("\n")
		}
	}

	p.printBox(title, sb.String())
}

func bar(count, peak, width int) string {
	if peak == 0 || count == 0 {
		return ""
	}
	n := count * width / peak
	if n == 0 {
		n = 1
	}
	return strings.Repeat("█", n)
}
