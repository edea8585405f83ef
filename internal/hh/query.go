package hh

import (
	"strings"

	"github.com/andrei/vacancy-tracker/internal/config"
)

// Upstream area codes for the supported regions.
const (
	AreaRussia  = 113
	AreaBelarus = 16
)

// Upstream schedule values for the supported work modes.
const (
	ScheduleRemote = "remote"
	ScheduleHybrid = "hybrid"
	ScheduleOffice = "fullDay"
)

// BuildSearchText builds the exclusion-aware search string:
// "keyword NOT term1 NOT term2 ...", or just the keyword when there are no
// exclusion terms.
func BuildSearchText(query string, exclude []string) string {
	if len(exclude) == 0 {
		return query
	}
	var b strings.Builder
	b.WriteString(query)
	for _, term := range exclude {
		b.WriteString(" NOT ")
		b.WriteString(term)
	}
	return b.String()
}

// SubQuery is one upstream call plan. An empty Schedule means the schedule
// filter is omitted.
type SubQuery struct {
	Text     string
	Areas    []int
	Schedule string
}

// SubQueries translates settings into upstream call plans.
//
// The search API cannot express an OR across the schedule filter in a
// single call, so a proper subset of work modes fans out into one call per
// selected mode (the results are unioned and deduped by the caller). When
// every supported mode is selected (or none)the filter is omitted
// entirely instead of issuing three redundant calls.
func SubQueries(s config.Settings) []SubQuery {
	text := BuildSearchText(s.Query, s.ExcludeTerms())

	var areas []int
	if s.Russia {
		areas = append(areas, AreaRussia)
	}
	if s.Belarus {
		areas = append(areas, AreaBelarus)
	}

	var schedules []string
	if s.Remote {
		schedules = append(schedules, ScheduleRemote)
	}
	if s.Hybrid {
		schedules = append(schedules, ScheduleHybrid)
	}
	if s.Office {
		schedules = append(schedules, ScheduleOffice)
	}

	if len(schedules) == 0 || len(schedules) == 3 {
		return []SubQuery{{Text: text, Areas: areas}}
	}

	queries := make([]SubQuery, 0, len(schedules))
	for _, sched := range schedules {
		queries = append(queries, SubQuery{Text: text, Areas: areas, Schedule: sched})
	}
	return queries
}
