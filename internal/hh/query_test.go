package hh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrei/vacancy-tracker/internal/config"
)

func TestBuildSearchText(t *testing.T) {
	cases := []struct {
		name    string
		query   string
		exclude []string
		want    string
	}{
		{"no exclusions", "Java developer", nil, "Java developer"},
		{"one exclusion", "Java developer", []string{"Android"}, "Java developer NOT Android"},
		{
			"several exclusions",
			"Java developer",
			[]string{"Android", "QA", "Tester"},
			"Java developer NOT Android NOT QA NOT Tester",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, BuildSearchText(c.query, c.exclude))
		})
	}
}

func baseSettings() config.Settings {
	s := config.DefaultSettings()
	s.Query = "Java developer"
	s.Exclude = ""
	s.Remote, s.Hybrid, s.Office = false, false, false
	s.Russia, s.Belarus = true, false
	return s
}

func TestSubQueries_NoModesOmitsScheduleFilter(t *testing.T) {
	queries := SubQueries(baseSettings())

	require.Len(t, queries, 1)
	assert.Empty(t, queries[0].Schedule)
	assert.Equal(t, []int{AreaRussia}, queries[0].Areas)
}

func TestSubQueries_AllModesOmitsScheduleFilter(t *testing.T) {
	s := baseSettings()
	s.Remote, s.Hybrid, s.Office = true, true, true

	queries := SubQueries(s)

	require.Len(t, queries, 1)
	assert.Empty(t, queries[0].Schedule)
}

func TestSubQueries_SingleModeSingleFilteredCall(t *testing.T) {
	s := baseSettings()
	s.Remote = true

	queries := SubQueries(s)

	require.Len(t, queries, 1)
	assert.Equal(t, ScheduleRemote, queries[0].Schedule)
}

func TestSubQueries_SubsetFansOutPerMode(t *testing.T) {
	s := baseSettings()
	s.Remote, s.Office = true, true

	queries := SubQueries(s)

	require.Len(t, queries, 2)
	assert.Equal(t, ScheduleRemote, queries[0].Schedule)
	assert.Equal(t, ScheduleOffice, queries[1].Schedule)
}

func TestSubQueries_RegionFlags(t *testing.T) {
	s := baseSettings()
	s.Russia, s.Belarus = true, true

	queries := SubQueries(s)

	require.Len(t, queries, 1)
	assert.Equal(t, []int{AreaRussia, AreaBelarus}, queries[0].Areas)
}

func TestSubQueries_CarriesExclusionText(t *testing.T) {
	s := baseSettings()
	s.Exclude = "Android, QA"

	queries := SubQueries(s)

	require.Len(t, queries, 1)
	assert.Equal(t, "Java developer NOT Android NOT QA", queries[0].Text)
}
