package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge_EmptyBatchIsIdentity(t *testing.T) {
	previous := []Listing{
		{Link: "https://hh.ru/vacancy/1", Status: StatusOld},
		{Link: "https://hh.ru/vacancy/2", Status: StatusNew},
	}

	merged, added := Merge(previous, nil)

	assert.Equal(t, previous, merged)
	assert.Equal(t, 0, added)
}

func TestMerge_EmptyPrevious(t *testing.T) {
	incoming := []Listing{
		{Link: "https://hh.ru/vacancy/1", Status: StatusNew},
		{Link: "https://hh.ru/vacancy/2", Status: StatusNew},
	}

	merged, added := Merge(nil, incoming)

	assert.Equal(t, incoming, merged)
	assert.Equal(t, 2, added)
}

func TestMerge_StrictlyAdditive(t *testing.T) {
	previous := []Listing{
		{Link: "a", Title: "Backend dev", Status: StatusOld},
		{Link: "b", Title: "Java dev", Status: StatusNew},
	}
	incoming := []Listing{
		{Link: "b", Title: "Java dev (reposted)", Status: StatusNew},
		{Link: "c", Title: "Go dev", Status: StatusNew},
	}

	merged, added := Merge(previous, incoming)

	require.Len(t, merged, 3)
	assert.Equal(t, 1, added)

	// Stored records survive untouched, including every descriptive field.
	assert.Equal(t, previous[0], merged[0])
	assert.Equal(t, previous[1], merged[1])
	assert.Equal(t, "c", merged[2].Link)
}

func TestMerge_NoResurrectionOfViewed(t *testing.T) {
	previous := []Listing{
		{Link: "a", Status: StatusOld},
	}
	incoming := []Listing{
		{Link: "a", Status: StatusNew},
	}

	merged, added := Merge(previous, incoming)

	require.Len(t, merged, 1)
	assert.Equal(t, 0, added)
	assert.Equal(t, StatusOld, merged[0].Status)
}

func TestMerge_PrefersUpstreamIDAsKey(t *testing.T) {
	// Same upstream id under a changed link must still be a duplicate.
	previous := []Listing{
		{ID: 42, Link: "https://hh.ru/vacancy/42", Status: StatusOld},
	}
	incoming := []Listing{
		{ID: 42, Link: "https://hh.ru/vacancy/42?from=search", Status: StatusNew},
	}

	merged, added := Merge(previous, incoming)

	require.Len(t, merged, 1)
	assert.Equal(t, 0, added)
}

func TestMerge_DuplicateWithinIncomingBatch(t *testing.T) {
	incoming := []Listing{
		{Link: "a", Status: StatusNew},
		{Link: "a", Status: StatusNew},
	}

	merged, added := Merge(nil, incoming)

	assert.Len(t, merged, 1)
	assert.Equal(t, 1, added)
}

func TestMerge_CountsAreConsistent(t *testing.T) {
	previous := []Listing{
		{Link: "a", Status: StatusOld},
		{Link: "b", Status: StatusNew},
	}
	incoming := []Listing{
		{Link: "b", Status: StatusNew},
		{Link: "c", Status: StatusNew},
		{Link: "d", Status: StatusNew},
	}

	merged, added := Merge(previous, incoming)

	assert.Equal(t, 2, added)
	assert.Equal(t, len(previous)+added, len(merged))
}

func TestMerge_OrderIndependentOfPrevious(t *testing.T) {
	a := Listing{Link: "a", Status: StatusOld}
	b := Listing{Link: "b", Status: StatusNew}
	incoming := []Listing{{Link: "b", Status: StatusNew}, {Link: "c", Status: StatusNew}}

	_, added1 := Merge([]Listing{a, b}, incoming)
	_, added2 := Merge([]Listing{b, a}, incoming)

	assert.Equal(t, added1, added2)
}

func TestMerge_EndToEndScenario(t *testing.T) {
	previous := []Listing{
		{Link: "a", Status: StatusOld},
		{Link: "b", Status: StatusNew},
	}
	incoming := []Listing{
		{Link: "b", Status: StatusNew},
		{Link: "c", Status: StatusNew},
	}

	merged, added := Merge(previous, incoming)

	require.Len(t, merged, 3)
	assert.Equal(t, 1, added)
	assert.Equal(t, StatusOld, merged[0].Status)
	assert.Equal(t, "b", merged[1].Link)
	assert.Equal(t, StatusNew, merged[1].Status)
	assert.Equal(t, "c", merged[2].Link)
	assert.Equal(t, StatusNew, merged[2].Status)
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	previous := []Listing{{Link: "a", Status: StatusNew}}
	incoming := []Listing{{Link: "b", Status: StatusNew}}

	merged, _ := Merge(previous, incoming)
	merged[0].Status = StatusOld

	assert.Equal(t, StatusNew, previous[0].Status)
}
