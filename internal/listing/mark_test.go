package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkViewed_TransitionsSelectedKeys(t *testing.T) {
	collection := []Listing{
		{Link: "a", Status: StatusNew},
		{Link: "b", Status: StatusNew},
		{Link: "c", Status: StatusOld},
	}

	updated, changed := MarkViewed(collection, []string{"a", "c"})

	assert.Equal(t, 1, changed)
	assert.Equal(t, StatusOld, updated[0].Status)
	assert.Equal(t, StatusNew, updated[1].Status)
	assert.Equal(t, StatusOld, updated[2].Status)
}

func TestMarkViewed_Idempotent(t *testing.T) {
	collection := []Listing{
		{Link: "a", Status: StatusNew},
		{Link: "b", Status: StatusNew},
	}

	once, changed1 := MarkViewed(collection, []string{"a"})
	twice, changed2 := MarkViewed(once, []string{"a"})

	assert.Equal(t, 1, changed1)
	assert.Equal(t, 0, changed2)
	assert.Equal(t, once, twice)
}

func TestMarkViewed_UnknownKeyIsNoOp(t *testing.T) {
	collection := []Listing{{Link: "a", Status: StatusNew}}

	updated, changed := MarkViewed(collection, []string{"missing"})

	assert.Equal(t, 0, changed)
	assert.Equal(t, collection, updated)
}

func TestMarkViewed_ByUpstreamID(t *testing.T) {
	collection := []Listing{
		{ID: 7, Link: "https://hh.ru/vacancy/7", Status: StatusNew},
	}

	updated, changed := MarkViewed(collection, []string{"id:7"})

	require.Equal(t, 1, changed)
	assert.Equal(t, StatusOld, updated[0].Status)
}

func TestMarkViewed_DoesNotMutateInput(t *testing.T) {
	collection := []Listing{{Link: "a", Status: StatusNew}}

	_, _ = MarkViewed(collection, []string{"a"})

	assert.Equal(t, StatusNew, collection[0].Status)
}

func TestMarkAllViewed(t *testing.T) {
	collection := []Listing{
		{Link: "a", Status: StatusNew},
		{Link: "b", Status: StatusOld},
		{Link: "c", Status: StatusNew},
	}

	updated, changed := MarkAllViewed(collection)

	assert.Equal(t, 2, changed)
	for _, l := range updated {
		assert.Equal(t, StatusOld, l.Status)
	}

	// Second pass changes nothing.
	_, changed = MarkAllViewed(updated)
	assert.Equal(t, 0, changed)
}
