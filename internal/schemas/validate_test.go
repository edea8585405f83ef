package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateListings_Valid(t *testing.T) {
	doc := []byte(`[
		{"id": 1, "link": "https://hh.ru/vacancy/1", "status": "NEW"},
		{"link": "https://hh.ru/vacancy/2", "status": "OLD", "loaded_at": "2024-03-01 10:00:00"}
	]`)
	assert.NoError(t, ValidateListings(doc))
}

func TestValidateListings_EmptyArray(t *testing.T) {
	assert.NoError(t, ValidateListings([]byte(`[]`)))
}

func TestValidateListings_MalformedDateIsStillValid(t *testing.T) {
	// Date handling is the projector's concern, not the schema's.
	doc := []byte(`[{"link": "x", "status": "NEW", "loaded_at": "garbage"}]`)
	assert.NoError(t, ValidateListings(doc))
}

func TestValidateListings_Invalid(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"not an array", `{"link": "x"}`},
		{"missing link", `[{"status": "NEW"}]`},
		{"bad status", `[{"link": "x", "status": "VIEWED"}]`},
		{"not JSON", `{{{`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := ValidateListings([]byte(c.doc))
			require.Error(t, err)

			var ve *ValidationError
			assert.True(t, errors.As(err, &ve))
		})
	}
}
