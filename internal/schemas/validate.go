// Package schemas validates persisted JSON documents against embedded
// JSON Schemas before the rest of the system touches them.
//
// The listings schema is deliberately loose about date fields: a record
// with a malformed timestamp is still structurally valid and gets its
// safe-sentinel treatment at the point of use (sorting, aggregation)
// instead of poisoning the whole file.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed listings.schema.json
var listingsSchema string

// ValidationError reports which parts of a document failed the schema.
type ValidationError struct {
	Document string
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s failed schema validation: %s", e.Document, strings.Join(e.Problems, "; "))
}

// ValidateListings checks a raw listings document against the embedded
// schema. Returns a *ValidationError describing every violation, or nil.
func ValidateListings(data []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(listingsSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return &ValidationError{Document: "listings", Problems: []string{err.Error()}}
	}
	if result.Valid() {
		return nil
	}

	ve := &ValidationError{Document: "listings"}
	for _, desc := range result.Errors() {
		ve.Problems = append(ve.Problems, desc.String())
	}
	return ve
}
