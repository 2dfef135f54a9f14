// Package schemas validates criteria documents against their JSON Schema
// before they reach the store, so the matching engine can stay total over its
// declared input shape.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed criteria.schema.json
var criteriaSchema string

// ValidationError reports one or more schema violations with field paths.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is a single violation at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "validation failed"
	}
	msgs := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		msgs[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return "criteria validation failed: " + strings.Join(msgs, "; ")
}

// ValidateCriteria checks a raw criteria JSON document against the schema.
// Returns a *ValidationError listing every violation, or nil when the
// document conforms.
func ValidateCriteria(doc []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(criteriaSchema)
	docLoader := gojsonschema.NewBytesLoader(doc)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return fmt.Errorf("failed to validate criteria: %w", err)
	}

	if result.Valid() {
		return nil
	}

	ve := &ValidationError{}
	for _, re := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   re.Field(),
			Message: re.Description(),
		})
	}
	return ve
}
