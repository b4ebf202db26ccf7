// Package schemas provides JSON Schema validation for persisted CV
// documents. Schemas are embedded at compile time.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed document.schema.json
var documentSchema string

//go:embed shape.schema.json
var shapeSchema string

// FieldError is a single validation failure at a specific field
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates schema validation failures
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateDocument checks a serialized document against the full document
// schema: required personalInfo/sections, per-section id and type, typed
// fields throughout. Used by strict validation surfaces like the validate
// CLI command.
func ValidateDocument(data []byte) error {
	return validate(documentSchema, data)
}

// ValidateShape checks only the gross shape of a serialized document: a
// JSON object whose personalInfo is an object and sections an array.
// Import uses this so that partially-specified documents still load;
// per-section problems are handled leniently downstream.
func ValidateShape(data []byte) error {
	return validate(shapeSchema, data)
}

func validate(schema string, data []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("schema validation could not run: %w", err)
	}
	if result.Valid() {
		return nil
	}

	ve := &ValidationError{}
	for _, e := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   e.Field(),
			Message: e.Description(),
		})
	}
	return ve
}
