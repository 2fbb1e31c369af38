// Package schemas provides JSON Schema validation for the analyzer's
// serialized artifacts.
package schemas

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	rootschemas "github.com/Dharshika-112/Skill-Gap-Analyzer-sub000/schemas"
)

// ValidationError represents a schema validation failure with field paths.
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError represents errors loading or parsing the schema itself.
type SchemaLoadError struct {
	Name    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Name, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Name, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ValidateGapResult validates serialized GapScoreResult JSON.
func ValidateGapResult(data []byte) error {
	return validate("gap_result", rootschemas.GapResult, data)
}

// ValidateRoadmapPlan validates serialized RoadmapPlan JSON.
func ValidateRoadmapPlan(data []byte) error {
	return validate("roadmap_plan", rootschemas.RoadmapPlan, data)
}

// validate runs a document against an embedded schema and converts the
// outcome into the package's typed errors.
func validate(name, schema string, document []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(schema)
	documentLoader := gojsonschema.NewBytesLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{
			Name:    name,
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
