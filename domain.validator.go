package main

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

var _ BookValidatorProvider = (*BookValidator)(nil) // ensure BookValidator implements BookValidatorProvider.

// ValidationError carries every violation found in a request body.
// All checks run in a single pass so a client can fix its payload
// from one response instead of round-tripping per violation.
type ValidationError struct {
	Violations []string
}

// Error implements the error interface.
func (ve *ValidationError) Error() string {
	return strings.Join(ve.Violations, "; ")
}

// BookValidatorProvider describes payload validation against the book schemas.
type BookValidatorProvider interface {
	ValidateCreate(payload []byte) error
	ValidateUpdate(payload []byte) error
}

// BookValidator holds the compiled create and update schemas. It is
// pure and side-effect free: a given payload always produces the same
// result and is never modified or coerced.
type BookValidator struct {
	create *gojsonschema.Schema
	update *gojsonschema.Schema
}

// NewBookValidator compiles both payload schemas and provides a ready
// to use validator. Compilation failure means the schema documents
// themselves are broken, so it is only expected at startup.
func NewBookValidator() (*BookValidator, error) {
	create, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(bookCreateSchema))
	if err != nil {
		return nil, fmt.Errorf("failed to compile book create schema: %w", err)
	}
	update, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(bookUpdateSchema))
	if err != nil {
		return nil, fmt.Errorf("failed to compile book update schema: %w", err)
	}
	return &BookValidator{create: create, update: update}, nil
}

// ValidateCreate checks a book creation payload against the create schema.
// It returns a *ValidationError listing all violations, or nil.
func (v *BookValidator) ValidateCreate(payload []byte) error {
	return validate(v.create, payload)
}

// ValidateUpdate checks a book update payload against the update schema.
// It returns a *ValidationError listing all violations, or nil.
func (v *BookValidator) ValidateUpdate(payload []byte) error {
	return validate(v.update, payload)
}

func validate(schema *gojsonschema.Schema, payload []byte) error {
	result, err := schema.Validate(gojsonschema.NewBytesLoader(payload))
	if err != nil {
		// the payload is not even parseable json.
		return &ValidationError{Violations: []string{"request body is not valid JSON"}}
	}
	if result.Valid() {
		return nil
	}
	violations := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		violations = append(violations, formatViolation(desc))
	}
	return &ValidationError{Violations: violations}
}

// formatViolation renders a schema violation as a human readable message
// prefixed with the offending field when it is known.
func formatViolation(desc gojsonschema.ResultError) string {
	field := desc.Field()
	if field == gojsonschema.STRING_CONTEXT_ROOT {
		return desc.Description()
	}
	return fmt.Sprintf("%s: %s", field, desc.Description())
}
