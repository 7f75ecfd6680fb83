// Package validation compiles and applies the JSON schemas that guard
// persisted graph snapshots.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

var (
	ErrSchemaInvalid    = errors.New("validation: schema invalid")
	ErrSchemaValidation = errors.New("validation: schema validation failed")
)

// ValidationIssue captures a single validation failure.
type ValidationIssue struct {
	Location string
	Message  string
}

// PayloadValidationError surfaces validation issues with schema-aware context.
type PayloadValidationError struct {
	Issues []ValidationIssue
	Cause  error
}

func (e *PayloadValidationError) Error() string {
	if len(e.Issues) == 0 {
		if e.Cause != nil {
			return e.Cause.Error()
		}
		return ErrSchemaValidation.Error()
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		location := strings.TrimSpace(issue.Location)
		if location == "" {
			location = "#"
		}
		if issue.Message == "" {
			parts = append(parts, location)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", location, issue.Message))
	}
	return strings.Join(parts, "; ")
}

func (e *PayloadValidationError) Unwrap() error {
	return ErrSchemaValidation
}

// Compile turns a schema document into a reusable validator.
func Compile(schema map[string]any) (*jsonschema.Schema, error) {
	raw, err := json.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaInvalid, err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaInvalid, err)
	}
	compiled, err := compiler.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaInvalid, err)
	}
	return compiled, nil
}

// MustCompile is Compile for package-level schema variables.
func MustCompile(schema map[string]any) *jsonschema.Schema {
	compiled, err := Compile(schema)
	if err != nil {
		panic(err)
	}
	return compiled
}

// ValidatePayload checks an arbitrary Go value against a compiled schema by
// round-tripping it through JSON, which is how the value is persisted.
func ValidatePayload(schema *jsonschema.Schema, payload any) error {
	if schema == nil {
		return nil
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return &PayloadValidationError{Cause: err}
	}
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return &PayloadValidationError{Cause: err}
	}

	if err := schema.Validate(decoded); err != nil {
		var validationErr *jsonschema.ValidationError
		if errors.As(err, &validationErr) {
			return &PayloadValidationError{Issues: collectIssues(validationErr)}
		}
		return &PayloadValidationError{Cause: err}
	}
	return nil
}

func collectIssues(err *jsonschema.ValidationError) []ValidationIssue {
	if err == nil {
		return nil
	}
	if len(err.Causes) == 0 {
		return []ValidationIssue{{
			Location: err.InstanceLocation,
			Message:  err.Message,
		}}
	}
	issues := make([]ValidationIssue, 0, len(err.Causes))
	for _, cause := range err.Causes {
		issues = append(issues, collectIssues(cause)...)
	}
	return issues
}
