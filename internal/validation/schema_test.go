package validation

import (
	"errors"
	"testing"
)

var testSchema = map[string]any{
	"type":     "object",
	"required": []string{"meta"},
	"properties": map[string]any{
		"meta": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"draft": map[string]any{"type": "boolean"},
			},
		},
		"word_count": map[string]any{
			"type":    []any{"integer", "null"},
			"minimum": 0,
		},
	},
}

func TestValidatePayloadAccepts(t *testing.T) {
	schema, err := Compile(testSchema)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	payload := map[string]any{
		"meta":       map[string]any{"draft": false},
		"word_count": 42,
	}
	if err := ValidatePayload(schema, payload); err != nil {
		t.Fatalf("expected payload to validate, got %v", err)
	}
}

func TestValidatePayloadRejects(t *testing.T) {
	schema, err := Compile(testSchema)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	payload := map[string]any{
		"meta":       map[string]any{"draft": "yes"},
		"word_count": -1,
	}
	err = ValidatePayload(schema, payload)
	if !errors.Is(err, ErrSchemaValidation) {
		t.Fatalf("expected ErrSchemaValidation, got %v", err)
	}
	var payloadErr *PayloadValidationError
	if !errors.As(err, &payloadErr) || len(payloadErr.Issues) == 0 {
		t.Fatalf("expected issues, got %v", err)
	}
}

func TestCompileRejectsBrokenSchema(t *testing.T) {
	_, err := Compile(map[string]any{"type": 12})
	if !errors.Is(err, ErrSchemaInvalid) {
		t.Fatalf("expected ErrSchemaInvalid, got %v", err)
	}
}
