package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

var testSchema = &Schema{
	Name: "test-answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"answer": map[string]any{"type": "string"},
			"score":  map[string]any{"type": "integer", "minimum": 0},
		},
		"required":             []string{"answer", "score"},
		"additionalProperties": false,
	},
}

func TestValidateResponse_Conforming(t *testing.T) {
	raw := json.RawMessage(`{"answer": "yes", "score": 3}`)
	if err := validateResponse(testSchema, raw); err != nil {
		t.Errorf("conforming content rejected: %v", err)
	}
}

func TestValidateResponse_NilSchemaSkipsValidation(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Errorf("nil schema should skip validation, got %v", err)
	}
}

func TestValidateResponse_Failures(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not JSON", `{"answer": `},
		{"missing required field", `{"answer": "yes"}`},
		{"wrong type", `{"answer": "yes", "score": "three"}`},
		{"extra property", `{"answer": "yes", "score": 1, "extra": true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(testSchema, json.RawMessage(tt.raw))
			var invResp *ErrInvalidResponse
			if !errors.As(err, &invResp) {
				t.Errorf("error = %v, want ErrInvalidResponse", err)
			}
		})
	}
}

func TestValidateResponse_CachesCompiledSchema(t *testing.T) {
	raw := json.RawMessage(`{"answer": "yes", "score": 1}`)
	if err := validateResponse(testSchema, raw); err != nil {
		t.Fatal(err)
	}
	if _, ok := schemaCache.Load(testSchema.Name); !ok {
		t.Error("compiled schema not cached")
	}
	// Second validation takes the cached path.
	if err := validateResponse(testSchema, raw); err != nil {
		t.Errorf("cached validation failed: %v", err)
	}
}
