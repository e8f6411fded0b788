package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "test-drills",
		Description: "A list of drills",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"exercises": map[string]any{
					"type":     "array",
					"minItems": 2,
					"maxItems": 2,
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"title":     map[string]any{"type": "string"},
							"duration":  map[string]any{"type": "integer", "minimum": 1},
							"intensity": map[string]any{"type": "string", "enum": []any{"Low", "Medium", "High"}},
						},
						"required":             []any{"title", "duration", "intensity"},
						"additionalProperties": false,
					},
				},
			},
			"required":             []any{"exercises"},
			"additionalProperties": false,
		},
	}
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"exercises":[
		{"title":"Rondo 4v1","duration":15,"intensity":"Low"},
		{"title":"3v2 transitions","duration":25,"intensity":"High"}]}`)
	if err := ValidateResponse(testSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := ValidateResponse(nil, json.RawMessage(`not json`)); err != nil {
		t.Fatalf("expected nil schema to skip validation, got: %v", err)
	}
}

func TestValidateResponse_Rejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `Here are three drills!`},
		{"missing field", `{"exercises":[{"title":"A","duration":10},{"title":"B","duration":10,"intensity":"Low"}]}`},
		{"wrong type", `{"exercises":[{"title":"A","duration":"ten","intensity":"Low"},{"title":"B","duration":10,"intensity":"Low"}]}`},
		{"bad enum", `{"exercises":[{"title":"A","duration":10,"intensity":"Extreme"},{"title":"B","duration":10,"intensity":"Low"}]}`},
		{"zero duration", `{"exercises":[{"title":"A","duration":0,"intensity":"Low"},{"title":"B","duration":10,"intensity":"Low"}]}`},
		{"too few items", `{"exercises":[{"title":"A","duration":10,"intensity":"Low"}]}`},
		{"extra property", `{"exercises":[],"notes":"x"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateResponse(testSchema(), json.RawMessage(tt.raw))
			if err == nil {
				t.Fatal("expected validation error")
			}
			var invErr *ErrInvalidResponse
			if !errors.As(err, &invErr) {
				t.Fatalf("expected ErrInvalidResponse, got: %T", err)
			}
			if string(invErr.Content) != tt.raw {
				t.Fatalf("expected offending content to be kept, got %q", invErr.Content)
			}
		})
	}
}

func TestValidateResponse_CachesCompiledSchema(t *testing.T) {
	s := testSchema()
	s.Name = "test-drills-cache"
	raw := json.RawMessage(`{"exercises":[
		{"title":"A","duration":10,"intensity":"Low"},
		{"title":"B","duration":10,"intensity":"Low"}]}`)

	if err := ValidateResponse(s, raw); err != nil {
		t.Fatalf("first validation: %v", err)
	}
	if _, ok := schemaCache.Load(s.Name); !ok {
		t.Fatal("expected compiled schema to be cached")
	}
	if err := ValidateResponse(s, raw); err != nil {
		t.Fatalf("cached validation: %v", err)
	}
}
