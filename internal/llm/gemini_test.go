package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-3-flash-preview"},
		{"gemini-pro", "gemini-3-pro-preview"},
		{"gemini-2.5-flash", "gemini-2.5-flash"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, resolveModel(tt.input, geminiModels), tt.input)
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"exercises": map[string]any{
				"type":     "array",
				"minItems": 3,
				"maxItems": 3,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title":     map[string]any{"type": "string"},
						"duration":  map[string]any{"type": "integer", "minimum": 1},
						"intensity": map[string]any{"type": "string", "enum": []string{"Low", "Medium", "High"}},
					},
					"required": []string{"title", "duration", "intensity"},
				},
			},
		},
		"required": []any{"exercises"},
	}

	schema := buildGeminiSchema(def)

	assert.Equal(t, genai.TypeObject, schema.Type)
	assert.Equal(t, []string{"exercises"}, schema.Required)

	exercises := schema.Properties["exercises"]
	require.NotNil(t, exercises)
	assert.Equal(t, genai.TypeArray, exercises.Type)
	require.NotNil(t, exercises.MinItems)
	require.NotNil(t, exercises.MaxItems)
	assert.Equal(t, int64(3), *exercises.MinItems)
	assert.Equal(t, int64(3), *exercises.MaxItems)

	item := exercises.Items
	require.NotNil(t, item)
	assert.Len(t, item.Properties, 3)
	assert.Equal(t, []string{"title", "duration", "intensity"}, item.Required)
	assert.Equal(t, genai.TypeInteger, item.Properties["duration"].Type)
	require.NotNil(t, item.Properties["duration"].Minimum)
	assert.Equal(t, 1.0, *item.Properties["duration"].Minimum)
	assert.Equal(t, []string{"Low", "Medium", "High"}, item.Properties["intensity"].Enum)
}
