package augment

import (
	"github.com/abhisek/drillplan/internal/drills"
	"github.com/abhisek/drillplan/internal/llm"
	"github.com/abhisek/drillplan/internal/planner"
)

// SuggestionSchema defines the JSON schema for drill suggestions. The list
// is wrapped in an object because strict structured output on some
// providers only accepts an object at the top level.
var SuggestionSchema = &llm.Schema{
	Name:        "drill-suggestions",
	Description: "Three futsal training drills for one session theme",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"exercises": map[string]any{
				"type":     "array",
				"minItems": SuggestionCount,
				"maxItems": SuggestionCount,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title": map[string]any{
							"type":        "string",
							"description": "Creative drill title",
							"minLength":   1,
						},
						"description": map[string]any{
							"type":        "string",
							"description": "Step-by-step description: objective, organization, execution and variations",
						},
						"duration": map[string]any{
							"type":        "integer",
							"description": "Suggested duration in minutes",
							"minimum":     1,
						},
						"intensity": map[string]any{
							"type": "string",
							"enum": intensityEnum(),
						},
						"category": map[string]any{
							"type": "string",
							"enum": categoryEnum(),
						},
						"videoUrl": map[string]any{
							"type":        "string",
							"description": "Short, precise English phrase for a YouTube search",
						},
					},
					"required":             []any{"title", "description", "duration", "intensity", "category", "videoUrl"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"exercises"},
		"additionalProperties": false,
	},
}

func intensityEnum() []any {
	return []any{string(planner.IntensityLow), string(planner.IntensityMedium), string(planner.IntensityHigh)}
}

func categoryEnum() []any {
	out := make([]any, len(drills.Categories))
	for i, c := range drills.Categories {
		out[i] = string(c)
	}
	return out
}
