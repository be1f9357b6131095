package curriculum

import "github.com/learnlens/learnlens/internal/llm"

// RoadmapSchema defines the JSON schema for the 3-step curriculum skeleton.
var RoadmapSchema = &llm.Schema{
	Name:        "learning-roadmap",
	Description: "An ordered 3-step video learning path for one topic",
	Definition: map[string]any{
		"type":     "array",
		"minItems": 3,
		"maxItems": 3,
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"step_title": map[string]any{
					"type":        "string",
					"description": "Concise title for the step",
				},
				"focus": map[string]any{
					"type":        "string",
					"description": "Exact video search query for this step",
				},
				"level": map[string]any{
					"type":        "string",
					"description": "Learner level this step targets",
				},
				"goal": map[string]any{
					"type":        "string",
					"description": "Specific learning outcome",
				},
			},
			"required":             []any{"step_title", "focus", "level", "goal"},
			"additionalProperties": false,
		},
	},
}
