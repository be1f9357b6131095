package enhance

import "github.com/learnlens/learnlens/internal/llm"

// PackSchema defines the JSON schema for content enhancement.
//
// correct_index is deliberately not required on quiz entries: models often
// emit an "answer" string instead, and the repair pass maps it back onto
// the options rather than discarding an otherwise usable pack.
var PackSchema = &llm.Schema{
	Name:        "content-pack",
	Description: "Learning aids for one video: summary, checklist, quiz, analogy",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"brief_summary": map[string]any{
				"type":        "string",
				"description": "Crisp 2-sentence summary of the skill taught",
			},
			"pre_learning_checklist": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "3 precise prerequisite tasks",
			},
			"test_questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type": "string",
						},
						"options": map[string]any{
							"type":     "array",
							"items":    map[string]any{"type": "string"},
							"minItems": 4,
							"maxItems": 4,
						},
						"correct_index": map[string]any{
							"type":    "integer",
							"minimum": 0,
							"maximum": 3,
						},
						"answer": map[string]any{
							"type":        "string",
							"description": "Correct option text, when correct_index is omitted",
						},
					},
					"required": []any{"question", "options"},
				},
				"description": "2 high-quality multiple-choice questions",
			},
			"mental_model": map[string]any{
				"type":        "string",
				"description": "Single-sentence engineering analogy",
			},
		},
		"required": []any{"brief_summary", "pre_learning_checklist", "test_questions", "mental_model"},
	},
}
