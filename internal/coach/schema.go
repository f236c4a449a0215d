package coach

import "github.com/abhisek/casetrack/internal/llm"

// HintSchema is the JSON schema for a generated hint.
var HintSchema = &llm.Schema{
	Name:        "case-hint",
	Description: "A five-word nudge toward the method of a consulting case",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"hint": map[string]any{
				"type":        "string",
				"description": "At most five words. Names the method, never a number from the answer.",
				"minLength":   1,
				"maxLength":   60,
			},
		},
		"required":             []any{"hint"},
		"additionalProperties": false,
	},
}

// PeekSchema is the JSON schema for a generated solution outline.
var PeekSchema = &llm.Schema{
	Name:        "case-peek",
	Description: "The general approach to a consulting case without the answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"framework": map[string]any{
				"type":        "string",
				"description": "Name of the framework, e.g. funnel, profit tree",
				"minLength":   1,
				"maxLength":   40,
			},
			"outline": map[string]any{
				"type":        "array",
				"description": "Ordered steps to reach the answer, each a short imperative sentence",
				"items":       map[string]any{"type": "string", "minLength": 1, "maxLength": 140},
				"minItems":    1,
				"maxItems":    5,
			},
		},
		"required":             []any{"framework", "outline"},
		"additionalProperties": false,
	},
}
