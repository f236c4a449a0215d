package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func peekSchema() *Schema {
	return &Schema{
		Name: "test-peek",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"outline": map[string]any{
					"type":     "array",
					"items":    map[string]any{"type": "string"},
					"minItems": 1,
				},
				"framework": map[string]any{"type": "string", "enum": []any{"funnel", "profit-tree", "market-sizing"}},
				"steps":     map[string]any{"type": "integer", "minimum": 1},
			},
			"required": []any{"outline"},
		},
	}
}

func TestValidateJSON(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"outline":["buyers","revenue"],"framework":"funnel","steps":2}`, false},
		{"optional omitted", `{"outline":["buyers"]}`, false},
		{"missing required", `{"framework":"funnel"}`, true},
		{"wrong item type", `{"outline":[1,2]}`, true},
		{"empty outline", `{"outline":[]}`, true},
		{"bad enum", `{"outline":["a"],"framework":"swot"}`, true},
		{"below minimum", `{"outline":["a"],"steps":0}`, true},
		{"malformed", `{"outline":`, true},
		{"empty", ``, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateJSON(peekSchema(), json.RawMessage(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateJSON() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var inv *ErrInvalidResponse
				if !errors.As(err, &inv) {
					t.Fatalf("expected ErrInvalidResponse, got %T", err)
				}
				if string(inv.Content) != tt.raw {
					t.Errorf("content = %q, want the raw input", inv.Content)
				}
			}
		})
	}
}

func TestValidateJSON_NilSchema(t *testing.T) {
	if err := ValidateJSON(nil, json.RawMessage(`not json`)); err != nil {
		t.Fatalf("nil schema should accept anything, got %v", err)
	}
}

func TestValidateJSON_CachesBySchemaName(t *testing.T) {
	s := peekSchema()
	s.Name = "test-peek-cache"
	if err := ValidateJSON(s, json.RawMessage(`{"outline":["a"]}`)); err != nil {
		t.Fatal(err)
	}
	if _, ok := compiled.Load(s.Name); !ok {
		t.Fatal("schema not cached")
	}
}
