package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestValidateResponse(t *testing.T) {
	cases := []struct {
		name  string
		raw   string
		valid bool
	}{
		{"matches", `{"words":["कमल","घर"]}`, true},
		{"empty list", `{"words":[]}`, false},
		{"missing field", `{"items":["x"]}`, false},
		{"wrong item type", `{"words":[1]}`, false},
		{"not json", `words: कमल`, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateResponse(wordsSchema, json.RawMessage(tc.raw))
			if tc.valid {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var invalid *ErrInvalidResponse
			if !errors.As(err, &invalid) {
				t.Fatalf("expected ErrInvalidResponse, got %T (%v)", err, err)
			}
			if string(invalid.Content) != tc.raw {
				t.Fatalf("content not carried on error: %s", invalid.Content)
			}
		})
	}
}

func TestValidateResponse_NilSchemaAcceptsAnything(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not json`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponse_CachesCompiledSchema(t *testing.T) {
	s := &Schema{Name: "cache-check", Definition: map[string]any{"type": "object"}}
	if err := validateResponse(s, json.RawMessage(`{}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := schemaCache.Load("cache-check"); !ok {
		t.Fatal("expected compiled schema to be cached")
	}
}
