package wordpack

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/abhisek/varnamala/internal/content"
	"github.com/abhisek/varnamala/internal/llm"
)

// ErrNoValidWords means the model returned nothing usable.
var ErrNoValidWords = errors.New("wordpack: no valid words generated")

const (
	DefaultCount = 5
	MaxCount     = 20
)

// Request describes one generation run.
type Request struct {
	Language string
	Count    int

	// Theme optionally steers the vocabulary, e.g. "animals".
	Theme string
}

// Rejection records a candidate that failed validation.
type Rejection struct {
	Word   string
	Reason string
}

// Result is the outcome of a generation run.
type Result struct {
	Words    []content.Word
	Rejected []Rejection
}

// Generator drafts new words for the word builder.
type Generator struct {
	provider llm.Provider
	catalog  *content.Catalog
}

func NewGenerator(provider llm.Provider, catalog *content.Catalog) *Generator {
	return &Generator{provider: provider, catalog: catalog}
}

type candidate struct {
	Word       string   `json:"word"`
	Meaning    string   `json:"meaning"`
	Characters []string `json:"characters"`
}

type output struct {
	Words []candidate `json:"words"`
}

var packSchema = &llm.Schema{
	Name:        "word-pack",
	Description: "Simple words for a children's alphabet game",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"words": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"word":    map[string]any{"type": "string", "description": "The word in native script"},
						"meaning": map[string]any{"type": "string", "description": "English meaning"},
						"characters": map[string]any{
							"type":        "array",
							"description": "Letter units that concatenate exactly to the word",
							"minItems":    1,
							"items":       map[string]any{"type": "string"},
						},
					},
					"required":             []string{"word", "meaning", "characters"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []string{"words"},
		"additionalProperties": false,
	},
}

const systemPrompt = `You write vocabulary for a word-building game for young children.
Every word must be common, concrete and short (two to six letter units).
Split each word into letter units: base consonants, independent vowels,
vowel signs and the virama are separate units. Joining the units in order
must reproduce the word exactly. Use only the native script.`

// Generate asks the model for new words and keeps those that pass
// validation. Words already known to the catalog are rejected.
func (g *Generator) Generate(ctx context.Context, req Request) (*Result, error) {
	lang, ok := content.LookupLanguage(req.Language)
	if !ok {
		return nil, fmt.Errorf("unknown language %q", req.Language)
	}
	count := req.Count
	if count <= 0 {
		count = DefaultCount
	}
	count = min(count, MaxCount)

	known := make(map[string]bool)
	for _, w := range g.catalog.Words(lang.ID) {
		known[w.Word] = true
	}

	llmReq := llm.UserPrompt(systemPrompt, buildPrompt(lang, count, req.Theme, known), packSchema)
	llmReq.MaxTokens = 2048
	llmReq.Temperature = 0.8

	resp, err := g.provider.Generate(llm.WithPurpose(ctx, llm.PurposeWordPack), llmReq)
	if err != nil {
		return nil, fmt.Errorf("generate %s words: %w", lang.ID, err)
	}
	var out output
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("decode %s words: %w", lang.ID, err)
	}

	res := &Result{}
	for _, c := range out.Words {
		if reason := validate(lang, c, known); reason != "" {
			res.Rejected = append(res.Rejected, Rejection{Word: c.Word, Reason: reason})
			continue
		}
		known[c.Word] = true
		res.Words = append(res.Words, content.Word{
			ID:         "gen-" + uuid.NewString(),
			Word:       c.Word,
			Meaning:    strings.TrimSpace(c.Meaning),
			Characters: c.Characters,
		})
		if len(res.Words) == count {
			break
		}
	}
	if len(res.Words) == 0 {
		return res, ErrNoValidWords
	}
	return res, nil
}

func buildPrompt(lang content.Language, count int, theme string, known map[string]bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Language: %s (%s)\n", lang.Name, lang.Native)
	fmt.Fprintf(&b, "Number of words: %d\n", count)
	if theme != "" {
		fmt.Fprintf(&b, "Theme: %s\n", theme)
	}
	if len(known) > 0 {
		b.WriteString("Do not repeat any of these words:")
		for _, w := range slices.Sorted(maps.Keys(known)) {
			b.WriteString(" " + w)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// validate returns why a candidate is unusable, or "" if it is fine.
func validate(lang content.Language, c candidate, known map[string]bool) string {
	w := content.Word{Word: strings.TrimSpace(c.Word), Characters: c.Characters}
	switch {
	case w.Word == "" || strings.TrimSpace(c.Meaning) == "":
		return "missing word or meaning"
	case w.Word != c.Word:
		return "surrounding whitespace"
	case !w.Assembles():
		return "characters do not spell the word"
	case !lang.InScript(w.Word):
		return "not in " + lang.Name + " script"
	case known[w.Word]:
		return "duplicate"
	}
	for _, ch := range c.Characters {
		if ch == "" {
			return "empty letter unit"
		}
	}
	return ""
}
