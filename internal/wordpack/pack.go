// Package wordpack drafts extra word-builder words with a language model and
// keeps them per language in the key-value store.
package wordpack

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/mod/semver"

	"github.com/abhisek/varnamala/internal/content"
	"github.com/abhisek/varnamala/internal/store"
)

// FormatVersion is written into every saved pack. Packs from another major
// version are not read.
const FormatVersion = "v1.0.0"

// ErrIncompatiblePack means a stored pack uses an unsupported format.
var ErrIncompatiblePack = errors.New("wordpack: incompatible pack version")

// Pack is the persisted form of one language's generated words.
type Pack struct {
	Version string         `json:"version"`
	Words   []content.Word `json:"words"`
}

// Key returns the storage key of a language's pack.
func Key(language string) string {
	return language + "-wordpack"
}

// Repo loads and saves packs.
type Repo struct {
	kv store.KVRepo
}

func NewRepo(kv store.KVRepo) *Repo {
	return &Repo{kv: kv}
}

// Load returns the stored words for a language. A missing or malformed pack
// yields no words; a pack from another major version yields
// ErrIncompatiblePack.
func (r *Repo) Load(ctx context.Context, language string) ([]content.Word, error) {
	raw, err := r.kv.Get(ctx, Key(language))
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load %s word pack: %w", language, err)
	}

	var p Pack
	if err := json.Unmarshal(raw, &p); err != nil || !semver.IsValid(p.Version) {
		return nil, nil
	}
	if semver.Major(p.Version) != semver.Major(FormatVersion) {
		return nil, fmt.Errorf("%s pack %s: %w", language, p.Version, ErrIncompatiblePack)
	}

	out := p.Words[:0]
	for _, w := range p.Words {
		if w.Assembles() {
			out = append(out, w)
		}
	}
	return out, nil
}

// Append adds words to a language's pack, skipping ids already present.
// It returns the number stored.
func (r *Repo) Append(ctx context.Context, language string, ws []content.Word) (int, error) {
	existing, err := r.Load(ctx, language)
	if err != nil && !errors.Is(err, ErrIncompatiblePack) {
		return 0, err
	}

	seen := make(map[string]bool, len(existing))
	for _, w := range existing {
		seen[w.ID] = true
	}
	added := 0
	for _, w := range ws {
		if seen[w.ID] {
			continue
		}
		seen[w.ID] = true
		existing = append(existing, w)
		added++
	}

	raw, err := json.Marshal(Pack{Version: FormatVersion, Words: existing})
	if err != nil {
		return 0, fmt.Errorf("encode %s word pack: %w", language, err)
	}
	if err := r.kv.Put(ctx, Key(language), raw); err != nil {
		return 0, fmt.Errorf("save %s word pack: %w", language, err)
	}
	return added, nil
}

// Clear deletes a language's pack.
func (r *Repo) Clear(ctx context.Context, language string) error {
	if err := r.kv.Delete(ctx, Key(language)); err != nil {
		return fmt.Errorf("clear %s word pack: %w", language, err)
	}
	return nil
}

// LoadInto registers every language's stored words with the catalog and
// returns how many were added. Incompatible packs are skipped.
func (r *Repo) LoadInto(ctx context.Context, catalog *content.Catalog) (int, error) {
	total := 0
	for _, lang := range content.LanguageIDs() {
		ws, err := r.Load(ctx, lang)
		if errors.Is(err, ErrIncompatiblePack) {
			continue
		}
		if err != nil {
			return total, err
		}
		total += catalog.AddWords(lang, ws)
	}
	return total, nil
}
