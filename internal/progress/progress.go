// Package progress tracks which letters of each language a learner has
// practised in the drawing flow.
package progress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"slices"
	"sync"

	"github.com/abhisek/varnamala/internal/content"
	"github.com/abhisek/varnamala/internal/store"
)

// ErrUnknownLetter is returned when marking a letter id that is not part of
// the language's alphabet.
var ErrUnknownLetter = errors.New("unknown letter")

// Key returns the storage key of a language's completed set.
func Key(language string) string {
	return language + "-progress"
}

// Percent returns done/total as a whole percentage, rounded to the nearest
// integer. A zero total yields 0.
func Percent(done, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(done) * 100 / float64(total)))
}

// LetterSource provides a language's alphabet.
type LetterSource interface {
	Letters(language string) []content.Letter
}

// Tracker owns the per-language completed sets. Sets are loaded once and
// kept in memory; every change is written through to the KVRepo. If a write
// fails the in-memory set keeps the change. A set is never written before it
// has been read: letters marked while storage is unreadable are held apart
// and folded in on the next successful read.
type Tracker struct {
	mu      sync.Mutex
	kv      store.KVRepo
	letters LetterSource
	sets    map[string][]string
	unread  map[string][]string
}

// NewTracker creates a Tracker.
func NewTracker(kv store.KVRepo, letters LetterSource) *Tracker {
	return &Tracker{
		kv:      kv,
		letters: letters,
		sets:    make(map[string][]string),
		unread:  make(map[string][]string),
	}
}

// Completed returns the completed letter ids of a language in the order they
// were completed.
func (t *Tracker) Completed(ctx context.Context, language string) ([]string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	set, err := t.load(ctx, language)
	return slices.Clone(set), err
}

// IsComplete reports whether a letter has been completed.
func (t *Tracker) IsComplete(ctx context.Context, language, letterID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	set, _ := t.load(ctx, language)
	return slices.Contains(set, letterID)
}

// MarkComplete adds a letter to the completed set and persists it. Marking an
// already completed letter changes nothing. It reports whether the set grew.
func (t *Tracker) MarkComplete(ctx context.Context, language, letterID string) (bool, error) {
	if !t.known(language, letterID) {
		return false, fmt.Errorf("%w: %s/%s", ErrUnknownLetter, language, letterID)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	set, err := t.load(ctx, language)
	if slices.Contains(set, letterID) {
		return false, err
	}
	if err != nil {
		t.unread[language] = append(t.unread[language], letterID)
		return true, err
	}
	set = append(slices.Clone(set), letterID)
	t.sets[language] = set
	return true, t.save(ctx, language, set)
}

// PercentComplete returns the share of the alphabet completed, 0-100. Only
// ids that belong to the current alphabet are counted.
func (t *Tracker) PercentComplete(ctx context.Context, language string) int {
	done, total := t.Counts(ctx, language)
	return Percent(done, total)
}

// Counts returns the number of completed letters and the alphabet size.
func (t *Tracker) Counts(ctx context.Context, language string) (done, total int) {
	alphabet := t.letters.Letters(language)

	t.mu.Lock()
	set, _ := t.load(ctx, language)
	t.mu.Unlock()

	for _, l := range alphabet {
		if slices.Contains(set, l.ID) {
			done++
		}
	}
	return done, len(alphabet)
}

// Reset clears a language's completed set.
func (t *Tracker) Reset(ctx context.Context, language string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sets[language] = []string{}
	delete(t.unread, language)
	if err := t.kv.Delete(ctx, Key(language)); err != nil {
		return fmt.Errorf("reset %s: %w", Key(language), err)
	}
	return nil
}

func (t *Tracker) known(language, letterID string) bool {
	for _, l := range t.letters.Letters(language) {
		if l.ID == letterID {
			return true
		}
	}
	return false
}

// load returns the cached set, reading it from storage on first use.
// Missing or malformed documents are an empty set. On a read failure nothing
// is cached and the letters marked so far in this session are returned, so
// the next call reads again.
func (t *Tracker) load(ctx context.Context, language string) ([]string, error) {
	if set, ok := t.sets[language]; ok {
		return set, nil
	}

	raw, err := t.kv.Get(ctx, Key(language))
	switch {
	case errors.Is(err, store.ErrNotFound):
		raw = nil
	case err != nil:
		return append([]string{}, t.unread[language]...), fmt.Errorf("load %s: %w", Key(language), err)
	}

	set := []string{}
	var ids []string
	if raw != nil && json.Unmarshal(raw, &ids) == nil {
		for _, id := range ids {
			if !slices.Contains(set, id) {
				set = append(set, id)
			}
		}
	}
	t.sets[language] = set

	if held := t.unread[language]; len(held) > 0 {
		for _, id := range held {
			if !slices.Contains(set, id) {
				set = append(set, id)
			}
		}
		t.sets[language] = set
		delete(t.unread, language)
		// Stays cached if the write fails; the next MarkComplete retries.
		_ = t.save(ctx, language, set)
	}
	return set, nil
}

func (t *Tracker) save(ctx context.Context, language string, set []string) error {
	raw, err := json.Marshal(set)
	if err != nil {
		return fmt.Errorf("encode %s: %w", Key(language), err)
	}
	if err := t.kv.Put(ctx, Key(language), raw); err != nil {
		return fmt.Errorf("save %s: %w", Key(language), err)
	}
	return nil
}
