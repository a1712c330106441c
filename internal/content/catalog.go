package content

import (
	"slices"
	"sync"
)

// Catalog serves alphabets and words, layering extra words (such as generated
// word packs) over the bundled tables.
type Catalog struct {
	mu    sync.RWMutex
	extra map[string][]Word
}

// NewCatalog creates a Catalog backed by the bundled tables.
func NewCatalog() *Catalog {
	return &Catalog{extra: make(map[string][]Word)}
}

// Letters returns the alphabet for a language.
func (c *Catalog) Letters(language string) []Letter {
	return Letters(language)
}

// Words returns bundled words followed by any extra words for the language.
func (c *Catalog) Words(language string) []Word {
	out := Words(language)
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, w := range c.extra[language] {
		w.Characters = slices.Clone(w.Characters)
		out = append(out, w)
	}
	return out
}

// AddWords registers extra words for a language. Words that do not assemble
// or whose id or spelling is already present are skipped. It returns the
// number of words added.
func (c *Catalog) AddWords(language string, ws []Word) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	seen := make(map[string]bool)
	for _, w := range Words(language) {
		seen[w.ID] = true
		seen["word:"+w.Word] = true
	}
	for _, w := range c.extra[language] {
		seen[w.ID] = true
		seen["word:"+w.Word] = true
	}

	added := 0
	for _, w := range ws {
		if !w.Assembles() || seen[w.ID] || seen["word:"+w.Word] {
			continue
		}
		seen[w.ID] = true
		seen["word:"+w.Word] = true
		c.extra[language] = append(c.extra[language], w)
		added++
	}
	return added
}

// ClearExtra drops the extra words for a language.
func (c *Catalog) ClearExtra(language string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.extra, language)
}
