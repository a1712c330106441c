package content

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
)

// Language identifies one of the bundled alphabets.
type Language struct {
	ID     string
	Name   string
	Native string
	Script *unicode.RangeTable
}

// Letter is a single entry of a language's alphabet.
type Letter struct {
	ID            string `json:"id"`
	Character     string `json:"character"`
	Pronunciation string `json:"pronunciation"`
}

// Word is a target word for the word builder. Characters are the letter-units
// that, joined in order, spell Word.
type Word struct {
	ID         string   `json:"id"`
	Word       string   `json:"word"`
	Meaning    string   `json:"meaning"`
	Characters []string `json:"characters"`
}

// Assembles reports whether the characters concatenate to the word exactly.
func (w Word) Assembles() bool {
	return len(w.Characters) > 0 && strings.Join(w.Characters, "") == w.Word
}

var languages = []Language{
	{ID: "hindi", Name: "Hindi", Native: "हिन्दी", Script: unicode.Devanagari},
	{ID: "tamil", Name: "Tamil", Native: "தமிழ்", Script: unicode.Tamil},
	{ID: "bengali", Name: "Bengali", Native: "বাংলা", Script: unicode.Bengali},
	{ID: "telugu", Name: "Telugu", Native: "తెలుగు", Script: unicode.Telugu},
	{ID: "kannada", Name: "Kannada", Native: "ಕನ್ನಡ", Script: unicode.Kannada},
	{ID: "malayalam", Name: "Malayalam", Native: "മലയാളം", Script: unicode.Malayalam},
}

// Languages returns the bundled languages in display order.
func Languages() []Language {
	return slices.Clone(languages)
}

// LookupLanguage returns the language with the given id.
func LookupLanguage(id string) (Language, bool) {
	for _, l := range languages {
		if l.ID == id {
			return l, true
		}
	}
	return Language{}, false
}

// LanguageIDs returns the ids of all bundled languages.
func LanguageIDs() []string {
	ids := make([]string, len(languages))
	for i, l := range languages {
		ids[i] = l.ID
	}
	return ids
}

// DisplayName returns the English name for a language id, or the id itself.
func DisplayName(id string) string {
	if l, ok := LookupLanguage(id); ok {
		return l.Name
	}
	return id
}

// Letters returns the alphabet for a language. Unknown languages yield nil.
func Letters(language string) []Letter {
	return slices.Clone(alphabets[language])
}

// LookupLetter finds a letter by id within a language.
func LookupLetter(language, id string) (Letter, bool) {
	for _, l := range alphabets[language] {
		if l.ID == id {
			return l, true
		}
	}
	return Letter{}, false
}

// Words returns the bundled word table for a language. Unknown languages yield nil.
func Words(language string) []Word {
	out := make([]Word, 0, len(words[language]))
	for _, w := range words[language] {
		w.Characters = slices.Clone(w.Characters)
		out = append(out, w)
	}
	return out
}

// CharacterPool flattens the characters of every word, keeping duplicates so
// that common letter-units are drawn more often.
func CharacterPool(ws []Word) []string {
	var pool []string
	for _, w := range ws {
		pool = append(pool, w.Characters...)
	}
	return pool
}

// InScript reports whether every rune of s belongs to the language's script.
func (l Language) InScript(s string) bool {
	if s == "" || l.Script == nil {
		return false
	}
	for _, r := range s {
		if !unicode.Is(l.Script, r) {
			return false
		}
	}
	return true
}

// letterTable builds a letter slice with ids of the form <prefix>NN.
func letterTable(prefix string, entries [][2]string) []Letter {
	out := make([]Letter, len(entries))
	for i, e := range entries {
		out[i] = Letter{
			ID:            fmt.Sprintf("%s%02d", prefix, i+1),
			Character:     e[0],
			Pronunciation: e[1],
		}
	}
	return out
}
