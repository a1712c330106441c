package matching

import (
	"math/rand/v2"

	"github.com/abhisek/varnamala/internal/content"
)

// DeckLetters is the number of letters dealt into one deck.
const DeckLetters = 6

// CardKind distinguishes the two faces of a letter.
type CardKind int

const (
	LetterCard CardKind = iota
	PronunciationCard
)

func (k CardKind) String() string {
	if k == LetterCard {
		return "letter"
	}
	return "pronunciation"
}

// Card is one card of a memory deck.
type Card struct {
	ID            string
	Character     string
	Pronunciation string
	Kind          CardKind
	Flipped       bool
	Matched       bool
}

// Face returns the text shown when the card is face up.
func (c Card) Face() string {
	if c.Kind == LetterCard {
		return c.Character
	}
	return c.Pronunciation
}

// IsMatch reports whether a and b form a pair: one letter card and one
// pronunciation card of the same character.
func IsMatch(a, b Card) bool {
	return a.Kind != b.Kind && a.Character == b.Character
}

// BuildDeck deals two cards for each of the first DeckLetters letters and
// shuffles them. Shorter alphabets yield smaller decks.
func BuildDeck(letters []content.Letter, rng *rand.Rand) []Card {
	if len(letters) > DeckLetters {
		letters = letters[:DeckLetters]
	}
	deck := make([]Card, 0, 2*len(letters))
	for _, l := range letters {
		deck = append(deck,
			Card{ID: l.ID + "-letter", Character: l.Character, Pronunciation: l.Pronunciation, Kind: LetterCard},
			Card{ID: l.ID + "-pronunciation", Character: l.Character, Pronunciation: l.Pronunciation, Kind: PronunciationCard},
		)
	}
	rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
	return deck
}
