package matching

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/abhisek/varnamala/internal/content"
	"github.com/abhisek/varnamala/internal/stats"
)

type testClock struct{ t time.Time }

func (c *testClock) Now() time.Time { return c.t }

func newEngine(t *testing.T, letters []content.Letter) (*Engine, *testClock, *[]stats.GameStats) {
	t.Helper()
	clock := &testClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	var records []stats.GameStats
	e := New(Config{
		Language:        "hindi",
		Letters:         letters,
		Rand:            rand.New(rand.NewPCG(1, 2)),
		Now:             clock.Now,
		OnRoundComplete: func(s stats.GameStats) { records = append(records, s) },
	})
	return e, clock, &records
}

// partnerOf returns the index of the card that pairs with cards[i].
func partnerOf(cards []Card, i int) int {
	for j, c := range cards {
		if j != i && IsMatch(cards[i], c) {
			return j
		}
	}
	return -1
}

// mismatchOf returns the index of an unmatched card that does not pair with cards[i].
func mismatchOf(cards []Card, i int) int {
	for j, c := range cards {
		if j != i && !c.Matched && !IsMatch(cards[i], c) {
			return j
		}
	}
	return -1
}

func TestBuildDeck(t *testing.T) {
	letters := content.Letters("hindi")
	deck := BuildDeck(letters, rand.New(rand.NewPCG(7, 7)))
	if len(deck) != 2*DeckLetters {
		t.Fatalf("deck size = %d, want %d", len(deck), 2*DeckLetters)
	}

	kinds := make(map[string][2]int)
	ids := make(map[string]bool)
	for _, c := range deck {
		k := kinds[c.Character]
		k[c.Kind]++
		kinds[c.Character] = k
		if ids[c.ID] {
			t.Errorf("duplicate card id %s", c.ID)
		}
		ids[c.ID] = true
		if c.Flipped || c.Matched {
			t.Errorf("card %s dealt face up", c.ID)
		}
	}
	for ch, k := range kinds {
		if k[LetterCard] != 1 || k[PronunciationCard] != 1 {
			t.Errorf("character %s has %d letter and %d pronunciation cards", ch, k[LetterCard], k[PronunciationCard])
		}
	}
	for _, l := range letters[:DeckLetters] {
		if !ids[l.ID+"-letter"] || !ids[l.ID+"-pronunciation"] {
			t.Errorf("missing cards for %s", l.ID)
		}
	}
}

func TestBuildDeckShortAlphabet(t *testing.T) {
	letters := content.Letters("tamil")[:2]
	if got := len(BuildDeck(letters, rand.New(rand.NewPCG(1, 1)))); got != 4 {
		t.Errorf("deck size = %d, want 4", got)
	}
}

func TestIsMatch(t *testing.T) {
	ka := Card{Character: "क", Kind: LetterCard}
	kaSound := Card{Character: "क", Kind: PronunciationCard}
	kha := Card{Character: "ख", Kind: LetterCard}
	khaSound := Card{Character: "ख", Kind: PronunciationCard}

	tests := []struct {
		name string
		a, b Card
		want bool
	}{
		{"letter then sound", ka, kaSound, true},
		{"sound then letter", kaSound, ka, true},
		{"same kind same character", ka, ka, false},
		{"different character", ka, khaSound, false},
		{"two letters", ka, kha, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsMatch(tt.a, tt.b); got != tt.want {
				t.Errorf("IsMatch = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFace(t *testing.T) {
	c := Card{Character: "क", Pronunciation: "ka", Kind: LetterCard}
	if c.Face() != "क" {
		t.Errorf("letter face = %q", c.Face())
	}
	c.Kind = PronunciationCard
	if c.Face() != "ka" {
		t.Errorf("pronunciation face = %q", c.Face())
	}
}

func TestFullRoundCompletes(t *testing.T) {
	e, clock, records := newEngine(t, content.Letters("hindi"))
	_, total := e.Pairs()

	resolved := 0
	for !e.Complete() {
		cards := e.Cards()
		first := -1
		for i, c := range cards {
			if !c.Matched {
				first = i
				break
			}
		}
		if _, ok := e.Select(first); !ok {
			t.Fatalf("select %d rejected", first)
		}
		tk, ok := e.Select(partnerOf(cards, first))
		if !ok || tk.IsZero() {
			t.Fatal("second select should schedule a resolution")
		}
		if tk.After != MatchDelay {
			t.Errorf("delay = %v, want %v", tk.After, MatchDelay)
		}
		if len(*records) != 0 {
			t.Fatal("round completed before the last pair resolved")
		}
		clock.t = clock.t.Add(5 * time.Second)
		res, ok := e.Resolve(tk)
		if !ok || !res.Matched {
			t.Fatalf("resolve = %+v, %v", res, ok)
		}
		resolved++
	}

	if resolved != total {
		t.Errorf("resolved pairs = %d, want %d", resolved, total)
	}
	if len(*records) != 1 {
		t.Fatalf("records = %d, want 1", len(*records))
	}
	r := (*records)[0]
	if r.GameType != stats.Memory || r.Language != "hindi" || r.Moves != total || r.Time != 5*total {
		t.Errorf("record = %+v", r)
	}
	for _, c := range e.Cards() {
		if !c.Matched {
			t.Errorf("card %s not matched after completion", c.ID)
		}
	}
}

func TestMismatchFlipsBack(t *testing.T) {
	e, _, records := newEngine(t, content.Letters("hindi"))
	cards := e.Cards()
	other := mismatchOf(cards, 0)

	e.Select(0)
	tk, ok := e.Select(other)
	if !ok || tk.After != MismatchDelay {
		t.Fatalf("ticket = %+v, %v; want mismatch delay", tk, ok)
	}
	if e.Moves() != 1 {
		t.Errorf("moves = %d, want 1", e.Moves())
	}

	res, ok := e.Resolve(tk)
	if !ok || res.Matched {
		t.Fatalf("resolve = %+v, %v", res, ok)
	}
	for _, i := range []int{0, other} {
		if c := e.Cards()[i]; c.Flipped || c.Matched {
			t.Errorf("card %d = %+v, want face down", i, c)
		}
	}
	if len(*records) != 0 {
		t.Error("mismatch must not complete the round")
	}
}

func TestSelectIsNoOpWhileBusy(t *testing.T) {
	e, _, _ := newEngine(t, content.Letters("hindi"))
	cards := e.Cards()
	other := mismatchOf(cards, 0)
	e.Select(0)
	tk, _ := e.Select(other)

	before := e.Cards()
	third := -1
	for i := range cards {
		if i != 0 && i != other {
			third = i
			break
		}
	}
	if _, ok := e.Select(third); ok {
		t.Error("third select should be rejected while a pair is pending")
	}
	after := e.Cards()
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("card %d changed: %+v -> %+v", i, before[i], after[i])
		}
	}
	if e.Moves() != 1 {
		t.Errorf("moves = %d, want 1", e.Moves())
	}

	e.Resolve(tk)
	if _, ok := e.Select(third); !ok {
		t.Error("select should be accepted after resolution")
	}
}

func TestSelectRejectsFlippedAndOutOfRange(t *testing.T) {
	e, _, _ := newEngine(t, content.Letters("hindi"))
	e.Select(0)
	if _, ok := e.Select(0); ok {
		t.Error("selecting a face-up card should be rejected")
	}
	if e.Moves() != 0 {
		t.Errorf("moves = %d, want 0", e.Moves())
	}
	for _, i := range []int{-1, len(e.Cards())} {
		if _, ok := e.Select(i); ok {
			t.Errorf("index %d should be rejected", i)
		}
	}
}

func TestSelectRejectsMatched(t *testing.T) {
	e, _, _ := newEngine(t, content.Letters("hindi"))
	cards := e.Cards()
	p := partnerOf(cards, 0)
	e.Select(0)
	tk, _ := e.Select(p)
	e.Resolve(tk)

	if _, ok := e.Select(0); ok {
		t.Error("matched card should be rejected")
	}
}

func TestNewGameCancelsPending(t *testing.T) {
	e, _, _ := newEngine(t, content.Letters("hindi"))
	cards := e.Cards()
	e.Select(0)
	tk, _ := e.Select(mismatchOf(cards, 0))

	e.NewGame()
	if _, ok := e.Resolve(tk); ok {
		t.Error("ticket from the previous round should be ignored")
	}
	if e.Moves() != 0 || e.Busy() {
		t.Errorf("new game state: moves=%d busy=%v", e.Moves(), e.Busy())
	}
	for _, c := range e.Cards() {
		if c.Flipped || c.Matched {
			t.Errorf("card %s not reset", c.ID)
		}
	}
}

func TestCloseCancelsPending(t *testing.T) {
	e, _, records := newEngine(t, content.Letters("hindi")[:1])
	e.Select(0)
	tk, _ := e.Select(1)
	e.Close()
	if _, ok := e.Resolve(tk); ok {
		t.Error("resolve after Close should be ignored")
	}
	if len(*records) != 0 {
		t.Error("closed engine emitted a record")
	}
}

func TestEmptyDeckIsComplete(t *testing.T) {
	e, _, records := newEngine(t, nil)
	if !e.Complete() {
		t.Error("empty deck should be complete")
	}
	if _, ok := e.Select(0); ok {
		t.Error("select on empty deck should be rejected")
	}
	if len(*records) != 0 {
		t.Error("empty deck should not emit a record")
	}
	if e.Elapsed() != 0 {
		t.Errorf("elapsed = %v, want 0", e.Elapsed())
	}
}

func TestResolveTwiceIgnored(t *testing.T) {
	e, _, _ := newEngine(t, content.Letters("hindi"))
	cards := e.Cards()
	e.Select(0)
	tk, _ := e.Select(partnerOf(cards, 0))
	if _, ok := e.Resolve(tk); !ok {
		t.Fatal("first resolve failed")
	}
	if _, ok := e.Resolve(tk); ok {
		t.Error("second resolve should be ignored")
	}
}
