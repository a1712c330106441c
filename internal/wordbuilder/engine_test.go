package wordbuilder

import (
	"math/rand/v2"
	"slices"
	"testing"
	"time"

	"github.com/abhisek/varnamala/internal/content"
	"github.com/abhisek/varnamala/internal/stats"
)

var kamal = content.Word{ID: "h1", Word: "कमल", Meaning: "Lotus", Characters: []string{"क", "म", "ल"}}

type testClock struct{ t time.Time }

func (c *testClock) Now() time.Time { return c.t }

func newEngine(t *testing.T, words ...content.Word) (*Engine, *testClock, *[]stats.GameStats) {
	t.Helper()
	clock := &testClock{t: time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC)}
	var records []stats.GameStats
	e := New(Config{
		Language:        "hindi",
		Words:           words,
		Rand:            rand.New(rand.NewPCG(3, 4)),
		Now:             clock.Now,
		OnRoundComplete: func(s stats.GameStats) { records = append(records, s) },
	})
	return e, clock, &records
}

// pick selects the first available copy of each letter in order.
func pick(t *testing.T, e *Engine, letters ...string) {
	t.Helper()
	for _, l := range letters {
		i := slices.Index(e.Available(), l)
		if i < 0 {
			t.Fatalf("letter %s not available in %v", l, e.Available())
		}
		if !e.Select(i) {
			t.Fatalf("select %s rejected", l)
		}
	}
}

func sorted(s []string) []string {
	s = slices.Clone(s)
	slices.Sort(s)
	return s
}

func TestBuildPool(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 9))
	pool := content.CharacterPool(content.Words("hindi"))
	got := BuildPool(kamal, pool, rng)
	if len(got) != PoolSize {
		t.Fatalf("pool size = %d, want %d", len(got), PoolSize)
	}
	for _, ch := range kamal.Characters {
		if !slices.Contains(got, ch) {
			t.Errorf("pool %v is missing %s", got, ch)
		}
	}

	long := content.Word{Word: "abcdefghijkl", Characters: []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"}}
	if got := BuildPool(long, pool, rng); len(got) != len(long.Characters) {
		t.Errorf("long word pool size = %d, want %d", len(got), len(long.Characters))
	}
}

func TestCheckCorrectWord(t *testing.T) {
	e, _, _ := newEngine(t, kamal)
	pick(t, e, "क", "म", "ल")

	if !e.CanCheck() {
		t.Fatal("check should be enabled with a full answer")
	}
	fb, tk, ok := e.Check()
	if !ok || fb != Correct {
		t.Fatalf("check = %v, %v; want Correct", fb, ok)
	}
	if tk.After != SuccessDelay {
		t.Errorf("delay = %v, want %v", tk.After, SuccessDelay)
	}
	if e.RoundScore() != 1 || e.SessionScore() != 1 {
		t.Errorf("scores = %d/%d, want 1/1", e.RoundScore(), e.SessionScore())
	}
	if !e.Busy() {
		t.Error("engine should be busy while feedback shows")
	}

	if !e.Resolve(tk) {
		t.Fatal("resolve failed")
	}
	if len(e.Selected()) != 0 || e.Feedback() != NoFeedback || e.Busy() {
		t.Error("resolve should deal a fresh round")
	}
	if len(e.Available()) != PoolSize {
		t.Errorf("pool size = %d, want %d", len(e.Available()), PoolSize)
	}
}

func TestCheckWrongOrder(t *testing.T) {
	e, _, _ := newEngine(t, kamal)
	pick(t, e, "क", "म", "ल")
	_, tk, _ := e.Check()
	e.Resolve(tk)

	pick(t, e, "म", "क", "ल")
	fb, tk, ok := e.Check()
	if !ok || fb != Incorrect {
		t.Fatalf("check = %v, %v; want Incorrect", fb, ok)
	}
	if tk.After != FailureDelay {
		t.Errorf("delay = %v, want %v", tk.After, FailureDelay)
	}
	if e.RoundScore() != 0 {
		t.Errorf("round score = %d, want 0", e.RoundScore())
	}
	if e.SessionScore() != 1 {
		t.Errorf("session score = %d, want 1", e.SessionScore())
	}
}

func TestCheckDisabledUntilFull(t *testing.T) {
	e, _, _ := newEngine(t, kamal)
	pick(t, e, "क", "म")
	if e.CanCheck() {
		t.Error("check should be disabled with a partial answer")
	}
	if _, _, ok := e.Check(); ok {
		t.Error("check with a partial answer should be rejected")
	}
	if e.Attempts() != 0 {
		t.Errorf("attempts = %d, want 0", e.Attempts())
	}
}

func TestSelectionCappedAtWordLength(t *testing.T) {
	e, _, _ := newEngine(t, kamal)
	for range 3 {
		if !e.Select(0) {
			t.Fatal("select rejected before the answer was full")
		}
	}
	if e.Select(0) {
		t.Error("select beyond the word length should be rejected")
	}
	if len(e.Selected()) != 3 || len(e.Available()) != PoolSize-3 {
		t.Errorf("selected=%d available=%d", len(e.Selected()), len(e.Available()))
	}
}

func TestSelectDeselectRestoresMultiset(t *testing.T) {
	e, _, _ := newEngine(t, kamal)
	e.Select(1)
	beforeSel := e.Selected()
	beforeAvail := sorted(e.Available())

	if !e.Select(4) {
		t.Fatal("select rejected")
	}
	if !e.Deselect(len(e.Selected()) - 1) {
		t.Fatal("deselect rejected")
	}

	if !slices.Equal(e.Selected(), beforeSel) {
		t.Errorf("selected = %v, want %v", e.Selected(), beforeSel)
	}
	if !slices.Equal(sorted(e.Available()), beforeAvail) {
		t.Errorf("available = %v, want %v", sorted(e.Available()), beforeAvail)
	}
}

func TestDeselectAppendsToPool(t *testing.T) {
	e, _, _ := newEngine(t, kamal)
	pick(t, e, "म", "क")
	if !e.Deselect(0) {
		t.Fatal("deselect rejected")
	}
	avail := e.Available()
	if avail[len(avail)-1] != "म" {
		t.Errorf("last available = %s, want म", avail[len(avail)-1])
	}
	if !slices.Equal(e.Selected(), []string{"क"}) {
		t.Errorf("selected = %v", e.Selected())
	}
	if e.Deselect(5) || e.Deselect(-1) {
		t.Error("out of range deselect should be rejected")
	}
}

func TestTotalTilesConstant(t *testing.T) {
	e, _, _ := newEngine(t, kamal)
	total := len(e.Selected()) + len(e.Available())
	e.Select(2)
	e.Select(0)
	e.Deselect(1)
	e.Select(3)
	if got := len(e.Selected()) + len(e.Available()); got != total {
		t.Errorf("tiles = %d, want %d", got, total)
	}
}

func TestInputLockedDuringFeedback(t *testing.T) {
	e, _, _ := newEngine(t, kamal)
	pick(t, e, "क", "म", "ल")
	e.Check()
	if e.Deselect(0) {
		t.Error("deselect during feedback should be rejected")
	}
	if e.Select(0) {
		t.Error("select during feedback should be rejected")
	}
}

func TestSessionRecord(t *testing.T) {
	e, clock, records := newEngine(t, kamal)
	for range 2 {
		pick(t, e, "क", "म", "ल")
		_, tk, _ := e.Check()
		clock.t = clock.t.Add(10 * time.Second)
		e.Resolve(tk)
	}
	pick(t, e, "ल", "म", "क")
	_, tk, _ := e.Check()

	clock.t = clock.t.Add(10 * time.Second)
	rec := e.NewGame()
	if rec == nil {
		t.Fatal("NewGame should end the session with a record")
	}
	if rec.GameType != stats.WordBuilder || rec.Moves != 2 || rec.Time != 30 || rec.Language != "hindi" {
		t.Errorf("record = %+v", rec)
	}
	if len(*records) != 1 {
		t.Errorf("records = %d, want 1", len(*records))
	}
	if e.Resolve(tk) {
		t.Error("ticket from the ended session should be ignored")
	}
	if e.SessionScore() != 0 || e.RoundScore() != 0 {
		t.Error("scores should reset on a new game")
	}
	if e.Elapsed() != 0 {
		t.Errorf("elapsed = %v, want 0 right after restart", e.Elapsed())
	}
}

func TestEndWithoutAttemptsEmitsNothing(t *testing.T) {
	e, _, records := newEngine(t, kamal)
	e.Select(0)
	if rec := e.End(); rec != nil {
		t.Errorf("record = %+v, want nil", rec)
	}
	if len(*records) != 0 {
		t.Error("no record expected")
	}
}

func TestIdleSessionRecordedAfterMinimum(t *testing.T) {
	e, clock, records := newEngine(t, kamal)
	clock.t = clock.t.Add(MinSession + 5*time.Second)
	rec := e.End()
	if rec == nil {
		t.Fatal("a long idle session should be recorded")
	}
	if rec.Moves != 0 || rec.Time != 15 {
		t.Errorf("record = %+v, want 0 moves in 15s", rec)
	}
	if len(*records) != 1 {
		t.Errorf("records = %d, want 1", len(*records))
	}
}

func TestEndWithoutWordsEmitsNothing(t *testing.T) {
	e, clock, records := newEngine(t)
	clock.t = clock.t.Add(time.Minute)
	if rec := e.End(); rec != nil {
		t.Errorf("record = %+v, want nil", rec)
	}
	if len(*records) != 0 {
		t.Error("no record expected")
	}
}

func TestNextWordSkipsDuplicateEntries(t *testing.T) {
	// The same id or spelling listed twice still counts as one word.
	sameID := content.Word{ID: "h1", Word: "कमल", Meaning: "Lotus", Characters: []string{"क", "म", "ल"}}
	sameText := content.Word{ID: "pack-1", Word: "कमल", Meaning: "Lotus", Characters: []string{"क", "म", "ल"}}
	other := content.Word{ID: "h3", Word: "घर", Meaning: "House", Characters: []string{"घ", "र"}}
	e, _, _ := newEngine(t, kamal, sameID, sameText, other)
	for range 20 {
		prev, _ := e.Word()
		e.NextWord()
		next, _ := e.Word()
		if next.Word == prev.Word {
			t.Fatalf("word %s repeated", next.Word)
		}
	}
}

func TestEndIsIdempotent(t *testing.T) {
	e, _, records := newEngine(t, kamal)
	pick(t, e, "क", "म", "ल")
	e.Check()
	e.Close()
	e.Close()
	if len(*records) != 1 {
		t.Errorf("records = %d, want 1", len(*records))
	}
}

func TestNextWordSkipsWithoutScoring(t *testing.T) {
	other := content.Word{ID: "h3", Word: "घर", Meaning: "House", Characters: []string{"घ", "र"}}
	e, _, _ := newEngine(t, kamal, other)
	first, _ := e.Word()
	e.Select(0)
	e.NextWord()
	next, _ := e.Word()
	if next.ID == first.ID {
		t.Error("NextWord should not repeat the word immediately")
	}
	if len(e.Selected()) != 0 || e.SessionScore() != 0 || e.Attempts() != 0 {
		t.Error("NextWord should not score")
	}
}

func TestNoWords(t *testing.T) {
	e, _, _ := newEngine(t)
	if _, ok := e.Word(); ok {
		t.Error("no word expected")
	}
	if e.Select(0) || e.CanCheck() {
		t.Error("empty engine should reject input")
	}
}
