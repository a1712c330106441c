// Package wordbuilder implements the word-builder game: the learner is shown
// a word and its meaning and assembles it from a shuffled pool of
// letter-units.
package wordbuilder

import (
	"math/rand/v2"
	"slices"
	"strings"
	"time"

	"github.com/abhisek/varnamala/internal/content"
	"github.com/abhisek/varnamala/internal/delay"
	"github.com/abhisek/varnamala/internal/stats"
)

const (
	// PoolSize is the number of letter-units offered per round, unless the
	// word alone is longer.
	PoolSize = 10

	// SuccessDelay is how long a solved word stays on screen.
	SuccessDelay = 2 * time.Second

	// FailureDelay is how long a wrong answer stays on screen.
	FailureDelay = time.Second

	// MinSession is how long a session must run to be recorded when no
	// word was checked.
	MinSession = 10 * time.Second
)

// Feedback is the verdict shown after a check.
type Feedback int

const (
	NoFeedback Feedback = iota
	Correct
	Incorrect
)

// Config configures an Engine.
type Config struct {
	Language string
	Words    []content.Word

	// Rand picks words and shuffles pools. Nil uses a randomly seeded source.
	Rand *rand.Rand

	// Now is the clock used for session timing. Nil uses time.Now.
	Now func() time.Time

	// OnRoundComplete receives the record of every finished session.
	OnRoundComplete func(stats.GameStats)
}

// Engine runs one word-builder session. Scores accumulate across rounds
// until the session ends. It is not safe for concurrent use.
type Engine struct {
	cfg  Config
	gate *delay.Gate
	pool []string

	word      content.Word
	hasWord   bool
	selected  []string
	available []string
	feedback  Feedback
	pending   delay.Ticket

	roundScore   int
	sessionScore int
	attempts     int
	started      time.Time
	running      bool
}

// New creates an Engine, starts the session timer and deals the first word.
func New(cfg Config) *Engine {
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	e := &Engine{
		cfg:  cfg,
		gate: delay.NewGate(),
		pool: content.CharacterPool(cfg.Words),
	}
	e.startTimer()
	e.newRound()
	return e
}

// BuildPool returns the word's letter-units plus random fillers drawn from
// pool, shuffled. Fillers top the result up to PoolSize.
func BuildPool(word content.Word, pool []string, rng *rand.Rand) []string {
	out := slices.Clone(word.Characters)
	if len(pool) > 0 {
		for len(out) < PoolSize {
			out = append(out, pool[rng.IntN(len(pool))])
		}
	}
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

func (e *Engine) startTimer() {
	if !e.running {
		e.started = e.cfg.Now()
		e.running = true
	}
}

// newRound picks a random word, avoiding an immediate repeat when the table
// allows it, and deals a fresh pool.
func (e *Engine) newRound() {
	e.selected = nil
	e.feedback = NoFeedback
	e.pending = delay.Ticket{}

	if len(e.cfg.Words) == 0 {
		e.word, e.hasWord = content.Word{}, false
		e.available = nil
		return
	}
	i := e.cfg.Rand.IntN(len(e.cfg.Words))
	if e.hasWord && sameWord(e.cfg.Words[i], e.word) {
		var others []int
		for j, w := range e.cfg.Words {
			if !sameWord(w, e.word) {
				others = append(others, j)
			}
		}
		if len(others) > 0 {
			i = others[e.cfg.Rand.IntN(len(others))]
		}
	}
	e.word, e.hasWord = e.cfg.Words[i], true
	e.available = BuildPool(e.word, e.pool, e.cfg.Rand)
}

func sameWord(a, b content.Word) bool {
	return a.ID == b.ID || a.Word == b.Word
}

// Select moves the available letter at index to the end of the answer. It
// is rejected when there is no word, feedback is showing, the index is out
// of range, or the answer already has as many letters as the word.
func (e *Engine) Select(index int) bool {
	if !e.hasWord || e.Busy() || index < 0 || index >= len(e.available) {
		return false
	}
	if len(e.selected) >= len(e.word.Characters) {
		return false
	}
	e.selected = append(e.selected, e.available[index])
	e.available = slices.Delete(e.available, index, index+1)
	return true
}

// Deselect moves the answer letter at index back to the end of the pool.
func (e *Engine) Deselect(index int) bool {
	if e.Busy() || index < 0 || index >= len(e.selected) {
		return false
	}
	e.available = append(e.available, e.selected[index])
	e.selected = slices.Delete(e.selected, index, index+1)
	return true
}

// CanCheck reports whether the answer is full and may be checked.
func (e *Engine) CanCheck() bool {
	return e.hasWord && !e.Busy() && len(e.selected) == len(e.word.Characters)
}

// Check compares the answer with the word. A correct answer scores a point
// for the round and the session; a wrong one resets the round score. Either
// way a new word follows once the returned ticket is resolved. ok is false
// if the answer cannot be checked yet.
func (e *Engine) Check() (fb Feedback, t delay.Ticket, ok bool) {
	if !e.CanCheck() {
		return NoFeedback, delay.Ticket{}, false
	}
	e.attempts++
	if strings.Join(e.selected, "") == e.word.Word {
		e.roundScore++
		e.sessionScore++
		e.feedback = Correct
		e.pending = e.gate.Schedule(SuccessDelay)
	} else {
		e.roundScore = 0
		e.feedback = Incorrect
		e.pending = e.gate.Schedule(FailureDelay)
	}
	return e.feedback, e.pending, true
}

// Resolve advances to a new word after feedback. Stale tickets are ignored.
func (e *Engine) Resolve(t delay.Ticket) bool {
	if !e.gate.Claim(t) {
		return false
	}
	e.newRound()
	return true
}

// NextWord skips to another word without scoring.
func (e *Engine) NextWord() {
	e.gate.Reset()
	e.newRound()
}

// NewGame ends the current session, emitting its record, then restarts the
// timer and the scores.
func (e *Engine) NewGame() *stats.GameStats {
	rec := e.End()
	e.roundScore = 0
	e.sessionScore = 0
	e.attempts = 0
	e.startTimer()
	e.newRound()
	return rec
}

// End finishes the session and cancels pending feedback. A session in which
// no word was checked is only recorded, with a zero score, once it has run
// for MinSession. Calling End again before a new game is a no-op.
func (e *Engine) End() *stats.GameStats {
	e.gate.Reset()
	e.pending = delay.Ticket{}
	if !e.running {
		return nil
	}
	e.running = false
	now := e.cfg.Now()
	if !e.hasWord || (e.attempts == 0 && now.Sub(e.started) < MinSession) {
		return nil
	}
	rec := stats.GameStats{
		Language: e.cfg.Language,
		GameType: stats.WordBuilder,
		Moves:    e.sessionScore,
		Time:     int(now.Sub(e.started).Seconds()),
		Date:     now,
	}
	if e.cfg.OnRoundComplete != nil {
		e.cfg.OnRoundComplete(rec)
	}
	return &rec
}

// Close ends the session. It satisfies the screen teardown hook.
func (e *Engine) Close() {
	e.End()
}

// Busy reports whether feedback is showing and input is locked.
func (e *Engine) Busy() bool {
	return !e.pending.IsZero()
}

// Word returns the current target word.
func (e *Engine) Word() (content.Word, bool) {
	return e.word, e.hasWord
}

// Selected returns a copy of the answer built so far.
func (e *Engine) Selected() []string { return slices.Clone(e.selected) }

// Available returns a copy of the remaining pool.
func (e *Engine) Available() []string { return slices.Clone(e.available) }

// Feedback returns the verdict of the last check, until the next word.
func (e *Engine) Feedback() Feedback { return e.feedback }

// RoundScore returns the current streak of correct words.
func (e *Engine) RoundScore() int { return e.roundScore }

// SessionScore returns the number of words solved this session.
func (e *Engine) SessionScore() int { return e.sessionScore }

// Attempts returns the number of checks this session.
func (e *Engine) Attempts() int { return e.attempts }

// Elapsed returns the session time so far.
func (e *Engine) Elapsed() time.Duration {
	if !e.running {
		return 0
	}
	return e.cfg.Now().Sub(e.started)
}

// Language returns the session's language.
func (e *Engine) Language() string { return e.cfg.Language }
