// Package matching implements the memory-match game: a deck of letter and
// pronunciation cards where the learner turns two cards at a time looking
// for pairs.
package matching

import (
	"math/rand/v2"
	"slices"
	"time"

	"github.com/abhisek/varnamala/internal/content"
	"github.com/abhisek/varnamala/internal/delay"
	"github.com/abhisek/varnamala/internal/stats"
)

// Display delays before a turned pair is resolved.
const (
	MatchDelay    = 500 * time.Millisecond
	MismatchDelay = time.Second
)

// Config configures an Engine.
type Config struct {
	Language string
	Letters  []content.Letter

	// Rand shuffles the deck. Nil uses a randomly seeded source.
	Rand *rand.Rand

	// Now is the clock used for round timing. Nil uses time.Now.
	Now func() time.Time

	// OnRoundComplete receives the record of every finished round.
	OnRoundComplete func(stats.GameStats)
}

// Result describes a resolved pair.
type Result struct {
	Matched  bool
	First    int
	Second   int
	Complete bool

	// Record is set when the pair finished the round.
	Record *stats.GameStats
}

// Engine runs one memory-match session. It is not safe for concurrent use;
// the UI drives it from a single goroutine.
type Engine struct {
	cfg     Config
	gate    *delay.Gate
	cards   []Card
	faceUp  []int
	pending delay.Ticket
	moves   int
	started time.Time
	ended   time.Time
	done    bool
}

// New creates an Engine and deals the first round.
func New(cfg Config) *Engine {
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	e := &Engine{cfg: cfg, gate: delay.NewGate()}
	e.NewGame()
	return e
}

// NewGame discards the current round, cancelling any pending resolution,
// and deals a fresh shuffled deck.
func (e *Engine) NewGame() {
	e.gate.Reset()
	e.cards = BuildDeck(e.cfg.Letters, e.cfg.Rand)
	e.faceUp = nil
	e.pending = delay.Ticket{}
	e.moves = 0
	e.started = e.cfg.Now()
	e.ended = time.Time{}
	// An empty deck has nothing to match and is complete from the start.
	// No record is emitted for it.
	e.done = len(e.cards) == 0
	if e.done {
		e.ended = e.started
	}
}

// Select turns the card at index face up. It returns ok=false and changes
// nothing if a pair is awaiting resolution, the round is over, the index is
// out of range, or the card is already face up or matched.
//
// When the card completes a pair the move counter is incremented and the
// returned ticket must be passed to Resolve after ticket.After. Otherwise the
// ticket is zero.
func (e *Engine) Select(index int) (delay.Ticket, bool) {
	if e.done || e.Busy() || index < 0 || index >= len(e.cards) {
		return delay.Ticket{}, false
	}
	c := &e.cards[index]
	if c.Flipped || c.Matched {
		return delay.Ticket{}, false
	}

	c.Flipped = true
	e.faceUp = append(e.faceUp, index)
	if len(e.faceUp) < 2 {
		return delay.Ticket{}, true
	}

	e.moves++
	wait := MismatchDelay
	if IsMatch(e.cards[e.faceUp[0]], e.cards[e.faceUp[1]]) {
		wait = MatchDelay
	}
	e.pending = e.gate.Schedule(wait)
	return e.pending, true
}

// Resolve settles the pending pair. A ticket from a previous round or a
// closed engine is ignored and ok is false.
func (e *Engine) Resolve(t delay.Ticket) (Result, bool) {
	if !e.gate.Claim(t) || len(e.faceUp) != 2 {
		return Result{}, false
	}
	i, j := e.faceUp[0], e.faceUp[1]
	res := Result{First: i, Second: j, Matched: IsMatch(e.cards[i], e.cards[j])}

	if res.Matched {
		e.cards[i].Matched = true
		e.cards[j].Matched = true
	} else {
		e.cards[i].Flipped = false
		e.cards[j].Flipped = false
	}
	e.faceUp = nil
	e.pending = delay.Ticket{}

	if res.Matched && e.allMatched() {
		e.done = true
		e.ended = e.cfg.Now()
		rec := stats.GameStats{
			Language: e.cfg.Language,
			GameType: stats.Memory,
			Moves:    e.moves,
			Time:     int(e.ended.Sub(e.started).Seconds()),
			Date:     e.ended,
		}
		res.Complete = true
		res.Record = &rec
		if e.cfg.OnRoundComplete != nil {
			e.cfg.OnRoundComplete(rec)
		}
	}
	return res, true
}

func (e *Engine) allMatched() bool {
	for _, c := range e.cards {
		if !c.Matched {
			return false
		}
	}
	return true
}

// Close cancels any pending resolution. The engine ignores tickets issued
// before Close.
func (e *Engine) Close() {
	e.gate.Reset()
	e.pending = delay.Ticket{}
}

// Busy reports whether two cards are face up awaiting resolution.
func (e *Engine) Busy() bool {
	return len(e.faceUp) >= 2
}

// Cards returns a copy of the deck.
func (e *Engine) Cards() []Card {
	return slices.Clone(e.cards)
}

// Moves returns the number of pairs turned this round.
func (e *Engine) Moves() int { return e.moves }

// Complete reports whether every card is matched.
func (e *Engine) Complete() bool { return e.done }

// Pairs returns the number of matched pairs and the number of pairs in the deck.
func (e *Engine) Pairs() (matched, total int) {
	for _, c := range e.cards {
		if c.Matched {
			matched++
		}
	}
	return matched / 2, len(e.cards) / 2
}

// Elapsed returns the round time so far, frozen once the round completes.
func (e *Engine) Elapsed() time.Duration {
	if e.done {
		return e.ended.Sub(e.started)
	}
	return e.cfg.Now().Sub(e.started)
}

// Language returns the language the deck was dealt from.
func (e *Engine) Language() string { return e.cfg.Language }
