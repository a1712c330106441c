// Package stats aggregates finished games into per-language, per-game-type
// records for the dashboard.
package stats

import (
	"fmt"
	"maps"
	"slices"
	"time"
)

// GameType identifies which mini-game produced a record.
type GameType int

const (
	Memory GameType = iota + 1
	WordBuilder
	Drawing
)

// GameTypes lists every game type in dashboard order.
var GameTypes = []GameType{Memory, WordBuilder, Drawing}

func (g GameType) String() string {
	switch g {
	case Memory:
		return "memory"
	case WordBuilder:
		return "word-builder"
	case Drawing:
		return "drawing"
	default:
		return fmt.Sprintf("GameType(%d)", int(g))
	}
}

// Valid reports whether g is one of the known game types.
func (g GameType) Valid() bool {
	return g >= Memory && g <= Drawing
}

// ParseGameType parses the persisted name of a game type.
func ParseGameType(s string) (GameType, error) {
	for _, g := range GameTypes {
		if g.String() == s {
			return g, nil
		}
	}
	return 0, fmt.Errorf("unknown game type %q", s)
}

func (g GameType) MarshalText() ([]byte, error) {
	if !g.Valid() {
		return nil, fmt.Errorf("marshal game type: invalid value %d", int(g))
	}
	return []byte(g.String()), nil
}

func (g *GameType) UnmarshalText(b []byte) error {
	v, err := ParseGameType(string(b))
	if err != nil {
		return err
	}
	*g = v
	return nil
}

// Polarity says which direction of a score is an improvement.
type Polarity int

const (
	LowerIsBetter Polarity = iota
	HigherIsBetter
)

// Polarity returns how the moves field of g is ranked. Memory counts card
// turns, so fewer is better. Word-builder moves are a session score and
// drawing moves are the percentage of the alphabet learned, so more is
// better. Time is always lower-is-better.
func (g GameType) Polarity() Polarity {
	if g == Memory {
		return LowerIsBetter
	}
	return HigherIsBetter
}

// Better reports whether a beats b under polarity p.
func (p Polarity) Better(a, b int) bool {
	if p == LowerIsBetter {
		return a < b
	}
	return a > b
}

// GameStats is one finished round or session.
//
// Moves depends on the game type: card turns for Memory, words solved for
// WordBuilder and percent of the alphabet completed for Drawing. Time is in
// seconds.
type GameStats struct {
	Language string    `json:"language"`
	GameType GameType  `json:"gameType"`
	Moves    int       `json:"moves"`
	Time     int       `json:"time"`
	Date     time.Time `json:"date"`
}

// TypeStats aggregates one game type within a language. Best values are
// meaningful only when TotalGames > 0.
type TypeStats struct {
	TotalGames int       `json:"totalGames"`
	BestMoves  int       `json:"bestMoves"`
	BestTime   int       `json:"bestTime"`
	LastPlayed time.Time `json:"lastPlayed"`
	TotalMoves int       `json:"totalMoves"`
	TotalTime  int       `json:"totalTime"`
}

// AverageMoves returns the mean moves, or 0 when no games exist.
func (t *TypeStats) AverageMoves() float64 {
	if t == nil || t.TotalGames == 0 {
		return 0
	}
	return float64(t.TotalMoves) / float64(t.TotalGames)
}

// AverageTime returns the mean time in seconds, or 0 when no games exist.
func (t *TypeStats) AverageTime() float64 {
	if t == nil || t.TotalGames == 0 {
		return 0
	}
	return float64(t.TotalTime) / float64(t.TotalGames)
}

// LanguageStats aggregates all game types within a language.
type LanguageStats struct {
	TotalGames  int        `json:"totalGames"`
	LastPlayed  time.Time  `json:"lastPlayed"`
	Memory      *TypeStats `json:"memory,omitempty"`
	WordBuilder *TypeStats `json:"wordBuilder,omitempty"`
	Drawing     *TypeStats `json:"drawing,omitempty"`
}

// For returns the aggregate for g, or nil if no game of that type was played.
func (l *LanguageStats) For(g GameType) *TypeStats {
	if l == nil {
		return nil
	}
	switch g {
	case Memory:
		return l.Memory
	case WordBuilder:
		return l.WordBuilder
	case Drawing:
		return l.Drawing
	}
	return nil
}

func (l *LanguageStats) set(g GameType, ts *TypeStats) {
	switch g {
	case Memory:
		l.Memory = ts
	case WordBuilder:
		l.WordBuilder = ts
	case Drawing:
		l.Drawing = ts
	}
}

// DashboardStats is the persisted aggregate of every recorded game.
type DashboardStats struct {
	TotalGames  int                       `json:"totalGames"`
	Languages   map[string]*LanguageStats `json:"languages"`
	RecentGames []GameStats               `json:"recentGames"`
}

// New returns an empty DashboardStats.
func New() DashboardStats {
	return DashboardStats{
		Languages:   make(map[string]*LanguageStats),
		RecentGames: []GameStats{},
	}
}

// Clone returns a deep copy of d.
func (d DashboardStats) Clone() DashboardStats {
	out := DashboardStats{
		TotalGames:  d.TotalGames,
		Languages:   make(map[string]*LanguageStats, len(d.Languages)),
		RecentGames: slices.Clone(d.RecentGames),
	}
	if out.RecentGames == nil {
		out.RecentGames = []GameStats{}
	}
	for lang, ls := range d.Languages {
		if ls == nil {
			continue
		}
		c := *ls
		for _, g := range GameTypes {
			if ts := ls.For(g); ts != nil {
				tc := *ts
				c.set(g, &tc)
			}
		}
		out.Languages[lang] = &c
	}
	return out
}

// Merge folds rec into prior and returns the result. prior is not modified.
// Records with an unknown game type still count toward the totals and the
// history but update no per-type aggregate.
func Merge(prior DashboardStats, rec GameStats) DashboardStats {
	out := prior.Clone()
	out.TotalGames++
	out.RecentGames = append(out.RecentGames, rec)

	ls := out.Languages[rec.Language]
	if ls == nil {
		ls = &LanguageStats{}
		out.Languages[rec.Language] = ls
	}
	ls.TotalGames++
	ls.LastPlayed = rec.Date

	if !rec.GameType.Valid() {
		return out
	}

	ts := ls.For(rec.GameType)
	if ts == nil {
		ts = &TypeStats{BestMoves: rec.Moves, BestTime: rec.Time}
		ls.set(rec.GameType, ts)
	} else {
		if rec.GameType.Polarity().Better(rec.Moves, ts.BestMoves) {
			ts.BestMoves = rec.Moves
		}
		ts.BestTime = min(ts.BestTime, rec.Time)
	}
	ts.TotalGames++
	ts.TotalMoves += rec.Moves
	ts.TotalTime += rec.Time
	ts.LastPlayed = rec.Date
	return out
}

// Trim keeps only the n most recent history entries. n <= 0 keeps all.
// Aggregates and TotalGames are left as they are.
func (d DashboardStats) Trim(n int) DashboardStats {
	if n <= 0 || len(d.RecentGames) <= n {
		return d
	}
	d.RecentGames = slices.Clone(d.RecentGames[len(d.RecentGames)-n:])
	return d
}

// Recent returns up to n history entries, newest first.
func (d DashboardStats) Recent(n int) []GameStats {
	games := slices.Clone(d.RecentGames)
	slices.Reverse(games)
	if n > 0 && len(games) > n {
		games = games[:n]
	}
	return games
}

// LanguageIDs returns the languages with at least one record, sorted.
func (d DashboardStats) LanguageIDs() []string {
	return slices.Sorted(maps.Keys(d.Languages))
}

// TypeTotal sums TotalGames of g across all languages.
func (d DashboardStats) TypeTotal(g GameType) int {
	n := 0
	for _, ls := range d.Languages {
		if ts := ls.For(g); ts != nil {
			n += ts.TotalGames
		}
	}
	return n
}

// normalize repairs the nil containers a hand-edited or older document may
// carry.
func (d *DashboardStats) normalize() {
	if d.Languages == nil {
		d.Languages = make(map[string]*LanguageStats)
	}
	if d.RecentGames == nil {
		d.RecentGames = []GameStats{}
	}
	for lang, ls := range d.Languages {
		if ls == nil {
			delete(d.Languages, lang)
		}
	}
}
