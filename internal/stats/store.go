package stats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/abhisek/varnamala/internal/store"
)

// Key is the storage key of the persisted DashboardStats document.
const Key = "gameStats"

// ErrInvalidRecord is returned by Record for records that cannot be merged.
var ErrInvalidRecord = errors.New("invalid game record")

// Store persists DashboardStats in a KVRepo. Writes are read-modify-write
// with last-write-wins semantics. A document is only written after it has
// been read successfully; records that could not be saved are kept and
// replayed onto the next successful read.
type Store struct {
	mu      sync.Mutex
	kv      store.KVRepo
	keep    int
	now     func() time.Time
	last    DashboardStats
	pending []GameStats
}

// Option configures a Store.
type Option func(*Store)

// WithRetention caps the history at the n most recent games. n <= 0 keeps
// every game.
func WithRetention(n int) Option {
	return func(s *Store) { s.keep = n }
}

// WithClock overrides the clock used to date records that carry no date.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore creates a Store over kv.
func NewStore(kv store.KVRepo, opts ...Option) *Store {
	s := &Store{kv: kv, now: time.Now, last: New()}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Load reads the persisted stats. Missing or malformed documents yield an
// empty DashboardStats. A storage failure is returned alongside the last
// value this Store saw, so callers can keep going without persistence.
func (s *Store) Load(ctx context.Context) (DashboardStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, err := s.load(ctx)
	return d.Clone(), err
}

// load reads the document and applies pending records on top. On a read
// failure it returns the last value seen and leaves the pending list alone.
func (s *Store) load(ctx context.Context) (DashboardStats, error) {
	raw, err := s.kv.Get(ctx, Key)
	var d DashboardStats
	switch {
	case errors.Is(err, store.ErrNotFound):
		d = New()
	case err != nil:
		return s.last, fmt.Errorf("load %s: %w", Key, err)
	default:
		var ok bool
		if d, ok = decode(raw); !ok {
			d = New()
		}
	}
	for _, rec := range s.pending {
		d = Merge(d, rec)
	}
	if len(s.pending) > 0 {
		d = d.Trim(s.keep)
	}
	s.last = d
	return d, nil
}

func decode(raw []byte) (DashboardStats, bool) {
	var d DashboardStats
	if err := json.Unmarshal(raw, &d); err != nil {
		return DashboardStats{}, false
	}
	d.normalize()
	return d, true
}

// Record merges rec into the persisted stats and saves the result. If rec has
// no date it is stamped with the current time. When reading or saving fails
// the merged stats are still returned together with the error, and rec is
// saved by a later call once storage works again. Nothing is written after a
// failed read.
func (s *Store) Record(ctx context.Context, rec GameStats) (DashboardStats, error) {
	if !rec.GameType.Valid() {
		return DashboardStats{}, fmt.Errorf("%w: game type %d", ErrInvalidRecord, int(rec.GameType))
	}
	if rec.Language == "" {
		return DashboardStats{}, fmt.Errorf("%w: missing language", ErrInvalidRecord)
	}
	if rec.Moves < 0 || rec.Time < 0 {
		return DashboardStats{}, fmt.Errorf("%w: negative moves or time", ErrInvalidRecord)
	}
	if rec.Date.IsZero() {
		rec.Date = s.now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending = append(s.pending, rec)
	merged, err := s.load(ctx)
	if err != nil {
		s.last = Merge(s.last, rec).Trim(s.keep)
		return s.last.Clone(), err
	}
	if err := s.save(ctx, merged); err != nil {
		return merged.Clone(), err
	}
	s.pending = nil
	return merged.Clone(), nil
}

// Reset clears stats for one language, or everything when language is empty.
func (s *Store) Reset(ctx context.Context, language string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if language == "" {
		s.pending = nil
		s.last = New()
		if err := s.kv.Delete(ctx, Key); err != nil {
			return fmt.Errorf("reset %s: %w", Key, err)
		}
		return nil
	}

	s.pending = slices.DeleteFunc(s.pending, func(g GameStats) bool {
		return g.Language == language
	})
	d, err := s.load(ctx)
	if err != nil {
		return err
	}
	d = d.Clone()
	if ls := d.Languages[language]; ls != nil {
		d.TotalGames = max(0, d.TotalGames-ls.TotalGames)
		delete(d.Languages, language)
	}
	kept := d.RecentGames[:0]
	for _, g := range d.RecentGames {
		if g.Language != language {
			kept = append(kept, g)
		}
	}
	d.RecentGames = kept
	s.last = d
	if err := s.save(ctx, d); err != nil {
		return err
	}
	s.pending = nil
	return nil
}

// Snapshot returns the JSON document as it would be persisted.
func (s *Store) Snapshot(ctx context.Context) ([]byte, error) {
	d, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(d, "", "  ")
}

func (s *Store) save(ctx context.Context, d DashboardStats) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("encode %s: %w", Key, err)
	}
	if err := s.kv.Put(ctx, Key, raw); err != nil {
		return fmt.Errorf("save %s: %w", Key, err)
	}
	return nil
}
