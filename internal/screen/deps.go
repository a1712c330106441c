package screen

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/abhisek/varnamala/internal/content"
	"github.com/abhisek/varnamala/internal/progress"
	"github.com/abhisek/varnamala/internal/stats"
	"github.com/abhisek/varnamala/internal/store"
)

// Deps are the services shared by every screen.
type Deps struct {
	Catalog  *content.Catalog
	Progress *progress.Tracker
	Stats    *stats.Store

	// Ephemeral is set when nothing is persisted, e.g. the database could
	// not be opened.
	Ephemeral bool

	// Rand and Now are injected for tests. Nil means a random source and
	// time.Now.
	Rand *rand.Rand
	Now  func() time.Time
}

// NewDeps wires the shared services over one key-value store.
func NewDeps(kv store.KVRepo, catalog *content.Catalog, statsOpts ...stats.Option) *Deps {
	return &Deps{
		Catalog:  catalog,
		Progress: progress.NewTracker(kv, catalog),
		Stats:    stats.NewStore(kv, statsOpts...),
	}
}

// Record saves a finished round. The error is for display only; the game
// carries on either way.
func (d *Deps) Record(rec stats.GameStats) error {
	_, err := d.Stats.Record(context.Background(), rec)
	return err
}

// SaveWarning is the status line shown after a failed write.
func SaveWarning(err error) string {
	if err == nil {
		return ""
	}
	return "not saved: " + err.Error()
}
