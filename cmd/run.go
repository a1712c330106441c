package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/varnamala/internal/app"
	"github.com/abhisek/varnamala/internal/content"
	"github.com/abhisek/varnamala/internal/screen"
	"github.com/abhisek/varnamala/internal/stats"
	"github.com/abhisek/varnamala/internal/store"
	"github.com/abhisek/varnamala/internal/wordpack"
)

// openStore opens the database named by --db or the environment.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return st, nil
}

// newDeps builds the shared services over kv, with stored word packs
// registered in the catalog.
func newDeps(cmd *cobra.Command, kv store.KVRepo) *screen.Deps {
	catalog := content.NewCatalog()
	if _, err := wordpack.NewRepo(kv).LoadInto(cmd.Context(), catalog); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load word packs: %v\n", err)
	}
	var opts []stats.Option
	if n := resolveKeepRecent(cmd); n > 0 {
		opts = append(opts, stats.WithRetention(n))
	}
	return screen.NewDeps(kv, catalog, opts...)
}

// runApp opens the store, builds dependencies and launches the TUI. When the
// database cannot be opened the app still runs, without saving anything.
func runApp(cmd *cobra.Command, start func(*screen.Deps) screen.Screen) error {
	var kv store.KVRepo
	st, err := openStore(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		fmt.Fprintln(os.Stderr, "warning: progress will not be saved this session")
		kv = store.NewMemoryKV()
	} else {
		defer st.Close()
		kv = st.KVRepo()
	}

	deps := newDeps(cmd, kv)
	deps.Ephemeral = st == nil

	opts := app.Options{Deps: deps}
	if start != nil {
		opts.Start = start(deps)
	}
	return app.Run(opts)
}
