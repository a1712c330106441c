package matching

import (
	"context"
	"math/rand/v2"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/varnamala/internal/content"
	game "github.com/abhisek/varnamala/internal/matching"
	"github.com/abhisek/varnamala/internal/screen"
	"github.com/abhisek/varnamala/internal/stats"
	"github.com/abhisek/varnamala/internal/store"
)

func newScreen(t *testing.T) *MatchingScreen {
	t.Helper()
	deps := screen.NewDeps(store.NewMemoryKV(), content.NewCatalog())
	deps.Rand = rand.New(rand.NewPCG(1, 2))
	return New(deps, "hindi")
}

func pairOf(cards []game.Card, i int) int {
	for j, c := range cards {
		if j != i && game.IsMatch(cards[i], c) {
			return j
		}
	}
	return -1
}

// play turns i and j and resolves the pair without waiting.
func play(t *testing.T, s *MatchingScreen, i, j int) {
	t.Helper()
	if _, ok := s.engine.Select(i); !ok {
		t.Fatalf("select %d refused", i)
	}
	ticket, ok := s.engine.Select(j)
	if !ok || ticket.IsZero() {
		t.Fatalf("select %d gave no ticket", j)
	}
	s.Update(resolveMsg{engine: s.engine, ticket: ticket})
}

func TestDealsTwelveCards(t *testing.T) {
	s := newScreen(t)
	if n := len(s.engine.Cards()); n != Columns*Rows {
		t.Fatalf("expected %d cards, got %d", Columns*Rows, n)
	}
}

func TestCursorStaysInGrid(t *testing.T) {
	s := newScreen(t)
	s.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if s.cursor != 0 {
		t.Fatalf("cursor left the grid: %d", s.cursor)
	}
	for range 10 {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
		s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	}
	if s.cursor != Columns*Rows-1 {
		t.Fatalf("expected bottom-right, got %d", s.cursor)
	}
}

func TestEnterTurnsCardAndSchedulesResolve(t *testing.T) {
	s := newScreen(t)
	cards := s.engine.Cards()
	j := pairOf(cards, 0)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Fatal("first card should not schedule anything")
	}
	s.cursor = j
	_, cmd = s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("second card should schedule a resolve")
	}
	if !s.engine.Busy() {
		t.Fatal("engine should be busy until resolved")
	}
}

func TestStaleResolveIgnoredAfterNewGame(t *testing.T) {
	s := newScreen(t)
	cards := s.engine.Cards()
	s.engine.Select(0)
	ticket, _ := s.engine.Select(pairOf(cards, 0))

	s.Update(tea.KeyPressMsg{Code: 'n', Text: "n"})
	s.Update(resolveMsg{engine: s.engine, ticket: ticket})

	if m, _ := s.engine.Pairs(); m != 0 {
		t.Fatalf("stale ticket resolved a pair in the new game")
	}
	if s.engine.Moves() != 0 {
		t.Fatalf("expected fresh game, got %d moves", s.engine.Moves())
	}
}

func TestCompletingRoundRecordsStats(t *testing.T) {
	s := newScreen(t)
	cards := s.engine.Cards()
	done := map[int]bool{}
	for i := range cards {
		if done[i] {
			continue
		}
		j := pairOf(cards, i)
		done[i], done[j] = true, true
		play(t, s, i, j)
	}
	if !s.engine.Complete() {
		t.Fatal("expected round complete")
	}

	d, err := s.deps.Stats.Load(context.Background())
	if err != nil {
		t.Fatalf("load stats: %v", err)
	}
	ts := d.Languages["hindi"].For(stats.Memory)
	if ts == nil || ts.TotalGames != 1 || ts.BestMoves != 6 {
		t.Fatalf("unexpected memory stats: %+v", ts)
	}
	if !strings.Contains(s.View(80, 30), "All pairs found in 6 moves") {
		t.Fatal("completion banner missing")
	}
}

func TestRecordFailureShowsStatus(t *testing.T) {
	kv := store.NewMemoryKV()
	deps := screen.NewDeps(kv, content.NewCatalog())
	deps.Rand = rand.New(rand.NewPCG(3, 4))
	s := New(deps, "tamil")
	kv.FailWrites(context.DeadlineExceeded)

	cards := s.engine.Cards()
	done := map[int]bool{}
	for i := range cards {
		if !done[i] {
			j := pairOf(cards, i)
			done[i], done[j] = true, true
			play(t, s, i, j)
		}
	}
	if !strings.HasPrefix(s.status, "not saved") {
		t.Fatalf("expected save warning, got %q", s.status)
	}
}

func TestCloseCancelsPending(t *testing.T) {
	s := newScreen(t)
	cards := s.engine.Cards()
	s.engine.Select(0)
	ticket, _ := s.engine.Select(pairOf(cards, 0))

	s.Close()
	s.Update(resolveMsg{engine: s.engine, ticket: ticket})
	if m, _ := s.engine.Pairs(); m != 0 {
		t.Fatal("ticket resolved after Close")
	}
	if _, cmd := s.Update(clockMsg{engine: s.engine}); cmd != nil {
		t.Fatal("clock should stop after Close")
	}
}
