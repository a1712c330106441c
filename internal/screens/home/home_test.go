package home

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/varnamala/internal/content"
	"github.com/abhisek/varnamala/internal/router"
	"github.com/abhisek/varnamala/internal/screen"
	"github.com/abhisek/varnamala/internal/screens/dashboard"
	"github.com/abhisek/varnamala/internal/screens/langpicker"
	"github.com/abhisek/varnamala/internal/stats"
	"github.com/abhisek/varnamala/internal/store"
)

func newHome() *HomeScreen {
	return New(screen.NewDeps(store.NewMemoryKV(), content.NewCatalog()))
}

func pushed(t *testing.T, cmd tea.Cmd) screen.Screen {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	return msg.Screen
}

func TestMenuOpensLanguagePicker(t *testing.T) {
	for i, title := range []string{"Learn Letters", "Memory Match", "Word Builder"} {
		h := newHome()
		for range i {
			h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
		}
		_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
		s := pushed(t, cmd)
		if _, ok := s.(*langpicker.LangPickerScreen); !ok {
			t.Fatalf("item %d pushed %T", i, s)
		}
		if s.Title() != title {
			t.Errorf("item %d title = %q, want %q", i, s.Title(), title)
		}
	}
}

func TestMenuOpensDashboard(t *testing.T) {
	h := newHome()
	for range 3 {
		h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if _, ok := pushed(t, cmd).(*dashboard.DashboardScreen); !ok {
		t.Fatal("expected the dashboard")
	}
}

func TestExitQuits(t *testing.T) {
	h := newHome()
	for range 4 {
		h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected QuitMsg, got %T", cmd())
	}
}

func TestRefreshUpdatesStatsBar(t *testing.T) {
	h := newHome()
	if h.games != 0 || h.mascot != MascotIdle {
		t.Fatal("expected a fresh home screen")
	}
	now := time.Now()
	h.deps.Now = func() time.Time { return now }
	if err := h.deps.Record(stats.GameStats{Language: "tamil", GameType: stats.Memory, Moves: 8, Time: 40, Date: now}); err != nil {
		t.Fatal(err)
	}
	h.Update(router.RefreshMsg{})
	if h.games != 1 || h.languages != 1 {
		t.Errorf("games=%d languages=%d, want 1 and 1", h.games, h.languages)
	}
	if h.mascot != MascotCelebrating {
		t.Error("expected the celebrating mascot after playing today")
	}
}

func TestViewRendersMenu(t *testing.T) {
	h := newHome()
	view := h.View(120, 40)
	for _, label := range h.menuLabels {
		if !strings.Contains(view, label) {
			t.Errorf("view missing %q", label)
		}
	}
}
