// Package home is the main menu.
package home

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/varnamala/internal/content"
	"github.com/abhisek/varnamala/internal/router"
	"github.com/abhisek/varnamala/internal/screen"
	"github.com/abhisek/varnamala/internal/screens/alphabet"
	"github.com/abhisek/varnamala/internal/screens/dashboard"
	"github.com/abhisek/varnamala/internal/screens/langpicker"
	"github.com/abhisek/varnamala/internal/screens/matching"
	"github.com/abhisek/varnamala/internal/screens/wordbuilder"
	"github.com/abhisek/varnamala/internal/ui/components"
	"github.com/abhisek/varnamala/internal/ui/layout"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	deps       *screen.Deps
	menu       components.Menu
	menuLabels []string

	games     int
	letters   int
	languages int
	mascot    MascotVariant
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen.
func New(deps *screen.Deps) *HomeScreen {
	push := func(s func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg { return router.PushScreenMsg{Screen: s()} }
		}
	}
	pick := func(title string, next func(string) screen.Screen) func() screen.Screen {
		return func() screen.Screen { return langpicker.New(deps, title, next) }
	}

	labels := []string{"LEARN LETTERS", "MEMORY MATCH", "WORD BUILDER", "DASHBOARD", "EXIT"}
	items := []components.MenuItem{
		{Label: labels[0], Action: push(pick("Learn Letters", func(lang string) screen.Screen {
			return alphabet.New(deps, lang)
		}))},
		{Label: labels[1], Action: push(pick("Memory Match", func(lang string) screen.Screen {
			return matching.New(deps, lang)
		}))},
		{Label: labels[2], Action: push(pick("Word Builder", func(lang string) screen.Screen {
			return wordbuilder.New(deps, lang)
		}))},
		{Label: labels[3], Action: push(func() screen.Screen { return dashboard.New(deps) })},
		{Label: labels[4], Action: func() tea.Cmd { return tea.Quit }},
	}

	h := &HomeScreen{
		deps:       deps,
		menu:       components.NewMenu(items),
		menuLabels: labels,
	}
	h.refresh()
	return h
}

// refresh reloads the stats bar figures.
func (h *HomeScreen) refresh() {
	ctx := context.Background()
	d, _ := h.deps.Stats.Load(ctx)
	h.games = d.TotalGames
	h.languages = len(d.LanguageIDs())

	h.letters = 0
	for _, id := range content.LanguageIDs() {
		done, _ := h.deps.Progress.Counts(ctx, id)
		h.letters += done
	}

	h.mascot = MascotIdle
	now := time.Now
	if h.deps.Now != nil {
		now = h.deps.Now
	}
	if recent := d.Recent(1); len(recent) == 1 && sameDay(recent[0].Date, now()) {
		h.mascot = MascotCelebrating
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(router.RefreshMsg); ok {
		h.refresh()
		return h, nil
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height excludes header and footer; add them back for the threshold.
	compact := layout.IsCompact(width, height+8)
	cw := components.ContentWidth(width)

	sections := []string{renderTitle(width, cw, compact)}
	if !compact {
		sections = append(sections, renderMascotBox(h.mascot, cw))
	}
	sections = append(sections, renderStatsBar(h.games, h.letters, h.languages, cw, compact))
	if compact {
		sections = append(sections, renderMenuCompact(h.menuLabels, h.menu.Selected, cw))
	} else {
		sections = append(sections, renderMenu(h.menuLabels, h.menu.Selected, cw))
	}
	if h.deps.Ephemeral {
		sections = append(sections, renderEphemeralNote(cw))
	}

	return components.Frame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
