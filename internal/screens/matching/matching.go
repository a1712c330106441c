// Package matching is the memory-match screen.
package matching

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/varnamala/internal/content"
	"github.com/abhisek/varnamala/internal/delay"
	game "github.com/abhisek/varnamala/internal/matching"
	"github.com/abhisek/varnamala/internal/screen"
	"github.com/abhisek/varnamala/internal/stats"
	"github.com/abhisek/varnamala/internal/ui/components"
	"github.com/abhisek/varnamala/internal/ui/layout"
	"github.com/abhisek/varnamala/internal/ui/theme"
)

// Columns and Rows describe the card grid.
const (
	Columns = 3
	Rows    = 4
)

// resolveMsg fires when a turned pair has been on show long enough.
type resolveMsg struct {
	engine *game.Engine
	ticket delay.Ticket
}

// clockMsg redraws the timer.
type clockMsg struct {
	engine *game.Engine
}

// MatchingScreen plays memory match for one language.
type MatchingScreen struct {
	deps     *screen.Deps
	language string
	engine   *game.Engine
	cursor   int
	status   string
	closed   bool
}

var (
	_ screen.Screen          = (*MatchingScreen)(nil)
	_ screen.KeyHintProvider = (*MatchingScreen)(nil)
	_ screen.Closer          = (*MatchingScreen)(nil)
)

// New deals a deck from the language's alphabet.
func New(deps *screen.Deps, language string) *MatchingScreen {
	s := &MatchingScreen{deps: deps, language: language}
	s.engine = game.New(game.Config{
		Language:        language,
		Letters:         deps.Catalog.Letters(language),
		Rand:            deps.Rand,
		Now:             deps.Now,
		OnRoundComplete: s.record,
	})
	return s
}

func (s *MatchingScreen) record(rec stats.GameStats) {
	s.status = screen.SaveWarning(s.deps.Record(rec))
}

func (s *MatchingScreen) Init() tea.Cmd {
	return s.tick()
}

func (s *MatchingScreen) Title() string {
	return "Memory Match"
}

func (s *MatchingScreen) Status() string {
	return content.DisplayName(s.language)
}

func (s *MatchingScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←↑↓→", Description: "Move"},
		{Key: "Enter", Description: "Turn card"},
		{Key: "N", Description: "New game"},
		{Key: "Esc", Description: "Back"},
	}
}

// Close cancels the pending pair so late timers are ignored.
func (s *MatchingScreen) Close() {
	s.closed = true
	s.engine.Close()
}

func (s *MatchingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case resolveMsg:
		if msg.engine == s.engine {
			s.engine.Resolve(msg.ticket)
		}
		return s, nil

	case clockMsg:
		if msg.engine != s.engine || s.closed {
			return s, nil
		}
		return s, s.tick()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *MatchingScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	n := len(s.engine.Cards())
	switch msg.String() {
	case "left", "h":
		if s.cursor%Columns > 0 {
			s.cursor--
		}
	case "right", "l":
		if s.cursor%Columns < Columns-1 && s.cursor+1 < n {
			s.cursor++
		}
	case "up", "k":
		if s.cursor-Columns >= 0 {
			s.cursor -= Columns
		}
	case "down", "j":
		if s.cursor+Columns < n {
			s.cursor += Columns
		}
	case "enter", "space", " ":
		return s, s.turn(s.cursor)
	case "n":
		s.engine.NewGame()
		s.cursor = 0
		s.status = ""
	}
	return s, nil
}

// turn flips a card and, when a pair is up, schedules its resolution.
func (s *MatchingScreen) turn(index int) tea.Cmd {
	t, ok := s.engine.Select(index)
	if !ok || t.IsZero() {
		return nil
	}
	engine := s.engine
	return tea.Tick(t.After, func(time.Time) tea.Msg {
		return resolveMsg{engine: engine, ticket: t}
	})
}

func (s *MatchingScreen) tick() tea.Cmd {
	engine := s.engine
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return clockMsg{engine: engine}
	})
}

func (s *MatchingScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	matched, total := s.engine.Pairs()

	header := lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf(
		"Moves %d   Pairs %d/%d   Time %s",
		s.engine.Moves(), matched, total,
		stats.FormatTime(int(s.engine.Elapsed().Seconds())),
	))

	sections := []string{header, s.renderGrid(cw)}
	if s.engine.Complete() && total > 0 {
		sections = append(sections, components.Banner(
			fmt.Sprintf("All pairs found in %d moves!  Press N to play again.", s.engine.Moves()),
			theme.Success, cw))
	}
	if total == 0 {
		sections = append(sections, theme.Hint.Render("No letters to play with."))
	}
	if s.status != "" {
		sections = append(sections, components.StatusLine(s.status))
	}
	return layout.Center(strings.Join(sections, "\n\n"), width, height)
}

const cardWidth = 10

func (s *MatchingScreen) renderGrid(cw int) string {
	cards := s.engine.Cards()
	var rows []string
	for r := 0; r*Columns < len(cards); r++ {
		var cells []string
		for c := 0; c < Columns; c++ {
			i := r*Columns + c
			if i >= len(cards) {
				break
			}
			cells = append(cells, s.renderCard(i, cards[i]))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).
		Render(lipgloss.JoinVertical(lipgloss.Center, rows...))
}

func (s *MatchingScreen) renderCard(i int, c game.Card) string {
	face := "?"
	style := theme.Card
	switch {
	case c.Matched:
		face = c.Face()
		style = theme.CardMatched
	case c.Flipped:
		face = theme.Glyph.Render(c.Face())
	}
	if i == s.cursor {
		style = style.BorderForeground(theme.Highlight)
	}
	return style.Width(cardWidth).Align(lipgloss.Center).Render(face)
}
