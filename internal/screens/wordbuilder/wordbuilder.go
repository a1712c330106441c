// Package wordbuilder is the word-assembly screen.
package wordbuilder

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/varnamala/internal/content"
	"github.com/abhisek/varnamala/internal/delay"
	"github.com/abhisek/varnamala/internal/screen"
	"github.com/abhisek/varnamala/internal/stats"
	"github.com/abhisek/varnamala/internal/ui/components"
	"github.com/abhisek/varnamala/internal/ui/layout"
	"github.com/abhisek/varnamala/internal/ui/theme"
	game "github.com/abhisek/varnamala/internal/wordbuilder"
)

type row int

const (
	poolRow row = iota
	answerRow
)

// feedbackDoneMsg fires when the verdict has been shown long enough.
type feedbackDoneMsg struct {
	engine *game.Engine
	ticket delay.Ticket
}

// WordBuilderScreen plays the word builder for one language.
type WordBuilderScreen struct {
	deps     *screen.Deps
	language string
	engine   *game.Engine
	focus    row
	cursor   int
	status   string
}

var (
	_ screen.Screen          = (*WordBuilderScreen)(nil)
	_ screen.KeyHintProvider = (*WordBuilderScreen)(nil)
	_ screen.Closer          = (*WordBuilderScreen)(nil)
)

// New starts a session over the language's bundled and generated words.
func New(deps *screen.Deps, language string) *WordBuilderScreen {
	s := &WordBuilderScreen{deps: deps, language: language}
	s.engine = game.New(game.Config{
		Language:        language,
		Words:           deps.Catalog.Words(language),
		Rand:            deps.Rand,
		Now:             deps.Now,
		OnRoundComplete: s.record,
	})
	return s
}

func (s *WordBuilderScreen) record(rec stats.GameStats) {
	s.status = screen.SaveWarning(s.deps.Record(rec))
}

func (s *WordBuilderScreen) Init() tea.Cmd {
	return nil
}

func (s *WordBuilderScreen) Title() string {
	return "Word Builder"
}

func (s *WordBuilderScreen) Status() string {
	return content.DisplayName(s.language)
}

func (s *WordBuilderScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→↑↓", Description: "Move"},
		{Key: "Enter", Description: "Pick/Return"},
		{Key: "C", Description: "Check"},
		{Key: "W", Description: "New word"},
		{Key: "N", Description: "New game"},
		{Key: "Esc", Description: "Back"},
	}
}

// Close ends the session, which records it if any word was checked.
func (s *WordBuilderScreen) Close() {
	s.engine.Close()
}

func (s *WordBuilderScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case feedbackDoneMsg:
		if msg.engine == s.engine && s.engine.Resolve(msg.ticket) {
			s.focus, s.cursor = poolRow, 0
		}
		return s, nil
	case tea.KeyMsg:
		return s, s.handleKey(msg)
	}
	return s, nil
}

func (s *WordBuilderScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "left", "h":
		s.cursor = max(s.cursor-1, 0)
	case "right", "l":
		s.cursor = min(s.cursor+1, max(s.rowLen()-1, 0))
	case "up", "k":
		s.setFocus(answerRow)
	case "down", "j":
		s.setFocus(poolRow)
	case "enter", "space", " ":
		s.pick()
	case "backspace":
		if n := len(s.engine.Selected()); n > 0 {
			s.engine.Deselect(n - 1)
		}
	case "c":
		return s.check()
	case "w":
		s.engine.NextWord()
		s.focus, s.cursor = poolRow, 0
	case "n":
		s.engine.NewGame()
		s.focus, s.cursor = poolRow, 0
	}
	return nil
}

func (s *WordBuilderScreen) rowLen() int {
	if s.focus == answerRow {
		return len(s.engine.Selected())
	}
	return len(s.engine.Available())
}

func (s *WordBuilderScreen) setFocus(r row) {
	s.focus = r
	s.cursor = min(s.cursor, max(s.rowLen()-1, 0))
}

func (s *WordBuilderScreen) pick() {
	if s.focus == poolRow {
		s.engine.Select(s.cursor)
	} else {
		s.engine.Deselect(s.cursor)
	}
	s.cursor = min(s.cursor, max(s.rowLen()-1, 0))
}

func (s *WordBuilderScreen) check() tea.Cmd {
	_, t, ok := s.engine.Check()
	if !ok {
		return nil
	}
	engine := s.engine
	return tea.Tick(t.After, func(time.Time) tea.Msg {
		return feedbackDoneMsg{engine: engine, ticket: t}
	})
}

func (s *WordBuilderScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	word, ok := s.engine.Word()
	if !ok {
		return layout.Center(theme.Hint.Render("No words for this language yet."), width, height)
	}

	score := lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf(
		"Score %d   Streak %d   Checked %d",
		s.engine.SessionScore(), s.engine.RoundScore(), s.engine.Attempts(),
	))
	meaning := theme.Subtitle.Render("Build the word for: ") + theme.Body.Bold(true).Render(word.Meaning)

	sections := []string{
		score,
		meaning,
		s.renderSlots(word),
		s.renderPool(),
		components.NewButton("Check", "c", s.engine.CanCheck()).View(),
	}
	switch s.engine.Feedback() {
	case game.Correct:
		sections = append(sections, components.Banner("Correct! "+word.Word, theme.Success, cw))
	case game.Incorrect:
		sections = append(sections, components.Banner("Not quite. It was "+word.Word, theme.Error, cw))
	}
	if s.status != "" {
		sections = append(sections, components.StatusLine(s.status))
	}
	return layout.Center(lipgloss.JoinVertical(lipgloss.Center, interleave(sections)...), width, height)
}

func (s *WordBuilderScreen) renderSlots(word content.Word) string {
	selected := s.engine.Selected()
	cells := make([]string, len(word.Characters))
	for i := range word.Characters {
		text := "_"
		if i < len(selected) {
			text = selected[i]
		}
		cells[i] = s.cell(text, answerRow, i, i < len(selected))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (s *WordBuilderScreen) renderPool() string {
	avail := s.engine.Available()
	cells := make([]string, len(avail))
	for i, ch := range avail {
		cells[i] = s.cell(ch, poolRow, i, true)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (s *WordBuilderScreen) cell(text string, r row, i int, filled bool) string {
	style := theme.Card.Width(5).Align(lipgloss.Center)
	if s.focus == r && s.cursor == i {
		style = style.BorderForeground(theme.Highlight)
	}
	if filled {
		text = theme.Glyph.Render(text)
	}
	return style.Render(text)
}

func interleave(sections []string) []string {
	out := make([]string, 0, 2*len(sections))
	for i, sec := range sections {
		if i > 0 {
			out = append(out, "")
		}
		out = append(out, strings.TrimRight(sec, "\n"))
	}
	return out
}
