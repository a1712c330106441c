// Package alphabet is the letter browser of a language.
package alphabet

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/varnamala/internal/content"
	"github.com/abhisek/varnamala/internal/router"
	"github.com/abhisek/varnamala/internal/screen"
	"github.com/abhisek/varnamala/internal/screens/learn"
	"github.com/abhisek/varnamala/internal/ui/components"
	"github.com/abhisek/varnamala/internal/ui/layout"
	"github.com/abhisek/varnamala/internal/ui/theme"
)

const cellWidth = 8

// AlphabetScreen shows every letter with its completion mark.
type AlphabetScreen struct {
	deps     *screen.Deps
	language string
	letters  []content.Letter
	cursor   int
	columns  int

	searching bool
	search    components.TextInput
	notFound  string
}

var (
	_ screen.Screen          = (*AlphabetScreen)(nil)
	_ screen.KeyHintProvider = (*AlphabetScreen)(nil)
	_ screen.StatusProvider  = (*AlphabetScreen)(nil)
	_ screen.InputCapturer   = (*AlphabetScreen)(nil)
)

// New creates the browser for a language.
func New(deps *screen.Deps, language string) *AlphabetScreen {
	return &AlphabetScreen{
		deps:     deps,
		language: language,
		letters:  deps.Catalog.Letters(language),
		columns:  6,
	}
}

func (s *AlphabetScreen) Init() tea.Cmd {
	return nil
}

func (s *AlphabetScreen) Title() string {
	return "Alphabet"
}

func (s *AlphabetScreen) Status() string {
	return content.DisplayName(s.language)
}

func (s *AlphabetScreen) CapturingInput() bool {
	return s.searching
}

func (s *AlphabetScreen) KeyHints() []layout.KeyHint {
	if s.searching {
		return []layout.KeyHint{
			{Key: "Tab", Description: "Complete"},
			{Key: "Enter", Description: "Find"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "←↑↓→", Description: "Move"},
		{Key: "Enter", Description: "Learn"},
		{Key: "/", Description: "Find by sound"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *AlphabetScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if s.searching {
		if ok {
			switch kmsg.String() {
			case "esc":
				s.searching = false
				return s, nil
			case "enter":
				s.find(s.search.Value())
				s.searching = false
				return s, nil
			}
		}
		var cmd tea.Cmd
		s.search, cmd = s.search.Update(msg)
		return s, cmd
	}
	if !ok || len(s.letters) == 0 {
		return s, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if s.cursor > 0 {
			s.cursor--
		}
	case "right", "l":
		if s.cursor+1 < len(s.letters) {
			s.cursor++
		}
	case "up", "k":
		if s.cursor-s.columns >= 0 {
			s.cursor -= s.columns
		}
	case "down", "j":
		if s.cursor+s.columns < len(s.letters) {
			s.cursor += s.columns
		}
	case "/":
		s.searching = true
		s.notFound = ""
		s.search = components.NewTextInput("type a sound, e.g. ka", 12, s.sounds())
		return s, s.search.Init()
	case "enter", "space", " ":
		next := learn.New(s.deps, s.language, s.letters[s.cursor].ID)
		return s, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
	}
	return s, nil
}

func (s *AlphabetScreen) sounds() []string {
	out := make([]string, 0, len(s.letters))
	for _, l := range s.letters {
		out = append(out, l.Pronunciation)
	}
	return out
}

// find moves the cursor to the first letter whose pronunciation matches the
// query exactly, else to the first one it prefixes.
func (s *AlphabetScreen) find(query string) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return
	}
	prefix := -1
	for i, l := range s.letters {
		p := strings.ToLower(l.Pronunciation)
		if p == q {
			s.cursor = i
			return
		}
		if prefix < 0 && strings.HasPrefix(p, q) {
			prefix = i
		}
	}
	if prefix >= 0 {
		s.cursor = prefix
		return
	}
	s.notFound = fmt.Sprintf("No letter sounds like %q", query)
}

func (s *AlphabetScreen) View(width, height int) string {
	if len(s.letters) == 0 {
		return layout.Center(theme.Hint.Render("No letters for this language."), width, height)
	}
	cw := components.ContentWidth(width)
	s.columns = max((cw-2)/cellWidth, 1)

	ctx := context.Background()
	done, total := s.deps.Progress.Counts(ctx, s.language)

	sections := []string{
		components.NewProgressBar("Progress", s.deps.Progress.PercentComplete(ctx, s.language), true, cw).View(),
		theme.Subtitle.Render(fmt.Sprintf("%d of %d completed", done, total)),
		s.renderGrid(ctx),
	}
	current := s.letters[s.cursor]
	sections = append(sections, theme.Body.Render(current.Character+"  "+current.Pronunciation))

	switch {
	case s.searching:
		sections = append(sections, s.search.View())
	case s.notFound != "":
		sections = append(sections, theme.Warning.Render(s.notFound))
	}
	return layout.Center(strings.Join(sections, "\n\n"), width, height)
}

func (s *AlphabetScreen) renderGrid(ctx context.Context) string {
	var rows []string
	for r := 0; r*s.columns < len(s.letters); r++ {
		var cells []string
		for c := 0; c < s.columns; c++ {
			i := r*s.columns + c
			if i >= len(s.letters) {
				break
			}
			cells = append(cells, s.renderCell(ctx, i))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (s *AlphabetScreen) renderCell(ctx context.Context, i int) string {
	l := s.letters[i]
	text := l.Character
	mark := " "
	if s.deps.Progress.IsComplete(ctx, s.language, l.ID) {
		mark = theme.Correct.Render("✓")
	}
	style := lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Center)
	if i == s.cursor {
		return style.Render(theme.Selected.Render("▸" + text + mark))
	}
	return style.Render(theme.Glyph.Render(text) + mark)
}
