// Package langpicker lets the learner choose a language before a game.
package langpicker

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/varnamala/internal/content"
	"github.com/abhisek/varnamala/internal/router"
	"github.com/abhisek/varnamala/internal/screen"
	"github.com/abhisek/varnamala/internal/ui/components"
	"github.com/abhisek/varnamala/internal/ui/layout"
	"github.com/abhisek/varnamala/internal/ui/theme"
)

// LangPickerScreen lists the languages with their letter progress.
type LangPickerScreen struct {
	deps      *screen.Deps
	title     string
	next      func(language string) screen.Screen
	languages []content.Language
	menu      components.Menu
}

var (
	_ screen.Screen          = (*LangPickerScreen)(nil)
	_ screen.KeyHintProvider = (*LangPickerScreen)(nil)
)

// New creates a picker that pushes next(language) on selection.
func New(deps *screen.Deps, title string, next func(language string) screen.Screen) *LangPickerScreen {
	s := &LangPickerScreen{
		deps:      deps,
		title:     title,
		next:      next,
		languages: content.Languages(),
	}
	s.menu = components.NewMenu(s.items())
	return s
}

func (s *LangPickerScreen) items() []components.MenuItem {
	ctx := context.Background()
	items := make([]components.MenuItem, len(s.languages))
	for i, lang := range s.languages {
		id := lang.ID
		items[i] = components.MenuItem{
			Label:  fmt.Sprintf("%-10s %s", lang.Name, lang.Native),
			Detail: fmt.Sprintf("%d%% learned", s.deps.Progress.PercentComplete(ctx, id)),
			Action: func() tea.Cmd {
				return func() tea.Msg { return router.PushScreenMsg{Screen: s.next(id)} }
			},
		}
	}
	return items
}

func (s *LangPickerScreen) Init() tea.Cmd {
	return nil
}

func (s *LangPickerScreen) Title() string {
	return s.title
}

func (s *LangPickerScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Choose"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *LangPickerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(router.RefreshMsg); ok {
		selected := s.menu.Selected
		s.menu = components.NewMenu(s.items())
		s.menu.Selected = selected
		return s, nil
	}
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *LangPickerScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	body := strings.Join([]string{
		theme.Title.Width(cw).Render("Choose a language"),
		components.Panel(strings.TrimRight(s.menu.View(), "\n"), cw),
	}, "\n\n")
	return layout.Center(body, width, height)
}
