// Package dashboard shows game statistics and letter progress.
package dashboard

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/varnamala/internal/content"
	"github.com/abhisek/varnamala/internal/progress"
	"github.com/abhisek/varnamala/internal/router"
	"github.com/abhisek/varnamala/internal/screen"
	"github.com/abhisek/varnamala/internal/stats"
	"github.com/abhisek/varnamala/internal/ui/components"
	"github.com/abhisek/varnamala/internal/ui/layout"
	"github.com/abhisek/varnamala/internal/ui/theme"
)

// recentLimit is the number of history entries listed.
const recentLimit = 5

type letterCount struct {
	done, total int
}

type dashboardLoadedMsg struct {
	Stats   stats.DashboardStats
	Letters map[string]letterCount
	Err     error
}

// DashboardScreen summarises every recorded game.
type DashboardScreen struct {
	deps      *screen.Deps
	languages []content.Language
	data      stats.DashboardStats
	letters   map[string]letterCount
	selected  int
	expanded  map[int]bool
	offset    int
	loaded    bool
	warning   string
}

var (
	_ screen.Screen          = (*DashboardScreen)(nil)
	_ screen.KeyHintProvider = (*DashboardScreen)(nil)
)

// New creates the dashboard. Figures load in Init.
func New(deps *screen.Deps) *DashboardScreen {
	return &DashboardScreen{
		deps:      deps,
		languages: content.Languages(),
		expanded:  map[int]bool{0: true},
	}
}

func (s *DashboardScreen) Init() tea.Cmd {
	return s.load
}

func (s *DashboardScreen) load() tea.Msg {
	ctx := context.Background()
	d, err := s.deps.Stats.Load(ctx)
	letters := make(map[string]letterCount, len(s.languages))
	for _, l := range s.languages {
		done, total := s.deps.Progress.Counts(ctx, l.ID)
		letters[l.ID] = letterCount{done: done, total: total}
	}
	return dashboardLoadedMsg{Stats: d, Letters: letters, Err: err}
}

func (s *DashboardScreen) Title() string {
	return "Dashboard"
}

func (s *DashboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Language"},
		{Key: "Enter", Description: "Details"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		s.data = msg.Stats
		s.letters = msg.Letters
		s.warning = ""
		if msg.Err != nil {
			s.warning = "could not read saved stats: " + msg.Err.Error()
		}
		s.loaded = true
		return s, nil

	case router.RefreshMsg:
		return s, s.load

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.languages)-1 {
				s.selected++
			}
		case "enter", "space", " ":
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *DashboardScreen) View(width, height int) string {
	if !s.loaded {
		return layout.Center(theme.Hint.Render("Loading dashboard..."), width, height)
	}
	cw := components.ContentWidth(width)

	var lines []string
	add := func(block string) {
		lines = append(lines, strings.Split(block, "\n")...)
	}

	add(components.Panel(s.renderOverview(), cw))
	if s.warning != "" {
		add(components.StatusLine(s.warning))
	}
	add("")

	selectedLine := 0
	for i, lang := range s.languages {
		if i == s.selected {
			selectedLine = len(lines)
		}
		add(s.renderLanguageLine(i, lang, cw))
		if s.expanded[i] {
			add(s.renderLanguageDetail(lang.ID))
		}
	}
	add("")
	add(s.renderRecent())

	// Keep the selected language in view.
	if selectedLine < s.offset {
		s.offset = selectedLine
	}
	if height > 0 && selectedLine >= s.offset+height {
		s.offset = selectedLine - height + 1
	}
	end := len(lines)
	if height > 0 {
		end = min(s.offset+height, len(lines))
	}
	body := strings.Join(lines[min(s.offset, len(lines)):end], "\n")
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, body)
}

func (s *DashboardScreen) renderOverview() string {
	label := lipgloss.NewStyle().Foreground(theme.TextDim)
	value := lipgloss.NewStyle().Foreground(theme.Highlight).Bold(true)

	parts := []string{
		label.Render("Games ") + value.Render(fmt.Sprint(s.data.TotalGames)),
	}
	for _, g := range stats.GameTypes {
		parts = append(parts, label.Render(stats.Title(g)+" ")+value.Render(fmt.Sprint(s.data.TypeTotal(g))))
	}
	return theme.Title.Render("Overview") + "\n" + strings.Join(parts, "   ")
}

func (s *DashboardScreen) renderLanguageLine(i int, lang content.Language, cw int) string {
	lc := s.letters[lang.ID]
	games := 0
	if ls := s.data.Languages[lang.ID]; ls != nil {
		games = ls.TotalGames
	}
	text := fmt.Sprintf("%-10s %d games  %d/%d letters", lang.Name, games, lc.done, lc.total)

	prefix := "  "
	style := lipgloss.NewStyle().Foreground(theme.Text)
	if i == s.selected {
		prefix = "▸ "
		style = theme.Selected
	}
	return lipgloss.NewStyle().Width(cw).Render(style.Render(prefix + text))
}

func (s *DashboardScreen) renderLanguageDetail(language string) string {
	ls := s.data.Languages[language]
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	var b strings.Builder
	b.WriteString(dim.Render(fmt.Sprintf("    %-15s %6s %12s %9s %7s", "", "Games", "Best", "Best time", "Avg")))
	for _, g := range stats.GameTypes {
		ts := ls.For(g)
		games := 0
		if ts != nil {
			games = ts.TotalGames
		}
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("    %-15s %6d %12s %9s %7s",
			stats.Title(g), games,
			stats.FormatBestMoves(g, ts), stats.FormatBestTime(ts), stats.FormatAverageMoves(ts)))
	}
	if ls != nil && !ls.LastPlayed.IsZero() {
		b.WriteString("\n")
		b.WriteString(dim.Render("    Last played " + ls.LastPlayed.Local().Format("Jan 02, 2006")))
	}
	lc := s.letters[language]
	b.WriteString("\n")
	b.WriteString("    " + components.NewProgressBar("Letters", progress.Percent(lc.done, lc.total), true, 40).View())
	return b.String()
}

func (s *DashboardScreen) renderRecent() string {
	recent := s.data.Recent(recentLimit)
	title := theme.Title.Render("Recent games")
	if len(recent) == 0 {
		return title + "\n" + theme.Hint.Render("No games yet. Pick one from the menu!")
	}
	lines := []string{title}
	for _, g := range recent {
		lines = append(lines, fmt.Sprintf("%s  %-8s %-14s %s  %s",
			g.Date.Local().Format("Jan 02 15:04"),
			content.DisplayName(g.Language),
			stats.Title(g.GameType),
			recentMoves(g),
			stats.FormatTime(g.Time),
		))
	}
	return strings.Join(lines, "\n")
}

func recentMoves(g stats.GameStats) string {
	if g.GameType == stats.Drawing {
		return fmt.Sprintf("%d%%", g.Moves)
	}
	return fmt.Sprintf("%d %s", g.Moves, stats.MovesLabel(g.GameType))
}
