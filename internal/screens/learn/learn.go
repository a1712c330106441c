// Package learn is the letter-tracing screen.
package learn

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/varnamala/internal/canvas"
	"github.com/abhisek/varnamala/internal/content"
	"github.com/abhisek/varnamala/internal/progress"
	"github.com/abhisek/varnamala/internal/screen"
	"github.com/abhisek/varnamala/internal/stats"
	"github.com/abhisek/varnamala/internal/ui/components"
	"github.com/abhisek/varnamala/internal/ui/layout"
	"github.com/abhisek/varnamala/internal/ui/theme"
)

// LearnScreen shows one letter at a time with a canvas to trace it on.
type LearnScreen struct {
	deps     *screen.Deps
	canvas   *canvas.Canvas
	session  *progress.DrawingSession
	feedback string
	status   string
	recErr   error
}

var (
	_ screen.Screen          = (*LearnScreen)(nil)
	_ screen.KeyHintProvider = (*LearnScreen)(nil)
	_ screen.StatusProvider  = (*LearnScreen)(nil)
)

// New opens the letter with id letterID, or the first letter.
func New(deps *screen.Deps, language, letterID string) *LearnScreen {
	s := &LearnScreen{deps: deps, canvas: canvas.New(canvas.DefaultWidth, canvas.DefaultHeight)}
	s.session = progress.NewDrawingSession(deps.Progress, s.canvas, language, letterID, progress.DrawingConfig{
		Now:             deps.Now,
		OnRoundComplete: s.record,
	})
	s.canvas.SetGuide(s.session.Letter().Character)
	return s
}

func (s *LearnScreen) record(rec stats.GameStats) {
	s.recErr = s.deps.Record(rec)
}

func (s *LearnScreen) Init() tea.Cmd {
	return nil
}

func (s *LearnScreen) Title() string {
	return "Learn Letters"
}

func (s *LearnScreen) Status() string {
	return content.DisplayName(s.session.Language())
}

func (s *LearnScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←↑↓→", Description: "Move pen"},
		{Key: "Space", Description: "Pen up/down"},
		{Key: "C", Description: "Clear"},
		{Key: "Enter", Description: "Done"},
		{Key: "N/P", Description: "Next/Prev"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *LearnScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || s.session.Empty() {
		return s, nil
	}
	switch kmsg.String() {
	case "left", "h":
		s.canvas.Move(-1, 0)
	case "right", "l":
		s.canvas.Move(1, 0)
	case "up", "k":
		s.canvas.Move(0, -1)
	case "down", "j":
		s.canvas.Move(0, 1)
	case "space", " ":
		s.canvas.TogglePen()
	case ".":
		s.canvas.Dot()
	case "c":
		s.session.Clear()
		s.feedback = ""
	case "enter":
		s.submit()
	case "n":
		if s.session.Next() {
			s.moved()
		}
	case "p":
		if s.session.Prev() {
			s.moved()
		}
	}
	return s, nil
}

func (s *LearnScreen) moved() {
	s.canvas.SetGuide(s.session.Letter().Character)
	s.feedback = ""
	s.status = ""
}

func (s *LearnScreen) submit() {
	s.recErr = nil
	sub, err := s.session.Submit(context.Background())
	s.status = screen.SaveWarning(errors.Join(err, s.recErr))

	msg := fmt.Sprintf("Well done! You wrote %s.  %d%% of the alphabet learned.", sub.Letter.Character, sub.Percent)
	if s.session.HasNext() {
		msg += "  Press N for the next letter."
	} else {
		msg += "  That was the last letter!"
	}
	s.feedback = msg
}

const (
	inkCell    = "█"
	cursorCell = "▒"
	penCell    = "▓"
	blankCell  = "·"
)

func (s *LearnScreen) View(width, height int) string {
	if s.session.Empty() {
		return layout.Center(theme.Hint.Render("No letters for this language."), width, height)
	}
	cw := components.ContentWidth(width)
	letter := s.session.Letter()
	pos, total := s.session.Position()

	heading := lipgloss.JoinHorizontal(lipgloss.Center,
		theme.Glyph.Render(letter.Character),
		"   ",
		theme.Body.Render(letter.Pronunciation),
	)
	counter := theme.Subtitle.Render(fmt.Sprintf("Letter %d of %d", pos, total))
	if s.deps.Progress.IsComplete(context.Background(), s.session.Language(), letter.ID) {
		counter += "  " + theme.Correct.Render("✓")
	}

	sections := []string{heading, counter, s.renderCanvas()}
	if s.feedback != "" {
		sections = append(sections, components.Banner(s.feedback, theme.Success, cw))
	} else {
		sections = append(sections, theme.Hint.Render("Trace the letter, then press Enter."))
	}
	if s.status != "" {
		sections = append(sections, components.StatusLine(s.status))
	}
	return layout.Center(strings.Join(sections, "\n\n"), width, height)
}

func (s *LearnScreen) renderCanvas() string {
	cursor := cursorCell
	if s.canvas.PenDown() {
		cursor = penCell
	}
	ink := lipgloss.NewStyle().Foreground(theme.Ink).Render(inkCell)
	blank := lipgloss.NewStyle().Foreground(theme.Border).Render(blankCell)
	cur := lipgloss.NewStyle().Foreground(theme.Highlight).Render(cursor)

	grid := strings.Join(s.canvas.Rows(ink, cur, blank), "\n")
	guide := theme.Glyph.Render(s.canvas.Guide())
	strokes := theme.Hint.Render(fmt.Sprintf("strokes %d", s.canvas.Strokes()))
	return theme.Card.Render(lipgloss.JoinVertical(lipgloss.Center, guide, grid, strokes))
}
