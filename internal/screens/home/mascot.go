package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/varnamala/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // Saffron
	MascotCelebrating                      // Marigold, star eyes: played today
)

const mascotIdle = `┌─────┐
│ ◉ ◉ │
│  ▽  │
│ अ क │
└─────┘`

const mascotCelebrating = `┌─────┐
│ ★ ★ │
│  ▿  │
│ अ क │
└─╥═╥─┘
  ╚═╝`

// RenderMascot returns the mascot art for the given variant.
func RenderMascot(v MascotVariant) string {
	art, fg := mascotIdle, theme.Primary
	if v == MascotCelebrating {
		art, fg = mascotCelebrating, theme.Highlight
	}
	return lipgloss.NewStyle().Foreground(fg).Render(art)
}
