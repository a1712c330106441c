package components

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/varnamala/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used by framed screens so
// their sections line up.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 20), 64)
}

// Frame wraps content in a double border, centred within width x height.
func Frame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width-2).
		Height(height-2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// Panel wraps content in a rounded card at the given content width.
func Panel(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw-2).
		Padding(0, 1).
		Render(content)
}

// Banner renders a centred message in the given colour, e.g. a completion
// notice.
func Banner(text string, c color.Color, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(c).
		Foreground(c).
		Bold(true).
		Width(cw-2).
		Align(lipgloss.Center).
		Render(text)
}

// StatusLine renders a dim one-line note, used for "not saved" warnings.
func StatusLine(text string) string {
	if text == "" {
		return ""
	}
	return theme.Warning.Render(text)
}
