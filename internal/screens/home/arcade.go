package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/varnamala/internal/ui/theme"
)

const titleFull = `██╗   ██╗ █████╗ ██████╗ ███╗   ██╗ █████╗ ███╗   ███╗ █████╗ ██╗      █████╗
██║   ██║██╔══██╗██╔══██╗████╗  ██║██╔══██╗████╗ ████║██╔══██╗██║     ██╔══██╗
╚██╗ ██╔╝███████║██████╔╝██╔██╗ ██║███████║██╔████╔██║███████║██║     ███████║
 ╚████╔╝ ██╔══██║██╔══██╗██║╚██╗██║██╔══██║██║╚██╔╝██║██╔══██║██║     ██╔══██║
  ╚██╔╝  ██║  ██║██║  ██║██║ ╚████║██║  ██║██║ ╚═╝ ██║██║  ██║███████╗██║  ██║
   ╚═╝   ╚═╝  ╚═╝╚═╝  ╚═╝╚═╝  ╚═══╝╚═╝  ╚═╝╚═╝     ╚═╝╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝`

const titleCompact = "V · A · R · N · A · M · A · L · A"

// titleFullWidth is the widest line of titleFull.
var titleFullWidth = lipgloss.Width(titleFull)

// renderTitle returns the block title, or the compact one when the frame
// is narrower than the art.
func renderTitle(frameWidth, cw int, compact bool) string {
	style := lipgloss.NewStyle().Foreground(theme.Highlight).Bold(true)
	if compact || frameWidth-4 < titleFullWidth {
		return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(style.Render(titleCompact))
	}
	return style.Render(titleFull)
}

// renderStatsBar shows games played, letters learned and languages tried.
func renderStatsBar(games, letters, languages, cw int, compact bool) string {
	gameStyle := lipgloss.NewStyle().Foreground(theme.Highlight).Bold(true)
	letterStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	langStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)

	var line string
	if compact {
		line = fmt.Sprintf("%s %s %s",
			gameStyle.Render(fmt.Sprintf("★%d", games)),
			letterStyle.Render(fmt.Sprintf("✎%d", letters)),
			langStyle.Render(fmt.Sprintf("◆%d", languages)),
		)
	} else {
		line = fmt.Sprintf("%s  %s  %s",
			gameStyle.Render(fmt.Sprintf("★ %d GAMES", games)),
			letterStyle.Render(fmt.Sprintf("✎ %d LETTERS", letters)),
			langStyle.Render(fmt.Sprintf("◆ %d LANGUAGES", languages)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(line)
}

const buttonWidth = 22

// renderMenu renders each menu item as a fixed-width button.
func renderMenu(items []string, selected int, cw int) string {
	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Highlight).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Highlight).
		Padding(0, 1)

	normalBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	buttons := make([]string, len(items))
	for i, label := range items {
		if i == selected {
			buttons[i] = selectedBtn.Render("▸ " + label)
		} else {
			buttons[i] = normalBtn.Render(label)
		}
	}
	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(strings.Join(buttons, "\n"))
}

// renderMenuCompact renders menu items as plain lines for small terminals
// where bordered buttons would overflow.
func renderMenuCompact(items []string, selected int, cw int) string {
	lines := make([]string, len(items))
	for i, label := range items {
		if i == selected {
			lines[i] = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Highlight).
				Bold(true).
				Render(" ▸ " + label + " ")
		} else {
			lines[i] = lipgloss.NewStyle().Foreground(theme.Text).Render("   " + label)
		}
	}
	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(strings.Join(lines, "\n"))
}

func renderMascotBox(v MascotVariant, cw int) string {
	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(RenderMascot(v))
}

func renderEphemeralNote(cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Accent).
		Width(cw).
		Align(lipgloss.Center).
		Render("⚠ Progress will not be saved this time")
}
