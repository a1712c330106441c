package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/varnamala/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with Varnamala styling. Suggestions,
// when set, complete with Tab.
type TextInput struct {
	Model    textinput.Model
	MaxWidth int
}

// NewTextInput creates a focused text input.
func NewTextInput(placeholder string, maxWidth int, suggestions []string) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "🔎 "
	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}
	if len(suggestions) > 0 {
		ti.ShowSuggestions = true
		ti.SetSuggestions(suggestions)
	}
	ti.Focus()
	return TextInput{Model: ti, MaxWidth: maxWidth}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the text input.
func (t TextInput) View() string {
	return lipgloss.NewStyle().Foreground(theme.Text).Render(t.Model.View())
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// Reset clears the input.
func (t *TextInput) Reset() {
	t.Model.Reset()
}
