package components

import (
	"github.com/abhisek/varnamala/internal/ui/theme"
)

// Button is a labelled action that can be disabled.
type Button struct {
	Label  string
	Key    string
	Active bool
}

func NewButton(label, key string, active bool) Button {
	return Button{Label: label, Key: key, Active: active}
}

// View renders the button with its key, e.g. "[c] Check".
func (b Button) View() string {
	label := b.Label
	if b.Key != "" {
		label = "[" + b.Key + "] " + label
	}
	if b.Active {
		return theme.ButtonActive.Render(label)
	}
	return theme.ButtonInactive.Render(label)
}
