package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/varnamala/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Closer is implemented by screens that hold a running game. Close is called
// once when the screen leaves the stack or the program quits.
type Closer interface {
	Close()
}

// StatusProvider is implemented by screens that show a status in the header,
// such as the language being played.
type StatusProvider interface {
	Status() string
}

// InputCapturer is implemented by screens with a focused text field. While
// CapturingInput is true the app passes Esc to the screen instead of going
// back.
type InputCapturer interface {
	CapturingInput() bool
}
