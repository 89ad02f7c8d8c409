package model

import "fyne.io/fyne/v2/data/binding"

// UIState holds the demo window's observable state. The status bar binds to
// these values and updates reactively as sections toggle.
type UIState struct {
	// LastEvent describes the most recent transition, e.g. "Details: visible".
	LastEvent binding.String
	// OpenCount is the number of currently visible sections.
	OpenCount binding.Int
}

// NewUIState creates a UIState with initialized bindings.
func NewUIState() *UIState {
	last := binding.NewString()
	_ = last.Set("ready")

	return &UIState{
		LastEvent: last,
		OpenCount: binding.NewInt(),
	}
}
