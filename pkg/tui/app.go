// Package tui provides the interactive collection browser.
// It uses Bubble Tea for the TUI framework with a two-pane layout:
// the request list on the left and the selected request on the right.
//
// File organization:
// - app.go: Entry point (Run function)
// - model.go: Model struct, list entries and filtering
// - init.go: Model initialization
// - update.go: Event handling and state updates
// - view.go: Rendering and display logic
// - keys.go: Keyboard input handling
// - styles.go: Visual styling (colors, borders, etc.)
// - highlight.go: Request detail markdown and JSON formatting
package tui

import (
	"github.com/athleticaos/pmgen/pkg/postman"
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the browser for c. env resolves {{placeholders}} in the detail pane
// and may be nil.
func Run(c postman.Collection, env map[string]string) error {
	m := NewModel(c, env)
	prog := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := prog.Run()
	return err
}
