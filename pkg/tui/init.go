package tui

import (
	"github.com/athleticaos/pmgen/pkg/postman"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

// NewModel creates the browser model for c with the cursor on the first row.
func NewModel(c postman.Collection, env map[string]string) Model {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "filter by name, method or url"
	ti.CharLimit = 120
	ti.Width = 40

	entries := flatten(c)
	return Model{
		collection: c,
		env:        env,
		entries:    entries,
		visible:    filterEntries(entries, ""),
		filter:     ti,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// newRenderer builds the glamour renderer for the detail pane.
// A nil renderer makes the pane fall back to plain markdown.
func newRenderer(width int) *glamour.TermRenderer {
	if width < 20 {
		width = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	return r
}
