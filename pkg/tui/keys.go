package tui

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsg processes keyboard input and returns the updated model and command.
// This centralizes all key handling logic for the TUI.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.filtering {
		return m.handleFilterKey(msg)
	}

	m.status = ""
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "esc":
		if m.filter.Value() != "" {
			return m.handleClearFilter()
		}
		return m, tea.Quit

	case "/":
		m.filtering = true
		cmd := m.filter.Focus()
		return m, cmd

	case "up", "k":
		return m.moveCursor(-1), nil

	case "down", "j":
		return m.moveCursor(1), nil

	case "home", "g":
		return m.moveCursor(-len(m.visible)), nil

	case "end", "G":
		return m.moveCursor(len(m.visible)), nil

	case "ctrl+y":
		return m.handleCopyRequest()

	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleFilterKey feeds keys to the filter input while it has focus.
func (m Model) handleFilterKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.filtering = false
		m.filter.Blur()
		return m.handleClearFilter()

	case "enter":
		m.filtering = false
		m.filter.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m = m.applyFilter()
	return m, cmd
}

// handleClearFilter empties the filter and shows every row again.
func (m Model) handleClearFilter() (Model, tea.Cmd) {
	m.filter.SetValue("")
	return m.applyFilter(), nil
}

// applyFilter recomputes the visible rows, keeping the selection when it survives.
func (m Model) applyFilter() Model {
	current := -1
	if _, ok := m.selected(); ok {
		current = m.visible[m.cursor]
	}

	m.visible = filterEntries(m.entries, m.filter.Value())
	m.cursor = 0
	for i, idx := range m.visible {
		if idx == current {
			m.cursor = i
			break
		}
	}
	m.refreshDetail()
	return m
}

// moveCursor shifts the selection by delta rows, clamped to the visible list.
func (m Model) moveCursor(delta int) Model {
	if len(m.visible) == 0 {
		m.cursor = 0
		return m
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	m.refreshDetail()
	return m
}

// handleCopyRequest copies the selected request or folder as JSON.
func (m Model) handleCopyRequest() (Model, tea.Cmd) {
	e, ok := m.selected()
	if !ok {
		return m, nil
	}
	data, err := entryJSON(m.collection, e)
	if err != nil {
		m.status = "copy failed: " + err.Error()
		return m, nil
	}
	if err := clipboard.WriteAll(data); err != nil {
		m.status = "copy failed: " + err.Error()
		return m, nil
	}
	m.status = "copied " + e.title()
	return m, nil
}
