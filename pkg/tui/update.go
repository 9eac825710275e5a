package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m = m.handleWindowResize(msg)
		return m, nil

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	}
	return m, nil
}

// listWidth is the width of the request list pane.
func (m Model) listWidth() int {
	w := m.width * 2 / 5
	if w < 24 {
		w = 24
	}
	if w > 60 {
		w = 60
	}
	return w
}

// bodyHeight is the height shared by both panes.
func (m Model) bodyHeight() int {
	h := m.height - 2 // filter line + footer
	if h < 5 {
		h = 5
	}
	return h
}

// handleWindowResize adjusts the layout when the terminal is resized.
func (m Model) handleWindowResize(msg tea.WindowSizeMsg) Model {
	m.width = msg.Width
	m.height = msg.Height

	detailWidth := m.width - m.listWidth() - 3
	if detailWidth < 20 {
		detailWidth = 20
	}

	if !m.ready {
		m.detail = viewport.New(detailWidth, m.bodyHeight())
		m.ready = true
	} else {
		m.detail.Width = detailWidth
		m.detail.Height = m.bodyHeight()
	}
	m.renderer = newRenderer(detailWidth - 2)
	m.filter.Width = m.listWidth() - 4

	m.refreshDetail()
	return m
}

// refreshDetail renders the selected entry into the detail viewport.
func (m *Model) refreshDetail() {
	e, ok := m.selected()
	if !ok {
		m.detail.SetContent(DimStyle.Render("No matching requests."))
		return
	}
	m.detail.SetContent(m.render(entryMarkdown(m.collection, e, m.env)))
	m.detail.GotoTop()
}

// render turns markdown into terminal output, or returns it as-is without a renderer.
func (m Model) render(md string) string {
	if m.renderer == nil {
		return md
	}
	out, err := m.renderer.Render(md)
	if err != nil {
		return md
	}
	return out
}
