package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the entire TUI to a string.
// This is called by Bubble Tea on every update.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	list := ListPaneStyle.
		Width(m.listWidth()).
		Height(m.bodyHeight()).
		Render(m.renderList())
	detail := DetailPaneStyle.Render(m.detail.View())

	var b strings.Builder
	b.WriteString(m.renderFilter())
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list, detail))
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// renderFilter shows the filter input while typing, or the active query.
func (m Model) renderFilter() string {
	if m.filtering {
		return m.filter.View()
	}
	if q := m.filter.Value(); q != "" {
		return FilterStyle.Render("filter: " + q)
	}
	return AccentStyle.Render(m.collection.Info.Name)
}

// listWindow returns the [start, end) range of visible rows that fits the pane,
// keeping the cursor in view.
func (m Model) listWindow() (int, int) {
	height := m.bodyHeight()
	n := len(m.visible)
	if n <= height {
		return 0, n
	}
	start := m.cursor - height/2
	if start < 0 {
		start = 0
	}
	if start+height > n {
		start = n - height
	}
	return start, start + height
}

// renderList renders the visible folder and request rows.
func (m Model) renderList() string {
	if len(m.visible) == 0 {
		return DimStyle.Render("no matches")
	}

	width := m.listWidth() - 2
	start, end := m.listWindow()
	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		e := m.entries[m.visible[i]]
		rows = append(rows, m.renderRow(e, i == m.cursor, width))
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderRow(e entry, selected bool, width int) string {
	if e.isFolder() {
		text := truncate(e.Folder, width)
		if selected {
			return SelectedRowStyle.Render(text)
		}
		return FolderRowStyle.Render(text)
	}

	name := truncate(e.Item.Name, width-8)
	if selected {
		return SelectedRowStyle.Render("  " + padRight(e.Item.Request.Method, 6) + name)
	}
	return "  " + MethodStyle(e.Item.Request.Method).Render(e.Item.Request.Method) + ItemRowStyle.Render(name)
}

// renderFooter renders the status on the left and shortcuts on the right.
func (m Model) renderFooter() string {
	left := FooterStyle.Render("pmgen")
	if m.status != "" {
		left = SuccessStyle.Render(m.status)
	}

	var parts []string
	if m.filtering {
		parts = append(parts, ShortcutKeyStyle.Render("enter")+ShortcutDescStyle.Render(" apply"))
		parts = append(parts, ShortcutKeyStyle.Render("esc")+ShortcutDescStyle.Render(" clear"))
	} else {
		parts = append(parts, ShortcutKeyStyle.Render("↑↓")+ShortcutDescStyle.Render(" select"))
		parts = append(parts, ShortcutKeyStyle.Render("/")+ShortcutDescStyle.Render(" filter"))
		parts = append(parts, ShortcutKeyStyle.Render("ctrl+y")+ShortcutDescStyle.Render(" copy"))
		parts = append(parts, ShortcutKeyStyle.Render("q")+ShortcutDescStyle.Render(" quit"))
	}
	right := strings.Join(parts, "    ")

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		gap = 2
	}
	return left + strings.Repeat(" ", gap) + right
}

func truncate(s string, width int) string {
	if width < 1 {
		return ""
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}

func padRight(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
