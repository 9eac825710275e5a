package tui

import (
	"strings"

	"github.com/athleticaos/pmgen/pkg/postman"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"
)

// entry is one row of the request list: a folder header or a request item.
type entry struct {
	Folder string
	Item   *postman.Item // nil for folder rows
}

func (e entry) isFolder() bool { return e.Item == nil }

// title is the text matched by the filter and shown in the list.
func (e entry) title() string {
	if e.isFolder() {
		return e.Folder
	}
	return e.Item.Name
}

// Model is the Bubble Tea model for the collection browser.
// It manages:
// - the flattened folder/request list and the cursor over it
// - a filter input narrowing the list
// - a viewport with the selected request's details
type Model struct {
	collection postman.Collection
	env        map[string]string

	entries []entry
	visible []int // indices into entries that pass the filter
	cursor  int   // position within visible

	filter    textinput.Model
	filtering bool

	detail   viewport.Model
	renderer *glamour.TermRenderer

	width  int
	height int
	ready  bool
	status string // transient footer message, e.g. "copied"
}

// flatten lists every folder followed by its items, in collection order.
func flatten(c postman.Collection) []entry {
	var out []entry
	for fi := range c.Item {
		f := &c.Item[fi]
		out = append(out, entry{Folder: f.Name})
		for ii := range f.Item {
			out = append(out, entry{Folder: f.Name, Item: &f.Item[ii]})
		}
	}
	return out
}

// filterEntries returns the indices of entries matching query (case-insensitive).
// An item matches on its name, method or raw URL; a folder matching by name keeps
// all its items; a folder row is kept whenever one of its items is.
func filterEntries(entries []entry, query string) []int {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		all := make([]int, len(entries))
		for i := range entries {
			all[i] = i
		}
		return all
	}

	matchesItem := func(e entry) bool {
		return strings.Contains(strings.ToLower(e.Item.Name), query) ||
			strings.Contains(strings.ToLower(e.Item.Request.Method), query) ||
			strings.Contains(strings.ToLower(e.Item.Request.URL.Raw), query)
	}

	var out []int
	folderIdx := -1
	folderMatched := false
	folderAdded := false
	for i, e := range entries {
		if e.isFolder() {
			folderIdx = i
			folderMatched = strings.Contains(strings.ToLower(e.Folder), query)
			folderAdded = false
			if folderMatched {
				out = append(out, i)
				folderAdded = true
			}
			continue
		}

		if folderMatched || matchesItem(e) {
			if !folderAdded && folderIdx >= 0 {
				out = append(out, folderIdx)
				folderAdded = true
			}
			out = append(out, i)
		}
	}
	return out
}

// selected returns the entry under the cursor.
func (m Model) selected() (entry, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return entry{}, false
	}
	return m.entries[m.visible[m.cursor]], true
}
