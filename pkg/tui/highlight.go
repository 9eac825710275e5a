package tui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/athleticaos/pmgen/pkg/postman"
	"github.com/athleticaos/pmgen/pkg/storage"
)

// prettyJSON re-indents a JSON document with two spaces.
// If the input is not valid JSON, it returns the original string.
func prettyJSON(input string) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(input), "", "  "); err != nil {
		return input
	}
	return buf.String()
}

// entryMarkdown describes a folder or request as markdown for the detail pane.
func entryMarkdown(c postman.Collection, e entry, env map[string]string) string {
	if e.isFolder() {
		return folderMarkdown(c, e.Folder)
	}
	return itemMarkdown(e.Folder, *e.Item, env)
}

func folderMarkdown(c postman.Collection, name string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", name)

	for _, f := range c.Item {
		if f.Name != name {
			continue
		}
		if len(f.Item) == 0 {
			sb.WriteString("_No requests yet._\n")
			break
		}
		fmt.Fprintf(&sb, "%d requests\n\n", len(f.Item))
		for _, it := range f.Item {
			fmt.Fprintf(&sb, "- **%s** %s\n", it.Request.Method, it.Name)
		}
		break
	}
	return sb.String()
}

func itemMarkdown(folder string, item postman.Item, env map[string]string) string {
	req := item.Request
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", item.Name)
	fmt.Fprintf(&sb, "_%s_\n\n", folder)
	fmt.Fprintf(&sb, "`%s %s`\n\n", req.Method, req.URL.Raw)
	if env != nil {
		if resolved := storage.SubstituteVariables(req.URL.Raw, env); resolved != req.URL.Raw {
			fmt.Fprintf(&sb, "Resolved: `%s`\n\n", resolved)
		}
	}
	if req.Description != "" {
		sb.WriteString(req.Description + "\n\n")
	}

	if len(req.Header) > 0 {
		sb.WriteString("## Headers\n\n| Key | Value |\n| --- | --- |\n")
		for _, h := range req.Header {
			fmt.Fprintf(&sb, "| %s | `%s` |\n", h.Key, h.Value)
		}
		sb.WriteString("\n")
	}

	if req.Body != nil {
		fmt.Fprintf(&sb, "## Body\n\n```json\n%s\n```\n\n", prettyJSON(req.Body.Raw))
	}

	for _, ev := range item.Event {
		fmt.Fprintf(&sb, "## Script (%s)\n\n```javascript\n%s\n```\n\n", ev.Listen, strings.Join(ev.Script.Exec, "\n"))
	}
	return sb.String()
}

// entryJSON returns the Postman JSON of the selected folder or request.
func entryJSON(c postman.Collection, e entry) (string, error) {
	var v any = e.Item
	if e.isFolder() {
		for i := range c.Item {
			if c.Item[i].Name == e.Folder {
				v = c.Item[i]
				break
			}
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}
