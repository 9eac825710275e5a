package core

import (
	"fmt"
	"strings"

	"github.com/athleticaos/pmgen/pkg/postman"
	"github.com/athleticaos/pmgen/pkg/storage"
)

// Summary renders a Markdown overview of the collection: one table per
// folder and the list of environment placeholders it needs.
func Summary(c postman.Collection) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# %s\n\n", c.Info.Name))
	sb.WriteString(fmt.Sprintf("%d folders, %d requests. Schema: `%s`\n\n",
		len(c.Item), len(c.Requests()), c.Info.Schema))

	for _, f := range c.Item {
		sb.WriteString(fmt.Sprintf("## %s\n\n", f.Name))
		if len(f.Item) == 0 {
			sb.WriteString("_No requests yet._\n\n")
			continue
		}

		sb.WriteString("| Method | Name | URL | Auth |\n")
		sb.WriteString("|---|---|---|---|\n")
		for _, it := range f.Item {
			auth := "bearer"
			if !it.Request.HasHeader(postman.HeaderAuthorization) {
				auth = "none"
			}
			sb.WriteString(fmt.Sprintf("| %s | %s | `%s` | %s |\n",
				it.Request.Method, it.Name, it.Request.URL.Raw, auth))
		}
		sb.WriteString("\n")
	}

	placeholders := storage.Placeholders(c)
	if len(placeholders) > 0 {
		sb.WriteString("## Environment\n\n")
		for _, p := range placeholders {
			sb.WriteString(fmt.Sprintf("- `{{%s}}`\n", p))
		}
	}

	return sb.String()
}
