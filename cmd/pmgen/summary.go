package main

import (
	"fmt"

	"github.com/athleticaos/pmgen/pkg/athletica"
	"github.com/athleticaos/pmgen/pkg/core"
	"github.com/athleticaos/pmgen/pkg/postman"
	"github.com/athleticaos/pmgen/pkg/tui"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

var (
	summaryCopy bool
	summaryRaw  bool
)

func init() {
	summaryCmd.Flags().BoolVar(&summaryCopy, "copy", false, "copy the Markdown to the clipboard")
	summaryCmd.Flags().BoolVar(&summaryRaw, "raw", false, "print Markdown without rendering")
	rootCmd.AddCommand(summaryCmd)
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print a Markdown overview of every folder and request",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := athletica.BuildNamed(postman.NewID(), loadConfig().CollectionName)
		md := core.Summary(c)

		if summaryCopy {
			if err := clipboard.WriteAll(md); err != nil {
				return fmt.Errorf("failed to copy summary: %w", err)
			}
			fmt.Println(tui.SuccessStyle.Render("✓ Summary copied to clipboard"))
			return nil
		}

		if summaryRaw {
			fmt.Print(md)
			return nil
		}

		// Render with Glamour
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(100),
		)
		if err != nil {
			fmt.Print(md) // Fallback to raw output
			return nil
		}

		out, err := renderer.Render(md)
		if err != nil {
			fmt.Print(md) // Fallback
			return nil
		}

		fmt.Print(out)
		return nil
	},
}
