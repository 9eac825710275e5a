package main

import (
	"fmt"
	"path/filepath"

	"github.com/athleticaos/pmgen/pkg/athletica"
	"github.com/athleticaos/pmgen/pkg/core"
	"github.com/athleticaos/pmgen/pkg/postman"
	"github.com/athleticaos/pmgen/pkg/storage"
	"github.com/athleticaos/pmgen/pkg/tui"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export [dir]",
	Short: "Write every request as a YAML file, one directory per folder",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := filepath.Join(core.ConfigFolderName, "requests")
		if len(args) == 1 {
			dir = args[0]
		}

		c := athletica.BuildNamed(postman.NewID(), loadConfig().CollectionName)
		written, err := storage.ExportRequests(c, dir)
		if err != nil {
			return err
		}

		fmt.Println(tui.SuccessStyle.Render(fmt.Sprintf("✓ Exported %d requests to %s", len(written), dir)))
		return nil
	},
}
