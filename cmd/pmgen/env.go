package main

import (
	"fmt"

	"github.com/athleticaos/pmgen/pkg/athletica"
	"github.com/athleticaos/pmgen/pkg/core"
	"github.com/athleticaos/pmgen/pkg/postman"
	"github.com/athleticaos/pmgen/pkg/storage"
	"github.com/athleticaos/pmgen/pkg/tui"
	"github.com/spf13/cobra"
)

var (
	envCmdOut    string
	envCmdFormat string
)

func init() {
	envCmd.Flags().StringVar(&envCmdOut, "out", "", "environment file to write (default from config, else .pmgen/env/dev)")
	envCmd.Flags().StringVar(&envCmdFormat, "format", "yaml", "environment file format (yaml, postman)")
	rootCmd.AddCommand(envCmd)
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Write an environment file listing every {{placeholder}} in the collection",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()

		format, err := core.ParseEnvFormat(envCmdFormat)
		if err != nil {
			return err
		}

		out := envCmdOut
		if out == "" {
			out = cfg.EnvOutput
		}
		if out == "" {
			out = defaultEnvPath(format)
		}

		c := athletica.BuildNamed(postman.NewID(), cfg.CollectionName)
		path, err := core.ExportEnvironment(c, cfg.Environment, out, format)
		if err != nil {
			return err
		}

		fmt.Println(tui.SuccessStyle.Render("✓ Wrote environment " + path))
		for _, name := range storage.Placeholders(c) {
			fmt.Println(tui.DimStyle.Render("  {{" + name + "}}"))
		}
		return nil
	},
}

func defaultEnvPath(format core.EnvFormat) string {
	if format == core.EnvFormatPostman {
		return core.ConfigFolderName + "/env/dev.postman_environment.json"
	}
	return core.ConfigFolderName + "/env/dev"
}
