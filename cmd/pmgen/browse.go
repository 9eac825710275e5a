package main

import (
	"fmt"

	"github.com/athleticaos/pmgen/pkg/athletica"
	"github.com/athleticaos/pmgen/pkg/postman"
	"github.com/athleticaos/pmgen/pkg/storage"
	"github.com/athleticaos/pmgen/pkg/tui"
	"github.com/spf13/cobra"
)

var (
	browseFile string
	browseEnv  string
)

func init() {
	browseCmd.Flags().StringVarP(&browseFile, "file", "f", "", "browse a collection file instead of a fresh build")
	browseCmd.Flags().StringVarP(&browseEnv, "env", "e", "", "environment file (YAML) used to resolve placeholders")
	rootCmd.AddCommand(browseCmd)
}

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Explore folders and requests in an interactive terminal UI",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()

		c := athletica.BuildNamed(postman.NewID(), cfg.CollectionName)
		if browseFile != "" {
			loaded, err := postman.ReadFile(browseFile)
			if err != nil {
				return err
			}
			c = loaded
		}

		env := cfg.Environment
		if browseEnv != "" {
			loaded, err := storage.LoadEnvironment(browseEnv)
			if err != nil {
				return err
			}
			env = loaded
		}

		if err := tui.Run(c, env); err != nil {
			return fmt.Errorf("failed to run browser: %w", err)
		}
		return nil
	},
}
