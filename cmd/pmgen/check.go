package main

import (
	"errors"
	"fmt"

	"github.com/athleticaos/pmgen/pkg/core"
	"github.com/athleticaos/pmgen/pkg/tui"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Compare the collection on disk with a fresh build",
	Long: `check rebuilds the collection and compares it with the file on disk,
ignoring the _postman_id. It prints a unified diff and exits non-zero on drift.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		path := cfg.Output
		if len(args) == 1 {
			path = args[0]
		}

		result, err := core.Check(path, cfg.CollectionName)
		if errors.Is(err, core.ErrDrift) {
			fmt.Print(result.Diff)
			return fmt.Errorf("%s is out of date, run pmgen generate", path)
		}
		if err != nil {
			return err
		}

		fmt.Println(tui.SuccessStyle.Render("✓ " + path + " is up to date"))
		return nil
	},
}
