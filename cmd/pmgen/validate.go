package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/athleticaos/pmgen/pkg/postman"
	"github.com/athleticaos/pmgen/pkg/tui"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a collection file against the Postman v2.1 schema",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := loadConfig().Output
		if len(args) == 1 {
			path = args[0]
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read collection: %w", err)
		}

		if err := postman.Validate(data); err != nil {
			var verr *postman.ValidationError
			if errors.As(err, &verr) {
				for _, p := range verr.Problems {
					fmt.Println(tui.ErrorStyle.Render("  ✗ " + p))
				}
			}
			return fmt.Errorf("%s is not a valid collection", path)
		}

		fmt.Println(tui.SuccessStyle.Render("✓ " + path + " is a valid Postman v2.1 collection"))
		return nil
	},
}
