package main

import (
	"fmt"

	"github.com/athleticaos/pmgen/pkg/core"
	"github.com/athleticaos/pmgen/pkg/tui"
	"github.com/spf13/cobra"
)

var (
	outputPath string
	collName   string
	keepID     bool
	envOut     string
	envFormat  string
)

func init() {
	addGenerateFlags(generateCmd)
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Build the collection and write it to the output file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate()
	},
}

func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default from config)")
	cmd.Flags().StringVar(&collName, "name", "", "collection display name")
	cmd.Flags().BoolVar(&keepID, "keep-id", false, "reuse the _postman_id of an existing output file")
	cmd.Flags().StringVar(&envOut, "env-out", "", "also write an environment file with every placeholder")
	cmd.Flags().StringVar(&envFormat, "env-format", "yaml", "environment file format (yaml, postman)")
}

func runGenerate() error {
	opts := core.OptionsFromConfig(loadConfig())
	if outputPath != "" {
		opts.Output = outputPath
	}
	if collName != "" {
		opts.Name = collName
	}
	if envOut != "" {
		opts.EnvOutput = envOut
	}
	opts.KeepID = keepID

	format, err := core.ParseEnvFormat(envFormat)
	if err != nil {
		return err
	}
	opts.EnvFormat = format

	result, err := core.Generate(opts)
	if err != nil {
		return err
	}

	fmt.Println(tui.SuccessStyle.Render("✓ Wrote " + result.Path))
	fmt.Println(tui.DimStyle.Render(fmt.Sprintf("  %d folders, %d requests, id %s", result.Folders, result.Requests, result.ID)))
	if result.EnvPath != "" {
		fmt.Println(tui.SuccessStyle.Render("✓ Wrote environment " + result.EnvPath))
	}
	return nil
}
