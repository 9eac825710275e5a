package main

import (
	"fmt"
	"os"

	"github.com/athleticaos/pmgen/pkg/tui"
	"github.com/blang/semver"
	"github.com/charmbracelet/huh"
	"github.com/rhysd/go-github-selfupdate/selfupdate"
	"github.com/spf13/cobra"
)

const releaseSlug = "athleticaos/pmgen"

func init() {
	rootCmd.AddCommand(updateCmd)
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update pmgen to the latest release",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if version == "dev" {
			fmt.Println("You are running a development version of pmgen. Update is not supported.")
			return nil
		}

		latest, found, err := selfupdate.DetectLatest(releaseSlug)
		if err != nil {
			return fmt.Errorf("failed to detect latest version: %w", err)
		}

		v, err := semver.Parse(version)
		if err != nil {
			return fmt.Errorf("failed to parse current version '%s': %w", version, err)
		}

		if !found || latest.Version.LTE(v) {
			fmt.Println(tui.SuccessStyle.Render("✓ Current version is the latest"))
			return nil
		}

		var confirmed bool
		if err := huh.NewConfirm().
			Title(fmt.Sprintf("Update to %s?", latest.Version)).
			Value(&confirmed).
			Run(); err != nil || !confirmed {
			return nil
		}

		exe, err := os.Executable()
		if err != nil {
			return fmt.Errorf("could not locate executable path: %w", err)
		}
		if err := selfupdate.UpdateTo(latest.AssetURL, exe); err != nil {
			return fmt.Errorf("failed to update binary: %w", err)
		}
		fmt.Println(tui.SuccessStyle.Render(fmt.Sprintf("✓ Successfully updated to version %s", latest.Version)))
		return nil
	},
}
