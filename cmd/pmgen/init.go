package main

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/athleticaos/pmgen/pkg/core"
	"github.com/athleticaos/pmgen/pkg/tui"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var (
	initYes   bool
	initForce bool
)

func init() {
	initCmd.Flags().BoolVarP(&initYes, "yes", "y", false, "accept the defaults without prompting")
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .pmgen/config.json",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()

		if !initYes {
			var err error
			cfg, err = runSetupWizard(cfg)
			if err != nil {
				return err
			}
		}

		written, err := core.InitializeConfigFolder(core.ConfigFolderName, cfg, initForce)
		if err != nil {
			return err
		}
		if !written {
			fmt.Println(tui.DimStyle.Render(core.ConfigPath(core.ConfigFolderName) + " already exists (use --force to overwrite)"))
			return nil
		}

		fmt.Println(tui.SuccessStyle.Render("✓ Wrote " + core.ConfigPath(core.ConfigFolderName)))
		return nil
	},
}

// runSetupWizard asks for each config value, pre-filled with cfg.
func runSetupWizard(cfg core.Config) (core.Config, error) {
	baseURL := cfg.Environment["base_url"]
	confirmed := true

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Collection output file").
				Value(&cfg.Output).
				Validate(notEmpty("output file")),
			huh.NewInput().
				Title("Collection name").
				Value(&cfg.CollectionName).
				Validate(notEmpty("collection name")),
			huh.NewInput().
				Title("Base URL").
				Description("Default for {{base_url}} in exported environments").
				Value(&baseURL).
				Validate(validURL),
			huh.NewInput().
				Title("Environment file").
				Description("Written next to the collection on generate; leave empty to skip").
				Value(&cfg.EnvOutput),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Write .pmgen/config.json?").
				Value(&confirmed),
		),
	)

	if err := form.Run(); err != nil {
		return cfg, fmt.Errorf("setup cancelled: %w", err)
	}
	if !confirmed {
		return cfg, errors.New("setup cancelled")
	}

	env := make(map[string]string, len(cfg.Environment))
	for k, v := range cfg.Environment {
		env[k] = v
	}
	env["base_url"] = baseURL
	cfg.Environment = env
	return cfg, nil
}

func notEmpty(field string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func validURL(s string) error {
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.New("enter an absolute URL such as http://localhost:8080")
	}
	return nil
}
