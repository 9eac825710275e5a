package main

import (
	"fmt"
	"os"

	"github.com/athleticaos/pmgen/pkg/core"
	"github.com/athleticaos/pmgen/pkg/tui"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "pmgen",
		Short: "pmgen - Postman collection generator for the AthleticaOS API",
		Long: `pmgen builds the Postman v2.1 collection describing the AthleticaOS rugby
backend and writes it to docs/api/postman/full. Run without a subcommand it
generates the collection; the other commands check, validate, summarize and
browse it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate()
		},
	}
)

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .pmgen/config.json)")
	addGenerateFlags(rootCmd)
}

func initConfig() {
	// Load .env file if it exists (optional, warn if malformed)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintln(os.Stderr, tui.WarnStyle.Render(fmt.Sprintf("Warning: Failed to load .env file: %v", err)))
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(core.ConfigFolderName)
		viper.SetConfigType("json")
		viper.SetConfigName("config")
	}

	core.SetDefaults(viper.GetViper())
	viper.SetEnvPrefix("PMGEN")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil && cfgFile != "" {
		fmt.Fprintln(os.Stderr, tui.WarnStyle.Render(fmt.Sprintf("Warning: Failed to read config %s: %v", cfgFile, err)))
	}
}

// loadConfig returns the effective configuration (file, env, defaults).
func loadConfig() core.Config {
	return core.LoadConfig(viper.GetViper())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, tui.ErrorStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}
