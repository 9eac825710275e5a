package core

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/athleticaos/pmgen/pkg/athletica"
	"github.com/spf13/viper"
)

const ConfigFolderName = ".pmgen"

const configFileName = "config.json"

// Config represents the user's pmgen configuration
type Config struct {
	Output         string            `json:"output" mapstructure:"output"`
	CollectionName string            `json:"collection_name" mapstructure:"collection_name"`
	EnvOutput      string            `json:"env_output" mapstructure:"env_output"`
	Environment    map[string]string `json:"environment" mapstructure:"environment"`
}

// DefaultConfig reproduces the generator's built-in literals.
func DefaultConfig() Config {
	return Config{
		Output:         athletica.DefaultOutput,
		CollectionName: athletica.DefaultName,
		EnvOutput:      "",
		Environment: map[string]string{
			"base_url": "http://localhost:8080",
		},
	}
}

// SetDefaults registers DefaultConfig values with v.
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("output", d.Output)
	v.SetDefault("collection_name", d.CollectionName)
	v.SetDefault("env_output", d.EnvOutput)
	v.SetDefault("environment", d.Environment)
}

// LoadConfig reads the effective configuration out of v. Empty values fall
// back to the defaults so a partial config file never blanks the output path.
func LoadConfig(v *viper.Viper) Config {
	d := DefaultConfig()
	cfg := Config{
		Output:         v.GetString("output"),
		CollectionName: v.GetString("collection_name"),
		EnvOutput:      v.GetString("env_output"),
		Environment:    v.GetStringMapString("environment"),
	}

	if cfg.Output == "" {
		cfg.Output = d.Output
	}
	if cfg.CollectionName == "" {
		cfg.CollectionName = d.CollectionName
	}
	if len(cfg.Environment) == 0 {
		cfg.Environment = d.Environment
	}

	return cfg
}

// InitializeConfigFolder creates dir and writes cfg to dir/config.json.
// An existing config file is left untouched unless overwrite is set.
// It reports whether a file was written.
func InitializeConfigFolder(dir string, cfg Config, overwrite bool) (bool, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return false, fmt.Errorf("failed to create %s folder: %w", dir, err)
	}

	configPath := filepath.Join(dir, configFileName)
	if _, err := os.Stat(configPath); err == nil && !overwrite {
		return false, nil
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return false, fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return false, fmt.Errorf("failed to write config file: %w", err)
	}

	return true, nil
}

// ConfigPath returns the config file location inside dir.
func ConfigPath(dir string) string {
	return filepath.Join(dir, configFileName)
}
