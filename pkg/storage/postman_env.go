package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/athleticaos/pmgen/pkg/postman"
)

// PostmanEnvironment is the environment document the Postman app imports.
type PostmanEnvironment struct {
	ID     string                    `json:"id"`
	Name   string                    `json:"name"`
	Values []PostmanEnvironmentValue `json:"values"`
	Scope  string                    `json:"_postman_variable_scope"`
}

// PostmanEnvironmentValue is a single environment variable.
type PostmanEnvironmentValue struct {
	Key     string `json:"key"`
	Value   string `json:"value"`
	Type    string `json:"type"`
	Enabled bool   `json:"enabled"`
}

// NewPostmanEnvironment converts a variable map into a Postman environment with keys sorted.
// The token variable is typed as a secret so the app masks it.
func NewPostmanEnvironment(name string, env map[string]string) PostmanEnvironment {
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	values := make([]PostmanEnvironmentValue, 0, len(keys))
	for _, k := range keys {
		typ := "default"
		if k == "token" {
			typ = "secret"
		}
		values = append(values, PostmanEnvironmentValue{Key: k, Value: env[k], Type: typ, Enabled: true})
	}

	return PostmanEnvironment{
		ID:     postman.NewID(),
		Name:   name,
		Values: values,
		Scope:  "environment",
	}
}

// SavePostmanEnvironment writes the environment as indented JSON, creating parent directories.
func SavePostmanEnvironment(env PostmanEnvironment, filePath string) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	data, err := json.MarshalIndent(env, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal environment: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write environment: %w", err)
	}
	return nil
}
