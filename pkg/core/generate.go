package core

import (
	"fmt"
	"strings"

	"github.com/athleticaos/pmgen/pkg/athletica"
	"github.com/athleticaos/pmgen/pkg/postman"
	"github.com/athleticaos/pmgen/pkg/storage"
)

// GenerateOptions controls a single generator run.
type GenerateOptions struct {
	Output string
	Name   string
	// KeepID reuses the _postman_id of an existing output file so reruns are byte-identical.
	KeepID bool
	// EnvOutput, when set, also writes an environment file for the collection's placeholders.
	EnvOutput string
	EnvFormat EnvFormat
	Defaults  map[string]string
}

// GenerateResult describes what a run produced.
type GenerateResult struct {
	Path     string
	ID       string
	Folders  int
	Requests int
	EnvPath  string
}

// OptionsFromConfig maps configuration onto generate options.
func OptionsFromConfig(cfg Config) GenerateOptions {
	return GenerateOptions{
		Output:    cfg.Output,
		Name:      cfg.CollectionName,
		EnvOutput: cfg.EnvOutput,
		EnvFormat: EnvFormatYAML,
		Defaults:  cfg.Environment,
	}
}

// Generate builds the collection and writes it to opts.Output. A missing
// parent directory is an error; it is not created.
func Generate(opts GenerateOptions) (*GenerateResult, error) {
	if opts.Output == "" {
		opts.Output = athletica.DefaultOutput
	}
	if opts.Name == "" {
		opts.Name = athletica.DefaultName
	}

	id := postman.NewID()
	if opts.KeepID {
		if existing, err := postman.ReadFile(opts.Output); err == nil && existing.Info.PostmanID != "" {
			id = existing.Info.PostmanID
		}
	}

	c := athletica.BuildNamed(id, opts.Name)
	if err := postman.WriteFile(opts.Output, c); err != nil {
		return nil, err
	}

	result := &GenerateResult{
		Path:     opts.Output,
		ID:       id,
		Folders:  len(c.Item),
		Requests: len(c.Requests()),
	}

	if opts.EnvOutput != "" {
		envPath, err := ExportEnvironment(c, opts.Defaults, opts.EnvOutput, opts.EnvFormat)
		if err != nil {
			return result, fmt.Errorf("collection written but environment export failed: %w", err)
		}
		result.EnvPath = envPath
	}

	return result, nil
}

// EnvFormat selects the environment file flavour.
type EnvFormat string

const (
	EnvFormatYAML    EnvFormat = "yaml"
	EnvFormatPostman EnvFormat = "postman"
)

// ParseEnvFormat accepts "yaml" (also "" and "yml") or "postman".
func ParseEnvFormat(s string) (EnvFormat, error) {
	switch s {
	case "", "yaml", "yml":
		return EnvFormatYAML, nil
	case "postman", "json":
		return EnvFormatPostman, nil
	default:
		return "", fmt.Errorf("unknown environment format '%s' (use: yaml, postman)", s)
	}
}

// ExportEnvironment writes every placeholder of c with its default value and
// returns the path written.
func ExportEnvironment(c postman.Collection, defaults map[string]string, path string, format EnvFormat) (string, error) {
	env := storage.BuildEnvironment(storage.Placeholders(c), defaults)

	switch format {
	case EnvFormatPostman:
		if err := storage.SavePostmanEnvironment(storage.NewPostmanEnvironment(c.Info.Name, env), path); err != nil {
			return "", err
		}
		return path, nil
	default:
		if err := storage.SaveEnvironment(env, path); err != nil {
			return "", err
		}
		if !hasYAMLExt(path) {
			path += ".yaml"
		}
		return path, nil
	}
}

func hasYAMLExt(path string) bool {
	return strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")
}
