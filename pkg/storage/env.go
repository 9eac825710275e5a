package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/athleticaos/pmgen/pkg/postman"
	"gopkg.in/yaml.v3"
)

// varPattern matches {{VAR_NAME}} or {{env:VAR_NAME}}
var varPattern = regexp.MustCompile(`\{\{([^}]+)\}\}`)

// Placeholders returns the sorted, unique placeholder names used anywhere a
// request can carry one: URL, header values and body.
func Placeholders(c postman.Collection) []string {
	seen := make(map[string]struct{})
	collect := func(text string) {
		for _, m := range varPattern.FindAllStringSubmatch(text, -1) {
			seen[strings.TrimSpace(m[1])] = struct{}{}
		}
	}

	for _, fi := range c.Requests() {
		req := fi.Item.Request
		collect(req.URL.Raw)
		for _, h := range req.Header {
			collect(h.Value)
		}
		if req.Body != nil {
			collect(req.Body.Raw)
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BuildEnvironment maps every placeholder to its default value, or "" when none is known.
func BuildEnvironment(names []string, defaults map[string]string) map[string]string {
	env := make(map[string]string, len(names))
	for _, name := range names {
		env[name] = defaults[name]
	}
	return env
}

// LoadEnvironment loads environment variables from a YAML file
func LoadEnvironment(filePath string) (map[string]string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read environment file: %w", err)
	}

	var env map[string]string
	if err := yaml.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("failed to parse environment YAML: %w", err)
	}

	// Resolve any {{env:VAR}} references to actual environment variables
	for key, value := range env {
		env[key] = resolveEnvRefs(value)
	}

	return env, nil
}

// SaveEnvironment saves environment variables to a YAML file
func SaveEnvironment(env map[string]string, filePath string) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if !strings.HasSuffix(filePath, ".yaml") && !strings.HasSuffix(filePath, ".yml") {
		filePath = filePath + ".yaml"
	}

	data, err := yaml.Marshal(env)
	if err != nil {
		return fmt.Errorf("failed to marshal environment: %w", err)
	}

	return os.WriteFile(filePath, data, 0644)
}

// SubstituteVariables replaces {{VAR}} placeholders with values from the environment
func SubstituteVariables(text string, env map[string]string) string {
	return varPattern.ReplaceAllStringFunc(text, func(match string) string {
		varName := strings.TrimSpace(strings.TrimPrefix(strings.TrimSuffix(match, "}}"), "{{"))

		// Check for env: prefix (reference to system environment)
		if strings.HasPrefix(varName, "env:") {
			if val := os.Getenv(strings.TrimPrefix(varName, "env:")); val != "" {
				return val
			}
			return match
		}

		if val, ok := env[varName]; ok && val != "" {
			return val
		}

		return match // Keep original if not found
	})
}

// resolveEnvRefs resolves {{env:VAR}} references in a string
func resolveEnvRefs(text string) string {
	return SubstituteVariables(text, nil)
}
