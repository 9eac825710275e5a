package core

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/athleticaos/pmgen/pkg/athletica"
	"github.com/athleticaos/pmgen/pkg/postman"
	"github.com/athleticaos/pmgen/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stripID blanks the _postman_id line so two runs can be compared.
func stripID(t *testing.T, data []byte) []byte {
	t.Helper()
	var out [][]byte
	for _, line := range bytes.Split(data, []byte("\n")) {
		if bytes.Contains(line, []byte(`"_postman_id"`)) {
			continue
		}
		out = append(out, line)
	}
	return bytes.Join(out, []byte("\n"))
}

func TestGenerate_WritesCollection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "collection.json")

	result, err := Generate(GenerateOptions{Output: path})
	require.NoError(t, err)
	assert.Equal(t, path, result.Path)
	assert.Equal(t, 14, result.Folders)
	assert.Equal(t, 25, result.Requests)
	assert.Empty(t, result.EnvPath)

	c, err := postman.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, result.ID, c.Info.PostmanID)
	assert.Equal(t, athletica.DefaultName, c.Info.Name)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NoError(t, postman.Validate(data))
}

func TestGenerate_TwoRunsDifferOnlyByID(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.json")
	b := filepath.Join(dir, "b.json")

	ra, err := Generate(GenerateOptions{Output: a})
	require.NoError(t, err)
	rb, err := Generate(GenerateOptions{Output: b})
	require.NoError(t, err)
	assert.NotEqual(t, ra.ID, rb.ID)

	da, err := os.ReadFile(a)
	require.NoError(t, err)
	db, err := os.ReadFile(b)
	require.NoError(t, err)

	assert.NotEqual(t, da, db)
	assert.Equal(t, string(stripID(t, da)), string(stripID(t, db)))
}

func TestGenerate_KeepID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "collection.json")

	first, err := Generate(GenerateOptions{Output: path, KeepID: true})
	require.NoError(t, err)
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	second, err := Generate(GenerateOptions{Output: path, KeepID: true})
	require.NoError(t, err)
	after, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, before, after)
}

func TestGenerate_KeepIDWithCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "collection.json")
	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0644))

	result, err := Generate(GenerateOptions{Output: path, KeepID: true})
	require.NoError(t, err)
	assert.NotEmpty(t, result.ID)
}

func TestGenerate_MissingDirectoryIsFatal(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "docs", "api")
	path := filepath.Join(dir, "collection.json")

	result, err := Generate(GenerateOptions{Output: path})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestGenerate_CustomName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "collection.json")

	_, err := Generate(GenerateOptions{Output: path, Name: "AthleticaOS Staging"})
	require.NoError(t, err)

	c, err := postman.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "AthleticaOS Staging", c.Info.Name)
}

func TestGenerate_WithEnvironment(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		envOut   string
		format   EnvFormat
		wantPath string
	}{
		{"yaml without extension", filepath.Join(dir, "env", "dev"), EnvFormatYAML, filepath.Join(dir, "env", "dev.yaml")},
		{"yaml with extension", filepath.Join(dir, "env", "local.yml"), EnvFormatYAML, filepath.Join(dir, "env", "local.yml")},
		{"postman", filepath.Join(dir, "env", "local.postman_environment.json"), EnvFormatPostman, filepath.Join(dir, "env", "local.postman_environment.json")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Generate(GenerateOptions{
				Output:    filepath.Join(dir, "collection.json"),
				EnvOutput: tt.envOut,
				EnvFormat: tt.format,
				Defaults:  map[string]string{"base_url": "http://localhost:8080"},
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantPath, result.EnvPath)
			_, err = os.Stat(tt.wantPath)
			assert.NoError(t, err)
		})
	}

	env, err := storage.LoadEnvironment(filepath.Join(dir, "env", "dev.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", env["base_url"])
	assert.Contains(t, env, "token")
	assert.Contains(t, env, "user_id")
}

func TestParseEnvFormat(t *testing.T) {
	for in, want := range map[string]EnvFormat{"": EnvFormatYAML, "yaml": EnvFormatYAML, "yml": EnvFormatYAML, "postman": EnvFormatPostman, "json": EnvFormatPostman} {
		got, err := ParseEnvFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseEnvFormat("toml")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "unknown environment format"))
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EnvOutput = "env/dev"

	opts := OptionsFromConfig(cfg)
	assert.Equal(t, athletica.DefaultOutput, opts.Output)
	assert.Equal(t, athletica.DefaultName, opts.Name)
	assert.Equal(t, "env/dev", opts.EnvOutput)
	assert.Equal(t, EnvFormatYAML, opts.EnvFormat)
	assert.Equal(t, "http://localhost:8080", opts.Defaults["base_url"])
	assert.False(t, opts.KeepID)
}
