package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/athleticaos/pmgen/pkg/core"
	"github.com/athleticaos/pmgen/pkg/postman"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func execute(t *testing.T, args ...string) error {
	t.Helper()
	t.Cleanup(func() {
		outputPath, collName, envOut, envFormat = "", "", "", "yaml"
		keepID = false
		envCmdOut, envCmdFormat = "", "yaml"
	})
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestGenerateThenCheckAndValidate(t *testing.T) {
	chdir(t, t.TempDir())
	path := filepath.Join("out", "collection.json")
	require.NoError(t, os.Mkdir("out", 0755))

	require.NoError(t, execute(t, "generate", "-o", path, "--keep-id"))

	c, err := postman.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, c.Item, 14)

	assert.NoError(t, execute(t, "check", path))
	assert.NoError(t, execute(t, "validate", path))
}

func TestGenerate_MissingDirectory(t *testing.T) {
	chdir(t, t.TempDir())

	err := execute(t, "-o", filepath.Join("missing", "collection.json"))
	require.Error(t, err)

	_, statErr := os.Stat("missing")
	assert.True(t, os.IsNotExist(statErr))
}

func TestGenerate_BadEnvFormat(t *testing.T) {
	chdir(t, t.TempDir())

	err := execute(t, "generate", "-o", "c.json", "--env-format", "toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown environment format")
}

func TestCheck_Drift(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, execute(t, "generate", "-o", "c.json"))
	require.NoError(t, execute(t, "generate", "-o", "c.json", "--name", "Renamed"))

	err := execute(t, "check", "c.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of date")
}

func TestValidate_InvalidFile(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile("bad.json", []byte(`{"info": {}}`), 0644))

	err := execute(t, "validate", "bad.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a valid collection")
}

func TestEnvCommand(t *testing.T) {
	chdir(t, t.TempDir())

	require.NoError(t, execute(t, "env"))
	_, err := os.Stat(filepath.Join(core.ConfigFolderName, "env", "dev.yaml"))
	assert.NoError(t, err)

	require.NoError(t, execute(t, "env", "--format", "postman", "--out", "local.json"))
	_, err = os.Stat("local.json")
	assert.NoError(t, err)
}

func TestExportCommand(t *testing.T) {
	chdir(t, t.TempDir())

	require.NoError(t, execute(t, "export", "requests"))
	_, err := os.Stat(filepath.Join("requests", "auth", "login.yaml"))
	assert.NoError(t, err)
}

func TestInitCommand_Yes(t *testing.T) {
	chdir(t, t.TempDir())
	t.Cleanup(func() { initYes, initForce = false, false })

	require.NoError(t, execute(t, "init", "--yes"))
	_, err := os.Stat(core.ConfigPath(core.ConfigFolderName))
	assert.NoError(t, err)
}

func TestValidURL(t *testing.T) {
	assert.NoError(t, validURL("http://localhost:8080"))
	assert.NoError(t, validURL("https://api.athleticaos.com"))
	assert.Error(t, validURL("localhost:8080/api"))
	assert.Error(t, validURL(""))
}

func TestNotEmpty(t *testing.T) {
	check := notEmpty("output file")
	assert.NoError(t, check("a.json"))
	assert.EqualError(t, check(""), "output file is required")
}

func TestDefaultEnvPath(t *testing.T) {
	assert.Equal(t, ".pmgen/env/dev", defaultEnvPath(core.EnvFormatYAML))
	assert.Equal(t, ".pmgen/env/dev.postman_environment.json", defaultEnvPath(core.EnvFormatPostman))
}
