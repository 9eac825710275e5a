package core

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck_UpToDate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "collection.json")
	_, err := Generate(GenerateOptions{Output: path})
	require.NoError(t, err)

	result, err := Check(path, "")
	require.NoError(t, err)
	assert.Empty(t, result.Diff)
}

func TestCheck_Drift(t *testing.T) {
	path := filepath.Join(t.TempDir(), "collection.json")
	_, err := Generate(GenerateOptions{Output: path})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	edited := strings.Replace(string(data), "Great run", "Lucky bounce", 1)
	require.NoError(t, os.WriteFile(path, []byte(edited), 0644))

	result, err := Check(path, "")
	require.ErrorIs(t, err, ErrDrift)
	require.NotNil(t, result)
	assert.Contains(t, result.Diff, "--- a/"+path)
	assert.Contains(t, result.Diff, "+++ b/"+path)
	assert.Contains(t, result.Diff, "Lucky bounce")
	assert.Contains(t, result.Diff, "Great run")
}

func TestCheck_NameMismatchIsDrift(t *testing.T) {
	path := filepath.Join(t.TempDir(), "collection.json")
	_, err := Generate(GenerateOptions{Output: path, Name: "Other"})
	require.NoError(t, err)

	_, err = Check(path, "")
	assert.ErrorIs(t, err, ErrDrift)

	_, err = Check(path, "Other")
	assert.NoError(t, err)
}

func TestCheck_MissingFile(t *testing.T) {
	_, err := Check(filepath.Join(t.TempDir(), "missing.json"), "")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrDrift)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
