package core

import (
	"errors"
	"fmt"
	"os"

	"github.com/athleticaos/pmgen/pkg/athletica"
	"github.com/athleticaos/pmgen/pkg/postman"
	"github.com/aymanbagabas/go-udiff"
)

// ErrDrift is returned by Check when the file on disk differs from a fresh build.
var ErrDrift = errors.New("collection is out of date")

// CheckResult carries the unified diff between the file on disk and a fresh build.
type CheckResult struct {
	Path string
	Diff string
}

// Check rebuilds the collection with the _postman_id of the file at path and
// compares the bytes. Only the identifier may differ between two runs, so any
// remaining difference means the file is stale.
func Check(path, name string) (*CheckResult, error) {
	if name == "" {
		name = athletica.DefaultName
	}

	current, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read collection: %w", err)
	}

	existing, err := postman.ReadFile(path)
	if err != nil {
		return nil, err
	}

	fresh, err := postman.Marshal(athletica.BuildNamed(existing.Info.PostmanID, name))
	if err != nil {
		return nil, err
	}

	result := &CheckResult{Path: path}
	if string(current) == string(fresh) {
		return result, nil
	}

	result.Diff = generateDiff(path, string(current), string(fresh))
	return result, ErrDrift
}

// generateDiff creates a unified diff between original and new content.
func generateDiff(filename, original, modified string) string {
	edits := udiff.Strings(original, modified)
	unified, err := udiff.ToUnified("a/"+filename, "b/"+filename, original, edits, 3)
	if err != nil {
		return fmt.Sprintf("--- a/%s\n+++ b/%s\n(diff generation failed)\n", filename, filename)
	}
	return unified
}
