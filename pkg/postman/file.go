package postman

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

const fileIndent = "    "

// Marshal encodes the collection as 4-space indented JSON without HTML escaping.
func Marshal(c Collection) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", fileIndent)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("failed to marshal collection: %w", err)
	}
	// Encoder always appends a newline; the document ends at the closing brace.
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// WriteFile writes the collection to path. The parent directory must already
// exist; it is never created here.
func WriteFile(path string, c Collection) error {
	data, err := Marshal(c)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write collection: %w", err)
	}

	return nil
}

// ReadFile loads a previously written collection.
func ReadFile(path string) (Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Collection{}, fmt.Errorf("failed to read collection: %w", err)
	}

	var c Collection
	if err := json.Unmarshal(data, &c); err != nil {
		return Collection{}, fmt.Errorf("failed to parse collection: %w", err)
	}

	return c, nil
}
