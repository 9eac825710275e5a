package postman

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed collection.schema.json
var collectionSchemaJSON []byte

var (
	schemaOnce sync.Once
	schema     *gojsonschema.Schema
	schemaErr  error
)

// ValidationError lists every schema violation found in a document.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("collection does not match schema (%d problems):\n  - %s",
		len(e.Problems), strings.Join(e.Problems, "\n  - "))
}

func loadSchema() (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(collectionSchemaJSON))
	})
	return schema, schemaErr
}

// Validate checks a JSON document against the embedded collection schema.
// It returns a *ValidationError when the document parses but does not conform.
func Validate(data []byte) error {
	s, err := loadSchema()
	if err != nil {
		return fmt.Errorf("failed to load collection schema: %w", err)
	}

	result, err := s.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("failed to validate collection: %w", err)
	}

	if result.Valid() {
		return nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, re := range result.Errors() {
		problems = append(problems, re.String())
	}
	return &ValidationError{Problems: problems}
}

// ValidateCollection marshals c and validates the result.
func ValidateCollection(c Collection) error {
	data, err := Marshal(c)
	if err != nil {
		return err
	}
	return Validate(data)
}
