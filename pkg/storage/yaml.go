package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/athleticaos/pmgen/pkg/postman"
	"gopkg.in/yaml.v3"
)

// RequestFromItem flattens a collection item. A body that is not valid JSON is kept as a string.
func RequestFromItem(folder string, item postman.Item) Request {
	req := Request{
		Name:   item.Name,
		Folder: folder,
		Method: item.Request.Method,
		URL:    item.Request.URL.Raw,
	}

	if len(item.Request.Header) > 0 {
		req.Headers = make(map[string]string, len(item.Request.Header))
		for _, h := range item.Request.Header {
			req.Headers[h.Key] = h.Value
		}
	}

	if item.Request.Body != nil {
		var body interface{}
		if err := json.Unmarshal([]byte(item.Request.Body.Raw), &body); err == nil {
			req.Body = body
		} else {
			req.Body = item.Request.Body.Raw
		}
	}

	return req
}

// SaveRequest saves a request to a YAML file
func SaveRequest(req Request, filePath string) error {
	// Ensure directory exists
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	// Ensure .yaml extension
	if !strings.HasSuffix(filePath, ".yaml") && !strings.HasSuffix(filePath, ".yml") {
		filePath = filePath + ".yaml"
	}

	data, err := yaml.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// LoadRequest loads a request from a YAML file
func LoadRequest(filePath string) (*Request, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var req Request
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return &req, nil
}

// ExportRequests writes every item of the collection to baseDir/<folder>/<item>.yaml
// and returns the written paths in collection order.
func ExportRequests(c postman.Collection, baseDir string) ([]string, error) {
	var written []string
	for _, fi := range c.Requests() {
		path := filepath.Join(baseDir, Slug(fi.Folder), Slug(fi.Item.Name)+".yaml")
		if err := SaveRequest(RequestFromItem(fi.Folder, fi.Item), path); err != nil {
			return written, fmt.Errorf("failed to export %q: %w", fi.Item.Name, err)
		}
		written = append(written, path)
	}
	return written, nil
}

// Slug turns a display name into a file name: "Get User By ID" -> "get-user-by-id".
func Slug(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "-"))
}
