// Package storage exports collection data into the files other tools read:
// YAML environments, Postman environments and per-request YAML files.
package storage

// Request is a single collection item flattened into a standalone YAML file.
type Request struct {
	Name    string            `yaml:"name"`              // Item name
	Folder  string            `yaml:"folder"`            // Containing folder
	Method  string            `yaml:"method"`            // HTTP method (GET, POST, etc.)
	URL     string            `yaml:"url"`               // Raw URL with placeholders
	Headers map[string]string `yaml:"headers,omitempty"` // HTTP headers
	Body    interface{}       `yaml:"body,omitempty"`    // Parsed JSON body
}
