// Package postman models the subset of the Postman Collection v2.1 format
// that pmgen emits, and provides the builders and writers used to assemble it.
package postman

// SchemaV21 is the schema URI embedded in every generated collection.
const SchemaV21 = "https://schema.getpostman.com/json/collection/v2.1.0/collection.json"

// BaseURLVar is the host placeholder every request URL starts with.
const BaseURLVar = "{{base_url}}"

const (
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
)

// Collection is the root document. Field order is the output key order.
type Collection struct {
	Info Info     `json:"info"` // Collection metadata
	Item []Folder `json:"item"` // Top-level folders
}

// Info holds the collection metadata block.
type Info struct {
	PostmanID string `json:"_postman_id"` // Random identifier, regenerated per run
	Name      string `json:"name"`
	Schema    string `json:"schema"`
}

// Folder groups request items under a display name.
type Folder struct {
	Name string `json:"name"`
	Item []Item `json:"item"`
}

// Item is a single named request plus optional test scripts.
type Item struct {
	Name     string     `json:"name"`
	Event    []Event    `json:"event,omitempty"`
	Request  Request    `json:"request"`
	Response []Response `json:"response"` // Always empty, never nil
}

// Request describes one HTTP call.
type Request struct {
	Method      string   `json:"method"`
	Header      []Header `json:"header"`
	URL         URL      `json:"url"`
	Description string   `json:"description"`
	Body        *Body    `json:"body,omitempty"`
}

// Header is a key/value/type triple.
type Header struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Type  string `json:"type"`
}

// URL keeps the raw template alongside its decomposed host and path.
type URL struct {
	Raw  string   `json:"raw"`
	Host []string `json:"host"`
	Path []string `json:"path"`
}

// Body is a raw JSON request body.
type Body struct {
	Mode string `json:"mode"` // Always "raw"
	Raw  string `json:"raw"`
}

// Event attaches a script to a trigger such as "test".
type Event struct {
	Listen string `json:"listen"`
	Script Script `json:"script"`
}

// Script holds opaque statements executed only by the consuming tool.
type Script struct {
	Exec []string `json:"exec"`
	Type string   `json:"type"`
}

// Response is a placeholder for canned example responses, which pmgen never populates.
type Response struct{}

// HasHeader reports whether the request carries at least one header with the given key.
func (r Request) HasHeader(key string) bool {
	return r.CountHeader(key) > 0
}

// CountHeader returns how many headers with the given key the request carries.
func (r Request) CountHeader(key string) int {
	n := 0
	for _, h := range r.Header {
		if h.Key == key {
			n++
		}
	}
	return n
}

// Requests walks every folder in order and returns its items with the folder name.
func (c Collection) Requests() []FolderItem {
	var out []FolderItem
	for _, f := range c.Item {
		for _, it := range f.Item {
			out = append(out, FolderItem{Folder: f.Name, Item: it})
		}
	}
	return out
}

// FolderItem pairs an item with the name of the folder that contains it.
type FolderItem struct {
	Folder string
	Item   Item
}

// FindItem returns the first item with the given name.
func (c Collection) FindItem(name string) (Item, bool) {
	for _, fi := range c.Requests() {
		if fi.Item.Name == name {
			return fi.Item, true
		}
	}
	return Item{}, false
}
