package postman

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	bodyIndent      = "    "
	headerType      = "text"
	listenTest      = "test"
	scriptTypeJS    = "text/javascript"
	bodyModeRaw     = "raw"
	bearerTokenVar  = "Bearer {{token}}"
	contentTypeJSON = "application/json"
)

// NewID returns a random UUID v4 for the collection's _postman_id.
func NewID() string {
	return uuid.NewString()
}

// NewRequest builds a request with the default bearer and JSON content-type headers.
// A non-nil body is attached as indented raw JSON; its key order follows the
// body value's field order. Method and path are not validated.
func NewRequest(method, path string, body any, description string) Request {
	req := Request{
		Method: method,
		Header: defaultHeaders(),
		URL: URL{
			Raw:  BaseURLVar + path,
			Host: []string{BaseURLVar},
			Path: SplitPath(path),
		},
		Description: description,
	}

	if body != nil {
		raw, err := encodeBody(body)
		if err != nil {
			// Bodies are literals from this module; an unencodable one is a programming error.
			panic(fmt.Sprintf("postman: failed to encode body for %s %s: %v", method, path, err))
		}
		req.Body = &Body{Mode: bodyModeRaw, Raw: raw}
	}

	return req
}

// SplitPath strips leading and trailing slashes and splits on the rest.
func SplitPath(path string) []string {
	return strings.Split(strings.Trim(path, "/"), "/")
}

// WithoutHeader returns a copy of the request with every header named key removed.
func (r Request) WithoutHeader(key string) Request {
	headers := make([]Header, 0, len(r.Header))
	for _, h := range r.Header {
		if h.Key != key {
			headers = append(headers, h)
		}
	}
	r.Header = headers
	return r
}

// NewItem wraps a request under a display name. Each call gets its own empty response slice.
func NewItem(name string, req Request, events ...Event) Item {
	item := Item{
		Name:     name,
		Request:  req,
		Response: []Response{},
	}
	if len(events) > 0 {
		item.Event = append([]Event(nil), events...)
	}
	return item
}

// NewFolder wraps items under a display name.
func NewFolder(name string, items ...Item) Folder {
	return Folder{
		Name: name,
		Item: append([]Item{}, items...),
	}
}

// NewTestScript stores the given statements verbatim under the "test" trigger.
func NewTestScript(lines ...string) Event {
	return Event{
		Listen: listenTest,
		Script: Script{
			Exec: append([]string{}, lines...),
			Type: scriptTypeJS,
		},
	}
}

func defaultHeaders() []Header {
	return []Header{
		{Key: HeaderAuthorization, Value: bearerTokenVar, Type: headerType},
		{Key: HeaderContentType, Value: contentTypeJSON, Type: headerType},
	}
}

func encodeBody(body any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", bodyIndent)
	if err := enc.Encode(body); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// Builder accumulates folders and hands out a finished collection.
type Builder struct {
	info    Info
	folders []Folder
}

// NewBuilder starts a v2.1 collection with the given id and name.
func NewBuilder(id, name string) *Builder {
	return &Builder{
		info: Info{
			PostmanID: id,
			Name:      name,
			Schema:    SchemaV21,
		},
	}
}

// Add appends folders in order.
func (b *Builder) Add(folders ...Folder) *Builder {
	b.folders = append(b.folders, folders...)
	return b
}

// Build returns the collection. The result owns its folder slice, so later
// calls to Add do not affect it.
func (b *Builder) Build() Collection {
	return Collection{
		Info: b.info,
		Item: append([]Folder{}, b.folders...),
	}
}
