package postman

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleBody struct {
	Name     string   `json:"name"`
	Roles    []string `json:"roles"`
	ParentID *string  `json:"parentId"`
	Height   int      `json:"height"`
	Active   bool     `json:"active"`
}

func TestSplitPath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want []string
	}{
		{
			name: "placeholder segment",
			path: "/api/v1/users/{{user_id}}",
			want: []string{"api", "v1", "users", "{{user_id}}"},
		},
		{
			name: "single segment",
			path: "/api",
			want: []string{"api"},
		},
		{
			name: "trailing slash",
			path: "/actuator/health/",
			want: []string{"actuator", "health"},
		},
		{
			name: "repeated outer slashes",
			path: "//api/v1//",
			want: []string{"api", "v1"},
		},
		{
			name: "interior empty segment passes through",
			path: "/api//v1",
			want: []string{"api", "", "v1"},
		},
		{
			name: "empty path",
			path: "",
			want: []string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitPath(tt.path))
		})
	}
}

func TestNewRequest_Defaults(t *testing.T) {
	req := NewRequest("GET", "/api/v1/teams/{{team_id}}", nil, "")

	assert.Equal(t, "GET", req.Method)
	assert.Equal(t, "{{base_url}}/api/v1/teams/{{team_id}}", req.URL.Raw)
	assert.Equal(t, []string{"{{base_url}}"}, req.URL.Host)
	assert.Equal(t, []string{"api", "v1", "teams", "{{team_id}}"}, req.URL.Path)
	assert.Nil(t, req.Body)
	assert.Equal(t, "", req.Description)

	require.Len(t, req.Header, 2)
	assert.Equal(t, Header{Key: "Authorization", Value: "Bearer {{token}}", Type: "text"}, req.Header[0])
	assert.Equal(t, Header{Key: "Content-Type", Value: "application/json", Type: "text"}, req.Header[1])
}

func TestNewRequest_PassesMalformedInputThrough(t *testing.T) {
	req := NewRequest("fetch", "no-leading-slash", nil, "desc")

	assert.Equal(t, "fetch", req.Method)
	assert.Equal(t, "{{base_url}}no-leading-slash", req.URL.Raw)
	assert.Equal(t, []string{"no-leading-slash"}, req.URL.Path)
	assert.Equal(t, "desc", req.Description)
}

func TestNewRequest_BodyRoundTrip(t *testing.T) {
	parent := "{{union_id}}"
	tests := []struct {
		name string
		body sampleBody
	}{
		{
			name: "all fields set",
			body: sampleBody{Name: "Club", Roles: []string{"ROLE_USER"}, ParentID: &parent, Height: 180, Active: true},
		},
		{
			name: "null pointer and zero values",
			body: sampleBody{Name: "", Roles: []string{}},
		},
		{
			name: "html-looking characters",
			body: sampleBody{Name: "<Tom & Jerry>", Roles: []string{"a>b"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := NewRequest("POST", "/api/v1/things", tt.body, "")
			require.NotNil(t, req.Body)
			assert.Equal(t, "raw", req.Body.Mode)

			var got sampleBody
			require.NoError(t, json.Unmarshal([]byte(req.Body.Raw), &got))
			assert.Equal(t, tt.body, got)
		})
	}
}

func TestNewRequest_BodyFormatting(t *testing.T) {
	body := struct {
		Email    string   `json:"email"`
		Password string   `json:"password"`
		Roles    []string `json:"roles"`
		Org      *string  `json:"org"`
	}{
		Email:    "a&b@example.com",
		Password: "pw",
		Roles:    []string{"ROLE_USER"},
	}

	req := NewRequest("POST", "/login", body, "")

	want := "{\n" +
		"    \"email\": \"a&b@example.com\",\n" +
		"    \"password\": \"pw\",\n" +
		"    \"roles\": [\n" +
		"        \"ROLE_USER\"\n" +
		"    ],\n" +
		"    \"org\": null\n" +
		"}"
	assert.Equal(t, want, req.Body.Raw)
}

func TestNewRequest_UnencodableBodyPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewRequest("POST", "/x", map[string]any{"ch": make(chan int)}, "")
	})
}

func TestWithoutHeader(t *testing.T) {
	req := NewRequest("POST", "/api/v1/auth/login", nil, "")
	stripped := req.WithoutHeader("Authorization")

	assert.False(t, stripped.HasHeader("Authorization"))
	assert.Equal(t, 1, stripped.CountHeader("Content-Type"))

	// The original request keeps its headers.
	assert.Equal(t, 1, req.CountHeader("Authorization"))
	require.Len(t, req.Header, 2)

	unchanged := req.WithoutHeader("X-Missing")
	assert.Equal(t, req.Header, unchanged.Header)
}

func TestNewItem_FreshResponsePerCall(t *testing.T) {
	req := NewRequest("GET", "/a", nil, "")
	a := NewItem("A", req)
	b := NewItem("B", req)

	require.NotNil(t, a.Response)
	assert.Empty(t, a.Response)
	assert.Nil(t, a.Event)

	a.Response = append(a.Response, Response{})
	assert.Empty(t, b.Response)
}

func TestNewItem_WithEvents(t *testing.T) {
	script := NewTestScript("pm.test('ok');")
	item := NewItem("Login", NewRequest("POST", "/login", nil, ""), script)

	require.Len(t, item.Event, 1)
	assert.Equal(t, "test", item.Event[0].Listen)
	assert.Equal(t, "text/javascript", item.Event[0].Script.Type)
	assert.Equal(t, []string{"pm.test('ok');"}, item.Event[0].Script.Exec)
}

func TestNewTestScript_CopiesLines(t *testing.T) {
	lines := []string{"var a = 1;", "var b = 2;"}
	ev := NewTestScript(lines...)
	lines[0] = "mutated"

	assert.Equal(t, "var a = 1;", ev.Script.Exec[0])
}

func TestNewFolder_Empty(t *testing.T) {
	f := NewFolder("Calendar")

	require.NotNil(t, f.Item)
	data, err := json.Marshal(f)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Calendar","item":[]}`, string(data))
}

func TestBuilder_BuildOwnsFolders(t *testing.T) {
	b := NewBuilder("id-1", "Test").Add(NewFolder("One"))
	first := b.Build()

	b.Add(NewFolder("Two"))
	second := b.Build()

	require.Len(t, first.Item, 1)
	require.Len(t, second.Item, 2)
	assert.Equal(t, "One", second.Item[0].Name)
	assert.Equal(t, "Two", second.Item[1].Name)
	assert.Equal(t, Info{PostmanID: "id-1", Name: "Test", Schema: SchemaV21}, first.Info)
}

func TestNewID(t *testing.T) {
	a := NewID()
	b := NewID()

	parsed, err := uuid.Parse(a)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
	assert.NotEqual(t, a, b)
}

func TestCollection_FindItem(t *testing.T) {
	c := NewBuilder("id", "n").Add(
		NewFolder("Teams", NewItem("Get All Teams", NewRequest("GET", "/api/v1/teams", nil, ""))),
	).Build()

	item, ok := c.FindItem("Get All Teams")
	require.True(t, ok)
	assert.Equal(t, "GET", item.Request.Method)

	_, ok = c.FindItem("Nope")
	assert.False(t, ok)
}
