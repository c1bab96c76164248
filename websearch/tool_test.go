package websearch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lk2023060901/websearch-tool/websearch/credential"
	"github.com/lk2023060901/websearch-tool/websearch/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTool(t *testing.T, handler http.HandlerFunc) *Tool {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	tool, err := New(WithConfig(&types.ClientConfig{BaseURL: ts.URL, Model: "grok-3-latest"}))
	require.NoError(t, err)
	return tool
}

func TestTool_Metadata(t *testing.T) {
	tool, err := New()
	require.NoError(t, err)

	assert.Equal(t, "web_search", tool.Name())
	assert.NotEmpty(t, tool.Description())

	var schema map[string]any
	require.NoError(t, json.Unmarshal(tool.InputSchema(), &schema))
	assert.Equal(t, "object", schema["type"])
	assert.Equal(t, []any{"query"}, schema["required"])

	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok)
	for _, field := range []string{
		"query", "search_type", "max_results", "time_range", "language",
		"return_citations", "return_images", "include_domains",
		"exclude_domains", "search_mode", "recency_weight",
		"custom_date_from", "custom_date_to",
	} {
		assert.Containsf(t, props, field, "schema should declare %q", field)
	}
}

func TestTool_Execute_Success(t *testing.T) {
	tool := newTestTool(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"choices": [{"message": {"content": "Go 1.24 is the latest stable release."}}],
			"citations": ["https://go.dev/blog/go1.24", "https://go.dev/doc/devel/release"],
			"usage": {"num_sources_used": 3}
		}`))
	})

	outcome := tool.Execute(context.Background(), Invocation{
		Args:  map[string]any{"query": "latest Go release"},
		State: credential.StaticStore{credential.KeyDirect: "store-key"},
	})

	require.True(t, outcome.Success)
	assert.Empty(t, outcome.Error)

	assert.Contains(t, outcome.Text, "latest Go release")
	assert.Contains(t, outcome.Text, "Go 1.24 is the latest stable release.")
	assert.Contains(t, outcome.Text, "1. https://go.dev/blog/go1.24")
	assert.Contains(t, outcome.Text, "2. https://go.dev/doc/devel/release")
	assert.Contains(t, outcome.Text, "3 sources used")

	require.NotNil(t, outcome.Data)
	assert.Equal(t, "latest Go release", outcome.Data.Query)
	assert.Equal(t, 3, outcome.Data.SourcesUsed)
	assert.Equal(t, types.SearchTypeWeb, outcome.Data.Params.SearchType)
	assert.Equal(t, 10, outcome.Data.Params.MaxResults)
}

func TestTool_Execute_UsesSharedStoreCredential(t *testing.T) {
	var gotAuth string
	tool := newTestTool(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"choices": [{"message": {"content": "ok"}}]}`))
	})

	outcome := tool.Execute(context.Background(), Invocation{
		Args: map[string]any{"query": "golang"},
		State: credential.StaticStore{
			credential.KeyProviderMarker:   "grok",
			credential.KeyDirect + ":grok": "scoped-key",
		},
	})

	require.True(t, outcome.Success)
	assert.Equal(t, "Bearer scoped-key", gotAuth)
}

func TestTool_Execute_UnauthorizedNeverEchoesCredential(t *testing.T) {
	tool := newTestTool(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	secret := "super-secret-key-123"
	outcome := tool.Execute(context.Background(), Invocation{
		Args:  map[string]any{"query": "golang"},
		State: credential.StaticStore{credential.KeyDirect: secret},
	})

	require.False(t, outcome.Success)
	assert.Contains(t, outcome.Error, "rejected the API credential")
	assert.NotContains(t, outcome.Error, secret)
	assert.Empty(t, outcome.Text)
	assert.Nil(t, outcome.Data)
}

func TestTool_Execute_RateLimited(t *testing.T) {
	tool := newTestTool(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	outcome := tool.Execute(context.Background(), Invocation{
		Args:  map[string]any{"query": "golang"},
		State: credential.StaticStore{credential.KeyDirect: "store-key"},
	})

	require.False(t, outcome.Success)
	assert.Contains(t, outcome.Error, "rate limiting")
	assert.Contains(t, outcome.Error, "Try again later")
}

func TestTool_Execute_RemoteErrorCarriesStatusAndBody(t *testing.T) {
	tool := newTestTool(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("service melting"))
	})

	outcome := tool.Execute(context.Background(), Invocation{
		Args:  map[string]any{"query": "golang"},
		State: credential.StaticStore{credential.KeyDirect: "store-key"},
	})

	require.False(t, outcome.Success)
	assert.Contains(t, outcome.Error, "503")
	assert.Contains(t, outcome.Error, "service melting")
}

func TestTool_Execute_NoChoices(t *testing.T) {
	tool := newTestTool(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices": []}`))
	})

	outcome := tool.Execute(context.Background(), Invocation{
		Args:  map[string]any{"query": "golang"},
		State: credential.StaticStore{credential.KeyDirect: "store-key"},
	})

	require.False(t, outcome.Success)
	assert.Equal(t, "Search failed: no response from the search service.", outcome.Error)
}

func TestTool_Execute_MissingCredential(t *testing.T) {
	for _, name := range credential.EnvVars {
		t.Setenv(name, "")
	}

	var called bool
	tool := newTestTool(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	outcome := tool.Execute(context.Background(), Invocation{
		Args: map[string]any{"query": "golang"},
	})

	require.False(t, outcome.Success)
	assert.Contains(t, outcome.Error, "no API credential configured")
	assert.Contains(t, outcome.Error, credential.KeyDirect)
	assert.Contains(t, outcome.Error, "XAI_API_KEY")
	assert.False(t, called, "no request should be sent without a credential")
}

func TestTool_Execute_MissingQuery(t *testing.T) {
	tool := newTestTool(t, func(w http.ResponseWriter, r *http.Request) {})

	outcome := tool.Execute(context.Background(), Invocation{
		Args:  map[string]any{"query": "  "},
		State: credential.StaticStore{credential.KeyDirect: "store-key"},
	})

	require.False(t, outcome.Success)
	assert.Contains(t, outcome.Error, "'query' argument is required")
}

func TestTool_Execute_ImagesInReportWhenRequested(t *testing.T) {
	reply := `{
		"choices": [{"message": {"content": "answer"}}],
		"citations": ["https://example.com/a"],
		"images": ["https://example.com/img.png"],
		"usage": {"num_sources_used": 1}
	}`

	tool := newTestTool(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(reply))
	})
	state := credential.StaticStore{credential.KeyDirect: "store-key"}

	outcome := tool.Execute(context.Background(), Invocation{
		Args:  map[string]any{"query": "golang", "return_images": true},
		State: state,
	})
	require.True(t, outcome.Success)
	assert.Contains(t, outcome.Text, "**Related Images:**")
	assert.Contains(t, outcome.Text, "1. https://example.com/img.png")
	assert.Equal(t, []string{"https://example.com/img.png"}, outcome.Data.Images)

	outcome = tool.Execute(context.Background(), Invocation{
		Args:  map[string]any{"query": "golang"},
		State: state,
	})
	require.True(t, outcome.Success)
	assert.NotContains(t, outcome.Text, "Related Images")
	assert.Nil(t, outcome.Data.Images)
}
