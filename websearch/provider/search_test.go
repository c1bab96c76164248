package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lk2023060901/websearch-tool/websearch/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const successReply = `{
	"choices": [{"message": {"role": "assistant", "content": "Go 1.24 was released in February 2025."}}],
	"citations": ["https://go.dev/blog/go1.24", "https://go.dev/doc/go1.24"],
	"usage": {"num_sources_used": 3}
}`

func newServerClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	client, err := NewClient(&types.ClientConfig{BaseURL: ts.URL, Model: "grok-3-latest"}, nil)
	require.NoError(t, err)
	return client
}

func TestClient_Search_Success(t *testing.T) {
	var gotAuth, gotPath string
	var gotBody chatRequest

	client := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(successReply))
	})

	req := &types.SearchRequest{Query: "latest Go release"}
	req.ApplyDefaults()

	data, err := client.Search(context.Background(), req, "test-key")
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "/chat/completions", gotPath)
	require.Len(t, gotBody.Messages, 2)
	assert.Equal(t, "latest Go release", gotBody.Messages[1].Content)

	assert.Equal(t, "latest Go release", data.Query)
	assert.Equal(t, "Go 1.24 was released in February 2025.", data.Content)
	assert.Equal(t, []string{"https://go.dev/blog/go1.24", "https://go.dev/doc/go1.24"}, data.Citations)
	assert.Equal(t, 3, data.SourcesUsed)
	assert.GreaterOrEqual(t, data.Took, int64(0))
	assert.Equal(t, types.SearchTypeWeb, data.Params.SearchType)
}

func TestClient_Search_Unauthorized(t *testing.T) {
	client := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": "invalid api key"}`))
	})

	req := &types.SearchRequest{Query: "golang"}
	req.ApplyDefaults()

	_, err := client.Search(context.Background(), req, "bad-key")
	assert.ErrorIs(t, err, types.ErrUnauthorized)
	assert.NotContains(t, err.Error(), "bad-key")
}

func TestClient_Search_RateLimited(t *testing.T) {
	client := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	req := &types.SearchRequest{Query: "golang"}
	req.ApplyDefaults()

	_, err := client.Search(context.Background(), req, "test-key")
	assert.ErrorIs(t, err, types.ErrRateLimited)
}

func TestClient_Search_RemoteError(t *testing.T) {
	client := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("upstream exploded"))
	})

	req := &types.SearchRequest{Query: "golang"}
	req.ApplyDefaults()

	_, err := client.Search(context.Background(), req, "test-key")
	var remoteErr *types.RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusInternalServerError, remoteErr.StatusCode)
	assert.Equal(t, "upstream exploded", remoteErr.Body)
}

func TestClient_Search_EmptyChoices(t *testing.T) {
	tests := []struct {
		name  string
		reply string
	}{
		{"empty array", `{"choices": []}`},
		{"missing field", `{"usage": {"num_sources_used": 0}}`},
		{"null", `{"choices": null}`},
		{"string instead of array", `{"choices": "oops"}`},
		{"object instead of array", `{"choices": {"message": {"content": "hi"}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(tt.reply))
			})

			req := &types.SearchRequest{Query: "golang"}
			req.ApplyDefaults()

			_, err := client.Search(context.Background(), req, "test-key")
			assert.ErrorIs(t, err, types.ErrEmptyResponse)
		})
	}
}

func TestClient_Search_InvalidJSON(t *testing.T) {
	client := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json {{"))
	})

	req := &types.SearchRequest{Query: "golang"}
	req.ApplyDefaults()

	_, err := client.Search(context.Background(), req, "test-key")
	assert.ErrorIs(t, err, types.ErrInvalidResponse)
}

func TestClient_Search_ConnectionFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := ts.URL
	ts.Close()

	client, err := NewClient(&types.ClientConfig{BaseURL: baseURL, Model: "grok-3-latest"}, nil)
	require.NoError(t, err)

	req := &types.SearchRequest{Query: "golang"}
	req.ApplyDefaults()

	_, err = client.Search(context.Background(), req, "test-key")
	assert.Error(t, err)
}

func TestTranslate_Defaults(t *testing.T) {
	req := &types.SearchRequest{Query: "golang"}

	data, err := translate(req, []byte(`{"choices": [{"message": {"content": "answer"}}]}`), types.EffectiveParams{})
	require.NoError(t, err)

	assert.Equal(t, "answer", data.Content)
	assert.NotNil(t, data.Citations)
	assert.Empty(t, data.Citations)
	assert.Nil(t, data.Images)
	assert.Equal(t, 0, data.SourcesUsed)
}

func TestTranslate_ImagesOnlyWhenRequested(t *testing.T) {
	reply := []byte(`{
		"choices": [{"message": {"content": "answer"}}],
		"images": ["https://example.com/a.png", "https://example.com/b.png"]
	}`)

	req := &types.SearchRequest{Query: "golang"}
	data, err := translate(req, reply, types.EffectiveParams{})
	require.NoError(t, err)
	assert.Nil(t, data.Images, "unsolicited images must not reach the payload")

	wantImages := true
	req.ReturnImages = &wantImages
	data, err = translate(req, reply, types.EffectiveParams{})
	require.NoError(t, err)
	assert.Equal(t, []string{"https://example.com/a.png", "https://example.com/b.png"}, data.Images)
}

func TestNewClient_Validation(t *testing.T) {
	_, err := NewClient(&types.ClientConfig{Model: "grok-3-latest"}, nil)
	assert.ErrorIs(t, err, types.ErrInvalidBaseURL)

	client, err := NewClient(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, types.DefaultBaseURL, client.GetConfig().BaseURL)
}
