// Package websearch implements a web search tool for agent host runtimes.
// The host registers the tool by name and schema, then drives it one
// Execute call at a time; the tool resolves its API credential per call,
// performs one search against the remote service and reports the result in
// a uniform outcome shape. It keeps no per-call state and issues no retries.
package websearch

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/lk2023060901/websearch-tool/websearch/credential"
	"github.com/lk2023060901/websearch-tool/websearch/provider"
	"github.com/lk2023060901/websearch-tool/websearch/types"
	"go.uber.org/zap"
)

// Tool is the web search plugin. Hosts construct one Tool and reuse it
// across invocations; concurrent invocations are independent.
type Tool struct {
	config *types.ClientConfig
	client *provider.Client
	logger *zap.Logger
}

// Option configures the tool.
type Option func(*options)

type options struct {
	config     *types.ClientConfig
	logger     *zap.Logger
	httpClient *http.Client
}

// WithConfig overrides the default client configuration.
func WithConfig(cfg *types.ClientConfig) Option {
	return func(o *options) {
		o.config = cfg
	}
}

// WithLogger sets the logger used when an invocation carries none.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		o.logger = log
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) {
		o.httpClient = hc
	}
}

// New creates the tool.
func New(opts ...Option) (*Tool, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if o.config == nil {
		o.config = types.DefaultClientConfig()
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	client, err := provider.NewClient(o.config, o.logger.Named("client"))
	if err != nil {
		return nil, err
	}
	if o.httpClient != nil {
		client.SetHTTPClient(o.httpClient)
	}

	return &Tool{
		config: o.config,
		client: client,
		logger: o.logger,
	}, nil
}

// Name returns the registration name.
func (t *Tool) Name() string {
	return ToolName
}

// Description returns the summary shown to the agent.
func (t *Tool) Description() string {
	return ToolDescription
}

// Invocation carries one call's inputs from the host runtime.
type Invocation struct {
	// Args holds the schema-validated tool arguments.
	Args map[string]any
	// State is the host's shared cross-tool store; may be nil.
	State credential.Store
	// Logger overrides the tool's logger for this call; may be nil.
	Logger *zap.Logger
}

// Execute runs one search: resolve a credential, build and send the
// request, translate the reply. Every failure is reported in the returned
// Outcome; Execute never raises past the tool boundary.
func (t *Tool) Execute(ctx context.Context, inv Invocation) *types.Outcome {
	log := t.logger
	if inv.Logger != nil {
		log = inv.Logger
	}
	log = log.With(
		zap.String("tool", ToolName),
		zap.String("invocation_id", uuid.NewString()),
	)

	req, err := parseArgs(inv.Args)
	if err != nil {
		log.Error("argument parsing failed", zap.Error(err))
		return failure(err)
	}

	// Re-resolved on every call: the host may rotate the shared store
	// between invocations.
	cred, err := credential.NewResolver(inv.State).Resolve(ctx)
	if err != nil {
		log.Error("credential resolution failed", zap.Error(err))
		return failure(err)
	}
	log.Debug("credential resolved",
		zap.String("source", string(cred.Source)),
		zap.String("detail", cred.Detail),
		zap.Int("key_len", len(cred.Value)),
	)

	data, err := t.client.Search(ctx, req, cred.Value)
	if err != nil {
		log.Error("search failed",
			zap.String("query", req.Query),
			zap.Error(err),
		)
		return failure(err)
	}

	log.Info("search completed",
		zap.String("query", req.Query),
		zap.Int("citations", len(data.Citations)),
		zap.Int("sources_used", data.SourcesUsed),
		zap.Int64("took_ms", data.Took),
	)

	return &types.Outcome{
		Success: true,
		Text:    formatReport(data, req.WantsImages()),
		Data:    data,
	}
}

// failure converts an internal error into the uniform outcome shape.
func failure(err error) *types.Outcome {
	return &types.Outcome{
		Success: false,
		Error:   userMessage(err),
	}
}

// userMessage maps errors to the user-facing failure messages. Credential
// values never appear in any branch.
func userMessage(err error) string {
	var remoteErr *types.RemoteError
	switch {
	case errors.Is(err, types.ErrEmptyQuery):
		return "Search failed: the 'query' argument is required."
	case errors.Is(err, types.ErrCredentialMissing):
		return fmt.Sprintf("Search failed: no API credential configured. Set %q in the shared tool state, or export one of %s.",
			credential.KeyDirect, strings.Join(credential.EnvVars, ", "))
	case errors.Is(err, types.ErrUnauthorized):
		return "Search failed: the search service rejected the API credential. Verify the configured key."
	case errors.Is(err, types.ErrRateLimited):
		return "Search failed: the search service is rate limiting requests. Try again later."
	case errors.Is(err, types.ErrEmptyResponse):
		return "Search failed: no response from the search service."
	case errors.As(err, &remoteErr):
		return fmt.Sprintf("Search failed: the search service returned HTTP %d: %s", remoteErr.StatusCode, remoteErr.Body)
	default:
		return fmt.Sprintf("Search failed: %v", err)
	}
}
