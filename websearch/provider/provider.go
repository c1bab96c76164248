// Package provider maps search requests onto the live-search chat endpoint
// and translates its replies. The client holds no credential; the caller
// resolves one per invocation and passes it to Search.
package provider

import (
	"net/http"
	"time"

	"github.com/lk2023060901/websearch-tool/websearch/types"
	"go.uber.org/zap"
)

// Client talks to the search service.
type Client struct {
	config     *types.ClientConfig
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a search client from the given configuration.
func NewClient(config *types.ClientConfig, log *zap.Logger) (*Client, error) {
	if config == nil {
		config = types.DefaultClientConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}

	timeout := config.Timeout
	if timeout == 0 {
		timeout = types.DefaultTimeout
	}

	httpClient := &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	return &Client{
		config:     config,
		httpClient: httpClient,
		logger:     log,
	}, nil
}

// GetConfig returns the client configuration.
func (c *Client) GetConfig() *types.ClientConfig {
	return c.config
}

// SetHTTPClient replaces the underlying HTTP client. Hosts use this to
// inject instrumented or test transports.
func (c *Client) SetHTTPClient(hc *http.Client) {
	if hc != nil {
		c.httpClient = hc
	}
}

// buildDefaultHeaders builds the headers common to every request.
func (c *Client) buildDefaultHeaders() map[string]string {
	userAgent := c.config.UserAgent
	if userAgent == "" {
		userAgent = types.DefaultUserAgent
	}
	return map[string]string{
		"Content-Type": "application/json",
		"Accept":       "application/json",
		"User-Agent":   userAgent,
	}
}
