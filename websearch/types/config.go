package types

import "time"

// Defaults for the live-search chat endpoint.
const (
	DefaultBaseURL   = "https://api.x.ai/v1"
	DefaultModel     = "grok-3-latest"
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "websearch-tool/1.0"
)

// ClientConfig represents the search client configuration
type ClientConfig struct {
	BaseURL string `json:"base_url" yaml:"base_url"`
	Model   string `json:"model" yaml:"model"`

	// Optional settings
	Timeout   time.Duration `json:"timeout,omitempty" yaml:"timeout,omitempty"`
	UserAgent string        `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`
}

// DefaultClientConfig returns the configuration for the default endpoint
func DefaultClientConfig() *ClientConfig {
	return &ClientConfig{
		BaseURL:   DefaultBaseURL,
		Model:     DefaultModel,
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// Validate validates the client configuration
func (c *ClientConfig) Validate() error {
	if c.BaseURL == "" {
		return ErrInvalidBaseURL
	}
	if c.Model == "" {
		return ErrInvalidModel
	}
	return nil
}
