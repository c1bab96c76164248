package types

import (
	"errors"
	"fmt"
)

var (
	// Configuration errors
	ErrInvalidBaseURL    = errors.New("invalid base URL")
	ErrInvalidModel      = errors.New("invalid model")
	ErrCredentialMissing = errors.New("missing API credential")

	// Request errors
	ErrEmptyQuery = errors.New("empty search query")

	// Remote errors
	ErrUnauthorized    = errors.New("search service rejected the credential")
	ErrRateLimited     = errors.New("search service rate limited the request")
	ErrEmptyResponse   = errors.New("no response from the search service")
	ErrInvalidResponse = errors.New("invalid response from the search service")
)

// RemoteError wraps a non-success reply from the search service
type RemoteError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *RemoteError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("search service returned HTTP %d: %s (%v)", e.StatusCode, e.Body, e.Err)
	}
	return fmt.Sprintf("search service returned HTTP %d: %s", e.StatusCode, e.Body)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}
