// Package credential resolves the API secret authorizing outbound search
// calls. Sources are consulted in a fixed order: the host's shared
// cross-tool store (a direct slot, then a provider-scoped slot named by the
// store's current-provider marker), then process environment variables.
// Nothing is cached; the host may rotate or newly populate the store between
// invocations, so every call re-runs the chain.
package credential

import (
	"context"
	"os"
	"strings"

	"github.com/lk2023060901/websearch-tool/websearch/types"
)

// Store is the read-only view of the host's shared cross-tool state.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool)
}

// Shared-store keys consulted during resolution.
const (
	// KeyDirect is the well-known slot holding the API key itself.
	KeyDirect = "shared-provider-apikey"
	// KeyProviderMarker names the provider whose scoped slot should be
	// consulted when the direct slot is empty.
	KeyProviderMarker = "shared-provider"
)

// EnvVars is the environment fallback order: provider-specific key,
// alternate provider key, generic key.
var EnvVars = []string{"XAI_API_KEY", "GROK_API_KEY", "WEBSEARCH_API_KEY"}

// knownProviders are the provider names honored in the scoped slot.
var knownProviders = map[string]bool{
	"xai":        true,
	"grok":       true,
	"openrouter": true,
}

// Source identifies where a credential was found.
type Source string

const (
	SourceSharedDirect   Source = "shared_direct"
	SourceSharedProvider Source = "shared_provider"
	SourceEnv            Source = "env"
)

// Resolved is a credential plus its provenance. It exists for the duration
// of one invocation and must never be logged in full.
type Resolved struct {
	Value  string
	Source Source
	Detail string // store key or environment variable that produced the value
}

// Resolver runs the lookup chain. A nil store skips the shared-store tiers.
type Resolver struct {
	store  Store
	lookup func(string) (string, bool) // env access, swappable in tests
}

// NewResolver creates a resolver over the given shared store.
func NewResolver(store Store) *Resolver {
	return &Resolver{
		store:  store,
		lookup: os.LookupEnv,
	}
}

// source attempts to produce a credential, or declines.
type source func(ctx context.Context) (Resolved, bool)

// Resolve returns the first credential the chain produces. First hit wins;
// values are never merged. Returns types.ErrCredentialMissing when no
// source yields a non-empty value.
func (r *Resolver) Resolve(ctx context.Context) (Resolved, error) {
	sources := []source{
		r.fromSharedDirect,
		r.fromSharedProvider,
		r.fromEnv,
	}

	for _, src := range sources {
		if res, ok := src(ctx); ok {
			return res, nil
		}
	}
	return Resolved{}, types.ErrCredentialMissing
}

func (r *Resolver) fromSharedDirect(ctx context.Context) (Resolved, bool) {
	if r.store == nil {
		return Resolved{}, false
	}
	val, ok := r.store.Get(ctx, KeyDirect)
	if !ok || val == "" {
		return Resolved{}, false
	}
	return Resolved{Value: val, Source: SourceSharedDirect, Detail: KeyDirect}, true
}

func (r *Resolver) fromSharedProvider(ctx context.Context) (Resolved, bool) {
	if r.store == nil {
		return Resolved{}, false
	}
	name, ok := r.store.Get(ctx, KeyProviderMarker)
	if !ok {
		return Resolved{}, false
	}
	name = strings.ToLower(strings.TrimSpace(name))
	if !knownProviders[name] {
		return Resolved{}, false
	}

	key := KeyDirect + ":" + name
	val, ok := r.store.Get(ctx, key)
	if !ok || val == "" {
		return Resolved{}, false
	}
	return Resolved{Value: val, Source: SourceSharedProvider, Detail: key}, true
}

func (r *Resolver) fromEnv(_ context.Context) (Resolved, bool) {
	for _, name := range EnvVars {
		if val, ok := r.lookup(name); ok && val != "" {
			return Resolved{Value: val, Source: SourceEnv, Detail: name}, true
		}
	}
	return Resolved{}, false
}

// StaticStore is a map-backed Store for in-process hosts and tests.
type StaticStore map[string]string

// Get implements Store.
func (s StaticStore) Get(_ context.Context, key string) (string, bool) {
	val, ok := s[key]
	return val, ok
}
