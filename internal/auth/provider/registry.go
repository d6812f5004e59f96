package provider

import "fmt"

// Registry maps provider names to their configured OAuthProvider.
// The gateway resolves the URL's :provider segment through it; the
// registry itself makes no auth decisions.
type Registry struct {
	providers map[string]OAuthProvider
}

// NewRegistry indexes the given providers by their Name(). Names must
// be unique; a duplicate silently wins, so configure each provider once.
func NewRegistry(list ...OAuthProvider) *Registry {
	m := make(map[string]OAuthProvider, len(list))
	for _, p := range list {
		m[p.Name()] = p
	}
	return &Registry{providers: m}
}

// Get returns the provider registered under name.
func (r *Registry) Get(name string) (OAuthProvider, error) {
	p, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("unknown oauth provider: %s", name)
	}
	return p, nil
}
