package provider

import (
	"context"
	"testing"

	"mernify-backend/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct{ name string }

func (s *stubProvider) Name() string                   { return s.name }
func (s *stubProvider) AuthCodeURL(_, _ string) string { return "https://" + s.name + ".example" }
func (s *stubProvider) ExchangeCode(context.Context, string, string) (*auth.Profile, error) {
	return nil, nil
}

func TestRegistry_Get(t *testing.T) {
	registry := NewRegistry(&stubProvider{name: "google"})

	p, err := registry.Get("google")
	require.NoError(t, err)
	assert.Equal(t, "google", p.Name())

	_, err = registry.Get("linkedin")
	assert.ErrorContains(t, err, "unknown oauth provider")
}
