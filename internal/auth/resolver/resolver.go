package resolver

import (
	"context"
	"errors"

	"mernify-backend/internal/auth"
	"mernify-backend/internal/identity"
)

// ErrNoEmail aborts a federation attempt whose profile carries no
// resolvable email. It is a client-facing failure, not a server fault,
// and must leave the identity store untouched.
var ErrNoEmail = errors.New("resolver: no email returned by provider")

// Resolver reconciles an external profile against the identity store.
// It is the ONLY place where profile-to-user mapping logic lives.
type Resolver interface {
	Resolve(
		ctx context.Context,
		profile *auth.Profile,
	) (*identity.User, error)
}
