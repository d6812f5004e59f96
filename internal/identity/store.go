package identity

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no user exists for the given email.
var ErrNotFound = errors.New("identity: user not found")

// Store persists user records. The federation flow only ever creates a
// record or updates its profile fields; records are never deleted here.
type Store interface {
	// FindByEmail looks a user up by case-normalized email.
	// Returns ErrNotFound when no record exists.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// Create inserts a new record and fills in its generated fields.
	Create(ctx context.Context, u *User) error

	// UpdateProfile persists drifted name/avatar values. Role and email
	// are immutable through this store.
	UpdateProfile(ctx context.Context, u *User) error
}
