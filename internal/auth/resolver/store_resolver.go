package resolver

import (
	"context"
	"errors"

	"mernify-backend/internal/auth"
	"mernify-backend/internal/identity"
	"mernify-backend/internal/logger"
)

// StoreResolver resolves profiles against an identity store.
//
// First federation for an email creates the record and evaluates the
// role policy once; later federations only persist name/avatar drift.
// The role assigned at creation is sticky.
type StoreResolver struct {
	store  identity.Store
	policy identity.RolePolicy
}

func NewStoreResolver(store identity.Store, policy identity.RolePolicy) *StoreResolver {
	return &StoreResolver{store: store, policy: policy}
}

func (r *StoreResolver) Resolve(
	ctx context.Context,
	profile *auth.Profile,
) (*identity.User, error) {

	if profile == nil {
		return nil, errors.New("resolver: profile is nil")
	}
	if profile.Email == "" {
		return nil, ErrNoEmail
	}

	user, err := r.store.FindByEmail(ctx, profile.Email)

	if errors.Is(err, identity.ErrNotFound) {
		user = &identity.User{
			Email:     profile.Email,
			Name:      profile.DisplayName,
			AvatarURL: profile.AvatarURL,
			Role:      r.policy.RoleFor(profile.Email),
		}

		if err := r.store.Create(ctx, user); err != nil {
			return nil, err
		}

		logger.Info("new user created",
			"email", user.Email,
			"role", string(user.Role),
		)
		return user, nil
	}

	if err != nil {
		return nil, err
	}

	if r.applyDrift(user, profile) {
		if err := r.store.UpdateProfile(ctx, user); err != nil {
			return nil, err
		}
	}

	return user, nil
}

// applyDrift copies changed name/avatar values from the asserted profile
// onto the stored user and reports whether anything changed.
func (r *StoreResolver) applyDrift(user *identity.User, profile *auth.Profile) bool {
	updated := false

	if profile.DisplayName != "" && user.Name != profile.DisplayName {
		user.Name = profile.DisplayName
		updated = true
	}

	if !equalAvatar(user.AvatarURL, profile.AvatarURL) {
		user.AvatarURL = profile.AvatarURL
		updated = true
	}

	return updated
}

func equalAvatar(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
