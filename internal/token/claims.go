// Package token mints, refreshes, revokes, and verifies the two
// credential kinds: signed short-lived access tokens and opaque
// long-lived refresh tokens resolved through the credential store.
package token

import (
	"mernify-backend/internal/identity"

	"github.com/golang-jwt/jwt/v5"
)

// UserClaims is the identity payload carried by every access token and
// stored verbatim against each refresh token. It never changes between
// a refresh token's issuance and its expiry.
//
// The user identifier is named UserID so it cannot collide with the
// registered jti claim when both are embedded in Claims; on the wire it
// still serializes as "id".
type UserClaims struct {
	UserID    string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	AvatarURL *string `json:"profilePictureURL"`
}

// Claims is the full signed claim set: user payload plus the
// registered issuance/expiry claims.
type Claims struct {
	UserClaims
	jwt.RegisteredClaims
}

// ClaimsFor builds the token payload for a reconciled user.
func ClaimsFor(u *identity.User) UserClaims {
	return UserClaims{
		UserID:    u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		AvatarURL: u.AvatarURL,
	}
}
