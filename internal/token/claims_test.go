package token

import (
	"encoding/json"
	"testing"

	"mernify-backend/internal/identity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaims_UserIDDistinctFromTokenID(t *testing.T) {
	// UserID and the registered jti must stay independently addressable
	// on the combined claim set.
	claims := Claims{
		UserClaims: UserClaims{UserID: "user-1"},
		RegisteredClaims: jwt.RegisteredClaims{
			ID:      "jti-1",
			Subject: "user-1",
		},
	}

	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "jti-1", claims.RegisteredClaims.ID)
}

func TestUserClaims_WireFormat(t *testing.T) {
	avatar := "https://img.example/a.png"
	payload, err := json.Marshal(UserClaims{
		UserID:    "user-1",
		Name:      "Ada",
		Email:     "a@x.com",
		Role:      "citizen",
		AvatarURL: &avatar,
	})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(payload, &decoded))

	// The user identifier serializes as "id" regardless of the Go
	// field name.
	assert.Equal(t, "user-1", decoded["id"])
	assert.Equal(t, "https://img.example/a.png", decoded["profilePictureURL"])
}

func TestClaimsFor(t *testing.T) {
	avatar := "https://img.example/a.png"
	claims := ClaimsFor(&identity.User{
		ID:        "user-1",
		Email:     "a@x.com",
		Name:      "Ada",
		AvatarURL: &avatar,
		Role:      identity.RoleNGO,
	})

	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "ngo", claims.Role)
	require.NotNil(t, claims.AvatarURL)
	assert.Equal(t, avatar, *claims.AvatarURL)
}
