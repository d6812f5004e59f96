package token

import (
	"context"
	"testing"
	"time"

	"mernify-backend/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-signing-key"

func testClaims() UserClaims {
	return UserClaims{
		UserID: "user-1",
		Name:   "Ada",
		Email:  "a@x.com",
		Role:   "admin",
	}
}

func newTestIssuer() (*Issuer, *session.MemoryStore) {
	store := session.NewMemoryStore()
	issuer := NewIssuer(testSecret, 15*time.Minute, 7*24*time.Hour, 5*time.Minute, store)
	return issuer, store
}

func TestIssue_ProducesVerifiableAccessToken(t *testing.T) {
	issuer, _ := newTestIssuer()

	creds, err := issuer.Issue(context.Background(), testClaims())
	require.NoError(t, err)

	claims, err := issuer.Verify(creds.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "user-1", claims.Subject)
}

func TestIssue_CredentialsAreIndependent(t *testing.T) {
	issuer, _ := newTestIssuer()

	creds, err := issuer.Issue(context.Background(), testClaims())
	require.NoError(t, err)

	assert.NotEmpty(t, creds.RefreshToken)
	assert.NotEmpty(t, creds.Code)
	assert.NotEqual(t, creds.RefreshToken, creds.Code)
	assert.NotContains(t, creds.Code, creds.AccessToken)
	assert.Len(t, creds.RefreshToken, session.RefreshTokenBytes*2)
	assert.Len(t, creds.Code, session.ExchangeCodeBytes*2)
}

func TestExchange_OneTimeSemantics(t *testing.T) {
	issuer, _ := newTestIssuer()
	ctx := context.Background()

	creds, err := issuer.Issue(ctx, testClaims())
	require.NoError(t, err)

	accessToken, err := issuer.Exchange(ctx, creds.Code)
	require.NoError(t, err)
	assert.Equal(t, creds.AccessToken, accessToken)

	_, err = issuer.Exchange(ctx, creds.Code)
	assert.ErrorIs(t, err, ErrInvalidCode)
}

func TestExchange_ExpiredCode(t *testing.T) {
	issuer, store := newTestIssuer()
	ctx := context.Background()

	now := time.Now()
	store.SetClock(func() time.Time { return now })
	issuer.SetClock(func() time.Time { return now })

	creds, err := issuer.Issue(ctx, testClaims())
	require.NoError(t, err)

	// Minute six of a five-minute TTL; no prior resolution happened.
	store.SetClock(func() time.Time { return now.Add(6 * time.Minute) })

	_, err = issuer.Exchange(ctx, creds.Code)
	assert.ErrorIs(t, err, ErrInvalidCode)
}

func TestRefresh_MintsFreshTokenWithoutRotation(t *testing.T) {
	issuer, _ := newTestIssuer()
	ctx := context.Background()

	now := time.Now()
	issuer.SetClock(func() time.Time { return now })

	creds, err := issuer.Issue(ctx, testClaims())
	require.NoError(t, err)

	issuer.SetClock(func() time.Time { return now.Add(time.Minute) })

	first, err := issuer.Refresh(ctx, creds.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, creds.AccessToken, first)

	claims, err := issuer.Verify(first)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)

	// The same refresh token keeps working; no rotation on use.
	second, err := issuer.Refresh(ctx, creds.RefreshToken)
	require.NoError(t, err)
	claims, err = issuer.Verify(second)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)
}

func TestRefresh_UnknownToken(t *testing.T) {
	issuer, _ := newTestIssuer()

	_, err := issuer.Refresh(context.Background(), "deadbeef")
	assert.ErrorIs(t, err, ErrInvalidRefresh)
}

func TestRevoke_IsIdempotentAndKillsRefresh(t *testing.T) {
	issuer, _ := newTestIssuer()
	ctx := context.Background()

	creds, err := issuer.Issue(ctx, testClaims())
	require.NoError(t, err)

	existed, err := issuer.Revoke(ctx, creds.RefreshToken)
	require.NoError(t, err)
	assert.True(t, existed)

	existed, err = issuer.Revoke(ctx, creds.RefreshToken)
	require.NoError(t, err)
	assert.False(t, existed)

	_, err = issuer.Refresh(ctx, creds.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidRefresh)
}

func TestVerify_ExpiredToken(t *testing.T) {
	issuer, _ := newTestIssuer()

	now := time.Now()
	issuer.SetClock(func() time.Time { return now })

	creds, err := issuer.Issue(context.Background(), testClaims())
	require.NoError(t, err)

	issuer.SetClock(func() time.Time { return now.Add(16 * time.Minute) })

	_, err = issuer.Verify(creds.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_WrongKeyFails(t *testing.T) {
	issuer, store := newTestIssuer()

	creds, err := issuer.Issue(context.Background(), testClaims())
	require.NoError(t, err)

	// A rotated key invalidates every outstanding access token at once.
	rotated := NewIssuer("rotated-signing-key", 15*time.Minute, time.Hour, time.Minute, store)
	_, err = rotated.Verify(creds.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_IgnoresCredentialStoreState(t *testing.T) {
	issuer, _ := newTestIssuer()
	ctx := context.Background()

	creds, err := issuer.Issue(ctx, testClaims())
	require.NoError(t, err)

	// Revoking the refresh token must not touch access-token validity.
	_, err = issuer.Revoke(ctx, creds.RefreshToken)
	require.NoError(t, err)

	_, err = issuer.Verify(creds.AccessToken)
	assert.NoError(t, err)
}

func TestVerify_GarbageInput(t *testing.T) {
	issuer, _ := newTestIssuer()

	_, err := issuer.Verify("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
