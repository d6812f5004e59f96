package token

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"mernify-backend/internal/session"

	"github.com/golang-jwt/jwt/v5"
)

// refreshKeyPrefix namespaces refresh entries in the credential store so
// they can never collide with exchange codes.
const refreshKeyPrefix = "refresh:"

var (
	// ErrInvalidCode means the exchange code is absent, expired, or was
	// already consumed.
	ErrInvalidCode = errors.New("token: invalid or expired authorization code")

	// ErrInvalidRefresh means the refresh token resolves to no live
	// credential-store entry.
	ErrInvalidRefresh = errors.New("token: invalid or expired refresh token")

	// ErrInvalidToken means access-token signature or expiry
	// verification failed.
	ErrInvalidToken = errors.New("token: invalid access token")
)

// Credentials is the outcome of a successful issuance: the signed
// access token, the opaque refresh token already persisted with its
// TTL, and the one-time exchange code staged for the browser redirect.
// Only the code is ever placed in a URL.
type Credentials struct {
	AccessToken  string
	RefreshToken string
	Code         string
}

// Issuer mints access tokens with a single process-wide signing key and
// manages refresh tokens and exchange codes in the credential store.
// The key and TTLs are fixed at construction; rotating the key restarts
// the process and invalidates every outstanding access token at once.
type Issuer struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	codeTTL    time.Duration
	store      session.Store
	now        func() time.Time
}

func NewIssuer(
	secret string,
	accessTTL time.Duration,
	refreshTTL time.Duration,
	codeTTL time.Duration,
	store session.Store,
) *Issuer {
	return &Issuer{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		codeTTL:    codeTTL,
		store:      store,
		now:        time.Now,
	}
}

// SetClock overrides the issuer's time source for expiry tests.
func (i *Issuer) SetClock(now func() time.Time) {
	i.now = now
}

// Issue signs an access token for the claims, persists the refresh
// mapping, and stages the one-time exchange code holding the access
// token.
func (i *Issuer) Issue(ctx context.Context, claims UserClaims) (*Credentials, error) {
	accessToken, err := i.sign(claims)
	if err != nil {
		return nil, err
	}

	refreshToken, err := session.GenerateToken(session.RefreshTokenBytes)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(claims)
	if err != nil {
		return nil, fmt.Errorf("token: marshal claims: %w", err)
	}

	if err := i.store.Set(ctx, refreshKeyPrefix+refreshToken, payload, i.refreshTTL); err != nil {
		return nil, fmt.Errorf("token: store refresh token: %w", err)
	}

	code, err := session.GenerateToken(session.ExchangeCodeBytes)
	if err != nil {
		return nil, err
	}

	if err := i.store.Set(ctx, code, []byte(accessToken), i.codeTTL); err != nil {
		return nil, fmt.Errorf("token: store exchange code: %w", err)
	}

	return &Credentials{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Code:         code,
	}, nil
}

// Exchange consumes a one-time code and returns the staged access
// token. Consumption is atomic: of N concurrent calls on the same code,
// exactly one receives the token.
func (i *Issuer) Exchange(ctx context.Context, code string) (string, error) {
	val, err := i.store.Consume(ctx, code)
	if errors.Is(err, session.ErrNotFound) {
		return "", ErrInvalidCode
	}
	if err != nil {
		return "", fmt.Errorf("token: consume exchange code: %w", err)
	}
	return string(val), nil
}

// Refresh resolves the refresh token and re-signs a fresh access token
// from the stored claims. The stored entry and its TTL are left
// untouched; the same refresh token stays valid until revoked or
// expired.
func (i *Issuer) Refresh(ctx context.Context, refreshToken string) (string, error) {
	payload, err := i.store.Get(ctx, refreshKeyPrefix+refreshToken)
	if errors.Is(err, session.ErrNotFound) {
		return "", ErrInvalidRefresh
	}
	if err != nil {
		return "", fmt.Errorf("token: resolve refresh token: %w", err)
	}

	var claims UserClaims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return "", fmt.Errorf("token: unmarshal stored claims: %w", err)
	}

	return i.sign(claims)
}

// Revoke deletes the refresh mapping and reports whether a live entry
// existed. Calling it twice is safe; the second call reports false.
func (i *Issuer) Revoke(ctx context.Context, refreshToken string) (bool, error) {
	existed, err := i.store.Delete(ctx, refreshKeyPrefix+refreshToken)
	if err != nil {
		return false, fmt.Errorf("token: revoke refresh token: %w", err)
	}
	return existed, nil
}

// Verify checks signature and expiry against the signing key alone and
// returns the decoded claims. It never consults the credential store.
func (i *Issuer) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	parsed, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(t *jwt.Token) (any, error) {
			return i.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return i.now() }),
	)
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (i *Issuer) sign(claims UserClaims) (string, error) {
	issuedAt := i.now()

	full := Claims{
		UserClaims: claims,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.UserID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(i.accessTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, full)

	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("token: sign access token: %w", err)
	}
	return signed, nil
}
