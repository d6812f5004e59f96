package session

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// Entropy sizes for the two opaque credentials. Both are generated
// independently; neither is derived from the other or from the access
// token.
const (
	RefreshTokenBytes = 64 // 512 bits
	ExchangeCodeBytes = 32 // 256 bits
)

// GenerateToken returns a hex-encoded cryptographically secure random
// value of the given byte length.
func GenerateToken(size int) (string, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("session: failed to generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
