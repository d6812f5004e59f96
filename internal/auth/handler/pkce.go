package handler

import (
	"crypto/sha256"
	"encoding/base64"

	"github.com/gin-gonic/gin"
)

const pkceCookieName = "__oauth_pkce"

// generatePKCE creates an S256 verifier/challenge pair. The verifier
// stays with the browser in a flow cookie; only the challenge travels
// to the provider.
func generatePKCE(c *gin.Context) (verifier string, challenge string) {
	verifier = randomValue()

	hash := sha256.Sum256([]byte(verifier))
	challenge = base64.RawURLEncoding.EncodeToString(hash[:])

	setFlowCookie(c, pkceCookieName, verifier)
	return verifier, challenge
}

func getPKCEVerifier(c *gin.Context) string {
	return flowCookie(c, pkceCookieName)
}
