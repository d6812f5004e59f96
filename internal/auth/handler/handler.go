// Package handler exposes the session gateway: the provider login and
// callback flow, the one-time code exchange, token refresh, and logout.
package handler

import (
	"errors"
	"net/http"
	"time"

	"mernify-backend/internal/auth/provider"
	"mernify-backend/internal/auth/resolver"
	"mernify-backend/internal/logger"
	"mernify-backend/internal/session"
	"mernify-backend/internal/token"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	providers  *provider.Registry
	resolver   resolver.Resolver
	issuer     *token.Issuer
	frontend   string
	refreshTTL time.Duration
	cookieOpts session.CookieOptions
}

func NewHandler(
	registry *provider.Registry,
	res resolver.Resolver,
	issuer *token.Issuer,
	frontendURL string,
	refreshTTL time.Duration,
	cookieOpts session.CookieOptions,
) *Handler {
	return &Handler{
		providers:  registry,
		resolver:   res,
		issuer:     issuer,
		frontend:   frontendURL,
		refreshTTL: refreshTTL,
		cookieOpts: cookieOpts,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/oauth/login/:provider", h.login)
	r.GET("/oauth/callback/:provider", h.callback)
	r.POST("/auth/exchange-token", h.Exchange)
	r.POST("/auth/refresh-token", h.Refresh)
	r.POST("/auth/logout", h.Logout)
}

func (h *Handler) login(c *gin.Context) {
	providerName := c.Param("provider")

	p, err := h.providers.Get(providerName)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "unknown oauth provider",
		})
		return
	}

	state := generateState(c)
	_, codeChallenge := generatePKCE(c)

	authURL := p.AuthCodeURL(state, codeChallenge)
	c.Redirect(http.StatusFound, authURL)
}

func (h *Handler) callback(c *gin.Context) {
	providerName := c.Param("provider")

	p, err := h.providers.Get(providerName)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "unknown oauth provider",
		})
		return
	}

	if !validateState(c) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "invalid state",
		})
		return
	}

	if errParam := c.Query("error"); errParam != "" {
		logger.Warn("oauth callback returned error",
			"provider", providerName,
			"error", errParam,
			"desc", c.Query("error_description"),
		)
		c.Redirect(http.StatusFound, h.frontend+"/login?error=auth_failed")
		return
	}

	code := c.Query("code")
	if code == "" {
		logger.Error("oauth callback missing code and error")
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	codeVerifier := getPKCEVerifier(c)
	if codeVerifier == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "missing pkce verifier",
		})
		return
	}

	profile, err := p.ExchangeCode(c.Request.Context(), code, codeVerifier)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "authentication failed",
		})
		return
	}

	user, err := h.resolver.Resolve(c.Request.Context(), profile)
	if errors.Is(err, resolver.ErrNoEmail) {
		// Federation abort, not a server fault. No record was touched
		// and no cookie may be set.
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "No email returned by provider",
		})
		return
	}
	if err != nil {
		logger.Error("failed to resolve user", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to resolve user",
		})
		return
	}

	creds, err := h.issuer.Issue(c.Request.Context(), token.ClaimsFor(user))
	if err != nil {
		logger.Error("token issuance failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Authentication failed",
		})
		return
	}

	session.SetCookie(c.Writer, creds.RefreshToken, h.refreshTTL, h.cookieOpts)

	logger.Info("login success",
		"user_id", user.ID,
		"role", string(user.Role),
		"ip", c.ClientIP(),
	)

	// Only the opaque one-time code travels in the redirect URL; the
	// access token stays out of browser history and logs.
	c.Redirect(http.StatusFound, h.frontend+"/auth/callback?code="+creds.Code)
}

type exchangeRequest struct {
	Code string `json:"code"`
}

// Exchange resolves a one-time code into the staged access token.
// Consumption is atomic; a replayed or expired code gets a 400.
func (h *Handler) Exchange(c *gin.Context) {
	var req exchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Code == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Authorization code is required",
		})
		return
	}

	accessToken, err := h.issuer.Exchange(c.Request.Context(), req.Code)
	if errors.Is(err, token.ErrInvalidCode) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid or expired authorization code",
		})
		return
	}
	if err != nil {
		logger.Error("exchange failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Token exchange failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": accessToken})
}

// Refresh mints a new access token from the refresh-token cookie.
// The cookie and its store entry are left untouched.
func (h *Handler) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie(session.CookieName)
	if err != nil || refreshToken == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Refresh token missing",
		})
		return
	}

	accessToken, err := h.issuer.Refresh(c.Request.Context(), refreshToken)
	if errors.Is(err, token.ErrInvalidRefresh) {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Invalid or expired refresh token",
		})
		return
	}
	if err != nil {
		logger.Error("refresh failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Token refresh failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": accessToken})
}

// Logout revokes the refresh credential and clears its cookie. The
// cookie is cleared whenever one was presented, even when the store
// entry was already gone.
func (h *Handler) Logout(c *gin.Context) {
	refreshToken, err := c.Cookie(session.CookieName)
	if err != nil || refreshToken == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "No refresh token cookie found",
		})
		return
	}

	existed, err := h.issuer.Revoke(c.Request.Context(), refreshToken)
	if err != nil {
		logger.Error("logout revoke failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Logout failed",
		})
		return
	}

	session.ClearCookie(c.Writer, h.cookieOpts)

	if !existed {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Refresh token not found or already expired",
		})
		return
	}

	logger.Info("logout", "ip", c.ClientIP())

	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}
