package app

import (
	"context"
	"net/http"

	"mernify-backend/internal/auth/handler"
	"mernify-backend/internal/auth/provider"
	"mernify-backend/internal/auth/provider/google"
	"mernify-backend/internal/auth/resolver"
	"mernify-backend/internal/config"
	"mernify-backend/internal/identity"
	"mernify-backend/internal/middleware"
	"mernify-backend/internal/session"
	"mernify-backend/internal/token"

	"github.com/gin-gonic/gin"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	credentialStore := session.NewRedisStore(infra.Redis.Client)

	rolePolicy := identity.NewRolePolicy(cfg.AdminEmail, cfg.NGOEmail)
	identityResolver := resolver.NewStoreResolver(infra.Users, rolePolicy)

	issuer := token.NewIssuer(
		cfg.JWTSecret,
		cfg.AccessTokenTTL,
		cfg.RefreshTTL(),
		cfg.AuthCodeTTL,
		credentialStore,
	)

	googleProvider, err := google.New(
		ctx,
		cfg.GoogleClientID,
		cfg.GoogleClientSecret,
		cfg.GoogleRedirectURL,
	)
	if err != nil {
		return nil, nil, err
	}

	registry := provider.NewRegistry(googleProvider)

	authHandler := handler.NewHandler(
		registry,
		identityResolver,
		issuer,
		cfg.FrontendURL,
		cfg.RefreshTTL(),
		session.CookieOptions{Production: cfg.IsProduction()},
	)

	authMiddleware := middleware.NewAuthMiddleware(issuer)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())

	// ----------------------------
	// Public Routes
	// ----------------------------

	authHandler.RegisterRoutes(router)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ----------------------------
	// Protected API Routes
	// ----------------------------

	api := router.Group("/api")
	api.Use(middleware.GinRequireAuth(authMiddleware))

	api.GET("/me", func(c *gin.Context) {
		claims, _ := middleware.ClaimsFromContext(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{
			"id":                claims.UserID,
			"name":              claims.Name,
			"email":             claims.Email,
			"role":              claims.Role,
			"profilePictureURL": claims.AvatarURL,
		})
	})

	admin := api.Group("/admin")
	admin.Use(middleware.GinRequireRole(identity.RoleAdmin))

	admin.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	// ----------------------------
	// Cleanup
	// ----------------------------

	return router, func() error {
		if err := infra.Redis.Close(); err != nil {
			_ = infra.DB.Close()
			return err
		}
		return infra.DB.Close()
	}, nil
}
