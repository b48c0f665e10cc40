package api

import (
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/killallgit/podcaster-api/api/auth"
	"github.com/killallgit/podcaster-api/api/categories"
	"github.com/killallgit/podcaster-api/api/health"
	"github.com/killallgit/podcaster-api/api/middleware"
	"github.com/killallgit/podcaster-api/api/podcasts"
	"github.com/killallgit/podcaster-api/api/types"
	"github.com/killallgit/podcaster-api/api/users"
	"github.com/killallgit/podcaster-api/api/version"
	_ "github.com/killallgit/podcaster-api/docs/swagger"
	"github.com/killallgit/podcaster-api/internal/services/storage"
	"github.com/killallgit/podcaster-api/pkg/config"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	if err := checkDependencies(deps); err != nil {
		return err
	}
	cfg := deps.Config
	if cfg == nil {
		cfg = &config.Config{}
	}

	// Public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
	})
	engine.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Uploaded files are only served locally for the filesystem backend
	if fs, ok := deps.Storage.(*storage.FilesystemStorage); ok {
		engine.Static("/"+fs.Prefix(), fs.Dir())
		log.Printf("[INFO] Serving uploads from %s at /%s", fs.Dir(), fs.Prefix())
	}

	engine.NoRoute(NotFoundHandler())

	authMiddleware := auth.NewMiddleware(deps.Tokens, deps.UserService, cfg.Auth.CookieName)
	requireUser := authMiddleware.RequireUser()

	responseCache := middleware.CacheMiddleware(middleware.CacheConfig{
		Cache:      deps.Cache,
		DefaultTTL: cfg.Cache.TTL,
		Enabled:    deps.Cache != nil,
	})

	authLimit := PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized,
		"auth", cfg.RateLimiting.AuthRPS, cfg.RateLimiting.AuthBurst)
	uploadLimit := PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized,
		"upload", cfg.RateLimiting.UploadRPS, cfg.RateLimiting.UploadBurst)

	v1 := engine.Group("/api/v1")
	v1.Use(middleware.InvalidateCache(deps.Cache))

	users.RegisterRoutes(v1, deps, requireUser, authLimit)
	categories.RegisterRoutes(v1, deps, requireUser, responseCache)
	podcasts.RegisterRoutes(v1, deps, podcasts.Middleware{
		RequireUser: requireUser,
		Upload: middleware.Upload(middleware.UploadConfig{
			Storage: deps.Storage,
			MaxSize: cfg.Uploads.MaxSize,
		}),
		Cache:       responseCache,
		UploadLimit: uploadLimit,
	})

	return nil
}

func checkDependencies(deps *types.Dependencies) error {
	switch {
	case deps == nil:
		return fmt.Errorf("dependencies are nil")
	case deps.Tokens == nil:
		return fmt.Errorf("token service is not configured")
	case deps.UserService == nil, deps.CategoryService == nil, deps.PodcastService == nil:
		return fmt.Errorf("services are not configured")
	case deps.Storage == nil:
		return fmt.Errorf("upload storage is not configured")
	case deps.Feeds == nil:
		return fmt.Errorf("feed builder is not configured")
	}
	return nil
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  types.StatusError,
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
