package cmd

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/killallgit/podcaster-api/api"
	"github.com/killallgit/podcaster-api/internal/models"
	"github.com/killallgit/podcaster-api/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeCommand(t *testing.T) {
	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"serve", "--help"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(buf.String(), "Start the Podcaster API HTTP server") {
		t.Errorf("Expected help output, got %q", buf.String())
	}
}

func TestServeCommandFlags(t *testing.T) {
	cmd := NewRootCmd()
	serveCmd, _, err := cmd.Find([]string{"serve"})
	if err != nil {
		t.Fatalf("Failed to find serve command: %v", err)
	}

	if serveCmd.Flags().Lookup("port") == nil {
		t.Error("Expected port flag to be registered")
	}
	if serveCmd.Flags().Lookup("host") == nil {
		t.Error("Expected host flag to be registered")
	}
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Server:   config.ServerConfig{Host: "127.0.0.1", Port: 8080},
		Database: config.DatabaseConfig{Driver: "sqlite", Path: ":memory:"},
		Auth:     config.AuthConfig{JWTSecret: "test-secret", TokenTTL: time.Hour},
		Uploads:  config.UploadsConfig{Dir: t.TempDir(), Backend: "filesystem", MaxSize: 1 << 20},
		Cache:    config.CacheConfig{Enabled: true, Backend: "memory", MaxSizeMB: 1, TTL: time.Minute},
		Feeds:    config.FeedsConfig{Language: "en"},
	}
}

func TestBuildDependencies(t *testing.T) {
	t.Run("wires every service", func(t *testing.T) {
		deps, cleanup, err := buildDependencies(context.Background(), testConfig(t))
		require.NoError(t, err)
		t.Cleanup(cleanup)

		assert.NotNil(t, deps.DB)
		assert.NotNil(t, deps.Tokens)
		assert.NotNil(t, deps.UserService)
		assert.NotNil(t, deps.CategoryService)
		assert.NotNil(t, deps.PodcastService)
		assert.NotNil(t, deps.Feeds)
		assert.NotNil(t, deps.Cache)
		assert.Equal(t, "filesystem", deps.Storage.Name())
		assert.Equal(t, Version, deps.Version)
		for _, model := range models.All() {
			assert.True(t, deps.DB.Migrator().HasTable(model))
		}
	})

	t.Run("cache is optional", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Cache.Enabled = false

		deps, cleanup, err := buildDependencies(context.Background(), cfg)
		require.NoError(t, err)
		t.Cleanup(cleanup)
		assert.Nil(t, deps.Cache)
	})

	t.Run("starts the upload sweeper", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Uploads.SweepInterval = time.Hour
		cfg.Uploads.OrphanMaxAge = time.Hour

		_, cleanup, err := buildDependencies(context.Background(), cfg)
		require.NoError(t, err)
		cleanup()
	})

	t.Run("missing jwt secret fails", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Auth.JWTSecret = ""

		_, cleanup, err := buildDependencies(context.Background(), cfg)
		cleanup()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "token service")
	})

	t.Run("unknown upload backend fails", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Uploads.Backend = "ftp"

		_, cleanup, err := buildDependencies(context.Background(), cfg)
		cleanup()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "upload storage")
	})
}

func TestBuildDependencies_ServesRouter(t *testing.T) {
	cfg := testConfig(t)
	deps, cleanup, err := buildDependencies(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(cleanup)

	server := api.NewServer(cfg.Server)
	server.SetDependencies(deps)
	require.NoError(t, server.Initialize())
	t.Cleanup(func() { _ = server.Shutdown(context.Background()) })

	w := httptest.NewRecorder()
	server.Engine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"connected":true`)

	w = httptest.NewRecorder()
	server.Engine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
