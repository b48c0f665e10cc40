package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcaster-api/api"
	"github.com/killallgit/podcaster-api/api/types"
	"github.com/killallgit/podcaster-api/internal/database"
	"github.com/killallgit/podcaster-api/internal/services/auth"
	"github.com/killallgit/podcaster-api/internal/services/cache"
	"github.com/killallgit/podcaster-api/internal/services/categories"
	"github.com/killallgit/podcaster-api/internal/services/cleanup"
	"github.com/killallgit/podcaster-api/internal/services/feeds"
	"github.com/killallgit/podcaster-api/internal/services/podcasts"
	"github.com/killallgit/podcaster-api/internal/services/storage"
	"github.com/killallgit/podcaster-api/internal/services/users"
	"github.com/killallgit/podcaster-api/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Podcaster API server",
	Long: `Start the Podcaster API HTTP server.

The server opens and migrates the database, prepares upload storage and
the response cache, then listens until it receives SIGINT or SIGTERM.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("host", "", "host to bind to (overrides server.host)")
	serveCmd.Flags().IntP("port", "p", 0, "port to listen on (overrides server.port)")
	_ = viper.BindPFlag("server.host", serveCmd.Flags().Lookup("host"))
	_ = viper.BindPFlag("server.port", serveCmd.Flags().Lookup("port"))
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("host") {
		cfg.Server.Host, _ = cmd.Flags().GetString("host")
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port, _ = cmd.Flags().GetInt("port")
	}

	if strings.EqualFold(cfg.Logging.Level, "debug") {
		gin.SetMode(gin.DebugMode)
		cfg.Database.LogQueries = true
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, release, err := buildDependencies(ctx, cfg)
	if err != nil {
		return err
	}
	defer release()

	server := api.NewServer(cfg.Server)
	server.SetDependencies(deps)
	if err := server.Initialize(); err != nil {
		return fmt.Errorf("initializing server: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[INFO] Podcaster API v%s listening on %s", Version, server.Addr())
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Println("[INFO] Shutting down server...")
	timeout := cfg.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	log.Println("[INFO] Server exited")
	return nil
}

// buildDependencies opens every backing service the router needs. The
// returned func releases them in reverse order.
func buildDependencies(ctx context.Context, cfg *config.Config) (*types.Dependencies, func(), error) {
	var closers []func()
	release := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}
	fail := func(err error) (*types.Dependencies, func(), error) {
		release()
		return nil, func() {}, err
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return fail(fmt.Errorf("opening database: %w", err))
	}
	closers = append(closers, func() {
		if err := db.Close(); err != nil {
			log.Printf("[WARN] Failed to close database: %v", err)
		}
	})
	if err := db.Migrate(); err != nil {
		return fail(fmt.Errorf("migrating database: %w", err))
	}

	tokens, err := auth.NewService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		return fail(fmt.Errorf("creating token service: %w", err))
	}

	files, err := storage.New(cfg.Uploads, cfg.Supabase)
	if err != nil {
		return fail(fmt.Errorf("creating upload storage: %w", err))
	}
	log.Printf("[INFO] Upload storage: %s", files.Name())

	if fs, ok := files.(*storage.FilesystemStorage); ok && cfg.Uploads.SweepInterval > 0 {
		sweeper := cleanup.NewService(db.DB, fs.Dir(), cfg.Uploads.OrphanMaxAge, cfg.Uploads.SweepInterval)
		sweeper.Start(ctx)
		closers = append(closers, sweeper.Stop)
	}

	var responses cache.Cache
	if cfg.Cache.Enabled {
		responses, err = cache.New(ctx, cfg.Cache)
		if err != nil {
			return fail(fmt.Errorf("creating response cache: %w", err))
		}
		closers = append(closers, func() {
			if err := responses.Close(); err != nil {
				log.Printf("[WARN] Failed to close cache: %v", err)
			}
		})
	}

	categoryService := categories.NewService(categories.NewRepository(db.DB))

	deps := &types.Dependencies{
		Config:          cfg,
		Version:         Version,
		DB:              db,
		Tokens:          tokens,
		UserService:     users.NewService(users.NewRepository(db.DB), tokens),
		CategoryService: categoryService,
		PodcastService:  podcasts.NewService(podcasts.NewRepository(db.DB), categoryService, files),
		Storage:         files,
		Cache:           responses,
		Feeds:           feeds.NewBuilder(cfg.Feeds.BaseURL, cfg.Feeds.Language),
	}
	return deps, release, nil
}
