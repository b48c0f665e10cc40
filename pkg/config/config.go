package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	once    sync.Once
	initErr error
)

// envAliases maps config keys to the plain environment names the
// application has always been deployed with.
var envAliases = map[string]string{
	"server.port":           "PORT",
	"database.dsn":          "DATABASE_URL",
	"security.cors_origins": "CLIENT_URL",
	"auth.jwt_secret":       "JWT_SECRET",
	"supabase.url":          "SUPABASE_URL",
	"supabase.key":          "SUPABASE_KEY",
	"cache.redis_addr":      "REDIS_ADDR",
}

// placeholders are secret values that must never reach production
var placeholders = []string{
	"",
	"changeme",
	"CHANGEME",
	"YOUR_SECRET_HERE",
	"dev-secret-change-me",
}

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		initErr = load()
	})
	return initErr
}

// load reads .env, defaults, the optional settings file and the environment
func load() error {
	// A missing .env is normal outside local development
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[WARN] Could not load .env file: %v", err)
	}

	setDefaults()

	viper.SetEnvPrefix("PODCASTER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	for key, env := range envAliases {
		prefixed := "PODCASTER_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := viper.BindEnv(key, prefixed, env); err != nil {
			return fmt.Errorf("binding env %s: %w", env, err)
		}
	}

	configPath := filepath.Clean("./config/settings.yaml")
	viper.SetConfigFile(configPath)
	if err := viper.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("error reading config file %s: %w", configPath, err)
		}
	}

	if err := validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// validate validates the configuration using Viper values
func validate() error {
	cfg, err := GetConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.Auth.TokenTTL <= 0 {
		viper.Set("auth.token_ttl", 30*24*time.Hour)
	}
	if cfg.Uploads.MaxSize <= 0 {
		viper.Set("uploads.max_size", 100<<20)
	}
	return nil
}

// Validate validates a Config struct
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	switch c.Database.Driver {
	case "", "sqlite":
	case "postgres":
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown database driver: %q", c.Database.Driver)
	}

	switch c.Uploads.Backend {
	case "", "filesystem":
	case "supabase":
		if c.Supabase.URL == "" || c.Supabase.Key == "" {
			return fmt.Errorf("supabase.url and supabase.key are required for the supabase upload backend")
		}
	default:
		return fmt.Errorf("unknown upload backend: %q", c.Uploads.Backend)
	}

	switch c.Cache.Backend {
	case "", "memory", "redis":
	default:
		return fmt.Errorf("unknown cache backend: %q", c.Cache.Backend)
	}

	for _, placeholder := range placeholders {
		if c.Auth.JWTSecret == placeholder {
			if c.IsProduction() {
				return fmt.Errorf("invalid JWT secret: cannot use placeholder values in production")
			}
			log.Println("[WARN] JWT secret is using a placeholder value - this is insecure!")
			break
		}
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 60*time.Second)
	viper.SetDefault("server.write_timeout", 60*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)

	// Database defaults
	viper.SetDefault("database.driver", "sqlite")
	viper.SetDefault("database.path", "./data/podcaster.db")
	viper.SetDefault("database.dsn", "")
	viper.SetDefault("database.max_connections", 25)
	viper.SetDefault("database.max_idle_connections", 5)
	viper.SetDefault("database.connection_max_lifetime", 30*time.Minute)
	viper.SetDefault("database.log_queries", false)

	// Auth defaults
	viper.SetDefault("auth.jwt_secret", "dev-secret-change-me")
	viper.SetDefault("auth.token_ttl", 30*24*time.Hour)
	viper.SetDefault("auth.cookie_name", "podcasterUserToken")
	viper.SetDefault("auth.cookie_secure", false)

	// Upload defaults
	viper.SetDefault("uploads.dir", "./uploads")
	viper.SetDefault("uploads.backend", "filesystem")
	viper.SetDefault("uploads.max_size", 100<<20)
	viper.SetDefault("uploads.public_prefix", "uploads")
	viper.SetDefault("uploads.sweep_interval", 1*time.Hour)
	viper.SetDefault("uploads.orphan_max_age", 24*time.Hour)

	// Supabase defaults
	viper.SetDefault("supabase.url", "")
	viper.SetDefault("supabase.key", "")
	viper.SetDefault("supabase.bucket", "uploads")

	// Cache defaults
	viper.SetDefault("cache.enabled", true)
	viper.SetDefault("cache.backend", "memory")
	viper.SetDefault("cache.ttl", 1*time.Minute)
	viper.SetDefault("cache.max_size_mb", 64)
	viper.SetDefault("cache.redis_addr", "127.0.0.1:6379")
	viper.SetDefault("cache.redis_password", "")
	viper.SetDefault("cache.redis_db", 0)

	// Security defaults
	viper.SetDefault("security.cors_origins", []string{"http://localhost:5173"})

	// Rate limiting defaults
	viper.SetDefault("rate_limiting.auth_rps", 2)
	viper.SetDefault("rate_limiting.auth_burst", 5)
	viper.SetDefault("rate_limiting.upload_rps", 1)
	viper.SetDefault("rate_limiting.upload_burst", 3)

	// Feed defaults
	viper.SetDefault("feeds.base_url", "")
	viper.SetDefault("feeds.language", "en-us")

	// Logging defaults
	viper.SetDefault("logging.level", "info")
}
