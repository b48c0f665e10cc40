package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Environment  string          `mapstructure:"environment"`
	Server       ServerConfig    `mapstructure:"server"`
	Database     DatabaseConfig  `mapstructure:"database"`
	Auth         AuthConfig      `mapstructure:"auth"`
	Uploads      UploadsConfig   `mapstructure:"uploads"`
	Supabase     SupabaseConfig  `mapstructure:"supabase"`
	Cache        CacheConfig     `mapstructure:"cache"`
	Security     SecurityConfig  `mapstructure:"security"`
	RateLimiting RateLimitConfig `mapstructure:"rate_limiting"`
	Feeds        FeedsConfig     `mapstructure:"feeds"`
	Logging      LoggingConfig   `mapstructure:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
}

// DatabaseConfig contains database settings.
// Driver is "sqlite" (Path is used) or "postgres" (DSN is used).
type DatabaseConfig struct {
	Driver                string        `mapstructure:"driver"`
	Path                  string        `mapstructure:"path"`
	DSN                   string        `mapstructure:"dsn"`
	MaxConnections        int           `mapstructure:"max_connections"`
	MaxIdleConnections    int           `mapstructure:"max_idle_connections"`
	ConnectionMaxLifetime time.Duration `mapstructure:"connection_max_lifetime"`
	LogQueries            bool          `mapstructure:"log_queries"`
}

// AuthConfig contains bearer token and cookie settings
type AuthConfig struct {
	JWTSecret    string        `mapstructure:"jwt_secret"`
	TokenTTL     time.Duration `mapstructure:"token_ttl"`
	CookieName   string        `mapstructure:"cookie_name"`
	CookieSecure bool          `mapstructure:"cookie_secure"`
}

// UploadsConfig contains upload storage settings
type UploadsConfig struct {
	Dir          string `mapstructure:"dir"`
	Backend      string `mapstructure:"backend"`
	MaxSize      int64  `mapstructure:"max_size"`
	PublicPrefix string `mapstructure:"public_prefix"`

	// Orphan sweeping, filesystem backend only. Zero interval disables it.
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
	OrphanMaxAge  time.Duration `mapstructure:"orphan_max_age"`
}

// SupabaseConfig contains Supabase Storage credentials
type SupabaseConfig struct {
	URL    string `mapstructure:"url"`
	Key    string `mapstructure:"key"`
	Bucket string `mapstructure:"bucket"`
}

// CacheConfig contains response cache settings
type CacheConfig struct {
	Enabled       bool          `mapstructure:"enabled"`
	Backend       string        `mapstructure:"backend"`
	TTL           time.Duration `mapstructure:"ttl"`
	MaxSizeMB     int64         `mapstructure:"max_size_mb"`
	RedisAddr     string        `mapstructure:"redis_addr"`
	RedisPassword string        `mapstructure:"redis_password"`
	RedisDB       int           `mapstructure:"redis_db"`
}

// SecurityConfig contains security settings
type SecurityConfig struct {
	CORSOrigins []string `mapstructure:"cors_origins"`
}

// RateLimitConfig contains per-client rate limits for sensitive routes
type RateLimitConfig struct {
	AuthRPS     int `mapstructure:"auth_rps"`
	AuthBurst   int `mapstructure:"auth_burst"`
	UploadRPS   int `mapstructure:"upload_rps"`
	UploadBurst int `mapstructure:"upload_burst"`
}

// FeedsConfig contains RSS feed settings
type FeedsConfig struct {
	BaseURL  string `mapstructure:"base_url"`
	Language string `mapstructure:"language"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// IsProduction reports whether the environment is a production one
func (c *Config) IsProduction() bool {
	return c.Environment == "production" || c.Environment == "prod"
}
