package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	JWT    JWTConfig
	Log    LogConfig
	CORS   CORSConfig
	Seed   SeedConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds SQLite settings. The default DSN is a shared in-memory
// database, so every restart starts from a clean, reseeded store. Point
// it at a file path to keep data across restarts.
type DBConfig struct {
	DSN     string `mapstructure:"dsn"`
	MaxOpen int    `mapstructure:"max_open"`
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret             string        `mapstructure:"secret"`
	AccessTokenExpiry  time.Duration `mapstructure:"access_expiry"`
	RefreshTokenExpiry time.Duration `mapstructure:"refresh_expiry"`
	Issuer             string        `mapstructure:"issuer"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// SeedConfig controls demo-data seeding of an empty store.
type SeedConfig struct {
	Demo bool `mapstructure:"demo"`
}

// Load reads configuration from environment variables with the
// LEXCONNECT_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("LEXCONNECT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.dsn", "file::memory:?cache=shared")
	v.SetDefault("db.max_open", 1)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "15m")
	v.SetDefault("jwt.refresh_expiry", "168h")
	v.SetDefault("jwt.issuer", "lexconnect")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Seed defaults
	v.SetDefault("seed.demo", true)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":          "LEXCONNECT_SERVER_PORT",
		"server.read_timeout":  "LEXCONNECT_SERVER_READ_TIMEOUT",
		"server.write_timeout": "LEXCONNECT_SERVER_WRITE_TIMEOUT",
		"server.environment":   "LEXCONNECT_SERVER_ENVIRONMENT",
		"db.dsn":               "LEXCONNECT_DB_DSN",
		"db.max_open":          "LEXCONNECT_DB_MAX_OPEN",
		"jwt.secret":           "LEXCONNECT_JWT_SECRET",
		"jwt.access_expiry":    "LEXCONNECT_JWT_ACCESS_EXPIRY",
		"jwt.refresh_expiry":   "LEXCONNECT_JWT_REFRESH_EXPIRY",
		"jwt.issuer":           "LEXCONNECT_JWT_ISSUER",
		"log.level":            "LEXCONNECT_LOG_LEVEL",
		"log.format":           "LEXCONNECT_LOG_FORMAT",
		"cors.allowed_origins": "LEXCONNECT_CORS_ALLOWED_ORIGINS",
		"seed.demo":            "LEXCONNECT_SEED_DEMO",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if
	// LEXCONNECT_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("LEXCONNECT_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		DSN:     v.GetString("db.dsn"),
		MaxOpen: v.GetInt("db.max_open"),
	}
	cfg.JWT = JWTConfig{
		Secret:             v.GetString("jwt.secret"),
		AccessTokenExpiry:  v.GetDuration("jwt.access_expiry"),
		RefreshTokenExpiry: v.GetDuration("jwt.refresh_expiry"),
		Issuer:             v.GetString("jwt.issuer"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	cfg.Seed = SeedConfig{Demo: v.GetBool("seed.demo")}

	return cfg, nil
}
