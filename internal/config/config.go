package config

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds application level configuration loaded from files, environment and flags.
type Config struct {
	RunAddress      string
	StorageDriver   string
	DatabaseURI     string
	JWTSecret       string
	TokenStrategy   string
	TokenTTL        time.Duration
	AllowedOrigins  []string
	AppEnv          string
	LogLevel        string
	ShutdownTimeout time.Duration
}

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMySQL    = "mysql"

	TokenStrategyJWT  = "jwt"
	TokenStrategyHMAC = "hmac"
)

const (
	defaultRunAddress      = ":5000"
	defaultStorageDriver   = StorageDriverPostgres
	defaultTokenStrategy   = TokenStrategyJWT
	defaultTokenTTL        = time.Hour
	defaultAllowedOrigin   = "*"
	defaultAppEnv          = "production"
	defaultLogLevel        = "info"
	defaultShutdownTimeout = 10 * time.Second
)

const (
	keyConfigFile      = "config_file"
	keyRunAddress      = "run_address"
	keyStorageDriver   = "storage_driver"
	keyDatabaseURI     = "database_uri"
	keyJWTSecret       = "jwt_secret"
	keyJWTSecretFile   = "jwt_secret_file"
	keyTokenStrategy   = "token_strategy"
	keyTokenTTL        = "token_ttl"
	keyAllowedOrigins  = "cors_allowed_origins"
	keyAppEnv          = "app_env"
	keyLogLevel        = "log_level"
	keyShutdownTimeout = "shutdown_timeout"
)

type binding struct {
	key  string
	env  string
	flag string
}

var bindings = []binding{
	{key: keyConfigFile, env: "CONFIG_FILE", flag: "config"},
	{key: keyRunAddress, env: "RUN_ADDRESS", flag: "address"},
	{key: keyStorageDriver, env: "STORAGE_DRIVER", flag: "storage"},
	{key: keyDatabaseURI, env: "DATABASE_URI", flag: "database"},
	{key: keyJWTSecret, env: "JWT_SECRET", flag: "jwt-secret"},
	{key: keyJWTSecretFile, env: "JWT_SECRET_FILE"},
	{key: keyTokenStrategy, env: "TOKEN_STRATEGY", flag: "token-strategy"},
	{key: keyTokenTTL, env: "TOKEN_TTL", flag: "token-ttl"},
	{key: keyAllowedOrigins, env: "CORS_ALLOWED_ORIGINS", flag: "cors-origins"},
	{key: keyAppEnv, env: "APP_ENV", flag: "env"},
	{key: keyLogLevel, env: "LOG_LEVEL", flag: "log-level"},
	{key: keyShutdownTimeout, env: "SHUTDOWN_TIMEOUT", flag: "shutdown-timeout"},
}

// Load reads an optional .env file and parses configuration from the process arguments.
func Load() (*Config, error) {
	// A missing .env file is not an error.
	_ = godotenv.Load(".env")
	return load(os.Args[1:])
}

func load(args []string) (*Config, error) {
	v := viper.New()
	v.SetDefault(keyRunAddress, defaultRunAddress)
	v.SetDefault(keyStorageDriver, defaultStorageDriver)
	v.SetDefault(keyTokenStrategy, defaultTokenStrategy)
	v.SetDefault(keyTokenTTL, defaultTokenTTL)
	v.SetDefault(keyAllowedOrigins, []string{defaultAllowedOrigin})
	v.SetDefault(keyAppEnv, defaultAppEnv)
	v.SetDefault(keyLogLevel, defaultLogLevel)
	v.SetDefault(keyShutdownTimeout, defaultShutdownTimeout)

	fs := pflag.NewFlagSet("givebox", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.String("config", "", "Path to an optional configuration file")
	fs.StringP("address", "a", defaultRunAddress, "HTTP server listen address")
	fs.StringP("database", "d", "", "Database DSN")
	fs.String("storage", defaultStorageDriver, "Storage backend: postgres or mysql")
	fs.String("jwt-secret", "", "Secret for signing auth tokens")
	fs.String("token-strategy", defaultTokenStrategy, "Auth token format: jwt or hmac")
	fs.String("token-ttl", defaultTokenTTL.String(), "Lifetime of issued auth tokens")
	fs.StringSlice("cors-origins", []string{defaultAllowedOrigin}, "Allowed CORS origins")
	fs.String("env", defaultAppEnv, "Application environment")
	fs.String("log-level", defaultLogLevel, "Minimal log level")
	fs.String("shutdown-timeout", defaultShutdownTimeout.String(), "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	for _, b := range bindings {
		if err := v.BindEnv(b.key, b.env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", b.env, err)
		}
		if b.flag == "" {
			continue
		}
		if err := v.BindPFlag(b.key, fs.Lookup(b.flag)); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", b.flag, err)
		}
	}

	if path := v.GetString(keyConfigFile); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &Config{
		RunAddress:     v.GetString(keyRunAddress),
		StorageDriver:  strings.ToLower(strings.TrimSpace(v.GetString(keyStorageDriver))),
		DatabaseURI:    v.GetString(keyDatabaseURI),
		JWTSecret:      v.GetString(keyJWTSecret),
		TokenStrategy:  strings.ToLower(strings.TrimSpace(v.GetString(keyTokenStrategy))),
		AllowedOrigins: splitList(cast.ToStringSlice(v.Get(keyAllowedOrigins))),
		AppEnv:         v.GetString(keyAppEnv),
		LogLevel:       v.GetString(keyLogLevel),
	}

	var err error

	if cfg.TokenTTL, err = cast.ToDurationE(v.Get(keyTokenTTL)); err != nil {
		return nil, fmt.Errorf("invalid token ttl: %w", err)
	}

	if cfg.ShutdownTimeout, err = cast.ToDurationE(v.Get(keyShutdownTimeout)); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile := v.GetString(keyJWTSecretFile); secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read jwt secret file: %w", err)
		}
		cfg.JWTSecret = strings.TrimSpace(string(content))
	}

	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{defaultAllowedOrigin}
	}

	switch cfg.StorageDriver {
	case StorageDriverPostgres, StorageDriverMySQL:
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}

	switch cfg.TokenStrategy {
	case TokenStrategyJWT, TokenStrategyHMAC:
	default:
		return nil, fmt.Errorf("unsupported token strategy %q", cfg.TokenStrategy)
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("jwt secret must be provided")
	}

	return cfg, nil
}

func splitList(items []string) []string {
	var out []string
	for _, item := range items {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
