package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Digest    DigestConfig    `yaml:"digest"`
	Messaging MessagingConfig `yaml:"messaging"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"http://localhost:5173"`
	FrontendURL      string `yaml:"frontend_url"      env:"FRONTEND_URL"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// Origins returns the configured origins with FrontendURL appended when set.
func (c CORSConfig) Origins() string {
	if c.FrontendURL == "" || strings.Contains(c.AllowedOrigins, c.FrontendURL) {
		return c.AllowedOrigins
	}
	if c.AllowedOrigins == "" {
		return c.FrontendURL
	}
	return c.AllowedOrigins + "," + c.FrontendURL
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"PORT"                    env-default:"5000"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_URL"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
}

// RedisConfig holds the connection used for digest delivery claims.
// When disabled, claims are not coordinated across replicas.
type RedisConfig struct {
	Enabled  bool   `yaml:"enabled"   env:"REDIS_ENABLED"   env-default:"false"`
	Addr     string `yaml:"addr"      env:"REDIS_ADDR"      env-default:"localhost:6379"`
	Password string `yaml:"password"  env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db"        env:"REDIS_DB"        env-default:"0"`
	PoolSize int    `yaml:"pool_size" env:"REDIS_POOL_SIZE" env-default:"10"`
}

// AuthConfig holds token and password settings.
type AuthConfig struct {
	JWTSecret        string        `yaml:"jwt_secret"         env:"AUTH_JWT_SECRET"         env-required:"true"`
	JWTIssuer        string        `yaml:"jwt_issuer"         env:"AUTH_JWT_ISSUER"         env-default:"biztrack"`
	AccessTokenTTL   time.Duration `yaml:"access_token_ttl"   env:"AUTH_ACCESS_TOKEN_TTL"   env-default:"24h"`
	PasswordHashCost int           `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST" env-default:"12"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig limits requests to the auth endpoints per client IP.
type RateLimitConfig struct {
	AuthPerMinute int `yaml:"auth_per_minute" env:"RATE_LIMIT_AUTH_PER_MINUTE" env-default:"20"`
}

// DigestConfig controls the daily agenda job.
type DigestConfig struct {
	Enabled        bool          `yaml:"enabled"          env:"DIGEST_ENABLED"          env-default:"true"`
	Timezone       string        `yaml:"timezone"         env:"DIGEST_TIMEZONE"         env-default:"Local"`
	TickInterval   time.Duration `yaml:"tick_interval"    env:"DIGEST_TICK_INTERVAL"    env-default:"1m"`
	PerUserTimeout time.Duration `yaml:"per_user_timeout" env:"DIGEST_PER_USER_TIMEOUT" env-default:"10s"`
	ClaimTTL       time.Duration `yaml:"claim_ttl"        env:"DIGEST_CLAIM_TTL"        env-default:"24h"`
	Workers        int           `yaml:"workers"          env:"DIGEST_WORKERS"          env-default:"4"`
}

// Location resolves Timezone. Validate has already checked it.
func (c DigestConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// Messaging drivers.
const (
	MessagingDriverLog     = "log"
	MessagingDriverWebhook = "webhook"
)

// MessagingConfig selects how digests are delivered.
type MessagingConfig struct {
	Driver     string        `yaml:"driver"      env:"MESSAGING_DRIVER"      env-default:"log"`
	WebhookURL string        `yaml:"webhook_url" env:"MESSAGING_WEBHOOK_URL"`
	Token      string        `yaml:"token"       env:"MESSAGING_TOKEN"`
	Timeout    time.Duration `yaml:"timeout"     env:"MESSAGING_TIMEOUT"     env-default:"5s"`
}
