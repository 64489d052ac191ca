package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Fetch    FetchConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

type FetchConfig struct {
	IntervalHours  int
	RemotiveSearch string
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:     opt("DB_HOST"),
		DBPort:     opt("DB_PORT"),
		DBName:     opt("DB_NAME"),
		DBUser:     opt("DB_USER"),
		DBPassword: opt("DB_PASSWORD"),
		DBSSLMode:  opt("DB_SSL_MODE"),

		ConnectTimeout:        optSeconds("DB_CONNECT_TIMEOUT_SECONDS"),
		PoolMaxConns:          optInt32("DB_POOL_MAX_CONNS"),
		PoolMinConns:          optInt32("DB_POOL_MIN_CONNS"),
		PoolMaxConnLifetime:   optSeconds("DB_POOL_MAX_CONN_LIFETIME_SECONDS"),
		PoolMaxConnIdleTime:   optSeconds("DB_POOL_MAX_CONN_IDLE_SECONDS"),
		PoolHealthCheckPeriod: optSeconds("DB_POOL_HEALTHCHECK_SECONDS"),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST"),
		Port:     opt("REDIS_PORT"),
		Password: opt("REDIS_PASSWORD"),
	}

	cfg.Fetch = FetchConfig{
		IntervalHours:  optIntDefault("FETCH_INTERVAL_HOURS", 6),
		RemotiveSearch: opt("REMOTIVE_SEARCH"),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

// HasDatabase reports whether enough connection settings are present to reach
// Postgres. When false the app falls back to in-memory repositories.
func (c Config) HasDatabase() bool {
	return strings.TrimSpace(c.Database.DBHost) != ""
}

func optSeconds(key string) time.Duration {
	v := optIntDefault(key, 0)
	if v <= 0 {
		return 0
	}
	return time.Duration(v) * time.Second
}

func optInt32(key string) int32 {
	return int32(optIntDefault(key, 0))
}

func optIntDefault(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
