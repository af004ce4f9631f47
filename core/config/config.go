package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// EngineConfig holds connection parameters for one relational engine.
type EngineConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

// Config is the full environment-driven configuration of the gateway.
type Config struct {
	// HTTP listen address. Binding to the wildcard address is refused.
	Host string
	Port string

	// MSSQL is the procedure host, Postgres the read store.
	MSSQL    EngineConfig
	Postgres EngineConfig

	// AllowedNetworks overrides the default local-network CIDR list.
	AllowedNetworks []string

	LogLevel string
	Env      string
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Host: envOr("SERVER_HOST", "127.0.0.1"),
		Port: envOr("PORT", "5000"),
		MSSQL: EngineConfig{
			Host:     os.Getenv("MSSQL_HOST"),
			Port:     envInt("MSSQL_PORT", 1433),
			User:     os.Getenv("MSSQL_USER"),
			Password: os.Getenv("MSSQL_PASSWORD"),
			Database: os.Getenv("MSSQL_DB"),
		},
		Postgres: EngineConfig{
			Host:     envOr("POSTGRES_HOST", "localhost"),
			Port:     envInt("POSTGRES_PORT", 5432),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			Database: os.Getenv("POSTGRES_DB"),
		},
		LogLevel: envOr("LOG_LEVEL", "info"),
		Env:      envOr("APP_ENV", "production"),
	}

	if networks := os.Getenv("ALLOWED_NETWORKS"); networks != "" {
		for _, n := range strings.Split(networks, ",") {
			if n = strings.TrimSpace(n); n != "" {
				cfg.AllowedNetworks = append(cfg.AllowedNetworks, n)
			}
		}
	}

	// The service must only be reachable from the local network; exposing
	// it on the wildcard address bypasses the deployment's network boundary.
	if cfg.Host == "0.0.0.0" || cfg.Host == "::" {
		return nil, fmt.Errorf("SERVER_HOST must not be the wildcard address, use a specific IP or 127.0.0.1")
	}

	return cfg, nil
}

// Production reports whether the gateway runs in production mode.
// Stack traces are only attached to error responses outside of it.
func (c *Config) Production() bool {
	return c.Env == "production"
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
