package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the complete application configuration. Values come from an
// optional TOML file and are overridden by environment variables.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Cache    CacheConfig    `toml:"cache"`
}

type ServerConfig struct {
	Port int `toml:"port"`
}

type DatabaseConfig struct {
	URL string `toml:"url"`
}

type CacheConfig struct {
	Enabled         bool   `toml:"enabled"`
	RedisAddr       string `toml:"redis_addr"`
	RedisPassword   string `toml:"redis_password"`
	RedisDB         int    `toml:"redis_db"`
	AlertTTLSeconds int    `toml:"alert_ttl_seconds"`
}

// AlertTTL is how long computed alert reports stay cached.
func (c CacheConfig) AlertTTL() time.Duration {
	return time.Duration(c.AlertTTLSeconds) * time.Second
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{Port: 8080},
		Cache: CacheConfig{
			RedisAddr:       "localhost:6379",
			AlertTTLSeconds: 30,
		},
	}
}

// Load reads the TOML file at path (skipped when path is empty) and applies
// environment overrides on top.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.Database.URL = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Port = port
		}
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Cache.RedisAddr = v
		c.Cache.Enabled = true
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Cache.RedisPassword = v
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if db, err := strconv.Atoi(v); err == nil {
			c.Cache.RedisDB = db
		}
	}
}
