// File path: internal/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config collects the service settings. Values merge in precedence order:
// JSON file (VUAI_CONFIG_FILE), then environment, then defaults.
type Config struct {
	Addr       string `json:"addr"`
	SQLitePath string `json:"sqlite_path"`

	CacheTTL       time.Duration `json:"-"`
	CacheTTLString string        `json:"cache_ttl"`
	CacheCapacity  int           `json:"cache_capacity"`
	CacheKeyPrefix int           `json:"cache_key_prefix"`

	FetchLimit  int `json:"fetch_limit"`
	ResultLimit int `json:"result_limit"`

	ComposeTimeout       time.Duration `json:"-"`
	ComposeTimeoutString string        `json:"compose_timeout"`
}

func (c Config) Merge(override Config) Config {
	result := c
	if strings.TrimSpace(override.Addr) != "" {
		result.Addr = strings.TrimSpace(override.Addr)
	}
	if strings.TrimSpace(override.SQLitePath) != "" {
		result.SQLitePath = strings.TrimSpace(override.SQLitePath)
	}
	if override.CacheTTL > 0 {
		result.CacheTTL = override.CacheTTL
	}
	if strings.TrimSpace(override.CacheTTLString) != "" {
		result.CacheTTLString = strings.TrimSpace(override.CacheTTLString)
	}
	if override.CacheCapacity > 0 {
		result.CacheCapacity = override.CacheCapacity
	}
	if override.CacheKeyPrefix > 0 {
		result.CacheKeyPrefix = override.CacheKeyPrefix
	}
	if override.FetchLimit > 0 {
		result.FetchLimit = override.FetchLimit
	}
	if override.ResultLimit > 0 {
		result.ResultLimit = override.ResultLimit
	}
	if override.ComposeTimeout > 0 {
		result.ComposeTimeout = override.ComposeTimeout
	}
	if strings.TrimSpace(override.ComposeTimeoutString) != "" {
		result.ComposeTimeoutString = strings.TrimSpace(override.ComposeTimeoutString)
	}
	return result
}

func Load() (Config, error) {
	cfg := Config{}
	if path := strings.TrimSpace(os.Getenv("VUAI_CONFIG_FILE")); path != "" {
		fileCfg, err := loadFile(path)
		if err != nil {
			return Config{}, err
		}
		cfg = cfg.Merge(fileCfg)
	}
	envCfg, err := loadEnv()
	if err != nil {
		return Config{}, err
	}
	cfg = cfg.Merge(envCfg)
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.Addr) == "" {
		c.Addr = ":8080"
	}
	if strings.TrimSpace(c.SQLitePath) == "" {
		c.SQLitePath = "data/vuai.db"
	}
	if c.CacheTTL <= 0 {
		if c.CacheTTLString != "" {
			if parsed, err := time.ParseDuration(c.CacheTTLString); err == nil {
				c.CacheTTL = parsed
			}
		}
		if c.CacheTTL <= 0 {
			c.CacheTTL = 5 * time.Minute
		}
	}
	if c.CacheCapacity <= 0 {
		c.CacheCapacity = 256
	}
	if c.CacheKeyPrefix <= 0 {
		c.CacheKeyPrefix = 50
	}
	if c.FetchLimit <= 0 {
		c.FetchLimit = 10
	}
	if c.ResultLimit <= 0 {
		c.ResultLimit = 5
	}
	if c.ComposeTimeout <= 0 {
		if c.ComposeTimeoutString != "" {
			if parsed, err := time.ParseDuration(c.ComposeTimeoutString); err == nil {
				c.ComposeTimeout = parsed
			}
		}
		if c.ComposeTimeout <= 0 {
			c.ComposeTimeout = 10 * time.Second
		}
	}
}

func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func loadEnv() (Config, error) {
	cfg := Config{}
	if addr := strings.TrimSpace(os.Getenv("VUAI_ADDR")); addr != "" {
		cfg.Addr = addr
	}
	if path := strings.TrimSpace(os.Getenv("VUAI_SQLITE_PATH")); path != "" {
		cfg.SQLitePath = path
	}
	if ttl := strings.TrimSpace(os.Getenv("VUAI_CACHE_TTL")); ttl != "" {
		cfg.CacheTTLString = ttl
		if parsed, err := time.ParseDuration(ttl); err == nil {
			cfg.CacheTTL = parsed
		}
	}
	if capacity := strings.TrimSpace(os.Getenv("VUAI_CACHE_CAPACITY")); capacity != "" {
		value, err := strconv.Atoi(capacity)
		if err != nil {
			return Config{}, fmt.Errorf("parse VUAI_CACHE_CAPACITY: %w", err)
		}
		if value > 0 {
			cfg.CacheCapacity = value
		}
	}
	if prefix := strings.TrimSpace(os.Getenv("VUAI_CACHE_KEY_PREFIX")); prefix != "" {
		value, err := strconv.Atoi(prefix)
		if err != nil {
			return Config{}, fmt.Errorf("parse VUAI_CACHE_KEY_PREFIX: %w", err)
		}
		if value > 0 {
			cfg.CacheKeyPrefix = value
		}
	}
	if fetch := strings.TrimSpace(os.Getenv("VUAI_FETCH_LIMIT")); fetch != "" {
		value, err := strconv.Atoi(fetch)
		if err != nil {
			return Config{}, fmt.Errorf("parse VUAI_FETCH_LIMIT: %w", err)
		}
		if value > 0 {
			cfg.FetchLimit = value
		}
	}
	if results := strings.TrimSpace(os.Getenv("VUAI_RESULT_LIMIT")); results != "" {
		value, err := strconv.Atoi(results)
		if err != nil {
			return Config{}, fmt.Errorf("parse VUAI_RESULT_LIMIT: %w", err)
		}
		if value > 0 {
			cfg.ResultLimit = value
		}
	}
	if timeout := strings.TrimSpace(os.Getenv("VUAI_COMPOSE_TIMEOUT")); timeout != "" {
		cfg.ComposeTimeoutString = timeout
		if parsed, err := time.ParseDuration(timeout); err == nil {
			cfg.ComposeTimeout = parsed
		}
	}
	return cfg, nil
}
