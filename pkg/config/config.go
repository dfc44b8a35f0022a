// Package config loads toolkit configuration from a TOML file.
//
// The file lives at ~/.config/permtower/config.toml by default and can be
// overridden with the --config flag. Every field has a sensible default, so
// a missing file is not an error.
//
// Example:
//
//	max_degree = 10
//
//	[cache]
//	backend = "file"          # "file", "memory", "redis", "none"
//	ttl_hours = 168
//
//	[cache.redis]
//	addr = "localhost:6379"
//
//	[store]
//	backend = "memory"        # "memory", "mongo"
//
//	[store.mongo]
//	uri = "mongodb://localhost:27017"
//
//	[server]
//	addr = ":8080"
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/permtower/pkg/errors"
)

// Config is the root configuration.
type Config struct {
	// MaxDegree caps full-group enumeration for CLI and API queries.
	MaxDegree int `toml:"max_degree"`

	Cache  CacheConfig  `toml:"cache"`
	Store  StoreConfig  `toml:"store"`
	Server ServerConfig `toml:"server"`
}

// CacheConfig selects and configures the memoization backend.
type CacheConfig struct {
	Backend  string      `toml:"backend"` // "file", "memory", "redis", "none"
	Dir      string      `toml:"dir"`     // file backend directory (default XDG cache)
	TTLHours int         `toml:"ttl_hours"`
	Redis    RedisConfig `toml:"redis"`
}

// RedisConfig configures the redis cache backend.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// StoreConfig selects and configures result persistence.
type StoreConfig struct {
	Backend string      `toml:"backend"` // "memory", "mongo"
	Mongo   MongoConfig `toml:"mongo"`
}

// MongoConfig configures the mongo store backend.
type MongoConfig struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// ServerConfig configures the API server.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		MaxDegree: 10,
		Cache: CacheConfig{
			Backend:  "file",
			TTLHours: 7 * 24,
			Redis:    RedisConfig{Addr: "localhost:6379"},
		},
		Store: StoreConfig{
			Backend: "memory",
			Mongo:   MongoConfig{URI: "mongodb://localhost:27017"},
		},
		Server: ServerConfig{Addr: ":8080"},
	}
}

// Load reads the config file at path, applying defaults for absent fields.
// An empty path means the default location; a missing file yields the
// defaults. A malformed file yields INVALID_CONFIG.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DefaultPath returns ~/.config/permtower/config.toml, honoring
// XDG_CONFIG_HOME.
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "permtower", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "permtower", "config.toml"), nil
}

func (c Config) validate() error {
	switch c.Cache.Backend {
	case "", "file", "memory", "redis", "none":
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend %q", c.Cache.Backend)
	}
	switch c.Store.Backend {
	case "", "memory", "mongo":
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown store backend %q", c.Store.Backend)
	}
	if c.MaxDegree < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "max_degree cannot be negative")
	}
	return nil
}
