package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	appName   = "photogrid"
	envPrefix = "PHOTOGRID_"
)

type Config struct {
	ImageProtocol string `koanf:"image_protocol"` // "auto", "kitty", "sixel", or "none"

	Flickr FlickrConfig `koanf:"flickr"`
	Grid   GridConfig   `koanf:"grid"`
	Cache  CacheConfig  `koanf:"cache"`
	Log    LogConfig    `koanf:"log"`
}

// FlickrConfig holds the Flickr API settings.
type FlickrConfig struct {
	APIKey            string  `koanf:"api_key"`
	BaseURL           string  `koanf:"base_url"`            // REST endpoint (default: api.flickr.com)
	PerPage           int     `koanf:"per_page"`            // results per search (1-500, default: 20)
	RequestsPerSecond float64 `koanf:"requests_per_second"` // API + image requests (default: 10)
}

// GridConfig holds the photo grid layout settings.
type GridConfig struct {
	Columns              int  `koanf:"columns"`               // cells per row (1-12, default: 3)
	Padding              *int `koanf:"padding"`               // margin and gap in columns (default: 1)
	ThumbnailConcurrency int  `koanf:"thumbnail_concurrency"` // parallel downloads per search (default: 4)
}

// CacheConfig holds thumbnail cache settings.
type CacheConfig struct {
	Dir        string `koanf:"dir"`         // on-disk cache (default: user cache dir)
	MaxEntries int    `koanf:"max_entries"` // decoded thumbnails kept in memory (default: 500)
}

// LogConfig holds logging settings.
type LogConfig struct {
	File  string `koanf:"file"`  // default: $XDG_STATE_HOME/photogrid/photogrid.log
	Level string `koanf:"level"` // "debug", "info", "warn", "error" (default: info)
}

// Load reads the configuration. When path is empty the user config and
// ./config.toml are read in that order (last wins); otherwise only path is
// read and must exist. PHOTOGRID_* environment variables override files.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(expandPath(path)), toml.Parser()); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	} else {
		for _, p := range getConfigPaths() {
			if _, err := os.Stat(p); err == nil {
				if err := k.Load(file.Provider(p), toml.Parser()); err != nil {
					return nil, fmt.Errorf("load %s: %w", p, err)
				}
			}
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := &Config{
		ImageProtocol: "auto",
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.Cache.Dir = expandPath(cfg.Cache.Dir)
	cfg.Log.File = expandPath(cfg.Log.File)
	cfg.Flickr.BaseURL = strings.TrimSpace(cfg.Flickr.BaseURL)

	return cfg, nil
}

// envKey maps PHOTOGRID_FLICKR_API_KEY to flickr.api_key. Variables that
// don't name a section map to a top-level key.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
	section, rest, ok := strings.Cut(s, "_")
	if !ok {
		return s
	}
	switch section {
	case "flickr", "grid", "cache", "log":
		return section + "." + rest
	}
	return s
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/photogrid/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", appName, "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// HasFlickrConfig returns true if a Flickr API key is configured.
func (c *Config) HasFlickrConfig() bool {
	return strings.TrimSpace(c.Flickr.APIKey) != ""
}

// GetFlickrConfig returns the Flickr configuration with defaults applied.
func (c *Config) GetFlickrConfig() FlickrConfig {
	cfg := c.Flickr
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	if cfg.PerPage <= 0 || cfg.PerPage > 500 {
		cfg.PerPage = 20
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = 10
	}
	return cfg
}

// GetGridConfig returns the grid configuration with defaults applied.
func (c *Config) GetGridConfig() GridConfig {
	cfg := c.Grid
	if cfg.Columns <= 0 || cfg.Columns > 12 {
		cfg.Columns = 3
	}
	if cfg.Padding == nil || *cfg.Padding < 0 {
		padding := 1
		cfg.Padding = &padding
	}
	if cfg.ThumbnailConcurrency <= 0 {
		cfg.ThumbnailConcurrency = 4
	}
	return cfg
}

// GetCacheConfig returns the cache configuration with defaults applied.
func (c *Config) GetCacheConfig() CacheConfig {
	cfg := c.Cache
	if cfg.MaxEntries <= 0 {
		cfg.MaxEntries = 500
	}
	return cfg
}

// GetLogConfig returns the log configuration with defaults applied.
// An empty File means the default XDG state location.
func (c *Config) GetLogConfig() LogConfig {
	cfg := c.Log
	switch strings.ToLower(cfg.Level) {
	case "debug", "info", "warn", "error":
		cfg.Level = strings.ToLower(cfg.Level)
	default:
		cfg.Level = "info"
	}
	return cfg
}
