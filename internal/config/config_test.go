//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/photos",
			expected: filepath.Join(home, "photos"),
		},
		{
			name:     "tilde with nested path",
			input:    "~/cache/photogrid/thumbs",
			expected: filepath.Join(home, "cache", "photogrid", "thumbs"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/var/cache/photogrid",
			expected: "/var/cache/photogrid",
		},
		{
			name:     "relative path unchanged",
			input:    "cache/thumbs",
			expected: "cache/thumbs",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: home,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	if len(paths) == 0 {
		t.Fatal("getConfigPaths() returned empty slice")
	}

	lastPath := paths[len(paths)-1]
	if lastPath != "config.toml" {
		t.Errorf("last config path = %q, want %q", lastPath, "config.toml")
	}

	if home, err := os.UserHomeDir(); err == nil {
		expectedFirst := filepath.Join(home, ".config", "photogrid", "config.toml")
		if paths[0] != expectedFirst {
			t.Errorf("first config path = %q, want %q", paths[0], expectedFirst)
		}
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_File(t *testing.T) {
	t.Setenv("PHOTOGRID_FLICKR_API_KEY", "")
	path := writeConfig(t, `
image_protocol = "sixel"

[flickr]
api_key = "abc123"
per_page = 50

[grid]
columns = 4
padding = 0

[cache]
max_entries = 100

[log]
level = "debug"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.ImageProtocol != "sixel" {
		t.Errorf("ImageProtocol = %q, want sixel", cfg.ImageProtocol)
	}
	if cfg.Flickr.APIKey != "abc123" {
		t.Errorf("APIKey = %q, want abc123", cfg.Flickr.APIKey)
	}
	if cfg.Flickr.PerPage != 50 {
		t.Errorf("PerPage = %d, want 50", cfg.Flickr.PerPage)
	}
	grid := cfg.GetGridConfig()
	if grid.Columns != 4 {
		t.Errorf("Columns = %d, want 4", grid.Columns)
	}
	if *grid.Padding != 0 {
		t.Errorf("Padding = %d, want 0 (explicit zero is kept)", *grid.Padding)
	}
	if cfg.GetCacheConfig().MaxEntries != 100 {
		t.Errorf("MaxEntries = %d, want 100", cfg.Cache.MaxEntries)
	}
	if cfg.GetLogConfig().Level != "debug" {
		t.Errorf("Level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := writeConfig(t, "[flickr\napi_key = ")
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "[flickr]\napi_key = \"from-file\"\n")
	t.Setenv("PHOTOGRID_FLICKR_API_KEY", "from-env")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Flickr.APIKey != "from-env" {
		t.Errorf("APIKey = %q, want from-env", cfg.Flickr.APIKey)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PHOTOGRID_FLICKR_API_KEY", "")
	path := writeConfig(t, "")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.ImageProtocol != "auto" {
		t.Errorf("ImageProtocol = %q, want auto", cfg.ImageProtocol)
	}
	if cfg.HasFlickrConfig() {
		t.Error("HasFlickrConfig() = true with no key")
	}
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"PHOTOGRID_FLICKR_API_KEY", "flickr.api_key"},
		{"PHOTOGRID_GRID_COLUMNS", "grid.columns"},
		{"PHOTOGRID_CACHE_MAX_ENTRIES", "cache.max_entries"},
		{"PHOTOGRID_LOG_LEVEL", "log.level"},
		{"PHOTOGRID_IMAGE_PROTOCOL", "image_protocol"},
		{"PHOTOGRID_DEBUG", "debug"},
	}

	for _, tt := range tests {
		if got := envKey(tt.input); got != tt.want {
			t.Errorf("envKey(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestHasFlickrConfig(t *testing.T) {
	tests := []struct {
		name     string
		config   Config
		expected bool
	}{
		{"key set", Config{Flickr: FlickrConfig{APIKey: "k"}}, true},
		{"empty key", Config{}, false},
		{"blank key", Config{Flickr: FlickrConfig{APIKey: "   "}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.config.HasFlickrConfig(); got != tt.expected {
				t.Errorf("HasFlickrConfig() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetFlickrConfig_Defaults(t *testing.T) {
	tests := []struct {
		name        string
		input       FlickrConfig
		wantPerPage int
		wantRate    float64
	}{
		{"zero values", FlickrConfig{}, 20, 10},
		{"per page too large", FlickrConfig{PerPage: 1000}, 20, 10},
		{"negative rate", FlickrConfig{RequestsPerSecond: -1}, 20, 10},
		{"valid values", FlickrConfig{PerPage: 40, RequestsPerSecond: 2.5}, 40, 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Flickr: tt.input}
			got := cfg.GetFlickrConfig()
			if got.PerPage != tt.wantPerPage {
				t.Errorf("PerPage = %d, want %d", got.PerPage, tt.wantPerPage)
			}
			if got.RequestsPerSecond != tt.wantRate {
				t.Errorf("RequestsPerSecond = %v, want %v", got.RequestsPerSecond, tt.wantRate)
			}
		})
	}
}

func TestGetGridConfig_Defaults(t *testing.T) {
	neg := -2
	tests := []struct {
		name        string
		input       GridConfig
		wantColumns int
		wantPadding int
		wantConc    int
	}{
		{"zero values", GridConfig{}, 3, 1, 4},
		{"too many columns", GridConfig{Columns: 40}, 3, 1, 4},
		{"negative padding", GridConfig{Padding: &neg}, 3, 1, 4},
		{"valid values", GridConfig{Columns: 5, Padding: new(int), ThumbnailConcurrency: 8}, 5, 0, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Grid: tt.input}
			got := cfg.GetGridConfig()
			if got.Columns != tt.wantColumns {
				t.Errorf("Columns = %d, want %d", got.Columns, tt.wantColumns)
			}
			if *got.Padding != tt.wantPadding {
				t.Errorf("Padding = %d, want %d", *got.Padding, tt.wantPadding)
			}
			if got.ThumbnailConcurrency != tt.wantConc {
				t.Errorf("ThumbnailConcurrency = %d, want %d", got.ThumbnailConcurrency, tt.wantConc)
			}
		})
	}
}

func TestGetLogConfig_Level(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", "info"},
		{"DEBUG", "debug"},
		{"warn", "warn"},
		{"verbose", "info"},
	}

	for _, tt := range tests {
		cfg := Config{Log: LogConfig{Level: tt.input}}
		if got := cfg.GetLogConfig().Level; got != tt.want {
			t.Errorf("GetLogConfig(%q).Level = %q, want %q", tt.input, got, tt.want)
		}
	}
}
