package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v, want defaults for missing file", err)
	}
	if cfg.CacheBackend != BackendJSONL {
		t.Errorf("CacheBackend = %q, want jsonl", cfg.CacheBackend)
	}
	if cfg.OutputDir != "." {
		t.Errorf("OutputDir = %q, want .", cfg.OutputDir)
	}
	if cfg.CachePath == "" {
		t.Error("CachePath is empty, want default location")
	}
}

func TestLoad_ReadsFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, ConfigDir, ConfigFile)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	content := `api_key: abc123
cache_backend: sqlite
output_dir: /tmp/saida
rate_limit: 0.5
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.APIKey != "abc123" {
		t.Errorf("APIKey = %q", cfg.APIKey)
	}
	if cfg.CacheBackend != BackendSQLite {
		t.Errorf("CacheBackend = %q, want sqlite", cfg.CacheBackend)
	}
	if cfg.OutputDir != "/tmp/saida" {
		t.Errorf("OutputDir = %q", cfg.OutputDir)
	}
	if cfg.RateLimit != 0.5 {
		t.Errorf("RateLimit = %v, want 0.5", cfg.RateLimit)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, ConfigDir, ConfigFile)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("{not yaml"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("Load() error = nil, want parse failure")
	}
}

func TestValidateBackend(t *testing.T) {
	tests := []struct {
		backend string
		wantErr bool
	}{
		{BackendJSONL, false},
		{BackendSQLite, false},
		{"redis", true},
		{"", true},
	}

	for _, tt := range tests {
		cfg := &Config{CacheBackend: tt.backend}
		if err := cfg.ValidateBackend(); (err != nil) != tt.wantErr {
			t.Errorf("ValidateBackend(%q) error = %v, wantErr %v", tt.backend, err, tt.wantErr)
		}
	}
}

func TestPath_RespectsXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	want := filepath.Join(dir, ConfigDir, ConfigFile)
	if got := Path(); got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}
