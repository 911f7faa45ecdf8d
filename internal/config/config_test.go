package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.BreakpointPx != 1024 {
		t.Errorf("expected default breakpoint 1024, got %d", cfg.BreakpointPx)
	}
	if cfg.AutoExpandActive {
		t.Error("auto_expand_active should default to false")
	}
	if cfg.LogLevel != LogInfo {
		t.Errorf("expected default log_level %q, got %q", LogInfo, cfg.LogLevel)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.scenedash.yml")

	original := DefaultConfig()
	original.Port = 9000
	original.BreakpointPx = 768
	original.NavigationFile = "menu.yml"
	original.SortChildren = true
	original.AutoExpandActive = true
	original.SessionTTL = "5m"

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if *loaded != *original {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, original)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yml")
	if err := os.WriteFile(path, []byte("port: 3000\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != 3000 || cfg.BreakpointPx != 1024 || cfg.SessionTTL != "30m" {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("SCENEDASH_BREAKPOINT_PX", "900")
	t.Setenv("SCENEDASH_AUTO_EXPAND_ACTIVE", "true")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.BreakpointPx != 900 {
		t.Errorf("env override failed: got %d, want 900", loaded.BreakpointPx)
	}
	if !loaded.AutoExpandActive {
		t.Error("env override for auto_expand_active failed")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	if err := os.WriteFile(path, []byte("port: [unclosed\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero port", func(c *Config) { c.Port = 0 }},
		{"huge port", func(c *Config) { c.Port = 70000 }},
		{"zero breakpoint", func(c *Config) { c.BreakpointPx = 0 }},
		{"empty data dir", func(c *Config) { c.DataDir = "" }},
		{"bad ttl", func(c *Config) { c.SessionTTL = "soon" }},
		{"negative ttl", func(c *Config) { c.SessionTTL = "-1m" }},
		{"bad log level", func(c *Config) { c.LogLevel = "trace" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSessionTimeoutAndPaths(t *testing.T) {
	cfg := DefaultConfig()
	d, err := cfg.SessionTimeout()
	if err != nil || d != 30*time.Minute {
		t.Errorf("SessionTimeout() = %v, %v", d, err)
	}
	if got := cfg.DatabasePath(); got != filepath.Join(".scenedash", "scenedash.db") {
		t.Errorf("DatabasePath() = %q", got)
	}
	cfg.LogLevel = LogDebug
	if !cfg.Debug() {
		t.Error("Debug() should be true for debug level")
	}
}

func TestValidatePositiveInt(t *testing.T) {
	for _, s := range []string{"0", "-3", "abc", ""} {
		if validatePositiveInt(s) == nil {
			t.Errorf("validatePositiveInt(%q) should fail", s)
		}
	}
	if err := validatePositiveInt("8080"); err != nil {
		t.Errorf("validatePositiveInt(8080) = %v", err)
	}
}
