package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestManagerCreatesAndUpdates(t *testing.T) {
	dir := t.TempDir()
	mgr, err := NewManager(WithConfigDir(dir))
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	path := filepath.Join(dir, "config.yaml")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not created: %v", err)
	}

	cfg := mgr.Get()
	if cfg.MastraURL != DefaultMastraURL {
		t.Fatalf("expected default mastra url %s, got %s", DefaultMastraURL, cfg.MastraURL)
	}

	cfg.MastraURL = "http://example.com:4862"
	cfg.DefaultAgent = "weather"
	if err := mgr.Update(cfg); err != nil {
		t.Fatalf("Update: %v", err)
	}

	updated := mgr.Get()
	if updated.DefaultAgent != "weather" {
		t.Fatalf("expected default agent weather, got %q", updated.DefaultAgent)
	}

	// A fresh manager over the same file must see the persisted values.
	mgr2, err := NewManager(WithConfigPath(path))
	if err != nil {
		t.Fatalf("NewManager reload: %v", err)
	}
	if got := mgr2.Get().MastraURL; got != "http://example.com:4862" {
		t.Fatalf("expected persisted url, got %s", got)
	}
}

func TestManagerRejectsInvalidURL(t *testing.T) {
	dir := t.TempDir()
	mgr, err := NewManager(WithConfigDir(dir))
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	cfg := mgr.Get()
	cfg.MastraURL = "not a url"
	if err := mgr.Update(cfg); err == nil {
		t.Fatalf("expected validation error for invalid url")
	}

	cfg.MastraURL = ""
	if err := mgr.Update(cfg); err == nil {
		t.Fatalf("expected validation error for empty url")
	}
}

func TestManagerEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("VARGOS_CLI_MASTRA_URL", "http://override:9999")
	t.Setenv("VARGOS_CLI_AGENT", "env-agent")

	mgr, err := NewManager(WithConfigDir(dir))
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	cfg := mgr.Get()
	if cfg.MastraURL != "http://override:9999" {
		t.Fatalf("env override not applied, got %s", cfg.MastraURL)
	}
	if cfg.DefaultAgent != "env-agent" {
		t.Fatalf("agent env override not applied, got %q", cfg.DefaultAgent)
	}
}

func TestManagerWatchReloads(t *testing.T) {
	dir := t.TempDir()
	mgr, err := NewManager(WithConfigDir(dir))
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan Config, 1)
	if err := mgr.Watch(ctx, func(cfg Config) {
		reloaded <- cfg
	}); err != nil {
		t.Fatalf("Watch: %v", err)
	}

	cfg := mgr.Get()
	cfg.DefaultAgent = "changed"

	if err := writeConfigFile(mgr.Path(), cfg); err != nil {
		t.Fatalf("writeConfigFile: %v", err)
	}

	select {
	case got := <-reloaded:
		if got.DefaultAgent != "changed" {
			t.Fatalf("expected reloaded agent changed, got %q", got.DefaultAgent)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("watcher did not fire on config change")
	}
}
