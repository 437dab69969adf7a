package config

import (
	"os"
	"testing"
	"time"

	"digipet/internal/platform/logger"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "READ_TIMEOUT", "WRITE_TIMEOUT", "LOG_LEVEL", "LOG_FORMAT", "APP_NAME", "DB_DSN", "SQLITE_PATH", "HATCH_ON_START"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr() != ":8080" {
		t.Fatalf("expected :8080, got %s", cfg.Addr())
	}
	if cfg.ReadTimeout != 5*time.Second || cfg.WriteTimeout != 10*time.Second {
		t.Fatalf("unexpected timeouts %v/%v", cfg.ReadTimeout, cfg.WriteTimeout)
	}
	if !cfg.HatchOnStart {
		t.Fatalf("expected HatchOnStart by default")
	}
	if cfg.AppName != "digipet" {
		t.Fatalf("unexpected app name %q", cfg.AppName)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("SQLITE_PATH", "/tmp/digipet.db")
	t.Setenv("HATCH_ON_START", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr() != ":9090" || cfg.SQLitePath != "/tmp/digipet.db" || cfg.HatchOnStart {
		t.Fatalf("unexpected config %+v", cfg)
	}

	opts := cfg.LoggerOptions()
	if opts.Level != logger.Debug || opts.Format != logger.FormatJSON {
		t.Fatalf("unexpected logger options %+v", opts)
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("PORT", "70000")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for out of range port")
	}

	t.Setenv("PORT", "abc")
	if _, err := Load(); err == nil {
		t.Fatalf("expected parse error")
	}
}
