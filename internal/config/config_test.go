package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/XavierBriggs/fortuna/services/pick-standardizer/internal/config"
)

func TestLoadPath_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := config.LoadPath("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Addr != ":8087" {
		t.Errorf("Expected default server addr ':8087', got '%s'", cfg.Server.Addr)
	}
	if cfg.Redis.URL != "redis://localhost:6380" {
		t.Errorf("Expected default redis URL, got '%s'", cfg.Redis.URL)
	}
	if cfg.Publish.Enabled {
		t.Error("Expected publishing disabled by default")
	}
	if cfg.Publish.DedupTTLMinutes != 60 {
		t.Errorf("Expected dedup TTL 60, got %d", cfg.Publish.DedupTTLMinutes)
	}
	if cfg.Aliases.Table != "team_aliases" {
		t.Errorf("Expected alias table 'team_aliases', got '%s'", cfg.Aliases.Table)
	}
	if !cfg.UnitMultiplier().Equal(decimal.NewFromInt(1000)) {
		t.Errorf("Expected unit multiplier 1000, got %s", cfg.UnitMultiplier())
	}
	if cfg.Engine.DefaultSport != "NBA" {
		t.Errorf("Expected default sport NBA, got '%s'", cfg.Engine.DefaultSport)
	}
	if len(cfg.Server.CORSOrigins) != 2 {
		t.Errorf("Expected 2 default CORS origins, got %v", cfg.Server.CORSOrigins)
	}
}

func TestLoadPath_CustomValues(t *testing.T) {
	os.Clearenv()
	t.Setenv("SERVER_ADDR", ":9090")
	t.Setenv("PUBLISH_ENABLED", "true")
	t.Setenv("UNIT_MULTIPLIER", "250")
	t.Setenv("CORS_ORIGINS", "https://a.example,https://b.example,https://c.example")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := config.LoadPath("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Addr != ":9090" {
		t.Errorf("Expected server addr ':9090', got '%s'", cfg.Server.Addr)
	}
	if !cfg.Publish.Enabled {
		t.Error("Expected publishing enabled")
	}
	if !cfg.UnitMultiplier().Equal(decimal.NewFromInt(250)) {
		t.Errorf("Expected unit multiplier 250, got %s", cfg.UnitMultiplier())
	}
	if len(cfg.Server.CORSOrigins) != 3 {
		t.Errorf("Expected 3 CORS origins, got %v", cfg.Server.CORSOrigins)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Expected json log format, got '%s'", cfg.Logging.Format)
	}
}

func TestLoadPath_YAMLFile(t *testing.T) {
	os.Clearenv()

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  addr: ":7000"
aliases:
  file: /etc/aliases.yaml
  table: custom_aliases
engine:
  default_sport: NFL
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := config.LoadPath(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Addr != ":7000" {
		t.Errorf("Expected server addr ':7000', got '%s'", cfg.Server.Addr)
	}
	if cfg.Aliases.File != "/etc/aliases.yaml" || cfg.Aliases.Table != "custom_aliases" {
		t.Errorf("unexpected alias config: %+v", cfg.Aliases)
	}
	if cfg.Engine.DefaultSport != "NFL" {
		t.Errorf("Expected default sport NFL, got '%s'", cfg.Engine.DefaultSport)
	}
	if cfg.Redis.URL != "redis://localhost:6380" {
		t.Errorf("Expected default redis URL for unset key, got '%s'", cfg.Redis.URL)
	}
}

func TestLoadPath_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"Zero unit multiplier", "UNIT_MULTIPLIER", "0"},
		{"Non-numeric unit multiplier", "UNIT_MULTIPLIER", "lots"},
		{"Unknown log format", "LOG_FORMAT", "xml"},
		{"Negative dedup TTL", "DEDUP_TTL_MINUTES", "-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			t.Setenv(tt.key, tt.val)

			if _, err := config.LoadPath(""); err == nil {
				t.Errorf("expected error for %s=%s", tt.key, tt.val)
			}
		})
	}
}

func TestLoadPath_MissingFile(t *testing.T) {
	os.Clearenv()

	if _, err := config.LoadPath(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}
