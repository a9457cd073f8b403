package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/shopspring/decimal"
)

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr        string   `yaml:"addr" env:"SERVER_ADDR" env-default:":8087"`
	CORSOrigins []string `yaml:"cors_origins" env:"CORS_ORIGINS" env-separator:"," env-default:"http://localhost:3000,http://localhost:3001"`
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	URL      string `yaml:"url" env:"REDIS_URL" env-default:"redis://localhost:6380"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
}

// PublishConfig controls the standardized pick streams
type PublishConfig struct {
	Enabled         bool `yaml:"enabled" env:"PUBLISH_ENABLED" env-default:"false"`
	DedupTTLMinutes int  `yaml:"dedup_ttl_minutes" env:"DEDUP_TTL_MINUTES" env-default:"60"`
}

// AliasConfig lists the alias table extension sources. Empty values disable a source.
type AliasConfig struct {
	File         string `yaml:"file" env:"ALIAS_FILE"`
	URL          string `yaml:"url" env:"ALIAS_URL"`
	RedisEnabled bool   `yaml:"redis_enabled" env:"ALIAS_REDIS_ENABLED" env-default:"false"`
	DSN          string `yaml:"dsn" env:"ALIAS_DSN"`
	Table        string `yaml:"table" env:"ALIAS_TABLE" env-default:"team_aliases"`
}

// EngineConfig holds standardization defaults
type EngineConfig struct {
	UnitMultiplier string `yaml:"unit_multiplier" env:"UNIT_MULTIPLIER" env-default:"1000"`
	DefaultSport   string `yaml:"default_sport" env:"DEFAULT_SPORT" env-default:"NBA"`
}

// LoggingConfig selects the log handler and level
type LoggingConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// Config holds all application configuration
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Redis   RedisConfig   `yaml:"redis"`
	Publish PublishConfig `yaml:"publish"`
	Aliases AliasConfig   `yaml:"aliases"`
	Engine  EngineConfig  `yaml:"engine"`
	Logging LoggingConfig `yaml:"logging"`
}

// Load reads configuration from the YAML file named by CONFIG_PATH, when set,
// with environment variables taking precedence
func Load() (*Config, error) {
	return LoadPath(os.Getenv("CONFIG_PATH"))
}

// LoadPath reads configuration from path, or from the environment alone when
// path is empty
func LoadPath(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("cannot read config: %w", err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("cannot read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values cleanenv cannot
func (c *Config) Validate() error {
	m, err := decimal.NewFromString(strings.TrimSpace(c.Engine.UnitMultiplier))
	if err != nil || !m.IsPositive() {
		return fmt.Errorf("invalid UNIT_MULTIPLIER %q: must be a positive number", c.Engine.UnitMultiplier)
	}

	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid LOG_FORMAT %q: must be text or json", c.Logging.Format)
	}

	if c.Publish.DedupTTLMinutes < 0 {
		return fmt.Errorf("invalid DEDUP_TTL_MINUTES %d", c.Publish.DedupTTLMinutes)
	}
	return nil
}

// UnitMultiplier returns the configured unit multiplier
func (c *Config) UnitMultiplier() decimal.Decimal {
	m, err := decimal.NewFromString(strings.TrimSpace(c.Engine.UnitMultiplier))
	if err != nil || !m.IsPositive() {
		return decimal.NewFromInt(1000)
	}
	return m
}
