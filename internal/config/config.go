package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// Config captures all runtime configuration. Defaults are layered first, then
// overridden by environment variables of the same (upper-cased) name.
type Config struct {
	Port              string `koanf:"port"`
	APIKey            string `koanf:"api_key"`
	DBURL             string `koanf:"db_url"`
	LogLevel          string `koanf:"log_level"`
	LogFormat         string `koanf:"log_format"`
	ReadTimeoutSecs   int    `koanf:"server_read_timeout"`
	WriteTimeoutSecs  int    `koanf:"server_write_timeout"`
	IdleTimeoutSecs   int    `koanf:"server_idle_timeout"`
	DBMaxConns        int    `koanf:"db_max_conns"`
	DBMinConns        int    `koanf:"db_min_conns"`
	DBMaxIdleSecs     int    `koanf:"db_max_conn_idle_secs"`
	DBMaxLifeSecs     int    `koanf:"db_max_conn_lifetime_secs"`
	DBConnTimeoutSecs int    `koanf:"db_conn_timeout_secs"`
}

func defaults() Config {
	return Config{
		Port:              "8080",
		LogLevel:          "info",
		LogFormat:         "json",
		ReadTimeoutSecs:   15,
		WriteTimeoutSecs:  15,
		IdleTimeoutSecs:   60,
		DBMaxConns:        20,
		DBMinConns:        2,
		DBMaxIdleSecs:     300,
		DBMaxLifeSecs:     3600,
		DBConnTimeoutSecs: 10,
	}
}

// Load reads configuration from the environment over built-in defaults and
// validates the result.
func Load() (Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaults(), "koanf"), nil); err != nil {
		return Config{}, fmt.Errorf("load defaults: %w", err)
	}
	if err := k.Load(env.Provider("", ".", strings.ToLower), nil); err != nil {
		return Config{}, fmt.Errorf("load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("API_KEY is required")
	}
	if c.DBURL == "" {
		return fmt.Errorf("DB_URL is required")
	}
	if c.ReadTimeoutSecs <= 0 || c.WriteTimeoutSecs <= 0 || c.IdleTimeoutSecs <= 0 {
		return fmt.Errorf("server timeouts must be positive")
	}
	if c.DBMaxConns <= 0 {
		return fmt.Errorf("DB_MAX_CONNS must be positive")
	}
	if c.DBMinConns < 0 {
		return fmt.Errorf("DB_MIN_CONNS must be non-negative")
	}
	if c.DBMinConns > c.DBMaxConns {
		return fmt.Errorf("DB_MIN_CONNS cannot exceed DB_MAX_CONNS")
	}
	return nil
}
