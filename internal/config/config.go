// Package config assembles server settings from an optional TOML file,
// a .env file and the process environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config holds every setting the server reads at startup.
type Config struct {
	Port          int    `toml:"port"`
	DataDir       string `toml:"data_dir"`
	StorageDriver string `toml:"storage_driver"`
	SQLitePath    string `toml:"sqlite_path"`
	DatabaseURL   string `toml:"database_url"`
	FrontendURL   string `toml:"frontend_url"`
	LogLevel      string `toml:"log_level"`
}

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	return Config{
		Port:          3000,
		DataDir:       "./data",
		StorageDriver: "json",
		FrontendURL:   "*",
		LogLevel:      "INFO",
	}
}

// Addr is the listen address for http.Server.
func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

// Load reads .env (if present), then CONFIG_FILE (if set), then applies
// environment overrides and validates the result.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return load(os.Getenv)
}

func load(getenv func(string) string) (*Config, error) {
	cfg := Defaults()

	if path := getenv("CONFIG_FILE"); path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	if v := getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("config: PORT %q is not a number", v)
		}
		cfg.Port = port
	}
	setString(&cfg.DataDir, getenv("DATA_DIR"))
	setString(&cfg.StorageDriver, getenv("STORAGE_DRIVER"))
	setString(&cfg.SQLitePath, getenv("SQLITE_PATH"))
	setString(&cfg.DatabaseURL, getenv("DATABASE_URL"))
	setString(&cfg.FrontendURL, getenv("FRONTEND_URL"))
	setString(&cfg.LogLevel, getenv("LOG_LEVEL"))

	if cfg.SQLitePath == "" {
		cfg.SQLitePath = filepath.Join(cfg.DataDir, "webnova.db")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// Validate checks the settings that would otherwise fail late at startup.
func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config: port %d out of range", c.Port)
	}
	switch c.StorageDriver {
	case "json":
		if c.DataDir == "" {
			return errors.New("config: DATA_DIR is required for the json driver")
		}
	case "sqlite":
	case "postgres":
		if c.DatabaseURL == "" {
			return errors.New("config: DATABASE_URL is required for the postgres driver")
		}
	default:
		return fmt.Errorf("config: unknown storage driver %q", c.StorageDriver)
	}
	return nil
}
