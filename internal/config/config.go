// Package config handles loading the assistant bot's configuration.
//
// Sources, lowest to highest priority:
//  1. env-default values on the struct tags below
//  2. an optional YAML file (--config flag or CONFIG_PATH env var,
//     both resolved by the CLI layer and passed to MustLoad)
//  3. environment variables named in the env:"..." tags
//
// With no file at all the bot still starts: every field has a default.
package config

import (
	"fmt"
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Storage drivers understood by the bot.
const (
	DriverSQLite = "sqlite"
	DriverYAML   = "yaml"
)

// Config is the root configuration structure.
// Every field maps to a key in the YAML file AND can be overridden
// by the corresponding environment variable.
type Config struct {
	// Env controls log format and verbosity: "dev", "staging" or "prod".
	Env string `yaml:"env" env:"ENV" env-default:"prod"`

	// StoragePath is where the address book is persisted between runs.
	StoragePath string `yaml:"storage_path" env:"STORAGE_PATH" env-default:"addressbook.db"`

	// StorageDriver picks the persistence adapter: "sqlite" or "yaml".
	StorageDriver string `yaml:"storage_driver" env:"STORAGE_DRIVER" env-default:"sqlite"`
}

// Load reads the config from configPath (if non-empty) and the
// environment, and checks the values it cannot express as tags.
func Load(configPath string) (*Config, error) {
	var cfg Config

	if configPath == "" {
		// No file: defaults plus environment overrides only.
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config.Load: read env: %w", err)
		}
	} else {
		// Verify the file exists first so the message names the path
		// rather than a bare "open: no such file".
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("config.Load: config file does not exist: %s", configPath)
		}
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return nil, fmt.Errorf("config.Load: read %s: %w", configPath, err)
		}
	}

	switch cfg.StorageDriver {
	case DriverSQLite, DriverYAML:
	default:
		return nil, fmt.Errorf("config.Load: unknown storage_driver %q", cfg.StorageDriver)
	}

	return &cfg, nil
}

// MustLoad is Load for program startup: if it returns, the config is valid.
func MustLoad(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot read config: %s", err.Error())
	}
	return cfg
}
