// Package config resolves the application configuration: which storage
// backend to use, where its data lives, and the log level.
//
// Precedence, highest first: command-line flags (applied by the caller on
// top of the loaded Config), environment variables, an optional YAML file,
// built-in defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Storage backend kinds.
const (
	StorageCSV    = "csv"
	StorageMemory = "memory"
	StorageSQLite = "sqlite"
)

// Defaults.
const (
	DefaultStorage  = StorageCSV
	DefaultDataPath = "data/calculations.csv"
	DefaultLogLevel = "info"
)

// Environment variable names.
const (
	EnvStorage  = "TALLY_STORAGE"
	EnvDataPath = "TALLY_DATA_PATH"
	EnvLogLevel = "TALLY_LOG_LEVEL"
)

// Config selects and locates the active storage backend.
type Config struct {
	// Storage is the backend kind: csv, memory, or sqlite.
	Storage string `yaml:"storage"`

	// DataPath is the backing file for the durable backends. Ignored by
	// the memory backend.
	DataPath string `yaml:"data_path"`

	// LogLevel is a zap level name: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Load resolves configuration from the optional YAML file at path (empty
// means no file), then applies environment overrides.
func Load(path string) (Config, error) {
	cfg := Config{
		Storage:  DefaultStorage,
		DataPath: DefaultDataPath,
		LogLevel: DefaultLogLevel,
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
	}

	if v := os.Getenv(EnvStorage); v != "" {
		cfg.Storage = v
	}
	if v := os.Getenv(EnvDataPath); v != "" {
		cfg.DataPath = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}

	return cfg, nil
}

// Validate checks that the storage kind is one of the known backends.
func (c Config) Validate() error {
	switch c.Storage {
	case StorageCSV, StorageMemory, StorageSQLite:
		return nil
	}
	return fmt.Errorf("unknown storage kind %q (must be csv, memory, or sqlite)", c.Storage)
}
