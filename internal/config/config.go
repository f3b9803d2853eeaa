package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/saportinsta65/life-rpg/internal/storage"
)

// Config holds the environment-driven settings.
type Config struct {
	// DBPath overrides the database location (default ~/.liferpg.db).
	DBPath string `env:"LIFERPG_DB"`
	// SnapshotKey overrides the storage name the state tree is saved under.
	SnapshotKey string `env:"LIFERPG_SNAPSHOT_KEY"`
}

// Load parses the environment and fills in defaults.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.DBPath == "" {
		path, err := storage.DefaultDBPath()
		if err != nil {
			return Config{}, err
		}
		cfg.DBPath = path
	}
	if cfg.SnapshotKey == "" {
		cfg.SnapshotKey = storage.DefaultSnapshotKey
	}
	return cfg, nil
}
