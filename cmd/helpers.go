package cmd

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ziadkadry99/mission-control/internal/config"
	"github.com/ziadkadry99/mission-control/internal/db"
	"github.com/ziadkadry99/mission-control/internal/logging"
	"github.com/ziadkadry99/mission-control/internal/prefs"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `missioncontrol init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w\nRun `missioncontrol init` to create a config file", err)
	}
	return cfg, nil
}

// newLogger builds the process logger; --verbose forces debug level.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level := cfg.Log.Level
	if verbose {
		level = "debug"
	}
	return logging.New(level, cfg.Log.Development)
}

// openBackend returns the configured preference backend and a function
// releasing it.
func openBackend(cfg *config.Config) (prefs.Backend, func() error, error) {
	switch cfg.Storage.Backend {
	case config.StorageMemory:
		return prefs.NewMemoryBackend(), func() error { return nil }, nil
	default:
		database, err := db.Open(cfg.Storage.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("opening database: %w", err)
		}
		return prefs.NewSQLBackend(database), database.Close, nil
	}
}
