package cmd

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/ziadkadry99/serviqo/internal/config"
	"github.com/ziadkadry99/serviqo/internal/db"
	"github.com/ziadkadry99/serviqo/internal/logging"
)

// databaseFile is the SQLite file inside the configured data directory.
const databaseFile = "serviqo.db"

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `serviqo init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newLogger builds the process logger. --verbose forces debug level.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level := cfg.Log.Level
	if verbose {
		level = "debug"
	}
	return logging.New(level, string(cfg.Log.Format))
}

// openDatabase opens the SQLite database in the configured data directory.
func openDatabase(cfg *config.Config) (*db.DB, error) {
	database, err := db.Open(filepath.Join(cfg.DataDir, databaseFile))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return database, nil
}
