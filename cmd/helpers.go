package cmd

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/blackhillsconsortium/annualreport/internal/config"
	"github.com/blackhillsconsortium/annualreport/internal/db"
	"github.com/blackhillsconsortium/annualreport/internal/report"
	"github.com/blackhillsconsortium/annualreport/internal/snapshot"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `annualreport init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// loadDataset reads the report data from cfg.DataDir, or the embedded copy.
func loadDataset(cfg *config.Config) (*report.Dataset, error) {
	ds, err := report.LoadDir(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("loading report data: %w", err)
	}
	source := cfg.DataDir
	if source == "" {
		source = "embedded"
	}
	logger.Debug("report data loaded", zap.String("source", source), zap.Int("entities", len(ds.Entities)))
	return ds, nil
}

// openSnapshots opens the snapshot cache, creating it if needed.
func openSnapshots(cfg *config.Config) (*snapshot.Store, func(), error) {
	database, err := db.Open(cfg.Database.Path)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("snapshot cache opened", zap.String("path", database.Path()))
	return snapshot.NewStore(database), func() { database.Close() }, nil
}

// existingSnapshots opens the snapshot cache only when a sync has created
// it. It returns a nil store otherwise.
func existingSnapshots(cfg *config.Config) (*snapshot.Store, func(), error) {
	if _, err := os.Stat(cfg.Database.Path); err != nil {
		logger.Debug("no snapshot cache", zap.String("path", cfg.Database.Path))
		return nil, func() {}, nil
	}
	return openSnapshots(cfg)
}
