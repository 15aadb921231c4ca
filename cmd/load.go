package cmd

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/papapumpkin/sourcecheck/internal/config"
	"github.com/papapumpkin/sourcecheck/internal/manifest"
)

// loadManifest resolves the configuration and the manifest it points at,
// with configured roots applied on top of the manifest's own.
func loadManifest() (config.Config, *manifest.Manifest, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("failed to load config: %w", err)
	}

	m, err := manifest.Load(appFs, cfg.Manifest)
	if err != nil {
		return cfg, nil, err
	}
	cfg.Apply(m)

	logger.Debug("manifest loaded",
		zap.String("manifest", cfg.Manifest),
		zap.String("base_dir", m.BaseDir),
		zap.String("project", m.Project),
		zap.Int("entries", len(m.Entries)))
	return cfg, m, nil
}
