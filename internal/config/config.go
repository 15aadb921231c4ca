package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/papapumpkin/sourcecheck/internal/manifest"
)

// Config holds all runtime configuration for a sourcecheck run.
// Values are populated from .sourcecheck.yaml, SOURCECHECK_* env vars, and CLI flags.
type Config struct {
	BaseDir  string `mapstructure:"base_dir"`
	Project  string `mapstructure:"project"`
	Manifest string `mapstructure:"manifest"`
	Strict   bool   `mapstructure:"strict"`
	Verbose  bool   `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags. BaseDir and Project
// are left empty unless set explicitly, so a manifest file can supply them.
func Load() (Config, error) {
	viper.SetDefault("base_dir", "")
	viper.SetDefault("project", "")
	viper.SetDefault("manifest", manifest.DefaultPath)
	viper.SetDefault("strict", false)
	viper.SetDefault("verbose", false)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

// Apply overlays explicitly configured roots onto m.
func (c Config) Apply(m *manifest.Manifest) {
	if c.BaseDir != "" {
		m.BaseDir = c.BaseDir
	}
	if c.Project != "" {
		m.Project = c.Project
	}
}
