package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"firedispatch/core/fleet"
	"firedispatch/core/metrics"
)

// Config is the root configuration for the planning service.
type Config struct {
	Planner   PlannerConfig   `json:"planner"`
	Fleet     fleet.Config    `json:"fleet"`
	Region    RegionConfig    `json:"region"`
	Providers ProvidersConfig `json:"providers"`
	Metrics   metrics.Config  `json:"metrics"`
	Export    ExportConfig    `json:"export"`
}

// Load reads the configuration file (yaml or json) and applies environment
// overrides of the form FD_section__key.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("FD_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "fd_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Planner.SetDefaults()
	cfg.Fleet.SetDefaults()
	cfg.Region.SetDefaults()
	cfg.Export.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every section.
func (c Config) Validate() error {
	if err := c.Planner.Validate(); err != nil {
		return err
	}
	if err := c.Fleet.Validate(); err != nil {
		return err
	}
	if err := c.Region.Validate(); err != nil {
		return err
	}
	return c.Export.Validate()
}
