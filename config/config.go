// Package config loads the verifier configuration. All process-wide settings
// flow through here into explicit values; nothing is read from ambient state
// during verification.
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

	"github.com/antennaops/trackcheck/core/metrics"
	"github.com/antennaops/trackcheck/core/problem"
)

type Config struct {
	Conventions problem.Conventions `json:"conventions"`
	Logging     LoggingConfig       `json:"logging"`
	Metrics     metrics.Config      `json:"metrics"`
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	var cfg Config
	cfg.Conventions.SetDefaults()
	cfg.Logging.SetDefaults()
	cfg.Metrics.SetDefaults()
	return &cfg
}

// Load reads the configuration file at path, with TC_-prefixed environment
// overrides applied on top.
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
	if err := k.Load(env.Provider("TC_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "tc_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Conventions.SetDefaults()
	cfg.Logging.SetDefaults()
	cfg.Metrics.SetDefaults()
	if err := cfg.Conventions.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Logging.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
