package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// LoggingConfig defines log output settings.
type LoggingConfig struct {
	// Level is the minimum severity emitted: debug, info, warn or error.
	Level string `json:"level"`
}

// SetDefaults applies sane defaults.
func (c *LoggingConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
}

// Validate checks the level is known.
func (c LoggingConfig) Validate() error {
	if _, err := zerolog.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("unknown log level %s", c.Level)
	}
	return nil
}

// ZerologLevel returns the parsed level. Validate must have passed.
func (c LoggingConfig) ZerologLevel() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.Level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
