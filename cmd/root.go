// Package cmd implements the trackcheck command line interface.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/antennaops/trackcheck/config"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "trackcheck",
	Short: "Verify and score antenna-tracking schedules",
	Long: `trackcheck checks a candidate schedule against a problem instance and
maintenance calendar, reports every constraint violation, and computes the
achieved communication time and per-mission fairness statistics.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (yaml or json)")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

func loadConfig() (*config.Config, error) {
	if cfgPath == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
