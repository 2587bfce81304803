package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/semview/internal/config"
)

// loadConfig loads and validates the config, applying command-line
// overrides for the document source and page title.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `semview init` to create a config file", err)
	}

	if source, _ := cmd.Flags().GetString("source"); source != "" {
		cfg.Source = source
	}
	if title, _ := cmd.Flags().GetString("title"); title != "" {
		cfg.Title = title
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
