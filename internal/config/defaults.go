package config

import "github.com/ziadkadry99/semview/internal/fetch"

// DefaultConfigFile is the conventional config file name.
const DefaultConfigFile = ".semview.yml"

// DefaultConfig returns a Config with sensible defaults: the well-known
// document name next to the working directory and a local-only port.
func DefaultConfig() *Config {
	return &Config{
		Source:    fetch.DefaultResource,
		Title:     "Semantic mapping viewer",
		Port:      8080,
		OutputDir: "site",
	}
}
