package config

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and saves the result
// to .semview.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to semview! Let's configure your viewer.")
	fmt.Println()

	defaults := DefaultConfig()

	sourcePrompt := promptui.Prompt{
		Label:   "Mapping document (URL or file path)",
		Default: defaults.Source,
	}
	source, err := sourcePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("source: %w", err)
	}

	titlePrompt := promptui.Prompt{
		Label:   "Page title",
		Default: defaults.Title,
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("title: %w", err)
	}

	portPrompt := promptui.Prompt{
		Label:   "HTTP port for semview serve",
		Default: strconv.Itoa(defaults.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	port, _ := strconv.Atoi(portStr)

	outputPrompt := promptui.Prompt{
		Label:   "Output directory for semview render",
		Default: defaults.OutputDir,
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	cfg := &Config{
		Source:    source,
		Title:     title,
		Port:      port,
		OutputDir: outputDir,
	}

	if err := cfg.Save(DefaultConfigFile); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", DefaultConfigFile)
	return cfg, nil
}
