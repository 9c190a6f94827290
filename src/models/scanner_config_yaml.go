package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ScannerConfigYAML configures the signal scan job: when it runs, how much
// history it pulls, and an optional symbol override that bypasses the
// watchlist.
type ScannerConfigYAML struct {
	Schedule     string   `yaml:"schedule,omitempty"`
	LookbackDays int      `yaml:"lookbackDays"`
	Symbols      []string `yaml:"symbols,omitempty"`
}

const defaultLookbackDays = 365

func NewScannerConfigFromFile(path string) (*ScannerConfigYAML, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("NewScannerConfigFromFile: failed to read %s: %w", path, err)
	}

	var config ScannerConfigYAML
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("NewScannerConfigFromFile: failed to parse %s: %w", path, err)
	}

	if config.LookbackDays <= 0 {
		config.LookbackDays = defaultLookbackDays
	}

	return &config, nil
}
