package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// PagePath is a page file or a directory of pages.
	PagePath string
	// ConfigPath is the optional host config file (HCL).
	ConfigPath string
	// OutputDir receives rendered pages; empty means write to the app's
	// output writer.
	OutputDir string

	LogFormat string
	LogLevel  string
}

// NewConfig validates the configuration.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.PagePath == "" && cfg.ConfigPath == "" {
		return nil, errors.New("either a page path or a host config file is required")
	}
	return &cfg, nil
}
