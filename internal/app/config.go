package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	PlanPath string // .hcl plan files or PRP markdown documents
	Loader   string // "auto", "hcl" or "prp"
	Output   string // "text" or "json"

	LogFormat   string
	LogLevel    string
	WorkerCount int
	Simulate    bool
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.PlanPath == "" {
		return nil, errors.New("PlanPath is a required configuration field and cannot be empty")
	}

	return &cfg, nil
}
