package app

import (
	"errors"
	"fmt"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ScriptPath string // script file or directory of scripts

	LogFormat string
	LogLevel  string
	NoColor   bool
	// KeepGoing runs the remaining scripts after one fails.
	KeepGoing bool
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.ScriptPath == "" {
		return nil, errors.New("ScriptPath is a required configuration field and cannot be empty")
	}
	switch cfg.LogFormat {
	case "", "text", "json":
	default:
		return nil, fmt.Errorf("invalid log format %q", cfg.LogFormat)
	}
	return &cfg, nil
}
