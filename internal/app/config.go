package app

import (
	"errors"
	"fmt"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Command string   // name of the command to run
	Args    []string // command arguments, flags included

	LogFormat string
	LogLevel  string
	LogFile   string // optional rotating log file, in addition to the log writer
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.Command == "" {
		return nil, errors.New("Command is a required configuration field and cannot be empty")
	}
	if _, ok := lookupCommand(cfg.Command); !ok {
		return nil, fmt.Errorf("unknown command %q", cfg.Command)
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return &cfg, nil
}
