// Package config loads process settings from CASETRACK_* environment
// variables. Command-line flags are applied on top by cmd.
package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/abhisek/casetrack/internal/llm"
)

// Prefix is prepended to every variable name.
const Prefix = "CASETRACK_"

type Config struct {
	DBPath          string        `env:"DB"`
	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":8080"`
	LogLevel        slog.Level    `env:"LOG_LEVEL" envDefault:"INFO"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"json"`
	GradingPause    time.Duration `env:"GRADING_PAUSE" envDefault:"2s"`
	TransitionPause time.Duration `env:"TRANSITION_PAUSE" envDefault:"1500ms"`
	SnapshotKeep    int           `env:"SNAPSHOT_KEEP" envDefault:"20"`
	CORSOrigins     []string      `env:"CORS_ORIGINS" envDefault:"*" envSeparator:","`

	LLM llm.Config `envPrefix:"LLM_"`
}

// Load parses the environment.
func Load() (*Config, error) {
	return load(env.Options{Prefix: Prefix})
}

func load(opts env.Options) (*Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](opts)
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	cfg.LLM = cfg.LLM.Discover()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the rest of the program cannot run with.
func (c *Config) Validate() error {
	switch c.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("%sLOG_FORMAT must be json or text, got %q", Prefix, c.LogFormat)
	}
	if c.GradingPause < 0 || c.TransitionPause < 0 {
		return fmt.Errorf("%sGRADING_PAUSE and %sTRANSITION_PAUSE must not be negative", Prefix, Prefix)
	}
	if c.SnapshotKeep < 1 {
		return fmt.Errorf("%sSNAPSHOT_KEEP must be at least 1, got %d", Prefix, c.SnapshotKeep)
	}
	if err := c.LLM.Validate(); err != nil {
		return fmt.Errorf("llm config: %w", err)
	}
	return nil
}
