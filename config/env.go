package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Env holds the LINKCHECK_* environment overrides.
type Env struct {
	UserAgent   string         `envconfig:"USER_AGENT"`
	Interval    *float64       `envconfig:"INTERVAL"`
	Timeout     *time.Duration `envconfig:"TIMEOUT"`
	MaxBodySize *int64         `envconfig:"MAX_BODY_SIZE"`
	Format      string         `envconfig:"FORMAT"`
	Robots      *bool          `envconfig:"ROBOTS"`
}

// LoadEnv loads an optional .env file from the working directory and then
// reads the LINKCHECK_* variables. Variables already set in the process
// environment win over the .env file.
func LoadEnv() (*Env, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var env Env
	if err := envconfig.Process(strings.ToUpper(AppName), &env); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}
	return &env, nil
}

// ApplyEnv overlays the values set in e onto c.
func (c *Config) ApplyEnv(e *Env) {
	if e == nil {
		return
	}

	if e.UserAgent != "" {
		c.UserAgentName = e.UserAgent
	}
	if e.Interval != nil {
		c.Interval = IntervalSeconds(*e.Interval)
	}
	if e.Timeout != nil {
		c.Timeout = *e.Timeout
	}
	if e.MaxBodySize != nil {
		c.MaxBodySize = *e.MaxBodySize
	}
	if e.Format != "" {
		c.Format = Format(e.Format)
	}
	if e.Robots != nil {
		c.RespectRobots = *e.Robots
	}
}
