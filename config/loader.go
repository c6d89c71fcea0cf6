package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the configuration file name searched in the
// current and home directories.
const DefaultConfigFile = ".linkcheck"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File is the YAML configuration file. Pointer fields distinguish
// "not set" from zero values.
type File struct {
	UserAgent   string         `yaml:"user_agent"`
	Interval    *float64       `yaml:"interval"`
	Timeout     *time.Duration `yaml:"timeout"`
	MaxBodySize *int64         `yaml:"max_body_size"`
	Format      string         `yaml:"format"`
	Robots      *bool          `yaml:"robots"`
	UserAgents  []UserAgent    `yaml:"user_agents"`
}

// LoadConfigFile reads and parses the YAML file at path.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return &cf, nil
}

// FindConfigFile returns the configuration file to load, or "" if none exists.
// Search order:
//  1. configPath, when given
//  2. ./.linkcheck
//  3. $XDG_CONFIG_HOME/linkcheck/config.yaml
//  4. ~/.linkcheck
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	candidates := []string{}
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, DefaultConfigFile))
	}
	candidates = append(candidates, filepath.Join(XDGConfigDir(), "config.yaml"))
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, DefaultConfigFile))
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// ApplyFile overlays the values set in f onto c.
func (c *Config) ApplyFile(f *File) {
	if f == nil {
		return
	}

	for _, ua := range f.UserAgents {
		if ua.Name == "" {
			continue
		}
		c.UserAgents.Set(ua.Name, ua.Value)
	}
	if f.UserAgent != "" {
		c.UserAgentName = f.UserAgent
	}
	if f.Interval != nil {
		c.Interval = IntervalSeconds(*f.Interval)
	}
	if f.Timeout != nil {
		c.Timeout = *f.Timeout
	}
	if f.MaxBodySize != nil {
		c.MaxBodySize = *f.MaxBodySize
	}
	if f.Format != "" {
		c.Format = Format(f.Format)
	}
	if f.Robots != nil {
		c.RespectRobots = *f.Robots
	}
}
