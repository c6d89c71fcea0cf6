package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// AppName is used for the XDG config directory and environment prefix.
	AppName = "linkcheck"

	// DefaultInterval is the number of seconds to wait after each reported link.
	DefaultInterval = 1

	// DefaultTimeout bounds each HTTP request, including redirects.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxBodySize limits how much of a response body is read.
	DefaultMaxBodySize = 5 * 1024 * 1024 // 5MB

	// DefaultFormat is the streamed tab-separated report.
	DefaultFormat = FormatTSV
)

// Format selects the report writer.
type Format string

// Supported report formats.
const (
	FormatTSV      Format = "tsv"
	FormatJSON     Format = "json"
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "markdown"
)

// Valid reports whether f names a supported format.
func (f Format) Valid() bool {
	switch f {
	case FormatTSV, FormatJSON, FormatCSV, FormatMarkdown:
		return true
	default:
		return false
	}
}

// Config holds all options for a linkcheck run.
type Config struct {
	// Target is the root URL given as a positional argument.
	Target string

	// TargetFile is a file of root URLs, one per line. Mutually exclusive with Target.
	TargetFile string

	// UserAgentName selects an entry of UserAgents.
	UserAgentName string

	// UserAgents is the built-in table, extended by the config file.
	UserAgents *UserAgentTable

	// Interval is the delay in whole seconds after every reported link.
	Interval int

	// Timeout bounds each HTTP request.
	Timeout time.Duration

	// MaxBodySize is the maximum number of body bytes read per response.
	MaxBodySize int64

	// Format selects the report writer.
	Format Format

	// RespectRobots skips in-scope links disallowed by robots.txt.
	RespectRobots bool

	// TUI shows a Bubble Tea progress view instead of streaming lines.
	TUI bool

	// Verbose enables debug logging on stderr.
	Verbose bool

	// ConfigFilePath is an explicit configuration file path.
	ConfigFilePath string
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	return &Config{
		UserAgentName: DefaultUserAgentName,
		UserAgents:    NewUserAgentTable(),
		Interval:      DefaultInterval,
		Timeout:       DefaultTimeout,
		MaxBodySize:   DefaultMaxBodySize,
		Format:        DefaultFormat,
	}
}

// IntervalDuration returns Interval as a time.Duration.
func (c *Config) IntervalDuration() time.Duration {
	return time.Duration(c.Interval) * time.Second
}

// IntervalSeconds truncates a fractional interval toward zero, so 1.9 waits
// one second and 0.5 does not wait.
func IntervalSeconds(sec float64) int {
	return int(sec)
}

// UserAgent returns the User-Agent header value selected by UserAgentName.
func (c *Config) UserAgent() (string, bool) {
	if c.UserAgents == nil {
		return "", false
	}
	return c.UserAgents.Lookup(c.UserAgentName)
}

// Validate checks the configuration and returns the first problem found.
func (c *Config) Validate() error {
	if c.Target == "" && c.TargetFile == "" {
		return ErrNoTarget
	}

	if c.Target != "" && c.TargetFile != "" {
		return ErrTargetAndFile
	}

	if _, ok := c.UserAgent(); !ok {
		return ErrUnknownUserAgent
	}

	if c.Interval < 0 {
		return ErrInvalidInterval
	}

	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	if c.MaxBodySize <= 0 {
		return ErrInvalidMaxBodySize
	}

	if !c.Format.Valid() {
		return ErrUnknownFormat
	}

	return nil
}

// XDGConfigDir returns the XDG config directory for linkcheck.
// On Linux: ~/.config/linkcheck
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}
