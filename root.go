package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/lukemcguire/linkcheck/checker"
	"github.com/lukemcguire/linkcheck/config"
	"github.com/lukemcguire/linkcheck/urlutil"
)

// errSilentExit ends the run with exit code 1 without printing anything.
var errSilentExit = errors.New("silent exit")

// options holds the raw flag values of the root command.
type options struct {
	userAgent     string
	interval      float64
	showUserAgent bool
	file          string
	timeout       time.Duration
	format        string
	robots        bool
	tui           bool
	configPath    string
	verbose       bool
}

// NewRootCmd creates the linkcheck command.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&options{})
}

// newRootCmd creates the linkcheck command, storing flag values in opts.
func newRootCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "linkcheck [flags] <url>",
		Short: "Check the links of a single web page",
		Long: `Link check program.

linkcheck fetches the page at <url>, groups its links and counts how often
each one appears. Links that are root-relative or point at the same
scheme and authority are requested one at a time and their status is
reported; other links are listed without a request.

Each output line is tab-separated: mark, status, count and link. The mark
is "*" when the status is not 200.`,
		Version:       getVersion(),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, args, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.userAgent, "user-agent", "u", config.DefaultUserAgentName, "set User-Agent by name (see --show-user-agent)")
	flags.Float64VarP(&opts.interval, "interval", "i", config.DefaultInterval, "set request interval in seconds (fractions are truncated)")
	flags.BoolVar(&opts.showUserAgent, "show-user-agent", false, "show supported User-Agent names")
	flags.StringVarP(&opts.file, "file", "f", "", "read root URLs from a file, one per line")
	flags.DurationVarP(&opts.timeout, "timeout", "t", config.DefaultTimeout, "per-request timeout")
	flags.StringVarP(&opts.format, "format", "o", string(config.DefaultFormat), "output format: tsv, json, csv or markdown")
	flags.BoolVar(&opts.robots, "robots", false, "skip links disallowed by robots.txt")
	flags.BoolVar(&opts.tui, "tui", false, "show an interactive progress view")
	flags.StringVarP(&opts.configPath, "config", "c", "", "configuration file (default: search ./.linkcheck, XDG config, ~/.linkcheck)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")

	return cmd
}

// run executes the command line and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCmd()

	helpShown := false
	defaultHelp := cmd.HelpFunc()
	cmd.SetHelpFunc(func(c *cobra.Command, a []string) {
		helpShown = true
		defaultHelp(c, a)
	})

	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	switch {
	case errors.Is(err, errSilentExit):
		return 1
	case err != nil:
		fmt.Fprintln(stdout, userMessage(err))
		return 1
	case helpShown:
		return 1
	}
	return 0
}

// runRoot resolves the configuration and checks every root URL.
func runRoot(cmd *cobra.Command, args []string, opts *options) error {
	cfg, err := buildConfig(cmd, args, opts)
	if err != nil {
		return err
	}

	if opts.showUserAgent {
		for _, name := range cfg.UserAgents.Names() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return errSilentExit
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := setupLogger(cmd.ErrOrStderr(), cfg.Verbose)
	return runCheck(cmd.Context(), cfg, cmd.OutOrStdout(), logger)
}

// buildConfig layers defaults, the configuration file, the environment and
// explicitly set flags, in increasing order of precedence.
func buildConfig(cmd *cobra.Command, args []string, opts *options) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.ConfigFilePath = opts.configPath

	if path := config.FindConfigFile(opts.configPath); path != "" {
		file, err := config.LoadConfigFile(path)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg.ApplyFile(file)
	} else if opts.configPath != "" {
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, opts.configPath)
	}

	env, err := config.LoadEnv()
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv(env)

	flags := cmd.Flags()
	if flags.Changed("user-agent") {
		cfg.UserAgentName = opts.userAgent
	}
	if flags.Changed("interval") {
		cfg.Interval = config.IntervalSeconds(opts.interval)
	}
	if flags.Changed("timeout") {
		cfg.Timeout = opts.timeout
	}
	if flags.Changed("format") {
		cfg.Format = config.Format(opts.format)
	}
	if flags.Changed("robots") {
		cfg.RespectRobots = opts.robots
	}
	cfg.TargetFile = opts.file
	cfg.TUI = opts.tui
	cfg.Verbose = opts.verbose

	if len(args) > 0 {
		cfg.Target = args[0]
	}
	return cfg, nil
}

// setupLogger creates a structured logger based on verbosity setting.
func setupLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(w, opts)
	return slog.New(handler)
}

// userMessage returns the line printed for err.
func userMessage(err error) string {
	switch {
	case errors.Is(err, config.ErrNoTarget):
		return "Specify URL"
	case errors.Is(err, config.ErrTargetAndFile):
		return "If you specify a file, URL can not be specified."
	case errors.Is(err, urlutil.ErrMalformedURL):
		return "URL Malformed."
	case errors.Is(err, checker.ErrRootUnavailable):
		return "Can not get a root page."
	case errors.Is(err, context.Canceled):
		return "Interrupted."
	default:
		return "Error: " + err.Error()
	}
}
