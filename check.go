package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lukemcguire/linkcheck/checker"
	"github.com/lukemcguire/linkcheck/config"
	"github.com/lukemcguire/linkcheck/result"
	"github.com/lukemcguire/linkcheck/tui"
	"github.com/lukemcguire/linkcheck/urlutil"
)

// errRootsFailed is returned in file mode when at least one root failed.
var errRootsFailed = errors.New("some root pages failed")

// runCheck checks the configured root URL, or each URL of the target file
// in order.
func runCheck(ctx context.Context, cfg *config.Config, out io.Writer, logger *slog.Logger) error {
	if cfg.TargetFile == "" {
		return checkRoot(ctx, cfg, cfg.Target, out, logger)
	}

	targets, err := config.LoadTargets(cfg.TargetFile)
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		return fmt.Errorf("%w: %s lists no URLs", config.ErrNoTarget, cfg.TargetFile)
	}

	return checkRoots(ctx, targets, out, logger, func(target string) error {
		return checkRoot(ctx, cfg, target, out, logger)
	})
}

// checkRoots calls check for each target in order. A failing root is
// reported and the run moves on; cancellation, from a signal or from the
// progress view, stops it.
func checkRoots(ctx context.Context, targets []string, out io.Writer, logger *slog.Logger, check func(string) error) error {
	failed := 0
	for _, target := range targets {
		err := check(target)
		if err == nil {
			continue
		}
		if ctx.Err() != nil || errors.Is(err, context.Canceled) {
			return err
		}
		logger.Warn("root check failed", "url", target, "error", err)
		fmt.Fprintln(out, userMessage(err))
		failed++
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errRootsFailed, failed, len(targets))
	}
	return nil
}

// checkRoot runs one link check and writes its report in the configured format.
func checkRoot(ctx context.Context, cfg *config.Config, rawURL string, out io.Writer, logger *slog.Logger) error {
	target, err := urlutil.ParseTarget(rawURL)
	if err != nil {
		return err
	}

	userAgent, _ := cfg.UserAgent()
	checkCfg := checker.Config{
		Target:         target,
		UserAgent:      userAgent,
		Interval:       cfg.IntervalDuration(),
		RequestTimeout: cfg.Timeout,
		MaxBodySize:    cfg.MaxBodySize,
		RespectRobots:  cfg.RespectRobots,
		Logger:         logger.With("root", target.Raw),
	}

	if cfg.TUI {
		return checkRootTUI(ctx, cfg, checkCfg, out)
	}

	if cfg.Format == config.FormatTSV {
		checkCfg.Reporter = result.NewTSVWriter(out)
	}

	report, runErr := checker.New(checkCfg, nil).Run(ctx)
	if cfg.Format != config.FormatTSV && report != nil {
		if err := result.WriteReport(out, string(cfg.Format), report); err != nil {
			return err
		}
	}
	return runErr
}

// checkRootTUI runs one link check behind the Bubble Tea progress view.
// Structured formats are written after the summary.
func checkRootTUI(ctx context.Context, cfg *config.Config, checkCfg checker.Config, out io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	progressCh := make(chan checker.Event, 100)
	model := tui.NewModel(ctx, cancel, checker.New(checkCfg, progressCh), progressCh)

	finalModel, err := tea.NewProgram(model, tea.WithOutput(out)).Run()
	if err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	final, ok := finalModel.(tui.Model)
	if !ok {
		return fmt.Errorf("run tui: unexpected model %T", finalModel)
	}
	if final.Quitting() {
		return context.Canceled
	}

	if report := final.Report(); report != nil && cfg.Format != config.FormatTSV {
		if err := result.WriteReport(out, string(cfg.Format), report); err != nil {
			return err
		}
	}
	return final.Err()
}
