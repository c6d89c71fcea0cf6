// Package checker fetches a root page, groups its links and probes the
// same-site ones one at a time, pausing a fixed interval after each link.
package checker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/lukemcguire/linkcheck/result"
	"github.com/lukemcguire/linkcheck/urlutil"
)

var (
	// ErrRootUnavailable is returned when the root page does not answer 200.
	ErrRootUnavailable = errors.New("can not get a root page")

	// ErrRootDisallowed is returned when robots.txt disallows the root page.
	ErrRootDisallowed = errors.New("root page is disallowed by robots.txt")
)

// Config holds checker configuration.
type Config struct {
	Target         urlutil.Target  // The root page
	UserAgent      string          // User-Agent header for every request
	Interval       time.Duration   // Pause after each reported link
	RequestTimeout time.Duration   // Per-request timeout (default 30s)
	MaxBodySize    int64           // Body read limit (default 5MB)
	RespectRobots  bool            // Skip in-scope links disallowed by robots.txt
	Reporter       result.Reporter // Optional; receives each result as it is known
	Logger         *slog.Logger    // Optional; defaults to discarding
}

// Checker runs a single-page link check.
type Checker struct {
	cfg           Config
	fetcher       *Fetcher
	robotsChecker *RobotsChecker
	logger        *slog.Logger
	progressCh    chan<- Event
	wait          func(context.Context, time.Duration) error

	total   int
	checked int
	broken  int
}

// New creates a Checker with the given configuration.
// The progressCh parameter is optional; pass nil to disable progress events.
func New(cfg Config, progressCh chan<- Event) *Checker {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 30 * time.Second
	}
	if cfg.MaxBodySize <= 0 {
		cfg.MaxBodySize = 5 * 1024 * 1024
	}
	if cfg.Interval < 0 {
		cfg.Interval = 0
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	fetcher := NewFetcher(cfg.UserAgent, cfg.RequestTimeout, cfg.MaxBodySize)

	var robotsChecker *RobotsChecker
	if cfg.RespectRobots {
		robotsChecker = NewRobotsChecker(fetcher.Client(), cfg.UserAgent)
	}

	return &Checker{
		cfg:           cfg,
		fetcher:       fetcher,
		robotsChecker: robotsChecker,
		logger:        logger,
		progressCh:    progressCh,
		wait:          sleepContext,
	}
}

// Run fetches the root page and reports every grouped link in sort order.
//
// When the root does not answer 200 the root result is still reported and
// Run returns the partial report with an error wrapping ErrRootUnavailable.
// Link probe failures are never fatal. Cancelling ctx stops the run after
// the current request or interval.
func (c *Checker) Run(ctx context.Context) (*result.Report, error) {
	start := time.Now()
	target := c.cfg.Target
	c.total, c.checked, c.broken = 0, 0, 0

	report := &result.Report{Links: []result.LinkResult{}}
	defer func() {
		report.Stats.Duration = time.Since(start)
	}()

	if !c.allowed(ctx, target.Raw) {
		report.Root = result.LinkResult{URL: target.Raw, IsRoot: true, InScope: true, Skipped: true}
		if err := c.emit(ctx, report.Root); err != nil {
			return report, err
		}
		return report, fmt.Errorf("%w: %s", ErrRootDisallowed, target.Raw)
	}

	c.logger.Debug("fetching root page", "url", target.Raw)
	page := c.fetcher.Fetch(ctx, target.Raw, true)

	report.Root = result.LinkResult{URL: target.Raw, IsRoot: true, InScope: true}
	page.apply(&report.Root)
	if err := c.emit(ctx, report.Root); err != nil {
		return report, err
	}

	if report.Root.Status != result.StatusOK {
		if page.Err != nil {
			c.logger.Warn("root page request failed", "url", target.Raw, "error", page.Err)
		}
		return report, fmt.Errorf("%w: %s returned %s", ErrRootUnavailable, target.Raw, report.Root.Status)
	}

	// Relative links resolve against the page that was finally served.
	base := target.URL
	if page.FinalURL != nil {
		base = page.FinalURL
	}

	groups := GroupLinks(page.Links)
	c.total = len(groups)
	c.logger.Debug("extracted links", "url", target.Raw, "links", len(page.Links), "unique", len(groups))

	for _, group := range groups {
		link := c.checkLink(ctx, base, group)
		report.Add(link)

		c.checked++
		if link.Broken() {
			c.broken++
		}
		if err := c.emit(ctx, link); err != nil {
			return report, err
		}

		if err := c.wait(ctx, c.cfg.Interval); err != nil {
			return report, fmt.Errorf("wait after %s: %w", group.URL, err)
		}
	}

	return report, nil
}

// checkLink probes an in-scope group and describes an out-of-scope one.
// Scope is decided against the root URL as given; base resolves relative links.
func (c *Checker) checkLink(ctx context.Context, base *url.URL, group LinkGroup) result.LinkResult {
	link := result.LinkResult{URL: group.URL, Count: group.Count}
	if !urlutil.InScope(group.URL, c.cfg.Target.Authority) {
		return link
	}
	link.InScope = true

	probeURL, err := urlutil.ResolveReference(base, group.URL)
	if err != nil {
		Page{URL: group.URL}.failed(err).apply(&link)
		c.logger.Warn("unresolvable link", "url", group.URL, "error", err)
		return link
	}

	if !c.allowed(ctx, probeURL) {
		link.Skipped = true
		c.logger.Info("skipping link disallowed by robots.txt", "url", probeURL)
		return link
	}

	page := c.fetcher.Fetch(ctx, probeURL, false)
	page.apply(&link)
	c.logger.Debug("probed link", "url", probeURL, "status", link.Status, "count", link.Count)
	if page.Err != nil {
		c.logger.Debug("probe failed", "url", probeURL, "error", page.Err)
	}
	return link
}

// allowed consults robots.txt when enabled. Lookup errors allow the request.
func (c *Checker) allowed(ctx context.Context, rawURL string) bool {
	if c.robotsChecker == nil {
		return true
	}
	ok, err := c.robotsChecker.Allowed(ctx, rawURL)
	if err != nil {
		c.logger.Warn("robots.txt check failed, allowing", "url", rawURL, "error", err)
	}
	return ok
}

// emit forwards res to the reporter and the progress channel.
func (c *Checker) emit(ctx context.Context, res result.LinkResult) error {
	if c.cfg.Reporter != nil {
		if err := c.cfg.Reporter.WriteResult(res); err != nil {
			return fmt.Errorf("report %s: %w", res.URL, err)
		}
	}
	if c.progressCh != nil {
		event := Event{
			Result:  res,
			Checked: c.checked,
			Total:   c.total,
			Broken:  c.broken,
		}
		select {
		case c.progressCh <- event:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// sleepContext waits for d or until ctx is done.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
