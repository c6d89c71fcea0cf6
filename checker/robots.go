package checker

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/temoto/robotstxt"
)

// robotsTimeout bounds a robots.txt fetch.
const robotsTimeout = 5 * time.Second

// RobotsChecker fetches robots.txt once per host and answers whether a URL
// may be requested by the configured User-Agent. A nil entry in rules means
// allow-all (missing file, server error or fetch failure).
type RobotsChecker struct {
	client    *http.Client
	userAgent string
	rules     map[string]*robotstxt.RobotsData
}

// NewRobotsChecker creates a RobotsChecker using client for robots.txt requests.
func NewRobotsChecker(client *http.Client, userAgent string) *RobotsChecker {
	return &RobotsChecker{
		client:    client,
		userAgent: userAgent,
		rules:     make(map[string]*robotstxt.RobotsData),
	}
}

// Allowed reports whether rawURL may be requested.
// Errors (network, parsing) result in allow-all behavior; the error is
// returned alongside so the caller can log it.
func (r *RobotsChecker) Allowed(ctx context.Context, rawURL string) (bool, error) {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return true, fmt.Errorf("parse URL: %w", err)
	}

	host := parsedURL.Host
	if host == "" {
		return true, nil
	}

	robots, seen := r.rules[host]
	if !seen {
		robots, err = r.fetch(ctx, parsedURL.Scheme, host)
		// Failures are remembered as allow-all so each host is fetched once.
		r.rules[host] = robots
		if err != nil {
			return true, err
		}
	}

	if robots == nil {
		return true, nil
	}
	path := parsedURL.EscapedPath()
	if path == "" {
		path = "/"
	}
	return robots.TestAgent(path, r.userAgent), nil
}

// fetch downloads and parses robots.txt for host.
func (r *RobotsChecker) fetch(ctx context.Context, scheme, host string) (*robotstxt.RobotsData, error) {
	robotsURL := fmt.Sprintf("%s://%s/robots.txt", scheme, host)

	reqCtx, cancel := context.WithTimeout(ctx, robotsTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, robotsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create robots.txt request for host %s: %w", host, err)
	}
	if r.userAgent != "" {
		req.Header.Set("User-Agent", r.userAgent)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch robots.txt for host %s: %w", host, err)
	}

	body, readErr := io.ReadAll(resp.Body)
	closeErr := resp.Body.Close()
	if readErr != nil {
		return nil, fmt.Errorf("read robots.txt body for host %s: %w", host, readErr)
	}
	if closeErr != nil {
		return nil, fmt.Errorf("close robots.txt response body for host %s: %w", host, closeErr)
	}

	// 404 and 5xx allow everything.
	if resp.StatusCode == http.StatusNotFound || resp.StatusCode >= 500 {
		return nil, nil
	}

	robots, err := robotstxt.FromStatusAndBytes(resp.StatusCode, body)
	if err != nil {
		return nil, fmt.Errorf("parse robots.txt for host %s: %w", host, err)
	}
	return robots, nil
}
