package checker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/lukemcguire/linkcheck/result"
)

// maxRedirects matches net/http's default redirect policy.
const maxRedirects = 10

var errTooManyRedirects = errors.New("too many redirects")

// Page is the outcome of a single GET request.
type Page struct {
	URL        string               // The requested URL
	FinalURL   *url.URL             // URL of the last response after redirects
	StatusCode int                  // HTTP status code after redirects (0 on transport failure)
	Err        error                // Transport failure, if any
	Category   result.ErrorCategory // Classification of Err or of a 4xx/5xx status
	Links      []string             // Raw hrefs, only when extraction was requested
}

// Status returns the status code as text, or the error category when the
// request failed below the HTTP layer.
func (p Page) Status() string {
	if p.Err != nil {
		return string(p.Category)
	}
	return strconv.Itoa(p.StatusCode)
}

// apply copies the probe outcome into res.
func (p Page) apply(res *result.LinkResult) {
	res.Status = p.Status()
	res.StatusCode = p.StatusCode
	res.ErrorCategory = p.Category
	if p.Err != nil {
		res.Error = p.Err.Error()
	}
}

// failed records err as a transport failure.
func (p Page) failed(err error) Page {
	p.StatusCode = 0
	p.Err = err
	p.Category = result.ClassifyError(err, 0, errors.Is(err, errTooManyRedirects))
	return p
}

// Fetcher issues GET requests with a fixed User-Agent.
type Fetcher struct {
	client      *http.Client
	userAgent   string
	timeout     time.Duration
	maxBodySize int64
}

// NewFetcher creates a Fetcher. An empty userAgent leaves Go's default header.
func NewFetcher(userAgent string, timeout time.Duration, maxBodySize int64) *Fetcher {
	return &Fetcher{
		client:      &http.Client{CheckRedirect: limitRedirects},
		userAgent:   userAgent,
		timeout:     timeout,
		maxBodySize: maxBodySize,
	}
}

// Client returns the underlying HTTP client.
func (f *Fetcher) Client() *http.Client {
	return f.client
}

// Fetch requests rawURL and classifies the outcome. Redirects are followed.
// When extract is true and the final response is a 200 HTML page, the raw
// href values of the page are returned in Page.Links.
//
// Fetch never returns an error: transport failures are recorded in the
// returned Page so that callers can report them like any other status.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string, extract bool) (page Page) {
	page.URL = rawURL

	reqCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, rawURL, nil)
	if err != nil {
		return page.failed(fmt.Errorf("create request: %w", err))
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return page.failed(err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	page.StatusCode = resp.StatusCode
	page.FinalURL = resp.Request.URL
	if resp.StatusCode >= 400 {
		page.Category = result.ClassifyError(nil, resp.StatusCode, false)
	}

	body := io.LimitReader(resp.Body, f.maxBodySize)
	contentType := resp.Header.Get("Content-Type")

	if extract && resp.StatusCode == http.StatusOK && isHTMLContentType(contentType) {
		links, extractErr := ExtractLinks(body, contentType)
		if extractErr != nil {
			return page.failed(fmt.Errorf("extract links from %s: %w", rawURL, extractErr))
		}
		page.Links = links
		return page
	}

	// Drain so the connection can be reused for the next probe.
	_, _ = io.Copy(io.Discard, body)
	return page
}

// limitRedirects stops after maxRedirects hops with a detectable error.
func limitRedirects(_ *http.Request, via []*http.Request) error {
	if len(via) >= maxRedirects {
		return fmt.Errorf("stopped after %d redirects: %w", maxRedirects, errTooManyRedirects)
	}
	return nil
}

// isHTMLContentType reports whether links should be extracted from a body
// with the given Content-Type. A missing header is treated as HTML.
func isHTMLContentType(contentType string) bool {
	if contentType == "" {
		return true
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "text/html" || mediaType == "application/xhtml+xml"
}
