package urlutil

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrMalformedURL is returned when a root URL has no http(s) scheme or no authority.
var ErrMalformedURL = errors.New("malformed URL")

// schemes are the URL schemes accepted for root URLs and same-site links.
var schemes = []string{"http", "https"}

// Target is a validated root URL.
type Target struct {
	Raw       string   // The URL as given by the user
	Scheme    string   // "http" or "https"
	Authority string   // Everything between "://" and the next "/"
	URL       *url.URL // Parsed form, used to resolve relative links
}

// ParseTarget validates rawURL and splits it into scheme and authority.
// The URL must start with http:// or https:// followed by a non-empty
// authority; the path is optional.
func ParseTarget(rawURL string) (Target, error) {
	scheme, authority, ok := SplitSchemeAuthority(rawURL)
	if !ok {
		return Target{}, fmt.Errorf("%w: %q", ErrMalformedURL, rawURL)
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return Target{}, fmt.Errorf("%w: %q: %w", ErrMalformedURL, rawURL, err)
	}

	return Target{
		Raw:       rawURL,
		Scheme:    scheme,
		Authority: authority,
		URL:       parsed,
	}, nil
}

// SplitSchemeAuthority returns the scheme and authority of rawURL.
// The scheme match is case-sensitive and limited to http and https.
// The authority is everything up to the next "/" and must not be empty.
// Unlike url.URL.Host it keeps userinfo and any "?" or "#" before that slash.
func SplitSchemeAuthority(rawURL string) (scheme string, authority string, ok bool) {
	for _, candidate := range schemes {
		rest, found := strings.CutPrefix(rawURL, candidate+"://")
		if !found {
			continue
		}
		authority, _, _ = strings.Cut(rest, "/")
		if authority == "" {
			return "", "", false
		}
		return candidate, authority, true
	}
	return "", "", false
}
