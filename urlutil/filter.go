package urlutil

import (
	"fmt"
	"net/url"
	"strings"
)

// InScope reports whether a link extracted from a page under authority
// should be probed. A link is in scope when it is root-relative (starts
// with "/") or when it is an http or https URL whose authority is exactly
// authority and which continues with a path.
//
// Protocol-relative links ("//host/path") start with "/" and are therefore
// in scope as well.
func InScope(link string, authority string) bool {
	if strings.HasPrefix(link, "/") {
		return true
	}
	if authority == "" {
		return false
	}
	for _, scheme := range schemes {
		if strings.HasPrefix(link, scheme+"://"+authority+"/") {
			return true
		}
	}
	return false
}

// ResolveReference resolves a possibly-relative ref URL against a base URL.
// If ref is absolute, it is returned as-is. Otherwise it is resolved
// relative to base using net/url.URL.ResolveReference.
func ResolveReference(base *url.URL, ref string) (string, error) {
	refURL, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("parse ref URL %q: %w", ref, err)
	}

	resolved := base.ResolveReference(refURL)
	return resolved.String(), nil
}
