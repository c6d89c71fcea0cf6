package checker

import (
	"errors"
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"
)

// linkSelector matches the hyperlink elements of a page.
const linkSelector = "a[href], area[href]"

// ExtractLinks parses an HTML document and returns the href value of every
// anchor and area element, in document order. Values are returned exactly as
// written: relative, fragment-only and non-HTTP links are kept, and
// duplicates are not removed.
//
// The body is decoded to UTF-8 using the charset from contentType or the
// document's meta tags.
func ExtractLinks(body io.Reader, contentType string) ([]string, error) {
	links := []string{}

	utf8Body, err := charset.NewReader(body, contentType)
	if err != nil {
		if errors.Is(err, io.EOF) {
			// Empty body
			return links, nil
		}
		return nil, fmt.Errorf("decode body: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(utf8Body)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	doc.Find(linkSelector).Each(func(_ int, s *goquery.Selection) {
		if href, ok := s.Attr("href"); ok {
			links = append(links, href)
		}
	})

	return links, nil
}
