// Package extract finds image source references in page markup.
package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"imgmirror/pkg/config"
)

// Extractor returns the raw src values of the images in a page, in document order
type Extractor interface {
	Extract(html string) ([]string, error)
}

// imgSrcPattern matches an <img ...> tag carrying a double-quoted src attribute
var imgSrcPattern = regexp.MustCompile(`<img [^>]*src="([^"]+)"`)

// RegexExtractor scans the page text with a single tag/attribute pattern.
// It is not an HTML parser: case, quoting and comments are taken literally.
type RegexExtractor struct{}

// Extract returns the first capture of every non-overlapping match
func (RegexExtractor) Extract(html string) ([]string, error) {
	matches := imgSrcPattern.FindAllStringSubmatch(html, -1)
	srcs := make([]string, 0, len(matches))
	for _, m := range matches {
		srcs = append(srcs, m[1])
	}
	return srcs, nil
}

// DOMExtractor parses the page and reads the src attribute of every img element
type DOMExtractor struct{}

// Extract returns the non-empty src attributes of img elements in document order
func (DOMExtractor) Extract(html string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}

	var srcs []string
	doc.Find("img[src]").Each(func(_ int, s *goquery.Selection) {
		if src, _ := s.Attr("src"); src != "" {
			srcs = append(srcs, src)
		}
	})
	return srcs, nil
}

// New returns the extractor for the configured mode
func New(mode string) (Extractor, error) {
	switch strings.ToLower(mode) {
	case "", config.ExtractModeRegex:
		return RegexExtractor{}, nil
	case config.ExtractModeDOM:
		return DOMExtractor{}, nil
	default:
		return nil, fmt.Errorf("unknown extract mode %q", mode)
	}
}
