package wordpress

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"golang.org/x/net/html"
)

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// dateLayouts covers the timestamp variants WPGraphQL emits.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate parses a WPGraphQL timestamp.
func ParseDate(iso string) (time.Time, error) {
	var err error
	for _, layout := range dateLayouts {
		var t time.Time
		if t, err = time.Parse(layout, iso); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// FormatDate renders an ISO-8601 timestamp in the long es-US form,
// e.g. "2 de enero de 2024". Unparseable input is returned unchanged.
func FormatDate(iso string) string {
	t, err := ParseDate(iso)
	if err != nil {
		return iso
	}
	return fmt.Sprintf("%d de %s de %d", t.Day(), spanishMonths[t.Month()-1], t.Year())
}

var (
	tagPattern    = regexp.MustCompile(`<[^>]*>`)
	entityPattern = regexp.MustCompile(`&[^;]+;`)
)

// CleanExcerpt strips markup tags and HTML entity sequences from an
// excerpt fragment, trims whitespace and truncates to maxLength runes.
// The ellipsis marker is appended only when truncation happened, so
// cleaning already-clean text of an acceptable length is a no-op.
func CleanExcerpt(excerpt string, maxLength int) string {
	if maxLength < 0 {
		maxLength = 0
	}

	clean := tagPattern.ReplaceAllString(excerpt, "")
	clean = entityPattern.ReplaceAllString(clean, "")
	clean = strings.TrimSpace(clean)

	runes := []rune(clean)
	if len(runes) <= maxLength {
		return clean
	}
	return strings.TrimSpace(string(runes[:maxLength])) + "..."
}

// FirstImageURL returns the src of the first <img> in an HTML
// fragment, or empty when there is none. Used as the social image
// fallback for posts without a featured image.
func FirstImageURL(fragment string) string {
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return ""
	}

	var find func(*html.Node) string
	find = func(n *html.Node) string {
		if n.Type == html.ElementNode && n.Data == "img" {
			for _, attr := range n.Attr {
				if attr.Key == "src" && attr.Val != "" {
					return attr.Val
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if src := find(c); src != "" {
				return src
			}
		}
		return ""
	}
	return find(doc)
}
