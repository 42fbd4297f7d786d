package extract

import (
	"bytes"
	"net/url"
	"strings"

	readability "codeberg.org/readeck/go-readability"
	"golang.org/x/net/html"
)

// ReadabilityExtractor delegates to the readeck readability port.
// Useful when the built-in heuristic underperforms on a target site;
// both engines honor the same absent-content contract.
type ReadabilityExtractor struct{}

func (ReadabilityExtractor) Extract(input []byte, base *url.URL) *Article {
	article, err := readability.FromReader(bytes.NewReader(input), base)
	if err != nil {
		return nil
	}
	content := strings.TrimSpace(article.Content)
	if content == "" {
		return nil
	}
	text := flattenHTMLString(content)
	if text == "" {
		return nil
	}
	title := strings.TrimSpace(article.Title)
	if title == "" {
		title = documentTitle(input)
	}
	return &Article{Title: title, TextContent: text, HTMLContent: content}
}

func flattenHTMLString(s string) string {
	node, err := html.Parse(strings.NewReader(s))
	if err != nil || node == nil {
		return ""
	}
	var b strings.Builder
	flattenNode(&b, node, false)
	return normalizeWhitespace(b.String())
}
