package extract

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// documentTitle resolves the page title from the head: the <title>
// element first, then Open Graph and Twitter card metadata.
func documentTitle(input []byte) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(input))
	if err != nil {
		return ""
	}
	if t := strings.TrimSpace(doc.Find("title").First().Text()); t != "" {
		return t
	}
	for _, sel := range []string{
		`meta[property="og:title"]`,
		`meta[name="twitter:title"]`,
	} {
		if v, ok := doc.Find(sel).First().Attr("content"); ok {
			if v = strings.TrimSpace(v); v != "" {
				return v
			}
		}
	}
	return strings.TrimSpace(doc.Find("h1").First().Text())
}
