package extract

import (
	"bytes"
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// DefaultMinTextLen is the smallest normalized text length a winning
// candidate may have before the document counts as unreadable.
const DefaultMinTextLen = 100

// HeuristicExtractor scores candidate blocks by text density, comma
// count, link density, and class/id hints, then returns the
// highest-scoring subtree with boilerplate stripped and relative
// references resolved against the document URL.
type HeuristicExtractor struct {
	// MinTextLen overrides DefaultMinTextLen when positive.
	MinTextLen int
}

func (h HeuristicExtractor) Extract(input []byte, base *url.URL) *Article {
	root, err := html.Parse(bytes.NewReader(input))
	if err != nil || root == nil {
		return nil
	}
	pruneBoilerplate(root)
	body := findFirst(root, "body")
	if body == nil {
		return nil
	}

	best := bestCandidate(body)
	if best == nil {
		// Pages that put prose outside <p> tags still deserve a shot:
		// fall back to semantic containers, then the whole body.
		if best = findFirst(body, "article"); best == nil {
			if best = findFirst(body, "main"); best == nil {
				best = body
			}
		}
	}

	var b strings.Builder
	flattenNode(&b, best, false)
	text := normalizeWhitespace(b.String())
	min := h.MinTextLen
	if min <= 0 {
		min = DefaultMinTextLen
	}
	if len(text) < min {
		return nil
	}

	resolveReferences(best, base)
	var buf bytes.Buffer
	_ = html.Render(&buf, best)
	return &Article{
		Title:       documentTitle(input),
		TextContent: text,
		HTMLContent: buf.String(),
	}
}

// bestCandidate runs the paragraph-credit scoring pass. Paragraph-like
// blocks credit their parent fully and grandparent by half; the final
// score is scaled down by the candidate's link density.
func bestCandidate(body *html.Node) *html.Node {
	scores := map[*html.Node]float64{}
	var order []*html.Node

	credit := func(n *html.Node, pts float64) {
		if n == nil || n.Type != html.ElementNode {
			return
		}
		if _, seen := scores[n]; !seen {
			scores[n] = tagWeight(n) + hintWeight(n)
			order = append(order, n)
		}
		scores[n] += pts
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch strings.ToLower(n.Data) {
			case "p", "td", "pre", "blockquote":
				text := strings.TrimSpace(innerText(n))
				if len(text) >= 25 {
					pts := 1.0 + float64(strings.Count(text, ","))
					if extra := float64(len(text) / 100); extra > 3 {
						pts += 3
					} else {
						pts += extra
					}
					credit(n.Parent, pts)
					if n.Parent != nil {
						credit(n.Parent.Parent, pts/2)
					}
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(body)

	var best *html.Node
	var bestScore float64
	for _, cand := range order {
		s := scores[cand] * (1 - linkDensity(cand))
		if s <= 0 {
			continue
		}
		if best == nil || s > bestScore {
			best, bestScore = cand, s
		}
	}
	return best
}

func tagWeight(n *html.Node) float64 {
	switch strings.ToLower(n.Data) {
	case "article", "main":
		return 10
	case "div", "section":
		return 5
	case "pre", "td", "blockquote":
		return 3
	case "ol", "ul", "dl", "dd", "dt", "li", "form", "address":
		return -3
	case "h1", "h2", "h3", "h4", "h5", "h6", "th":
		return -5
	}
	return 0
}

var positiveHints = []string{"article", "content", "entry", "main", "post", "text", "story", "blog", "body"}
var negativeHints = []string{"sidebar", "comment", "nav", "footer", "header", "banner", "menu", "widget", "share", "related", "promo", "sponsor", "advert", "masthead", "breadcrumb", "pagination"}

// hintWeight inspects class and id markers the way readability ports
// do: author-supplied names are a strong signal of intent.
func hintWeight(n *html.Node) float64 {
	var w float64
	for _, attr := range n.Attr {
		key := strings.ToLower(attr.Key)
		if key != "id" && key != "class" {
			continue
		}
		val := strings.ToLower(attr.Val)
		if containsAny(val, negativeHints) {
			w -= 25
		}
		if containsAny(val, positiveHints) {
			w += 25
		}
	}
	return w
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}

func linkDensity(n *html.Node) float64 {
	total := len(strings.TrimSpace(innerText(n)))
	if total == 0 {
		return 0
	}
	var linked int
	var dfs func(*html.Node)
	dfs = func(cur *html.Node) {
		if cur.Type == html.ElementNode && strings.EqualFold(cur.Data, "a") {
			linked += len(strings.TrimSpace(innerText(cur)))
			return
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			dfs(c)
		}
	}
	dfs(n)
	if linked > total {
		linked = total
	}
	return float64(linked) / float64(total)
}

var boilerplateTags = map[string]bool{
	"script": true, "style": true, "noscript": true, "template": true,
	"iframe": true, "object": true, "embed": true,
	"nav": true, "footer": true, "aside": true, "form": true,
}

// pruneBoilerplate drops subtrees that never hold article content:
// scripted/embedded elements, navigational landmarks, and containers
// whose class/id names mark them as chrome rather than prose.
func pruneBoilerplate(n *html.Node) {
	var next *html.Node
	for c := n.FirstChild; c != nil; c = next {
		next = c.NextSibling
		if c.Type == html.ElementNode {
			name := strings.ToLower(c.Data)
			if boilerplateTags[name] || isChromeContainer(c) {
				n.RemoveChild(c)
				continue
			}
		}
		pruneBoilerplate(c)
	}
}

func isChromeContainer(n *html.Node) bool {
	for _, attr := range n.Attr {
		key := strings.ToLower(attr.Key)
		if key != "id" && key != "class" && key != "role" {
			continue
		}
		val := strings.ToLower(attr.Val)
		if containsAny(val, positiveHints) {
			return false
		}
		if containsAny(val, negativeHints) || containsAny(val, []string{"cookie", "consent", "gdpr"}) {
			return true
		}
	}
	return false
}

// resolveReferences rewrites href and src attributes in the subtree to
// absolute form so links and resources survive outside the original
// document.
func resolveReferences(n *html.Node, base *url.URL) {
	if base == nil {
		return
	}
	if n.Type == html.ElementNode {
		for i, attr := range n.Attr {
			key := strings.ToLower(attr.Key)
			if key != "href" && key != "src" {
				continue
			}
			ref, err := url.Parse(strings.TrimSpace(attr.Val))
			if err != nil {
				continue
			}
			n.Attr[i].Val = base.ResolveReference(ref).String()
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		resolveReferences(c, base)
	}
}
