package extract

import (
	"net/url"
	"strings"
	"testing"
)

const productPage = `<!doctype html>
<html>
  <head><title>Acme Widget — Home</title></head>
  <body>
    <nav>Home | Pricing | About</nav>
    <div class="sidebar">
      <a href="/promo">Promo one</a>
      <a href="/promo2">Promo two</a>
    </div>
    <div class="content">
      <h1>Acme Widget</h1>
      <p>Acme Widget is a modular workbench automation kit, designed for small
      fabrication shops, hobbyist makers, and teaching labs that need repeatable
      setups without industrial budgets.</p>
      <p>Every unit ships with a calibrated base, interchangeable tool heads,
      and an open control protocol, so integrators can script jobs, swap
      fixtures, and log results from day one.</p>
      <p>See the <a href="/docs/setup">setup guide</a> for rail alignment,
      firmware flashing, and the first-cut checklist.</p>
    </div>
    <footer>© Acme Corp</footer>
  </body>
</html>`

func mustURL(t *testing.T, s string) *url.URL {
	t.Helper()
	u, err := url.Parse(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return u
}

func TestHeuristic_PicksArticleBlock(t *testing.T) {
	art := HeuristicExtractor{}.Extract([]byte(productPage), mustURL(t, "https://acme.example/widget"))
	if art == nil {
		t.Fatalf("expected an article, got nil")
	}
	if art.Title != "Acme Widget — Home" {
		t.Fatalf("unexpected title %q", art.Title)
	}
	if !strings.Contains(art.TextContent, "workbench automation kit") {
		t.Fatalf("expected main paragraph in text, got: %q", art.TextContent)
	}
	if strings.Contains(art.TextContent, "Promo one") {
		t.Fatalf("sidebar text leaked into extraction: %q", art.TextContent)
	}
	if strings.Contains(art.TextContent, "Home | Pricing") {
		t.Fatalf("nav text leaked into extraction: %q", art.TextContent)
	}
	if strings.Contains(art.TextContent, "Acme Corp") {
		t.Fatalf("footer text leaked into extraction: %q", art.TextContent)
	}
}

func TestHeuristic_ResolvesRelativeReferences(t *testing.T) {
	art := HeuristicExtractor{}.Extract([]byte(productPage), mustURL(t, "https://acme.example/widget"))
	if art == nil {
		t.Fatalf("expected an article, got nil")
	}
	if !strings.Contains(art.HTMLContent, `href="https://acme.example/docs/setup"`) {
		t.Fatalf("expected resolved setup link in HTML, got: %q", art.HTMLContent)
	}
}

func TestHeuristic_EmptyBodyIsAbsent(t *testing.T) {
	for _, page := range []string{
		`<!doctype html><html><head><title>Blank</title></head><body></body></html>`,
		`<!doctype html><html><body><p>too short</p></body></html>`,
		``,
	} {
		if art := (HeuristicExtractor{}).Extract([]byte(page), mustURL(t, "https://acme.example/")); art != nil {
			t.Fatalf("expected nil article for %q, got %+v", page, art)
		}
	}
}

func TestHeuristic_FallsBackToSemanticContainer(t *testing.T) {
	// Prose outside <p> tags: no paragraph candidates, so the semantic
	// container fallback has to carry it.
	page := `<!doctype html><html><head><title>Plain</title></head><body>
	<article>` + strings.Repeat("Plain prose without paragraph tags. ", 10) + `</article>
	</body></html>`
	art := HeuristicExtractor{}.Extract([]byte(page), mustURL(t, "https://acme.example/"))
	if art == nil {
		t.Fatalf("expected fallback extraction, got nil")
	}
	if !strings.Contains(art.TextContent, "Plain prose") {
		t.Fatalf("expected prose in text, got %q", art.TextContent)
	}
}

func TestDocumentTitle_MetaFallback(t *testing.T) {
	page := `<!doctype html><html><head>
	<meta property="og:title" content="OG Name">
	</head><body><p>x</p></body></html>`
	if got := documentTitle([]byte(page)); got != "OG Name" {
		t.Fatalf("expected og:title fallback, got %q", got)
	}
}

func TestByName(t *testing.T) {
	if _, ok := ByName("readability").(ReadabilityExtractor); !ok {
		t.Fatalf("expected ReadabilityExtractor for \"readability\"")
	}
	if _, ok := ByName("").(HeuristicExtractor); !ok {
		t.Fatalf("expected HeuristicExtractor default")
	}
	if _, ok := ByName("unknown").(HeuristicExtractor); !ok {
		t.Fatalf("expected HeuristicExtractor for unknown name")
	}
}

func BenchmarkHeuristicExtract(b *testing.B) {
	base, _ := url.Parse("https://acme.example/widget")
	in := []byte(productPage)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if art := (HeuristicExtractor{}).Extract(in, base); art == nil {
			b.Fatal("expected article")
		}
	}
}
