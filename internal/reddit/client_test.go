package reddit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"golang.org/x/time/rate"
)

const listingJSON = `{"data":{"children":[
	{"data":{"id":"1abc10a","name":"t3_1abc10a","title":"Show HN clone","author":"u1","subreddit":"startups","permalink":"/r/startups/comments/1abc10a/x/","url":"https://example.com/x","score":12,"num_comments":3,"created_utc":1700000000}},
	{"data":{"id":"1abc109","name":"t3_1abc109","title":"Another post","author":"u2","subreddit":"saas","permalink":"/r/saas/comments/1abc109/y/","url":"https://example.com/y","score":5,"num_comments":1,"created_utc":1700000001}}
]}}`

func newTestClient(baseURL string) *Client {
	c := NewClient("redditscout-test")
	c.baseURL = baseURL
	c.limiter = rate.NewLimiter(rate.Inf, 1)
	c.httpClient = &http.Client{Timeout: 2 * time.Second}
	return c
}

func TestFetchByFullnames_QualifiesAndDecodes(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/api/info.json") {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		gotQuery = r.URL.Query().Get("id")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(listingJSON))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	posts, err := c.FetchByFullnames(context.Background(), []string{"1abc10a", "t3_1abc109"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotQuery != "t3_1abc10a,t3_1abc109" {
		t.Fatalf("unexpected id query %q", gotQuery)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
	if posts[0].Fullname != "t3_1abc10a" || posts[0].Title != "Show HN clone" {
		t.Fatalf("unexpected first post: %+v", posts[0])
	}
}

func TestFetchByFullnames_EmptyBatchNoCall(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("no request expected for empty batch")
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	posts, err := c.FetchByFullnames(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(posts) != 0 {
		t.Fatalf("expected no posts, got %d", len(posts))
	}
}

func TestFetchByFullnames_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	if _, err := c.FetchByFullnames(context.Background(), []string{"abc"}); err == nil {
		t.Fatalf("expected error for 429")
	}
}

func TestScanRange_BatchMatchesRange(t *testing.T) {
	var gotIDs []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotIDs = strings.Split(r.URL.Query().Get("id"), ",")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"children":[]}}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	if _, err := c.ScanRange(context.Background(), "1abc100", "1abc10a", 20); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(gotIDs) != 10 {
		t.Fatalf("expected 10 identifiers in batch, got %d: %v", len(gotIDs), gotIDs)
	}
	if gotIDs[0] != "t3_1abc10a" {
		t.Fatalf("expected newest-first batch starting t3_1abc10a, got %q", gotIDs[0])
	}
}

func TestScanRange_EmptyRangeNoCall(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("no request expected for empty range")
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	posts, err := c.ScanRange(context.Background(), "zz", "10", 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(posts) != 0 {
		t.Fatalf("expected no posts, got %d", len(posts))
	}
}
