// Package reddit consumes identifier batches against Reddit's public
// bulk info endpoint. Identifiers travel verbatim in their native
// base-36 text form, qualified with the link kind prefix.
package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/prospectlab/redditscout/internal/idrange"
)

const defaultBaseURL = "https://www.reddit.com"

// KindLink is the fullname prefix for link (post) things.
const KindLink = "t3"

// Post is the cleaned shape of one listing child.
type Post struct {
	ID          string  `json:"id"`
	Fullname    string  `json:"name"`
	Title       string  `json:"title"`
	SelfText    string  `json:"selftext,omitempty"`
	Author      string  `json:"author"`
	Subreddit   string  `json:"subreddit"`
	Permalink   string  `json:"permalink"`
	URL         string  `json:"url"`
	Score       int     `json:"score"`
	NumComments int     `json:"num_comments"`
	CreatedUTC  float64 `json:"created_utc"`
}

type listingResponse struct {
	Data struct {
		Children []struct {
			Data struct {
				ID          string  `json:"id"`
				Name        string  `json:"name"`
				Title       string  `json:"title"`
				SelfText    string  `json:"selftext"`
				Author      string  `json:"author"`
				Subreddit   string  `json:"subreddit"`
				Permalink   string  `json:"permalink"`
				URL         string  `json:"url"`
				Score       int     `json:"score"`
				NumComments int     `json:"num_comments"`
				CreatedUTC  float64 `json:"created_utc"`
			} `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

// Client hits the public JSON endpoints without credentials, so it
// paces itself conservatively.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	userAgent  string
	baseURL    string
}

func NewClient(userAgent string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		// Public JSON limit: 1 request / 2 seconds.
		limiter:   rate.NewLimiter(rate.Every(2*time.Second), 1),
		userAgent: userAgent,
		baseURL:   defaultBaseURL,
	}
}

// FetchByFullnames retrieves the posts behind a batch of identifiers
// in one call. Bare identifiers gain the link kind prefix; already
// qualified fullnames pass through. An empty batch performs no network
// call.
func (c *Client) FetchByFullnames(ctx context.Context, ids []string) ([]Post, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(ids))
	for _, id := range ids {
		names = append(names, qualify(id))
	}
	endpoint := fmt.Sprintf("%s/api/info.json?id=%s", c.baseURL, url.QueryEscape(strings.Join(names, ",")))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("reddit info status: %d", resp.StatusCode)
	}

	var listing listingResponse
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		return nil, fmt.Errorf("decode listing: %w", err)
	}

	posts := make([]Post, 0, len(listing.Data.Children))
	for _, child := range listing.Data.Children {
		d := child.Data
		posts = append(posts, Post{
			ID:          d.ID,
			Fullname:    d.Name,
			Title:       d.Title,
			SelfText:    d.SelfText,
			Author:      d.Author,
			Subreddit:   d.Subreddit,
			Permalink:   d.Permalink,
			URL:         d.URL,
			Score:       d.Score,
			NumComments: d.NumComments,
			CreatedUTC:  d.CreatedUTC,
		})
	}
	return posts, nil
}

// ScanRange generates the capped descending identifier batch between
// two bounds and fetches it in one bulk call.
func (c *Client) ScanRange(ctx context.Context, start, end string, max int) ([]Post, error) {
	ids, err := idrange.Between(start, end, max)
	if err != nil {
		return nil, err
	}
	return c.FetchByFullnames(ctx, ids)
}

func qualify(id string) string {
	if strings.Contains(id, "_") {
		return id
	}
	return KindLink + "_" + id
}
