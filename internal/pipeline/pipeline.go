// Package pipeline turns a single candidate URL into a structured
// product descriptor: validate, normalize, fetch, extract the readable
// body, then derive the descriptor fields through the summarization
// collaborator. No retries and no persistence happen here; those
// belong to the surrounding layers.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/prospectlab/redditscout/internal/extract"
	"github.com/prospectlab/redditscout/internal/fetch"
	"github.com/prospectlab/redditscout/internal/summarize"
	"github.com/prospectlab/redditscout/internal/urlnorm"
)

// ErrMissingInput reports an absent or blank URL; no network call is
// attempted.
var ErrMissingInput = errors.New("missing url")

// ErrInvalidURL matches any *InvalidURLError via errors.Is.
var ErrInvalidURL = errors.New("invalid url")

// ErrNoExtractableContent reports a reachable page with no qualifying
// readable body. Callers surface it differently from a fetch failure
// ("couldn't read this page" vs "couldn't reach this page").
var ErrNoExtractableContent = errors.New("no extractable content")

// ErrUnauthorized reports a request that failed the session gate
// before any pipeline work started.
var ErrUnauthorized = errors.New("unauthorized")

// InvalidURLError carries the malformed input and the parse cause.
type InvalidURLError struct {
	Input string
	Err   error
}

func (e *InvalidURLError) Error() string {
	return fmt.Sprintf("invalid url %q: %v", e.Input, e.Err)
}

func (e *InvalidURLError) Unwrap() error { return ErrInvalidURL }

// FetchError wraps a transport or status failure from the target URL.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Status returns the HTTP status when the failure was a non-success
// response, and 0 for transport-level causes.
func (e *FetchError) Status() int {
	var se *fetch.StatusError
	if errors.As(e.Err, &se) {
		return se.Code
	}
	return 0
}

// ProductDescriptor is the pipeline's output. URL always reflects the
// normalized input, never a post-redirect location.
type ProductDescriptor struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	TargetAudience string `json:"targetAudience"`
	URL            string `json:"url"`
}

// Fetcher is the document transport the pipeline depends on.
type Fetcher interface {
	Get(ctx context.Context, url string) ([]byte, string, error)
}

// Pipeline holds the three injected collaborators. It keeps no state
// between invocations, so concurrent calls need no coordination here;
// bounding in-flight extractions is the caller's job.
type Pipeline struct {
	Fetcher    Fetcher
	Extractor  extract.Extractor
	Summarizer summarize.Summarizer
}

// Describe runs the full extraction pipeline for one URL: exactly one
// outbound fetch and, when readable content exists, exactly one
// summarization call.
func (p *Pipeline) Describe(ctx context.Context, rawURL string) (*ProductDescriptor, error) {
	if strings.TrimSpace(rawURL) == "" {
		return nil, ErrMissingInput
	}
	u, err := urlnorm.ParseAbsolute(rawURL)
	if err != nil {
		return nil, &InvalidURLError{Input: rawURL, Err: err}
	}
	normalized := u.String()

	body, _, err := p.Fetcher.Get(ctx, normalized)
	if err != nil {
		// Caller cancellation is its own outcome, distinct from the
		// target being unreachable.
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &FetchError{URL: normalized, Err: err}
	}

	article := p.Extractor.Extract(body, u)
	if article == nil {
		return nil, ErrNoExtractableContent
	}

	d, err := p.Summarizer.Summarize(ctx, article.Title, article.TextContent)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	}

	return &ProductDescriptor{
		Name:           d.Name,
		Description:    d.Description,
		TargetAudience: d.TargetAudience,
		URL:            normalized,
	}, nil
}

// Authorizer reports whether the calling context carries a valid
// session. The surrounding request layer supplies the real check; this
// core never inspects credentials itself.
type Authorizer func(ctx context.Context) error

// Service is the authenticated entry point around the pipeline. A nil
// or failing Authorizer rejects the request before any network work.
type Service struct {
	Auth     Authorizer
	Pipeline *Pipeline
}

func (s *Service) Extract(ctx context.Context, rawURL string) (*ProductDescriptor, error) {
	if s.Auth == nil {
		return nil, ErrUnauthorized
	}
	if err := s.Auth(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	return s.Pipeline.Describe(ctx, rawURL)
}
