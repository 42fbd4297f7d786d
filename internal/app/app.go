package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"

	"github.com/prospectlab/redditscout/internal/extract"
	"github.com/prospectlab/redditscout/internal/fetch"
	"github.com/prospectlab/redditscout/internal/idrange"
	"github.com/prospectlab/redditscout/internal/llm"
	"github.com/prospectlab/redditscout/internal/pipeline"
	"github.com/prospectlab/redditscout/internal/reddit"
	"github.com/prospectlab/redditscout/internal/summarize"
)

// App wires the extraction pipeline and the range scanner behind one
// facade the CLI drives.
type App struct {
	cfg     Config
	Service *pipeline.Service
	Scanner *reddit.Client
}

func New(cfg Config) *App {
	transportCfg := openai.DefaultConfig(cfg.LLMAPIKey)
	if cfg.LLMBaseURL != "" {
		transportCfg.BaseURL = cfg.LLMBaseURL
	}
	ai := openai.NewClientWithConfig(transportCfg)

	fetcher := &fetch.Client{
		UserAgent:         cfg.UserAgent,
		MaxAttempts:       cfg.FetchMaxAttempts,
		PerRequestTimeout: cfg.FetchTimeout,
		// Arbitrary target sites get a modest shared pace; concurrency
		// bounding beyond this stays with the caller.
		Limiter: rate.NewLimiter(rate.Every(500*time.Millisecond), 2),
	}

	pl := &pipeline.Pipeline{
		Fetcher:   fetcher,
		Extractor: extract.ByName(cfg.ExtractEngine),
		Summarizer: &summarize.ChatSummarizer{
			Client:        &llm.OpenAIProvider{Inner: ai},
			Model:         cfg.LLMModel,
			MaxInputChars: cfg.MaxInputChars,
		},
	}

	return &App{
		cfg:     cfg,
		Service: &pipeline.Service{Auth: operatorSession, Pipeline: pl},
		Scanner: reddit.NewClient(cfg.UserAgent),
	}
}

// operatorSession authorizes every request: the CLI runs under the
// operator's own account. A web front end substitutes its real session
// check here.
func operatorSession(ctx context.Context) error { return nil }

// ExtractURL runs the pipeline for one user-submitted URL.
func (a *App) ExtractURL(ctx context.Context, raw string) (*pipeline.ProductDescriptor, error) {
	if err := RequireLLM(a.cfg); err != nil {
		return nil, err
	}
	log.Debug().Str("url", raw).Msg("extracting product descriptor")
	return a.Service.Extract(ctx, raw)
}

// GenerateRange returns the capped descending identifier batch between
// two bounds.
func (a *App) GenerateRange(start, end string, max int) ([]string, error) {
	if max <= 0 {
		max = a.maxBatch()
	}
	return idrange.Between(start, end, max)
}

// ScanRange fetches the posts behind a generated identifier batch.
func (a *App) ScanRange(ctx context.Context, start, end string, max int) ([]reddit.Post, error) {
	if max <= 0 {
		max = a.maxBatch()
	}
	log.Debug().Str("start", start).Str("end", end).Int("max", max).Msg("scanning identifier range")
	return a.Scanner.ScanRange(ctx, start, end, max)
}

func (a *App) maxBatch() int {
	if a.cfg.MaxBatch > 0 {
		return a.cfg.MaxBatch
	}
	return idrange.DefaultMaxCount
}
