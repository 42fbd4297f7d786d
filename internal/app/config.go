package app

import (
	"errors"
	"time"
)

// Flag defaults shared with the file overlay: a field still holding
// its flag default counts as unset, so the config file can supply it.
const (
	DefaultUserAgent        = "redditscout/1.0 (+https://github.com/prospectlab/redditscout)"
	DefaultFetchTimeout     = 15 * time.Second
	DefaultFetchMaxAttempts = 2
)

// Config holds runtime configuration for the application.
type Config struct {
	// LLM
	LLMBaseURL string
	LLMModel   string
	LLMAPIKey  string

	// Fetching
	UserAgent        string
	FetchTimeout     time.Duration
	FetchMaxAttempts int

	// Extraction
	ExtractEngine string
	MaxInputChars int

	// Range scanning
	MaxBatch int

	Verbose bool
}

// ValidateConfig performs minimal schema validation. LLM settings are
// checked separately because range and scan operations never touch the
// model.
func ValidateConfig(cfg Config) error {
	if cfg.FetchTimeout < 0 || cfg.FetchMaxAttempts < 0 || cfg.MaxInputChars < 0 || cfg.MaxBatch < 0 {
		return errors.New("config: negative limits are not allowed")
	}
	return nil
}

// RequireLLM checks the settings extraction needs before any request
// goes out.
func RequireLLM(cfg Config) error {
	if cfg.LLMModel == "" {
		return errors.New("config: llm.model is required (or set LLM_MODEL)")
	}
	return nil
}
