package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig represents the single-file configuration schema. Nested
// sections map naturally to flags and env vars.
type FileConfig struct {
	LLM struct {
		BaseURL string `yaml:"base" json:"base"`
		Model   string `yaml:"model" json:"model"`
		APIKey  string `yaml:"key" json:"key"`
	} `yaml:"llm" json:"llm"`

	Fetch struct {
		UserAgent   string        `yaml:"ua" json:"ua"`
		Timeout     time.Duration `yaml:"timeout" json:"timeout"`
		MaxAttempts int           `yaml:"maxAttempts" json:"maxAttempts"`
	} `yaml:"fetch" json:"fetch"`

	Extract struct {
		Engine        string `yaml:"engine" json:"engine"`
		MaxInputChars int    `yaml:"maxInputChars" json:"maxInputChars"`
	} `yaml:"extract" json:"extract"`

	Scan struct {
		MaxBatch int `yaml:"maxBatch" json:"maxBatch"`
	} `yaml:"scan" json:"scan"`

	Verbose bool `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays values from FileConfig into cfg for any
// fields currently unset. Flags and env should already have been
// applied; the file supplies defaults without overriding explicit
// settings.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if cfg.LLMBaseURL == "" && fc.LLM.BaseURL != "" {
		cfg.LLMBaseURL = fc.LLM.BaseURL
	}
	if cfg.LLMModel == "" && fc.LLM.Model != "" {
		cfg.LLMModel = fc.LLM.Model
	}
	if cfg.LLMAPIKey == "" && fc.LLM.APIKey != "" {
		cfg.LLMAPIKey = fc.LLM.APIKey
	}
	if (cfg.UserAgent == "" || cfg.UserAgent == DefaultUserAgent) && fc.Fetch.UserAgent != "" {
		cfg.UserAgent = fc.Fetch.UserAgent
	}
	if (cfg.FetchTimeout == 0 || cfg.FetchTimeout == DefaultFetchTimeout) && fc.Fetch.Timeout > 0 {
		cfg.FetchTimeout = fc.Fetch.Timeout
	}
	if (cfg.FetchMaxAttempts == 0 || cfg.FetchMaxAttempts == DefaultFetchMaxAttempts) && fc.Fetch.MaxAttempts > 0 {
		cfg.FetchMaxAttempts = fc.Fetch.MaxAttempts
	}
	if cfg.ExtractEngine == "" && fc.Extract.Engine != "" {
		cfg.ExtractEngine = fc.Extract.Engine
	}
	if cfg.MaxInputChars == 0 && fc.Extract.MaxInputChars > 0 {
		cfg.MaxInputChars = fc.Extract.MaxInputChars
	}
	if cfg.MaxBatch == 0 && fc.Scan.MaxBatch > 0 {
		cfg.MaxBatch = fc.Scan.MaxBatch
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}
