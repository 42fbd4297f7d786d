package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/prospectlab/redditscout/internal/app"
)

var (
	cfg        app.Config
	configPath string
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Local development keeps credentials in .env; absence is fine.
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:           "redditscout",
		Short:         "Generate Reddit identifier batches and extract product descriptors from URLs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				fc, err := app.LoadConfigFile(configPath)
				if err != nil {
					return err
				}
				app.ApplyFileConfig(&cfg, fc)
			}
			if cfg.Verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
			return app.ValidateConfig(cfg)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "Path to YAML or JSON config file")
	pf.StringVar(&cfg.LLMBaseURL, "llm.base", os.Getenv("LLM_BASE_URL"), "OpenAI-compatible base URL")
	pf.StringVar(&cfg.LLMModel, "llm.model", os.Getenv("LLM_MODEL"), "Model name")
	pf.StringVar(&cfg.LLMAPIKey, "llm.key", os.Getenv("LLM_API_KEY"), "API key for OpenAI-compatible server")
	pf.StringVar(&cfg.UserAgent, "fetch.ua", app.DefaultUserAgent, "User-Agent for outbound fetches")
	pf.DurationVar(&cfg.FetchTimeout, "fetch.timeout", app.DefaultFetchTimeout, "Per-request fetch timeout")
	pf.IntVar(&cfg.FetchMaxAttempts, "fetch.attempts", app.DefaultFetchMaxAttempts, "Fetch attempts including the first")
	pf.StringVar(&cfg.ExtractEngine, "extract.engine", "", "Extraction engine: heuristic (default) or readability")
	pf.IntVar(&cfg.MaxInputChars, "extract.maxInputChars", 0, "Max article characters handed to the model (0 = default)")
	pf.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Verbose logging")

	root.AddCommand(newRangeCommand(), newExtractCommand(), newScanCommand())

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}
