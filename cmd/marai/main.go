package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/ryukaizen/marai/internal/adapters/driven/corpus/filesystem"
	"github.com/ryukaizen/marai/internal/adapters/driven/fetcher/wiki"
	"github.com/ryukaizen/marai/internal/adapters/driven/paraphrase/inference"
	"github.com/ryukaizen/marai/internal/adapters/driven/segmenter/marathi"
	"github.com/ryukaizen/marai/internal/adapters/driven/websearch/google"
	"github.com/ryukaizen/marai/internal/adapters/driving/cli"
	"github.com/ryukaizen/marai/internal/config"
	"github.com/ryukaizen/marai/internal/core/ports/driven"
	"github.com/ryukaizen/marai/internal/core/services"
	"github.com/ryukaizen/marai/internal/logger"
	"github.com/ryukaizen/marai/internal/text"
)

func main() {
	_ = godotenv.Load()

	cli.SetBootstrap(wire)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// wire loads the configuration and connects the adapters to the services.
// It runs after flag parsing so --config is respected.
func wire(configPath string) error {
	if configPath == "" {
		var err error
		configPath, err = config.DefaultPath()
		if err != nil {
			return fmt.Errorf("resolving config path: %w", err)
		}
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	store, err := filesystem.New(cfg.Corpus.Dir)
	if err != nil {
		return fmt.Errorf("opening corpus at %s: %w", cfg.Corpus.Dir, err)
	}

	normalizer := text.NewNormalizer(marathi.New())

	// The search client is optional. Without credentials the pipeline still
	// answers from the corpus; only the web fallback is disabled.
	var searcher driven.WebSearcher
	apiKey := os.Getenv(config.EnvSearchAPIKey)
	engineID := os.Getenv(config.EnvSearchEngineID)
	if apiKey != "" && engineID != "" {
		client, err := google.New(context.Background(), google.Config{
			APIKey:            apiKey,
			EngineID:          engineID,
			RequestsPerSecond: cfg.Search.RequestsPerSecond,
		})
		if err != nil {
			return fmt.Errorf("creating search client: %w", err)
		}
		searcher = client
	} else {
		logger.Debug("Search credentials missing, web fallback disabled")
	}

	fetcher := wiki.New(time.Duration(cfg.Fetch.TimeoutSecs) * time.Second)

	answerer := services.NewAnswerer(
		store,
		normalizer,
		services.NewRetriever(normalizer),
		services.NewGate(normalizer),
		services.NewFallback(searcher, fetcher, cfg.Search.Site, cfg.Search.MaxResults),
	)

	cli.SetAnswerService(answerer)
	cli.SetCorpusStore(store)
	if cfg.Paraphrase.Endpoint != "" {
		cli.SetParaphraser(inference.New(
			cfg.Paraphrase.Endpoint,
			os.Getenv(config.EnvInferenceToken),
			time.Duration(cfg.Paraphrase.TimeoutSecs)*time.Second,
		))
	}

	return nil
}
