package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/sahan/dominious/internal/config"
	"github.com/sahan/dominious/internal/logger"
	"github.com/sahan/dominious/internal/repository"
	"github.com/sahan/dominious/internal/service"
)

const embedBatchSize = 16

// seed loads sample domain-name documents into the Qdrant collection
// that the suggestion pipeline retrieves from. Input is a CSV with two
// columns: category, comma-joined sample names.
func main() {
	var (
		filePath   = flag.String("file", "./data/samples.csv", "CSV file of category,names rows")
		configPath = flag.String("config", os.Getenv("CONFIG_PATH"), "config file path")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger := logger.NewDefault()
	logger.SetDefaultLogger(appLogger)
	defer logger.Sync()

	qdrantRepo, err := repository.NewQdrantRepository(&repository.QdrantConnectionConfig{
		Host:            cfg.Qdrant.Host,
		Port:            cfg.Qdrant.Port,
		Collection:      cfg.Qdrant.Collection,
		APIKey:          cfg.Qdrant.APIKey,
		UseTLS:          cfg.Qdrant.UseTLS,
		VectorDimension: cfg.Qdrant.Dimension,
	})
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to initialize Qdrant repository")
	}
	defer qdrantRepo.Close()

	ctx := context.Background()
	if err := qdrantRepo.EnsureCollection(ctx); err != nil {
		appLogger.WithError(err).Fatal("Failed to ensure Qdrant collection")
	}

	embeddingService := service.NewEmbeddingService(&service.EmbeddingConfig{
		Model:      cfg.Embedding.Model,
		APIKey:     cfg.Embedding.APIKey,
		Dimensions: cfg.Embedding.Dimensions,
	})

	samples, err := readSamples(*filePath)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to read sample file")
	}
	appLogger.WithField(logger.FieldCount, len(samples)).Info("Seeding sample documents")

	seeded := 0
	for start := 0; start < len(samples); start += embedBatchSize {
		end := start + embedBatchSize
		if end > len(samples) {
			end = len(samples)
		}
		batch := samples[start:end]

		texts := make([]string, len(batch))
		for i, s := range batch {
			texts[i] = s.Category + ": " + s.DomainNames
		}

		vectors, err := embeddingService.EmbedBatch(ctx, texts)
		if err != nil {
			appLogger.WithError(err).Fatal("Failed to embed batch")
		}

		for i, s := range batch {
			payload := s
			if err := qdrantRepo.Upsert(ctx, uuid.NewString(), vectors[i], &payload); err != nil {
				appLogger.WithError(err).WithField("category", s.Category).Error("Failed to upsert sample")
				continue
			}
			seeded++
		}
	}

	appLogger.WithField(logger.FieldCount, seeded).Info("Seeding finished")
}

func readSamples(path string) ([]repository.DomainSamplePayload, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = 2

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	samples := make([]repository.DomainSamplePayload, 0, len(records))
	for _, rec := range records {
		samples = append(samples, repository.DomainSamplePayload{
			Category:    rec[0],
			DomainNames: rec[1],
		})
	}
	return samples, nil
}
