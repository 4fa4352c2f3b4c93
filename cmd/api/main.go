package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sahan/dominious/internal/api"
	"github.com/sahan/dominious/internal/api/middleware"
	"github.com/sahan/dominious/internal/config"
	"github.com/sahan/dominious/internal/logger"
	"github.com/sahan/dominious/internal/namegen"
	"github.com/sahan/dominious/internal/repository"
	"github.com/sahan/dominious/internal/service"
	"github.com/sahan/dominious/internal/storage"
)

func main() {
	// Load configuration
	// Support CONFIG_PATH environment variable for production deployments
	configPath := os.Getenv("CONFIG_PATH")
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	appLogger := logger.NewDefault()
	logger.SetDefaultLogger(appLogger)
	defer logger.Sync()

	// Initialize database
	db, err := repository.InitDB(&cfg.Database)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to initialize database")
	}

	// Initialize repositories
	feedbackRepo := repository.NewFeedbackRepository(db)
	searchLogRepo := repository.NewSearchLogRepository(db)

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

	// Ensure Qdrant collection exists
	ctx := context.Background()
	if err := qdrantRepo.EnsureCollection(ctx); err != nil {
		appLogger.WithError(err).Fatal("Failed to ensure Qdrant collection")
	}

	// Load the registered-name list
	availability, err := loadAvailability(ctx, &cfg.Availability)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to load availability set")
	}
	appLogger.WithField(logger.FieldCount, availability.Len()).Info("Availability set loaded")

	// Initialize services
	embeddingService := service.NewEmbeddingService(&service.EmbeddingConfig{
		Model:      cfg.Embedding.Model,
		APIKey:     cfg.Embedding.APIKey,
		Dimensions: cfg.Embedding.Dimensions,
	})

	generator := service.NewLLMGenerator(&service.GeneratorConfig{
		Model:       cfg.LLM.Model,
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
		Timeout:     cfg.LLM.Timeout,
	})

	retrieval := service.NewRetrievalService(embeddingService, qdrantRepo, 5, cfg.Suggest.SampleCount)

	extender := &namegen.Extender{
		MaxPartLength:   cfg.Suggest.MaxPartLength,
		MinDomainLength: cfg.Suggest.MinDomainLength,
	}

	suggestService := service.NewSuggestService(
		retrieval,
		generator,
		extender,
		availability,
		searchLogRepo,
		&service.SuggestConfig{
			MaxCandidates: cfg.Suggest.MaxCandidates,
			Suffix:        cfg.Suggest.Suffix,
		},
	)

	detailService := service.NewDetailService(generator, &service.DetailConfig{
		Suffix:     cfg.Suggest.Suffix,
		RetryCount: cfg.Suggest.RetryCount,
		RetryPause: cfg.Suggest.RetryPause,
		Timeout:    cfg.Suggest.DetailTimeout,
	})

	enricher := service.NewEnricher(detailService, cfg.Suggest.Concurrency)
	taskManager := service.NewTaskManager(service.NewMemoryTaskStore(), enricher)

	// Setup router
	router := api.SetupRouter(&api.RouterConfig{
		Suggest:  suggestService,
		Details:  detailService,
		Tasks:    taskManager,
		Feedback: feedbackRepo,
		CORS: middleware.CORSConfig{
			AllowedOrigins:  cfg.Server.CORS.AllowedOrigins,
			AllowAllOrigins: cfg.Server.CORS.AllowAllOrigins,
		},
		Mode: cfg.Server.Mode,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		appLogger.WithFields(logger.Fields{
			"port": cfg.Server.Port,
			"mode": cfg.Server.Mode,
		}).Info("Starting API server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.WithError(err).Fatal("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.WithError(err).Fatal("Server forced to shutdown")
	}

	appLogger.Info("Server exited")
}

// loadAvailability fetches the registered-name list from the configured
// backend and builds the in-memory set.
func loadAvailability(ctx context.Context, cfg *config.AvailabilityConfig) (*namegen.AvailabilitySet, error) {
	store, key, err := storage.NewStorage(&storage.Config{
		Source:    cfg.Source,
		FilePath:  cfg.FilePath,
		ObjectKey: cfg.ObjectKey,
		S3: storage.S3Config{
			Endpoint:  cfg.Endpoint,
			AccessKey: cfg.AccessKey,
			SecretKey: cfg.SecretKey,
			UseSSL:    cfg.UseSSL,
			Bucket:    cfg.Bucket,
			Region:    cfg.Region,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	reader, err := store.Download(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch name list %s: %w", key, err)
	}
	defer reader.Close()

	return namegen.LoadAvailabilitySet(reader)
}
