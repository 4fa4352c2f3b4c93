package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sahan/dominious/internal/domain"
	"github.com/sahan/dominious/internal/logger"
	"github.com/sahan/dominious/internal/namegen"
	"github.com/sahan/dominious/internal/prompts"
)

// searchLogWriter records suggestion requests. Satisfied by
// repository.SearchLogRepository.
type searchLogWriter interface {
	Create(ctx context.Context, entry *domain.SearchLog) error
}

// SuggestConfig holds configuration for the suggestion pipeline.
type SuggestConfig struct {
	MaxCandidates int
	Suffix        string
}

// SuggestService runs the full suggestion pipeline: retrieve samples,
// generate candidates, parse, extend, and filter against the taken-name
// set.
type SuggestService struct {
	retrieval     *RetrievalService
	generator     TextGenerator
	extender      *namegen.Extender
	availability  *namegen.AvailabilitySet
	searchLogs    searchLogWriter
	maxCandidates int
	suffix        string
}

// NewSuggestService creates a suggestion service. retrieval and
// searchLogs may be nil; the pipeline then runs without samples or
// request logging.
func NewSuggestService(
	retrieval *RetrievalService,
	generator TextGenerator,
	extender *namegen.Extender,
	availability *namegen.AvailabilitySet,
	searchLogs searchLogWriter,
	cfg *SuggestConfig,
) *SuggestService {
	maxCandidates := cfg.MaxCandidates
	if maxCandidates <= 0 {
		maxCandidates = namegen.DefaultMaxCandidates
	}
	suffix := cfg.Suffix
	if suffix == "" {
		suffix = ".lk"
	}
	return &SuggestService{
		retrieval:     retrieval,
		generator:     generator,
		extender:      extender,
		availability:  availability,
		searchLogs:    searchLogs,
		maxCandidates: maxCandidates,
		suffix:        suffix,
	}
}

// Suggest returns available domain name suggestions for a description.
// Names in the result carry the configured suffix.
func (s *SuggestService) Suggest(ctx context.Context, description string) ([]string, error) {
	start := time.Now()

	samples := ""
	if s.retrieval != nil {
		samples = s.retrieval.SampleNames(ctx, description)
	}

	raw, err := s.generator.Generate(ctx, prompts.GenerationPrompt(description, samples))
	if err != nil {
		return nil, fmt.Errorf("failed to generate candidates: %w", err)
	}

	parsed := namegen.ParseCandidates(raw, s.maxCandidates)
	extended := s.extender.Extend(parsed)

	available := extended
	if s.availability != nil {
		available = s.availability.Filter(extended)
	}

	suggestions := make([]string, 0, len(available))
	for _, name := range available {
		suggestions = append(suggestions, name+s.suffix)
	}

	s.logSearch(ctx, description, samples, len(parsed), len(extended), len(available), suggestions, time.Since(start))

	logger.FromContext(ctx).WithFields(logger.Fields{
		logger.FieldComponent:  "suggest",
		logger.FieldCount:      len(suggestions),
		logger.FieldDurationMs: time.Since(start).Milliseconds(),
	}).Info("suggestion pipeline finished")

	return suggestions, nil
}

// logSearch records the request best-effort; a failed write never
// fails the suggestion.
func (s *SuggestService) logSearch(ctx context.Context, query, samples string, parsed, extended, available int, names []string, elapsed time.Duration) {
	if s.searchLogs == nil {
		return
	}

	entry := &domain.SearchLog{
		Query:          query,
		SampleCount:    sampleCount(samples),
		ParsedCount:    parsed,
		ExtendedCount:  extended,
		AvailableCount: available,
		Names:          strings.Join(names, ","),
		DurationMs:     elapsed.Milliseconds(),
	}
	if err := s.searchLogs.Create(ctx, entry); err != nil {
		logger.FromContext(ctx).
			WithField(logger.FieldComponent, "suggest").
			WithError(err).
			Warn("failed to record search log")
	}
}

func sampleCount(samples string) int {
	if strings.TrimSpace(samples) == "" {
		return 0
	}
	return len(strings.Split(samples, ","))
}
