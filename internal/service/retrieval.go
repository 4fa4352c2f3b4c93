package service

import (
	"context"
	"regexp"
	"strings"

	"github.com/sahan/dominious/internal/logger"
	"github.com/sahan/dominious/internal/repository"
)

// sampleNamePattern matches individual names inside a stored sample
// payload, which may be comma separated or free-form.
var sampleNamePattern = regexp.MustCompile(`[A-Za-z][A-Za-z0-9]+`)

// vectorSearcher is the subset of the Qdrant repository used for
// sample retrieval.
type vectorSearcher interface {
	Search(ctx context.Context, vector []float32, topK int, filters *repository.SearchFilters) ([]repository.SearchResult, error)
}

// queryEmbedder produces a query vector for a text.
type queryEmbedder interface {
	EmbedQuery(ctx context.Context, query string) ([]float32, error)
}

// RetrievalService fetches sample domain names similar to a user
// description. Samples steer the generation prompt toward the naming
// style of existing registrations.
type RetrievalService struct {
	embedder queryEmbedder
	searcher vectorSearcher
	topK     int
	maxNames int
}

// NewRetrievalService creates a new retrieval service.
func NewRetrievalService(embedder queryEmbedder, searcher vectorSearcher, topK, maxNames int) *RetrievalService {
	if topK <= 0 {
		topK = 5
	}
	if maxNames <= 0 {
		maxNames = 15
	}
	return &RetrievalService{
		embedder: embedder,
		searcher: searcher,
		topK:     topK,
		maxNames: maxNames,
	}
}

// SampleNames returns a comma-separated list of sample names relevant
// to the description. Retrieval failures degrade to an empty sample
// list rather than failing the request.
func (s *RetrievalService) SampleNames(ctx context.Context, description string) string {
	if s.embedder == nil || s.searcher == nil {
		return ""
	}

	vector, err := s.embedder.EmbedQuery(ctx, description)
	if err != nil {
		logger.FromContext(ctx).
			WithField(logger.FieldComponent, "retrieval").
			WithError(err).
			Warn("sample retrieval: embedding failed")
		return ""
	}

	results, err := s.searcher.Search(ctx, vector, s.topK, nil)
	if err != nil {
		logger.FromContext(ctx).
			WithField(logger.FieldComponent, "retrieval").
			WithError(err).
			Warn("sample retrieval: vector search failed")
		return ""
	}

	var payloads []string
	for _, r := range results {
		if r.Payload == nil {
			continue
		}
		payloads = append(payloads, r.Payload.DomainNames)
	}

	names := extractSampleNames(payloads, s.maxNames)
	return strings.Join(names, ", ")
}

// extractSampleNames pulls distinct name tokens from raw payload
// strings, preserving first-seen order up to the limit.
func extractSampleNames(payloads []string, limit int) []string {
	seen := make(map[string]struct{})
	var names []string

	for _, payload := range payloads {
		for _, token := range sampleNamePattern.FindAllString(payload, -1) {
			key := strings.ToLower(token)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			names = append(names, token)
			if len(names) >= limit {
				return names
			}
		}
	}

	return names
}
