package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/sahan/dominious/internal/domain"
	"github.com/sahan/dominious/internal/logger"
)

const (
	minEnrichConcurrency     = 3
	maxEnrichConcurrency     = 5
	defaultEnrichConcurrency = 4
)

// ProgressFunc receives an update after each name finishes. Calls are
// serialized; processed counts finished names including failures.
type ProgressFunc func(processed, total int, latest domain.DomainDetail)

// Enricher runs detail synthesis for a batch of names under bounded
// concurrency.
type Enricher struct {
	details     *DetailService
	concurrency int
}

// NewEnricher creates an enricher. Concurrency outside 3-5 is clamped;
// zero means the default of 4.
func NewEnricher(details *DetailService, concurrency int) *Enricher {
	switch {
	case concurrency <= 0:
		concurrency = defaultEnrichConcurrency
	case concurrency < minEnrichConcurrency:
		concurrency = minEnrichConcurrency
	case concurrency > maxEnrichConcurrency:
		concurrency = maxEnrichConcurrency
	}
	return &Enricher{details: details, concurrency: concurrency}
}

// EnrichBatch synthesizes details for every name and returns results
// aligned to the input order. A failing or panicking name yields a
// fallback detail in its slot; the batch itself never fails.
func (e *Enricher) EnrichBatch(ctx context.Context, description string, names []string, onProgress ProgressFunc) []domain.DomainDetail {
	total := len(names)
	results := make([]domain.DomainDetail, total)
	done := make([]bool, total)
	if total == 0 {
		return results
	}

	var (
		mu        sync.Mutex
		wg        sync.WaitGroup
		processed int
	)
	sem := make(chan struct{}, e.concurrency)

	record := func(i int, detail domain.DomainDetail) {
		mu.Lock()
		defer mu.Unlock()
		if done[i] {
			return
		}
		results[i] = detail
		done[i] = true
		processed++
		if onProgress != nil {
			onProgress(processed, total, detail)
		}
	}

	for i, name := range names {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					logger.FromContext(ctx).
						WithFields(logger.Fields{
							logger.FieldComponent: "enrich",
							logger.FieldDomain:    name,
							"panic":               fmt.Sprintf("%v", r),
						}).
						Error("enrichment worker panicked")
					record(i, e.details.fallbackDetail(e.details.ensureSuffix(name), fmt.Sprintf("panic: %v", r)))
				}
			}()

			sem <- struct{}{}
			defer func() { <-sem }()

			record(i, e.details.Synthesize(ctx, name, description))
		}(i, name)
	}

	wg.Wait()

	// Backstop for slots a worker never reached
	for i := range results {
		if !done[i] {
			results[i] = e.details.fallbackDetail(e.details.ensureSuffix(names[i]), "enrichment did not complete")
		}
	}

	return results
}
