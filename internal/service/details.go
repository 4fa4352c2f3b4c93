package service

import (
	"context"
	"strings"
	"time"

	"github.com/sahan/dominious/internal/domain"
	"github.com/sahan/dominious/internal/logger"
	"github.com/sahan/dominious/internal/prompts"
)

// DetailConfig holds configuration for detail synthesis.
type DetailConfig struct {
	Suffix     string        // domain extension appended to every name
	RetryCount int           // generate+parse attempts per name
	RetryPause time.Duration // pause between attempts
	Timeout    time.Duration // per-call generation timeout
}

// DetailService turns a candidate name into marketing details by
// asking the LLM for a structured description and parsing whatever
// comes back.
type DetailService struct {
	generator  TextGenerator
	suffix     string
	retryCount int
	retryPause time.Duration
	timeout    time.Duration
}

// NewDetailService creates a new detail service.
func NewDetailService(generator TextGenerator, cfg *DetailConfig) *DetailService {
	suffix := cfg.Suffix
	if suffix == "" {
		suffix = ".lk"
	}
	retryCount := cfg.RetryCount
	if retryCount <= 0 {
		retryCount = 3
	}
	retryPause := cfg.RetryPause
	if retryPause <= 0 {
		retryPause = time.Second
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &DetailService{
		generator:  generator,
		suffix:     suffix,
		retryCount: retryCount,
		retryPause: retryPause,
		timeout:    timeout,
	}
}

// Synthesize generates marketing details for a single name. It never
// returns an error: when every attempt fails the result is a fallback
// detail with the Error field set. The returned DomainName always
// carries the configured suffix.
func (s *DetailService) Synthesize(ctx context.Context, name, description string) domain.DomainDetail {
	fullName := s.ensureSuffix(name)
	prompt := prompts.DescriptionPrompt(fullName, description)

	var lastErr string
	for attempt := 1; attempt <= s.retryCount; attempt++ {
		if ctx.Err() != nil {
			lastErr = ctx.Err().Error()
			break
		}

		output, err := s.generate(ctx, prompt)
		if err != nil {
			lastErr = err.Error()
			logger.FromContext(ctx).
				WithFields(logger.Fields{
					logger.FieldComponent: "details",
					logger.FieldDomain:    fullName,
					"attempt":             attempt,
				}).
				WithError(err).
				Warn("detail generation attempt failed")
			s.pause(ctx)
			continue
		}

		detail, ok := parseDetail(output)
		if !ok {
			lastErr = "unparseable model output"
			s.pause(ctx)
			continue
		}

		detail.DomainName = fullName
		if len(detail.RelatedFields) == 0 {
			detail.RelatedFields = append([]string(nil), prompts.FallbackRelatedFields...)
		}
		return detail
	}

	return s.fallbackDetail(fullName, lastErr)
}

// generate runs one model call under the per-call timeout.
func (s *DetailService) generate(ctx context.Context, prompt string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.generator.Generate(callCtx, prompt)
}

func (s *DetailService) pause(ctx context.Context) {
	select {
	case <-time.After(s.retryPause):
	case <-ctx.Done():
	}
}

func (s *DetailService) ensureSuffix(name string) string {
	trimmed := strings.TrimSpace(name)
	if strings.HasSuffix(strings.ToLower(trimmed), s.suffix) {
		return trimmed
	}
	// Strip any other extension the caller attached
	if idx := strings.Index(trimmed, "."); idx > 0 {
		trimmed = trimmed[:idx]
	}
	return trimmed + s.suffix
}

func (s *DetailService) fallbackDetail(fullName, reason string) domain.DomainDetail {
	if reason == "" {
		reason = "failed to generate description"
	}
	return domain.DomainDetail{
		DomainName:        fullName,
		DomainDescription: "Failed to generate description: " + reason,
		RelatedFields:     append([]string(nil), prompts.FallbackRelatedFields...),
		Error:             reason,
	}
}
