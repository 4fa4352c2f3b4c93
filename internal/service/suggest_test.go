package service

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/sahan/dominious/internal/domain"
	"github.com/sahan/dominious/internal/namegen"
)

type capturedSearchLog struct {
	entries []*domain.SearchLog
	err     error
}

func (c *capturedSearchLog) Create(_ context.Context, entry *domain.SearchLog) error {
	c.entries = append(c.entries, entry)
	return c.err
}

func newTestSuggestService(gen TextGenerator, taken []string, logs searchLogWriter) *SuggestService {
	return NewSuggestService(
		nil, // no retrieval in unit tests
		gen,
		namegen.NewExtender(),
		namegen.NewAvailabilitySet(taken),
		logs,
		&SuggestConfig{MaxCandidates: 15, Suffix: ".lk"},
	)
}

func TestSuggestPipeline(t *testing.T) {
	gen := generatorFunc(func(_ context.Context, prompt string) (string, error) {
		if !strings.Contains(prompt, "an online bookstore") {
			t.Error("prompt does not carry the user description")
		}
		return "Suggested Domain Names:\n1. Alpha\n2. Beta\n3. Foo\n", nil
	})
	logs := &capturedSearchLog{}
	svc := newTestSuggestService(gen, []string{"foo"}, logs)

	got, err := svc.Suggest(context.Background(), "an online bookstore")
	if err != nil {
		t.Fatalf("Suggest() error: %v", err)
	}

	// Parsed to [alpha beta foo], extension is a no-op for single-part
	// names, sorted ascending by length, then foo dropped as taken.
	want := []string{"beta.lk", "alpha.lk"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Suggest() = %v, want %v", got, want)
	}

	if len(logs.entries) != 1 {
		t.Fatalf("got %d search log entries, want 1", len(logs.entries))
	}
	entry := logs.entries[0]
	if entry.Query != "an online bookstore" {
		t.Errorf("logged query = %q", entry.Query)
	}
	if entry.ParsedCount != 3 || entry.AvailableCount != 2 {
		t.Errorf("logged counts parsed=%d available=%d, want 3/2", entry.ParsedCount, entry.AvailableCount)
	}
	if entry.Names != "beta.lk,alpha.lk" {
		t.Errorf("logged names = %q", entry.Names)
	}
}

func TestSuggestGeneratorError(t *testing.T) {
	gen := generatorFunc(func(_ context.Context, _ string) (string, error) {
		return "", errors.New("model offline")
	})
	svc := newTestSuggestService(gen, nil, nil)

	if _, err := svc.Suggest(context.Background(), "a shop"); err == nil {
		t.Fatal("expected error when generation fails")
	}
}

func TestSuggestUnparseableOutput(t *testing.T) {
	gen := generatorFunc(func(_ context.Context, _ string) (string, error) {
		return "I am sorry, I cannot produce names today.", nil
	})
	svc := newTestSuggestService(gen, nil, nil)

	got, err := svc.Suggest(context.Background(), "a shop")
	if err != nil {
		t.Fatalf("Suggest() error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Suggest() = %v, want empty", got)
	}
}

func TestSuggestLogFailureDoesNotFailRequest(t *testing.T) {
	gen := generatorFunc(func(_ context.Context, _ string) (string, error) {
		return "1. Alpha\n", nil
	})
	logs := &capturedSearchLog{err: errors.New("db down")}
	svc := newTestSuggestService(gen, nil, logs)

	got, err := svc.Suggest(context.Background(), "a shop")
	if err != nil {
		t.Fatalf("Suggest() error: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"alpha.lk"}) {
		t.Errorf("Suggest() = %v", got)
	}
}

func TestExtractSampleNames(t *testing.T) {
	tests := []struct {
		name     string
		payloads []string
		limit    int
		want     []string
	}{
		{
			name:     "comma separated",
			payloads: []string{"CeylonTea, LankaMart, islandweb"},
			limit:    15,
			want:     []string{"CeylonTea", "LankaMart", "islandweb"},
		},
		{
			name:     "dedupe across payloads case-insensitively",
			payloads: []string{"ShopLanka, TeaHouse", "shoplanka, CeyloNet"},
			limit:    15,
			want:     []string{"ShopLanka", "TeaHouse", "CeyloNet"},
		},
		{
			name:     "limit applies",
			payloads: []string{"one1, two2, three3"},
			limit:    2,
			want:     []string{"one1", "two2"},
		},
		{
			name:     "empty payloads",
			payloads: nil,
			limit:    15,
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractSampleNames(tt.payloads, tt.limit)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("extractSampleNames() = %v, want %v", got, tt.want)
			}
		})
	}
}
