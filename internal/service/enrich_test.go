package service

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sahan/dominious/internal/domain"
)

func okOutput() string {
	return `{"domainName": "x.lk", "domainDescription": "A solid choice.", "relatedFields": ["Business"]}`
}

func newTestEnricher(gen TextGenerator, concurrency int) *Enricher {
	cfg := fastDetailConfig()
	cfg.RetryCount = 1
	return NewEnricher(NewDetailService(gen, cfg), concurrency)
}

func TestEnrichBatchAlignsResultsToInput(t *testing.T) {
	gen := generatorFunc(func(_ context.Context, _ string) (string, error) {
		return okOutput(), nil
	})
	e := newTestEnricher(gen, 4)

	names := []string{"alpha", "bravo", "charlie", "delta", "echo", "foxtrot"}
	results := e.EnrichBatch(context.Background(), "a shop", names, nil)

	if len(results) != len(names) {
		t.Fatalf("got %d results, want %d", len(results), len(names))
	}
	for i, name := range names {
		want := name + ".lk"
		if results[i].DomainName != want {
			t.Errorf("results[%d].DomainName = %q, want %q", i, results[i].DomainName, want)
		}
	}
}

func TestEnrichBatchIsolatesFailures(t *testing.T) {
	gen := generatorFunc(func(_ context.Context, prompt string) (string, error) {
		if strings.Contains(prompt, "bad") {
			return "", errors.New("model refused")
		}
		return okOutput(), nil
	})
	e := newTestEnricher(gen, 4)

	names := []string{"good", "badname", "alsogood", "badtwo"}
	results := e.EnrichBatch(context.Background(), "a shop", names, nil)

	wantFailed := []bool{false, true, false, true}
	for i, want := range wantFailed {
		if results[i].Failed() != want {
			t.Errorf("results[%d].Failed() = %v, want %v (error=%q)", i, results[i].Failed(), want, results[i].Error)
		}
		// Failures still carry a usable detail shape
		if results[i].DomainName == "" || results[i].DomainDescription == "" {
			t.Errorf("results[%d] missing name or description", i)
		}
	}
}

func TestEnrichBatchAllFailures(t *testing.T) {
	gen := generatorFunc(func(_ context.Context, _ string) (string, error) {
		return "", errors.New("model down")
	})
	e := newTestEnricher(gen, 4)

	names := []string{"one", "two", "three", "four", "five"}
	results := e.EnrichBatch(context.Background(), "a shop", names, nil)

	if len(results) != len(names) {
		t.Fatalf("got %d results, want %d", len(results), len(names))
	}
	for i := range results {
		if results[i].Error == "" {
			t.Errorf("results[%d].Error is empty, want failure reason", i)
		}
		if results[i].DomainName != names[i]+".lk" {
			t.Errorf("results[%d].DomainName = %q, want %q", i, results[i].DomainName, names[i]+".lk")
		}
	}
}

func TestEnrichBatchProgressCounting(t *testing.T) {
	gen := generatorFunc(func(_ context.Context, _ string) (string, error) {
		time.Sleep(time.Duration(rand.Intn(5)) * time.Millisecond)
		return okOutput(), nil
	})
	e := newTestEnricher(gen, 4)

	names := []string{"one", "two", "three", "four", "five", "six", "seven", "eight"}

	var mu sync.Mutex
	var seen []int
	results := e.EnrichBatch(context.Background(), "a shop", names, func(processed, total int, latest domain.DomainDetail) {
		mu.Lock()
		defer mu.Unlock()
		if total != len(names) {
			t.Errorf("total = %d, want %d", total, len(names))
		}
		if latest.DomainName == "" {
			t.Error("progress update carries empty detail")
		}
		seen = append(seen, processed)
	})

	if len(results) != len(names) {
		t.Fatalf("got %d results, want %d", len(results), len(names))
	}
	if len(seen) != len(names) {
		t.Fatalf("got %d progress updates, want %d", len(seen), len(names))
	}
	for i, p := range seen {
		if p != i+1 {
			t.Fatalf("progress sequence %v not strictly incrementing", seen)
		}
	}
}

func TestEnrichBatchRespectsConcurrencyCap(t *testing.T) {
	var current, peak int64
	gen := generatorFunc(func(_ context.Context, _ string) (string, error) {
		n := atomic.AddInt64(&current, 1)
		for {
			p := atomic.LoadInt64(&peak)
			if n <= p || atomic.CompareAndSwapInt64(&peak, p, n) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)
		atomic.AddInt64(&current, -1)
		return okOutput(), nil
	})
	e := newTestEnricher(gen, 4)

	names := make([]string, 20)
	for i := range names {
		names[i] = "name" + string(rune('a'+i))
	}
	e.EnrichBatch(context.Background(), "a shop", names, nil)

	if got := atomic.LoadInt64(&peak); got > 4 {
		t.Errorf("peak concurrency = %d, want <= 4", got)
	}
}

func TestEnrichBatchRecoversFromPanic(t *testing.T) {
	gen := generatorFunc(func(_ context.Context, prompt string) (string, error) {
		if strings.Contains(prompt, "explode") {
			panic("boom")
		}
		return okOutput(), nil
	})
	e := newTestEnricher(gen, 4)

	names := []string{"fine", "explode", "alsofine"}
	results := e.EnrichBatch(context.Background(), "a shop", names, nil)

	if !results[1].Failed() {
		t.Fatal("panicking name should yield a fallback detail")
	}
	if !strings.Contains(results[1].Error, "panic") {
		t.Errorf("error = %q, want panic marker", results[1].Error)
	}
	if results[0].Failed() || results[2].Failed() {
		t.Error("panic leaked into sibling results")
	}
}

func TestEnrichBatchEmptyInput(t *testing.T) {
	gen := generatorFunc(func(_ context.Context, _ string) (string, error) {
		t.Fatal("generator must not be called for empty input")
		return "", nil
	})
	e := newTestEnricher(gen, 4)

	calls := 0
	results := e.EnrichBatch(context.Background(), "a shop", nil, func(int, int, domain.DomainDetail) {
		calls++
	})
	if len(results) != 0 {
		t.Errorf("got %d results, want 0", len(results))
	}
	if calls != 0 {
		t.Errorf("got %d progress calls, want 0", calls)
	}
}
