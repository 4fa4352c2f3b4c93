package namegen

import (
	"reflect"
	"testing"
)

func TestExtender_ShortensLongParts(t *testing.T) {
	e := NewExtender()

	got := e.Extend([]string{"TechnologySolutions"})
	want := []string{"TecSolu", "TechnologySolutions"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestExtender_LeavesShortNamesAlone(t *testing.T) {
	e := NewExtender()

	tests := []struct {
		name  string
		input []string
	}{
		{name: "single part", input: []string{"cart"}},
		{name: "below min length", input: []string{"ShopNest"}},
		{name: "no part over max length", input: []string{"BrightCartel"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Extend(tt.input)
			if !reflect.DeepEqual(got, tt.input) {
				t.Errorf("expected %v unchanged, got %v", tt.input, got)
			}
		})
	}
}

func TestExtender_NoDuplicateVariants(t *testing.T) {
	e := NewExtender()

	got := e.Extend([]string{"MarketingNetwork", "MarNet"})

	seen := make(map[string]int)
	for _, name := range got {
		seen[name]++
	}
	for name, count := range seen {
		if count > 1 {
			t.Errorf("name %q appears %d times", name, count)
		}
	}
	if len(got) != 2 {
		t.Errorf("expected 2 names (variant already present), got %v", got)
	}
}

func TestExtender_SortsByLength(t *testing.T) {
	e := NewExtender()

	got := e.Extend([]string{"TechnologySolutions", "Cart", "ShopNest"})

	for i := 1; i < len(got); i++ {
		if len(got[i-1]) > len(got[i]) {
			t.Errorf("result not sorted by length: %v", got)
			break
		}
	}
	if !contains(got, "Cart") || !contains(got, "ShopNest") || !contains(got, "TechnologySolutions") {
		t.Errorf("original names missing from %v", got)
	}
}

func TestExtender_IdempotentOnVariants(t *testing.T) {
	e := NewExtender()

	once := e.Extend([]string{"TechnologySolutions"})
	twice := e.Extend(once)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("second pass changed result: %v vs %v", once, twice)
	}
}
