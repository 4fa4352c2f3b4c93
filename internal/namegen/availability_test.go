package namegen

import (
	"reflect"
	"strings"
	"testing"
)

func TestAvailabilitySet_Filter(t *testing.T) {
	set := NewAvailabilitySet([]string{"foo"})

	got := set.Filter([]string{"Foo.lk", "Bar.lk"})
	want := []string{"Bar.lk"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestAvailabilitySet_FilterPreservesOrder(t *testing.T) {
	set := NewAvailabilitySet([]string{"beta", "delta"})

	got := set.Filter([]string{"alpha", "beta", "gamma", "delta", "epsilon"})
	want := []string{"alpha", "gamma", "epsilon"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestAvailabilitySet_FilterUsesBaseBeforeDot(t *testing.T) {
	set := NewAvailabilitySet([]string{"shopnest"})

	got := set.Filter([]string{"ShopNest.lk", "shopnest", "shopnest.com.lk"})

	if len(got) != 0 {
		t.Errorf("expected all names filtered, got %v", got)
	}
}

func TestLoadAvailabilitySet(t *testing.T) {
	input := "Foo\n\n  bar  \nBAZ\n"

	set, err := LoadAvailabilitySet(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if set.Len() != 3 {
		t.Errorf("expected 3 names, got %d", set.Len())
	}
	for _, base := range []string{"foo", "bar", "baz", "FOO"} {
		if !set.Contains(base) {
			t.Errorf("expected set to contain %q", base)
		}
	}
}

func TestAvailabilitySet_FilterDropsShortenedVariant(t *testing.T) {
	e := NewExtender()
	set := NewAvailabilitySet([]string{"tecsolu"})

	got := set.Filter(e.Extend([]string{"TechnologySolutions"}))
	want := []string{"TechnologySolutions"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestAvailabilitySet_EmptySetKeepsEverything(t *testing.T) {
	set := NewAvailabilitySet(nil)

	names := []string{"alpha.lk", "beta.lk"}
	got := set.Filter(names)

	if !reflect.DeepEqual(got, names) {
		t.Errorf("expected %v, got %v", names, got)
	}
}
