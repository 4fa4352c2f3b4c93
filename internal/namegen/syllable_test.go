package namegen

import "testing"

func TestFirstSyllable(t *testing.T) {
	tests := []struct {
		word string
		want string
	}{
		// Multi-syllable words shortened to an adjusted first syllable.
		{word: "technology", want: "tec"},
		{word: "marketing", want: "mar"},
		{word: "network", want: "net"},

		// Short first syllable extended up to the next vowel.
		{word: "solutions", want: "solu"},
		{word: "delivery", want: "deli"},

		// Boundary consonant doubled into the prefix.
		{word: "running", want: "runn"},

		// Single syllable returned as-is.
		{word: "cart", want: "cart"},
		{word: "shop", want: "shop"},

		// No vowels at all: whole word unchanged.
		{word: "bcdfg", want: "bcdfg"},

		// Upper case is normalized first.
		{word: "Technology", want: "tec"},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := FirstSyllable(tt.word); got != tt.want {
				t.Errorf("FirstSyllable(%q) = %q, want %q", tt.word, got, tt.want)
			}
		})
	}
}

func TestSplitSyllables(t *testing.T) {
	tests := []struct {
		word string
		want []string
	}{
		{word: "cart", want: []string{"cart"}},
		{word: "technology", want: []string{"tec", "hno", "lo", "gy"}},
		{word: "solutions", want: []string{"so", "lu", "tions"}},
		{word: "bcdfg", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			got := splitSyllables(tt.word)
			if len(got) != len(tt.want) {
				t.Fatalf("splitSyllables(%q) = %v, want %v", tt.word, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("splitSyllables(%q)[%d] = %q, want %q", tt.word, i, got[i], tt.want[i])
				}
			}
		})
	}
}
