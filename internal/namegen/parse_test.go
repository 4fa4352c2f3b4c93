package namegen

import (
	"reflect"
	"testing"
)

func TestParseCandidates_NumberedList(t *testing.T) {
	text := "Suggested Domain Names:\n1. BrightCart\n2. ShopNest\n3. CeylonMart\n"

	got := ParseCandidates(text, 0)
	want := []string{"brightcart", "shopnest", "ceylonmart"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestParseCandidates_EmptyText(t *testing.T) {
	if got := ParseCandidates("", 10); len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}

func TestParseCandidates_NoNumberedItems(t *testing.T) {
	if got := ParseCandidates("Here are some great names for you!", 10); len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}

func TestParseCandidates_CapsAtMax(t *testing.T) {
	text := "1. Alpha\n2. Beta\n3. Gamma\n4. Delta\n5. Epsilon\n"

	got := ParseCandidates(text, 3)
	want := []string{"alpha", "beta", "gamma"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestParseCandidates_DropsDuplicates(t *testing.T) {
	text := "1. Alpha\n2. alpha\n3. ALPHA\n4. Beta\n"

	got := ParseCandidates(text, 10)
	want := []string{"alpha", "beta"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestParseCandidates_LengthBounds(t *testing.T) {
	text := "1. ab\n2. abc\n3. thisnameisfarlongerthantwentycharacters\n"

	got := ParseCandidates(text, 10)
	want := []string{"abc"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestParseCandidates_LineFallback(t *testing.T) {
	// No whitespace after the numbering token, so neither regex
	// strategy matches and the line scanner takes over.
	text := "1.BrightCart\n2.Shop Nest!\nnot a list line\n"

	got := ParseCandidates(text, 10)
	want := []string{"brightcart", "shopnest"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestCleanName(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{name: "mixed case", token: "BrightCart", want: "brightcart"},
		{name: "punctuation stripped", token: "shop-nest!", want: "shopnest"},
		{name: "too short", token: "ab", want: ""},
		{name: "too long", token: "averyveryverylongdomainnametoken", want: ""},
		{name: "cleans to empty", token: "---", want: ""},
		{name: "digits kept", token: "Shop24", want: "shop24"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanName(tt.token); got != tt.want {
				t.Errorf("CleanName(%q) = %q, want %q", tt.token, got, tt.want)
			}
		})
	}
}
