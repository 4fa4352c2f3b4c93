package namegen

import (
	"regexp"
	"sort"
	"strings"
)

const (
	// DefaultMaxPartLength is the longest a name part may be before it
	// gets shortened to its first syllable.
	DefaultMaxPartLength = 6

	// DefaultMinDomainLength is the shortest full name that is worth
	// shortening at all.
	DefaultMinDomainLength = 9
)

// namePartPattern detects capitalized-word-style parts: "BrightCart"
// splits into "Bright" and "Cart".
var namePartPattern = regexp.MustCompile(`[A-Z]?[a-z]+`)

// Extender derives shortened variants for long multi-part candidate
// names and merges them with the originals.
type Extender struct {
	MaxPartLength   int
	MinDomainLength int
}

// NewExtender returns an Extender with the default thresholds.
func NewExtender() *Extender {
	return &Extender{
		MaxPartLength:   DefaultMaxPartLength,
		MinDomainLength: DefaultMinDomainLength,
	}
}

// Extend returns the input names plus a shortened variant for every name
// that splits into two or more parts, exceeds MinDomainLength overall,
// and has at least one part longer than MaxPartLength. Over-long parts
// are replaced by their first syllable; every part is re-capitalized. A
// variant is only appended when it is not already in the accumulated
// list. The final list is sorted ascending by length (stable).
func (e *Extender) Extend(names []string) []string {
	extended := make([]string, len(names))
	copy(extended, names)

	for _, name := range names {
		parts := namePartPattern.FindAllString(name, -1)
		if len(parts) < 2 {
			continue
		}
		if len(name) <= e.MinDomainLength || !anyLongerThan(parts, e.MaxPartLength) {
			continue
		}

		newParts := make([]string, len(parts))
		for i, part := range parts {
			if len(part) > e.MaxPartLength {
				newParts[i] = FirstSyllable(part)
			} else {
				newParts[i] = strings.ToLower(part)
			}
		}

		variant := joinCapitalized(newParts)
		if !contains(extended, variant) {
			extended = append(extended, variant)
		}
	}

	sort.SliceStable(extended, func(i, j int) bool {
		return len(extended[i]) < len(extended[j])
	})

	return extended
}

func anyLongerThan(parts []string, max int) bool {
	for _, p := range parts {
		if len(p) > max {
			return true
		}
	}
	return false
}

func joinCapitalized(parts []string) string {
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
