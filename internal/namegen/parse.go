// Package namegen implements the candidate-generation pipeline: parsing
// model output into candidate names, deriving shortened variants, and
// filtering against the set of already-registered base names.
package namegen

import (
	"regexp"
	"strings"
)

const (
	// DefaultMaxCandidates caps how many names are kept from one
	// model response.
	DefaultMaxCandidates = 15

	minNameLength = 3
	maxNameLength = 20
)

var (
	// Strict numbered-list item: "3. BrightCart"
	strictItemPattern = regexp.MustCompile(`\d+\.\s+([a-zA-Z0-9]+)`)

	// Relaxed variant tolerating hyphens and underscores in the name.
	relaxedItemPattern = regexp.MustCompile(`\d+\.\s+([a-zA-Z0-9_-]+)`)

	numberedLinePattern = regexp.MustCompile(`^\d+\.`)
	nonAlphanumeric     = regexp.MustCompile(`[^a-zA-Z0-9]`)
)

// ParseCandidates extracts candidate domain names from free-form model
// output. The text is expected to loosely follow "N. name" numbered-list
// formatting but is not trusted: three extraction strategies are tried in
// order until one yields at least one token, then every token is
// lower-cased, stripped of non-alphanumeric characters, and kept only if
// its cleaned length is 3-20. Order of first appearance is preserved,
// duplicates are dropped, and the result is capped at max (or
// DefaultMaxCandidates when max <= 0). Unparseable text yields an empty
// list, never an error.
func ParseCandidates(text string, max int) []string {
	if max <= 0 {
		max = DefaultMaxCandidates
	}

	tokens := extractTokens(text)

	seen := make(map[string]bool, len(tokens))
	names := make([]string, 0, len(tokens))
	for _, token := range tokens {
		cleaned := CleanName(token)
		if cleaned == "" {
			continue
		}
		if seen[cleaned] {
			continue
		}
		seen[cleaned] = true
		names = append(names, cleaned)
		if len(names) >= max {
			break
		}
	}

	return names
}

// CleanName lower-cases a raw token, strips everything that is not an
// ASCII letter or digit, and returns the result if its length is within
// the accepted 3-20 range; otherwise it returns "".
func CleanName(token string) string {
	cleaned := nonAlphanumeric.ReplaceAllString(strings.ToLower(token), "")
	if len(cleaned) < minNameLength || len(cleaned) > maxNameLength {
		return ""
	}
	return cleaned
}

// extractTokens runs the extraction strategies in order and returns the
// matches of the first one that produces any.
func extractTokens(text string) []string {
	for _, pattern := range []*regexp.Regexp{strictItemPattern, relaxedItemPattern} {
		matches := pattern.FindAllStringSubmatch(text, -1)
		if len(matches) == 0 {
			continue
		}
		tokens := make([]string, 0, len(matches))
		for _, m := range matches {
			tokens = append(tokens, m[1])
		}
		return tokens
	}

	// Last resort: scan numbered lines and strip everything but the name.
	var tokens []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		loc := numberedLinePattern.FindStringIndex(line)
		if loc == nil {
			continue
		}
		rest := nonAlphanumeric.ReplaceAllString(line[loc[1]:], "")
		if rest != "" {
			tokens = append(tokens, rest)
		}
	}
	return tokens
}
