package namegen

import "strings"

const vowels = "aeiouy"

func isVowel(c byte) bool {
	return strings.IndexByte(vowels, c) >= 0
}

// FirstSyllable returns the adjusted first syllable of a word, used to
// shorten long name segments while keeping them pronounceable. The word
// is segmented into vowel-run syllables; the first syllable is then
// extended by a character or two from the second so that the prefix does
// not end abruptly. A word with no detectable syllables is returned
// unchanged. The heuristic intentionally favors short, recognizable
// prefixes over phonological correctness.
func FirstSyllable(word string) string {
	word = strings.ToLower(word)

	syllables := splitSyllables(word)
	if len(syllables) == 0 {
		return word
	}
	if len(syllables) == 1 {
		return syllables[0]
	}

	first, next := syllables[0], syllables[1]

	if len(first) > 2 {
		// Borrow one character when the next syllable opens with a
		// vowel or doubles the boundary consonant.
		if isVowel(next[0]) || next[0] == first[len(first)-1] {
			first += next[:1]
		}
		return first
	}

	// Very short first syllable: extend up to and including the next
	// vowel so the prefix stays pronounceable.
	if first[len(first)-1] == next[0] {
		return first + next[:1]
	}
	for i := 0; i < len(next); i++ {
		first += string(next[i])
		if isVowel(next[i]) {
			break
		}
	}
	return first
}

// splitSyllables segments a lower-case word into syllable-like chunks: a
// maximal consonant run followed by a vowel run (y counts as a vowel),
// plus a single trailing consonant when the consonant cluster that
// follows belongs to two syllables, or the whole tail when the word ends
// in consonants.
func splitSyllables(word string) []string {
	var syllables []string

	i, n := 0, len(word)
	for i < n {
		start := i

		for i < n && !isVowel(word[i]) {
			i++
		}
		if i == n {
			// Trailing consonants without a vowel never form a syllable.
			break
		}
		for i < n && isVowel(word[i]) {
			i++
		}

		// Measure the consonant cluster after the vowel run.
		j := i
		for j < n && !isVowel(word[j]) {
			j++
		}
		switch {
		case j == n:
			i = n
		case j-i >= 2:
			i++ // keep one consonant, the rest starts the next syllable
		}

		syllables = append(syllables, word[start:i])
	}

	return syllables
}
