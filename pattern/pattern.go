// Package pattern implements the Ljubešić–Pandžić stemmer for Croatian
// ("Simple stemmer for Croatian v0.1"). Unlike the Serbian suffix
// stemmers, it works directly on standard Latin script with diacritics;
// no transliteration layer is involved.
//
// A word is stemmed in three steps: stop words pass through untouched;
// the suffix transformation table normalizes the ending (first matching
// suffix in table order wins, deliberately not longest-match); then the
// ordered rule list is scanned and the first anchored
// prefix+suffix-alternation pattern that matches yields the prefix
// capture as the stem, provided the capture is longer than one letter
// and contains a vowel or a syllabic r. Rule order is load-bearing:
// specific morphological contexts precede the generic catch-alls.
//
// All tables are built at package initialization and never mutated, so
// every function is safe for concurrent use by multiple goroutines.
package pattern

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	// vowelPattern includes R for a capitalized syllabic r.
	vowelPattern = regexp.MustCompile(`[aeiouR]`)

	// syllabicR recognizes an r with no adjacent vowel.
	syllabicR = regexp.MustCompile(`(^|[^aeiou])r($|[^aeiou])`)
)

// Stem stems a single Croatian word. Stop words and words no rule
// reduces are returned unchanged (after the suffix transformation, if
// one applied).
func Stem(word string) string {
	if word == "" {
		return word
	}
	if stopset[strings.ToLower(word)] {
		return word
	}
	stemmed := transform(word)
	for _, re := range wordPatterns {
		m := re.FindStringSubmatch(stemmed)
		if m == nil {
			continue
		}
		if hasVowel(m[1]) && utf8.RuneCountInString(m[1]) > 1 {
			return m[1]
		}
	}
	return stemmed
}

// Stems stems a slice of words in place order. Returns nil for nil
// input.
func Stems(words []string) []string {
	if words == nil {
		return nil
	}
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = Stem(w)
	}
	return out
}

// transform rewrites the word ending using the first matching suffix in
// table order.
func transform(word string) string {
	for _, t := range transformTable {
		if strings.HasSuffix(word, t.suffix) {
			return strings.TrimSuffix(word, t.suffix) + t.replacement
		}
	}
	return word
}

// hasVowel reports whether the word contains a vowel, counting a
// syllabic r (an r between two non-vowels or at a word edge) as one.
func hasVowel(word string) bool {
	return vowelPattern.MatchString(syllabicR.ReplaceAllString(word, "${1}R${2}"))
}
