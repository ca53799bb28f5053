// Package suffix implements the longest-suffix-match stemmers for
// Serbian: the two Kešelj–Šipka variants (greedy and optimal rule
// tables) and the Milošević stemmer with its irregular-form dictionary.
//
// All three stemmers share one engine: the candidate suffix starts as
// the whole lowercased word and is shortened from the left until it is
// a rule-table key that leaves a long enough residual stem. The longest
// applicable suffix therefore always wins, regardless of the order in
// which rules were declared. Words operate in dual1 coding — see the
// dual1 package for the transliteration layer.
//
// Rule tables and the dictionary are built once at package
// initialization and never mutated, so every stemmer is safe for
// concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Stemming is not idempotent: re-stemming an output may strip
//     further, since a stem can coincidentally end in a rule key.
//   - Stems are algorithmic residues, not guaranteed dictionary forms.
package suffix

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Rule transforms a word ending: a word ending in Suffix has that
// ending replaced by Replacement. Most rules strip the suffix entirely.
type Rule struct {
	Suffix      string
	Replacement string
}

// RuleTable is an immutable suffix-to-replacement mapping supporting
// longest-applicable-suffix queries. When the source rule list repeats
// a suffix, the last occurrence wins.
type RuleTable struct {
	rules        map[string]string
	maxSuffixLen int
}

// NewRuleTable builds a table from an ordered rule list.
func NewRuleTable(rules []Rule) *RuleTable {
	t := &RuleTable{rules: make(map[string]string, len(rules))}
	for _, r := range rules {
		t.rules[r.Suffix] = r.Replacement
		if len(r.Suffix) > t.maxSuffixLen {
			t.maxSuffixLen = len(r.Suffix)
		}
	}
	return t
}

// Lookup returns the replacement for an exact suffix key.
func (t *RuleTable) Lookup(suffix string) (string, bool) {
	repl, ok := t.rules[suffix]
	return repl, ok
}

// MaxSuffixLen returns the length in bytes of the longest suffix key.
// It bounds the candidate search in Stem.
func (t *RuleTable) MaxSuffixLen() int { return t.maxSuffixLen }

// Len returns the number of distinct suffix keys.
func (t *RuleTable) Len() int { return len(t.rules) }

// Stemmer applies a rule table to dual1-coded words under a
// per-variant length policy.
type Stemmer struct {
	table *RuleTable
	dict  *Dictionary // irregular-form override, nil for Kešelj–Šipka

	// shortWordLen and maxWordLen bound the coded word lengths that
	// are stemmed at all; words outside the window return unchanged.
	// Zero disables the bound.
	shortWordLen int
	maxWordLen   int

	// dynamicMinStem enables the Milošević residual-stem rule: the
	// stem must keep at least 3 characters when the word starts with a
	// dual1 digraph code, at least 2 otherwise. This stops a word from
	// being stripped down to half of its leading coded letter.
	dynamicMinStem bool
}

// KeseljSipkaGreedy returns the Kešelj–Šipka stemmer with the greedy
// suffix table. Words of 3 coded characters or fewer, or more than 30,
// are returned unchanged.
func KeseljSipkaGreedy() *Stemmer {
	return &Stemmer{table: keseljGreedyTable, shortWordLen: 3, maxWordLen: 30}
}

// KeseljSipkaOptimal returns the Kešelj–Šipka stemmer with the optimal
// suffix table. The length policy matches the greedy variant.
func KeseljSipkaOptimal() *Stemmer {
	return &Stemmer{table: keseljOptimalTable, shortWordLen: 3, maxWordLen: 30}
}

// Milosevic returns the Milošević stemmer: an irregular-form dictionary
// consulted first, then the suffix table under the dynamic
// minimum-stem rule.
func Milosevic() *Stemmer {
	return &Stemmer{table: milosevicTable, dict: milosevicDict, dynamicMinStem: true}
}

// Stem stems a single dual1-coded word. Case of the surviving stem is
// taken from the input; matching is done on the lowercased word. Words
// the policy exempts, and words no rule applies to, return unchanged.
func (st *Stemmer) Stem(word string) string {
	if word == "" {
		return word
	}
	if st.dict != nil {
		if lemma, ok := st.dict.Lookup(word); ok {
			return lemma
		}
	}
	if st.shortWordLen > 0 && len(word) <= st.shortWordLen {
		return word
	}
	if st.maxWordLen > 0 && len(word) > st.maxWordLen {
		return word
	}

	minStem := 0
	if st.dynamicMinStem {
		minStem = 2
		if hasCodedPrefix(word) {
			minStem = 3
		}
	}

	// Dual1 text is ASCII, so byte indexing is character indexing.
	// Passthrough runes outside ASCII never match a rule key and are
	// simply skipped over by the candidate loop.
	s := strings.ToLower(word)
	for s != "" {
		if len(s) <= st.table.maxSuffixLen && len(word)-len(s) >= minStem {
			if repl, ok := st.table.Lookup(s); ok {
				return word[:len(word)-len(s)] + repl
			}
		}
		s = s[1:]
	}
	return word
}

// Stems stems a slice of dual1-coded words in place order. Returns nil
// for nil input.
func (st *Stemmer) Stems(words []string) []string {
	if words == nil {
		return nil
	}
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = st.Stem(w)
	}
	return out
}

// hasCodedPrefix reports whether the word starts with one of the
// two-character dual1 digraph codes (cx, cy, zx, dx, dy, sx), with the
// first character in either case.
func hasCodedPrefix(word string) bool {
	if len(word) < 2 {
		return false
	}
	switch word[0] | 0x20 {
	case 'c', 'd':
		return word[1] == 'x' || word[1] == 'y'
	case 'z', 's':
		return word[1] == 'x'
	}
	return false
}

// Dictionary is an exact-match override of irregular inflected forms,
// keyed by the lowercase dual1-coded form. Values are lemma tags, some
// carrying a leading negation marker (e.g. "NE_jesam" for "nisam").
type Dictionary struct {
	lemmas map[string]string
}

type lemmaEntry struct {
	form  string
	lemma string
}

func newDictionary(entries []lemmaEntry) *Dictionary {
	d := &Dictionary{lemmas: make(map[string]string, len(entries))}
	for _, e := range entries {
		d.lemmas[e.form] = e.lemma
	}
	return d
}

// Lookup returns the lemma for an inflected form. The case of the
// lemma's first character mirrors the case of the word's first
// character; the rest of the lemma keeps its stored spelling.
func (d *Dictionary) Lookup(word string) (string, bool) {
	lemma, ok := d.lemmas[strings.ToLower(word)]
	if !ok {
		return "", false
	}
	first, _ := utf8.DecodeRuneInString(word)
	if unicode.IsUpper(first) {
		lr, size := utf8.DecodeRuneInString(lemma)
		return string(unicode.ToUpper(lr)) + lemma[size:], true
	}
	return lemma, true
}

// Len returns the number of distinct inflected forms.
func (d *Dictionary) Len() int { return len(d.lemmas) }
