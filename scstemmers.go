// Package scstemmers stems Serbian and Croatian text with the four
// published stemming algorithms for the two languages: the greedy and
// the optimal subsumption-based stemmer of Kešelj and Šipka, the
// refinement by Milošević, and the Croatian stemmer of Ljubešić and
// Pandžić.
//
// The Serbian stemmers accept text in the Cyrillic or the Latin script
// and return stems in the Latin script; the transliteration round trip
// happens inside this package (see the dual1 subpackage). The Croatian
// stemmer works directly on Latin-script text.
//
// Input is normalized to Unicode NFC before stemming, so decomposed
// diacritics (e.g. c followed by U+030C) are treated the same as their
// precomposed forms.
//
// A Stemmer is immutable after construction and safe for concurrent use
// by multiple goroutines.
package scstemmers

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/vukbatanovic/SCStemmers/dual1"
	"github.com/vukbatanovic/SCStemmers/pattern"
	"github.com/vukbatanovic/SCStemmers/suffix"
	"github.com/vukbatanovic/SCStemmers/tokenizer"
)

// Algorithm identifies one of the four stemming algorithms. The numeric
// values match the identifiers used by the scstemmers command.
type Algorithm int

const (
	KeseljSipkaGreedy  Algorithm = 1 // Kešelj–Šipka, greedy suffix table (Serbian)
	KeseljSipkaOptimal Algorithm = 2 // Kešelj–Šipka, optimal suffix table (Serbian)
	Milosevic          Algorithm = 3 // Milošević (Serbian)
	LjubesicPandzic    Algorithm = 4 // Ljubešić–Pandžić (Croatian)
)

// String returns the published name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case KeseljSipkaGreedy:
		return "Kešelj–Šipka greedy"
	case KeseljSipkaOptimal:
		return "Kešelj–Šipka optimal"
	case Milosevic:
		return "Milošević"
	case LjubesicPandzic:
		return "Ljubešić–Pandžić"
	default:
		return "unknown"
	}
}

// Stemmer applies one of the four algorithms to words, lines, or whole
// texts.
type Stemmer struct {
	alg      Algorithm
	stemWord func(word string) string
}

// New returns a stemmer for the given algorithm. Unknown algorithm
// values return an error.
func New(alg Algorithm) (*Stemmer, error) {
	switch alg {
	case KeseljSipkaGreedy:
		return newSerbian(alg, dual1.KeseljSipka, suffix.KeseljSipkaGreedy()), nil
	case KeseljSipkaOptimal:
		return newSerbian(alg, dual1.KeseljSipka, suffix.KeseljSipkaOptimal()), nil
	case Milosevic:
		return newSerbian(alg, dual1.Milosevic, suffix.Milosevic()), nil
	case LjubesicPandzic:
		return &Stemmer{alg: alg, stemWord: pattern.Stem}, nil
	default:
		return nil, &UnknownAlgorithmError{Algorithm: alg}
	}
}

// newSerbian wires a suffix stemmer behind the dual1 coding round trip:
// encode, stem in coded space, decode back to Latin with diacritics.
func newSerbian(alg Algorithm, coder dual1.Coder, st *suffix.Stemmer) *Stemmer {
	return &Stemmer{
		alg: alg,
		stemWord: func(word string) string {
			return dual1.Decode(st.Stem(coder.Encode(word)))
		},
	}
}

// Algorithm returns the algorithm this stemmer applies.
func (s *Stemmer) Algorithm() Algorithm { return s.alg }

// StemWord stems a single word. Words the algorithm exempts are
// returned unchanged (for the Serbian stemmers, in the Latin script).
func (s *Stemmer) StemWord(word string) string {
	return s.stemWord(norm.NFC.String(word))
}

// StemLine stems every word of a line, preserving the separators
// between them, and trims surrounding whitespace from the result.
func (s *Stemmer) StemLine(line string) string {
	line = norm.NFC.String(line)
	var b strings.Builder
	b.Grow(len(line))
	for _, t := range tokenizer.Tokens(line) {
		if t.Type == tokenizer.Word {
			b.WriteString(s.stemWord(t.Text))
		} else {
			b.WriteString(t.Text)
		}
	}
	return strings.TrimSpace(b.String())
}

// StemText stems a multi-line text line by line. Line structure is
// preserved; each line is trimmed as by StemLine, and the whole result
// is trimmed once more.
func (s *Stemmer) StemText(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = s.StemLine(line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// UnknownAlgorithmError reports a New call with an algorithm value
// outside the four defined ones.
type UnknownAlgorithmError struct {
	Algorithm Algorithm
}

func (e *UnknownAlgorithmError) Error() string {
	return fmt.Sprintf("scstemmers: unknown algorithm %d", int(e.Algorithm))
}
