// Package dual1 converts Serbian text between its standard written forms
// (Cyrillic or Latin script, with diacritics) and the ASCII-only dual1
// coding used internally by the suffix stemmers.
//
// In dual1 coding every Cyrillic letter is lowered to its Latin
// equivalent and every Latin letter with a diacritical mark — š, đ, č,
// ć, ž, dž — is written as a pair of plain ASCII letters (sx, dy, cx,
// cy, zx, dx). Depending on the coder, the digraphs lj and nj are
// additionally folded into ly and ny.
//
// Encoding is lossy with respect to script: Cyrillic input decodes back
// to Latin. It is lossless with respect to phonetic content, so
// Decode(Encode(s)) restores the Latin spelling with diacritics for any
// input covered by the mapping tables.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Plain ASCII sequences that happen to spell a dual1 code (e.g. a
//     literal "ly" in a foreign name) decode to the diacritic form.
//     This ambiguity is inherent to the coding system.
//   - The capital letter Ш encodes to "Sy", which has no decode
//     inverse. This mirrors the rule data of the original algorithm
//     descriptions and is pinned by a regression test; "Sx" would be
//     the form consistent with lowercase ш.
package dual1

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Coder encodes standard-script text into dual1 coding. The zero value
// folds no j-digraphs; use one of the package-level coders.
type Coder struct {
	// jTriggers holds the characters after which a following j/J is
	// folded into y, forming a dual1 digraph with the letter before it.
	jTriggers string
}

// KeseljSipka is the coder used by the Kešelj–Šipka stemmers: l+j and
// n+j fold into ly and ny.
var KeseljSipka = Coder{jTriggers: "lLnN"}

// Milosevic is the coder used by the Milošević stemmer: only d+j folds
// (into dy), while lj and nj are kept as-is.
var Milosevic = Coder{jTriggers: "dD"}

// Encode converts a word or a line of text from the standard form (in
// the Cyrillic or Latin script) into dual1 coding. Non-letters and
// letters outside the Serbian alphabets pass through unchanged.
func (c Coder) Encode(s string) string {
	if s == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(s))
	prev := ' '
	for _, r := range s {
		c.encodeRune(&b, r, prev)
		prev = r
	}
	return b.String()
}

// encodeRune appends the dual1 form of r to b. The previous source
// character is needed to detect digraphs spelled with a following j
// and to tell ž from the second half of dž.
func (c Coder) encodeRune(b *strings.Builder, r, prev rune) {
	switch {
	case !unicode.IsLetter(r):
		b.WriteRune(r)
	case r == 'j' || r == 'J':
		if strings.ContainsRune(c.jTriggers, prev) {
			b.WriteByte('y')
		} else {
			b.WriteRune(r)
		}
	case r < utf8.RuneSelf:
		// Plain ASCII letter other than j/J.
		b.WriteRune(r)
	case r == 'ž':
		// The second half of dž codes as a bare x.
		if prev == 'd' || prev == 'D' {
			b.WriteByte('x')
		} else {
			b.WriteString("zx")
		}
	default:
		if code, ok := letterCodes[r]; ok {
			b.WriteString(code)
		} else {
			b.WriteRune(r)
		}
	}
}

// decodeReplacer substitutes every two-character dual1 code with its
// diacritic form. The pair list is the exact inverse of the encoding
// tables ("Sy" excepted, see the package comment).
var decodeReplacer = strings.NewReplacer(
	"cy", "ć", "Cy", "Ć",
	"cx", "č", "Cx", "Č",
	"sx", "š", "Sx", "Š",
	"dx", "dž", "Dx", "Dž",
	"dy", "đ", "Dy", "Đ",
	"ly", "lj", "Ly", "Lj",
	"ny", "nj", "Ny", "Nj",
	"zx", "ž", "Zx", "Ž",
)

// Decode converts a word or a line of text from dual1 coding back into
// the standard Latin script form. Decoding is total over Encode's
// output alphabet and shared by all coders.
func Decode(s string) string {
	return decodeReplacer.Replace(s)
}
