package tokenizer

import (
	"unicode"
	"unicode/utf8"
)

// scan splits s into alternating Word and Separator spans using a
// rune-by-rune state machine. The caller guarantees s is non-empty.
//
// A word is a maximal run of letters; a single hyphen (U+002D) with a
// letter on both sides joins two runs into one word. A double hyphen,
// or a hyphen at a word edge, ends the word and falls into the
// following separator span.
func scan(s string) []Token {
	tokens := make([]Token, 0, len(s)/4+1)

	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])

		if unicode.IsLetter(r) {
			tok := scanWord(s, i)
			tokens = append(tokens, tok)
			i = tok.End
			continue
		}

		// Separator: everything up to the next letter.
		start := i
		i += size
		for i < len(s) {
			nr, ns := utf8.DecodeRuneInString(s[i:])
			if unicode.IsLetter(nr) {
				break
			}
			i += ns
		}
		tokens = append(tokens, Token{Text: s[start:i], Start: start, End: i, Type: Separator})
	}

	return tokens
}

// scanWord reads a word token starting at position pos. The rune at pos
// is a letter.
func scanWord(s string, pos int) Token {
	i := consumeLetterRun(s, pos)

	// Extend across single hyphens with a letter on the far side.
	for i < len(s) && s[i] == '-' {
		next := i + 1
		if next >= len(s) {
			break
		}
		nr, _ := utf8.DecodeRuneInString(s[next:])
		if !unicode.IsLetter(nr) {
			break
		}
		i = consumeLetterRun(s, next)
	}

	return Token{Text: s[pos:i], Start: pos, End: i, Type: Word}
}

// consumeLetterRun consumes a contiguous run of letters.
func consumeLetterRun(s string, pos int) int {
	for pos < len(s) {
		r, size := utf8.DecodeRuneInString(s[pos:])
		if !unicode.IsLetter(r) {
			break
		}
		pos += size
	}
	return pos
}
