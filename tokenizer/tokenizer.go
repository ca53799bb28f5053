// Package tokenizer splits text into word and separator spans with byte
// offsets, for whole-line stemming where everything between words must
// survive verbatim.
//
// The invariant s[t.Start:t.End] == t.Text holds for every token, and
// concatenating all token texts reconstructs the original string. Words
// are maximal letter runs, possibly joined by single interior hyphens;
// every other rune, whitespace and punctuation alike, belongs to a
// Separator span.
//
// All functions are safe for concurrent use by multiple goroutines.
package tokenizer

import "fmt"

// TokenType classifies a token.
type TokenType int

const (
	Word      TokenType = iota // Alphabetic word (any script), including single interior hyphens
	Separator                  // Everything between words: whitespace, punctuation, digits, symbols
)

// String returns the name of the token type.
func (t TokenType) String() string {
	switch t {
	case Word:
		return "Word"
	case Separator:
		return "Separator"
	default:
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
}

// Token represents a span of text with its position and classification.
type Token struct {
	Text  string    // The token text
	Start int       // Byte offset in the original string (inclusive)
	End   int       // Byte offset in the original string (exclusive)
	Type  TokenType // Classification of the token
}

// String returns a debug representation, e.g. Word("pesma")[0:5].
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)[%d:%d]", t.Type, t.Text, t.Start, t.End)
}

// Tokens splits text into alternating Word and Separator spans. The
// byte offset invariant s[t.Start:t.End] == t.Text holds for every
// token, and concatenating all token texts reconstructs the original
// string.
func Tokens(s string) []Token {
	if s == "" {
		return nil
	}
	return scan(s)
}

// Words returns only Word-type token texts from the text.
func Words(s string) []string {
	if s == "" {
		return nil
	}
	tokens := scan(s)
	words := make([]string, 0, (len(tokens)+1)/2)
	for _, t := range tokens {
		if t.Type == Word {
			words = append(words, t.Text)
		}
	}
	return words
}
