package tokenizer

import (
	"strings"
	"testing"
)

func TestTokens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []Token
	}{
		{
			name: "words and punctuation",
			in:   "Dobar dan!",
			want: []Token{
				{Text: "Dobar", Start: 0, End: 5, Type: Word},
				{Text: " ", Start: 5, End: 6, Type: Separator},
				{Text: "dan", Start: 6, End: 9, Type: Word},
				{Text: "!", Start: 9, End: 10, Type: Separator},
			},
		},
		{
			name: "hyphenated word",
			in:   "jugo-zapad",
			want: []Token{
				{Text: "jugo-zapad", Start: 0, End: 10, Type: Word},
			},
		},
		{
			name: "double hyphen splits",
			in:   "a--b",
			want: []Token{
				{Text: "a", Start: 0, End: 1, Type: Word},
				{Text: "--", Start: 1, End: 3, Type: Separator},
				{Text: "b", Start: 3, End: 4, Type: Word},
			},
		},
		{
			name: "trailing hyphen is separator",
			in:   "reč-",
			want: []Token{
				{Text: "reč", Start: 0, End: 4, Type: Word},
				{Text: "-", Start: 4, End: 5, Type: Separator},
			},
		},
		{
			name: "digits are separators",
			in:   "od 5 reči",
			want: []Token{
				{Text: "od", Start: 0, End: 2, Type: Word},
				{Text: " 5 ", Start: 2, End: 5, Type: Separator},
				{Text: "reči", Start: 5, End: 10, Type: Word},
			},
		},
		{
			name: "cyrillic word",
			in:   "Добар дан",
			want: []Token{
				{Text: "Добар", Start: 0, End: 10, Type: Word},
				{Text: " ", Start: 10, End: 11, Type: Separator},
				{Text: "дан", Start: 11, End: 17, Type: Word},
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Tokens(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("Tokens(%q) = %v, want %v", tt.in, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("Tokens(%q)[%d] = %v, want %v", tt.in, i, got[i], tt.want[i])
				}
			}
		})
	}
}

// Concatenating all token texts reconstructs the input, and every token
// slices the input at its offsets.
func TestTokensReconstruct(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"Vuk je pevao, a mi nismo!",
		"  leading and trailing  ",
		"crno-beli --- 42 šuma",
		"Ако знаш... онда знаш.",
		"",
	}
	for _, in := range inputs {
		tokens := Tokens(in)
		var b strings.Builder
		for _, tok := range tokens {
			if in[tok.Start:tok.End] != tok.Text {
				t.Errorf("token %v does not slice %q at its offsets", tok, in)
			}
			b.WriteString(tok.Text)
		}
		if b.String() != in {
			t.Errorf("concatenated tokens = %q, want %q", b.String(), in)
		}
	}
}

func TestWords(t *testing.T) {
	t.Parallel()

	got := Words("Vuk je pevao, zar ne?")
	want := []string{"Vuk", "je", "pevao", "zar", "ne"}
	if len(got) != len(want) {
		t.Fatalf("Words = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Words[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if Words("") != nil {
		t.Error(`Words("") != nil`)
	}
	if ws := Words("12 34 !"); len(ws) != 0 {
		t.Errorf("Words with no letters = %v, want empty", ws)
	}
}
