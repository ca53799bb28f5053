package pattern

import "testing"

func TestStem(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"noun feminine", "djevojčica", "djevojčic"},
		{"noun plural", "knjigama", "knjig"},
		{"verb past", "pjevali", "pjeva"},
		{"adjective", "lijepoga", "lijep"},
		{"syllabic r counts as vowel", "krvi", "krv"},
		{"abstract noun", "mladosti", "mladost"},
		{"no vowel in stem falls through", "psa", "psa"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Stem(tt.in); got != tt.want {
				t.Errorf("Stem(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStemStopWords(t *testing.T) {
	t.Parallel()

	for _, w := range []string{"sam", "jesu", "bijaše", "možemo", "Sam", "BITI"} {
		if got := Stem(w); got != w {
			t.Errorf("Stem(%q) = %q, want unchanged", w, got)
		}
	}
}

// The suffix transformation runs before pattern matching and undoes
// sibilarization, so plural forms share a stem with the singular.
func TestStemTransformation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lozi to loga", "geolozi", "geolog"},
		{"instrumental oscu", "mladošću", "mladost"},
		// vojci → vojka, so the dative shares a stem with the nominative.
		{"sibilarized dative", "djevojci", "djevojk"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Stem(tt.in); got != tt.want {
				t.Errorf("Stem(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStems(t *testing.T) {
	t.Parallel()

	got := Stems([]string{"geolozi", "sam", "knjigama"})
	want := []string{"geolog", "sam", "knjig"}
	if len(got) != len(want) {
		t.Fatalf("Stems returned %d words, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Stems[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if Stems(nil) != nil {
		t.Error("Stems(nil) != nil")
	}
}

func TestHasVowel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{"krv", true},  // syllabic r
		{"prst", true}, // syllabic r
		{"ps", false},
		{"grad", true},
		{"mrak", true},
	}
	for _, tt := range tests {
		if got := hasVowel(tt.in); got != tt.want {
			t.Errorf("hasVowel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
