package suffix

import "testing"

func TestNewRuleTable(t *testing.T) {
	t.Parallel()

	table := NewRuleTable([]Rule{
		{"a", ""},
		{"ama", ""},
		{"nju", "nj"},
		{"a", "x"}, // repeated key: last occurrence wins
	})

	if got, want := table.Len(), 3; got != want {
		t.Errorf("Len() = %d, want %d", got, want)
	}
	if got, want := table.MaxSuffixLen(), 3; got != want {
		t.Errorf("MaxSuffixLen() = %d, want %d", got, want)
	}
	if repl, ok := table.Lookup("a"); !ok || repl != "x" {
		t.Errorf("Lookup(%q) = %q, %v, want %q, true", "a", repl, ok, "x")
	}
	if repl, ok := table.Lookup("nju"); !ok || repl != "nj" {
		t.Errorf("Lookup(%q) = %q, %v, want %q, true", "nju", repl, ok, "nj")
	}
	if _, ok := table.Lookup("ju"); ok {
		t.Errorf("Lookup(%q) matched, want miss", "ju")
	}
}

// The engine always strips the longest applicable suffix, regardless of
// rule declaration order.
func TestStemLongestSuffixWins(t *testing.T) {
	t.Parallel()

	st := Milosevic()
	// "eno", "no", and "o" are all rule keys; "eno" must win.
	if got, want := st.Stem("pecxeno"), "pecx"; got != want {
		t.Errorf("Stem(%q) = %q, want %q", "pecxeno", got, want)
	}
}

func TestStemCasePreserved(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		st   *Stemmer
		in   string
		want string
	}{
		{"greedy capitalized", KeseljSipkaGreedy(), "Pevali", "Pev"},
		{"greedy all caps", KeseljSipkaGreedy(), "PEVALI", "PEV"},
		{"milosevic capitalized", Milosevic(), "Pevali", "Pev"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.st.Stem(tt.in); got != tt.want {
				t.Errorf("Stem(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStems(t *testing.T) {
	t.Parallel()

	st := KeseljSipkaGreedy()
	got := st.Stems([]string{"pevali", "pas", "knyigama"})
	want := []string{"pev", "pas", "knyig"}
	if len(got) != len(want) {
		t.Fatalf("Stems returned %d words, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Stems[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if st.Stems(nil) != nil {
		t.Error("Stems(nil) != nil")
	}
}

func TestDictionaryLookup(t *testing.T) {
	t.Parallel()

	d := newDictionary([]lemmaEntry{
		{"nisam", "NE_jesam"},
		{"mogu", "mocyi"},
	})

	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"nisam", "NE_jesam", true},
		{"Nisam", "NE_jesam", true},
		{"mogu", "mocyi", true},
		{"Mogu", "Mocyi", true},
		{"pevali", "", false},
	}
	for _, tt := range tests {
		got, ok := d.Lookup(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Lookup(%q) = %q, %v, want %q, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
