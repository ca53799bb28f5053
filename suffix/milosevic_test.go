package suffix

import "testing"

func TestMilosevicStem(t *testing.T) {
	t.Parallel()

	st := Milosevic()
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"verbal ali", "pevali", "pev"},
		{"nominal ama", "knyigama", "knyig"},
		{"replacement nju", "panju", "panj"},
		{"replacement ava", "prodava", "prodav"},
		{"no rule applies", "takt", "takt"},
		{"two letters untouched", "da", "da"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := st.Stem(tt.in); got != tt.want {
				t.Errorf("Stem(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// Words starting with a dual1 digraph code keep a three-character stem,
// all others a two-character one.
func TestMilosevicMinimumStem(t *testing.T) {
	t.Parallel()

	st := Milosevic()
	tests := []struct {
		name string
		in   string
		want string
	}{
		// "uma" is not a key; "ma" leaves a two-character stem.
		{"plain prefix", "duma", "du"},
		// sxuma starts with a digraph code: "ma" is the longest suffix
		// leaving three characters.
		{"coded prefix", "sxuma", "sxu"},
		// "iti" would leave only the split digraph "sx"; the shorter
		// "ti" applies instead.
		{"digraph not split", "sxiti", "sxi"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := st.Stem(tt.in); got != tt.want {
				t.Errorf("Stem(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMilosevicDictionaryOverride(t *testing.T) {
	t.Parallel()

	st := Milosevic()
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"clitic", "sam", "jesam"},
		{"negated clitic", "nisam", "NE_jesam"},
		{"negated capitalized", "Nisam", "NE_jesam"},
		{"negated future", "necyu", "NE_hteti"},
		{"modal", "mogu", "mocyi"},
		{"modal capitalized", "Mogu", "Mocyi"},
		{"auxiliary", "bismo", "biti"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := st.Stem(tt.in); got != tt.want {
				t.Errorf("Stem(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// The published rule list repeats a few suffixes; the table keeps one
// entry per key with the last replacement.
func TestMilosevicTableDuplicates(t *testing.T) {
	t.Parallel()

	if milosevicTable.Len() >= len(milosevicRules) {
		t.Errorf("table has %d keys from %d rules, expected deduplication",
			milosevicTable.Len(), len(milosevicRules))
	}
	for _, key := range []string{"cyemo", "anje", "vsxi", "mo", "ko", "ci", "ac", "i"} {
		if repl, ok := milosevicTable.Lookup(key); !ok || repl != "" {
			t.Errorf("Lookup(%q) = %q, %v, want empty replacement", key, repl, ok)
		}
	}
}
