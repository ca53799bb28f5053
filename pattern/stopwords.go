package pattern

// stopset holds full word forms exempt from stemming: the auxiliaries
// biti and jesam and the most frequent modal forms. Lookup is done on
// the lowercased word.
var stopset = map[string]bool{
	"biti":    true,
	"jesam":   true,
	"budem":   true,
	"sam":     true,
	"jesi":    true,
	"budeš":   true,
	"si":      true,
	"jesmo":   true,
	"budemo":  true,
	"smo":     true,
	"jeste":   true,
	"budete":  true,
	"ste":     true,
	"jesu":    true,
	"budu":    true,
	"su":      true,
	"bih":     true,
	"bijah":   true,
	"bjeh":    true,
	"bijaše":  true,
	"bi":      true,
	"bje":     true,
	"bješe":   true,
	"bijasmo": true,
	"bismo":   true,
	"bjesmo":  true,
	"bijaste": true,
	"biste":   true,
	"bjeste":  true,
	"bijahu":  true,
	"biše":    true,
	"bjehu":   true,
	"bio":     true,
	"bili":    true,
	"budimo":  true,
	"budite":  true,
	"bila":    true,
	"bilo":    true,
	"bile":    true,
	"ću":      true,
	"ćeš":     true,
	"će":      true,
	"ćemo":    true,
	"ćete":    true,
	"želim":   true,
	"želiš":   true,
	"želi":    true,
	"želimo":  true,
	"želite":  true,
	"žele":    true,
	"moram":   true,
	"moraš":   true,
	"mora":    true,
	"moramo":  true,
	"morate":  true,
	"moraju":  true,
	"trebam":  true,
	"trebaš":  true,
	"treba":   true,
	"trebamo": true,
	"trebate": true,
	"trebaju": true,
	"mogu":    true,
	"možeš":   true,
	"može":    true,
	"možemo":  true,
	"možete":  true,
}
