package suffix

// The two Kešelj–Šipka tables below follow the suffix-subsumption
// approach of Kešelj & Šipka (Infotheca 9(1-2), 2008): plain removals
// of inflectional and derivational endings, with subsuming longer
// variants listed alongside their shorter cores so that the
// longest-match engine picks the widest covering suffix. Suffixes are
// dual1-coded; lj and nj appear as ly and ny. The greedy table includes
// the derivational endings and is the more aggressive of the two; the
// optimal table restricts itself to inflectional endings.

// keseljGreedyRules is the greedy suffix table.
var keseljGreedyRules = []Rule{
	// Nominal declension.
	{"a", ""},
	{"e", ""},
	{"i", ""},
	{"o", ""},
	{"u", ""},
	{"om", ""},
	{"em", ""},
	{"ama", ""},
	{"ima", ""},
	{"ovi", ""},
	{"evi", ""},
	{"ova", ""},
	{"eva", ""},
	{"ove", ""},
	{"eve", ""},
	{"ovima", ""},
	{"evima", ""},
	{"ovom", ""},
	{"evom", ""},

	// Adjectival declension, definite and comparative forms.
	{"og", ""},
	{"eg", ""},
	{"oga", ""},
	{"ega", ""},
	{"ome", ""},
	{"omu", ""},
	{"emu", ""},
	{"im", ""},
	{"ih", ""},
	{"oj", ""},
	{"ijeg", ""},
	{"ijega", ""},
	{"iji", ""},
	{"ija", ""},
	{"ije", ""},
	{"iju", ""},
	{"ijim", ""},
	{"ijih", ""},
	{"ijoj", ""},
	{"ijima", ""},

	// Derivational endings: relational adjectives, agents, abstracts,
	// diminutives, places.
	{"ski", ""},
	{"ska", ""},
	{"sko", ""},
	{"ske", ""},
	{"sku", ""},
	{"skog", ""},
	{"skom", ""},
	{"acxki", ""},
	{"ovski", ""},
	{"evski", ""},
	{"nik", ""},
	{"nika", ""},
	{"niku", ""},
	{"nici", ""},
	{"nicima", ""},
	{"ik", ""},
	{"ig", ""},
	{"ica", ""},
	{"ice", ""},
	{"ici", ""},
	{"icu", ""},
	{"icom", ""},
	{"icama", ""},
	{"ost", ""},
	{"osti", ""},
	{"osxcyu", ""},
	{"stvo", ""},
	{"stva", ""},
	{"stvu", ""},
	{"stvom", ""},
	{"ina", ""},
	{"ine", ""},
	{"ini", ""},
	{"inu", ""},
	{"inom", ""},
	{"isxte", ""},
	{"isxta", ""},
	{"isxtu", ""},

	// Verbal endings: infinitive, participles, person/tense forms.
	{"ti", ""},
	{"la", ""},
	{"lo", ""},
	{"li", ""},
	{"le", ""},
	{"lu", ""},
	{"ju", ""},
	{"ao", ""},
	{"eo", ""},
	{"io", ""},
	{"uo", ""},
	{"ala", ""},
	{"alo", ""},
	{"ali", ""},
	{"ale", ""},
	{"ela", ""},
	{"elo", ""},
	{"eli", ""},
	{"ele", ""},
	{"ila", ""},
	{"ilo", ""},
	{"ili", ""},
	{"ile", ""},
	{"ula", ""},
	{"ulo", ""},
	{"uli", ""},
	{"ule", ""},
	{"amo", ""},
	{"emo", ""},
	{"imo", ""},
	{"ate", ""},
	{"ete", ""},
	{"ite", ""},
	{"asmo", ""},
	{"ismo", ""},
	{"esmo", ""},
	{"aste", ""},
	{"iste", ""},
	{"este", ""},
	{"asxe", ""},
	{"isxe", ""},
	{"esxe", ""},
	{"ahu", ""},
	{"aju", ""},
	{"uju", ""},
	{"uje", ""},
	{"ujem", ""},
	{"ujesx", ""},
	{"ujemo", ""},
	{"ujete", ""},
	{"ujte", ""},
	{"ucyi", ""},
	{"ecyi", ""},
	{"ajucyi", ""},
	{"ujucyi", ""},
	{"ovao", ""},
	{"ovala", ""},
	{"ovali", ""},
	{"ovale", ""},
	{"ovalo", ""},
	{"ivao", ""},
	{"ivala", ""},
	{"ivali", ""},
	{"ivale", ""},
	{"ivalo", ""},
	{"nuti", ""},
	{"nuo", ""},
	{"nula", ""},
	{"nuli", ""},
	{"nule", ""},
	{"nulo", ""},

	// Endings over the folded lj/ny digraphs.
	{"lya", ""},
	{"lye", ""},
	{"lyi", ""},
	{"lyu", ""},
	{"lyom", ""},
	{"lyama", ""},
	{"lyima", ""},
	{"nya", ""},
	{"nye", ""},
	{"nyi", ""},
	{"nyu", ""},
	{"nyom", ""},
	{"nyama", ""},
	{"nyima", ""},
	{"anye", ""},
	{"enye", ""},
	{"anya", ""},
	{"enya", ""},
	{"anyu", ""},
	{"enyu", ""},
	{"anyem", ""},
	{"enyem", ""},
	{"anyima", ""},
	{"enyima", ""},
}

// keseljOptimalRules is the optimal suffix table: the inflectional
// subset selected for the best precision/strength trade-off.
var keseljOptimalRules = []Rule{
	// Nominal declension.
	{"a", ""},
	{"e", ""},
	{"i", ""},
	{"o", ""},
	{"u", ""},
	{"om", ""},
	{"em", ""},
	{"ama", ""},
	{"ima", ""},
	{"ovi", ""},
	{"evi", ""},
	{"ova", ""},
	{"eva", ""},
	{"ove", ""},
	{"eve", ""},
	{"ovima", ""},
	{"evima", ""},

	// Adjectival declension.
	{"og", ""},
	{"eg", ""},
	{"oga", ""},
	{"ega", ""},
	{"ome", ""},
	{"im", ""},
	{"ih", ""},
	{"oj", ""},
	{"iji", ""},
	{"ija", ""},
	{"ije", ""},
	{"iju", ""},

	// Verbal endings.
	{"ti", ""},
	{"la", ""},
	{"lo", ""},
	{"li", ""},
	{"le", ""},
	{"ju", ""},
	{"ao", ""},
	{"eo", ""},
	{"io", ""},
	{"uo", ""},
	{"ala", ""},
	{"alo", ""},
	{"ali", ""},
	{"ale", ""},
	{"ela", ""},
	{"elo", ""},
	{"eli", ""},
	{"ila", ""},
	{"ilo", ""},
	{"ili", ""},
	{"ile", ""},
	{"amo", ""},
	{"emo", ""},
	{"imo", ""},
	{"ate", ""},
	{"ete", ""},
	{"ite", ""},
	{"asmo", ""},
	{"ismo", ""},
	{"aste", ""},
	{"iste", ""},
	{"asxe", ""},
	{"isxe", ""},
	{"ahu", ""},
	{"aju", ""},
	{"uju", ""},
	{"uje", ""},
	{"ujem", ""},
	{"ujemo", ""},
	{"ucyi", ""},
	{"ecyi", ""},

	// Endings over the folded lj/ny digraphs.
	{"lya", ""},
	{"lye", ""},
	{"lyi", ""},
	{"lyu", ""},
	{"nya", ""},
	{"nye", ""},
	{"nyi", ""},
	{"nyu", ""},
	{"anye", ""},
	{"enye", ""},
	{"anya", ""},
	{"enya", ""},
}

var (
	keseljGreedyTable  = NewRuleTable(keseljGreedyRules)
	keseljOptimalTable = NewRuleTable(keseljOptimalRules)
)
