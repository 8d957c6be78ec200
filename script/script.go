// Package script describes the structural layout of Brahmi-derived Unicode
// script blocks.
//
// Unicode allocates the major Indian script blocks in parallel: within each
// 128-codepoint block the anusvara, the consonants, the vowel signs, the
// halanta and the digits all sit at the same relative offsets. A Profile
// records a script's base codepoint, and the offset constants below name the
// structurally meaningful slots. Algorithms written against offsets work for
// every coordinated script unchanged.
//
// Sinhala shares the normalization machinery but its block does not follow
// the shared slot layout; its profile is marked uncoordinated and the offset
// codec rejects it.
//
// Profiles are process-wide constants. All functions are safe for concurrent
// use by multiple goroutines.
package script

// Family classifies the language family of a profile, which decides the
// vowel-ending convention (dead consonants get a halant in Indo-Aryan
// orthography, an inherent-vowel sign in Dravidian orthography).
type Family int

const (
	IndoAryan Family = iota
	Dravidian
)

// Structural slot offsets shared by the coordinated Brahmic blocks.
const (
	OffsetChandrabindu = 0x01
	OffsetAnusvara     = 0x02
	OffsetVisarga      = 0x03
	OffsetVowelFirst   = 0x04 // independent vowels: 0x04..0x14
	OffsetVowelLast    = 0x14
	OffsetConsFirst    = 0x15 // consonants: 0x15..0x39
	OffsetConsLast     = 0x39
	OffsetNukta        = 0x3C
	OffsetSignAA       = 0x3E // dependent vowel signs: 0x3E..0x4C
	OffsetSignLast     = 0x4C
	OffsetHalanta      = 0x4D
	OffsetAum          = 0x50
	OffsetDigitZero    = 0x66 // digits: 0x66..0x6F
	OffsetDigitNine    = 0x6F

	// offsetMax is the last offset inside a 128-codepoint script block.
	offsetMax = 0x7F
)

// Profile holds the structural constants of one script as used by one
// language. Several languages share a block (Devanagari serves Hindi,
// Marathi, Sanskrit, Nepali, Konkani, Kashmiri and Indian Sindhi).
type Profile struct {
	Lang        string // language code the profile was registered under
	Block       rune   // first codepoint of the script block
	BlockEnd    rune   // last codepoint of the script block
	Family      Family
	Coordinated bool // offset table applies to this block
}

var profiles = map[string]*Profile{
	"hi":    devanagari("hi"),
	"mr":    devanagari("mr"),
	"sa":    devanagari("sa"),
	"ne":    devanagari("ne"),
	"kK":    devanagari("kK"),
	"ks":    devanagari("ks"),
	"sd_IN": devanagari("sd_IN"),

	"bn": {Lang: "bn", Block: 0x0980, BlockEnd: 0x09FF, Family: IndoAryan, Coordinated: true},
	"as": {Lang: "as", Block: 0x0980, BlockEnd: 0x09FF, Family: IndoAryan, Coordinated: true},
	"pa": {Lang: "pa", Block: 0x0A00, BlockEnd: 0x0A7F, Family: IndoAryan, Coordinated: true},
	"gu": {Lang: "gu", Block: 0x0A80, BlockEnd: 0x0AFF, Family: IndoAryan, Coordinated: true},
	"or": {Lang: "or", Block: 0x0B00, BlockEnd: 0x0B7F, Family: IndoAryan, Coordinated: true},
	"ta": {Lang: "ta", Block: 0x0B80, BlockEnd: 0x0BFF, Family: Dravidian, Coordinated: true},
	"te": {Lang: "te", Block: 0x0C00, BlockEnd: 0x0C7F, Family: Dravidian, Coordinated: true},
	"kn": {Lang: "kn", Block: 0x0C80, BlockEnd: 0x0CFF, Family: Dravidian, Coordinated: true},
	"ml": {Lang: "ml", Block: 0x0D00, BlockEnd: 0x0D7F, Family: Dravidian, Coordinated: true},

	"si": {Lang: "si", Block: 0x0D80, BlockEnd: 0x0DFF, Family: IndoAryan, Coordinated: false},
}

func devanagari(lang string) *Profile {
	return &Profile{Lang: lang, Block: 0x0900, BlockEnd: 0x097F, Family: IndoAryan, Coordinated: true}
}

// ProfileFor returns the profile registered for a language code.
func ProfileFor(lang string) (*Profile, bool) {
	p, ok := profiles[lang]
	return p, ok
}

// Languages returns the language codes with a registered script profile,
// in no particular order.
func Languages() []string {
	langs := make([]string, 0, len(profiles))
	for lang := range profiles {
		langs = append(langs, lang)
	}
	return langs
}

// NasalRule pairs a nasal consonant with the homorganic stop range it may
// stand before. Offsets are relative to the script block.
type NasalRule struct {
	Nasal      int // nasal consonant offset
	RangeFirst int // first consonant of the homorganic range
	RangeLast  int // last consonant of the homorganic range
}

// nasalRules lists the six homorganic nasal+stop pairings, one per place of
// articulation (velar, palatal, retroflex, two dental rows, labial).
var nasalRules = []NasalRule{
	{0x19, 0x15, 0x18},
	{0x1E, 0x1A, 0x1D},
	{0x23, 0x1F, 0x22},
	{0x28, 0x24, 0x27},
	{0x29, 0x24, 0x27},
	{0x2E, 0x2A, 0x2D},
}

// NasalRules returns the homorganic nasal pairing table. The returned slice
// is shared; callers must not modify it.
func NasalRules() []NasalRule {
	return nasalRules
}
