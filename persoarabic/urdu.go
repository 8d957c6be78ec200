package persoarabic

import "regexp"

// urduLetters folds Arabic-block letters to their Urdu-preferred forms.
var urduLetters = map[rune]rune{
	'\u0671': '\u0627', // ٱ → ا
	'\u064A': '\u06CC', // ي → ی
	'\u0649': '\u06CC', // ى → ی
	'\u0643': '\u06A9', // ك → ک
	'\u06AA': '\u06A9', // ڪ → ک
	'\u0647': '\u06C1', // ه → ہ (gol he)
	'\u0629': '\u06C3', // ة → ۃ
}

// urduCombining recomposes base+combining-mark sequences into the
// precomposed Urdu letters.
var urduCombining = [][2]string{
	{"\u0627\u0653", "\u0622"}, // ا + madda → آ
	{"\u0648\u0654", "\u0624"}, // و + hamza → ؤ
	{"\u06CC\u0654", "\u0626"}, // ی + hamza → ئ
	{"\u06C1\u0654", "\u06C2"}, // ہ + hamza → ۂ
	{"\u06D2\u0654", "\u06D3"}, // ے + hamza → ۓ
}

// urduPunctuation swaps Latin punctuation for the Urdu marks and fixes the
// Arabic-convention separators.
var urduPunctuation = map[rune]rune{
	',':      '\u060C', // ، comma
	'?':      '\u061F', // ؟ question mark
	'\u061B': ';',
	'\u066A': '%',
	'\u066B': '.', // Arabic decimal point
	'\u066C': ',', // Arabic thousands separator
	'\u060D': '/', // Arabic date separator
}

var (
	urduBeforeLatin = regexp.MustCompile("([\u0600-\u06FF])([a-zA-Z0-9])")
	latinBeforeUrdu = regexp.MustCompile("([a-zA-Z0-9])([\u0600-\u06FF])")
	spaceBeforeMark = regexp.MustCompile("\\s+([\u06D4\u061F\u060C])")
	markThenText    = regexp.MustCompile("([\u06D4\u061F])([^\\s\u06D4\u061F])")
)

// Urdu normalizes Urdu and Shahmukhi-family text (language codes ur, pnb,
// skr).
type Urdu struct {
	// KeepDiacritics preserves the harakat instead of stripping them.
	KeepDiacritics bool
}

// Normalize unifies letter forms, optionally strips diacritics, applies
// Urdu punctuation conventions and spaces out embedded Latin runs.
func (u Urdu) Normalize(text string) string {
	if !u.KeepDiacritics {
		text = stripHarakat(text)
	}
	text = translateRunes(text, urduLetters)
	for _, c := range urduCombining {
		text = replaceAll(text, c[0], c[1])
	}
	text = translateRunes(text, urduPunctuation)
	text = replaceAll(text, "\uFDF2", "\u0627\u0644\u0644\u06C1") // ﷲ → اللہ
	text = replaceAll(text, "\u08C7", "\u0644\u0615")             // ࣇ → ل + small high tah

	// Space out punctuation and English runs.
	text = spaceBeforeMark.ReplaceAllString(text, "${1}")
	text = markThenText.ReplaceAllString(text, "${1} ${2}")
	text = urduBeforeLatin.ReplaceAllString(text, "${1} ${2}")
	text = latinBeforeUrdu.ReplaceAllString(text, "${1} ${2}")
	return text
}
