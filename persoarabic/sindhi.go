package persoarabic

import "regexp"

// sindhiLetters folds Urdu-preferred letters to the Sindhi conventions.
// Ambiguous aspirate digraphs (ٹھ, ڈھ, ...) are deliberately not folded.
var sindhiLetters = map[rune]rune{
	'ی': 'ي', // ی → ي
	'ے': 'ي', // ے → ي
	'ہ': 'ه', // ہ → ه (Arabic choti he)
	'ٹ': 'ٽ', // ٹ → ṫ
	'ڈ': 'ڊ', // ڈ → ḋ
	'ڑ': 'ڙ', // ڑ → ṙ
}

var (
	// Word-internal do-chasmi he is plain he in Sindhi.
	doChasmiInternal = regexp.MustCompile("ھ([ء-ۓ])")
	// Final do-chasmi folds too, except after the گھ/جھ/ڙھ aspirates.
	doChasmiFinal = regexp.MustCompile("([^ڙجگ])ھ")
)

// Sindhi normalizes Sindhi text in the Perso-Arabic script: an Urdu pass,
// do-chasmi he folding, then the Urdu→Sindhi letter table.
type Sindhi struct {
	KeepDiacritics bool
}

func (s Sindhi) Normalize(text string) string {
	text = Urdu{KeepDiacritics: s.KeepDiacritics}.Normalize(text)
	text = doChasmiInternal.ReplaceAllString(text, "ه${1}")
	text = doChasmiFinal.ReplaceAllString(text, "${1}ه")
	return translateRunes(text, sindhiLetters)
}
