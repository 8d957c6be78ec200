package persoarabic

// persianLetters folds Arabic-preferred letters to the Farsi forms.
var persianLetters = map[rune]rune{
	'ي': 'ی', // ي → ی
	'ى': 'ی', // ى → ی
	'ك': 'ک', // ك → ک
	'ة': 'ه', // ة → ه
	'ؤ': 'و', // ؤ → و
}

// Persian normalizes Farsi text: Farsi letter unification, optional
// diacritic stripping, kashida removal. Digits are left in whatever
// convention the text used.
type Persian struct {
	KeepDiacritics bool
}

func (p Persian) Normalize(text string) string {
	text = translateRunes(text, persianLetters)
	if !p.KeepDiacritics {
		text = stripHarakat(text)
	}
	return stripTatweel(text)
}
