// Package persoarabic normalizes text in the Perso-Arabic scripts used
// across South and West Asia: Urdu and the Shahmukhi family, Sindhi,
// Arabic, and Persian.
//
// Each normalizer exposes the one-method contract Normalize(text) string —
// pure, total, and safe for concurrent use — and is consumed by the
// normalize package's dispatcher as an opaque collaborator. The character
// tables unify Arabic-block letters with their language-preferred forms,
// strip optional diacritics, and translate native digits.
//
// ASCII punctuation canonicalization is not performed here; the dispatcher
// prepends the shared punctuation stage to every delegating pipeline.
package persoarabic

import (
	"regexp"
	"strings"
)

// harakat are the optional vocalization marks: fathatan through sukun plus
// the superscript alef (khari zabar).
var harakat = regexp.MustCompile("[ً-ْٰ]")

const tatweel = "ـ"

func stripHarakat(s string) string {
	return harakat.ReplaceAllString(s, "")
}

func stripTatweel(s string) string {
	return strings.ReplaceAll(s, tatweel, "")
}

func replaceAll(s, from, to string) string {
	return strings.ReplaceAll(s, from, to)
}

// translateRunes maps runes through table, passing unmapped runes through.
// Same shape as a one-rune substitution map, kept as a rune table for the
// large alphabet-unification maps.
func translateRunes(s string, table map[rune]rune) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if to, ok := table[r]; ok {
			b.WriteRune(to)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// arabicDigits translates Arabic-Indic (U+0660) and extended Arabic-Indic
// (U+06F0) digits to ASCII.
func arabicDigitsToASCII(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 0x0660 && r <= 0x0669:
			b.WriteRune('0' + (r - 0x0660))
		case r >= 0x06F0 && r <= 0x06F9:
			b.WriteRune('0' + (r - 0x06F0))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
