package sentsplit

import "github.com/indic-nlp/indic-go/script"

// nonBreaking lists single letters, Latin-letter spellings, honorifics
// and common abbreviations, all in Devanagari. Words from other
// coordinated scripts are transposed to Devanagari before lookup, so one
// table covers every script.
var nonBreaking = map[string]bool{
	// Latin letters spelled out, with short/long vowel variants.
	"ए": true, "ऎ": true,
	"बी": true, "बि": true,
	"सी": true, "सि": true,
	"डी": true, "डि": true,
	"ई": true, "इ": true,
	"एफ": true, "ऎफ": true,
	"जी": true, "जि": true,
	"एच": true, "ऎच": true,
	"आई": true, "आइ": true, "ऐ": true,
	"जे": true, "जॆ": true,
	"के": true, "कॆ": true,
	"एल": true, "ऎल": true,
	"एम": true, "ऎम": true,
	"एन": true, "ऎन": true,
	"ओ": true, "ऒ": true,
	"पी": true, "पि": true,
	"क्यू": true, "क्यु": true,
	"आर": true,
	"एस": true, "ऎस": true,
	"टी": true, "टि": true,
	"यू": true, "यु": true,
	"वी": true, "वि": true, "व्ही": true, "व्हि": true,
	"डब्ल्यू": true, "डब्ल्यु": true,
	"एक्स": true, "ऎक्स": true,
	"वाय": true,
	"जेड": true, "ज़ेड": true,

	// Halant-final variants of the above.
	"एफ्": true, "ऎफ्": true,
	"एच्": true, "ऎच्": true,
	"एल्": true, "ऎल्": true,
	"एम्": true, "ऎम्": true,
	"एन्": true, "ऎन्": true,
	"आर्": true,
	"एस्": true, "ऎस्": true,
	"एक्स्": true, "ऎक्स्": true,
	"वाय्": true,
	"जेड्": true, "ज़ेड्": true,

	// Single independent vowels.
	"ऄ": true, "अ": true, "आ": true, "उ": true, "ऊ": true,
	"ऋ": true, "ऌ": true, "ऍ": true, "ऑ": true, "औ": true,
	"ॠ": true, "ॡ": true,

	// Single consonants (initials).
	"क": true, "ख": true, "ग": true, "घ": true, "ङ": true,
	"च": true, "छ": true, "ज": true, "झ": true, "ञ": true,
	"ट": true, "ठ": true, "ड": true, "ढ": true, "ण": true,
	"त": true, "थ": true, "द": true, "ध": true, "न": true,
	"ऩ": true, "प": true, "फ": true, "ब": true, "भ": true,
	"म": true, "य": true, "र": true, "ऱ": true, "ल": true,
	"ळ": true, "ऴ": true, "व": true, "श": true, "ष": true,
	"स": true, "ह": true,

	// Honorifics and abbreviations.
	"श्री": true,
	"डॉ":   true,
	"कु":   true,
	"चि":   true,
	"सौ":   true,
}

// englishNonBreaking covers Latin-script acronym letters, honorifics and
// common abbreviations.
var englishNonBreaking = map[string]bool{
	"A": true, "B": true, "C": true, "D": true, "E": true, "F": true,
	"G": true, "H": true, "I": true, "J": true, "K": true, "L": true,
	"M": true, "N": true, "O": true, "P": true, "Q": true, "R": true,
	"S": true, "T": true, "U": true, "V": true, "W": true, "X": true,
	"Y": true, "Z": true,

	"Mr": true, "Ms": true, "Mrs": true, "Dr": true, "Jr": true,
	"Hon": true, "Prof": true, "Capt": true, "St": true,

	"No": true,
	"Rs": true,
}

// isAcronym reports whether word is a non-breaking phrase in lang. Words
// in coordinated scripts are transposed block-wise to Devanagari so the
// lookup table applies across scripts.
func isAcronym(word, lang string) bool {
	if lang == "en" {
		return englishNonBreaking[word]
	}
	from, ok := script.ProfileFor(lang)
	if !ok || !from.Coordinated {
		return false
	}
	deva, _ := script.ProfileFor("hi")
	return nonBreaking[script.Transpose(word, from, deva)]
}
