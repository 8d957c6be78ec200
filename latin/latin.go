// Package latin is the plain-Latin cleanup collaborator: generic text
// tidying for English and other Latin-script material that shares a corpus
// with the Indic pipelines.
//
// Normalizers are immutable and safe for concurrent use.
package latin

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// spacedPunct matches whitespace wrongly inserted before terminal
// punctuation or a closing quote.
var spacedPunct = regexp.MustCompile(`\s+([?.!"](?:\s|$))`)

// stripMarks removes combining marks after canonical decomposition, then
// recomposes. Non-ASCII runes that survive (letters with no decomposition)
// are dropped separately.
var stripMarks = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

var dropNonASCII = runes.Remove(runes.Predicate(func(r rune) bool {
	return r > unicode.MaxASCII
}))

// Normalizer cleans Latin-script text.
type Normalizer struct {
	// Lowercase lowercases the result.
	Lowercase bool
	// ASCIIOnly strips diacritics and drops whatever cannot be expressed
	// in ASCII.
	ASCIIOnly bool
}

// Normalize tightens spacing around terminal punctuation, capitalizes the
// first letter, canonicalizes to NFC and applies the configured folding.
func (n Normalizer) Normalize(text string) string {
	text = spacedPunct.ReplaceAllString(text, "${1}")
	text = capitalizeFirst(text)

	if n.ASCIIOnly {
		if folded, _, err := transform.String(transform.Chain(stripMarks, dropNonASCII), text); err == nil {
			text = folded
		}
	} else {
		text = norm.NFC.String(text)
	}

	if n.Lowercase {
		text = strings.ToLower(text)
	}
	return text
}

// capitalizeFirst uppercases the first ASCII alphanumeric rune.
func capitalizeFirst(s string) string {
	for i, r := range s {
		if r >= 'a' && r <= 'z' {
			return s[:i] + string(unicode.ToUpper(r)) + s[i+len(string(r)):]
		}
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			return s
		}
	}
	return s
}
