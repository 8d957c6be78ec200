// Package sentsplit provides rule-based sentence splitting for Indian
// language text, designed to consume the output of the normalize package.
//
// The splitter understands the danda/double-danda delimiters of the Brahmic
// scripts, the Perso-Arabic full stop and question mark, decimal points,
// balanced double quotes, and the single-letter/abbreviation runs (श्री,
// डॉ., initials) that must not break a sentence.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Unbalanced double quotes disable quote-aware splitting for the whole
//     input rather than guessing which quote is unmatched.
//   - Abbreviation detection relies on the structural offset transposition
//     to Devanagari, so it is unavailable for Sinhala.
package sentsplit

import (
	"strings"
	"unicode/utf8"
)

// Delimiter sets. Danda-scripted text that actually uses the danda treats
// the ASCII period as a non-breaking character (abbreviations, decimals).
const (
	delimsDanda   = "?!।॥"
	delimsNoDanda = ".?!।॥"
	delimsUrdu    = "?!۔؟"
)

// dandaLangs are the languages whose orthography uses the danda as the
// sentence delimiter.
var dandaLangs = map[string]bool{
	"as": true, "bn": true, "hi": true, "ne": true,
	"or": true, "pa": true, "sa": true, "sd_IN": true,
}

// urduLangs use the Perso-Arabic full stop.
var urduLangs = map[string]bool{
	"ur": true, "pnb": true, "skr": true,
}

// Split breaks text into sentences using the delimiter convention of the
// given language. For danda languages the danda-only set is used when the
// text contains at least one danda; modern text punctuated with periods
// falls back to the period-bearing set.
func Split(text, lang string) []string {
	delims := delimsNoDanda
	switch {
	case dandaLangs[lang]:
		if strings.ContainsAny(text, "।॥") {
			delims = delimsDanda
		}
	case urduLangs[lang]:
		delims = delimsUrdu
	}
	return SplitDelim(text, lang, delims)
}

// SplitDelim breaks text into sentences at the given delimiter runes.
// Decimal points and delimiters inside balanced double quotes do not
// break; when the delimiter set contains the ASCII period, a second pass
// merges abbreviation and initial runs back into their sentence.
func SplitDelim(text, lang, delims string) []string {
	text = strings.TrimSpace(strings.ReplaceAll(text, "\r", ""))
	if text == "" {
		return nil
	}

	quoteAware, quotesOpen := quoteTracker(text)

	var candidates []string
	appendCandidate := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" {
			return
		}
		// A lone delimiter cluster belongs to the previous sentence.
		if utf8.RuneCountInString(s) == 1 && len(candidates) > 0 {
			candidates[len(candidates)-1] += s
			return
		}
		candidates = append(candidates, s)
	}

	begin := 0
	for i, r := range text {
		if !strings.ContainsRune(delims, r) {
			continue
		}
		if r == '.' && isDecimalPoint(text, i) {
			continue
		}
		if quoteAware && quotesOpen(i) {
			continue
		}
		appendCandidate(text[begin : i+utf8.RuneLen(r)])
		begin = i + utf8.RuneLen(r)
	}
	appendCandidate(text[begin:])

	// Hard newlines split unconditionally.
	var flat []string
	for _, c := range candidates {
		for _, line := range strings.Split(c, "\n") {
			line = strings.TrimSpace(line)
			if line != "" {
				flat = append(flat, line)
			}
		}
	}

	if !strings.Contains(delims, ".") {
		return flat
	}
	return mergeAbbreviationRuns(flat, lang)
}

// quoteTracker reports whether the text has balanced double quotes, and if
// so returns a function telling whether byte position pos lies inside an
// open quote. The punctuation-normalization contract upstream guarantees
// straight double quotes only.
func quoteTracker(text string) (bool, func(int) bool) {
	var positions []int
	for i := 0; i < len(text); i++ {
		if text[i] == '"' {
			positions = append(positions, i)
		}
	}
	if len(positions) == 0 || len(positions)%2 != 0 {
		return false, nil
	}
	return true, func(pos int) bool {
		open := 0
		for _, q := range positions {
			if q < pos {
				open++
			}
		}
		return open%2 == 1
	}
}

// isDecimalPoint reports whether the period at byte position pos sits
// between two ASCII digits.
func isDecimalPoint(text string, pos int) bool {
	if pos == 0 || pos+1 >= len(text) {
		return false
	}
	prev := text[pos-1]
	next := text[pos+1]
	return prev >= '0' && prev <= '9' && next >= '0' && next <= '9'
}

// mergeAbbreviationRuns rejoins candidate sentences wrongly split at
// abbreviation periods. A run of single-word "sentences" ending in a
// period (initials like ए. बी.), or a sentence ending in a known
// non-breaking word (श्री., डॉ.), buffers until a normally terminated
// sentence closes the run.
func mergeAbbreviationRuns(cands []string, lang string) []string {
	var out []string
	var buf string
	inRun := false

	flush := func() {
		if buf != "" {
			out = append(out, buf)
			buf = ""
		}
	}

	for _, sent := range cands {
		words := strings.Split(sent, " ")
		last := words[len(words)-1]

		switch {
		case len(words) == 1 && strings.HasSuffix(sent, "."):
			inRun = true
			if buf == "" {
				buf = sent
			} else {
				buf += " " + sent
			}
		case strings.HasSuffix(sent, ".") && isAcronym(strings.TrimSuffix(last, "."), lang):
			if !inRun {
				flush()
			}
			inRun = true
			if buf == "" {
				buf = sent
			} else {
				buf += " " + sent
			}
		case inRun:
			buf += " " + sent
			flush()
			inRun = false
		default:
			flush()
			buf = sent
		}
	}
	flush()
	return out
}
