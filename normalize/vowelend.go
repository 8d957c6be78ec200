package normalize

import (
	"strings"
	"unicode/utf8"

	"github.com/indic-nlp/indic-go/script"
)

// vowelEndingStage appends the family's dead-consonant marker to words that
// end in a bare consonant: the halant in Indo-Aryan convention, the
// inherent-vowel sign in Dravidian convention. Words already ending in a
// vowel sign, halant, or anything that is not a consonant are unchanged.
// Operates at space-delimited word granularity; the space layout of the
// input is preserved exactly.
func vowelEndingStage(p *script.Profile) (stage, error) {
	var suffix rune
	var err error
	if p.Family == script.Dravidian {
		suffix, err = p.OffsetToRune(script.OffsetSignAA)
	} else {
		suffix, err = p.OffsetToRune(script.OffsetHalanta)
	}
	if err != nil {
		return stage{}, err
	}

	fn := func(text string) string {
		words := strings.Split(text, " ")
		for i, w := range words {
			last, _ := utf8.DecodeLastRuneInString(w)
			if p.IsConsonant(last) {
				words[i] = w + string(suffix)
			}
		}
		return strings.Join(words, " ")
	}
	return stage{name: "vowel_ending", fn: fn}, nil
}
