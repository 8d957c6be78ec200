package normalize

import (
	"fmt"
	"regexp"

	"github.com/indic-nlp/indic-go/script"
)

// nasalRule is one compiled homorganic rewrite.
type nasalRule struct {
	pat  *regexp.Regexp
	repl string
}

func applyNasalRules(rules []nasalRule) func(string) string {
	return func(text string) string {
		for _, r := range rules {
			text = r.pat.ReplaceAllString(text, r.repl)
		}
		return text
	}
}

// nasalsStage compiles the requested nasal conversion against the profile.
// Patterns are built once here; per-call work is pure regex application.
// Rules apply in table order; the homorganic ranges are disjoint by
// construction, so the earliest match in the text wins.
func nasalsStage(p *script.Profile, mode NasalsMode) (stage, error) {
	halant, err := p.OffsetToRune(script.OffsetHalanta)
	if err != nil {
		return stage{}, err
	}
	anusvara, err := p.OffsetToRune(script.OffsetAnusvara)
	if err != nil {
		return stage{}, err
	}

	table := script.NasalRules()
	rules := make([]nasalRule, 0, len(table))

	switch mode {
	case NasalsToAnusvaraStrict:
		for _, nr := range table {
			nasal, first, last, err := resolveNasalRule(p, nr)
			if err != nil {
				return stage{}, err
			}
			pat := regexp.MustCompile(fmt.Sprintf("%c%c([%c-%c])", nasal, halant, first, last))
			rules = append(rules, nasalRule{pat, fmt.Sprintf("%c${1}", anusvara)})
		}
		return stage{name: "nasals_strict", fn: applyNasalRules(rules)}, nil

	case NasalsToAnusvaraRelaxed:
		var class []rune
		for _, nr := range table {
			nasal, err := p.OffsetToRune(nr.Nasal)
			if err != nil {
				return stage{}, err
			}
			class = append(class, nasal)
		}
		pat := regexp.MustCompile(fmt.Sprintf("[%s]%c", string(class), halant))
		rules = append(rules, nasalRule{pat, string(anusvara)})
		return stage{name: "nasals_relaxed", fn: applyNasalRules(rules)}, nil

	case NasalsToConsonants:
		for _, nr := range table {
			nasal, first, last, err := resolveNasalRule(p, nr)
			if err != nil {
				return stage{}, err
			}
			pat := regexp.MustCompile(fmt.Sprintf("%c([%c-%c])", anusvara, first, last))
			rules = append(rules, nasalRule{pat, fmt.Sprintf("%c%c${1}", nasal, halant)})
		}
		return stage{name: "nasals_to_consonants", fn: applyNasalRules(rules)}, nil
	}

	return stage{}, fmt.Errorf("normalize: unknown nasals mode %d", mode)
}

func resolveNasalRule(p *script.Profile, nr script.NasalRule) (nasal, first, last rune, err error) {
	if nasal, err = p.OffsetToRune(nr.Nasal); err != nil {
		return
	}
	if first, err = p.OffsetToRune(nr.RangeFirst); err != nil {
		return
	}
	last, err = p.OffsetToRune(nr.RangeLast)
	return
}
