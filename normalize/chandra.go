package normalize

import "github.com/indic-nlp/indic-go/script"

// chandraOffsets maps chandra variants to their canonical slot. Source and
// target sets are disjoint, so pair order is irrelevant.
var chandraOffsets = [][2]int{
	{0x0D, 0x0F}, // chandra E, independent
	{0x11, 0x13}, // chandra O, independent
	{0x45, 0x47}, // chandra E, dependent
	{0x49, 0x4B}, // chandra O, dependent
	{0x00, 0x02}, // inverted chandrabindu → anusvara
	{0x01, 0x02}, // chandrabindu → anusvara
}

// chandraStage folds chandra vowel/nasal variants to their canonical
// codepoints, resolved once against the profile.
func chandraStage(p *script.Profile) (stage, error) {
	subs := make(SubstitutionMap, 0, len(chandraOffsets))
	for _, pair := range chandraOffsets {
		from, err := p.OffsetToRune(pair[0])
		if err != nil {
			return stage{}, err
		}
		to, err := p.OffsetToRune(pair[1])
		if err != nil {
			return stage{}, err
		}
		subs = append(subs, Substitution{string(from), string(to)})
	}
	return subs.stage("chandra"), nil
}
