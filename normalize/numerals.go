package normalize

import "github.com/indic-nlp/indic-go/script"

// numeralsStage builds the ten-digit translation table from the profile's
// digit-zero slot. Exactly one direction is compiled per pipeline; Config
// validation rejects both directions at once.
func numeralsStage(p *script.Profile, toNative bool) (stage, error) {
	zero, err := p.OffsetToRune(script.OffsetDigitZero)
	if err != nil {
		return stage{}, err
	}

	subs := make(SubstitutionMap, 0, 10)
	for d := 0; d < 10; d++ {
		native := string(zero + rune(d))
		ascii := string('0' + rune(d))
		if toNative {
			subs = append(subs, Substitution{ascii, native})
		} else {
			subs = append(subs, Substitution{native, ascii})
		}
	}
	name := "numerals_to_ascii"
	if toNative {
		name = "numerals_to_native"
	}
	return subs.stage(name), nil
}
