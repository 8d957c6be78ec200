package normalize

import "github.com/indic-nlp/indic-go/script"

const gurmukhiNukta = '਼'

var gurmukhiNuktaPairs = []nuktaPair{
	{'ਲ਼', 'ਲ'}, // ਲ਼
	{'ਸ਼', 'ਸ'}, // ਸ਼
	{'ਖ਼', 'ਖ'}, // ਖ਼
	{'ਗ਼', 'ਗ'}, // ਗ਼
	{'ਜ਼', 'ਜ'}, // ਜ਼
	{'ਫ਼', 'ਫ'}, // ਫ਼
}

// gurmukhiVowelMerges canonicalizes independent vowels built from the iri
// and ura bases, per Unicode 12.1 chapter 12, table 12-16.
var gurmukhiVowelMerges = SubstitutionMap{
	{"ਅਾ", "ਆ"}, // ਅਾ → ਆ
	{"ੲਿ", "ਇ"}, // ੲਿ → ਇ
	{"ੲੀ", "ਈ"}, // ੲੀ → ਈ
	{"ੳੁ", "ਉ"}, // ੳੁ → ਉ
	{"ੳੂ", "ਊ"}, // ੳੂ → ਊ
	{"ੲੇ", "ਏ"}, // ੲੇ → ਏ
	{"ਅੈ", "ਐ"}, // ਅੈ → ਐ
	{"ੳੋ", "ਓ"}, // ੳੋ → ਓ
	{"ਅੌ", "ਔ"}, // ਅੌ → ਔ
}

// gurmukhiCatalog applies addak/tippi canonicalization and the vowel-base
// merges before the shared stages; nukta handling, danda remap and visarga
// correction follow them.
func gurmukhiCatalog(p *script.Profile, cfg Config) catalog {
	var pre []stage

	if cfg.CanonicalizeAddak {
		// Addak doubles the following consonant: ◌ੱC → C੍C.
		pre = append(pre, regexStage("addak", "ੱ(.)", "${1}੍${1}"))
	}
	if cfg.CanonicalizeTippi {
		pre = append(pre, SubstitutionMap{{"ੰ", "ਂ"}}.stage("tippi"))
	}

	vowels := gurmukhiVowelMerges
	if cfg.ReplaceVowelBases {
		// Bare iri/ura with no diacritic become the closest vowels.
		vowels = append(append(SubstitutionMap{}, vowels...),
			Substitution{"ੲ", "ਇ"},
			Substitution{"ੳ", "ਉ"},
		)
	}
	pre = append(pre, vowels.stage("vowel_bases"))

	post := []stage{
		nuktaSubs(gurmukhiNukta, gurmukhiNuktaPairs, cfg.nuktaMode()).stage("nukta"),
		dandaRemap("੤", "੥", true).stage("danda"),
	}
	if cfg.ColonToVisarga {
		post = append(post, visargaStage(p))
	}
	return catalog{pre: pre, post: post}
}
