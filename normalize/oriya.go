package normalize

import "github.com/indic-nlp/indic-go/script"

const oriyaNukta = '଼'

var oriyaNuktaPairs = []nuktaPair{
	{'ଡ଼', 'ଡ'}, // ଡ଼
	{'ଢ଼', 'ଢ'}, // ଢ଼
}

// oriyaVowelMerges canonicalizes independent vowels per Unicode 12.1
// chapter 12, table 12-22.
var oriyaVowelMerges = SubstitutionMap{
	{"ଅା", "ଆ"}, // ଅା → ଆ
	{"ଏୗ", "ଐ"}, // ଏୗ → ଐ
	{"ଓୗ", "ଔ"}, // ଓୗ → ଔ
}

func oriyaCatalog(p *script.Profile, cfg Config) catalog {
	post := []stage{
		oriyaVowelMerges.stage("vowel_merges"),
		nuktaSubs(oriyaNukta, oriyaNuktaPairs, cfg.nuktaMode()).stage("nukta"),
		dandaRemap("୤", "୥", true).stage("danda"),
		// va folds to wa; wa optionally folds on to ba. The codepoint chart
		// and the Unicode chapter disagree on va/ba here; wa is the safe
		// intermediate.
		SubstitutionMap{{"ଵ", "ୱ"}}.stage("va_to_wa"),
	}

	if cfg.RemapWaToBa {
		post = append(post, SubstitutionMap{{"ୱ", "ବ"}}.stage("wa_to_ba"))
	}

	post = append(post, SubstitutionMap{
		{"ୈ", "ୈ"}, // େ + ୖ → ୈ
		{"ୋ", "ୋ"}, // େ + ା → ୋ
		{"ୌ", "ୌ"}, // େ + ୗ → ୌ
	}.stage("two_part_vowels"))

	if cfg.ColonToVisarga {
		post = append(post, visargaStage(p))
	}
	return catalog{post: post}
}
