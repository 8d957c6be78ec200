package normalize

import "github.com/indic-nlp/indic-go/script"

const bengaliNukta = '়'

var bengaliNuktaPairs = []nuktaPair{
	{'ড়', 'ড'}, // ড়
	{'ঢ়', 'ঢ'}, // ঢ়
	{'য়', 'য'}, // য়
}

// bengaliCatalog serves Bengali and Assamese. Assamese keeps its own ra
// (U+09F0) unless RemapAssamese folds ra and va to the Bengali letters.
func bengaliCatalog(p *script.Profile, cfg Config) catalog {
	post := []stage{
		nuktaSubs(bengaliNukta, bengaliNuktaPairs, cfg.nuktaMode()).stage("nukta"),
	}

	if p.Lang == "as" {
		if cfg.RemapAssamese {
			post = append(post, SubstitutionMap{
				{"ৰ", "র"}, // ৰ → র
				{"ৱ", "ব"}, // ৱ → ব
			}.stage("assamese_remap"))
		} else {
			post = append(post, SubstitutionMap{
				{"র", "ৰ"}, // র → ৰ
			}.stage("assamese_ra"))
		}
	}

	post = append(post,
		dandaRemap("৤", "৥", true).stage("danda"),
		// Currency numerator four doubles as a danda substitute in print.
		SubstitutionMap{{"৷", danda}}.stage("numerator_danda"),
		SubstitutionMap{
			{"ো", "ো"}, // ে + া → ো
			{"ৌ", "ৌ"}, // ে + ৗ → ৌ
		}.stage("two_part_vowels"),
	)

	if cfg.ColonToVisarga {
		post = append(post, visargaStage(p))
	}
	return catalog{post: post}
}
