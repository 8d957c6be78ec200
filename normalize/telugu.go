package normalize

import "github.com/indic-nlp/indic-go/script"

func teluguCatalog(p *script.Profile, cfg Config) catalog {
	post := []stage{
		dandaRemap("౤", "౥", false).stage("danda"),
		SubstitutionMap{
			{"ై", "ై"}, // ె + ౖ → ై
		}.stage("two_part_vowels"),
	}
	if cfg.ColonToVisarga {
		post = append(post, visargaStage(p))
	}
	return catalog{post: post}
}
