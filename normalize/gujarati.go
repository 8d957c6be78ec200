package normalize

import "github.com/indic-nlp/indic-go/script"

const gujaratiNukta = '઼'

// gujaratiCatalog: the Gujarati block has no precomposed nukta letters, so
// only nukta removal applies; otherwise a danda remap and visarga
// correction.
func gujaratiCatalog(p *script.Profile, cfg Config) catalog {
	var post []stage
	if cfg.nuktaMode() == nuktaRemove {
		post = append(post, SubstitutionMap{{string(gujaratiNukta), ""}}.stage("nukta"))
	}
	post = append(post, dandaRemap("૤", "૥", false).stage("danda"))
	if cfg.ColonToVisarga {
		post = append(post, visargaStage(p))
	}
	return catalog{post: post}
}
