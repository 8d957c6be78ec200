package normalize

import "github.com/indic-nlp/indic-go/script"

const kannadaNukta = '಼'

// kannadaCatalog: like Gujarati, the Kannada block carries the bare nukta
// mark but no precomposed composites, so only removal applies.
func kannadaCatalog(p *script.Profile, cfg Config) catalog {
	var post []stage
	if cfg.nuktaMode() == nuktaRemove {
		post = append(post, SubstitutionMap{{string(kannadaNukta), ""}}.stage("nukta"))
	}
	post = append(post,
		dandaRemap("೤", "೥", false).stage("danda"),
		SubstitutionMap{
			{"ೀ", "ೀ"}, // ಿ + ೕ → ೀ
			{"ೇ", "ೇ"}, // ೆ + ೕ → ೇ
			{"ೈ", "ೈ"}, // ೆ + ೖ → ೈ
			{"ೊ", "ೊ"}, // ೆ + ೂ → ೊ
			{"ೋ", "ೋ"}, // ೊ + ೕ → ೋ
		}.stage("two_part_vowels"),
	)
	if cfg.ColonToVisarga {
		post = append(post, visargaStage(p))
	}
	return catalog{post: post}
}
