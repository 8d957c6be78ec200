package normalize

import "github.com/indic-nlp/indic-go/script"

// tamilCatalog: Tamil has no nukta mark; the aytham (ஃ) prefix plays the
// nukta role for the borrowed za/qa/fa sounds and is stripped under
// RemoveNuktas. Visarga correction does not apply (the Tamil visarga is
// the aytham itself, not a colon-shaped sign).
func tamilCatalog(p *script.Profile, cfg Config) catalog {
	post := []stage{
		dandaRemap("௤", "௥", false).stage("danda"),
		SubstitutionMap{
			{"ஔ", "ஔ"}, // ஒ + ௗ → ஔ
			{"ொ", "ொ"}, // ெ + ா → ொ
			{"ோ", "ோ"}, // ே + ா → ோ
			{"ௌ", "ௌ"}, // ெ + ௗ → ௌ
		}.stage("two_part_vowels"),
	}

	if cfg.nuktaMode() == nuktaRemove {
		post = append(post, SubstitutionMap{
			{"ஃஜ", "ஜ"}, // ஃஜ (za) → ஜ
			{"ஃக", "க"}, // ஃக (qa) → க
			{"ஃப", "ப"}, // ஃப (fa) → ப
		}.stage("aytham"))
	}

	if cfg.RemapGrantha {
		post = append(post, SubstitutionMap{
			{"ஸ்ரீ", "திரு"}, // ஸ்ரீ → திரு
			{"ஜ", "ச"},       // ஜ → ச
			{"ஶ", "ச"},       // ஶ → ச
			{"ஷ", "ச"},       // ஷ → ச
			{"ஸ", "ச"},       // ஸ → ச
			{"ஹ", "க"},       // ஹ → க
		}.stage("grantha"))
	}

	return catalog{post: post}
}
