package normalize

import (
	"regexp"
	"strings"

	"github.com/indic-nlp/indic-go/script"
)

// chilluPairs maps each chillu letter to the consonant it is a dead form
// of. The first six are the original Unicode 5.1 atomic chillus; the last
// three were added in Unicode 9.0.
var chilluPairs = [][2]rune{
	{'ൺ', 'ണ'}, // ൺ / ണ
	{'ൻ', 'ന'}, // ൻ / ന
	{'ർ', 'ര'}, // ർ / ര
	{'ൽ', 'ല'}, // ൽ / ല
	{'ൾ', 'ള'}, // ൾ / ള
	{'ൿ', 'ക'}, // ൿ / ക
	{'ൔ', 'മ'}, // ൔ / മ
	{'ൕ', 'യ'}, // ൕ / യ
	{'ൖ', 'ഴ'}, // ൖ / ഴ
}

// legacyChilluStage rewrites the pre-5.1 chillu encoding
// (consonant+virama+ZWJ) to the atomic chillu letters, and the dot reph to
// chillu r. Must run before the cleanup stage strips the zero-width
// joiner.
func legacyChilluStage() stage {
	subs := make(SubstitutionMap, 0, len(chilluPairs)+1)
	for _, pr := range chilluPairs {
		subs = append(subs, Substitution{string(pr[1]) + "്‍", string(pr[0])})
	}
	subs = append(subs, Substitution{"ൎ", "ർ"}) // dot reph
	return subs.stage("legacy_chillus")
}

var (
	// Final virama (candrakkala) on a consonant, at a script boundary, is
	// always half-u.
	mlFinalVirama = regexp.MustCompile("([ക-ഺ])്([^ഀ-ൿ]|$)")
	mlExplicitU   = regexp.MustCompile("([ക-ഺ])ു്")
)

func explicitHalfUStage() stage {
	return stage{name: "explicit_half_u", fn: func(text string) string {
		return mlFinalVirama.ReplaceAllString(text, "${1}ു്${2}")
	}}
}

// halfUToUStage implicitly interprets final-u as half-u, per pre-modern
// grammar: both the explicit half-u spelling and a bare final virama
// become a plain u sign.
func halfUToUStage() stage {
	return stage{name: "half_u_to_u", fn: func(text string) string {
		text = mlExplicitU.ReplaceAllString(text, "${1}ു")
		return mlFinalVirama.ReplaceAllString(text, "${1}ു${2}")
	}}
}

func canonicalizeChillusStage() stage {
	subs := make(SubstitutionMap, 0, len(chilluPairs))
	for _, pr := range chilluPairs {
		subs = append(subs, Substitution{string(pr[0]), string(pr[1]) + "്"})
	}
	return subs.stage("canonicalize_chillus")
}

// viramasToChillusStage converts consonant+virama to the chillu form. The
// intermediate variant requires a following Malayalam character, leaving
// final viramas alone (a final candrakkala is ambiguous between half-u and
// a glottal stop); the all variant converts unconditionally.
func viramasToChillusStage(all bool) stage {
	if all {
		subs := make(SubstitutionMap, 0, len(chilluPairs))
		for _, pr := range chilluPairs {
			subs = append(subs, Substitution{string(pr[1]) + "്", string(pr[0])})
		}
		return subs.stage("all_viramas_to_chillus")
	}

	type rule struct {
		pat  *regexp.Regexp
		repl string
	}
	rules := make([]rule, 0, len(chilluPairs))
	for _, pr := range chilluPairs {
		rules = append(rules, rule{
			pat:  regexp.MustCompile(string(pr[1]) + "്([ഀ-ൿ])"),
			repl: string(pr[0]) + "${1}",
		})
	}
	return stage{name: "viramas_to_chillus", fn: func(text string) string {
		for _, r := range rules {
			text = r.pat.ReplaceAllString(text, r.repl)
		}
		return text
	}}
}

// malayalamCatalog. Pre: legacy chillu recoding (consumes ZWJ before
// cleanup discards it). Post: old-orthography viramas to candrakkala,
// the half-u and chillu options, danda remap, two-part and au vowel
// unification, old-orthography gemination, visarga correction. The chillu
// options run after explicit half-u marking so that a final dead consonant
// is not mistaken for a chillu.
func malayalamCatalog(p *script.Profile, cfg Config) catalog {
	pre := []stage{legacyChilluStage()}

	post := []stage{
		SubstitutionMap{
			{"഻", "്"}, // vertical virama (old orthography)
			{"഼", "്"}, // circular virama
		}.stage("old_viramas"),
	}

	if cfg.ExplicitHalfU {
		post = append(post, explicitHalfUStage())
	}
	if cfg.HalfUToU {
		post = append(post, halfUToUStage())
	}

	switch {
	case cfg.CanonicalizeChillus:
		post = append(post, canonicalizeChillusStage())
	case cfg.ViramasToChillus:
		post = append(post, viramasToChillusStage(false))
	case cfg.AllViramasToChillus:
		post = append(post, viramasToChillusStage(true))
	}

	post = append(post,
		dandaRemap("൤", "൥", false).stage("danda"),
		SubstitutionMap{
			{"ൊ", "ൊ"}, // െ + ാ → ൊ
			{"ോ", "ോ"}, // േ + ാ → ോ
			{"ൌ", "ൌ"}, // െ + ൗ → ൌ
			{"ൗ", "ൌ"},  // bare au length mark → ൌ
		}.stage("two_part_vowels"),
		// Old orthographic gemination ഺ → റ്റ.
		SubstitutionMap{{"ഺ", "റ്റ"}}.stage("old_gemination"),
	)

	if cfg.CorrectGeminatedT {
		post = append(post, stage{name: "geminated_t", fn: func(text string) string {
			return strings.ReplaceAll(text, "റ്റ", "ട്ട")
		}})
	}

	if cfg.ColonToVisarga {
		post = append(post, visargaStage(p))
	}
	return catalog{pre: pre, post: post}
}
