package normalize

import "github.com/indic-nlp/indic-go/script"

const devanagariNukta = '़'

// devanagariNuktaPairs lists the precomposed nukta letters of the
// Devanagari block and their base consonants.
var devanagariNuktaPairs = []nuktaPair{
	{'ऩ', 'न'}, // ऩ
	{'ऱ', 'र'}, // ऱ
	{'ऴ', 'ळ'}, // ऴ
	{'क़', 'क'}, // क़
	{'ख़', 'ख'}, // ख़
	{'ग़', 'ग'}, // ग़
	{'ज़', 'ज'}, // ज़
	{'ड़', 'ड'}, // ड़
	{'ढ़', 'ढ'}, // ढ़
	{'फ़', 'फ'}, // फ़
	{'य़', 'य'}, // य़
}

// devanagariCatalog covers Hindi, Marathi, Sanskrit, Nepali, Konkani,
// Indian Sindhi and Kashmiri. Order: Marathi chandra-A unification, the
// nukta mode block, two-part candra-O merge, pipe→danda, colon→visarga.
// Kashmiri orthography migration, when requested, runs first so that
// era-specific candra spellings are consumed before the generic merges.
func devanagariCatalog(p *script.Profile, cfg Config) catalog {
	var post []stage

	if p.Lang == "ks" && cfg.MigrateKashmiriOrthography {
		post = append(post, kashmiriOrthographyStage())
	}

	post = append(post,
		SubstitutionMap{{"ॲ", "ए"}}.stage("chandra_a"),
		nuktaSubs(devanagariNukta, devanagariNuktaPairs, cfg.nuktaMode()).stage("nukta"),
		// Two-part candra-O: AA sign + candra-E sign encode one mark.
		SubstitutionMap{{"ाॅ", "ॉ"}}.stage("two_part_vowels"),
		dandaRemap("", "", true).stage("danda"),
	)

	if cfg.ColonToVisarga {
		post = append(post, visargaStage(p))
	}
	return catalog{post: post}
}
