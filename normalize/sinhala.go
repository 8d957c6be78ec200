package normalize

import "github.com/indic-nlp/indic-go/script"

// sinhalaVowelMerges canonicalizes vowel letters assembled from a base
// letter plus dependent signs, per Unicode 9.0 chapter 13, table 13-2.
// The redundant-virama rule must follow the rule that produces ඒ.
var sinhalaVowelMerges = SubstitutionMap{
	{"අා", "ආ"}, // අා → ආ
	{"අැ", "ඇ"}, // අැ → ඇ
	{"අෑ", "ඈ"}, // අෑ → ඈ
	{"උෟ", "ඌ"}, // උෟ → ඌ
	{"ඍෘ", "ඎ"}, // ඍෘ → ඎ
	{"ඏෟ", "ඐ"}, // ඏෟ → ඐ
	{"එ්", "ඒ"}, // එ් → ඒ
	{"ඒ්", "ඒ"}, // ඒ් → ඒ (redundant virama)
	{"එෙ", "ඓ"}, // එෙ → ඓ
	{"ඔෟ", "ඖ"}, // ඔෟ → ඖ
	// Dependent vowel signs.
	{"ෙෙ", "ෛ"}, // ෙෙ → ෛ
	{"ෘෘ", "ෲ"}, // ෘෘ → ෲ
}

// sinhalaSuddha folds the misra (mixed) consonants to the suddha (pure)
// subset: aspirates to plain stops, sibilants to ස, retroflex n/l to the
// dental letters. Vowel-sequence respellings of the misra diphthongs are
// deliberately left out.
var sinhalaSuddha = SubstitutionMap{
	{"ඛ", "ක"}, // ඛ → ක
	{"ඝ", "ග"}, // ඝ → ග
	{"ඡ", "ච"}, // ඡ → ච
	{"ඣ", "ජ"}, // ඣ → ජ
	{"ඨ", "ට"}, // ඨ → ට
	{"ඪ", "ඩ"}, // ඪ → ඩ
	{"ථ", "ත"}, // ථ → ත
	{"ධ", "ද"}, // ධ → ද
	{"ඵ", "ප"}, // ඵ → ප
	{"භ", "බ"}, // භ → බ
	{"ශ", "ස"}, // ශ → ස
	{"ෂ", "ස"}, // ෂ → ස
	{"ණ", "න"}, // ණ → න
	{"ළ", "ල"}, // ළ → ල
}

// sinhalaCatalog. The Sinhala block is not offset-coordinated, so the
// catalog carries every rule literally; there is no visarga correction
// and no nukta in this script.
func sinhalaCatalog(p *script.Profile, cfg Config) catalog {
	post := []stage{sinhalaVowelMerges.stage("vowel_merges")}
	if cfg.MisraToSuddha {
		post = append(post, sinhalaSuddha.stage("suddha"))
	}
	return catalog{post: post}
}
