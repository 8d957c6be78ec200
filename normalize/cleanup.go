package normalize

import "strings"

// cleanupReplacer strips invisible formatting characters and widens the
// space variants. Sources are disjoint single codepoints, so a single-pass
// replacer is safe.
var cleanupReplacer = strings.NewReplacer(
	"\uFEFF", "", // byte order mark
	"\uFFFE", "", // reversed byte order mark
	"\u2060", "", // word joiner
	"\u00AD", "", // soft hyphen
	"\u200C", "", // zero width non-joiner
	"\u200D", "", // zero width joiner
	"\u200B", " ", // zero width space
	"\u00A0", " ", // no-break space
)

// cleanupStage runs first for every language, unconditionally.
func cleanupStage() stage {
	return stage{name: "cleanup", fn: cleanupReplacer.Replace}
}

// punctuationSubs canonicalizes typographic punctuation to plain ASCII
// equivalents. Order matters: the single-quote rewrites run before the
// double-apostrophe rewrite, so curly-quote pairs collapse to a straight
// double quote. The output contract (straight double quotes only) is load
// bearing for quote-balance logic in downstream sentence splitting.
var punctuationSubs = SubstitutionMap{
	{"„", `"`}, // „
	{"“", `"`}, // “
	{"”", `"`}, // ”
	{"–", "-"}, // – en dash
	{"—", " - "}, // — em dash
	{"´", "'"}, // ´
	{"‘", "'"}, // ‘
	{"‚", "'"}, // ‚
	{"’", "'"}, // ’
	{"''", `"`},
	{"…", "..."}, // …
}

func punctuationStage() stage {
	return punctuationSubs.stage("punctuation")
}
