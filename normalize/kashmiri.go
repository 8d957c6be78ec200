package normalize

// Kashmiri in Devanagari went through three orthography conventions. Until
// Unicode 5.2 there were no codepoints for the Kashmiri-only vowels, so the
// 1995 convention marked them with an apostrophe after the nearest plain
// vowel and the 2002 convention used the candra-E mark (U+0945) as the
// modifier. Unicode 5.2 added dedicated letters (U+0973–U+0977) and signs
// (U+093A, U+093B, U+094F, U+0956, U+0957), which the 2009 convention uses.
//
// The migration always runs the full chain 1995→2002→2009, so text from
// either legacy era lands on the dedicated codepoints. Chain order is load
// bearing: the 1995 rules produce exactly the candra spellings the 2002
// rules consume.

// kashmiri1995To2002 rewrites apostrophe-marked vowels to candra-marked.
var kashmiri1995To2002 = SubstitutionMap{
	{"अ'", "अॅ"}, // अ' → अॅ
	{"आ'", "आॅ"}, // आ' → आॅ
	{"उ'", "उॅ"}, // उ' → उॅ
	{"ऊ'", "ऊॅ"}, // ऊ' → ऊॅ
	{"ा'", "ाॅ"}, // ा' → ाॅ
	{"ु'", "ुॅ"}, // ु' → ुॅ
	{"ू'", "ूॅ"}, // ू' → ूॅ
}

// kashmiri2002To2009 rewrites candra-marked vowels to the Unicode 5.2
// Kashmiri codepoints.
var kashmiri2002To2009 = SubstitutionMap{
	// Independent vowels.
	{"अॅ", "ॳ"}, // अॅ → ॳ (oe)
	{"आॅ", "ॴ"}, // आॅ → ॴ (ooe)
	{"अॉ", "ॵ"}, // अॉ → ॵ (aw)
	{"उॅ", "ॶ"}, // उॅ → ॶ (ue)
	{"ऊॅ", "ॷ"}, // ऊॅ → ॷ (uue)
	// Dependent signs.
	{"ाॅ", "ऻ"}, // ाॅ → ऻ (ooe sign)
	{"ोॅ", "ॏ"}, // ोॅ → ॏ (aw sign)
	{"ुॅ", "ॖ"}, // ुॅ → ॖ (ue sign)
	{"ूॅ", "ॗ"}, // ूॅ → ॗ (uue sign)
}

func kashmiriOrthographyStage() stage {
	var chain SubstitutionMap
	chain = append(chain, kashmiri1995To2002...)
	chain = append(chain, kashmiri2002To2009...)
	return chain.stage("kashmiri_orthography")
}
