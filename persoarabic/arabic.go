package persoarabic

// lamAlefLigatures expands the Arabic presentation-form lam-alef ligatures
// into their letter sequences.
var lamAlefLigatures = [][2]string{
	{"ﻵ", "لآ"}, // ﻵ isolated
	{"ﻶ", "لآ"}, // ﻶ final
	{"ﻷ", "لأ"}, // ﻷ isolated
	{"ﻸ", "لأ"}, // ﻸ final
	{"ﻹ", "لإ"}, // ﻹ isolated
	{"ﻺ", "لإ"}, // ﻺ final
	{"ﻻ", "لا"}, // ﻻ isolated
	{"ﻼ", "لا"}, // ﻼ final
}

// Arabic normalizes Modern Standard Arabic text: tashkeel and tatweel
// stripping, ligature expansion, digit translation to ASCII.
type Arabic struct {
	KeepDiacritics bool
}

func (a Arabic) Normalize(text string) string {
	if !a.KeepDiacritics {
		text = stripHarakat(text)
	}
	text = stripTatweel(text)
	for _, l := range lamAlefLigatures {
		text = replaceAll(text, l[0], l[1])
	}
	text = replaceAll(text, "ﷲ", "الله") // ﷲ → الله
	return arabicDigitsToASCII(text)
}
