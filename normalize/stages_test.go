package normalize

import "testing"

// ---------------------------------------------------------------------------
// Nasal conversion
// ---------------------------------------------------------------------------

func TestNasalsStrict(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.NasalsMode = NasalsToAnusvaraStrict
	p := mustPipeline(t, "hi", cfg)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"dental nasal before dental stop", "हिन्दी", "हिंदी"},
		{"labial nasal before labial stop", "कम्पन", "कंपन"},
		{"velar nasal before velar stop", "गङ्गा", "गंगा"},
		{"palatal nasal before palatal stop", "पञ्जाब", "पंजाब"},
		{"retroflex nasal before retroflex stop", "घण्टा", "घंटा"},
		{"nasal before non-homorganic consonant kept", "अन्य", "अन्य"},
		{"nasal before nasal kept", "जन्म", "जन्म"},
		{"bare nasal kept", "मन", "मन"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := p.Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNasalsRelaxed(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.NasalsMode = NasalsToAnusvaraRelaxed
	p := mustPipeline(t, "hi", cfg)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"homorganic cluster", "हिन्दी", "हिंदी"},
		{"non-homorganic cluster converted too", "अन्य", "अंय"},
		{"nasal plus nasal converted", "जन्म", "जंम"},
		{"bare nasal kept", "मन", "मन"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := p.Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNasalsToConsonants(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.NasalsMode = NasalsToConsonants
	p := mustPipeline(t, "hi", cfg)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"anusvara before dental stop", "हिंदी", "हिन्दी"},
		{"anusvara before labial stop", "कंपन", "कम्पन"},
		{"anusvara before velar stop", "गंगा", "गङ्गा"},
		{"anusvara before non-stop kept", "अंश", "अंश"},
		{"final anusvara kept", "मां", "मां"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := p.Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// Strict anusvara conversion and nasal-consonant expansion invert each
// other on homorganic clusters.
func TestNasalsRoundTrip(t *testing.T) {
	t.Parallel()

	cfgStrict := DefaultConfig()
	cfgStrict.NasalsMode = NasalsToAnusvaraStrict
	strict := mustPipeline(t, "hi", cfgStrict)

	cfgCons := DefaultConfig()
	cfgCons.NasalsMode = NasalsToConsonants
	cons := mustPipeline(t, "hi", cfgCons)

	words := []string{"हिन्दी", "गङ्गा", "पञ्जाब", "घण्टा", "कम्पन"}
	for _, w := range words {
		anusvara := strict.Normalize(w)
		back := cons.Normalize(anusvara)
		if back != w {
			t.Errorf("round trip changed %q: anusvara=%q back=%q", w, anusvara, back)
		}
	}
}

// ---------------------------------------------------------------------------
// Chandra folding
// ---------------------------------------------------------------------------

func TestChandras(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.NormalizeChandras = true
	p := mustPipeline(t, "hi", cfg)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"independent chandra e", "ऍ", "ए"},
		{"independent chandra o", "ऑ", "ओ"},
		{"dependent chandra e", "कॅ", "के"},
		{"dependent chandra o", "कॉ", "को"},
		{"chandrabindu to anusvara", "हाँ", "हां"},
		{"inverted chandrabindu to anusvara", "कऀ", "कं"},
		{"plain text untouched", "कलम", "कलम"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := p.Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Vowel-ending augmentation
// ---------------------------------------------------------------------------

func TestVowelEnding(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.NormalizeVowelEnding = true

	hi := mustPipeline(t, "hi", cfg)
	ta := mustPipeline(t, "ta", cfg)

	tests := []struct {
		name  string
		p     *Pipeline
		input string
		want  string
	}{
		{"indo-aryan final consonant gets halant", hi, "राम", "राम्"},
		{"word ending in vowel sign kept", hi, "सीता", "सीता"},
		{"word already ending in halant kept", hi, "राम्", "राम्"},
		{"every word considered", hi, "राम खा", "राम् खा"},
		{"spacing preserved", hi, "राम  खा", "राम्  खा"},
		{"dravidian final consonant gets aa sign", ta, "மரம", "மரமா"},
		{"dravidian vowel-sign ending kept", ta, "அவனா", "அவனா"},
		{"latin word untouched", hi, "word", "word"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.p.Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Nukta modes
// ---------------------------------------------------------------------------

func TestNuktaRecompose(t *testing.T) {
	t.Parallel()

	p := mustPipeline(t, "hi", DefaultConfig())

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"za recomposed", "ज़रूरत", "ज़रूरत"},
		{"qa recomposed", "क़", "क़"},
		{"fa recomposed", "फ़ल", "फ़ल"},
		{"precomposed kept", "ज़रूरत", "ज़रूरत"},
		{"plain consonant kept", "जरूरत", "जरूरत"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := p.Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNuktaRemove(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.RemoveNuktas = true
	p := mustPipeline(t, "hi", cfg)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"precomposed za folds to ja", "ज़रूरत", "जरूरत"},
		{"decomposed za folds to ja", "ज़रूरत", "जरूरत"},
		{"bare nukta stripped", "क़", "क"},
		{"all precomposed letters fold", "क़ख़ग़ड़ढ़फ़", "कखगडढफ"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := p.Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNuktaDecompose(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.DecomposeNuktas = true
	p := mustPipeline(t, "hi", cfg)

	if got := p.Normalize("ज़रूरत"); got != "ज़रूरत" {
		t.Errorf("Normalize = %q, want %q", got, "ज़रूरत")
	}
}

// Decompose and the default recomposition invert each other.
func TestNuktaRoundTrip(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.DecomposeNuktas = true
	decompose := mustPipeline(t, "hi", cfg)
	recompose := mustPipeline(t, "hi", DefaultConfig())

	words := []string{"ज़रूरत", "क़लम", "सिर्फ़"}
	for _, w := range words {
		apart := decompose.Normalize(w)
		back := recompose.Normalize(apart)
		if back != w {
			t.Errorf("round trip changed %q: apart=%q back=%q", w, apart, back)
		}
	}
}

// ---------------------------------------------------------------------------
// Numeral translation
// ---------------------------------------------------------------------------

func TestNumerals(t *testing.T) {
	t.Parallel()

	toASCII := DefaultConfig()
	toASCII.NormalizeNumerals = true
	ascii := mustPipeline(t, "hi", toASCII)

	toNative := DefaultConfig()
	toNative.NumeralsToNative = true
	native := mustPipeline(t, "hi", toNative)

	tests := []struct {
		name  string
		p     *Pipeline
		input string
		want  string
	}{
		{"native digits to ascii", ascii, "१२३४५६७८९०", "1234567890"},
		{"mixed text to ascii", ascii, "सन् १९४७ में", "सन् 1947 में"},
		{"ascii digits kept by ascii mode", ascii, "123", "123"},
		{"ascii digits to native", native, "1234567890", "१२३४५६७८९०"},
		{"native digits kept by native mode", native, "१२३", "१२३"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.p.Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNumeralsTamil(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.NormalizeNumerals = true
	p := mustPipeline(t, "ta", cfg)

	if got := p.Normalize("௧௨௩"); got != "123" {
		t.Errorf("Normalize(%q) = %q, want %q", "௧௨௩", got, "123")
	}
}
