package normalize

import "testing"

// The fuzz pipelines use the zero Config: cleanup, punctuation and the
// per-script catalog. The colon→visarga rewrite is excluded because a run
// of colons resolves one colon per pass, which breaks the single-pass
// idempotence property checked here.
func fuzzIdempotent(f *testing.F, lang string, seeds []string) {
	p, err := BuildPipeline(lang, Config{})
	if err != nil {
		f.Fatal(err)
	}
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		first := p.Normalize(s)
		second := p.Normalize(first)
		if first != second {
			t.Errorf("not idempotent:\ninput:  %q\nfirst:  %q\nsecond: %q", s, first, second)
		}
	})
}

func FuzzNormalizeHindi(f *testing.F) {
	fuzzIdempotent(f, "hi", []string{
		"हिन्दी में एक वाक्य।",
		"ज़रूरी बात",
		"क|ख “उद्धरण”",
		"\uFEFFनमस्ते‌‍",
		"सन् १९४७",
		"",
		"plain ascii",
		"\xff\xfe",
	})
}

func FuzzNormalizeTamil(f *testing.F) {
	fuzzIdempotent(f, "ta", []string{
		"தமிழ் எழுத்து",
		"கொ",
		"ஔ",
		"அஃது",
		"",
	})
}

func FuzzNormalizeMalayalam(f *testing.F) {
	fuzzIdempotent(f, "ml", []string{
		"അവൻ വീട്ടിൽ പോയി.",
		"അവന്‍",
		"പൊ",
		"ഺ",
		"ക഻",
		"",
	})
}

func FuzzNormalizeUrdu(f *testing.F) {
	fuzzIdempotent(f, "ur", []string{
		"آپ کیسے ہیں؟",
		"كتاب ﷲ",
		"اردو text ملا",
		"مَکتَب",
		"",
	})
}
