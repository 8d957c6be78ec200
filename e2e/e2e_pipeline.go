//go:build ignore

// e2e_pipeline exercises the script, normalize, persoarabic, latin and
// sentsplit packages in a single run and writes structured results to
// data/e2e_pipeline.log.
// Run from the project root:
//
//	go run e2e/e2e_pipeline.go
package main

import (
	"bufio"
	"errors"
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/indic-nlp/indic-go/normalize"
	"github.com/indic-nlp/indic-go/script"
	"github.com/indic-nlp/indic-go/sentsplit"
)

// ---------- constants ----------

const (
	logPath      = "data/e2e_pipeline.log"
	moduleCount  = 5
	maxDetailLen = 200
	concWorkers  = 8
	concIter     = 100
	separator    = "=========================================================="
	suiteCount   = 9
	truncMax     = 80
)

// ---------- test corpus ----------

const textHindi = `भारत एक विशाल देश है। यहाँ अनेक भाषाएँ बोली जाती हैं। श्री गुप्ता ने कहा कि दु:ख और सुख जीवन के दो पहलू हैं।`

const textHindiNoisy = "\uFEFF“भारत” एक महान देश है| यहाँ का इतिहास पुराना है।"

const textBengali = `বাংলা ভাষা সুন্দর। সে গেল এবং ফিরে এল।`

const textTamil = `தமிழ் ஒரு செம்மொழி. அது மிகப் பழமையானது.`

const textMalayalam = `മലയാളം കേരളത്തിന്റെ ഭാഷയാണ്. അവൻ വീട്ടിൽ പോയി.`

const textUrdu = `اردو ایک خوبصورت زبان ہے۔ یہ پاکستان کی قومی زبان ہے۔`

const textEnglish = `The committee met on Monday. Dr. Smith presented the annual report. Everyone agreed.`

// ---------- types ----------

type testResult struct {
	name     string
	module   string
	passed   bool
	duration time.Duration
	detail   string
}

type moduleReport struct {
	name     string
	tests    int
	passed   int
	failed   int
	duration time.Duration
}

// ---------- helpers ----------

func pass(module, name string, start time.Time) testResult {
	return testResult{name: name, module: module, passed: true, duration: time.Since(start)}
}

func fail(module, name, detail string, start time.Time) testResult {
	return testResult{name: name, module: module, passed: false, duration: time.Since(start), detail: truncate(detail, maxDetailLen)}
}

func truncate(s string, maxRunes int) string {
	n := 0
	for i := range s {
		n++
		if n > maxRunes {
			return s[:i] + "..."
		}
	}
	return s
}

func safeRun(module, name string, fn func() testResult) (r testResult) {
	defer func() {
		if p := recover(); p != nil {
			r = fail(module, name, fmt.Sprintf("PANIC: %v", p), time.Now())
		}
	}()
	return fn()
}

func pipelineFor(lang string, cfg normalize.Config) *normalize.Pipeline {
	p, err := normalize.BuildPipeline(lang, cfg)
	if err != nil {
		panic(fmt.Sprintf("BuildPipeline(%q): %v", lang, err))
	}
	return p
}

func profileFor(lang string) *script.Profile {
	p, ok := script.ProfileFor(lang)
	if !ok {
		panic(fmt.Sprintf("no profile for %q", lang))
	}
	return p
}

// ---------- test suites ----------

func testScript() []testResult {
	const mod = "script"
	var results []testResult

	results = append(results, safeRun(mod, "transpose_hindi_to_bengali", func() testResult {
		start := time.Now()
		out := script.Transpose("कलम", profileFor("hi"), profileFor("bn"))
		if out != "কলম" {
			return fail(mod, "transpose_hindi_to_bengali", fmt.Sprintf("got %q, want %q", out, "কলম"), start)
		}
		return pass(mod, "transpose_hindi_to_bengali", start)
	}))

	results = append(results, safeRun(mod, "transpose_roundtrip", func() testResult {
		start := time.Now()
		hi, te := profileFor("hi"), profileFor("te")
		word := "नमस्ते"
		back := script.Transpose(script.Transpose(word, hi, te), te, hi)
		if back != word {
			return fail(mod, "transpose_roundtrip", fmt.Sprintf("got %q, want %q", back, word), start)
		}
		return pass(mod, "transpose_roundtrip", start)
	}))

	results = append(results, safeRun(mod, "offset_codec", func() testResult {
		start := time.Now()
		p := profileFor("hi")
		r, err := p.OffsetToRune(script.OffsetAnusvara)
		if err != nil || r != 'ं' {
			return fail(mod, "offset_codec", fmt.Sprintf("OffsetToRune(anusvara) = %q, %v", r, err), start)
		}
		if off := p.RuneOffset('क'); off != script.OffsetConsFirst {
			return fail(mod, "offset_codec", fmt.Sprintf("RuneOffset('क') = %#x", off), start)
		}
		return pass(mod, "offset_codec", start)
	}))

	results = append(results, safeRun(mod, "rune_classification", func() testResult {
		start := time.Now()
		p := profileFor("hi")
		checks := []struct {
			ok   bool
			what string
		}{
			{p.IsConsonant('क'), "IsConsonant('क')"},
			{p.IsVowel('अ'), "IsVowel('अ')"},
			{p.IsVowelSign('ा'), "IsVowelSign('ा')"},
			{p.IsHalanta('्'), "IsHalanta('्')"},
			{p.IsNumber('०'), "IsNumber('०')"},
		}
		for _, c := range checks {
			if !c.ok {
				return fail(mod, "rune_classification", c.what+" == false", start)
			}
		}
		return pass(mod, "rune_classification", start)
	}))

	results = append(results, safeRun(mod, "sinhala_offsets_rejected", func() testResult {
		start := time.Now()
		_, err := profileFor("si").OffsetToRune(script.OffsetAnusvara)
		if !errors.Is(err, script.ErrInvalidOffset) {
			return fail(mod, "sinhala_offsets_rejected", fmt.Sprintf("err = %v", err), start)
		}
		return pass(mod, "sinhala_offsets_rejected", start)
	}))

	results = append(results, safeRun(mod, "nasal_rules_in_consonant_range", func() testResult {
		start := time.Now()
		rules := script.NasalRules()
		if len(rules) == 0 {
			return fail(mod, "nasal_rules_in_consonant_range", "no nasal rules", start)
		}
		for _, r := range rules {
			if r.Nasal < script.OffsetConsFirst || r.Nasal > script.OffsetConsLast {
				return fail(mod, "nasal_rules_in_consonant_range",
					fmt.Sprintf("nasal offset %#x outside consonant range", r.Nasal), start)
			}
		}
		return pass(mod, "nasal_rules_in_consonant_range", start)
	}))

	return results
}

func testEngine() []testResult {
	const mod = "normalize"
	var results []testResult

	results = append(results, safeRun(mod, "invisible_chars_removed", func() testResult {
		start := time.Now()
		p := pipelineFor("hi", normalize.Config{})
		out := p.Normalize("\uFEFFनमस्ते\u00AD")
		if out != "नमस्ते" {
			return fail(mod, "invisible_chars_removed", fmt.Sprintf("got %q", out), start)
		}
		return pass(mod, "invisible_chars_removed", start)
	}))

	results = append(results, safeRun(mod, "typographic_punctuation", func() testResult {
		start := time.Now()
		p := pipelineFor("hi", normalize.Config{})
		out := p.Normalize("“नमस्ते”")
		if out != `"नमस्ते"` {
			return fail(mod, "typographic_punctuation", fmt.Sprintf("got %q", out), start)
		}
		return pass(mod, "typographic_punctuation", start)
	}))

	results = append(results, safeRun(mod, "idempotent_base_options", func() testResult {
		start := time.Now()
		for _, lang := range []string{"hi", "bn", "ta", "ml", "si"} {
			p := pipelineFor(lang, normalize.Config{})
			once := p.Normalize(textHindiNoisy)
			twice := p.Normalize(once)
			if once != twice {
				return fail(mod, "idempotent_base_options",
					fmt.Sprintf("%s: second pass changed output", lang), start)
			}
		}
		return pass(mod, "idempotent_base_options", start)
	}))

	results = append(results, safeRun(mod, "foreign_text_untouched", func() testResult {
		start := time.Now()
		p := pipelineFor("hi", normalize.Config{})
		const plain = "hello world 123"
		if out := p.Normalize(plain); out != plain {
			return fail(mod, "foreign_text_untouched", fmt.Sprintf("got %q", out), start)
		}
		return pass(mod, "foreign_text_untouched", start)
	}))

	results = append(results, safeRun(mod, "unsupported_language", func() testResult {
		start := time.Now()
		_, err := normalize.BuildPipeline("xx", normalize.DefaultConfig())
		if !errors.Is(err, normalize.ErrUnsupportedLanguage) {
			return fail(mod, "unsupported_language", fmt.Sprintf("err = %v", err), start)
		}
		return pass(mod, "unsupported_language", start)
	}))

	results = append(results, safeRun(mod, "conflicting_config", func() testResult {
		start := time.Now()
		_, err := normalize.BuildPipeline("hi", normalize.Config{NormalizeNumerals: true, NumeralsToNative: true})
		if !errors.Is(err, normalize.ErrConflictingConfig) {
			return fail(mod, "conflicting_config", fmt.Sprintf("err = %v", err), start)
		}
		return pass(mod, "conflicting_config", start)
	}))

	results = append(results, safeRun(mod, "every_language_builds", func() testResult {
		start := time.Now()
		for _, lang := range normalize.Supported() {
			p, err := normalize.BuildPipeline(lang, normalize.DefaultConfig())
			if err != nil {
				return fail(mod, "every_language_builds", fmt.Sprintf("%s: %v", lang, err), start)
			}
			if p.Lang() != lang {
				return fail(mod, "every_language_builds", fmt.Sprintf("Lang() = %q, want %q", p.Lang(), lang), start)
			}
		}
		return pass(mod, "every_language_builds", start)
	}))

	return results
}

func testCatalogs() []testResult {
	const mod = "normalize"
	var results []testResult

	cases := []struct {
		name  string
		lang  string
		input string
		want  string
	}{
		{"hindi_colon_to_visarga", "hi", "दु:ख हुआ", "दुःख हुआ"},
		{"hindi_pipe_to_danda", "hi", "वह गया|", "वह गया।"},
		{"bengali_two_part_o", "bn", "কো", "কো"},
		{"gurmukhi_vowel_merge", "pa", "ਅਾ", "ਆ"},
		{"tamil_two_part_o", "ta", "கொ", "கொ"},
		{"malayalam_legacy_chillu", "ml", "അവന്‍", "അവൻ"},
		{"sinhala_vowel_merge", "si", "අා", "ආ"},
	}

	for _, tc := range cases {
		tc := tc
		results = append(results, safeRun(mod, tc.name, func() testResult {
			start := time.Now()
			p := pipelineFor(tc.lang, normalize.DefaultConfig())
			if out := p.Normalize(tc.input); out != tc.want {
				return fail(mod, tc.name, fmt.Sprintf("got %q, want %q", out, tc.want), start)
			}
			return pass(mod, tc.name, start)
		}))
	}

	return results
}

func testOptions() []testResult {
	const mod = "normalize"
	var results []testResult

	results = append(results, safeRun(mod, "nasals_strict", func() testResult {
		start := time.Now()
		p := pipelineFor("hi", normalize.Config{NasalsMode: normalize.NasalsToAnusvaraStrict})
		if out := p.Normalize("हिन्दी"); out != "हिंदी" {
			return fail(mod, "nasals_strict", fmt.Sprintf("got %q", out), start)
		}
		return pass(mod, "nasals_strict", start)
	}))

	results = append(results, safeRun(mod, "nasals_roundtrip", func() testResult {
		start := time.Now()
		toAnusvara := pipelineFor("hi", normalize.Config{NasalsMode: normalize.NasalsToAnusvaraStrict})
		toConsonant := pipelineFor("hi", normalize.Config{NasalsMode: normalize.NasalsToConsonants})
		const word = "हिन्दी"
		if back := toConsonant.Normalize(toAnusvara.Normalize(word)); back != word {
			return fail(mod, "nasals_roundtrip", fmt.Sprintf("got %q, want %q", back, word), start)
		}
		return pass(mod, "nasals_roundtrip", start)
	}))

	results = append(results, safeRun(mod, "chandras_folded", func() testResult {
		start := time.Now()
		p := pipelineFor("hi", normalize.Config{NormalizeChandras: true})
		if out := p.Normalize("कॅ"); out != "के" {
			return fail(mod, "chandras_folded", fmt.Sprintf("got %q", out), start)
		}
		return pass(mod, "chandras_folded", start)
	}))

	results = append(results, safeRun(mod, "nukta_remove_and_decompose", func() testResult {
		start := time.Now()
		remove := pipelineFor("hi", normalize.Config{RemoveNuktas: true})
		if out := remove.Normalize("ज़"); out != "ज" {
			return fail(mod, "nukta_remove_and_decompose", fmt.Sprintf("remove: got %q", out), start)
		}
		decompose := pipelineFor("hi", normalize.Config{DecomposeNuktas: true})
		if out := decompose.Normalize("ज़"); out != "ज़" {
			return fail(mod, "nukta_remove_and_decompose", fmt.Sprintf("decompose: got %q", out), start)
		}
		return pass(mod, "nukta_remove_and_decompose", start)
	}))

	results = append(results, safeRun(mod, "numerals_both_directions", func() testResult {
		start := time.Now()
		toASCII := pipelineFor("hi", normalize.Config{NormalizeNumerals: true})
		if out := toASCII.Normalize("२०२६"); out != "2026" {
			return fail(mod, "numerals_both_directions", fmt.Sprintf("to ascii: got %q", out), start)
		}
		toNative := pipelineFor("hi", normalize.Config{NumeralsToNative: true})
		if out := toNative.Normalize("2026"); out != "२०२६" {
			return fail(mod, "numerals_both_directions", fmt.Sprintf("to native: got %q", out), start)
		}
		return pass(mod, "numerals_both_directions", start)
	}))

	results = append(results, safeRun(mod, "vowel_ending_by_family", func() testResult {
		start := time.Now()
		hi := pipelineFor("hi", normalize.Config{NormalizeVowelEnding: true})
		if out := hi.Normalize("राम"); out != "राम्" {
			return fail(mod, "vowel_ending_by_family", fmt.Sprintf("hi: got %q", out), start)
		}
		ta := pipelineFor("ta", normalize.Config{NormalizeVowelEnding: true})
		if out := ta.Normalize("மரம"); out != "மரமா" {
			return fail(mod, "vowel_ending_by_family", fmt.Sprintf("ta: got %q", out), start)
		}
		return pass(mod, "vowel_ending_by_family", start)
	}))

	results = append(results, safeRun(mod, "sinhala_offset_option_rejected", func() testResult {
		start := time.Now()
		_, err := normalize.BuildPipeline("si", normalize.Config{NormalizeChandras: true})
		if !errors.Is(err, script.ErrInvalidOffset) {
			return fail(mod, "sinhala_offset_option_rejected", fmt.Sprintf("err = %v", err), start)
		}
		return pass(mod, "sinhala_offset_option_rejected", start)
	}))

	return results
}

func testPersoArabic() []testResult {
	const mod = "persoarabic"
	var results []testResult

	cases := []struct {
		name  string
		lang  string
		input string
		want  string
	}{
		{"urdu_arabic_kaf_folded", "ur", "كتاب", "کتاب"},
		{"urdu_question_mark", "ur", "کیا?", "کیا؟"},
		{"urdu_full_stop_spacing", "ur", "گیا۔وہ", "گیا۔ وہ"},
		{"urdu_curly_quotes_first", "ur", "‘كتاب’", "'کتاب'"},
		{"sindhi_tteh", "sd", "ٹ", "ٽ"},
		{"arabic_tashkeel_stripped", "ar", "الرَّحمٰن", "الرحمن"},
		{"arabic_digits_to_ascii", "ar", "٤٥", "45"},
		{"persian_yeh_folded", "fa", "ايران", "ایران"},
	}

	for _, tc := range cases {
		tc := tc
		results = append(results, safeRun(mod, tc.name, func() testResult {
			start := time.Now()
			p := pipelineFor(tc.lang, normalize.DefaultConfig())
			if out := p.Normalize(tc.input); out != tc.want {
				return fail(mod, tc.name, fmt.Sprintf("got %q, want %q", out, tc.want), start)
			}
			return pass(mod, tc.name, start)
		}))
	}

	results = append(results, safeRun(mod, "urdu_idempotent", func() testResult {
		start := time.Now()
		p := pipelineFor("ur", normalize.DefaultConfig())
		once := p.Normalize(textUrdu + " mixed اردوtext")
		twice := p.Normalize(once)
		if once != twice {
			return fail(mod, "urdu_idempotent", "second pass changed output", start)
		}
		return pass(mod, "urdu_idempotent", start)
	}))

	return results
}

func testLatin() []testResult {
	const mod = "latin"
	var results []testResult

	results = append(results, safeRun(mod, "spacing_and_capitalization", func() testResult {
		start := time.Now()
		p := pipelineFor("en", normalize.DefaultConfig())
		if out := p.Normalize("this is fine ."); out != "This is fine." {
			return fail(mod, "spacing_and_capitalization", fmt.Sprintf("got %q", out), start)
		}
		return pass(mod, "spacing_and_capitalization", start)
	}))

	results = append(results, safeRun(mod, "curly_quotes_folded", func() testResult {
		start := time.Now()
		p := pipelineFor("en", normalize.DefaultConfig())
		if out := p.Normalize("“hello,” he said ."); out != `"Hello," he said.` {
			return fail(mod, "curly_quotes_folded", fmt.Sprintf("got %q", out), start)
		}
		return pass(mod, "curly_quotes_folded", start)
	}))

	return results
}

func testSentSplit() []testResult {
	const mod = "sentsplit"
	var results []testResult

	results = append(results, safeRun(mod, "danda_split", func() testResult {
		start := time.Now()
		sents := sentsplit.Split("वह घर गया। फिर आया।", "hi")
		if len(sents) != 2 {
			return fail(mod, "danda_split", fmt.Sprintf("got %d sentences: %q", len(sents), sents), start)
		}
		return pass(mod, "danda_split", start)
	}))

	results = append(results, safeRun(mod, "abbreviations_kept_together", func() testResult {
		start := time.Now()
		sents := sentsplit.Split("श्री डॉ. गुप्ता कल आए. वे गए.", "hi")
		if len(sents) != 2 {
			return fail(mod, "abbreviations_kept_together", fmt.Sprintf("got %d sentences: %q", len(sents), sents), start)
		}
		if !strings.Contains(sents[0], "गुप्ता") {
			return fail(mod, "abbreviations_kept_together", fmt.Sprintf("first sentence: %q", sents[0]), start)
		}
		return pass(mod, "abbreviations_kept_together", start)
	}))

	results = append(results, safeRun(mod, "decimal_point_protected", func() testResult {
		start := time.Now()
		sents := sentsplit.Split("कीमत 3.50 रुपये है. ठीक.", "hi")
		if len(sents) != 2 || !strings.Contains(sents[0], "3.50") {
			return fail(mod, "decimal_point_protected", fmt.Sprintf("got %q", sents), start)
		}
		return pass(mod, "decimal_point_protected", start)
	}))

	results = append(results, safeRun(mod, "quoted_delimiters_protected", func() testResult {
		start := time.Now()
		sents := sentsplit.Split(`She said "Stop. Now." and left. He agreed.`, "en")
		if len(sents) != 2 {
			return fail(mod, "quoted_delimiters_protected", fmt.Sprintf("got %d sentences: %q", len(sents), sents), start)
		}
		return pass(mod, "quoted_delimiters_protected", start)
	}))

	results = append(results, safeRun(mod, "urdu_full_stop", func() testResult {
		start := time.Now()
		sents := sentsplit.Split(textUrdu, "ur")
		if len(sents) != 2 {
			return fail(mod, "urdu_full_stop", fmt.Sprintf("got %d sentences: %q", len(sents), sents), start)
		}
		return pass(mod, "urdu_full_stop", start)
	}))

	results = append(results, safeRun(mod, "empty_input", func() testResult {
		start := time.Now()
		if sents := sentsplit.Split("", "hi"); len(sents) != 0 {
			return fail(mod, "empty_input", fmt.Sprintf("got %d sentences", len(sents)), start)
		}
		return pass(mod, "empty_input", start)
	}))

	return results
}

func testPipeline() []testResult {
	const mod = "pipeline"
	var results []testResult

	results = append(results, safeRun(mod, "normalize_then_split", func() testResult {
		start := time.Now()
		p := pipelineFor("hi", normalize.DefaultConfig())
		out := p.Normalize(textHindiNoisy + " " + textHindi)
		if strings.ContainsAny(out, "|\uFEFF") {
			return fail(mod, "normalize_then_split", "pipe or BOM survived normalization", start)
		}
		sents := sentsplit.Split(out, "hi")
		if len(sents) < 4 {
			return fail(mod, "normalize_then_split", fmt.Sprintf("got %d sentences", len(sents)), start)
		}
		return pass(mod, "normalize_then_split", start)
	}))

	results = append(results, safeRun(mod, "transpose_commutes_with_normalize", func() testResult {
		start := time.Now()
		hi, bn := profileFor("hi"), profileFor("bn")
		normHi := pipelineFor("hi", normalize.DefaultConfig())
		normBn := pipelineFor("bn", normalize.DefaultConfig())
		const word = "दु:ख"
		left := script.Transpose(normHi.Normalize(word), hi, bn)
		right := normBn.Normalize(script.Transpose(word, hi, bn))
		if left != right {
			return fail(mod, "transpose_commutes_with_normalize",
				fmt.Sprintf("transpose(norm) = %q, norm(transpose) = %q", left, right), start)
		}
		return pass(mod, "transpose_commutes_with_normalize", start)
	}))

	results = append(results, safeRun(mod, "language_specific_splitting", func() testResult {
		start := time.Now()
		for _, tc := range []struct {
			lang string
			text string
			want int
		}{
			{"bn", textBengali, 2},
			{"ta", textTamil, 2},
			{"ml", textMalayalam, 2},
			{"en", textEnglish, 3},
		} {
			p := pipelineFor(tc.lang, normalize.DefaultConfig())
			sents := sentsplit.Split(p.Normalize(tc.text), tc.lang)
			if len(sents) != tc.want {
				return fail(mod, "language_specific_splitting",
					fmt.Sprintf("%s: got %d sentences, want %d", tc.lang, len(sents), tc.want), start)
			}
		}
		return pass(mod, "language_specific_splitting", start)
	}))

	return results
}

func testConcurrent() []testResult {
	const mod = "concurrent"
	var results []testResult

	results = append(results, safeRun(mod, "shared_pipeline", func() testResult {
		start := time.Now()
		p := pipelineFor("hi", normalize.DefaultConfig())
		want := p.Normalize(textHindi)

		var mismatches atomic.Int64
		var wg sync.WaitGroup
		for range concWorkers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for range concIter {
					if p.Normalize(textHindi) != want {
						mismatches.Add(1)
					}
				}
			}()
		}
		wg.Wait()

		if n := mismatches.Load(); n > 0 {
			return fail(mod, "shared_pipeline", fmt.Sprintf("%d mismatched results", n), start)
		}
		return pass(mod, "shared_pipeline", start)
	}))

	results = append(results, safeRun(mod, "shared_collaborator", func() testResult {
		start := time.Now()
		p := pipelineFor("ur", normalize.DefaultConfig())
		want := p.Normalize(textUrdu)

		var mismatches atomic.Int64
		var wg sync.WaitGroup
		for range concWorkers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for range concIter {
					if p.Normalize(textUrdu) != want {
						mismatches.Add(1)
					}
				}
			}()
		}
		wg.Wait()

		if n := mismatches.Load(); n > 0 {
			return fail(mod, "shared_collaborator", fmt.Sprintf("%d mismatched results", n), start)
		}
		return pass(mod, "shared_collaborator", start)
	}))

	return results
}

// ---------- orchestration ----------

func runAllSuites() []testResult {
	suites := []func() []testResult{
		testScript,
		testEngine,
		testCatalogs,
		testOptions,
		testPersoArabic,
		testLatin,
		testSentSplit,
		testPipeline,
		testConcurrent,
	}

	var all []testResult
	for _, suite := range suites {
		all = append(all, suite()...)
	}
	return all
}

func buildReports(results []testResult) []moduleReport {
	order := make(map[string]int)
	var reports []moduleReport

	for _, r := range results {
		idx, exists := order[r.module]
		if !exists {
			idx = len(reports)
			order[r.module] = idx
			reports = append(reports, moduleReport{name: r.module})
		}
		reports[idx].tests++
		reports[idx].duration += r.duration
		if r.passed {
			reports[idx].passed++
		} else {
			reports[idx].failed++
		}
	}
	return reports
}

func writeLog(path string, results []testResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)

	now := time.Now().UTC().Format(time.RFC3339)
	goVer := runtime.Version()
	platform := runtime.GOOS + "/" + runtime.GOARCH

	fmt.Fprintln(bw, separator)
	fmt.Fprintln(bw, "  indic-go E2E Pipeline Test")
	fmt.Fprintf(bw, "  Timestamp: %s\n", now)
	fmt.Fprintf(bw, "  Go: %s  OS: %s\n", goVer, platform)
	fmt.Fprintf(bw, "  Modules: %d\n", moduleCount)
	fmt.Fprintln(bw, separator)
	fmt.Fprintln(bw)

	reports := buildReports(results)
	var totalDuration time.Duration
	for _, rep := range reports {
		totalDuration += rep.duration
	}

	// Per-module sections.
	for _, rep := range reports {
		fmt.Fprintf(bw, "[%s] %d tests | %d passed | %d failed | %s\n",
			rep.name, rep.tests, rep.passed, rep.failed, rep.duration.Round(time.Microsecond))
		for _, r := range results {
			if r.module != rep.name {
				continue
			}
			status := "PASS"
			if !r.passed {
				status = "FAIL"
			}
			fmt.Fprintf(bw, "  %-6s %-45s %s\n", status, r.name, r.duration.Round(time.Microsecond))
		}
		fmt.Fprintln(bw)
	}

	// Failures section.
	var failures []testResult
	for _, r := range results {
		if !r.passed {
			failures = append(failures, r)
		}
	}
	if len(failures) > 0 {
		fmt.Fprintln(bw, "--- FAILURES ---")
		for _, r := range failures {
			fmt.Fprintf(bw, "  FAIL  [%s] %-40s %s\n", r.module, r.name, r.duration.Round(time.Microsecond))
			if r.detail != "" {
				for line := range strings.SplitSeq(r.detail, "\n") {
					fmt.Fprintf(bw, "        %s\n", line)
				}
			}
		}
		fmt.Fprintln(bw)
	}

	// Summary.
	totalTests := len(results)
	totalPassed := 0
	totalFailed := 0
	for _, r := range results {
		if r.passed {
			totalPassed++
		} else {
			totalFailed++
		}
	}

	fmt.Fprintln(bw, separator)
	fmt.Fprintf(bw, "  SUMMARY: %d tests | %d passed | %d failed | %s\n",
		totalTests, totalPassed, totalFailed, totalDuration.Round(time.Microsecond))
	fmt.Fprintln(bw, separator)

	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func printSummary(results []testResult) {
	reports := buildReports(results)
	totalPassed := 0
	totalFailed := 0
	var totalDuration time.Duration

	for _, rep := range reports {
		totalPassed += rep.passed
		totalFailed += rep.failed
		totalDuration += rep.duration

		status := "OK"
		if rep.failed > 0 {
			status = "FAIL"
		}
		log.Printf("  %-12s %d/%d %s", rep.name, rep.passed, rep.tests, status)
	}

	log.Printf("")
	log.Printf("  %d tests | %d passed | %d failed | %s",
		len(results), totalPassed, totalFailed, totalDuration.Round(time.Microsecond))

	for _, r := range results {
		if !r.passed {
			log.Printf("  FAIL [%s] %s: %s", r.module, r.name, r.detail)
		}
	}
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("[e2e] ")

	log.Printf("starting E2E pipeline test (%d modules, %d suites)", moduleCount, suiteCount)
	totalStart := time.Now()

	results := runAllSuites()

	log.Printf("completed in %s", time.Since(totalStart).Round(time.Microsecond))
	log.Printf("")

	printSummary(results)

	if err := writeLog(logPath, results); err != nil {
		log.Fatalf("cannot write log: %v", err)
	}
	log.Printf("log written to %s", logPath)

	for _, r := range results {
		if !r.passed {
			os.Exit(1)
		}
	}
}
