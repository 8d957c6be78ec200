// Package normalize canonicalizes text written in the Brahmi-derived scripts
// of South Asia.
//
// A single script admits many visually identical but codepoint-distinct
// encodings: precomposed nukta letters versus base+nukta sequences, two-part
// dependent vowel signs, legacy chillu encodings, punctuation variants. The
// package folds each of these to one canonical representation so that
// downstream tokenization, translation and indexing see a single form.
//
// The engine is offset-parametric: Unicode allocates the coordinated Brahmic
// blocks in parallel, so the generic transforms (nasal/anusvara conversion,
// chandra substitution, vowel-ending augmentation, numeral translation) are
// written once against structural offsets from the script package and bound
// to a concrete script when a pipeline is built. Script-specific orthography
// is carried by per-script rule catalogs applied in a fixed, documented
// order.
//
// Usage:
//
//	p, err := normalize.BuildPipeline("hi", normalize.DefaultConfig())
//	if err != nil { ... }
//	out := p.Normalize(line)
//
// Pipelines are immutable after construction and safe for concurrent use by
// multiple goroutines. Normalize is pure and total: it never fails, and text
// that is already normalized (or in a foreign script) passes through
// unchanged.
//
// Languages written in Perso-Arabic scripts (ur, pnb, skr, sd), Arabic, and
// Persian, plus plain Latin cleanup (en), are served by delegating pipelines
// backed by the persoarabic and latin packages.
//
// Known limitations:
//
//   - Input must be decoded Unicode text. Encoding detection and repair are
//     out of scope; ill-formed bytes pass through unchanged.
//   - Transliteration between scripts is not performed.
//   - The chandra, nasal, vowel-ending and numeral options require an
//     offset-coordinated script and are rejected at build time for Sinhala.
package normalize

import "strings"

// stage is one compiled transform of a pipeline. The name identifies the
// stage in tests and debug output.
type stage struct {
	name string
	fn   func(string) string
}

// Pipeline is an ordered, immutable sequence of compiled stages bound to one
// script profile and one Config. Build once with BuildPipeline, reuse across
// any number of Normalize calls.
type Pipeline struct {
	lang   string
	stages []stage
}

// Lang returns the language code the pipeline was built for.
func (p *Pipeline) Lang() string { return p.lang }

// Normalize runs text through every stage in order and returns the fully
// normalized result. It never fails; stages that do not apply simply leave
// the text unchanged.
func (p *Pipeline) Normalize(text string) string {
	for _, st := range p.stages {
		text = st.fn(text)
	}
	return text
}

// stageNames returns the stage names in execution order. Used by tests.
func (p *Pipeline) stageNames() []string {
	names := make([]string, len(p.stages))
	for i, st := range p.stages {
		names[i] = st.name
	}
	return names
}

// Substitution is a single source→replacement rewrite. Source and
// replacement may be one or more codepoints.
type Substitution struct {
	From string
	To   string
}

// SubstitutionMap is an ordered rewrite list. Apply performs each rewrite in
// order over the whole text, so later entries see the output of earlier
// ones; within one map the order is part of the contract.
type SubstitutionMap []Substitution

// Apply performs every substitution in order.
func (m SubstitutionMap) Apply(text string) string {
	for _, s := range m {
		text = strings.ReplaceAll(text, s.From, s.To)
	}
	return text
}

func (m SubstitutionMap) stage(name string) stage {
	return stage{name: name, fn: m.Apply}
}
