package normalize

import "fmt"

// NasalsMode selects how nasal consonants and the anusvara are reconciled.
// The three conversions are mutually exclusive; NasalsNone leaves nasals
// untouched.
type NasalsMode int

const (
	// NasalsNone performs no nasal conversion.
	NasalsNone NasalsMode = iota
	// NasalsToAnusvaraStrict replaces nasal+halant+consonant with
	// anusvara+consonant only when the consonant lies in the nasal's
	// homorganic range.
	NasalsToAnusvaraStrict
	// NasalsToAnusvaraRelaxed replaces every nasal+halant with anusvara,
	// regardless of what follows.
	NasalsToAnusvaraRelaxed
	// NasalsToConsonants replaces anusvara+consonant with the homorganic
	// nasal+halant+consonant. Inverse of NasalsToAnusvaraStrict.
	NasalsToConsonants
)

// String returns the mode's wire name, matching the names accepted by
// ParseNasalsMode.
func (m NasalsMode) String() string {
	switch m {
	case NasalsToAnusvaraStrict:
		return "to_anusvaara_strict"
	case NasalsToAnusvaraRelaxed:
		return "to_anusvaara_relaxed"
	case NasalsToConsonants:
		return "to_nasal_consonants"
	default:
		return "do_nothing"
	}
}

// ParseNasalsMode parses the conventional mode names used on the command
// line: do_nothing, to_anusvaara_strict, to_anusvaara_relaxed,
// to_nasal_consonants.
func ParseNasalsMode(s string) (NasalsMode, error) {
	switch s {
	case "", "do_nothing":
		return NasalsNone, nil
	case "to_anusvaara_strict":
		return NasalsToAnusvaraStrict, nil
	case "to_anusvaara_relaxed":
		return NasalsToAnusvaraRelaxed, nil
	case "to_nasal_consonants":
		return NasalsToConsonants, nil
	default:
		return NasalsNone, fmt.Errorf("unknown nasals mode %q", s)
	}
}

// Config selects the optional stages of a pipeline and their modes. The
// zero value is a conservative pipeline: cleanup, punctuation and the
// script's canonical rule catalog (with nukta recomposition), nothing else.
// Config is read once by BuildPipeline; changing it afterwards has no
// effect on pipelines already built.
type Config struct {
	// RemoveNuktas strips the combining nukta and folds precomposed nukta
	// letters to their base form. Mutually exclusive with DecomposeNuktas.
	RemoveNuktas bool
	// DecomposeNuktas expands precomposed nukta letters into base+nukta.
	// When neither nukta flag is set, base+nukta sequences are recomposed
	// into the precomposed letters.
	DecomposeNuktas bool

	NasalsMode NasalsMode

	// NormalizeChandras folds chandra vowel/nasal variants to their
	// canonical codepoints.
	NormalizeChandras bool
	// NormalizeVowelEnding appends the family's dead-consonant marker to
	// words ending in a bare consonant: halant for Indo-Aryan scripts, the
	// inherent-vowel sign for Dravidian scripts. Lossy-transparent; opt-in.
	NormalizeVowelEnding bool

	// NormalizeNumerals translates native digits to ASCII.
	NormalizeNumerals bool
	// NumeralsToNative translates ASCII digits to the script's digits.
	// Mutually exclusive with NormalizeNumerals.
	NumeralsToNative bool

	// ColonToVisarga rewrites an ASCII colon as the visarga when it
	// immediately follows a character of the script's own block.
	ColonToVisarga bool

	// Gurmukhi.
	CanonicalizeAddak bool // addak+consonant → consonant+halant+consonant
	CanonicalizeTippi bool // tippi → bindi
	ReplaceVowelBases bool // bare iri/ura → closest independent vowel

	// Bengali script, Assamese language.
	RemapAssamese bool // Assamese ra/va → Bengali forms (default keeps ra Assamese)

	// Oriya.
	RemapWaToBa bool

	// Tamil.
	RemapGrantha bool // grantha consonants → core Tamil

	// Malayalam.
	ExplicitHalfU       bool // final virama → explicit half-u (u-sign+virama)
	HalfUToU            bool // half-u and final virama → plain u-sign
	CanonicalizeChillus bool // chillu letters → consonant+virama
	ViramasToChillus    bool // word-internal consonant+virama → chillu
	AllViramasToChillus bool // every consonant+virama → chillu
	CorrectGeminatedT   bool // റ്റ → ട്ട

	// Sinhala.
	MisraToSuddha bool // fold misra consonants to the suddha subset

	// Kashmiri (Devanagari).
	MigrateKashmiriOrthography bool // 1995- and 2002-era spellings → 2009 codepoints
}

// DefaultConfig returns the options matching the original normalizer
// defaults: nukta recomposition and colon→visarga correction on, everything
// else off.
func DefaultConfig() Config {
	return Config{ColonToVisarga: true}
}

// validate rejects mutually exclusive option combinations.
func (c Config) validate() error {
	if c.NormalizeNumerals && c.NumeralsToNative {
		return fmt.Errorf("%w: NormalizeNumerals and NumeralsToNative both set", ErrConflictingConfig)
	}
	if c.RemoveNuktas && c.DecomposeNuktas {
		return fmt.Errorf("%w: RemoveNuktas and DecomposeNuktas both set", ErrConflictingConfig)
	}
	return nil
}

// nuktaMode is the resolved three-way nukta handling.
type nuktaMode int

const (
	nuktaRecompose nuktaMode = iota
	nuktaRemove
	nuktaDecompose
)

func (c Config) nuktaMode() nuktaMode {
	switch {
	case c.RemoveNuktas:
		return nuktaRemove
	case c.DecomposeNuktas:
		return nuktaDecompose
	default:
		return nuktaRecompose
	}
}
