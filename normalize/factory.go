package normalize

import (
	"fmt"
	"sort"

	"github.com/indic-nlp/indic-go/latin"
	"github.com/indic-nlp/indic-go/persoarabic"
	"github.com/indic-nlp/indic-go/script"
)

// Collaborator is the contract an external normalizer satisfies to serve a
// language the offset-parametric engine does not cover. The dispatcher
// treats collaborators as opaque; only Normalize is relied on, and it must
// be pure and total per call.
type Collaborator interface {
	Normalize(text string) string
}

// collaborators maps language codes served by delegation.
var collaborators = map[string]Collaborator{
	"ur":  persoarabic.Urdu{},
	"pnb": persoarabic.Urdu{},
	"skr": persoarabic.Urdu{},
	"sd":  persoarabic.Sindhi{},
	"ar":  persoarabic.Arabic{},
	"fa":  persoarabic.Persian{},
	"en":  latin.Normalizer{ASCIIOnly: true},
}

// catalogFor returns the script rule catalog for a Brahmic language.
func catalogFor(p *script.Profile, cfg Config) catalog {
	switch p.Lang {
	case "hi", "mr", "sa", "ne", "kK", "ks", "sd_IN":
		return devanagariCatalog(p, cfg)
	case "bn", "as":
		return bengaliCatalog(p, cfg)
	case "pa":
		return gurmukhiCatalog(p, cfg)
	case "gu":
		return gujaratiCatalog(p, cfg)
	case "or":
		return oriyaCatalog(p, cfg)
	case "ta":
		return tamilCatalog(p, cfg)
	case "te":
		return teluguCatalog(p, cfg)
	case "kn":
		return kannadaCatalog(p, cfg)
	case "ml":
		return malayalamCatalog(p, cfg)
	case "si":
		return sinhalaCatalog(p, cfg)
	}
	return catalog{}
}

// Supported returns the supported language codes, sorted.
func Supported() []string {
	langs := script.Languages()
	for lang := range collaborators {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// IsSupported reports whether a pipeline can be built for the language.
func IsSupported(lang string) bool {
	if _, ok := collaborators[lang]; ok {
		return true
	}
	_, ok := script.ProfileFor(lang)
	return ok
}

// BuildPipeline composes the stage list for a language under the given
// configuration. All pattern compilation and offset resolution happen
// here; the returned pipeline does no construction work per call.
//
// Errors: ErrUnsupportedLanguage for codes outside the supported set,
// ErrConflictingConfig for mutually exclusive options, and
// script.ErrInvalidOffset when an option needs a structural slot the
// script does not have (for example chandra normalization for Sinhala).
func BuildPipeline(lang string, cfg Config) (*Pipeline, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if c, ok := collaborators[lang]; ok {
		return &Pipeline{lang: lang, stages: []stage{
			punctuationStage(),
			{name: "delegate", fn: c.Normalize},
		}}, nil
	}

	p, ok := script.ProfileFor(lang)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
	}

	cat := catalogFor(p, cfg)

	stages := make([]stage, 0, len(cat.pre)+len(cat.post)+8)
	stages = append(stages, cat.pre...)
	stages = append(stages, cleanupStage(), punctuationStage())

	if cfg.NormalizeChandras {
		st, err := chandraStage(p)
		if err != nil {
			return nil, err
		}
		stages = append(stages, st)
	}
	if cfg.NasalsMode != NasalsNone {
		st, err := nasalsStage(p, cfg.NasalsMode)
		if err != nil {
			return nil, err
		}
		stages = append(stages, st)
	}
	if cfg.NormalizeVowelEnding {
		st, err := vowelEndingStage(p)
		if err != nil {
			return nil, err
		}
		stages = append(stages, st)
	}

	stages = append(stages, cat.post...)

	if cfg.NormalizeNumerals || cfg.NumeralsToNative {
		st, err := numeralsStage(p, cfg.NumeralsToNative)
		if err != nil {
			return nil, err
		}
		stages = append(stages, st)
	}

	return &Pipeline{lang: lang, stages: stages}, nil
}
