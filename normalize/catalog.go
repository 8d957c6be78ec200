package normalize

import (
	"fmt"
	"regexp"

	"github.com/indic-nlp/indic-go/script"
)

// catalog is one script's contribution to the pipeline: rules that must run
// before the shared stages (legacy encodings that the cleanup stage would
// destroy, vowel-base merges) and rules that run after them. Each list has
// a fixed, script-documented order; reordering is not safe because later
// rules consume the output of earlier ones.
type catalog struct {
	pre  []stage
	post []stage
}

// regexStage compiles a single pattern→replacement rewrite.
func regexStage(name, pattern, repl string) stage {
	pat := regexp.MustCompile(pattern)
	return stage{name: name, fn: func(text string) string {
		return pat.ReplaceAllString(text, repl)
	}}
}

// visargaStage rewrites an ASCII colon as the script's visarga when the
// colon immediately follows a character of the script's own block. Colons
// after foreign-script characters are untouched.
func visargaStage(p *script.Profile) stage {
	pat := regexp.MustCompile(fmt.Sprintf("([%c-%c]):", p.Block, p.BlockEnd))
	visarga := p.Block + script.OffsetVisarga
	repl := "${1}" + string(visarga)
	return stage{name: "visarga", fn: func(text string) string {
		return pat.ReplaceAllString(text, repl)
	}}
}

// Poorna virama (danda) codepoints shared across the script family.
const (
	danda       = "।"
	doubleDanda = "॥"
)

// dandaRemap unifies a script's reserved danda codepoints and the ASCII
// pipe with the generic Indic danda.
func dandaRemap(scriptDanda, scriptDoubleDanda string, pipe bool) SubstitutionMap {
	var subs SubstitutionMap
	if scriptDanda != "" {
		subs = append(subs, Substitution{scriptDanda, danda})
	}
	if scriptDoubleDanda != "" {
		subs = append(subs, Substitution{scriptDoubleDanda, doubleDanda})
	}
	if pipe {
		subs = append(subs, Substitution{"|", danda})
	}
	return subs
}
