package normalize

// nuktaPair links a precomposed nukta letter with its base consonant.
type nuktaPair struct {
	composite rune
	base      rune
}

// nuktaSubs builds the substitution list for one of the three nukta modes.
// Exactly one direction of each composite pair is active per mode, so the
// resulting map is idempotent:
//
//   - remove: strip the bare nukta mark and fold composites to their base
//   - decompose: composite → base+nukta
//   - recompose: base+nukta → composite (the default)
//
// The pair table is script-specific; the mode control is generic.
func nuktaSubs(nukta rune, pairs []nuktaPair, mode nuktaMode) SubstitutionMap {
	subs := make(SubstitutionMap, 0, len(pairs)+1)
	switch mode {
	case nuktaRemove:
		subs = append(subs, Substitution{string(nukta), ""})
		for _, pr := range pairs {
			subs = append(subs, Substitution{string(pr.composite), string(pr.base)})
		}
	case nuktaDecompose:
		for _, pr := range pairs {
			subs = append(subs, Substitution{string(pr.composite), string(pr.base) + string(nukta)})
		}
	case nuktaRecompose:
		for _, pr := range pairs {
			subs = append(subs, Substitution{string(pr.base) + string(nukta), string(pr.composite)})
		}
	}
	return subs
}
