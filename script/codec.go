package script

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidOffset reports that a requested offset is outside a script's
// structural table. It indicates a construction-time configuration error,
// never a property of input text.
var ErrInvalidOffset = errors.New("script: invalid offset")

// OffsetToRune resolves a structural offset against the profile's block.
// Valid only for coordinated profiles and offsets inside the block.
func (p *Profile) OffsetToRune(offset int) (rune, error) {
	if !p.Coordinated {
		return 0, fmt.Errorf("%w: %s block is not offset-coordinated", ErrInvalidOffset, p.Lang)
	}
	if offset < 0 || offset > offsetMax {
		return 0, fmt.Errorf("%w: %#x for %s", ErrInvalidOffset, offset, p.Lang)
	}
	return p.Block + rune(offset), nil
}

// RuneOffset returns the offset of r within the profile's block, or -1 if r
// lies outside the block.
func (p *Profile) RuneOffset(r rune) int {
	if r < p.Block || r > p.BlockEnd {
		return -1
	}
	return int(r - p.Block)
}

// InBlock reports whether r belongs to the profile's script block.
func (p *Profile) InBlock(r rune) bool {
	return r >= p.Block && r <= p.BlockEnd
}

// IsConsonant reports whether r is a consonant of this script.
func (p *Profile) IsConsonant(r rune) bool {
	o := p.RuneOffset(r)
	return p.Coordinated && o >= OffsetConsFirst && o <= OffsetConsLast
}

// IsVowel reports whether r is an independent vowel of this script.
func (p *Profile) IsVowel(r rune) bool {
	o := p.RuneOffset(r)
	return p.Coordinated && o >= OffsetVowelFirst && o <= OffsetVowelLast
}

// IsVowelSign reports whether r is a dependent vowel sign of this script.
func (p *Profile) IsVowelSign(r rune) bool {
	o := p.RuneOffset(r)
	return p.Coordinated && o >= OffsetSignAA && o <= OffsetSignLast
}

// IsHalanta reports whether r is the script's halant (virama).
func (p *Profile) IsHalanta(r rune) bool {
	return p.Coordinated && p.RuneOffset(r) == OffsetHalanta
}

// IsNumber reports whether r is a native digit of this script.
func (p *Profile) IsNumber(r rune) bool {
	o := p.RuneOffset(r)
	return p.Coordinated && o >= OffsetDigitZero && o <= OffsetDigitNine
}

// Transpose maps every rune of s that lies in the from block to the rune at
// the same offset in the to block. Runes outside the from block pass through
// unchanged. Both profiles must be coordinated; uncoordinated profiles make
// Transpose the identity.
//
// This is slot arithmetic, not transliteration: it preserves structure, not
// pronunciation, and is meant for structural comparisons such as acronym
// detection.
func Transpose(s string, from, to *Profile) string {
	if !from.Coordinated || !to.Coordinated || from.Block == to.Block {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if from.InBlock(r) {
			b.WriteRune(to.Block + (r - from.Block))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
