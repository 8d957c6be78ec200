package script

import (
	"errors"
	"testing"
)

func TestOffsetToRune(t *testing.T) {
	t.Parallel()

	hi, _ := ProfileFor("hi")
	ta, _ := ProfileFor("ta")

	tests := []struct {
		name   string
		p      *Profile
		offset int
		want   rune
	}{
		{"devanagari anusvara", hi, OffsetAnusvara, 'ं'},
		{"devanagari visarga", hi, OffsetVisarga, 'ः'},
		{"devanagari ka", hi, 0x15, 'क'},
		{"devanagari halanta", hi, OffsetHalanta, '्'},
		{"devanagari zero", hi, OffsetDigitZero, '०'},
		{"tamil anusvara slot", ta, OffsetAnusvara, 'ஂ'},
		{"tamil aa sign", ta, OffsetSignAA, 'ா'},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := tt.p.OffsetToRune(tt.offset)
			if err != nil {
				t.Fatalf("OffsetToRune(%#x) error: %v", tt.offset, err)
			}
			if got != tt.want {
				t.Errorf("OffsetToRune(%#x) = %q, want %q", tt.offset, got, tt.want)
			}
		})
	}
}

func TestOffsetToRuneInvalid(t *testing.T) {
	t.Parallel()

	hi, _ := ProfileFor("hi")
	for _, offset := range []int{-1, 0x80, 0x1000} {
		if _, err := hi.OffsetToRune(offset); !errors.Is(err, ErrInvalidOffset) {
			t.Errorf("OffsetToRune(%#x) err = %v, want ErrInvalidOffset", offset, err)
		}
	}
}

func TestRuneOffset(t *testing.T) {
	t.Parallel()

	hi, _ := ProfileFor("hi")

	if got := hi.RuneOffset('क'); got != 0x15 {
		t.Errorf("RuneOffset('क') = %#x, want 0x15", got)
	}
	if got := hi.RuneOffset('a'); got != -1 {
		t.Errorf("RuneOffset('a') = %d, want -1", got)
	}
	if got := hi.RuneOffset('அ'); got != -1 {
		t.Errorf("RuneOffset of foreign-block rune = %d, want -1", got)
	}
}

func TestClassification(t *testing.T) {
	t.Parallel()

	hi, _ := ProfileFor("hi")
	si, _ := ProfileFor("si")

	tests := []struct {
		name string
		fn   func(rune) bool
		r    rune
		want bool
	}{
		{"ka is consonant", hi.IsConsonant, 'क', true},
		{"ha is consonant", hi.IsConsonant, 'ह', true},
		{"vowel a is not consonant", hi.IsConsonant, 'अ', false},
		{"latin is not consonant", hi.IsConsonant, 'k', false},
		{"a is vowel", hi.IsVowel, 'अ', true},
		{"au is vowel", hi.IsVowel, 'औ', true},
		{"ka is not vowel", hi.IsVowel, 'क', false},
		{"aa sign is vowel sign", hi.IsVowelSign, 'ा', true},
		{"au sign is vowel sign", hi.IsVowelSign, 'ौ', true},
		{"halanta detected", hi.IsHalanta, '्', true},
		{"ka is not halanta", hi.IsHalanta, 'क', false},
		{"native digit", hi.IsNumber, '५', true},
		{"ascii digit is not native", hi.IsNumber, '5', false},
		{"sinhala consonant rejected", si.IsConsonant, 'ක', false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.fn(tt.r); got != tt.want {
				t.Errorf("got %v, want %v for %q", got, tt.want, tt.r)
			}
		})
	}
}

func TestTranspose(t *testing.T) {
	t.Parallel()

	hi, _ := ProfileFor("hi")
	bn, _ := ProfileFor("bn")
	ta, _ := ProfileFor("ta")
	si, _ := ProfileFor("si")

	tests := []struct {
		name  string
		input string
		from  *Profile
		to    *Profile
		want  string
	}{
		{"bengali to devanagari", "শ্রী", bn, hi, "श्री"},
		{"devanagari to bengali", "कलम", hi, bn, "কলম"},
		{"tamil to devanagari", "க", ta, hi, "क"},
		{"foreign runes pass through", "abc कगर", hi, bn, "abc কগর"},
		{"same block is identity", "कलम", hi, hi, "कलम"},
		{"uncoordinated source is identity", "ක", si, hi, "ක"},
		{"uncoordinated target is identity", "क", hi, si, "क"},
		{"empty", "", hi, bn, ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Transpose(tt.input, tt.from, tt.to); got != tt.want {
				t.Errorf("Transpose(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTransposeRoundTrip(t *testing.T) {
	t.Parallel()

	hi, _ := ProfileFor("hi")
	te, _ := ProfileFor("te")

	inputs := []string{"कलम", "राम्", "१२३", "नमः"}
	for _, in := range inputs {
		there := Transpose(in, hi, te)
		back := Transpose(there, te, hi)
		if back != in {
			t.Errorf("round trip changed %q: there=%q back=%q", in, there, back)
		}
	}
}
