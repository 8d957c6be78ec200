package persoarabic

import (
	"sync"
	"testing"
)

// ---------------------------------------------------------------------------
// Urdu
// ---------------------------------------------------------------------------

func TestUrduNormalize(t *testing.T) {
	t.Parallel()

	u := Urdu{}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"arabic kaf to urdu", "كتاب", "کتاب"},
		{"swash kaf to urdu", "ڪتاب", "کتاب"},
		{"arabic yeh to farsi yeh", "يار", "یار"},
		{"alef maksura to farsi yeh", "ى", "ی"},
		{"heh to gol heh", "ه", "ہ"},
		{"teh marbuta to gol teh marbuta", "ة", "ۃ"},
		{"alef wasla to alef", "ٱ", "ا"},
		{"harakat stripped", "مَکتَب", "مکتب"},
		{"shadda stripped", "محبّت", "محبت"},
		{"alef madda recomposed", "آ", "آ"},
		{"waw hamza recomposed", "ؤ", "ؤ"},
		{"yeh hamza recomposed", "یٔ", "ئ"},
		{"comma to urdu comma", "ہاں, نہیں", "ہاں، نہیں"},
		{"question mark to urdu", "کیا?", "کیا؟"},
		{"percent sign", "٪", "%"},
		{"allah ligature expanded", "ﷲ", "اللہ"},
		{"space before full stop removed", "گیا ۔", "گیا۔"},
		{"space after full stop added", "گیا۔وہ", "گیا۔ وہ"},
		{"latin run spaced out", "اردوtext", "اردو text"},
		{"latin before urdu spaced", "textاردو", "text اردو"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := u.Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestUrduKeepDiacritics(t *testing.T) {
	t.Parallel()

	u := Urdu{KeepDiacritics: true}
	if got := u.Normalize("مَکتَب"); got != "مَکتَب" {
		t.Errorf("Normalize = %q, want diacritics preserved", got)
	}
}

func TestUrduIdempotent(t *testing.T) {
	t.Parallel()

	u := Urdu{}
	inputs := []string{
		"آپ کیسے ہیں؟",
		"كتاب يار",
		"اردو text ملا",
		"گیا۔وہ",
		"a, b? c",
		"",
	}
	for _, input := range inputs {
		first := u.Normalize(input)
		second := u.Normalize(first)
		if first != second {
			t.Errorf("not idempotent for %q: first=%q, second=%q", input, first, second)
		}
	}
}

// ---------------------------------------------------------------------------
// Sindhi
// ---------------------------------------------------------------------------

func TestSindhiNormalize(t *testing.T) {
	t.Parallel()

	s := Sindhi{}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"farsi yeh to arabic yeh", "ی", "ي"},
		{"yeh barree to arabic yeh", "ے", "ي"},
		{"gol heh to arabic heh", "ہ", "ه"},
		{"tteh to sindhi", "ٹ", "ٽ"},
		{"ddal to sindhi", "ڈ", "ڊ"},
		{"rreh to sindhi", "ڑ", "ڙ"},
		{"internal do-chasmi folds", "ماھر", "ماهر"},
		{"final do-chasmi folds", "ابھ", "ابه"},
		{"gah aspirate kept", "گھ", "گھ"},
		{"jah aspirate kept", "جھ", "جھ"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := s.Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Arabic
// ---------------------------------------------------------------------------

func TestArabicNormalize(t *testing.T) {
	t.Parallel()

	a := Arabic{}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"tashkeel stripped", "الرَّحمٰن", "الرحمن"},
		{"tatweel stripped", "كـــتاب", "كتاب"},
		{"lam alef ligature", "ﻻ", "لا"},
		{"lam alef hamza ligature", "ﻷ", "لأ"},
		{"allah ligature", "ﷲ", "الله"},
		{"arabic-indic digits", "٤٥", "45"},
		{"extended digits", "۴۵", "45"},
		{"letters kept arabic", "كتاب", "كتاب"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := a.Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Persian
// ---------------------------------------------------------------------------

func TestPersianNormalize(t *testing.T) {
	t.Parallel()

	p := Persian{}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"arabic yeh to farsi", "ي", "ی"},
		{"arabic kaf to farsi", "ك", "ک"},
		{"teh marbuta to heh", "ة", "ه"},
		{"waw hamza to waw", "ؤ", "و"},
		{"tashkeel stripped", "سَلام", "سلام"},
		{"tatweel stripped", "ســلام", "سلام"},
		{"digits untouched", "۴۵", "۴۵"},
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
// Concurrency
// ---------------------------------------------------------------------------

func TestConcurrentSafety(t *testing.T) {
	t.Parallel()

	u := Urdu{}
	s := Sindhi{}
	input := "كتاب يار ۱۲۳"

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			u.Normalize(input)
			s.Normalize(input)
		}()
	}
	wg.Wait()
}
