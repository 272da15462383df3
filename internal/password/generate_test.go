package password

import (
	"math/rand/v2"
	"strings"
	"testing"
	"unicode/utf8"
)

func newTestRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func containsClass(s string, c Class) bool {
	for _, ch := range s {
		if c.Contains(ch) {
			return true
		}
	}
	return false
}

func TestGeneratePin(t *testing.T) {
	r := newTestRand(1)
	rng := (Pin{}).LengthRange()

	for length := rng.Min; length <= rng.Max; length++ {
		for i := 0; i < 50; i++ {
			pw := Generate(Pin{}, length, r)
			if utf8.RuneCountInString(pw) != length {
				t.Fatalf("Generate(Pin, %d) length = %d", length, utf8.RuneCountInString(pw))
			}
			for _, ch := range pw {
				if !ClassDigits.Contains(ch) {
					t.Fatalf("Generate(Pin, %d) = %q contains non-digit %q", length, pw, ch)
				}
			}
		}
	}
}

func TestGeneratePinThreeDigits(t *testing.T) {
	r := NewSource()
	for i := 0; i < 1000; i++ {
		pw := Generate(Pin{}, 3, r)
		if len(pw) != 3 {
			t.Fatalf("Generate(Pin, 3) = %q, want 3 characters", pw)
		}
		if containsClass(pw, ClassLower) || containsClass(pw, ClassUpper) || containsClass(pw, ClassSymbols) {
			t.Fatalf("Generate(Pin, 3) = %q contains a letter or symbol", pw)
		}
	}
}

func TestGenerateRandomCoversAllClasses(t *testing.T) {
	r := newTestRand(2)
	c := NewRandom(true, true)

	for _, length := range []int{4, 8, 16, 100} {
		for i := 0; i < 200; i++ {
			pw := Generate(c, length, r)
			if len(pw) != length {
				t.Fatalf("Generate(Random, %d) length = %d", length, len(pw))
			}
			for _, class := range []Class{ClassDigits, ClassLower, ClassUpper, ClassSymbols} {
				if !containsClass(pw, class) {
					t.Fatalf("Generate(Random, %d) = %q missing %s", length, pw, class)
				}
			}
		}
	}
}

func TestGenerateRandomLettersOnly(t *testing.T) {
	r := newTestRand(3)
	c := NewRandom(false, false)

	for i := 0; i < 200; i++ {
		pw := Generate(c, 32, r)
		for _, ch := range pw {
			if !ClassLower.Contains(ch) && !ClassUpper.Contains(ch) {
				t.Fatalf("Generate(Random letters only) = %q contains %q", pw, ch)
			}
		}
		if !containsClass(pw, ClassLower) || !containsClass(pw, ClassUpper) {
			t.Fatalf("Generate(Random letters only) = %q missing a letter case", pw)
		}
	}
}

func TestGenerateOnlyEnabledClasses(t *testing.T) {
	tests := []struct {
		name     string
		classes  Classes
		allowed  []Class
		excluded []Class
	}{
		{
			name:     "numbers and letters",
			classes:  Classes{Numbers: true, Letters: true},
			allowed:  []Class{ClassDigits, ClassLower, ClassUpper},
			excluded: []Class{ClassSymbols},
		},
		{
			name:     "symbols and letters",
			classes:  Classes{Symbols: true, Letters: true},
			allowed:  []Class{ClassLower, ClassUpper, ClassSymbols},
			excluded: []Class{ClassDigits},
		},
		{
			name:     "symbols only",
			classes:  Classes{Symbols: true},
			allowed:  []Class{ClassSymbols},
			excluded: []Class{ClassDigits, ClassLower, ClassUpper},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRand(4)
			pw := GenerateClasses(tt.classes, 64, r)
			for _, c := range tt.allowed {
				if !containsClass(pw, c) {
					t.Errorf("GenerateClasses() = %q missing %s", pw, c)
				}
			}
			for _, c := range tt.excluded {
				if containsClass(pw, c) {
					t.Errorf("GenerateClasses() = %q contains %s", pw, c)
				}
			}
		})
	}
}

func TestGeneratePrefixIsOnePerClass(t *testing.T) {
	r := newTestRand(5)
	order := []Class{ClassDigits, ClassLower, ClassUpper, ClassSymbols}

	for i := 0; i < 100; i++ {
		pw := []rune(Generate(NewRandom(true, true), 10, r))
		for j, c := range order {
			if !c.Contains(pw[j]) {
				t.Fatalf("position %d of %q = %q, want %s", j, string(pw), pw[j], c)
			}
		}
	}
}

func TestGenerateShorterThanClassCount(t *testing.T) {
	r := newTestRand(6)
	pw := GenerateClasses(Classes{Numbers: true, Symbols: true, Letters: true}, 2, r)

	if len(pw) != 2 {
		t.Fatalf("GenerateClasses() = %q, want 2 characters", pw)
	}
	if !ClassDigits.Contains(rune(pw[0])) || !ClassLower.Contains(rune(pw[1])) {
		t.Errorf("GenerateClasses() = %q, want a digit then a lowercase letter", pw)
	}
}

func TestGenerateZeroLength(t *testing.T) {
	if pw := GenerateClasses(Classes{}, 0, newTestRand(7)); pw != "" {
		t.Errorf("GenerateClasses(empty, 0) = %q, want empty", pw)
	}
}

func TestGenerateNoClassesPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("GenerateClasses() with no classes should panic")
		}
	}()
	GenerateClasses(Classes{}, 8, newTestRand(8))
}

func TestGenerateDeterministicForSeed(t *testing.T) {
	a := Generate(NewRandom(true, true), 24, newTestRand(9))
	b := Generate(NewRandom(true, true), 24, newTestRand(9))
	if a != b {
		t.Errorf("same seed produced %q and %q", a, b)
	}
}

func TestGenerateProducesUniquePasswords(t *testing.T) {
	r := NewSource()
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		pw := Generate(NewRandom(true, true), 16, r)
		if seen[pw] {
			t.Errorf("duplicate password generated: %q", pw)
		}
		seen[pw] = true
	}
}

func TestClassIndices(t *testing.T) {
	r := newTestRand(10)
	var got []int
	for i := range classIndices(3, r) {
		got = append(got, i)
		if len(got) == 50 {
			break
		}
	}

	for i := 0; i < 3; i++ {
		if got[i] != i {
			t.Fatalf("classIndices prefix = %v, want 0 1 2", got[:3])
		}
	}
	for _, i := range got[3:] {
		if i < 0 || i >= 3 {
			t.Fatalf("classIndices yielded %d, want [0, 3)", i)
		}
	}
}

func TestSymbolsExcludeAmbiguous(t *testing.T) {
	syms := string(Symbols())
	if len(Symbols()) != 25 {
		t.Fatalf("len(Symbols()) = %d, want 25", len(Symbols()))
	}
	if strings.ContainsAny(syms, " `,.'\"\\") {
		t.Errorf("symbol set %q contains an excluded character", syms)
	}
}
