package password

import (
	crand "crypto/rand"
	"iter"
	"math/rand/v2"
	"strings"
)

// NewSource returns a ChaCha8 generator seeded from the operating system.
// A *rand.Rand is not safe for concurrent use; give each session its own.
func NewSource() *rand.Rand {
	var seed [32]byte
	// crypto/rand.Read never returns an error on supported platforms.
	_, _ = crand.Read(seed[:])
	return rand.New(rand.NewChaCha8(seed))
}

// Generate creates a password of length runes for category c.
func Generate(c Category, length int, r *rand.Rand) string {
	return GenerateClasses(c.Classes(), length, r)
}

// GenerateClasses creates a password of length runes containing at least one
// character from every enabled class, provided length is at least the number
// of enabled classes. The first characters are one per class in declaration
// order; the rest are drawn from a uniformly chosen class each.
//
// With a shorter length the trailing classes are simply missing.
// Asking for a non-empty password with no enabled classes panics.
func GenerateClasses(classes Classes, length int, r *rand.Rand) string {
	if length <= 0 {
		return ""
	}

	dists := BuildDistributions(classes.Numbers, classes.Symbols, classes.Letters)
	if len(dists) == 0 {
		panic("password: no character classes enabled")
	}

	var b strings.Builder
	b.Grow(length)

	n := 0
	for i := range classIndices(len(dists), r) {
		b.WriteRune(dists[i].Sample(r))
		n++
		if n == length {
			break
		}
	}

	return b.String()
}

// classIndices yields 0..k-1 once, then uniform picks from [0, k) forever.
func classIndices(k int, r *rand.Rand) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < k; i++ {
			if !yield(i) {
				return
			}
		}
		for {
			if !yield(r.IntN(k)) {
				return
			}
		}
	}
}
