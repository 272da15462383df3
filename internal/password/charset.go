package password

import (
	"errors"
	"math/rand/v2"
)

// symbolChars excludes whitespace, backtick, comma, period, quote and backslash
// from the OWASP special character list.
var symbolChars = [25]rune{
	'!', '#', '$', '%', '&', '(', ')', '*', '+', '-', '/', ':', ';', '<', '=', '>', '?', '@', '[',
	']', '^', '_', '{', '|', '}',
}

var errEmptyCharset = errors.New("character set is empty")

var symbolDist = mustSetDist(symbolChars[:])

// Class identifies a pool of candidate characters.
type Class int

const (
	ClassDigits Class = iota
	ClassLower
	ClassUpper
	ClassSymbols
)

func (c Class) String() string {
	switch c {
	case ClassDigits:
		return "digits"
	case ClassLower:
		return "lowercase"
	case ClassUpper:
		return "uppercase"
	case ClassSymbols:
		return "symbols"
	}
	return "unknown"
}

// Contains reports whether ch belongs to the class.
func (c Class) Contains(ch rune) bool {
	switch c {
	case ClassDigits:
		return ch >= '0' && ch <= '9'
	case ClassLower:
		return ch >= 'a' && ch <= 'z'
	case ClassUpper:
		return ch >= 'A' && ch <= 'Z'
	case ClassSymbols:
		for _, s := range symbolChars {
			if s == ch {
				return true
			}
		}
	}
	return false
}

// Symbols returns a copy of the symbol set.
func Symbols() []rune {
	out := make([]rune, len(symbolChars))
	copy(out, symbolChars[:])
	return out
}

// Distribution samples characters of a single class.
type Distribution interface {
	Class() Class
	Sample(r *rand.Rand) rune
}

// rangeDist is uniform over a contiguous rune range.
type rangeDist struct {
	class  Class
	lo, hi rune
}

func (d rangeDist) Class() Class { return d.class }

func (d rangeDist) Sample(r *rand.Rand) rune {
	return d.lo + rune(r.IntN(int(d.hi-d.lo)+1))
}

// setDist is uniform over a fixed set of runes.
type setDist struct {
	class Class
	chars []rune
}

func newSetDist(class Class, chars []rune) (setDist, error) {
	if len(chars) == 0 {
		return setDist{}, errEmptyCharset
	}
	return setDist{class: class, chars: chars}, nil
}

func mustSetDist(chars []rune) setDist {
	d, err := newSetDist(ClassSymbols, chars)
	if err != nil {
		panic("password: " + err.Error())
	}
	return d
}

func (d setDist) Class() Class { return d.class }

func (d setDist) Sample(r *rand.Rand) rune {
	return d.chars[r.IntN(len(d.chars))]
}

// BuildDistributions returns one distribution per enabled class in the order
// digits, lowercase, uppercase, symbols. Letters add both cases.
func BuildDistributions(numbers, symbols, letters bool) []Distribution {
	var dists []Distribution

	if numbers {
		dists = append(dists, rangeDist{class: ClassDigits, lo: '0', hi: '9'})
	}
	if letters {
		dists = append(dists,
			rangeDist{class: ClassLower, lo: 'a', hi: 'z'},
			rangeDist{class: ClassUpper, lo: 'A', hi: 'Z'},
		)
	}
	if symbols {
		dists = append(dists, symbolDist)
	}

	return dists
}
