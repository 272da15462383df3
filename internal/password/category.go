package password

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vaultpass/passgen/internal/list"
)

var (
	ErrUnknownCategory  = errors.New("unknown password category")
	ErrLengthOutOfRange = errors.New("password length out of range for category")
)

var (
	pinRange    = Range{Min: 3, Max: 12}
	randomRange = Range{Min: 8, Max: 100}
)

// Range is a closed interval of valid password lengths.
type Range struct {
	Min int
	Max int
}

// Contains reports whether n lies within the range.
func (r Range) Contains(n int) bool {
	return n >= r.Min && n <= r.Max
}

// Clamp returns n limited to the range.
func (r Range) Clamp(n int) int {
	return min(max(n, r.Min), r.Max)
}

func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}

// Classes holds the enabled character-class flags of a category.
type Classes struct {
	Numbers bool
	Symbols bool
	Letters bool
}

// Category is a password type. It is implemented only by Pin and *Random.
type Category interface {
	fmt.Stringer

	// LengthRange reports the valid lengths for this category.
	// It does not clamp anything itself.
	LengthRange() Range

	// Classes reports which character classes generated passwords draw from.
	Classes() Classes

	// ToggleSelectedOption flips the option under the options cursor.
	// Categories without options ignore it.
	ToggleSelectedOption()

	category()
}

// Pin is an all-digit password.
type Pin struct{}

func (Pin) String() string { return "Pin" }

func (Pin) LengthRange() Range { return pinRange }

func (Pin) Classes() Classes { return Classes{Numbers: true} }

func (Pin) ToggleSelectedOption() {}

func (Pin) category() {}

// Random is a letter-based password with optional digits and symbols.
// Letters are always enabled.
type Random struct {
	Numbers bool
	Symbols bool
	Options *list.SelectionList[Option]
}

// NewRandom creates a Random category with the default options list.
func NewRandom(numbers, symbols bool) *Random {
	return &Random{
		Numbers: numbers,
		Symbols: symbols,
		Options: DefaultOptions(),
	}
}

func (*Random) String() string { return "Random" }

func (*Random) LengthRange() Range { return randomRange }

func (r *Random) Classes() Classes {
	return Classes{Numbers: r.Numbers, Symbols: r.Symbols, Letters: true}
}

// ToggleSelectedOption flips Numbers or Symbols depending on the options cursor.
// The options list is built non-empty, so a missing selection is a bug.
func (r *Random) ToggleSelectedOption() {
	opt, ok := r.Options.Selected()
	if !ok {
		panic("password: random category has no selected option")
	}

	switch opt {
	case OptionNumbers:
		r.Numbers = !r.Numbers
	case OptionSymbols:
		r.Symbols = !r.Symbols
	}
}

// Enabled reports whether opt is currently switched on.
func (r *Random) Enabled(opt Option) bool {
	switch opt {
	case OptionNumbers:
		return r.Numbers
	case OptionSymbols:
		return r.Symbols
	}
	return false
}

func (*Random) category() {}

// Option is a toggleable flag of the Random category.
type Option int

const (
	OptionNumbers Option = iota
	OptionSymbols
)

func (o Option) String() string {
	switch o {
	case OptionNumbers:
		return "Numbers"
	case OptionSymbols:
		return "Symbols"
	}
	return fmt.Sprintf("Option(%d)", int(o))
}

// DefaultOptions returns the Random options list with Numbers selected.
func DefaultOptions() *list.SelectionList[Option] {
	return list.New([]Option{OptionNumbers, OptionSymbols})
}

// DefaultCategories returns [Pin, Random] with everything enabled and Pin selected.
func DefaultCategories() *list.SelectionList[Category] {
	return NewCategories(true, true)
}

// NewCategories returns [Pin, Random] with the given Random flags and Pin selected.
func NewCategories(numbers, symbols bool) *list.SelectionList[Category] {
	return list.New([]Category{
		Pin{},
		NewRandom(numbers, symbols),
	})
}

// ParseCategory resolves a category name such as "pin" or "Random".
// Random categories are returned with the given flags.
func ParseCategory(name string, numbers, symbols bool) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "pin":
		return Pin{}, nil
	case "random":
		return NewRandom(numbers, symbols), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
}
