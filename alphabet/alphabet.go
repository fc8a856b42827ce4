package alphabet

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// Alphabet is a set of distinct symbols, optionally augmented with Epsilon.
//
// The zero value is an empty, usable alphabet. An Alphabet is not safe for
// concurrent mutation.
type Alphabet struct {
	symbols map[Symbol]struct{}
	epsilon bool
}

// New builds an Alphabet from the given single-character strings.
// Duplicates are ignored. Returns ErrInvalidSymbol on the first bad entry.
func New(symbols ...string) (*Alphabet, error) {
	a := &Alphabet{symbols: make(map[Symbol]struct{}, len(symbols))}
	for _, s := range symbols {
		if err := a.Add(s); err != nil {
			return nil, err
		}
	}

	return a, nil
}

// FromRunes builds an Alphabet from runes, rejecting Epsilon and invalid runes.
func FromRunes(runes ...Symbol) (*Alphabet, error) {
	a := &Alphabet{symbols: make(map[Symbol]struct{}, len(runes))}
	for _, r := range runes {
		if err := a.AddRune(r); err != nil {
			return nil, err
		}
	}

	return a, nil
}

// Add inserts symbol, which must be exactly one valid UTF-8 character.
// Adding a symbol that is already present is a no-op.
func (a *Alphabet) Add(symbol string) error {
	r, size := utf8.DecodeRuneInString(symbol)
	if size == 0 || size != len(symbol) || r == utf8.RuneError {
		return fmt.Errorf("%w: %q", ErrInvalidSymbol, symbol)
	}

	return a.AddRune(r)
}

// AddRune inserts r. Epsilon, utf8.RuneError and invalid code points are rejected;
// use WithEpsilon to obtain an alphabet carrying the epsilon marker.
func (a *Alphabet) AddRune(r Symbol) error {
	if r == Epsilon || r == utf8.RuneError || !utf8.ValidRune(r) {
		return fmt.Errorf("%w: %U", ErrInvalidSymbol, r)
	}
	if a.symbols == nil {
		a.symbols = make(map[Symbol]struct{})
	}
	a.symbols[r] = struct{}{}

	return nil
}

// Contains reports whether r belongs to the alphabet.
// Contains(Epsilon) is true only for epsilon alphabets.
func (a *Alphabet) Contains(r Symbol) bool {
	if a == nil {
		return false
	}
	if r == Epsilon {
		return a.epsilon
	}
	_, ok := a.symbols[r]

	return ok
}

// ContainsString reports whether s is a single character belonging to the alphabet.
func (a *Alphabet) ContainsString(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) {
		return false
	}

	return a.Contains(r)
}

// HasEpsilon reports whether the epsilon marker is part of the alphabet.
func (a *Alphabet) HasEpsilon() bool {
	return a != nil && a.epsilon
}

// Len returns the number of input symbols, not counting Epsilon.
func (a *Alphabet) Len() int {
	if a == nil {
		return 0
	}

	return len(a.symbols)
}

// Symbols returns the input symbols in ascending order. Epsilon is never included.
func (a *Alphabet) Symbols() []Symbol {
	if a == nil {
		return nil
	}
	out := make([]Symbol, 0, len(a.symbols))
	for r := range a.symbols {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Clone returns an independent deep copy, preserving the epsilon flag.
func (a *Alphabet) Clone() *Alphabet {
	if a == nil {
		return &Alphabet{symbols: make(map[Symbol]struct{})}
	}
	c := &Alphabet{
		symbols: make(map[Symbol]struct{}, len(a.symbols)),
		epsilon: a.epsilon,
	}
	for r := range a.symbols {
		c.symbols[r] = struct{}{}
	}

	return c
}

// WithEpsilon returns a new alphabet holding a copy of the receiver's symbols
// plus the epsilon marker. The receiver is left untouched.
func (a *Alphabet) WithEpsilon() *Alphabet {
	c := a.Clone()
	c.epsilon = true

	return c
}

// WithoutEpsilon returns a copy of the receiver with the epsilon marker removed.
func (a *Alphabet) WithoutEpsilon() *Alphabet {
	c := a.Clone()
	c.epsilon = false

	return c
}

// Label renders a single symbol, using "ε" for Epsilon.
func Label(r Symbol) string {
	if r == Epsilon {
		return epsilonLabel
	}

	return string(r)
}

// String renders the alphabet as a sorted set, e.g. "{0, 1, ε}".
func (a *Alphabet) String() string {
	syms := a.Symbols()
	parts := make([]string, 0, len(syms)+1)
	for _, r := range syms {
		parts = append(parts, Label(r))
	}
	if a.HasEpsilon() {
		parts = append(parts, epsilonLabel)
	}

	return "{" + strings.Join(parts, ", ") + "}"
}
