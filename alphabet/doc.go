// Package alphabet provides the finite symbol set that every automaton is
// built over, together with the reserved epsilon marker used by NFAs.
//
// What
//
//   - An Alphabet is a set of distinct single-character symbols (runes).
//   - Symbols are inserted with Add (string form) or AddRune; both reject
//     anything that is not exactly one valid Unicode character.
//   - WithEpsilon derives an NFA alphabet: the same symbols plus Epsilon.
//     WithoutEpsilon strips the marker again (used when an NFA is converted
//     into a DFA).
//
// Epsilon
//
//	Epsilon is the rune -1. Ranging over a Go string never yields a negative
//	rune, so the marker can never collide with an input character.
//
// Copy semantics
//
//	WithEpsilon, WithoutEpsilon and Clone always deep-copy the symbol set.
//	Adding a symbol to a derived alphabet never changes its source and vice versa.
//
// Usage
//
//	a, err := alphabet.New("0", "1")
//	if err != nil {
//	    // errors.Is(err, alphabet.ErrInvalidSymbol)
//	}
//	nfaAlpha := a.WithEpsilon()
//	nfaAlpha.Contains(alphabet.Epsilon) // true
//	a.Contains(alphabet.Epsilon)        // false
//
// Complexity
//
//   - Add, Contains: O(1)
//   - Clone, WithEpsilon, WithoutEpsilon: O(|Σ|)
//   - Symbols, String: O(|Σ|·log|Σ|)
package alphabet
