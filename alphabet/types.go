package alphabet

import "errors"

// Symbol is a single input character.
type Symbol = rune

// Epsilon is the reserved marker for empty-string transitions.
// It is never produced by iterating over a string.
const Epsilon Symbol = -1

// ErrInvalidSymbol is returned when a symbol is not exactly one character.
var ErrInvalidSymbol = errors.New("alphabet: symbol must be a single character")

// epsilonLabel is how Epsilon is rendered by String methods.
const epsilonLabel = "ε"
