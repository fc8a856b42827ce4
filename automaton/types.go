// Package automaton defines sentinel errors, the Recognizer capability and
// the functional options accepted by NFA-to-DFA conversion.
package automaton

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/automata/powerset"
)

// Sentinel errors for automaton construction, mutation and evaluation.
var (
	// ErrNilAlphabet is returned when a constructor receives a nil alphabet.
	ErrNilAlphabet = errors.New("automaton: alphabet is nil")

	// ErrOutOfBounds is the umbrella bounds error; every index error below wraps it.
	ErrOutOfBounds = errors.New("automaton: index out of bounds")

	// ErrStartOutOfBounds indicates start ∉ [0, size).
	ErrStartOutOfBounds = fmt.Errorf("%w: start state", ErrOutOfBounds)

	// ErrAcceptOutOfBounds indicates an accept index ∉ [0, size).
	ErrAcceptOutOfBounds = fmt.Errorf("%w: accept state", ErrOutOfBounds)

	// ErrSourceOutOfBounds indicates a transition source ∉ [0, size).
	ErrSourceOutOfBounds = fmt.Errorf("%w: transition source", ErrOutOfBounds)

	// ErrDestinationOutOfBounds indicates a transition destination ∉ [0, size).
	ErrDestinationOutOfBounds = fmt.Errorf("%w: transition destination", ErrOutOfBounds)

	// ErrSymbolNotInAlphabet indicates a transition or input symbol outside the alphabet.
	ErrSymbolNotInAlphabet = errors.New("automaton: symbol not in alphabet")

	// ErrUndefinedTransition indicates a DFA walk reached a state with no
	// successor for the current symbol.
	ErrUndefinedTransition = errors.New("automaton: undefined transition")

	// ErrStateNotFound indicates an in-range index whose state was removed by pruning.
	ErrStateNotFound = errors.New("automaton: state not found")

	// ErrTooManyStates is returned when an NFA is too large for subset construction.
	ErrTooManyStates = errors.New("automaton: too many states for subset construction")

	// ErrOptionViolation is returned when an invalid ConvertOption is supplied.
	ErrOptionViolation = errors.New("automaton: invalid option supplied")
)

// Recognizer decides membership of a string in the language of an automaton.
type Recognizer interface {
	Accepts(input string) (bool, error)
}

var (
	_ Recognizer = (*DFA)(nil)
	_ Recognizer = (*NFA)(nil)
)

// DefaultMaxConvertStates bounds NFA size for ToDFA unless WithMaxStates says otherwise.
// The resulting DFA has 2^n states.
const DefaultMaxConvertStates = 16

// ConvertOption configures NFA.ToDFA.
type ConvertOption func(*ConvertOptions)

// ConvertOptions holds the parameters of subset construction.
type ConvertOptions struct {
	// MaxStates is the largest NFA size accepted (1..powerset.MaxElements).
	MaxStates int

	// Prune runs RemoveRedundantStates on the result.
	Prune bool

	// OnSubset is called once per DFA state with its subset ID and the
	// ascending NFA state indices it stands for.
	OnSubset func(id int, members []int)

	err error
}

// DefaultConvertOptions returns the defaults: DefaultMaxConvertStates, no pruning, no hook.
func DefaultConvertOptions() ConvertOptions {
	return ConvertOptions{
		MaxStates: DefaultMaxConvertStates,
		Prune:     false,
		OnSubset:  nil,
	}
}

// WithMaxStates raises or lowers the NFA size limit.
//
//	0 < n ≤ powerset.MaxElements: accepted
//	otherwise: ErrOptionViolation
func WithMaxStates(n int) ConvertOption {
	return func(o *ConvertOptions) {
		if n <= 0 || n > powerset.MaxElements {
			o.err = fmt.Errorf("%w: MaxStates must be in [1, %d], got %d",
				ErrOptionViolation, powerset.MaxElements, n)
			return
		}
		o.MaxStates = n
	}
}

// WithPrune removes unreachable subset states from the converted DFA.
func WithPrune() ConvertOption {
	return func(o *ConvertOptions) { o.Prune = true }
}

// WithOnSubset registers a hook invoked for every subset state.
func WithOnSubset(fn func(id int, members []int)) ConvertOption {
	return func(o *ConvertOptions) { o.OnSubset = fn }
}
