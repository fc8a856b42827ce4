package automaton

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/automata/alphabet"
)

// shape is the state arena shared by DFA and NFA. S is the state type and
// fixes the transition arity (one successor or a successor list).
//
// Indices are logical: pruning deletes entries from states but leaves size
// and accept untouched, so the map may be sparse.
type shape[S any] struct {
	size   int
	alpha  *alphabet.Alphabet
	states map[int]S
	start  int
	accept map[int]struct{}
}

// newShape validates start and accept against size and allocates size states.
// alpha is owned by the returned shape.
func newShape[S any](
	size int,
	alpha *alphabet.Alphabet,
	start int,
	accept []int,
	newState func(index int, alpha *alphabet.Alphabet) S,
) (shape[S], error) {
	if start < 0 || start >= size {
		return shape[S]{}, fmt.Errorf("%w: %d not in [0, %d)", ErrStartOutOfBounds, start, size)
	}
	acc := make(map[int]struct{}, len(accept))
	for _, i := range accept {
		if i < 0 || i >= size {
			return shape[S]{}, fmt.Errorf("%w: %d not in [0, %d)", ErrAcceptOutOfBounds, i, size)
		}
		acc[i] = struct{}{}
	}

	states := make(map[int]S, size)
	for i := 0; i < size; i++ {
		states[i] = newState(i, alpha)
	}

	return shape[S]{
		size:   size,
		alpha:  alpha,
		states: states,
		start:  start,
		accept: acc,
	}, nil
}

// Size returns the number of states the automaton was built with.
// It is not reduced by pruning.
func (s *shape[S]) Size() int { return s.size }

// Start returns the start state index.
func (s *shape[S]) Start() int { return s.start }

// Alphabet returns a copy of the automaton's alphabet.
func (s *shape[S]) Alphabet() *alphabet.Alphabet { return s.alpha.Clone() }

// IsAccept reports whether i is an accept index.
func (s *shape[S]) IsAccept(i int) bool {
	_, ok := s.accept[i]

	return ok
}

// AcceptIndices returns the accept indices in ascending order.
func (s *shape[S]) AcceptIndices() []int {
	out := make([]int, 0, len(s.accept))
	for i := range s.accept {
		out = append(out, i)
	}
	sort.Ints(out)

	return out
}

// StateCount returns the number of retained states.
func (s *shape[S]) StateCount() int { return len(s.states) }

// HasState reports whether state i exists (in range and not pruned).
func (s *shape[S]) HasState(i int) bool {
	_, ok := s.states[i]

	return ok
}

// StateIndices returns the retained state indices in ascending order.
func (s *shape[S]) StateIndices() []int {
	out := make([]int, 0, len(s.states))
	for i := range s.states {
		out = append(out, i)
	}
	sort.Ints(out)

	return out
}

// endpoints validates a transition's source and destination and returns the source state.
func (s *shape[S]) endpoints(source, destination int) (S, error) {
	var zero S
	if source < 0 || source >= s.size {
		return zero, fmt.Errorf("%w: %d not in [0, %d)", ErrSourceOutOfBounds, source, s.size)
	}
	if destination < 0 || destination >= s.size {
		return zero, fmt.Errorf("%w: %d not in [0, %d)", ErrDestinationOutOfBounds, destination, s.size)
	}
	src, ok := s.states[source]
	if !ok {
		return zero, fmt.Errorf("%w: source %d", ErrStateNotFound, source)
	}
	if _, ok = s.states[destination]; !ok {
		return zero, fmt.Errorf("%w: destination %d", ErrStateNotFound, destination)
	}

	return src, nil
}

// lookup returns state i or a bounds / not-found error.
func (s *shape[S]) lookup(i int) (S, error) {
	var zero S
	if i < 0 || i >= s.size {
		return zero, fmt.Errorf("%w: state %d not in [0, %d)", ErrOutOfBounds, i, s.size)
	}
	st, ok := s.states[i]
	if !ok {
		return zero, fmt.Errorf("%w: %d", ErrStateNotFound, i)
	}

	return st, nil
}

// checkInput rejects the first input rune that is not an alphabet symbol.
func (s *shape[S]) checkInput(input string) error {
	for pos, r := range input {
		if !s.alpha.Contains(r) {
			return fmt.Errorf("%w: %q at byte %d", ErrSymbolNotInAlphabet, r, pos)
		}
	}

	return nil
}
