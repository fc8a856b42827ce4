package automaton

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/automata/alphabet"
)

// DFAState is a deterministic state: at most one successor per symbol.
// Successors are stored as sibling indices; the state owns nothing else.
type DFAState struct {
	index int
	alpha *alphabet.Alphabet
	next  map[alphabet.Symbol]int
}

// NewDFAState returns a state with no transitions. alpha is shared, not copied.
func NewDFAState(index int, alpha *alphabet.Alphabet) *DFAState {
	return &DFAState{index: index, alpha: alpha, next: make(map[alphabet.Symbol]int)}
}

// Index returns the state's index within its automaton.
func (s *DFAState) Index() int { return s.index }

// SetTransition records target as the successor on symbol, replacing any previous one.
func (s *DFAState) SetTransition(symbol alphabet.Symbol, target int) error {
	if !s.alpha.Contains(symbol) {
		return fmt.Errorf("%w: %q", ErrSymbolNotInAlphabet, alphabet.Label(symbol))
	}
	s.next[symbol] = target

	return nil
}

// Next returns the successor on symbol and whether one is defined.
func (s *DFAState) Next(symbol alphabet.Symbol) (int, bool) {
	t, ok := s.next[symbol]

	return t, ok
}

// successors lists every defined target in ascending symbol order.
func (s *DFAState) successors() []int {
	out := make([]int, 0, len(s.next))
	for _, sym := range s.alpha.Symbols() {
		if t, ok := s.next[sym]; ok {
			out = append(out, t)
		}
	}

	return out
}

// String renders the state as "q<i>" followed by one "sym -> target" line
// per alphabet symbol; undefined transitions print as None.
func (s *DFAState) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "q%d\n", s.index)
	for _, sym := range s.alpha.Symbols() {
		target := "None"
		if t, ok := s.next[sym]; ok {
			target = strconv.Itoa(t)
		}
		fmt.Fprintf(&b, "%s -> %s\n", alphabet.Label(sym), target)
	}

	return b.String()
}

// NFAState is a nondeterministic state: a list of successors per symbol,
// with alphabet.Epsilon keying the epsilon successors.
type NFAState struct {
	index int
	alpha *alphabet.Alphabet
	next  map[alphabet.Symbol][]int
}

// NewNFAState returns a state with no transitions. alpha is shared, not copied;
// it must carry the epsilon marker for epsilon transitions to be accepted.
func NewNFAState(index int, alpha *alphabet.Alphabet) *NFAState {
	return &NFAState{index: index, alpha: alpha, next: make(map[alphabet.Symbol][]int)}
}

// Index returns the state's index within its automaton.
func (s *NFAState) Index() int { return s.index }

// SetTransition appends target to the successors on symbol.
// Duplicates are kept; they do not change reachability.
func (s *NFAState) SetTransition(symbol alphabet.Symbol, target int) error {
	if !s.alpha.Contains(symbol) {
		return fmt.Errorf("%w: %q", ErrSymbolNotInAlphabet, alphabet.Label(symbol))
	}
	s.next[symbol] = append(s.next[symbol], target)

	return nil
}

// Successors returns the successors on symbol. The slice must not be modified.
func (s *NFAState) Successors(symbol alphabet.Symbol) []int {
	return s.next[symbol]
}

// EpsilonSuccessors returns the direct epsilon successors.
func (s *NFAState) EpsilonSuccessors() []int {
	return s.next[alphabet.Epsilon]
}

// String renders the state as "q<i>" followed by one "sym -> [targets]" line
// per symbol, epsilon first.
func (s *NFAState) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "q%d\n", s.index)
	syms := s.alpha.Symbols()
	if s.alpha.HasEpsilon() {
		syms = append([]alphabet.Symbol{alphabet.Epsilon}, syms...)
	}
	for _, sym := range syms {
		fmt.Fprintf(&b, "%s -> %v\n", alphabet.Label(sym), s.next[sym])
	}

	return b.String()
}
