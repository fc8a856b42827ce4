package automaton

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/automata/alphabet"
	"github.com/katalvlaran/automata/bfs"
)

// DFA is a deterministic finite automaton over an epsilon-free alphabet.
//
// A DFA is not safe for concurrent use when one of the goroutines mutates it
// (AddTransition, RemoveRedundantStates); concurrent Accepts calls are fine.
type DFA struct {
	shape[*DFAState]
}

// NewDFA allocates size states over a private copy of alpha (any epsilon marker
// is dropped). start and every accept index must lie in [0, size).
func NewDFA(size int, alpha *alphabet.Alphabet, start int, accept ...int) (*DFA, error) {
	if alpha == nil {
		return nil, ErrNilAlphabet
	}
	sh, err := newShape(size, alpha.WithoutEpsilon(), start, accept, NewDFAState)
	if err != nil {
		return nil, err
	}

	return &DFA{shape: sh}, nil
}

// AddTransition sets source --symbol--> destination, replacing any previous
// transition of source on symbol.
func (d *DFA) AddTransition(source, destination int, symbol alphabet.Symbol) error {
	src, err := d.endpoints(source, destination)
	if err != nil {
		return err
	}

	return src.SetTransition(symbol, destination)
}

// Transition returns the successor of source on symbol.
func (d *DFA) Transition(source int, symbol alphabet.Symbol) (int, error) {
	st, err := d.lookup(source)
	if err != nil {
		return 0, err
	}
	if !d.alpha.Contains(symbol) {
		return 0, fmt.Errorf("%w: %q", ErrSymbolNotInAlphabet, alphabet.Label(symbol))
	}
	t, ok := st.Next(symbol)
	if !ok {
		return 0, fmt.Errorf("%w: state %d on %q", ErrUndefinedTransition, source, alphabet.Label(symbol))
	}

	return t, nil
}

// Accepts walks input from the start state and reports whether the walk ends
// in an accept state. It fails with ErrSymbolNotInAlphabet on a foreign symbol
// and ErrUndefinedTransition when the current state has no successor.
//
// Complexity: O(len(input)).
func (d *DFA) Accepts(input string) (bool, error) {
	cur := d.start
	for _, r := range input {
		next, err := d.Transition(cur, r)
		if err != nil {
			return false, err
		}
		cur = next
	}

	return d.IsAccept(cur), nil
}

// RemoveRedundantStates discards every state not reachable from the start
// state and returns how many were removed.
//
// Indices stay logical: Size and AcceptIndices keep their original values,
// StateCount drops, and retained states keep their indices. Every transition
// of a retained state targets a retained state, so Accepts is unaffected.
//
// Complexity: O(V·|Σ|) for V retained states.
func (d *DFA) RemoveRedundantStates() int {
	// successors never fails, so neither does the traversal.
	res, _ := bfs.BFS(d.start, d.successors)

	removed := 0
	for i := range d.states {
		if !res.Visited(i) {
			delete(d.states, i)
			removed++
		}
	}

	return removed
}

// successors is the bfs.NeighborFunc over all defined transitions.
func (d *DFA) successors(id int) ([]int, error) {
	st, ok := d.states[id]
	if !ok {
		return nil, nil
	}

	return st.successors(), nil
}

// String renders a header line followed by every retained state in index order.
func (d *DFA) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "DFA size=%d start=%d accept=%v alphabet=%s\n",
		d.size, d.start, d.AcceptIndices(), d.alpha)
	for _, i := range d.StateIndices() {
		b.WriteString(d.states[i].String())
	}

	return b.String()
}
