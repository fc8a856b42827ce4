package automaton

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/automata/alphabet"
	"github.com/katalvlaran/automata/powerset"
)

// ToDFA converts the NFA into an equivalent DFA by subset construction.
//
// Algorithm
//
//  1. Number every subset of the NFA's state indices with powerset's canonical
//     order (cardinality, then lexicographic). Subset ID = DFA state index.
//  2. start = ID of ε-closure(n.Start()).
//  3. accept = every subset holding at least one NFA accept index.
//  4. alphabet = the NFA alphabet without epsilon.
//  5. The DFA has 2^n states; most are usually unreachable (see WithPrune).
//  6. For each subset S and symbol a the successor is the subset
//     ⋃ { ε-closure(r) : q ∈ S, r ∈ δ(q, a) }, including the empty (dead) subset.
//
// The NFA is only read; the returned DFA shares nothing with it.
//
// Complexity: O(2^n · |Σ| · n) time and O(2^n · |Σ|) memory for n NFA states.
// This blow-up is inherent, so n is capped by ConvertOptions.MaxStates
// (ErrTooManyStates).
func (n *NFA) ToDFA(opts ...ConvertOption) (*DFA, error) {
	o := DefaultConvertOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if n.size > o.MaxStates {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyStates, n.size, o.MaxStates)
	}

	subsets, err := powerset.New(n.size)
	if err != nil {
		return nil, err
	}

	closures, err := n.closureMasks()
	if err != nil {
		return nil, err
	}
	symbols := n.alpha.Symbols()
	moves := n.moveMasks(symbols, closures)

	startID, err := subsets.IDOfMask(closures[n.start])
	if err != nil {
		return nil, err
	}

	var acceptMask uint64
	for i := range n.accept {
		acceptMask |= 1 << uint(i)
	}
	count := subsets.Count()
	accept := make([]int, 0, count)
	masks := make([]uint64, count)
	for id := 0; id < count; id++ {
		masks[id], _ = subsets.Mask(id)
		if masks[id]&acceptMask != 0 {
			accept = append(accept, id)
		}
	}

	d, err := NewDFA(count, n.alpha, startID, accept...)
	if err != nil {
		return nil, err
	}

	for id, m := range masks {
		if o.OnSubset != nil {
			o.OnSubset(id, powerset.Elements(m))
		}
		st := d.states[id]
		for si, sym := range symbols {
			var target uint64
			for rest := m; rest != 0; rest &= rest - 1 {
				target |= moves[bits.TrailingZeros64(rest)][si]
			}
			tid, err := subsets.IDOfMask(target)
			if err != nil {
				return nil, err
			}
			if err = st.SetTransition(sym, tid); err != nil {
				return nil, err
			}
		}
	}

	if o.Prune {
		d.RemoveRedundantStates()
	}

	return d, nil
}

// closureMasks returns ε-closure(i) as a bitmask for every state i.
func (n *NFA) closureMasks() ([]uint64, error) {
	out := make([]uint64, n.size)
	for i := 0; i < n.size; i++ {
		closure, err := n.EpsilonClosure(i)
		if err != nil {
			return nil, err
		}
		out[i] = maskOf(closure)
	}

	return out, nil
}

// moveMasks returns, per state q and symbol index si, the union of the
// ε-closures of q's successors on symbols[si].
func (n *NFA) moveMasks(symbols []alphabet.Symbol, closures []uint64) [][]uint64 {
	out := make([][]uint64, n.size)
	for q := 0; q < n.size; q++ {
		row := make([]uint64, len(symbols))
		for si, sym := range symbols {
			for _, r := range n.states[q].Successors(sym) {
				row[si] |= closures[r]
			}
		}
		out[q] = row
	}

	return out
}

// maskOf encodes ascending state indices as a bitmask.
func maskOf(indices []int) uint64 {
	var m uint64
	for _, i := range indices {
		m |= 1 << uint(i)
	}

	return m
}
