package automaton

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/automata/alphabet"
	"github.com/katalvlaran/automata/bfs"
)

// NFA is a nondeterministic finite automaton with epsilon transitions.
// Its alphabet is the constructor's alphabet plus alphabet.Epsilon.
//
// An NFA is not safe for concurrent use while AddTransition runs.
type NFA struct {
	shape[*NFAState]
}

// NewNFA allocates size states over an epsilon-augmented copy of alpha.
// start and every accept index must lie in [0, size).
func NewNFA(size int, alpha *alphabet.Alphabet, start int, accept ...int) (*NFA, error) {
	if alpha == nil {
		return nil, ErrNilAlphabet
	}
	sh, err := newShape(size, alpha.WithEpsilon(), start, accept, NewNFAState)
	if err != nil {
		return nil, err
	}

	return &NFA{shape: sh}, nil
}

// AddTransition adds destination to the successors of source on symbol.
// symbol may be alphabet.Epsilon.
func (n *NFA) AddTransition(source, destination int, symbol alphabet.Symbol) error {
	src, err := n.endpoints(source, destination)
	if err != nil {
		return err
	}

	return src.SetTransition(symbol, destination)
}

// AddEpsilonTransition is AddTransition with alphabet.Epsilon.
func (n *NFA) AddEpsilonTransition(source, destination int) error {
	return n.AddTransition(source, destination, alphabet.Epsilon)
}

// EpsilonClosure returns every state reachable from index through epsilon
// transitions only, index included, in ascending order. Equal sets always
// produce equal slices.
func (n *NFA) EpsilonClosure(index int) ([]int, error) {
	if _, err := n.lookup(index); err != nil {
		return nil, err
	}
	res, err := bfs.BFS(index, n.epsilonSuccessors)
	if err != nil {
		return nil, err
	}

	return res.Sorted(), nil
}

// epsilonSuccessors is the bfs.NeighborFunc restricted to epsilon edges.
func (n *NFA) epsilonSuccessors(id int) ([]int, error) {
	st, err := n.lookup(id)
	if err != nil {
		return nil, err
	}

	return st.EpsilonSuccessors(), nil
}

// config is one point of the parallel simulation: input position and state.
type config struct {
	pos   int
	state int
}

// Accepts simulates the NFA on input breadth-first over (position, state)
// configurations. Each configuration is expanded at most once, so epsilon
// cycles cannot stall the simulation. Every input symbol is checked against
// the alphabet before simulation starts.
//
// Complexity: O(len(input) · (V + E)).
func (n *NFA) Accepts(input string) (bool, error) {
	if err := n.checkInput(input); err != nil {
		return false, err
	}
	runes := []rune(input)

	seen := map[config]struct{}{}
	queue := []config{}
	push := func(c config) {
		if _, ok := seen[c]; ok {
			return
		}
		seen[c] = struct{}{}
		queue = append(queue, c)
	}
	push(config{pos: 0, state: n.start})

	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		st := n.states[c.state]

		if c.pos == len(runes) {
			if n.IsAccept(c.state) {
				return true, nil
			}
			for _, s := range st.EpsilonSuccessors() {
				push(config{pos: c.pos, state: s})
			}
			continue
		}

		for _, s := range st.EpsilonSuccessors() {
			push(config{pos: c.pos, state: s})
		}
		for _, s := range st.Successors(runes[c.pos]) {
			push(config{pos: c.pos + 1, state: s})
		}
	}

	return false, nil
}

// String renders a header line followed by every state in index order.
func (n *NFA) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "NFA size=%d start=%d accept=%v alphabet=%s\n",
		n.size, n.start, n.AcceptIndices(), n.alpha)
	for _, i := range n.StateIndices() {
		b.WriteString(n.states[i].String())
	}

	return b.String()
}
