// Package automaton implements deterministic (DFA) and nondeterministic (NFA)
// finite automata over an alphabet.Alphabet, string membership for both, and
// NFA → DFA conversion by subset construction.
//
// What
//
//   - DFA: states with at most one successor per symbol.
//     NewDFA, AddTransition, Transition, Accepts, RemoveRedundantStates.
//   - NFA: states with a successor list per symbol plus epsilon successors.
//     NewNFA, AddTransition, AddEpsilonTransition, EpsilonClosure, Accepts, ToDFA.
//   - Both implement Recognizer: Accepts(input string) (bool, error).
//
// Shape
//
//	DFA and NFA embed one generic state arena, shape[S], and differ only in
//	the state type S (DFAState vs NFAState). The arena holds the nominal size,
//	a private copy of the alphabet, the states keyed by index, the start index
//	and the accept set. States refer to siblings by index only.
//
// Indices after pruning
//
//	RemoveRedundantStates deletes unreachable states but keeps indices
//	logical: Size() and AcceptIndices() report construction-time values, the
//	state map becomes sparse, and StateCount() reports what is left. Since a
//	retained state only points at retained states, Accepts never looks up a
//	removed index. AddTransition to or from a removed index fails with
//	ErrStateNotFound.
//
// NFA simulation
//
//	Accepts runs a breadth-first search over (position, state) pairs. Epsilon
//	moves keep the position, symbol moves advance it, and each pair is
//	expanded once, so epsilon cycles terminate. End of input is checked before
//	any symbol is read.
//
// Subset construction
//
//	ToDFA enumerates all 2^n subsets of the NFA's states (powerset package)
//	and builds a DFA with one state per subset, including the empty dead
//	subset. Time and memory are O(2^n · |Σ| · n); the NFA size is capped by
//	DefaultMaxConvertStates unless WithMaxStates says otherwise. Use
//	WithPrune (or call RemoveRedundantStates) to keep only reachable subsets.
//
// Errors
//
//   - ErrNilAlphabet             nil alphabet passed to a constructor.
//   - ErrOutOfBounds             umbrella for the four bounds errors below.
//   - ErrStartOutOfBounds        start ∉ [0, size).
//   - ErrAcceptOutOfBounds       accept index ∉ [0, size).
//   - ErrSourceOutOfBounds       transition source ∉ [0, size).
//   - ErrDestinationOutOfBounds  transition destination ∉ [0, size).
//   - ErrSymbolNotInAlphabet     transition or input symbol outside the alphabet.
//   - ErrUndefinedTransition     DFA walk hit a missing successor.
//   - ErrStateNotFound           index removed by pruning.
//   - ErrTooManyStates           NFA too large for ToDFA.
//   - ErrOptionViolation         invalid ConvertOption.
//
// All errors are wrapped with the offending index or symbol; match them with errors.Is.
//
// Usage
//
//	sigma, _ := alphabet.New("a", "b")
//	n, _ := automaton.NewNFA(3, sigma, 0, 2)
//	_ = n.AddTransition(0, 1, 'a')
//	_ = n.AddEpsilonTransition(1, 2)
//	ok, _ := n.Accepts("a") // true
//
//	d, _ := n.ToDFA(automaton.WithPrune())
//	ok, _ = d.Accepts("a") // true
//
// Concurrency
//
//	No internal locking. Readers (Accepts, EpsilonClosure, ToDFA) may run in
//	parallel; mutation (AddTransition, RemoveRedundantStates) must be
//	serialized by the caller.
package automaton
