// Package automata is a small, dependency-light library for finite automata
// as used in lexical analysis and pattern matching.
//
// What is in the box?
//
//	alphabet/  — symbol sets, the reserved epsilon marker, copy-safe derivation
//	bfs/       — breadth-first traversal over integer-indexed graphs with hooks
//	powerset/  — canonical numbering of all subsets of {0..n-1}
//	automaton/ — DFA and NFA, membership tests, epsilon-closure,
//	             subset construction (NFA → DFA) and reachability pruning
//
// Quick example: an NFA over {a,b} with one epsilon edge.
//
//	    ┌─b─▶ 1 ─a,b─▶ 2
//	    0 ──────ε──────▲
//	    ▲──────a───────┘
//
//	sigma, _ := alphabet.New("a", "b")
//	n, _ := automaton.NewNFA(3, sigma, 0, 0)
//	_ = n.AddTransition(0, 1, 'b')
//	_ = n.AddEpsilonTransition(0, 2)
//	_ = n.AddTransition(1, 2, 'a')
//	_ = n.AddTransition(1, 2, 'b')
//	_ = n.AddTransition(2, 0, 'a')
//	d, _ := n.ToDFA(automaton.WithPrune())
//	ok, _ := d.Accepts("baa")
//
// Subset construction enumerates all 2^n subsets of the NFA's states, so
// conversion is exponential in the NFA size and is capped by default.
// Minimization, regex compilation and streaming input are out of scope.
//
//	go get github.com/katalvlaran/automata
package automata
