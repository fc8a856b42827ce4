package automaton_test

import (
	"math/rand"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/automata/alphabet"
	"github.com/katalvlaran/automata/automaton"
)

// binary returns the {0,1} alphabet used by most tests.
func binary(t testing.TB) *alphabet.Alphabet {
	t.Helper()
	a, err := alphabet.New("0", "1")
	require.NoError(t, err)

	return a
}

// edge is one transition; symbol alphabet.Epsilon marks an epsilon move.
type edge struct {
	from, to int
	symbol   alphabet.Symbol
}

// buildDFA constructs a DFA and adds every edge, failing the test on error.
func buildDFA(t testing.TB, a *alphabet.Alphabet, size, start int, accept []int, edges []edge) *automaton.DFA {
	t.Helper()
	d, err := automaton.NewDFA(size, a, start, accept...)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, d.AddTransition(e.from, e.to, e.symbol), "edge %v", e)
	}

	return d
}

// buildNFA constructs an NFA and adds every edge, failing the test on error.
func buildNFA(t testing.TB, a *alphabet.Alphabet, size, start int, accept []int, edges []edge) *automaton.NFA {
	t.Helper()
	n, err := automaton.NewNFA(size, a, start, accept...)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, n.AddTransition(e.from, e.to, e.symbol), "edge %v", e)
	}

	return n
}

// allStrings enumerates every string over symbols with length ≤ maxLen,
// shortest first.
func allStrings(symbols []alphabet.Symbol, maxLen int) []string {
	out := []string{""}
	layer := []string{""}
	for l := 1; l <= maxLen; l++ {
		next := make([]string, 0, len(layer)*len(symbols))
		for _, p := range layer {
			for _, s := range symbols {
				next = append(next, p+string(s))
			}
		}
		out = append(out, next...)
		layer = next
	}

	return out
}

// randomBinaryStrings returns count strings of length [10, 200) over {0,1}.
func randomBinaryStrings(rng *rand.Rand, count int) []string {
	out := make([]string, count)
	for i := range out {
		b := make([]byte, 10+rng.Intn(190))
		for j := range b {
			b[j] = byte('0' + rng.Intn(2))
		}
		out[i] = string(b)
	}

	return out
}

// randomNFA builds an NFA with up to maxSize states over {0,1} whose
// transitions, epsilon moves included, are drawn from rng.
func randomNFA(t testing.TB, rng *rand.Rand, maxSize int) *automaton.NFA {
	t.Helper()
	size := 1 + rng.Intn(maxSize)
	var accept []int
	for i := 0; i < size; i++ {
		if rng.Intn(3) == 0 {
			accept = append(accept, i)
		}
	}
	var edges []edge
	for from := 0; from < size; from++ {
		for _, sym := range []alphabet.Symbol{'0', '1', alphabet.Epsilon} {
			for to := 0; to < size; to++ {
				if rng.Intn(4) == 0 {
					edges = append(edges, edge{from, to, sym})
				}
			}
		}
	}

	return buildNFA(t, binary(t), size, rng.Intn(size), accept, edges)
}

// fixture is one automaton description from testdata/languages.yaml.
type fixture struct {
	Name        string        `yaml:"name"`
	Kind        string        `yaml:"kind"`
	Alphabet    []string      `yaml:"alphabet"`
	Size        int           `yaml:"size"`
	Start       int           `yaml:"start"`
	Accept      []int         `yaml:"accept"`
	Transitions []fixtureEdge `yaml:"transitions"`
	Accepted    []string      `yaml:"accepted"`
	Rejected    []string      `yaml:"rejected"`
}

// fixtureEdge is a transition; an empty symbol is an epsilon move.
type fixtureEdge struct {
	From   int    `yaml:"from"`
	To     int    `yaml:"to"`
	Symbol string `yaml:"symbol"`
}

// loadFixtures decodes testdata/languages.yaml.
func loadFixtures(t testing.TB) []fixture {
	t.Helper()
	raw, err := os.ReadFile("testdata/languages.yaml")
	require.NoError(t, err)

	var doc struct {
		Automata []fixture `yaml:"automata"`
	}
	require.NoError(t, yaml.Unmarshal(raw, &doc))
	require.NotEmpty(t, doc.Automata)

	return doc.Automata
}

// edges converts fixture transitions into test edges.
func (f fixture) edges(t testing.TB) []edge {
	t.Helper()
	out := make([]edge, 0, len(f.Transitions))
	for _, fe := range f.Transitions {
		sym := alphabet.Epsilon
		if fe.Symbol != "" {
			r := []rune(fe.Symbol)
			require.Len(t, r, 1, "fixture %s: symbol %q", f.Name, fe.Symbol)
			sym = r[0]
		}
		out = append(out, edge{fe.From, fe.To, sym})
	}

	return out
}

// recognizer builds the fixture's automaton.
func (f fixture) recognizer(t testing.TB) automaton.Recognizer {
	t.Helper()
	a, err := alphabet.New(f.Alphabet...)
	require.NoError(t, err)
	switch f.Kind {
	case "dfa":
		return buildDFA(t, a, f.Size, f.Start, f.Accept, f.edges(t))
	case "nfa":
		return buildNFA(t, a, f.Size, f.Start, f.Accept, f.edges(t))
	}
	require.Failf(t, "unknown fixture kind", "%s: %q", f.Name, f.Kind)

	return nil
}
