package automaton_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/automata/alphabet"
	"github.com/katalvlaran/automata/automaton"
)

// NFASuite exercises construction, epsilon-closure and simulation of NFAs.
type NFASuite struct {
	suite.Suite
	sigma *alphabet.Alphabet
}

func (s *NFASuite) SetupTest() {
	s.sigma = binary(s.T())
}

// endsWith110 recognizes strings whose last three symbols are "110".
func (s *NFASuite) endsWith110() *automaton.NFA {
	return buildNFA(s.T(), s.sigma, 4, 0, []int{3}, []edge{
		{0, 0, '0'}, {0, 1, '1'}, {1, 0, '0'}, {1, 1, '1'},
		{1, 2, '1'}, {2, 3, '0'}, {2, 2, '1'},
	})
}

// TestEndsWith110 checks the language against a predicate.
func (s *NFASuite) TestEndsWith110() {
	n := s.endsWith110()
	rng := rand.New(rand.NewSource(7))
	inputs := append(allStrings(s.sigma.Symbols(), 8), randomBinaryStrings(rng, 100)...)
	for _, in := range inputs {
		got, err := n.Accepts(in)
		s.Require().NoError(err)
		s.Require().Equal(strings.HasSuffix(in, "110"), got, "Accepts(%q)", in)
	}
}

// TestAcceptsEverything is the epsilon-driven NFA accepting Σ*.
func (s *NFASuite) TestAcceptsEverything() {
	n := buildNFA(s.T(), s.sigma, 2, 0, []int{0}, []edge{
		{0, 1, alphabet.Epsilon}, {1, 0, '0'}, {1, 0, '1'},
	})
	for _, in := range allStrings(s.sigma.Symbols(), 8) {
		ok, err := n.Accepts(in)
		s.Require().NoError(err)
		s.Require().True(ok, "Accepts(%q)", in)
	}
}

// TestEpsilonCycleTerminates would loop forever without configuration dedup.
func (s *NFASuite) TestEpsilonCycleTerminates() {
	n := buildNFA(s.T(), s.sigma, 3, 0, []int{2}, []edge{
		{0, 1, alphabet.Epsilon}, {1, 0, alphabet.Epsilon}, {1, 1, alphabet.Epsilon},
		{0, 0, '0'}, {1, 2, '1'},
	})
	for in, want := range map[string]bool{"": false, "0": false, "1": true, "0001": true, "10": false} {
		ok, err := n.Accepts(in)
		s.Require().NoError(err)
		s.Equal(want, ok, "Accepts(%q)", in)
	}
}

// TestAcceptsForeignSymbol fails regardless of where the symbol occurs.
func (s *NFASuite) TestAcceptsForeignSymbol() {
	n := s.endsWith110()
	for _, in := range []string{"2", "110a", "\xff"} {
		_, err := n.Accepts(in)
		s.ErrorIs(err, automaton.ErrSymbolNotInAlphabet, "Accepts(%q)", in)
	}
}

// TestEpsilonClosure computes sorted closures, cycles included.
func (s *NFASuite) TestEpsilonClosure() {
	n := buildNFA(s.T(), s.sigma, 5, 0, nil, []edge{
		{0, 2, alphabet.Epsilon}, {2, 1, alphabet.Epsilon}, {1, 0, alphabet.Epsilon},
		{1, 3, '0'}, {3, 4, alphabet.Epsilon},
	})
	for idx, want := range map[int][]int{
		0: {0, 1, 2},
		1: {0, 1, 2},
		3: {3, 4},
		4: {4},
	} {
		got, err := n.EpsilonClosure(idx)
		s.Require().NoError(err)
		s.Equal(want, got, "EpsilonClosure(%d)", idx)
	}

	_, err := n.EpsilonClosure(5)
	s.ErrorIs(err, automaton.ErrOutOfBounds)
}

// TestConstructorAndTransitions covers bounds, epsilon edges and duplicates.
func (s *NFASuite) TestConstructorAndTransitions() {
	_, err := automaton.NewNFA(2, s.sigma, 2)
	s.ErrorIs(err, automaton.ErrStartOutOfBounds)
	_, err = automaton.NewNFA(2, s.sigma, 0, 4)
	s.ErrorIs(err, automaton.ErrAcceptOutOfBounds)
	_, err = automaton.NewNFA(1, nil, 0)
	s.ErrorIs(err, automaton.ErrNilAlphabet)

	n, err := automaton.NewNFA(2, s.sigma, 0, 1)
	s.Require().NoError(err)
	s.ErrorIs(n.AddTransition(0, 2, '0'), automaton.ErrDestinationOutOfBounds)
	s.ErrorIs(n.AddTransition(-1, 0, '0'), automaton.ErrSourceOutOfBounds)
	s.ErrorIs(n.AddTransition(0, 1, 'z'), automaton.ErrSymbolNotInAlphabet)
	s.Require().NoError(n.AddEpsilonTransition(0, 1))
	s.Require().NoError(n.AddTransition(0, 1, '0'))
	s.Require().NoError(n.AddTransition(0, 1, '0'))

	ok, err := n.Accepts("")
	s.Require().NoError(err)
	s.True(ok, "epsilon edge to an accept state accepts the empty string")
	ok, err = n.Accepts("0")
	s.Require().NoError(err)
	s.True(ok)
}

// TestAlphabetNotAliased ensures the epsilon alphabet is a private copy.
func (s *NFASuite) TestAlphabetNotAliased() {
	n, err := automaton.NewNFA(1, s.sigma, 0)
	s.Require().NoError(err)
	s.True(n.Alphabet().HasEpsilon())
	s.False(s.sigma.HasEpsilon(), "constructing an NFA must not add epsilon to the caller's alphabet")

	s.Require().NoError(s.sigma.Add("7"))
	s.ErrorIs(n.AddTransition(0, 0, '7'), automaton.ErrSymbolNotInAlphabet)
}

// TestString renders epsilon transitions first.
func (s *NFASuite) TestString() {
	n := buildNFA(s.T(), s.sigma, 2, 0, []int{1}, []edge{{0, 1, alphabet.Epsilon}, {0, 1, '1'}})
	want := "NFA size=2 start=0 accept=[1] alphabet={0, 1, ε}\n" +
		"q0\nε -> [1]\n0 -> []\n1 -> [1]\n" +
		"q1\nε -> []\n0 -> []\n1 -> []\n"
	s.Equal(want, n.String())
}

func TestNFASuite(t *testing.T) {
	suite.Run(t, new(NFASuite))
}

// TestRecognizer_Fixtures checks every fixture from testdata/languages.yaml.
func TestRecognizer_Fixtures(t *testing.T) {
	for _, f := range loadFixtures(t) {
		t.Run(f.Name, func(t *testing.T) {
			r := f.recognizer(t)
			for _, in := range f.Accepted {
				ok, err := r.Accepts(in)
				require.NoError(t, err)
				assert.True(t, ok, "want %q accepted", in)
			}
			for _, in := range f.Rejected {
				ok, err := r.Accepts(in)
				require.NoError(t, err)
				assert.False(t, ok, "want %q rejected", in)
			}
		})
	}
}
