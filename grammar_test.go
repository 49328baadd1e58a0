package parsel

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepareRequiresAxiom(t *testing.T) {
	g := NewGrammar("empty")
	err := g.Prepare()
	var gErr *GrammarError
	require.ErrorAs(t, err, &gErr)
	assert.Contains(t, err.Error(), "no axiom")
}

func TestParseRequiresPrepare(t *testing.T) {
	g := NewGrammar("raw")
	g.SetAxiom(g.Word("A", "a"))

	_, err := g.ParseString("a")
	var gErr *GrammarError
	require.ErrorAs(t, err, &gErr)
	assert.Contains(t, err.Error(), "before Prepare")
}

func TestPrepareRejectsBadTokenPattern(t *testing.T) {
	g := NewGrammar("bad")
	g.SetAxiom(g.Token("BROKEN", `[`))

	err := g.Prepare()
	var gErr *GrammarError
	require.ErrorAs(t, err, &gErr)
	assert.Contains(t, err.Error(), "BROKEN")
	assert.Error(t, gErr.Unwrap())
}

func TestPrepareCompilesUnreachableSymbols(t *testing.T) {
	g := NewGrammar("unreached")
	g.SetAxiom(g.Word("A", "a"))
	g.Token("HELPER", `\d+`)
	require.NoError(t, g.Prepare())
	assert.NotNil(t, g.Symbol("HELPER"))
}

func TestMutationInvalidatesPreparation(t *testing.T) {
	g := NewGrammar("mut")
	g.SetAxiom(g.Word("A", "a"))
	require.NoError(t, g.Prepare())

	// growing the grammar puts it back into the unprepared state
	g.Word("B", "b")
	_, err := g.ParseString("a")
	var gErr *GrammarError
	require.ErrorAs(t, err, &gErr)

	require.NoError(t, g.Prepare())
	_, err = g.ParseString("a")
	require.NoError(t, err)
}

func TestSymbolTable(t *testing.T) {
	g := NewGrammar("symbols")
	a := g.Word("A", "a")
	anon := g.Word("", "x")

	assert.Same(t, a, g.Symbol("A"))
	assert.Nil(t, g.Symbol("X"))
	assert.Equal(t, "", anon.Name())

	anon.SetName("X")
	assert.Same(t, anon, g.Symbol("X"))
	assert.Equal(t, "X", anon.Name())
}

func TestElementIDsAreStrictlyIncreasing(t *testing.T) {
	g := NewGrammar("ids")
	a := g.Word("A", "a")
	b := g.Token("B", `b`)
	c := g.Group("C", a, b)
	ref := a.Ref()

	assert.Less(t, a.ID(), b.ID())
	assert.Less(t, b.ID(), c.ID())
	assert.Greater(t, ref.ID(), c.ID())
}

func TestGrammarsOwnTheirIDCounters(t *testing.T) {
	g1 := NewGrammar("one")
	g2 := NewGrammar("two")
	assert.Equal(t, g1.Word("A", "a").ID(), g2.Word("A", "a").ID())
}

func TestAddPanicsOnTerminal(t *testing.T) {
	g := NewGrammar("terminal")
	w := g.Word("A", "a")
	assert.Panics(t, func() { w.Add(g.Word("B", "b")) })
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	g := NewGrammar("file")
	g.SetAxiom(g.Word("HELLO", "hello"))
	require.NoError(t, g.Prepare())

	m, err := g.ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, 5, m.Length())

	_, err = g.ParseFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}

func TestAxiomFromReference(t *testing.T) {
	g := NewGrammar("refaxiom")
	g.SetAxiom(g.Word("X", "x").ZeroOrMore())
	require.NoError(t, g.Prepare())

	m, err := g.ParseString("xx")
	require.NoError(t, err)
	assert.Equal(t, 2, m.Length())
}
