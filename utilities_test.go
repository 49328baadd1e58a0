package parsel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckIndent(t *testing.T) {
	t.Run("matching depth", func(t *testing.T) {
		g := NewGrammar("offside")
		g.SetAxiom(g.Rule("Block", Indent(g), CheckIndent(g), g.Word("", "\tbody")))
		require.NoError(t, g.Prepare())

		m, err := g.ParseString("\tbody")
		require.NoError(t, err)
		assert.Equal(t, 5, m.Length())
	})

	t.Run("unexpected indentation", func(t *testing.T) {
		g := NewGrammar("offside")
		g.SetAxiom(g.Rule("Block", CheckIndent(g), g.Word("", "\tbody")))
		require.NoError(t, g.Prepare())

		_, err := g.ParseString("\tbody")
		var noMatch *NoMatchError
		require.ErrorAs(t, err, &noMatch)
	})

	t.Run("indent and dedent cancel out", func(t *testing.T) {
		g := NewGrammar("offside")
		g.SetAxiom(g.Rule("Block", Indent(g), Dedent(g), CheckIndent(g), g.Word("", "x")))
		require.NoError(t, g.Prepare())

		m, err := g.ParseString("x")
		require.NoError(t, err)
		assert.Equal(t, 1, m.Length())
	})
}
