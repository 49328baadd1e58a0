package parsel_test

import (
	"fmt"

	"github.com/parsel-dev/parsel"
)

func Example() {
	g := parsel.NewGrammar("calc")
	number := g.Token("NUMBER", `\d+(\.\d+)?`)
	operator := g.Token("OPERATOR", `[+\-*/^]`)
	value := g.Group("Value", number)
	suffix := g.Rule("Suffix", operator, value)
	g.SetAxiom(g.Rule("Expression", value, suffix.ZeroOrMore().As("suffixes")))
	g.SetSkip(g.Token("SPACE", `\s+`))
	if err := g.Prepare(); err != nil {
		panic(err)
	}

	input := []byte("1 + 2 * 3")
	m, err := g.Parse(input)
	if err != nil {
		panic(err)
	}

	fmt.Println(m.Text(input))
	for _, s := range m.ChildNamed("suffixes").Children() {
		fmt.Println(s.Text(input))
	}
	// Output:
	// 1 + 2 * 3
	// + 2
	// * 3
}

func ExampleFormatMatch() {
	g := parsel.NewGrammar("arith")
	number := g.Token("NUMBER", `\d+`)
	operator := g.Token("OPERATOR", `[+\-*/]`)
	value := g.Group("Value", number)
	suffix := g.Rule("Suffix", operator, value)
	g.SetAxiom(g.Rule("Expression", value, suffix.ZeroOrMore()))
	if err := g.Prepare(); err != nil {
		panic(err)
	}

	input := []byte("7")
	m, err := g.Parse(input)
	if err != nil {
		panic(err)
	}

	fmt.Println(parsel.FormatMatch(m, input))
	// Output:
	// Expression (0..1)
	// ├── Value (0..1)
	// │   └── NUMBER "7" (0..1)
	// └── Suffix* (1)
}

func ExampleWalkMatches() {
	g := parsel.NewGrammar("pair")
	g.SetAxiom(g.Rule("Pair", g.Word("A", "a"), g.Word("B", "b")))
	if err := g.Prepare(); err != nil {
		panic(err)
	}

	input := []byte("ab")
	m, err := g.Parse(input)
	if err != nil {
		panic(err)
	}

	parsel.WalkMatches(m, func(n *parsel.Match, step int) int {
		fmt.Printf("%d %s %s\n", step, n.Element().Name(), n.Range())
		return step
	})
	// Output:
	// 0 Pair 0..2
	// 1 A 0..1
	// 2 B 1..2
}
