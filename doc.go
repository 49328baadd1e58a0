// Package parsel implements grammars based on parsing elements.  A
// grammar is not compiled from a textual definition; it is
// constructed through an API, out of a small set of composable
// element kinds: literal words, regular-expression tokens, ordered
// choices, sequences, and zero-width conditions and procedures.
//
// Matching is memoized packrat recursive descent: each (element,
// offset) pair is computed at most once per parse run, which keeps
// backtracking over shared sub-expressions from going exponential.
// The result of a run is a tree of match nodes that can be traversed
// generically to drive semantic actions.
//
//	g := parsel.NewGrammar("calc")
//	number := g.Token("NUMBER", `\d+`)
//	operator := g.Token("OPERATOR", `[+\-*/]`)
//	value := g.Group("Value", number)
//	suffix := g.Rule("Suffix", operator, value)
//	g.SetAxiom(g.Rule("Expression", value, suffix.ZeroOrMore()))
//	g.SetSkip(g.Token("SPACE", `\s+`))
//
//	if err := g.Prepare(); err != nil { ... }
//	match, err := g.Parse(input)
package parsel
