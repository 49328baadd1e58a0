package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/parsel-dev/parsel"
)

type args struct {
	inputPath *string
	showTree  *bool
}

func readArgs() *args {
	a := &args{
		inputPath: flag.String("input", "", "Path to the input file (defaults to stdin)"),
		showTree:  flag.Bool("tree", true, "Print the match tree"),
	}
	flag.Parse()
	return a
}

// sexpGrammar wires up a small s-expression language: atoms are
// names, numbers, or #symbols, lists are parenthesized values, and
// whitespace plus ;-comments are skipped.
func sexpGrammar() (*parsel.Grammar, error) {
	g := parsel.NewGrammar("sexp")

	name := g.Token("NAME", `[\w\-_][\w\d\-_]*`)
	number := g.Token("NUMBER", `-?\d+(\.\d+)?`)
	symbol := g.Token("SYMBOL", `#([\w\-_][\w\d\-_]*)`)
	space := g.Token("SPACE", `(?:\s|;[^\n]*)+`)

	atom := g.Group("Atom", number, symbol, name)
	value := g.Group("Value")
	list := g.Rule("List", g.Word("", "("), value.ZeroOrMore().As("items"), g.Word("", ")"))
	value.Add(list, atom)

	code := g.Rule("Code",
		space.Optional(),
		value.ZeroOrMore().As("values"),
		space.Optional(),
	)

	g.SetAxiom(code)
	g.SetSkip(space)
	if err := g.Prepare(); err != nil {
		return nil, err
	}
	return g, nil
}

func run() error {
	a := readArgs()

	input, err := readInput(*a.inputPath)
	if err != nil {
		return err
	}

	g, err := sexpGrammar()
	if err != nil {
		return err
	}

	m, err := g.Parse(input)
	if err != nil {
		var noMatch *parsel.NoMatchError
		if errors.As(err, &noMatch) {
			return fmt.Errorf("syntax error at %s", noMatch.Location)
		}
		return err
	}

	if m.End() < len(input) {
		fmt.Fprintf(os.Stderr, "warning: trailing input after offset %d\n", m.End())
	}
	if *a.showTree {
		fmt.Println(parsel.FormatMatch(m, input))
	}
	return nil
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
