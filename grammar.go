package parsel

import (
	"fmt"
	"os"
	"regexp"
)

// Grammar owns a named set of parsing elements, the axiom the parse
// starts from, and an optional skip element consumed silently between
// sequence children and repetitions.
//
// Lifecycle: create elements through the factory methods, wire them
// with Add and the reference helpers, designate axiom and skip, call
// Prepare, then Parse as many inputs as needed.  After Prepare the
// element graph is read-only; independent parse runs each own their
// cache and may execute concurrently as long as Condition/Procedure
// callbacks stay free of shared mutable state.
type Grammar struct {
	name    string
	symbols map[string]*Element
	axiom   *Element
	skip    *Element

	// nextID is the grammar-owned id counter shared by elements
	// and references, so several grammars coexist without
	// cross-grammar id interference
	nextID   int
	prepared bool
}

func NewGrammar(name string) *Grammar {
	return &Grammar{
		name:    name,
		symbols: make(map[string]*Element),
	}
}

func (g *Grammar) Name() string { return g.name }

// Symbol returns the element bound to name, or nil.
func (g *Grammar) Symbol(name string) *Element { return g.symbols[name] }

// Axiom returns the designated top-level element, if any.
func (g *Grammar) Axiom() *Element { return g.axiom }

// Skip returns the designated skip element, if any.
func (g *Grammar) Skip() *Element { return g.skip }

// SetAxiom designates the element a parse run starts from.  A
// reference with a cardinality other than one is wrapped in an
// anonymous rule so the run still starts from an element.
func (g *Grammar) SetAxiom(t Term) *Grammar {
	r := t.toReference()
	if r.cardinality == CardinalityOne {
		g.axiom = r.element
	} else {
		g.axiom = g.newElement(KindRule, "").Add(r)
	}
	g.prepared = false
	return g
}

// SetSkip designates the element whose matches are silently discarded
// between sequence children, typically whitespace and comments.
func (g *Grammar) SetSkip(e *Element) *Grammar {
	g.skip = e
	g.prepared = false
	return g
}

func (g *Grammar) newElement(kind ElementKind, name string) *Element {
	g.nextID++
	e := &Element{kind: kind, id: g.nextID, name: name, grammar: g}
	if name != "" {
		g.symbols[name] = e
	}
	g.prepared = false
	return e
}

func (g *Grammar) newReference(e *Element) *Reference {
	g.nextID++
	return &Reference{
		id:          g.nextID,
		cardinality: CardinalityOne,
		element:     e,
		memoMatch:   true,
		memoFail:    true,
	}
}

// Word creates a terminal matching the literal exactly.  An empty
// name leaves the element anonymous.
func (g *Grammar) Word(name, literal string) *Element {
	e := g.newElement(KindWord, name)
	e.word = []byte(literal)
	return e
}

// Token creates a terminal matching a regular expression anchored at
// the current offset.  The pattern is compiled during Prepare.
func (g *Grammar) Token(name, pattern string) *Element {
	e := g.newElement(KindToken, name)
	e.pattern = pattern
	return e
}

// Group creates an ordered choice over its children.
func (g *Grammar) Group(name string, children ...Term) *Element {
	return g.newElement(KindGroup, name).Add(children...)
}

// Rule creates an ordered sequence over its children.
func (g *Grammar) Rule(name string, children ...Term) *Element {
	return g.newElement(KindRule, name).Add(children...)
}

// Condition creates a zero-width element gated by a predicate.
func (g *Grammar) Condition(name string, fn ConditionFn) *Element {
	e := g.newElement(KindCondition, name)
	e.condition = fn
	return e
}

// Procedure creates a zero-width element that always succeeds and
// runs its callback for side effects.
func (g *Grammar) Procedure(name string, fn ProcedureFn) *Element {
	e := g.newElement(KindProcedure, name)
	e.procedure = fn
	return e
}

// Prepare finalizes the grammar: it validates that an axiom has been
// designated and compiles the pattern of every registered or
// reachable token.  It must be called before Parse.
func (g *Grammar) Prepare() error {
	if g.axiom == nil {
		return &GrammarError{Grammar: g.name, Message: "no axiom designated"}
	}
	for _, e := range g.elements() {
		if e.kind != KindToken || e.re != nil {
			continue
		}
		// \A keeps the match anchored at the offset the matcher
		// hands in, (?: ) shields top-level alternations
		re, err := regexp.Compile(`\A(?:` + e.pattern + `)`)
		if err != nil {
			return &GrammarError{
				Grammar: g.name,
				Message: fmt.Sprintf("token %s: bad pattern %q", e, e.pattern),
				Err:     err,
			}
		}
		e.re = re
	}
	g.prepared = true
	return nil
}

// elements gathers every element registered in the symbol table or
// reachable from the axiom and skip, anonymous sub-expressions
// included.
func (g *Grammar) elements() []*Element {
	var (
		out  []*Element
		seen = make(map[int]bool)
	)
	collect := func(n GraphNode, step int) int {
		if e, ok := n.(*Element); ok && !seen[e.id] {
			seen[e.id] = true
			out = append(out, e)
		}
		return step
	}
	for _, root := range []*Element{g.axiom, g.skip} {
		if root != nil {
			WalkElements(root, collect)
		}
	}
	for _, e := range g.symbols {
		WalkElements(e, collect)
	}
	return out
}

// Parse matches the axiom against input starting at offset 0 with a
// fresh memoization cache.  A *NoMatchError reports a failed run; a
// successful run may leave trailing input unconsumed, which the
// caller inspects through Match.End.
func (g *Grammar) Parse(input []byte) (*Match, error) {
	if !g.prepared {
		return nil, &GrammarError{Grammar: g.name, Message: "Parse called before Prepare"}
	}
	ctx := newContext(g, input)
	m, err := ctx.matchElement(g.axiom, 0, true, true)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, &NoMatchError{
			Grammar:  g.name,
			Farthest: ctx.farthest,
			Location: ctx.Location(ctx.farthest),
		}
	}
	return m, nil
}

// ParseString is a convenience wrapper over Parse.
func (g *Grammar) ParseString(input string) (*Match, error) {
	return g.Parse([]byte(input))
}

// ParseFile loads the file at path into memory and parses it.
func (g *Grammar) ParseFile(path string) (*Match, error) {
	input, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return g.Parse(input)
}
