package parsel

import (
	"fmt"
	"regexp"
)

// ElementKind discriminates the closed set of parsing element
// variants.  The matcher dispatches on it exhaustively.
type ElementKind int

const (
	KindWord ElementKind = iota
	KindToken
	KindGroup
	KindRule
	KindCondition
	KindProcedure
)

func (k ElementKind) String() string {
	switch k {
	case KindWord:
		return "word"
	case KindToken:
		return "token"
	case KindGroup:
		return "group"
	case KindRule:
		return "rule"
	case KindCondition:
		return "condition"
	case KindProcedure:
		return "procedure"
	default:
		return "unknown"
	}
}

// ConditionFn is the predicate attached to a Condition element.  It
// is evaluated against a restricted view of the parse state and
// decides whether the zero-width match succeeds.  A non-nil error
// aborts the whole parse as a *CallbackError, it is never treated as
// an ordinary match failure.
type ConditionFn func(el *Element, ctx *Context) (bool, error)

// ProcedureFn is the side-effect callback attached to a Procedure
// element.  Procedures always succeed without consuming input; a
// non-nil error aborts the parse as a *CallbackError.
type ProcedureFn func(el *Element, ctx *Context) error

// Element is a single unit of grammar.  Elements are created through
// the factory methods on Grammar, which hand out process-unique,
// strictly increasing ids scoped to that grammar.  Two elements are
// never equal by content, only by id.
type Element struct {
	kind    ElementKind
	id      int
	name    string
	grammar *Grammar

	// KindWord
	word []byte

	// KindToken; re is compiled during Grammar.Prepare
	pattern string
	re      *regexp.Regexp

	// KindGroup, KindRule
	children []*Reference

	condition ConditionFn
	procedure ProcedureFn
}

func (e *Element) Kind() ElementKind { return e.kind }
func (e *Element) ID() int           { return e.id }
func (e *Element) Name() string      { return e.name }

// Literal returns the exact string a Word element recognizes.
func (e *Element) Literal() string { return string(e.word) }

// Pattern returns the regular expression source of a Token element.
func (e *Element) Pattern() string { return e.pattern }

// Children returns the ordered child reference slots of a composite
// element.  Terminal and callback elements have none.
func (e *Element) Children() []*Reference { return e.children }

// SetName renames the element and registers it in the owning
// grammar's symbol table.  Anonymous sub-expressions keep an empty
// name and stay out of the table.
func (e *Element) SetName(name string) *Element {
	e.name = name
	if name != "" {
		e.grammar.symbols[name] = e
	}
	return e
}

// Add appends child slots to a Group or Rule, wrapping bare elements
// in a cardinality-one reference.  Declaration order is match order.
func (e *Element) Add(children ...Term) *Element {
	if e.kind != KindGroup && e.kind != KindRule {
		panic(fmt.Sprintf("parsel: cannot add children to a %s element", e.kind))
	}
	for _, c := range children {
		e.children = append(e.children, c.toReference())
	}
	return e
}

// Term is anything that can fill a child slot of a composite element:
// a bare *Element (implying cardinality one) or an explicit
// *Reference.
type Term interface {
	toReference() *Reference
}

func (e *Element) toReference() *Reference {
	return e.grammar.newReference(e)
}

// Ref wraps the element in a fresh cardinality-one reference, the
// explicit form used to reach the memoization switches.
func (e *Element) Ref() *Reference {
	return e.toReference()
}

// As wraps the element in a fresh reference carrying the slot name
// used to address the sub-match after a successful parse.
func (e *Element) As(name string) *Reference {
	return e.toReference().As(name)
}

// Optional wraps the element in a fresh 0-or-1 reference.
func (e *Element) Optional() *Reference {
	return e.toReference().Optional()
}

// ZeroOrMore wraps the element in a fresh 0..N reference.
func (e *Element) ZeroOrMore() *Reference {
	return e.toReference().ZeroOrMore()
}

// OneOrMore wraps the element in a fresh 1..N reference.
func (e *Element) OneOrMore() *Reference {
	return e.toReference().OneOrMore()
}

func (e *Element) String() string {
	name := e.name
	if name == "" {
		name = "<anonymous>"
	}
	return fmt.Sprintf("%s[%s#%d]", name, e.kind, e.id)
}
