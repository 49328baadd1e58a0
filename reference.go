package parsel

import "fmt"

// Cardinality controls how many consecutive matches of the wrapped
// element a reference consumes.
type Cardinality int

const (
	CardinalityOne Cardinality = iota
	CardinalityOptional
	CardinalityZeroOrMore
	CardinalityOneOrMore
)

func (c Cardinality) String() string {
	switch c {
	case CardinalityOne:
		return "1"
	case CardinalityOptional:
		return "?"
	case CardinalityZeroOrMore:
		return "*"
	case CardinalityOneOrMore:
		return "+"
	default:
		return "unknown"
	}
}

// Reference is a named, cardinality-annotated child slot wrapping a
// single element.  The wrapped element is fixed at construction;
// cardinality, name, and memoization flags may be adjusted freely
// until the owning grammar is prepared.
//
// The memoization flags are an escape hatch for grammars that rely on
// path-dependent side effects inside Condition/Procedure callbacks:
// disabling them forces re-invocation where blind caching would
// suppress it.
type Reference struct {
	id          int
	name        string
	cardinality Cardinality
	element     *Element

	memoMatch bool
	memoFail  bool
}

func (r *Reference) ID() int                  { return r.id }
func (r *Reference) Name() string             { return r.name }
func (r *Reference) Element() *Element        { return r.element }
func (r *Reference) Cardinality() Cardinality { return r.cardinality }

func (r *Reference) toReference() *Reference { return r }

// As sets the slot name used to address the sub-match.
func (r *Reference) As(name string) *Reference {
	r.name = name
	return r
}

// One requires exactly one match of the wrapped element.
func (r *Reference) One() *Reference {
	r.cardinality = CardinalityOne
	return r
}

// Optional accepts zero or one match; absence yields a zero-width
// success rather than a failure.
func (r *Reference) Optional() *Reference {
	r.cardinality = CardinalityOptional
	return r
}

// ZeroOrMore accepts any number of consecutive matches, including
// none.
func (r *Reference) ZeroOrMore() *Reference {
	r.cardinality = CardinalityZeroOrMore
	return r
}

// OneOrMore accepts any number of consecutive matches but fails if
// the first attempt fails.
func (r *Reference) OneOrMore() *Reference {
	r.cardinality = CardinalityOneOrMore
	return r
}

// DisableMemoize stops successful outcomes of this slot from being
// served from or stored in the per-run cache.
func (r *Reference) DisableMemoize() *Reference {
	r.memoMatch = false
	return r
}

// DisableFailMemoize stops failed outcomes of this slot from being
// served from or stored in the per-run cache.
func (r *Reference) DisableFailMemoize() *Reference {
	r.memoFail = false
	return r
}

func (r *Reference) String() string {
	name := r.name
	if name == "" {
		name = r.element.Name()
	}
	return fmt.Sprintf("%s%s#%d", name, r.cardinality, r.id)
}
