package parsel

import (
	"bytes"
	"fmt"
)

// The matcher is a memoized recursive descent over the element graph.
// Match failure is an ordinary nil result; a non-nil error is fatal
// to the parse run (configuration or callback trouble) and is never
// memoized.

// matchElement is the single entry point for matching an element at
// an offset.  It consults the packrat cache first, honoring the
// per-slot memoization flags: each (element, offset) pair is computed
// at most once per run under default settings.
func (c *Context) matchElement(e *Element, off int, memoMatch, memoFail bool) (*Match, error) {
	if m, ok := c.memo.get(e.id, off); ok {
		if m != nil && memoMatch {
			return m, nil
		}
		if m == nil && memoFail {
			return nil, nil
		}
	}
	m, err := c.recognize(e, off)
	if err != nil {
		return nil, err
	}
	if (m != nil && memoMatch) || (m == nil && memoFail) {
		c.memo.put(e.id, off, m)
	}
	if m == nil && !c.inSkip && off > c.farthest {
		c.farthest = off
	}
	return m, nil
}

// recognize dispatches on the element kind.  The switch is
// exhaustive over the closed variant set.
func (c *Context) recognize(e *Element, off int) (*Match, error) {
	c.offset = off
	switch e.kind {
	case KindWord:
		return c.recognizeWord(e, off), nil
	case KindToken:
		return c.recognizeToken(e, off)
	case KindGroup:
		return c.recognizeGroup(e, off)
	case KindRule:
		return c.recognizeRule(e, off)
	case KindCondition:
		return c.recognizeCondition(e, off)
	case KindProcedure:
		return c.recognizeProcedure(e, off)
	default:
		return nil, &GrammarError{
			Grammar: c.grammar.name,
			Message: fmt.Sprintf("unknown element kind %d", e.kind),
		}
	}
}

func (c *Context) recognizeWord(e *Element, off int) *Match {
	end := off + len(e.word)
	if end > len(c.input) {
		return nil
	}
	if !bytes.Equal(c.input[off:end], e.word) {
		return nil
	}
	return &Match{element: e, offset: off, length: len(e.word)}
}

func (c *Context) recognizeToken(e *Element, off int) (*Match, error) {
	if e.re == nil {
		return nil, &GrammarError{
			Grammar: c.grammar.name,
			Message: fmt.Sprintf("token %s used before Prepare", e),
		}
	}
	// the pattern is \A-anchored, so a hit always starts at off
	loc := e.re.FindSubmatchIndex(c.input[off:])
	if loc == nil {
		return nil, nil
	}
	groups := make([]int, len(loc))
	for i, v := range loc {
		if v < 0 {
			groups[i] = -1
			continue
		}
		groups[i] = v + off
	}
	return &Match{element: e, offset: off, length: loc[1], groups: groups}, nil
}

// recognizeGroup implements ordered choice: alternatives are tried in
// declaration order and the first success wins, even when a later one
// would consume more input.
func (c *Context) recognizeGroup(e *Element, off int) (*Match, error) {
	for _, ref := range e.children {
		m, err := c.matchReference(ref, off)
		if err != nil {
			return nil, err
		}
		if m != nil {
			return &Match{
				element:  e,
				offset:   off,
				length:   m.length,
				children: []*Match{m},
			}, nil
		}
	}
	return nil, nil
}

// recognizeRule implements sequencing: every child must match
// consecutively, with the grammar's skip element applied once between
// children.  Any child failure fails the whole rule without a partial
// result.
func (c *Context) recognizeRule(e *Element, off int) (*Match, error) {
	children := make([]*Match, 0, len(e.children))
	cur := off
	for i, ref := range e.children {
		m, err := c.matchReference(ref, cur)
		if err != nil {
			return nil, err
		}
		if m == nil {
			return nil, nil
		}
		children = append(children, m)
		cur = m.End()
		if i < len(e.children)-1 {
			cur, err = c.applySkip(cur)
			if err != nil {
				return nil, err
			}
		}
	}
	// the span includes interior skip consumption but no trailing
	// skip, since skipping only runs between children
	return &Match{element: e, offset: off, length: cur - off, children: children}, nil
}

func (c *Context) recognizeCondition(e *Element, off int) (*Match, error) {
	ok, err := c.invokeCondition(e, off)
	if err != nil {
		return nil, &CallbackError{Element: e, Offset: off, Err: err}
	}
	if !ok {
		return nil, nil
	}
	return &Match{element: e, offset: off}, nil
}

func (c *Context) recognizeProcedure(e *Element, off int) (*Match, error) {
	if err := c.invokeProcedure(e, off); err != nil {
		return nil, &CallbackError{Element: e, Offset: off, Err: err}
	}
	return &Match{element: e, offset: off}, nil
}

// invokeCondition runs the predicate with panics contained at the
// boundary, so a client bug surfaces as a fatal error instead of
// unwinding through the matching recursion.
func (c *Context) invokeCondition(e *Element, off int) (ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	c.offset = off
	return e.condition(e, c)
}

func (c *Context) invokeProcedure(e *Element, off int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	c.offset = off
	return e.procedure(e, c)
}

// matchReference applies the slot's cardinality around the wrapped
// element's match.  Nodes handed out under a reference are shallow
// copies so the memoized originals stay slot-agnostic.
func (c *Context) matchReference(ref *Reference, off int) (*Match, error) {
	switch ref.cardinality {
	case CardinalityOne:
		m, err := c.matchElement(ref.element, off, ref.memoMatch, ref.memoFail)
		if err != nil || m == nil {
			return nil, err
		}
		return attach(m, ref), nil

	case CardinalityOptional:
		m, err := c.matchElement(ref.element, off, ref.memoMatch, ref.memoFail)
		if err != nil {
			return nil, err
		}
		if m != nil {
			return attach(m, ref), nil
		}
		// absence is not a failure
		return &Match{element: ref.element, ref: ref, offset: off}, nil

	case CardinalityZeroOrMore, CardinalityOneOrMore:
		return c.matchRepetition(ref, off)

	default:
		return nil, &GrammarError{
			Grammar: c.grammar.name,
			Message: fmt.Sprintf("unknown cardinality %d on %s", ref.cardinality, ref),
		}
	}
}

// matchRepetition collects consecutive matches of the wrapped
// element, applying skip once between repetitions.  The node's span
// ends at the last successful repetition; trailing skip consumption
// is excluded.
func (c *Context) matchRepetition(ref *Reference, off int) (*Match, error) {
	var reps []*Match
	end := off
	cur := off
	for {
		m, err := c.matchElement(ref.element, cur, ref.memoMatch, ref.memoFail)
		if err != nil {
			return nil, err
		}
		if m == nil {
			break
		}
		// the slot name and cardinality live on the wrapper node,
		// repetitions are attached as-is
		reps = append(reps, m)
		end = m.End()
		if m.length == 0 {
			// a zero-width success is accepted exactly once,
			// otherwise the loop would never terminate
			break
		}
		cur, err = c.applySkip(end)
		if err != nil {
			return nil, err
		}
	}
	if ref.cardinality == CardinalityOneOrMore && len(reps) == 0 {
		return nil, nil
	}
	return &Match{
		element:  ref.element,
		ref:      ref,
		offset:   off,
		length:   end - off,
		children: reps,
	}, nil
}

// applySkip silently consumes skippable input (whitespace, comments)
// at the given offset.  A failed or absent skip consumes nothing and
// never propagates failure.  Skipping is suppressed while already
// inside the skip element so a composite skip cannot recurse into
// itself.
func (c *Context) applySkip(off int) (int, error) {
	skip := c.grammar.skip
	if skip == nil || c.inSkip {
		return off, nil
	}
	c.inSkip = true
	m, err := c.matchElement(skip, off, true, true)
	c.inSkip = false
	if err != nil {
		return 0, err
	}
	if m == nil {
		return off, nil
	}
	return m.End(), nil
}

// attach hands out a per-slot view of a match without mutating the
// cached node.
func attach(m *Match, ref *Reference) *Match {
	node := *m
	node.ref = ref
	return &node
}
