package parsel

// Context is the restricted view of one parse run handed to
// Condition and Procedure callbacks.  It exposes the input buffer,
// the offset the callback is being evaluated at, position lookup for
// diagnostics, and a small state bag for grammars whose callbacks
// need to thread state between invocations (see utilities.go).
//
// A Context lives for exactly one parse invocation and owns that
// run's memoization table.
type Context struct {
	grammar *Grammar
	input   []byte
	offset  int

	memo     memoTable
	farthest int
	inSkip   bool

	pos   *posIndex
	state map[string]any
}

func newContext(g *Grammar, input []byte) *Context {
	return &Context{
		grammar: g,
		input:   input,
		memo:    make(memoTable),
	}
}

// Grammar returns the grammar driving the parse.
func (c *Context) Grammar() *Grammar { return c.grammar }

// Input returns the complete input buffer of the parse run.
func (c *Context) Input() []byte { return c.input }

// Offset returns the byte offset the current element is being
// matched at.
func (c *Context) Offset() int { return c.offset }

// Rest returns the unconsumed input from the current offset on.
func (c *Context) Rest() []byte { return c.input[c.offset:] }

// Location resolves a byte offset to a line/column position.  The
// index is built lazily on first use.
func (c *Context) Location(offset int) Location {
	if c.pos == nil {
		c.pos = newPosIndex(c.input)
	}
	return c.pos.LocationAt(offset)
}

// Get reads a value from the run-scoped state bag.
func (c *Context) Get(key string) (any, bool) {
	v, ok := c.state[key]
	return v, ok
}

// Set writes a value into the run-scoped state bag.
func (c *Context) Set(key string, v any) {
	if c.state == nil {
		c.state = make(map[string]any)
	}
	c.state[key] = v
}
