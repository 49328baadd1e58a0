package parsel

// Indentation helpers for grammars of offside-rule languages.  They
// thread the expected indentation depth through the parse context's
// state bag: Indent/Dedent are Procedures adjusting the depth, and
// CheckIndent is a Condition accepting the current position only when
// the line it sits on starts with exactly that many tabs.

const indentKey = "parsel.indent"

func contextIndent(ctx *Context) int {
	if v, ok := ctx.Get(indentKey); ok {
		return v.(int)
	}
	return 0
}

// Indent returns an anonymous Procedure that increases the expected
// indentation depth by one.
func Indent(g *Grammar) *Element {
	return g.Procedure("", func(_ *Element, ctx *Context) error {
		ctx.Set(indentKey, contextIndent(ctx)+1)
		return nil
	})
}

// Dedent returns an anonymous Procedure that decreases the expected
// indentation depth by one.
func Dedent(g *Grammar) *Element {
	return g.Procedure("", func(_ *Element, ctx *Context) error {
		depth := contextIndent(ctx)
		if depth > 0 {
			depth--
		}
		ctx.Set(indentKey, depth)
		return nil
	})
}

// CheckIndent returns an anonymous Condition that succeeds when the
// current line carries exactly the expected number of leading tabs.
func CheckIndent(g *Grammar) *Element {
	return g.Condition("", func(_ *Element, ctx *Context) (bool, error) {
		var (
			input = ctx.Input()
			start = ctx.Offset()
		)
		for start > 0 && input[start-1] != '\n' {
			start--
		}
		tabs := 0
		for i := start; i < len(input) && input[i] == '\t'; i++ {
			tabs++
		}
		return tabs == contextIndent(ctx), nil
	})
}
