package parsel

// WalkStop is the sentinel a visitor returns to abort the entire
// traversal early.  Any other return value continues into the node's
// children in declaration order.
const WalkStop = -1

// GraphNode is either an *Element or a *Reference, the two node kinds
// interleaved in a grammar's graph.
type GraphNode interface {
	ID() int
}

// WalkElements performs a pre-order traversal of the element graph
// rooted at root, visiting elements and the references between them.
// step is a strictly increasing counter starting at 0 for the root.
//
// Grammars may legally be cyclic (mutually referential rules), so the
// walk guards on the grammar-assigned ids and visits every node at
// most once.  It returns the step following the last visit, or
// WalkStop when the visitor aborted.
func WalkElements(root *Element, visit func(n GraphNode, step int) int) int {
	w := &graphWalker{seen: make(map[int]bool), visit: visit}
	return w.element(root, 0)
}

type graphWalker struct {
	seen  map[int]bool
	visit func(n GraphNode, step int) int
}

func (w *graphWalker) element(e *Element, step int) int {
	if w.seen[e.id] {
		return step
	}
	w.seen[e.id] = true
	if w.visit(e, step) == WalkStop {
		return WalkStop
	}
	step++
	for _, ref := range e.children {
		if step = w.reference(ref, step); step == WalkStop {
			return WalkStop
		}
	}
	return step
}

func (w *graphWalker) reference(r *Reference, step int) int {
	if w.seen[r.id] {
		return step
	}
	w.seen[r.id] = true
	if w.visit(r, step) == WalkStop {
		return WalkStop
	}
	return w.element(r.element, step+1)
}

// WalkMatches performs a pre-order traversal of a match tree, which
// is finite by construction: every composite child's span is
// contained in its parent's, and zero-width children only share the
// parent's offset.  Returns the step following the last visit, or
// WalkStop when the visitor aborted.
func WalkMatches(root *Match, visit func(m *Match, step int) int) int {
	return walkMatch(root, 0, visit)
}

func walkMatch(m *Match, step int, visit func(m *Match, step int) int) int {
	if visit(m, step) == WalkStop {
		return WalkStop
	}
	step++
	for _, child := range m.children {
		if step = walkMatch(child, step, visit); step == WalkStop {
			return WalkStop
		}
	}
	return step
}
