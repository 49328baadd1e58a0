package parsel

import "fmt"

// Range takes as little as possible (16 bytes in 64bit systems) to
// represent a half-open byte span within the input.
type Range struct{ Start, End int }

func NewRange(start, end int) Range {
	return Range{Start: start, End: end}
}

func (r Range) String() string {
	if r.Start == r.End {
		return fmt.Sprintf("%d", r.Start)
	}
	return fmt.Sprintf("%d..%d", r.Start, r.End)
}

func (r Range) Str(v []byte) string {
	return string(v[r.Start:r.End])
}

func (r Range) Contains(other Range) bool {
	return other.Start >= r.Start && other.End <= r.End
}

func (r Range) Len() int { return r.End - r.Start }

// Match records one successful attempt at matching an element at an
// input offset.  Failure produces no Match at all; zero-width
// successes (conditions, procedures, absent optionals) produce a
// Match of length zero.  Matches are immutable once returned and
// outlive both the parse run's cache and the grammar.
type Match struct {
	element  *Element
	ref      *Reference
	offset   int
	length   int
	children []*Match

	// token submatch boundaries in absolute input offsets, in
	// regexp.FindSubmatchIndex layout; nil for non-token matches
	groups []int
}

func (m *Match) Element() *Element { return m.element }

// Reference returns the child slot through which the match was
// consumed, or nil for the root of a parse.
func (m *Match) Reference() *Reference { return m.ref }

func (m *Match) Offset() int { return m.offset }
func (m *Match) Length() int { return m.length }
func (m *Match) End() int    { return m.offset + m.length }

func (m *Match) Range() Range {
	return NewRange(m.offset, m.offset+m.length)
}

// Text returns the slice of input the match consumed.  The input must
// be the same buffer the parse ran against.
func (m *Match) Text(input []byte) string {
	return m.Range().Str(input)
}

// Children returns the ordered sub-matches: one per child for a rule,
// the single winning alternative for a group, one per repetition for
// a starred or plussed reference.
func (m *Match) Children() []*Match { return m.children }

func (m *Match) Child(i int) *Match {
	if i < 0 || i >= len(m.children) {
		return nil
	}
	return m.children[i]
}

// Name returns the slot name of the reference that consumed this
// match, if any.
func (m *Match) Name() string {
	if m.ref == nil {
		return ""
	}
	return m.ref.Name()
}

// ChildNamed returns the first direct sub-match consumed through a
// reference with the given slot name, or nil.
func (m *Match) ChildNamed(name string) *Match {
	for _, c := range m.children {
		if c.Name() == name {
			return c
		}
	}
	return nil
}

// GroupCount returns the number of capture groups a token match
// recorded, counting the full match as group zero.
func (m *Match) GroupCount() int { return len(m.groups) / 2 }

// Group returns the span of the i-th capture group of a token match.
// Group 0 is the full match.  The second return is false when the
// group did not participate in the match.
func (m *Match) Group(i int) (Range, bool) {
	if i < 0 || 2*i+1 >= len(m.groups) {
		return Range{}, false
	}
	start, end := m.groups[2*i], m.groups[2*i+1]
	if start < 0 {
		return Range{}, false
	}
	return NewRange(start, end), true
}

// GroupText returns the text of the i-th capture group, or "" when
// the group is absent.
func (m *Match) GroupText(input []byte, i int) string {
	rg, ok := m.Group(i)
	if !ok {
		return ""
	}
	return rg.Str(input)
}

func (m *Match) String() string {
	return fmt.Sprintf("%s @ %s", m.element, m.Range())
}
