package parsel

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatMatch renders a match tree with box-drawing glyphs, mostly
// for tests and debugging.  input must be the buffer the parse ran
// against.
//
//	Expression (0..5)
//	├── Value (0..1)
//	│   └── NUMBER "1" (0..1)
//	└── Suffix* (1..5)
//	    └── ...
func FormatMatch(m *Match, input []byte) string {
	p := &matchPrinter{
		input:  input,
		output: &strings.Builder{},
	}
	p.print(m)
	return p.output.String()
}

type matchPrinter struct {
	input  []byte
	padStr []string
	output *strings.Builder
}

func (p *matchPrinter) print(m *Match) {
	label := p.label(m)
	if len(m.Children()) == 0 {
		switch m.Element().Kind() {
		case KindWord, KindToken:
			p.write(label)
			p.write(" ")
			p.write(strconv.Quote(m.Text(p.input)))
			p.write(fmt.Sprintf(" (%s)", m.Range()))
		default:
			p.write(label)
			p.write(fmt.Sprintf(" (%s)", m.Range()))
		}
		return
	}
	p.writel(fmt.Sprintf("%s (%s)", label, m.Range()))
	children := m.Children()
	for i, child := range children {
		if i == len(children)-1 {
			p.pwrite("└── ")
			p.indent("    ")
			p.print(child)
			p.unindent()
		} else {
			p.pwrite("├── ")
			p.indent("│   ")
			p.print(child)
			p.unindent()
			p.write("\n")
		}
	}
}

// label names the node by its element, falling back to the kind for
// anonymous sub-expressions, with the slot cardinality appended for
// optional and repeated references.
func (p *matchPrinter) label(m *Match) string {
	label := m.Element().Name()
	if label == "" {
		label = m.Element().Kind().String()
	}
	if ref := m.Reference(); ref != nil && ref.Cardinality() != CardinalityOne {
		label += ref.Cardinality().String()
	}
	return label
}

func (p *matchPrinter) indent(s string) {
	p.padStr = append(p.padStr, s)
}

func (p *matchPrinter) unindent() {
	p.padStr = p.padStr[:len(p.padStr)-1]
}

func (p *matchPrinter) padding() {
	for _, item := range p.padStr {
		p.write(item)
	}
}

func (p *matchPrinter) writel(s string) {
	p.write(s)
	p.output.WriteRune('\n')
}

func (p *matchPrinter) write(s string) {
	p.output.WriteString(s)
}

func (p *matchPrinter) pwrite(s string) {
	p.padding()
	p.write(s)
}
