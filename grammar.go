package sep

import (
	"fmt"
	"regexp"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Grammar is a parsing expression. A successful match yields the nodes it
// produced and the offset just past the consumed input.
type Grammar interface {
	match(st *state, pos int) ([]*Node, int, bool)
}

type state struct {
	input    string
	errPos   int
	expected []string
}

func newState(input string) *state {
	return &state{
		input:  input,
		errPos: -1,
	}
}

func (st *state) skipWhite(pos int) int {
	for pos < len(st.input) {
		r, n := utf8.DecodeRuneInString(st.input[pos:])
		if !unicode.IsSpace(r) {
			break
		}
		pos += n
	}
	return pos
}

// fail records that what was expected at pos. Only the furthest position
// is remembered.
func (st *state) fail(pos int, what string) {
	if pos < st.errPos {
		return
	}
	if pos > st.errPos {
		st.errPos = pos
		st.expected = nil
	}
	for _, e := range st.expected {
		if e == what {
			return
		}
	}
	st.expected = append(st.expected, what)
}

func (st *state) err() *ParseError {
	pos := st.errPos
	if pos < 0 {
		pos = 0
	}
	return newParseError(st.input, pos, st.expected)
}

// Rule is a named production. Declare with R and define with Set, so rules
// can refer to each other.
type Rule struct {
	name string
	body Grammar
}

func R(name string) *Rule {
	return &Rule{name: name}
}

func (r *Rule) Set(g Grammar) *Rule {
	r.body = g
	return r
}

func (r *Rule) Name() string {
	return r.name
}

func (r *Rule) match(st *state, pos int) ([]*Node, int, bool) {
	if r.body == nil {
		panic(fmt.Sprintf("sep: rule %q used before Set", r.name))
	}
	nodes, next, ok := r.body.match(st, pos)
	if !ok {
		return nil, pos, false
	}
	if len(nodes) == 1 {
		nodes[0].Tag = r.name + "|" + nodes[0].Tag
		return nodes, next, true
	}
	node := &Node{
		Tag:      r.name,
		Pos:      st.skipWhite(pos),
		Children: nodes,
	}
	if len(nodes) > 0 {
		node.Pos = nodes[0].Pos
	}
	return []*Node{node}, next, true
}

// Parse matches r against input starting at its first byte. Unless r ends
// with Eoi, trailing input is left unconsumed.
func (r *Rule) Parse(input string) (*Node, error) {
	st := newState(input)
	nodes, _, ok := r.match(st, 0)
	if !ok {
		return nil, st.err()
	}
	return nodes[0], nil
}

type charGrammar rune

// Char matches the single rune c.
func Char(c rune) Grammar {
	return charGrammar(c)
}

func (c charGrammar) match(st *state, pos int) ([]*Node, int, bool) {
	pos = st.skipWhite(pos)
	r, n := utf8.DecodeRuneInString(st.input[pos:])
	if n == 0 || r != rune(c) {
		st.fail(pos, strconv.QuoteRune(rune(c)))
		return nil, pos, false
	}
	return []*Node{{Tag: "char", Contents: string(r), Pos: pos}}, pos + n, true
}

type regexGrammar struct {
	re    *regexp.Regexp
	label string
}

// Regex matches pattern at the current position as a single terminal.
// label names the terminal in parse errors.
func Regex(pattern, label string) Grammar {
	return &regexGrammar{
		re:    regexp.MustCompile(`^(?:` + pattern + `)`),
		label: label,
	}
}

func (g *regexGrammar) match(st *state, pos int) ([]*Node, int, bool) {
	pos = st.skipWhite(pos)
	loc := g.re.FindStringIndex(st.input[pos:])
	if loc == nil {
		st.fail(pos, g.label)
		return nil, pos, false
	}
	end := pos + loc[1]
	return []*Node{{Tag: "regex", Contents: st.input[pos:end], Pos: pos}}, end, true
}

type soiGrammar struct{}

func Soi() Grammar {
	return soiGrammar{}
}

func (soiGrammar) match(st *state, pos int) ([]*Node, int, bool) {
	if pos != 0 {
		st.fail(pos, "start of input")
		return nil, pos, false
	}
	return []*Node{{Tag: "soi"}}, pos, true
}

type eoiGrammar struct{}

func Eoi() Grammar {
	return eoiGrammar{}
}

func (eoiGrammar) match(st *state, pos int) ([]*Node, int, bool) {
	pos = st.skipWhite(pos)
	if pos != len(st.input) {
		st.fail(pos, "end of input")
		return nil, pos, false
	}
	return []*Node{{Tag: "eoi", Pos: pos}}, pos, true
}

type seqGrammar []Grammar

// Seq matches every g in order.
func Seq(g ...Grammar) Grammar {
	return seqGrammar(g)
}

func (s seqGrammar) match(st *state, pos int) ([]*Node, int, bool) {
	var nodes []*Node
	curr := pos
	for _, g := range s {
		got, next, ok := g.match(st, curr)
		if !ok {
			return nil, pos, false
		}
		nodes = append(nodes, got...)
		curr = next
	}
	return nodes, curr, true
}

type orGrammar []Grammar

// Or tries each g in order and takes the first that matches.
func Or(g ...Grammar) Grammar {
	return orGrammar(g)
}

func (o orGrammar) match(st *state, pos int) ([]*Node, int, bool) {
	for _, g := range o {
		if nodes, next, ok := g.match(st, pos); ok {
			return nodes, next, true
		}
	}
	return nil, pos, false
}

type plusGrammar struct {
	g Grammar
}

// Plus matches g one or more times, as many times as it can.
func Plus(g Grammar) Grammar {
	return plusGrammar{g: g}
}

func (p plusGrammar) match(st *state, pos int) ([]*Node, int, bool) {
	nodes, curr, ok := p.g.match(st, pos)
	if !ok {
		return nil, pos, false
	}
	for {
		got, next, ok := p.g.match(st, curr)
		if !ok || next == curr {
			break
		}
		nodes = append(nodes, got...)
		curr = next
	}
	return nodes, curr, true
}
