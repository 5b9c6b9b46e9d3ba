package sep

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	ErrSyntax = errors.New("syntax error")
)

var (
	number   = R("number")
	operator = R("operator")
	expr     = R("expr")
	program  = R("sep")
)

func init() {
	number.Set(Regex(`-?[0-9]+`, "number"))
	operator.Set(Or(Char('+'), Char('-'), Char('*'), Char('/')))
	expr.Set(Or(
		number,
		Seq(Char('('), operator, Plus(expr), Char(')')),
	))
	program.Set(Seq(Soi(), operator, Plus(expr), Eoi()))
}

// Parse parses a whole line such as "+ 1 (* 2 3)". The returned tree is
// tagged "sep"; on failure the error is a *ParseError and no tree is
// returned.
func Parse(input string) (*Node, error) {
	return program.Parse(input)
}

// ParseError reports the furthest position the grammar could not get past.
type ParseError struct {
	Offset   int
	Column   int
	Expected []string
	Rest     string
	input    string
}

func newParseError(input string, offset int, expected []string) *ParseError {
	return &ParseError{
		Offset:   offset,
		Column:   utf8.RuneCountInString(input[:offset]) + 1,
		Expected: append([]string(nil), expected...),
		Rest:     input[offset:],
		input:    input,
	}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("<stdin>:1:%d: error: expected %s at %s", e.Column, joinExpected(e.Expected), e.found())
}

func (e *ParseError) Unwrap() error {
	return ErrSyntax
}

func (e *ParseError) found() string {
	if e.Rest == "" {
		return "end of input"
	}
	r, _ := utf8.DecodeRuneInString(e.Rest)
	return strconv.QuoteRune(r)
}

// Caret renders the input line with a marker under the failing column.
func (e *ParseError) Caret() string {
	var buf bytes.Buffer
	buf.WriteString(e.input)
	buf.WriteByte('\n')
	buf.WriteString(strings.Repeat(" ", e.Column-1))
	buf.WriteByte('^')
	return buf.String()
}

func joinExpected(expected []string) string {
	switch len(expected) {
	case 0:
		return "nothing"
	case 1:
		return expected[0]
	}
	return strings.Join(expected[:len(expected)-1], ", ") + " or " + expected[len(expected)-1]
}
