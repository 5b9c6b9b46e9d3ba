package sep

import (
	"math"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func mustParse(t *testing.T, input string) *Node {
	t.Helper()
	node, err := Parse(input)
	assert.NoError(t, err, "%q", input)
	return node
}

func TestEval(t *testing.T) {
	tests := []struct {
		input string
		want  Result
	}{
		{"+ 1 2", Number(3)},
		{"- 10 3 2", Number(5)},
		{"/ 1 0", EvalError{Kind: DivisionByZero}},
		{"* 2 (+ 1 1)", Number(4)},
		{"+ 99999999999999999999 1", EvalError{Kind: BadNumber}},
		{"- 5", Number(5)},
		{"* 2 3 4", Number(24)},
		{"/ 100 5 2", Number(10)},
		{"/ 7 2", Number(3)},
		{"/ -7 2", Number(-3)},
		{"/ 0 5", Number(0)},
		{"- (* 3 (+ 1 1)) (/ 9 3) -1", Number(4)},
		{"+ -9223372036854775808 0", Number(math.MinInt64)},
		{"+ 9223372036854775807", Number(math.MaxInt64)},
		{"+ 9223372036854775808", EvalError{Kind: BadNumber}},
		{"+ -9223372036854775809", EvalError{Kind: BadNumber}},
		{"+ 00042 1", Number(43)},
		{"+ 9223372036854775807 1", Number(math.MinInt64)},
	}
	for _, test := range tests {
		got := Eval(mustParse(t, test.input))
		assert.Equal(t, test.want, got, "%q", test.input)
	}
}

func TestEvalLeftmostErrorWins(t *testing.T) {
	tests := []struct {
		input string
		want  Result
	}{
		{"+ (/ 1 0) 99999999999999999999", EvalError{Kind: DivisionByZero}},
		{"+ 99999999999999999999 (/ 1 0)", EvalError{Kind: BadNumber}},
		{"+ 1 (/ 1 0) 99999999999999999999", EvalError{Kind: DivisionByZero}},
		{"* (/ 5 (- 2 2)) (/ 1 0) 7", EvalError{Kind: DivisionByZero}},
		{"- 3 (+ 1 99999999999999999999) (/ 1 0)", EvalError{Kind: BadNumber}},
	}
	for _, test := range tests {
		got := Eval(mustParse(t, test.input))
		assert.Equal(t, test.want, got, "%q", test.input)
	}
}

func TestEvalIdempotent(t *testing.T) {
	for _, input := range []string{"- 10 3 2", "/ 1 0", "+ 99999999999999999999 1"} {
		node := mustParse(t, input)
		before := node.String()
		first := Eval(node)
		second := Eval(node)
		assert.Equal(t, first, second, "%q", input)
		assert.Equal(t, before, node.String(), "%q", input)
	}
}

func TestEvalBadOperator(t *testing.T) {
	num := func(s string) *Node {
		return &Node{Tag: "expr|number|regex", Contents: s}
	}
	node := &Node{
		Tag: "sep",
		Children: []*Node{
			{Tag: "soi"},
			{Tag: "operator|char", Contents: "%"},
			num("7"),
			num("2"),
			{Tag: "eoi"},
		},
	}
	assert.Equal[Result](t, EvalError{Kind: BadOperator}, Eval(node))

	empty := &Node{
		Tag: "sep",
		Children: []*Node{
			{Tag: "soi"},
			{Tag: "operator|char", Contents: "+"},
			{Tag: "eoi"},
		},
	}
	assert.Equal[Result](t, EvalError{Kind: BadOperator}, Eval(empty))
}

func TestApply(t *testing.T) {
	assert.Equal[Result](t, Number(-1), apply(2, "-", 3))
	assert.Equal[Result](t, Number(6), apply(2, "*", 3))
	assert.Equal[Result](t, EvalError{Kind: DivisionByZero}, apply(2, "/", 0))
	assert.Equal[Result](t, EvalError{Kind: BadOperator}, apply(2, "^", 3))
}
