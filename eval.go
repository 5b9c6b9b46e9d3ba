package sep

import (
	"strconv"
)

type Fn func(acc, operand int64) Result

var ops map[string]Fn

func init() {
	ops = make(map[string]Fn)
	ops["+"] = doPlus
	ops["-"] = doMinus
	ops["*"] = doMul
	ops["/"] = doDiv
}

func doPlus(acc, operand int64) Result {
	return Number(acc + operand)
}

func doMinus(acc, operand int64) Result {
	return Number(acc - operand)
}

func doMul(acc, operand int64) Result {
	return Number(acc * operand)
}

func doDiv(acc, operand int64) Result {
	if operand == 0 {
		return EvalError{Kind: DivisionByZero}
	}
	return Number(acc / operand)
}

func apply(acc Number, op string, operand Number) Result {
	fn, ok := ops[op]
	if !ok {
		return EvalError{Kind: BadOperator}
	}
	return fn(int64(acc), int64(operand))
}

// Eval reduces a tree produced by Parse. Operands are folded left to right
// and the first error stops the fold.
func Eval(node *Node) Result {
	if node.HasTag("number") {
		i, err := strconv.ParseInt(node.Contents, 10, 64)
		if err != nil {
			return EvalError{Kind: BadNumber}
		}
		return Number(i)
	}

	var op string
	if len(node.Children) > 1 {
		op = node.Children[1].Contents
	}
	var operands []*Node
	if len(node.Children) > 2 {
		for _, child := range node.Children[2:] {
			if child.HasTag("expr") {
				operands = append(operands, child)
			}
		}
	}
	if len(operands) == 0 {
		return EvalError{Kind: BadOperator}
	}

	acc := Eval(operands[0])
	for _, operand := range operands[1:] {
		x, ok := acc.(Number)
		if !ok {
			return acc
		}
		y := Eval(operand)
		if _, ok := y.(EvalError); ok {
			return y
		}
		acc = apply(x, op, y.(Number))
	}
	return acc
}
