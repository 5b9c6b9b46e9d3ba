package sep

import (
	"fmt"
	"strconv"
)

type ErrorKind int

const (
	DivisionByZero ErrorKind = iota
	BadOperator
	BadNumber
)

func (k ErrorKind) String() string {
	switch k {
	case DivisionByZero:
		return "Division by zero"
	case BadOperator:
		return "Invalid operator"
	case BadNumber:
		return "Invalid number"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Result is the outcome of evaluating a tree: either a Number or an
// EvalError.
type Result interface {
	result()
}

type Number int64

func (Number) result() {}

func (n Number) String() string {
	return strconv.FormatInt(int64(n), 10)
}

type EvalError struct {
	Kind ErrorKind
}

func (EvalError) result() {}

func (e EvalError) Error() string {
	return "Error: " + e.Kind.String()
}

// Format renders r the way it is shown to the user.
func Format(r Result) string {
	switch v := r.(type) {
	case Number:
		return v.String()
	case EvalError:
		return v.Error()
	}
	panic(fmt.Sprintf("sep: unknown result %T", r))
}
