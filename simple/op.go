package simple

import "fmt"

// Operator identifies a built-in operator. The table below statically
// associates each operator with its symbol and the operation it performs;
// the kind of value an operator produces is fixed by its apply function.
type Operator int

const (
	OpAdd Operator = iota
	OpSub
	OpMul
	OpDiv
	OpLt
	OpGt
	OpAnd
	OpOr
	OpNot
)

type binaryEntry struct {
	symbol string
	apply  func(left, right Value) (Value, error)
}

type unaryEntry struct {
	symbol string
	apply  func(operand Value) (Value, error)
}

var binaryOps = map[Operator]binaryEntry{
	OpAdd: {"+", numeric(func(a, b int) (Value, error) {
		return Number(a + b), nil
	})},
	OpSub: {"-", numeric(func(a, b int) (Value, error) {
		return Number(a - b), nil
	})},
	OpMul: {"*", numeric(func(a, b int) (Value, error) {
		return Number(a * b), nil
	})},
	OpDiv: {"/", numeric(func(a, b int) (Value, error) {
		if b == 0 {
			return nil, ErrDivisionByZero
		}
		return Number(a / b), nil
	})},
	OpLt: {"<", numeric(func(a, b int) (Value, error) {
		return Boolean(a < b), nil
	})},
	OpGt: {">", numeric(func(a, b int) (Value, error) {
		return Boolean(a > b), nil
	})},
	OpAnd: {"&&", boolean(func(a, b bool) (Value, error) {
		return Boolean(a && b), nil
	})},
	OpOr: {"||", boolean(func(a, b bool) (Value, error) {
		return Boolean(a || b), nil
	})},
}

var unaryOps = map[Operator]unaryEntry{
	OpNot: {"!", func(operand Value) (Value, error) {
		b, ok := operand.(Boolean)
		if !ok {
			return nil, fmt.Errorf("%w: ! on %s", ErrDomain, operand)
		}
		return Boolean(!bool(b)), nil
	}},
}

func numeric(fn func(a, b int) (Value, error)) func(Value, Value) (Value, error) {
	return func(left, right Value) (Value, error) {
		a, ok := left.(Number)
		if !ok {
			return nil, fmt.Errorf("%w: numeric operator on %s and %s", ErrDomain, left, right)
		}
		b, ok := right.(Number)
		if !ok {
			return nil, fmt.Errorf("%w: numeric operator on %s and %s", ErrDomain, left, right)
		}
		return fn(int(a), int(b))
	}
}

func boolean(fn func(a, b bool) (Value, error)) func(Value, Value) (Value, error) {
	return func(left, right Value) (Value, error) {
		a, ok := left.(Boolean)
		if !ok {
			return nil, fmt.Errorf("%w: boolean operator on %s and %s", ErrDomain, left, right)
		}
		b, ok := right.(Boolean)
		if !ok {
			return nil, fmt.Errorf("%w: boolean operator on %s and %s", ErrDomain, left, right)
		}
		return fn(bool(a), bool(b))
	}
}
